// Package render 在终端打印分发输出。
package render

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/palemoky/holdem-watch/internal/dispatch"
)

// Lipgloss Styles
var (
	sessionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	eventStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	turnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	resultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	rebuyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	waitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	closedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// TerminalSink 将输出渲染到终端
type TerminalSink struct {
	out        io.Writer
	showEvents bool
	noColor    bool
	now        func() time.Time

	mu sync.Mutex
}

// NewTerminalSink 创建终端输出，showEvents 为 false 时只打印需要行动的通知
func NewTerminalSink(out io.Writer, showEvents, noColor bool) *TerminalSink {
	return &TerminalSink{
		out:        out,
		showEvents: showEvents,
		noColor:    noColor,
		now:        time.Now,
	}
}

// Deliver 实现 watcher.Sink
func (t *TerminalSink) Deliver(sessionID string, outputs []dispatch.Output) error {
	var sb strings.Builder
	for _, o := range outputs {
		if o.Kind == dispatch.KindEvent && !t.showEvents {
			continue
		}
		sb.WriteString(t.style(sessionStyle, "["+sessionID+"]"))
		sb.WriteByte(' ')
		sb.WriteString(t.Render(o))
		sb.WriteByte('\n')
	}
	if sb.Len() == 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := io.WriteString(t.out, sb.String())
	return err
}

// Render 渲染单条输出（不含会话前缀）
func (t *TerminalSink) Render(o dispatch.Output) string {
	switch o.Kind {
	case dispatch.KindEvent:
		return t.style(eventStyle, fmt.Sprintf("#%d %s", o.HandNumber, o.Message))
	case dispatch.KindYourTurn:
		header := "▶ YOUR TURN"
		if o.Snapshot != nil && o.Snapshot.TurnDeadline != nil {
			header += " (" + humanize.RelTime(*o.Snapshot.TurnDeadline, t.now(), "ago", "left") + ")"
		}
		box := o.Summary
		if !t.noColor {
			box = boxStyle.Render(o.Summary)
		}
		return t.style(turnStyle, header) + "\n" + box
	case dispatch.KindHandResult:
		line := fmt.Sprintf("■ Hand #%d finished", o.HandNumber)
		if o.Snapshot != nil && o.Snapshot.LastHand != nil && o.Snapshot.LastHand.HandNumber == o.HandNumber {
			line += fmt.Sprintf(" | Pot: %d", o.Snapshot.LastHand.Pot)
		}
		return t.style(resultStyle, line)
	case dispatch.KindRebuyAvailable:
		return t.style(rebuyStyle, fmt.Sprintf("$ Busted in hand #%d, rebuy available", o.HandNumber))
	case dispatch.KindWaitingForPlayers:
		return t.style(waitStyle, "… Alone at the table, waiting for players")
	case dispatch.KindTableClosed:
		return t.style(closedStyle, "✖ Table closed")
	default:
		return o.Kind.String()
	}
}

func (t *TerminalSink) style(s lipgloss.Style, text string) string {
	if t.noColor {
		return text
	}
	return s.Render(text)
}
