// Package summary 将快照渲染为轮到行动时推送给智能体的简短文本。
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/palemoky/holdem-watch/internal/card"
	"github.com/palemoky/holdem-watch/internal/protocol"
)

// Build 生成快照摘要：手牌编号、轮次、底池、公共牌、自己、对手、待跟注额与合法动作
func Build(s *protocol.Snapshot) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Hand #%d | %s | Pot: %d\n", s.HandNumber, s.Phase, s.Pot)
	if len(s.Board) > 0 {
		fmt.Fprintf(&sb, "Board: %s\n", card.FormatAll(s.Board))
	}

	fmt.Fprintf(&sb, "You (seat %d): %s | Stack: %d | Bet: %d\n",
		s.YourSeat, holeCards(s.HoleCards), s.YourChips, s.YourBet)

	for _, p := range s.Opponents() {
		sb.WriteString(playerLine(p))
		sb.WriteByte('\n')
	}

	for _, sp := range s.SidePots {
		fmt.Fprintf(&sb, "Side pot: %d (seats %s)\n", sp.Amount, joinSeats(sp.Seats))
	}

	if toCall := s.MaxBet() - s.YourBet; toCall > 0 {
		fmt.Fprintf(&sb, "To call: %d\n", toCall)
	}
	if len(s.LegalActions) > 0 {
		fmt.Fprintf(&sb, "Actions: %s\n", actions(s.LegalActions))
	}
	if s.TurnDeadline != nil {
		fmt.Fprintf(&sb, "Deadline: %s\n", s.TurnDeadline.UTC().Format(time.RFC3339))
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func holeCards(codes []string) string {
	if len(codes) == 0 {
		return "-"
	}
	return card.FormatAll(codes)
}

func playerLine(p protocol.Player) string {
	line := fmt.Sprintf("%s (seat %d): %d", p.Name, p.Seat, p.Chips)
	switch p.Status {
	case protocol.StatusFolded:
		line += ", folded"
	case protocol.StatusAllIn:
		line += fmt.Sprintf(", all-in %d", p.Bet)
	default:
		if p.Bet > 0 {
			line += fmt.Sprintf(", bet %d", p.Bet)
		}
	}
	if p.IsDealer {
		line += " [D]"
	}
	if p.IsCurrentActor {
		line += " *"
	}
	return line
}

// actions 渲染合法动作，如 "fold | call 20 | raise 60-940"
func actions(legal []protocol.LegalAction) string {
	parts := make([]string, len(legal))
	for i, a := range legal {
		switch {
		case a.Amount > 0:
			parts[i] = fmt.Sprintf("%s %d", a.Type, a.Amount)
		case a.Min > 0 || a.Max > 0:
			parts[i] = fmt.Sprintf("%s %d-%d", a.Type, a.Min, a.Max)
		default:
			parts[i] = string(a.Type)
		}
	}
	return strings.Join(parts, " | ")
}

func joinSeats(seats []int) string {
	parts := make([]string, len(seats))
	for i, seat := range seats {
		parts[i] = fmt.Sprint(seat)
	}
	return strings.Join(parts, ",")
}
