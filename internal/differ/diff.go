// Package differ 比较同一会话中相邻的两个快照，生成按顺序排列的可读事件描述。
//
// Diff 是纯函数：没有副作用，相同输入总是得到相同输出。
package differ

import (
	"fmt"

	"github.com/palemoky/holdem-watch/internal/card"
	"github.com/palemoky/holdem-watch/internal/protocol"
)

// Diff 比较 prev 与 next，prev 为 nil 表示会话的第一个快照。
// 返回的事件顺序：先是对手动作（按玩家顺序），然后是公共牌变化。
func Diff(prev, next *protocol.Snapshot) []string {
	events := make([]string, 0, 4)

	if prev == nil || prev.HandNumber != next.HandNumber {
		// 新的一手牌，之前的状态全部失效
		if len(next.HoleCards) > 0 {
			events = append(events, fmt.Sprintf("Hand #%d — Your cards: %s",
				next.HandNumber, card.FormatAll(next.HoleCards)))
		}
		return events
	}

	prevMax := prev.MaxBet()
	for _, p := range next.Players {
		if p.Seat == next.YourSeat {
			continue
		}
		before, ok := prev.Player(p.Seat)
		if !ok {
			continue
		}
		if event, ok := classify(before, p, prevMax); ok {
			events = append(events, event)
		}
	}

	return append(events, boardEvents(prev, next)...)
}

// boardEvents 按公共牌数量的变化生成翻牌/转牌/河牌事件
func boardEvents(prev, next *protocol.Snapshot) []string {
	var events []string
	before, after := len(prev.Board), len(next.Board)

	if before == 0 && after >= 3 {
		events = append(events, fmt.Sprintf("Flop: %s | Pot: %d", card.FormatAll(next.Board[:3]), next.Pot))
	}
	if before == 3 && after >= 4 {
		events = append(events, fmt.Sprintf("Turn: %s | Pot: %d", card.Format(next.Board[3]), next.Pot))
	}
	if before == 4 && after >= 5 {
		events = append(events, fmt.Sprintf("River: %s | Pot: %d", card.Format(next.Board[4]), next.Pot))
	}
	return events
}
