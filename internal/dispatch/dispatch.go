// Package dispatch 是快照处理的状态机：对每个快照运行 differ，
// 并依据会话上下文中的去重键决定是否需要通知智能体。
//
// Process 同步执行，不做 I/O，返回前原地更新 Context。
// 每个牌桌会话持有独立的 Context，会话之间没有共享状态。
package dispatch

import (
	"github.com/palemoky/holdem-watch/internal/differ"
	"github.com/palemoky/holdem-watch/internal/protocol"
	"github.com/palemoky/holdem-watch/internal/summary"
)

// Process 处理一个快照，返回本次产生的有序输出（可能为空）
func Process(s *protocol.Snapshot, c *Context) []Output {
	prev := c.PrevSnapshot

	events := differ.Diff(prev, s)
	outputs := make([]Output, 0, len(events)+1)
	for _, e := range events {
		outputs = append(outputs, Event(e, s.HandNumber))
	}

	prevPhase := c.PrevPhase
	c.PrevSnapshot = s
	c.PrevPhase = s.Phase

	if prevPhase != s.Phase {
		c.clearKeys()
	}

	if s.IsYourTurn {
		key := turnKey(s.HandNumber, s.Phase)
		if key != c.TurnKey {
			c.TurnKey = key
			outputs = append(outputs, YourTurn(s, summary.Build(s)))
		}
		return outputs
	}
	// 对手行动后回到同一轮次需要重新通知
	c.TurnKey = ""

	if handEnded(prevPhase, s.Phase) && !c.reported(s.HandNumber) {
		if s.YourChips == 0 && s.CanRebuy {
			outputs = append(outputs, RebuyAvailable(s))
		} else {
			outputs = append(outputs, HandResult(s, s.HandNumber))
		}
		c.markReported(s.HandNumber)
		return outputs
	}

	// 全员弃牌时可能观察不到 SHOWDOWN/WAITING，只能从手牌编号跳变发现上一手结束
	if prev != nil && s.HandNumber > prev.HandNumber && !c.reported(prev.HandNumber) {
		old := prev.HandNumber
		winners := winnerSeats(prev, s)
		for _, p := range prev.Opponents() {
			if p.Status == protocol.StatusActive && !winners[p.Seat] {
				outputs = append(outputs, Event(p.Name+" folded", old))
			}
		}
		outputs = append(outputs, HandResult(s, old))
		c.markReported(old)
		return outputs
	}

	if s.Phase == protocol.PhaseWaiting && len(s.Players) < 2 {
		if c.ActionKey != waitingKey {
			outputs = append(outputs, WaitingForPlayers(s))
		}
		c.ActionKey = waitingKey
	} else if c.ActionKey == waitingKey {
		c.ActionKey = ""
	}

	return outputs
}

// Closed 传输层报告牌桌关闭时调用
func Closed() []Output {
	return []Output{TableClosed()}
}

func handEnded(prev, cur protocol.Phase) bool {
	return prev.IsBetting() && (cur == protocol.PhaseShowdown || cur == protocol.PhaseWaiting)
}

// winnerSeats 找出上一手的赢家。优先使用服务端附带的结算信息，
// 否则视筹码较上一快照增加的玩家为赢家。
func winnerSeats(prev, next *protocol.Snapshot) map[int]bool {
	winners := make(map[int]bool)
	if next.LastHand != nil && next.LastHand.HandNumber == prev.HandNumber {
		for _, seat := range next.LastHand.Winners {
			winners[seat] = true
		}
		return winners
	}
	for _, p := range next.Players {
		if before, ok := prev.Player(p.Seat); ok && p.Chips > before.Chips {
			winners[p.Seat] = true
		}
	}
	return winners
}
