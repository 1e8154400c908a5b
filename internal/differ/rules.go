package differ

import (
	"fmt"

	"github.com/palemoky/holdem-watch/internal/protocol"
)

// transition 同一座位在两个快照之间的变化
type transition struct {
	before  protocol.Player
	after   protocol.Player
	prevMax int64 // 上一快照中所有玩家本轮下注的最大值
}

// rule 一条对手动作识别规则
type rule struct {
	name     string
	match    func(t transition) bool
	describe func(t transition) string
}

// actionRules 按优先级排列，每个玩家只取第一条命中的规则。
// 全下必须先于下注金额判断。
var actionRules = []rule{
	{
		name: "all_in",
		match: func(t transition) bool {
			return t.after.Status == protocol.StatusAllIn && t.before.Status != protocol.StatusAllIn
		},
		describe: func(t transition) string {
			return fmt.Sprintf("%s went all-in (%d)", t.after.Name, t.after.Bet)
		},
	},
	{
		name: "fold",
		match: func(t transition) bool {
			return t.after.Status == protocol.StatusFolded && t.before.Status != protocol.StatusFolded
		},
		describe: func(t transition) string {
			return t.after.Name + " folded"
		},
	},
	{
		name: "bet_change",
		match: func(t transition) bool {
			return t.after.Bet > t.before.Bet
		},
		describe: describeBet,
	},
	{
		name: "check",
		match: func(t transition) bool {
			return t.before.IsCurrentActor && !t.after.IsCurrentActor &&
				t.after.Bet == t.before.Bet &&
				t.after.Status == protocol.StatusActive
		},
		describe: func(t transition) string {
			return t.after.Name + " checked"
		},
	},
}

// describeBet 根据上一快照的最大下注区分下注、加注与跟注。
// 原本已等于最大下注的玩家再次增加下注也按跟注描述，保持兼容。
func describeBet(t transition) string {
	amount := t.after.Bet
	switch {
	case t.prevMax == 0:
		return fmt.Sprintf("%s bet %d", t.after.Name, amount)
	case amount > t.prevMax:
		return fmt.Sprintf("%s raised to %d", t.after.Name, amount)
	default:
		return fmt.Sprintf("%s called %d", t.after.Name, amount)
	}
}

// classify 依次匹配规则，最多返回一个事件
func classify(before, after protocol.Player, prevMax int64) (string, bool) {
	t := transition{before: before, after: after, prevMax: prevMax}
	for _, r := range actionRules {
		if r.match(t) {
			return r.describe(t), true
		}
	}
	return "", false
}
