package dispatch

import (
	"fmt"

	"github.com/palemoky/holdem-watch/internal/protocol"
)

// waitingKey 独自在桌时的非行动去重键
const waitingKey = "waiting_for_players"

// Context 单个牌桌会话的分发状态，会话开始时创建，结束时丢弃。
// 字段导出以便序列化保存。同一 Context 不支持并发调用。
type Context struct {
	PrevSnapshot     *protocol.Snapshot `json:"prev_snapshot,omitempty"`
	PrevPhase        protocol.Phase     `json:"prev_phase,omitempty"`
	LastReportedHand int                `json:"last_reported_hand"`
	ActionKey        string             `json:"action_key,omitempty"` // 非行动通知去重键
	TurnKey          string             `json:"turn_key,omitempty"`   // 行动通知去重键
}

// NewContext 创建新的会话上下文
func NewContext() *Context {
	return &Context{}
}

// turnKey 由手牌编号与轮次唯一确定一个决策点
func turnKey(hand int, phase protocol.Phase) string {
	return fmt.Sprintf("%d:%s", hand, phase)
}

func (c *Context) reported(hand int) bool {
	return hand <= c.LastReportedHand
}

func (c *Context) markReported(hand int) {
	if hand > c.LastReportedHand {
		c.LastReportedHand = hand
	}
}

func (c *Context) clearKeys() {
	c.TurnKey = ""
	c.ActionKey = ""
}
