package dispatch

import "github.com/palemoky/holdem-watch/internal/protocol"

// Kind 分发输出类型
type Kind int

const (
	KindEvent Kind = iota
	KindYourTurn
	KindHandResult
	KindRebuyAvailable
	KindWaitingForPlayers
	KindTableClosed
)

var kindNames = map[Kind]string{
	KindEvent:             "EVENT",
	KindYourTurn:          "YOUR_TURN",
	KindHandResult:        "HAND_RESULT",
	KindRebuyAvailable:    "REBUY_AVAILABLE",
	KindWaitingForPlayers: "WAITING_FOR_PLAYERS",
	KindTableClosed:       "TABLE_CLOSED",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Output 一次分发调用产生的带标签输出，调用方持有，核心不保留引用。
// 各字段是否有效取决于 Kind：
//
//	EVENT               Message, HandNumber
//	YOUR_TURN           Snapshot, Summary
//	HAND_RESULT         Snapshot, HandNumber
//	REBUY_AVAILABLE     Snapshot
//	WAITING_FOR_PLAYERS Snapshot
//	TABLE_CLOSED        -
type Output struct {
	Kind       Kind
	Message    string
	HandNumber int
	Snapshot   *protocol.Snapshot
	Summary    string
}

// Event 事件描述输出
func Event(message string, hand int) Output {
	return Output{Kind: KindEvent, Message: message, HandNumber: hand}
}

// YourTurn 轮到自己行动
func YourTurn(s *protocol.Snapshot, summary string) Output {
	return Output{Kind: KindYourTurn, Snapshot: s, Summary: summary, HandNumber: s.HandNumber}
}

// HandResult 一手牌结束
func HandResult(s *protocol.Snapshot, hand int) Output {
	return Output{Kind: KindHandResult, Snapshot: s, HandNumber: hand}
}

// RebuyAvailable 筹码输光且允许补充
func RebuyAvailable(s *protocol.Snapshot) Output {
	return Output{Kind: KindRebuyAvailable, Snapshot: s, HandNumber: s.HandNumber}
}

// WaitingForPlayers 独自在桌
func WaitingForPlayers(s *protocol.Snapshot) Output {
	return Output{Kind: KindWaitingForPlayers, Snapshot: s, HandNumber: s.HandNumber}
}

// TableClosed 牌桌关闭
func TableClosed() Output {
	return Output{Kind: KindTableClosed}
}
