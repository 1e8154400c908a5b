package protocol

import "time"

// Phase 下注轮次
type Phase string

const (
	PhasePreflop  Phase = "PREFLOP"
	PhaseFlop     Phase = "FLOP"
	PhaseTurn     Phase = "TURN"
	PhaseRiver    Phase = "RIVER"
	PhaseShowdown Phase = "SHOWDOWN"
	PhaseWaiting  Phase = "WAITING"
)

// IsBetting 是否为可下注轮次（翻牌前到河牌）
func (p Phase) IsBetting() bool {
	switch p {
	case PhasePreflop, PhaseFlop, PhaseTurn, PhaseRiver:
		return true
	}
	return false
}

// IsKnown 是否为已定义的轮次
func (p Phase) IsKnown() bool {
	return p.IsBetting() || p == PhaseShowdown || p == PhaseWaiting
}

// BoardSize 返回该轮次应有的公共牌数量，WAITING 不受约束时返回 -1
func (p Phase) BoardSize() int {
	switch p {
	case PhasePreflop:
		return 0
	case PhaseFlop:
		return 3
	case PhaseTurn:
		return 4
	case PhaseRiver, PhaseShowdown:
		return 5
	}
	return -1
}

// PlayerStatus 玩家状态
type PlayerStatus string

const (
	StatusActive PlayerStatus = "active"
	StatusFolded PlayerStatus = "folded"
	StatusAllIn  PlayerStatus = "all_in"
)

// ActionType 合法动作类型
type ActionType string

const (
	ActionFold  ActionType = "fold"
	ActionCheck ActionType = "check"
	ActionCall  ActionType = "call"
	ActionBet   ActionType = "bet"
	ActionRaise ActionType = "raise"
	ActionAllIn ActionType = "all_in"
)

// LegalAction 当前可执行的动作，金额字段按类型可选
type LegalAction struct {
	Type   ActionType `json:"type"`
	Amount int64      `json:"amount,omitempty"`
	Min    int64      `json:"min,omitempty"`
	Max    int64      `json:"max,omitempty"`
}

// Player 座位上的玩家
type Player struct {
	Seat           int          `json:"seat"`
	Name           string       `json:"name"`
	Chips          int64        `json:"chips"`
	Bet            int64        `json:"bet"`       // 本轮下注
	TotalBet       int64        `json:"total_bet"` // 本手累计投入
	Status         PlayerStatus `json:"status"`
	IsDealer       bool         `json:"is_dealer"`
	IsCurrentActor bool         `json:"is_current_actor"`
}

// ForcedBets 强制下注
type ForcedBets struct {
	SmallBlind int64 `json:"small_blind"`
	BigBlind   int64 `json:"big_blind"`
	Ante       int64 `json:"ante,omitempty"`
}

// SidePot 边池
type SidePot struct {
	Amount int64 `json:"amount"`
	Seats  []int `json:"seats"`
}

// HandResult 上一手牌的结算信息，服务端可选附带
type HandResult struct {
	HandNumber int   `json:"hand_number"`
	Winners    []int `json:"winners"` // 赢家座位号
	Pot        int64 `json:"pot"`
}

// Snapshot 某一时刻观察者视角的牌桌状态
type Snapshot struct {
	SessionID    string        `json:"session_id"`
	HandNumber   int           `json:"hand_number"`
	Phase        Phase         `json:"phase"`
	Pot          int64         `json:"pot"`
	Board        []string      `json:"board"`
	YourSeat     int           `json:"your_seat"`
	HoleCards    []string      `json:"hole_cards"`
	YourChips    int64         `json:"your_chips"`
	YourBet      int64         `json:"your_bet"`
	IsYourTurn   bool          `json:"is_your_turn"`
	CanRebuy     bool          `json:"can_rebuy"`
	LegalActions []LegalAction `json:"legal_actions,omitempty"`
	Players      []Player      `json:"players"`
	DealerSeat   int           `json:"dealer_seat"`
	TableSize    int           `json:"table_size"`
	ForcedBets   ForcedBets    `json:"forced_bets"`
	SidePots     []SidePot     `json:"side_pots,omitempty"`
	SeatToAct    *int          `json:"seat_to_act,omitempty"`
	TurnDeadline *time.Time    `json:"turn_deadline,omitempty"`
	LastHand     *HandResult   `json:"last_hand,omitempty"`
}

// Player 按座位号查找玩家
func (s *Snapshot) Player(seat int) (Player, bool) {
	for _, p := range s.Players {
		if p.Seat == seat {
			return p, true
		}
	}
	return Player{}, false
}

// Opponents 返回除观察者以外的玩家，保持原有顺序
func (s *Snapshot) Opponents() []Player {
	opponents := make([]Player, 0, len(s.Players))
	for _, p := range s.Players {
		if p.Seat != s.YourSeat {
			opponents = append(opponents, p)
		}
	}
	return opponents
}

// MaxBet 所有玩家本轮下注的最大值
func (s *Snapshot) MaxBet() int64 {
	var maxBet int64
	for _, p := range s.Players {
		if p.Bet > maxBet {
			maxBet = p.Bet
		}
	}
	return maxBet
}
