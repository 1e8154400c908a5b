// Package validate 在快照进入分发状态机之前做结构校验。
// 分发核心本身不做校验，调用方负责。
package validate

import (
	"github.com/palemoky/holdem-watch/internal/apperrors"
	"github.com/palemoky/holdem-watch/internal/protocol"
)

// Snapshot 校验快照必填字段与不变量：座位唯一、公共牌数量与轮次一致、底牌为 0 或 2 张
func Snapshot(s *protocol.Snapshot) error {
	if s == nil {
		return apperrors.ErrInvalidSnapshot
	}
	if s.SessionID == "" {
		return apperrors.ErrInvalidSnapshot.WithField("session_id")
	}
	if s.HandNumber < 0 {
		return apperrors.ErrInvalidSnapshot.WithField("hand_number")
	}
	if !s.Phase.IsKnown() {
		return apperrors.ErrUnknownPhase.WithField("phase %q", s.Phase)
	}
	if n := s.Phase.BoardSize(); n >= 0 && len(s.Board) != n {
		return apperrors.ErrBoardMismatch.WithField("board (%s has %d cards)", s.Phase, len(s.Board))
	}
	if len(s.Board) > 5 {
		return apperrors.ErrBoardMismatch.WithField("board (%d cards)", len(s.Board))
	}
	if len(s.HoleCards) != 0 && len(s.HoleCards) != 2 {
		return apperrors.ErrHoleCards.WithField("hole_cards")
	}

	seen := make(map[int]struct{}, len(s.Players))
	for i, p := range s.Players {
		if _, dup := seen[p.Seat]; dup {
			return apperrors.ErrDuplicateSeat.WithField("players[%d].seat", i)
		}
		seen[p.Seat] = struct{}{}
	}
	return nil
}
