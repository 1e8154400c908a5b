package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/holdem-watch/internal/apperrors"
	"github.com/palemoky/holdem-watch/internal/protocol"
)

func validSnapshot() *protocol.Snapshot {
	return &protocol.Snapshot{
		SessionID:  "t-1",
		HandNumber: 3,
		Phase:      protocol.PhaseFlop,
		Board:      []string{"As", "7c", "2d"},
		YourSeat:   1,
		HoleCards:  []string{"Kh", "Kd"},
		Players: []protocol.Player{
			{Seat: 1, Name: "Hero", Status: protocol.StatusActive},
			{Seat: 2, Name: "Alice", Status: protocol.StatusActive},
		},
	}
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(s *protocol.Snapshot)
		want   error
	}{
		{"valid", func(s *protocol.Snapshot) {}, nil},
		{"waiting with any board", func(s *protocol.Snapshot) { s.Phase = protocol.PhaseWaiting }, nil},
		{"no hole cards", func(s *protocol.Snapshot) { s.HoleCards = nil }, nil},
		{"missing session", func(s *protocol.Snapshot) { s.SessionID = "" }, apperrors.ErrInvalidSnapshot},
		{"negative hand", func(s *protocol.Snapshot) { s.HandNumber = -1 }, apperrors.ErrInvalidSnapshot},
		{"unknown phase", func(s *protocol.Snapshot) { s.Phase = "DRAW" }, apperrors.ErrUnknownPhase},
		{"board too short", func(s *protocol.Snapshot) { s.Phase = protocol.PhaseTurn }, apperrors.ErrBoardMismatch},
		{"board on preflop", func(s *protocol.Snapshot) { s.Phase = protocol.PhasePreflop }, apperrors.ErrBoardMismatch},
		{"waiting board overflow", func(s *protocol.Snapshot) {
			s.Phase = protocol.PhaseWaiting
			s.Board = []string{"As", "Ks", "Qs", "Js", "Ts", "9s"}
		}, apperrors.ErrBoardMismatch},
		{"one hole card", func(s *protocol.Snapshot) { s.HoleCards = []string{"Kh"} }, apperrors.ErrHoleCards},
		{"duplicate seat", func(s *protocol.Snapshot) { s.Players[1].Seat = 1 }, apperrors.ErrDuplicateSeat},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := validSnapshot()
			tt.mutate(s)
			err := Snapshot(s)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestSnapshot_Nil(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, Snapshot(nil), apperrors.ErrInvalidSnapshot)
}
