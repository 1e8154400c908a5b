package dispatch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/holdem-watch/internal/protocol"
)

func TestContext_Reported(t *testing.T) {
	t.Parallel()

	c := NewContext()
	assert.True(t, c.reported(0))
	assert.False(t, c.reported(1))

	c.markReported(3)
	assert.True(t, c.reported(2))
	assert.True(t, c.reported(3))
	assert.False(t, c.reported(4))

	c.markReported(2)
	assert.Equal(t, 3, c.LastReportedHand, "reported hand never moves backwards")
}

func TestContext_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	c := NewContext()
	s := newSnapshot(4, protocol.PhaseTurn)
	s.IsYourTurn = true
	Process(s, c)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var restored Context
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, "4:TURN", restored.TurnKey)
	assert.Equal(t, protocol.PhaseTurn, restored.PrevPhase)
	require.NotNil(t, restored.PrevSnapshot)
	assert.Equal(t, 4, restored.PrevSnapshot.HandNumber)

	// 恢复后的上下文继续去重
	again := newSnapshot(4, protocol.PhaseTurn)
	again.IsYourTurn = true
	assert.Empty(t, Process(again, &restored))
}
