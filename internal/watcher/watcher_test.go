package watcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/holdem-watch/internal/apperrors"
	"github.com/palemoky/holdem-watch/internal/dispatch"
	"github.com/palemoky/holdem-watch/internal/protocol"
	"github.com/palemoky/holdem-watch/internal/storage"
)

func turnSnapshot(session string, hand int) *protocol.Snapshot {
	return &protocol.Snapshot{
		SessionID:  session,
		HandNumber: hand,
		Phase:      protocol.PhasePreflop,
		Pot:        30,
		YourSeat:   1,
		HoleCards:  []string{"As", "Kh"},
		YourChips:  990,
		IsYourTurn: true,
		Players: []protocol.Player{
			{Seat: 1, Name: "Hero", Chips: 990, Bet: 10, Status: protocol.StatusActive, IsCurrentActor: true},
			{Seat: 2, Name: "Alice", Chips: 980, Bet: 20, Status: protocol.StatusActive},
		},
	}
}

func stateMessage(t *testing.T, s *protocol.Snapshot) *protocol.Message {
	t.Helper()
	msg, err := protocol.NewMessage(protocol.MsgState, s)
	require.NoError(t, err)
	return msg
}

func hasKind(k dispatch.Kind) any {
	return mock.MatchedBy(func(outputs []dispatch.Output) bool {
		for _, o := range outputs {
			if o.Kind == k {
				return true
			}
		}
		return false
	})
}

func TestWatcher_HandleMessage_State(t *testing.T) {
	t.Parallel()

	sink := new(MockSink)
	sink.On("Deliver", "t-1", hasKind(dispatch.KindYourTurn)).Return(nil).Once()

	w := New(sink, nil)
	ctx := context.Background()

	require.NoError(t, w.HandleMessage(ctx, stateMessage(t, turnSnapshot("t-1", 1))))
	// 相同决策点不再通知，也没有事件，Sink 不应被调用
	require.NoError(t, w.HandleMessage(ctx, stateMessage(t, turnSnapshot("t-1", 1))))

	sink.AssertExpectations(t)
	sink.AssertNumberOfCalls(t, "Deliver", 1)
	assert.Equal(t, 1, w.Sessions())
}

func TestWatcher_SessionsIsolated(t *testing.T) {
	t.Parallel()

	sink := new(MockSink)
	sink.On("Deliver", "t-1", hasKind(dispatch.KindYourTurn)).Return(nil).Once()
	sink.On("Deliver", "t-2", hasKind(dispatch.KindYourTurn)).Return(nil).Once()

	w := New(sink, nil)
	ctx := context.Background()
	require.NoError(t, w.HandleSnapshot(ctx, turnSnapshot("t-1", 1)))
	require.NoError(t, w.HandleSnapshot(ctx, turnSnapshot("t-2", 1)))

	sink.AssertExpectations(t)
	assert.Equal(t, 2, w.Sessions())
}

func TestWatcher_HandleMessage_TableClosed(t *testing.T) {
	t.Parallel()

	sink := new(MockSink)
	sink.On("Deliver", "t-1", mock.Anything).Return(nil)

	store := new(MockStore)
	store.On("LoadContext", mock.Anything, "t-1").Return(nil, nil)
	store.On("SaveContext", mock.Anything, "t-1", mock.Anything).Return(nil)
	store.On("DeleteContext", mock.Anything, "t-1").Return(nil)

	w := New(sink, store)
	ctx := context.Background()
	require.NoError(t, w.HandleSnapshot(ctx, turnSnapshot("t-1", 1)))

	msg, err := protocol.NewMessage(protocol.MsgTableClosed, protocol.TableClosedPayload{SessionID: "t-1"})
	require.NoError(t, err)
	require.NoError(t, w.HandleMessage(ctx, msg))

	sink.AssertCalled(t, "Deliver", "t-1", []dispatch.Output{dispatch.TableClosed()})
	store.AssertExpectations(t)
	assert.Equal(t, 0, w.Sessions())
}

func TestWatcher_InvalidSnapshot(t *testing.T) {
	t.Parallel()

	sink := new(MockSink)
	w := New(sink, nil)

	s := turnSnapshot("t-1", 1)
	s.Players[1].Seat = 1
	err := w.HandleSnapshot(context.Background(), s)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateSeat)

	sink.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything)
	assert.Equal(t, 0, w.Sessions())
}

func TestWatcher_DecodeErrors(t *testing.T) {
	t.Parallel()

	w := New(new(MockSink), nil)
	ctx := context.Background()

	err := w.HandleMessage(ctx, &protocol.Message{Type: protocol.MsgState, Payload: []byte(`"nope"`)})
	assert.Error(t, err)

	err = w.HandleMessage(ctx, &protocol.Message{Type: protocol.MsgTableClosed, Payload: []byte(`[]`)})
	assert.Error(t, err)

	assert.NoError(t, w.HandleMessage(ctx, &protocol.Message{Type: "chat"}))
}

func TestWatcher_StoreErrors(t *testing.T) {
	t.Parallel()

	t.Run("load failure aborts", func(t *testing.T) {
		t.Parallel()

		store := new(MockStore)
		store.On("LoadContext", mock.Anything, "t-1").Return(nil, errors.New("redis down"))

		w := New(new(MockSink), store)
		err := w.HandleSnapshot(context.Background(), turnSnapshot("t-1", 1))
		assert.ErrorContains(t, err, "redis down")
	})

	t.Run("save failure still delivers", func(t *testing.T) {
		t.Parallel()

		sink := new(MockSink)
		sink.On("Deliver", "t-1", hasKind(dispatch.KindYourTurn)).Return(nil).Once()
		store := new(MockStore)
		store.On("LoadContext", mock.Anything, "t-1").Return(nil, nil)
		store.On("SaveContext", mock.Anything, "t-1", mock.Anything).Return(errors.New("redis down"))

		w := New(sink, store)
		assert.NoError(t, w.HandleSnapshot(context.Background(), turnSnapshot("t-1", 1)))
		sink.AssertExpectations(t)
	})

	t.Run("sink error surfaces", func(t *testing.T) {
		t.Parallel()

		sink := new(MockSink)
		sink.On("Deliver", "t-1", mock.Anything).Return(errors.New("agent offline"))

		w := New(sink, nil)
		err := w.HandleSnapshot(context.Background(), turnSnapshot("t-1", 1))
		assert.ErrorContains(t, err, "agent offline")
	})
}

// 重启后的 watcher 从 Redis 恢复上下文，不会对同一决策点重复通知
func TestWatcher_ResumeFromRedis(t *testing.T) {
	t.Parallel()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()
	store := storage.NewRedisStore(client, time.Hour)
	ctx := context.Background()

	first := new(MockSink)
	first.On("Deliver", "t-1", hasKind(dispatch.KindYourTurn)).Return(nil).Once()
	require.NoError(t, New(first, store).HandleSnapshot(ctx, turnSnapshot("t-1", 3)))
	first.AssertExpectations(t)

	restarted := new(MockSink)
	require.NoError(t, New(restarted, store).HandleSnapshot(ctx, turnSnapshot("t-1", 3)))
	restarted.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything)

	require.NoError(t, store.DeleteContext(ctx, "t-1"))
	fresh := new(MockSink)
	fresh.On("Deliver", "t-1", hasKind(dispatch.KindYourTurn)).Return(nil).Once()
	require.NoError(t, New(fresh, store).HandleSnapshot(ctx, turnSnapshot("t-1", 3)))
	fresh.AssertExpectations(t)
}
