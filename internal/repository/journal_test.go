package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-desktop/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventJournal_Record(t *testing.T) {
	ctx, st := suite.New(t)

	journal := NewEventJournal(st.Storage, time.Minute)

	// Given: two events of the same session
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	first := entity.Event{
		SessionID: "s1",
		Seq:       1,
		Kind:      entity.EventMove,
		Mark:      entity.Cross,
		Position:  &entity.Position{Col: 0, Row: 0},
		At:        at,
	}
	second := entity.Event{
		SessionID: "s1",
		Seq:       2,
		Kind:      entity.EventRejected,
		Mark:      entity.Circle,
		Reason:    "cell is already occupied",
		At:        at.Add(time.Second),
	}

	// When: both are recorded
	require.NoError(t, journal.Record(ctx, first))
	require.NoError(t, journal.Record(ctx, second))

	// Then: they are listed back in order
	events, err := journal.ListBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, first, events[0])
	assert.Equal(t, second, events[1])

	// And: the list expires
	ttl, err := st.Storage.TTL(ctx, sessionKey("s1")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestEventJournal_ListBySession(t *testing.T) {
	t.Run("Unknown session has no events", func(t *testing.T) {
		ctx, st := suite.New(t)

		journal := NewEventJournal(st.Storage, time.Minute)

		events, err := journal.ListBySession(ctx, "nobody")

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("Sessions are kept apart", func(t *testing.T) {
		ctx, st := suite.New(t)

		journal := NewEventJournal(st.Storage, 0)

		require.NoError(t, journal.Record(ctx, entity.Event{SessionID: "a", Seq: 1, Kind: entity.EventTied}))
		require.NoError(t, journal.Record(ctx, entity.Event{SessionID: "b", Seq: 1, Kind: entity.EventWon, Mark: entity.Circle}))

		events, err := journal.ListBySession(ctx, "b")

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, entity.EventWon, events[0].Kind)
		assert.Equal(t, entity.Circle, events[0].Mark)
	})
}

func TestStorage_New(t *testing.T) {
	t.Run("Connects to a running server", func(t *testing.T) {
		ctx, st := suite.New(t)

		client, err := storage.New(ctx, st.Addr)

		require.NoError(t, err)
		require.NoError(t, client.Close())
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		_, err := storage.New(ctx, "127.0.0.1:1")

		require.Error(t, err)
	})
}

func TestNopJournal(t *testing.T) {
	journal := NewNopJournal()

	require.NoError(t, journal.Record(context.Background(), entity.Event{SessionID: "x"}))

	events, err := journal.ListBySession(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, events)
}
