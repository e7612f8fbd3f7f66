package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/testing/suite"
)

const (
	testPrefix   = "tictactoe-test"
	eventTimeout = 5 * time.Second
)

func nextEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()

	select {
	case event, ok := <-events:
		require.True(t, ok, "subscription closed")
		return event
	case <-time.After(eventTimeout):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestChannel(t *testing.T) {
	assert.Equal(t, "tictactoe:abc", Channel("tictactoe", "abc"))
}

func TestNew(t *testing.T) {
	ctx, st := suite.New(t)

	// When: connecting to the running server
	client, err := New(ctx, st.Redis.Options().Addr)

	// Then: the connection is usable
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	assert.NoError(t, client.Ping(ctx).Err())
}

func TestPublisher(t *testing.T) {
	t.Run("Mirrors a played round onto the channel", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a subscriber listening to game g1
		events, unsubscribe, err := Subscribe(ctx, st.Redis, testPrefix, "g1")
		require.NoError(t, err)
		t.Cleanup(func() { _ = unsubscribe() })

		publisher := NewPublisher(ctx, st.Logger, st.Redis, testPrefix, "g1")

		// When: a 1x1 game is played with the publisher as presenter
		game, err := tictactoe.NewGame(publisher, 1, entity.NewPlayer("A", "X"), entity.NewPlayer("B", "O"))
		require.NoError(t, err)

		game.StartGame()
		require.True(t, game.ApplyMove(0))

		// Then: every notification arrives in order
		expectedTypes := []string{
			EventStatusUpdate, EventGridRender, EventResetHide,
			EventGridRender, EventStatusUpdate, EventResetShow,
			EventStatusUpdate, EventCellRender, EventStatusUpdate,
		}

		received := make([]Event, 0, len(expectedTypes))
		for range expectedTypes {
			received = append(received, nextEvent(t, events))
		}

		for i, event := range received {
			assert.Equal(t, expectedTypes[i], event.Type, "event %d", i)
			assert.Equal(t, "g1", event.GameID)
		}

		require.NotNil(t, received[4].Text)
		assert.Equal(t, "B's turn", *received[4].Text)

		assert.Equal(t, &entity.Cell{ID: 0, Marker: "O"}, received[7].Cell)

		require.NotNil(t, received[8].Text)
		assert.Equal(t, tictactoe.GameOverMessage, *received[8].Text)

		assert.Equal(t, 1, received[3].Size)
		assert.Equal(t, []entity.Cell{{ID: 0, Marker: ""}}, received[3].Cells)
	})

	t.Run("Other games stay on their own channel", func(t *testing.T) {
		ctx, st := suite.New(t)

		events, unsubscribe, err := Subscribe(ctx, st.Redis, testPrefix, "mine")
		require.NoError(t, err)
		t.Cleanup(func() { _ = unsubscribe() })

		NewPublisher(ctx, st.Logger, st.Redis, testPrefix, "other").UpdateStatusMessage("noise")
		NewPublisher(ctx, st.Logger, st.Redis, testPrefix, "mine").UpdateStatusMessage("signal")

		event := nextEvent(t, events)
		require.NotNil(t, event.Text)
		assert.Equal(t, "signal", *event.Text)
	})

	t.Run("Publishing to a closed client does not panic", func(t *testing.T) {
		_, st := suite.New(t)

		client, err := New(context.Background(), st.Redis.Options().Addr)
		require.NoError(t, err)
		require.NoError(t, client.Close())

		publisher := NewPublisher(context.Background(), st.Logger, client, testPrefix, "g2")

		assert.NotPanics(t, func() { publisher.UpdateStatusMessage("lost") })
	})
}
