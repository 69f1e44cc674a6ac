package event_test

import (
	"testing"

	"github.com/ratel-online/rummy/rummy/event"
	"github.com/stretchr/testify/require"
)

func TestPlayerKnocked(t *testing.T) {
	listener := event.NewDummyListener()
	event.PlayerKnocked.AddListener(listener)
	t.Cleanup(func() { event.PlayerKnocked.RemoveListener(listener) })

	payload := event.PlayerKnockedPayload{PlayerName: "Someone", Round: 4}
	event.PlayerKnocked.Emit(payload)

	require.Equal(t, []interface{}{payload}, listener.ReceivedPayloads())
}

func TestRemoveListener(t *testing.T) {
	kept := event.NewDummyListener()
	removed := event.NewDummyListener()
	event.PlayerKnocked.AddListener(kept)
	event.PlayerKnocked.AddListener(removed)
	t.Cleanup(func() { event.PlayerKnocked.RemoveListener(kept) })

	event.PlayerKnocked.RemoveListener(removed)
	event.PlayerKnocked.RemoveListener(removed)

	payload := event.PlayerKnockedPayload{PlayerName: "Someone", Round: 2}
	event.PlayerKnocked.Emit(payload)

	require.Equal(t, []interface{}{payload}, kept.ReceivedPayloads())
	require.Empty(t, removed.ReceivedPayloads())
}
