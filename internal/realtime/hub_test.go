package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslife/campus-api/internal/domain"
)

func startHub(t *testing.T) *Hub {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	go hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-hub.done
	})

	return hub
}

func receive(t *testing.T, sub *Subscriber) domain.SeatUpdate {
	t.Helper()

	select {
	case message, ok := <-sub.C():
		require.True(t, ok, "subscriber closed")

		var update domain.SeatUpdate
		require.NoError(t, json.Unmarshal(message, &update))

		return update
	case <-time.After(2 * time.Second):
		t.Fatal("no seat update received")
	}

	return domain.SeatUpdate{}
}

func TestHub_PublishReachesActivitySubscribers(t *testing.T) {
	hub := startHub(t)

	first := hub.Subscribe(1)
	second := hub.Subscribe(1)
	other := hub.Subscribe(2)

	hub.Publish(domain.SeatUpdate{ActivityID: 1, CurrentParticipants: 3, MaxParticipants: 5, PlacesLeft: 2})

	assert.Equal(t, 2, receive(t, first).PlacesLeft)
	assert.Equal(t, 3, receive(t, second).CurrentParticipants)

	select {
	case <-other.C():
		t.Fatal("update leaked to another activity")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := startHub(t)

	sub := hub.Subscribe(1)
	hub.Unsubscribe(sub)

	_, ok := <-sub.C()
	assert.False(t, ok)

	// a second unsubscribe is a no-op
	hub.Unsubscribe(sub)
}

func TestHub_SlowSubscriberIsDropped(t *testing.T) {
	hub := startHub(t)

	slow := hub.Subscribe(1)
	marker := hub.Subscribe(2)
	for i := 0; i < sendBufferSize+1; i++ {
		hub.Publish(domain.SeatUpdate{ActivityID: 1, CurrentParticipants: i})
	}
	hub.Publish(domain.SeatUpdate{ActivityID: 2})

	// updates are dispatched in order, so every one of them was handled
	receive(t, marker)

	received := 0
	for range slow.C() {
		received++
	}
	assert.Equal(t, sendBufferSize, received)
}

func TestHub_CloseFeed(t *testing.T) {
	hub := startHub(t)

	first := hub.Subscribe(1)
	second := hub.Subscribe(1)
	other := hub.Subscribe(2)

	hub.CloseFeed(1)

	_, ok := <-first.C()
	assert.False(t, ok)
	_, ok = <-second.C()
	assert.False(t, ok)

	// the closed subscribers leave later without a double close
	hub.Unsubscribe(first)

	hub.Publish(domain.SeatUpdate{ActivityID: 2, PlacesLeft: 4})
	assert.Equal(t, 4, receive(t, other).PlacesLeft)

	// closing a feed nobody listens to is a no-op
	hub.CloseFeed(99)
}

func TestHub_StopClosesSubscribers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	go hub.Run(ctx)

	sub := hub.Subscribe(1)
	cancel()
	<-hub.done

	_, ok := <-sub.C()
	assert.False(t, ok)
	assert.Nil(t, hub.Subscribe(1))

	// publishing after the stop neither blocks nor panics
	hub.Publish(domain.SeatUpdate{ActivityID: 1})
}

func TestHub_Serve(t *testing.T) {
	hub := startHub(t)
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(conn, domain.SeatUpdate{ActivityID: 7, CurrentParticipants: 1, MaxParticipants: 2, PlacesLeft: 1})
	}))
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	var initial domain.SeatUpdate
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&initial))
	assert.Equal(t, 1, initial.PlacesLeft)

	// the subscription is registered before the initial message is written
	hub.Publish(domain.SeatUpdate{ActivityID: 7, CurrentParticipants: 2, MaxParticipants: 2, PlacesLeft: 0})

	var update domain.SeatUpdate
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, 0, update.PlacesLeft)

	hub.CloseFeed(7)
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}
