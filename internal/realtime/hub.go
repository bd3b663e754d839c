// Package realtime pushes activity seat counts to websocket subscribers.
package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/campuslife/campus-api/internal/domain"
)

const (
	sendBufferSize    = 16
	broadcastBuffer   = 256
	writeWait         = 10 * time.Second
	pongWait          = 60 * time.Second
	pingPeriod        = (pongWait * 9) / 10
	maxIncomingFrames = 512
)

// Subscriber receives the encoded seat updates of one activity on C.
// C is closed once the subscriber is removed from the hub.
type Subscriber struct {
	activityID uint
	send       chan []byte
}

func (s *Subscriber) C() <-chan []byte {
	return s.send
}

// Hub owns the subscriber set; only its Run goroutine touches it.
type Hub struct {
	subscribers map[uint]map[*Subscriber]struct{}
	broadcast   chan domain.SeatUpdate
	register    chan *Subscriber
	unregister  chan *Subscriber
	closeFeed   chan uint
	done        chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[uint]map[*Subscriber]struct{}),
		broadcast:   make(chan domain.SeatUpdate, broadcastBuffer),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		closeFeed:   make(chan uint),
		done:        make(chan struct{}),
	}
}

// Run dispatches updates until ctx is cancelled, then closes every subscriber.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for _, subs := range h.subscribers {
				for sub := range subs {
					close(sub.send)
				}
			}
			h.subscribers = map[uint]map[*Subscriber]struct{}{}

			return
		case sub := <-h.register:
			subs, ok := h.subscribers[sub.activityID]
			if !ok {
				subs = make(map[*Subscriber]struct{})
				h.subscribers[sub.activityID] = subs
			}
			subs[sub] = struct{}{}
		case sub := <-h.unregister:
			h.remove(sub)
		case activityID := <-h.closeFeed:
			for sub := range h.subscribers[activityID] {
				close(sub.send)
			}
			delete(h.subscribers, activityID)
		case update := <-h.broadcast:
			subs := h.subscribers[update.ActivityID]
			if len(subs) == 0 {
				continue
			}

			message, err := json.Marshal(update)
			if err != nil {
				zap.L().Error("failed to encode seat update", zap.Error(err))
				continue
			}

			for sub := range subs {
				select {
				case sub.send <- message:
				default:
					// slow consumer
					h.remove(sub)
				}
			}
		}
	}
}

func (h *Hub) remove(sub *Subscriber) {
	subs, ok := h.subscribers[sub.activityID]
	if !ok {
		return
	}
	if _, ok = subs[sub]; !ok {
		return
	}

	delete(subs, sub)
	close(sub.send)
	if len(subs) == 0 {
		delete(h.subscribers, sub.activityID)
	}
}

// Publish queues update for delivery. It never blocks the caller: when the
// queue is full or the hub stopped, the update is dropped.
func (h *Hub) Publish(update domain.SeatUpdate) {
	select {
	case h.broadcast <- update:
	default:
		zap.L().Warn("dropping seat update", zap.Uint("activity_id", update.ActivityID))
	}
}

// Subscribe registers a new subscriber for activityID. It returns nil once
// the hub has stopped.
func (h *Hub) Subscribe(activityID uint) *Subscriber {
	sub := &Subscriber{
		activityID: activityID,
		send:       make(chan []byte, sendBufferSize),
	}

	select {
	case h.register <- sub:
		return sub
	case <-h.done:
		return nil
	}
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	select {
	case h.unregister <- sub:
	case <-h.done:
	}
}

// CloseFeed disconnects every subscriber of activityID, e.g. once the
// activity is deleted.
func (h *Hub) CloseFeed(activityID uint) {
	select {
	case h.closeFeed <- activityID:
	case <-h.done:
	}
}

// Serve streams the seat updates of activityID to conn until either side
// goes away. The first message carries the current state.
func (h *Hub) Serve(conn *websocket.Conn, current domain.SeatUpdate) {
	sub := h.Subscribe(current.ActivityID)
	if sub == nil {
		_ = conn.Close()
		return
	}

	initial, err := json.Marshal(current)
	if err != nil {
		h.Unsubscribe(sub)
		_ = conn.Close()
		return
	}

	go h.readPump(conn, sub)
	writePump(conn, sub, initial)
}

// readPump discards client frames; it only notices when the peer leaves.
func (h *Hub) readPump(conn *websocket.Conn, sub *Subscriber) {
	defer func() {
		h.Unsubscribe(sub)
		_ = conn.Close()
	}()

	conn.SetReadLimit(maxIncomingFrames)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("seat feed closed", zap.Uint("activity_id", sub.activityID), zap.Error(err))
			}

			return
		}
	}
}

func writePump(conn *websocket.Conn, sub *Subscriber, initial []byte) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, initial); err != nil {
		return
	}

	for {
		select {
		case message, ok := <-sub.C():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "feed closed"))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
