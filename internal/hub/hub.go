// Package hub tracks live room membership and fans events out to it.
//
// Rooms are spread over a fixed number of shards, each with its own lock, so
// joins, leaves and broadcasts in unrelated rooms never contend. Every
// subscription owns a bounded buffer; a subscriber whose buffer is full when
// an event arrives is evicted instead of blocking the sender.
package hub

import (
	"hash/fnv"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/habiro-server/internal/logger"
	"github.com/dtroode/habiro-server/internal/metrics"
	"github.com/dtroode/habiro-server/internal/model"
)

const (
	DefaultShards     = 32
	DefaultBufferSize = 64
)

// Delivery reports the outcome of a broadcast.
type Delivery struct {
	Delivered int
	Dropped   int
}

// Subscription is one live connection joined to a room.
type Subscription struct {
	hub    *Hub
	room   string
	userID uuid.UUID
	events chan model.ChatEvent
}

// Events yields broadcast events. The channel is closed when the
// subscription leaves or is evicted.
func (s *Subscription) Events() <-chan model.ChatEvent {
	return s.events
}

func (s *Subscription) Room() string {
	return s.room
}

func (s *Subscription) UserID() uuid.UUID {
	return s.userID
}

// Leave removes the subscription from its room. It is safe to call more than
// once and after eviction.
func (s *Subscription) Leave() {
	s.hub.leave(s)
}

type shard struct {
	mu    sync.Mutex
	rooms map[string]map[*Subscription]struct{}
}

// Hub is the delivery broadcaster.
type Hub struct {
	shards     []*shard
	bufferSize int
	logger     *logger.Logger
}

// New creates a Hub. Non-positive arguments fall back to the defaults.
func New(shards, bufferSize int, logger *logger.Logger) *Hub {
	if shards <= 0 {
		shards = DefaultShards
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	h := &Hub{
		shards:     make([]*shard, shards),
		bufferSize: bufferSize,
		logger:     logger,
	}
	for i := range h.shards {
		h.shards[i] = &shard{rooms: make(map[string]map[*Subscription]struct{})}
	}
	return h
}

func (h *Hub) shardFor(room string) *shard {
	f := fnv.New32a()
	_, _ = f.Write([]byte(room))
	return h.shards[f.Sum32()%uint32(len(h.shards))]
}

// Join registers a new subscription for userID in room.
func (h *Hub) Join(room string, userID uuid.UUID) *Subscription {
	sub := &Subscription{
		hub:    h,
		room:   room,
		userID: userID,
		events: make(chan model.ChatEvent, h.bufferSize),
	}

	sh := h.shardFor(room)
	sh.mu.Lock()
	members, ok := sh.rooms[room]
	if !ok {
		members = make(map[*Subscription]struct{})
		sh.rooms[room] = members
	}
	members[sub] = struct{}{}
	sh.mu.Unlock()

	metrics.LiveSubscriptions.Inc()
	h.logger.Debug("Hub: joined room", "room", room, "user_id", userID)

	return sub
}

func (h *Hub) leave(sub *Subscription) {
	sh := h.shardFor(sub.room)
	sh.mu.Lock()
	removed := h.removeLocked(sh, sub)
	sh.mu.Unlock()

	if removed {
		h.logger.Debug("Hub: left room", "room", sub.room, "user_id", sub.userID)
	}
}

// removeLocked detaches sub and closes its channel. The shard lock must be
// held; membership is the single source of truth for who closes.
func (h *Hub) removeLocked(sh *shard, sub *Subscription) bool {
	members, ok := sh.rooms[sub.room]
	if !ok {
		return false
	}
	if _, ok := members[sub]; !ok {
		return false
	}

	delete(members, sub)
	if len(members) == 0 {
		delete(sh.rooms, sub.room)
	}
	close(sub.events)
	metrics.LiveSubscriptions.Dec()

	return true
}

// Broadcast queues event to every member of room without blocking.
func (h *Hub) Broadcast(room string, event model.ChatEvent) Delivery {
	var d Delivery
	var evicted []*Subscription

	sh := h.shardFor(room)
	sh.mu.Lock()
	for sub := range sh.rooms[room] {
		select {
		case sub.events <- event:
			d.Delivered++
		default:
			evicted = append(evicted, sub)
		}
	}
	for _, sub := range evicted {
		if h.removeLocked(sh, sub) {
			d.Dropped++
		}
	}
	sh.mu.Unlock()

	metrics.FanoutDeliveredTotal.Add(float64(d.Delivered))
	metrics.FanoutDroppedTotal.Add(float64(d.Dropped))
	for _, sub := range evicted {
		h.logger.Warn("Hub: evicted slow subscriber",
			"room", room,
			"user_id", sub.userID,
			"message_id", event.MessageID)
	}

	return d
}

// Members returns the number of live subscriptions in room.
func (h *Hub) Members(room string) int {
	sh := h.shardFor(room)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return len(sh.rooms[room])
}
