// Package realtime fans presentation frames out to connected clients. It is
// the process-side implementation of the badge, sound and toast sinks.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"tracenfind/config"
	"tracenfind/internal/domain/alert"
	"tracenfind/internal/domain/entity"
	"tracenfind/internal/domain/service"

	"go.uber.org/fx"
)

// FrameType names the SSE event of a frame.
type FrameType string

const (
	FrameConnected FrameType = "connected"
	FrameBadge     FrameType = "badge"
	FrameSound     FrameType = "sound"
	FrameNotice    FrameType = "notice"
	FrameHeartbeat FrameType = "heartbeat"
)

const defaultBufferSize = 16

// Frame is one server-sent event.
type Frame struct {
	Type FrameType
	ID   string
	Data json.RawMessage
}

// Notice is the payload of a notice frame.
type Notice struct {
	Title    string          `json:"title"`
	Message  string          `json:"message"`
	Severity entity.Severity `json:"severity"`
}

type subscriber struct {
	id     int64
	stream chan Frame
}

// Hub keeps per-user subscriber channels. Sends never block: a subscriber
// whose buffer is full misses the frame.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[int64]*subscriber
	badges      map[string]alert.Badge
	nextID      int64
	seq         atomic.Int64
	bufferSize  int
	logger      *slog.Logger
}

var (
	_ service.BadgeSink   = (*Hub)(nil)
	_ service.SoundPlayer = (*Hub)(nil)
	_ service.Notifier    = (*Hub)(nil)
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewHub creates the hub sized from the realtime config.
func NewHub(params Params) *Hub {
	bufferSize := defaultBufferSize
	if params.Config.Realtime != nil && params.Config.Realtime.BufferSize > 0 {
		bufferSize = params.Config.Realtime.BufferSize
	}

	return &Hub{
		subscribers: make(map[string]map[int64]*subscriber),
		badges:      make(map[string]alert.Badge),
		bufferSize:  bufferSize,
		logger:      params.Logger,
	}
}

// Subscribe registers a subscriber for userID until ctx is done or the
// returned cancel is called. The current badge, if any, is queued first.
func (h *Hub) Subscribe(ctx context.Context, userID string) (<-chan Frame, func()) {
	if userID == "" {
		ch := make(chan Frame)
		close(ch)

		return ch, func() {}
	}

	h.mu.Lock()
	h.nextID++
	sub := &subscriber{
		id:     h.nextID,
		stream: make(chan Frame, h.bufferSize),
	}
	// The stream is still private here, so the replayed badge lands ahead of
	// any concurrent publish.
	if badge, ok := h.badges[userID]; ok {
		if frame, err := h.frame(FrameBadge, badge); err == nil {
			select {
			case sub.stream <- frame:
			default:
			}
		}
	}
	if _, ok := h.subscribers[userID]; !ok {
		h.subscribers[userID] = make(map[int64]*subscriber)
	}
	h.subscribers[userID][sub.id] = sub
	h.mu.Unlock()

	done := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.unsubscribe(userID, sub.id)
			close(done)
		})
	}
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()

	return sub.stream, cancel
}

func (h *Hub) unsubscribe(userID string, id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subscribers := h.subscribers[userID]
	if subscribers == nil {
		return
	}
	delete(subscribers, id)
	if len(subscribers) == 0 {
		delete(h.subscribers, userID)
	}
}

// SubscriberCount returns the number of open subscriptions of userID.
func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[userID])
}

// Badge returns the last badge pushed for userID.
func (h *Hub) Badge(userID string) (alert.Badge, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	badge, ok := h.badges[userID]

	return badge, ok
}

func (h *Hub) frame(frameType FrameType, payload any) (Frame, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Frame{}, err
	}

	return Frame{
		Type: frameType,
		ID:   strconv.FormatInt(h.seq.Add(1), 10),
		Data: data,
	}, nil
}

// Publish delivers a frame to every subscriber of userID.
func (h *Hub) Publish(ctx context.Context, userID string, frameType FrameType, payload any) {
	frame, err := h.frame(frameType, payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "[Realtime] failed to encode frame",
			slog.String("type", string(frameType)),
			slog.Any("error", err),
		)

		return
	}

	h.mu.RLock()
	subscribers := make([]*subscriber, 0, len(h.subscribers[userID]))
	for _, sub := range h.subscribers[userID] {
		subscribers = append(subscribers, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subscribers {
		select {
		case sub.stream <- frame:
		default:
			h.logger.WarnContext(ctx, "[Realtime] subscriber buffer full, dropping frame",
				slog.String("userID", userID),
				slog.String("type", string(frameType)),
			)
		}
	}
}

// SetBadge records and broadcasts the badge.
func (h *Hub) SetBadge(ctx context.Context, userID string, badge alert.Badge) {
	h.mu.Lock()
	h.badges[userID] = badge
	h.mu.Unlock()

	h.Publish(ctx, userID, FrameBadge, badge)
}

// PlayAlertSound asks connected clients to play the alert sound.
func (h *Hub) PlayAlertSound(ctx context.Context, userID string) {
	h.Publish(ctx, userID, FrameSound, map[string]int64{"at": time.Now().UnixMilli()})
}

// Notify broadcasts a toast.
func (h *Hub) Notify(ctx context.Context, userID, title, message string, severity entity.Severity) {
	h.Publish(ctx, userID, FrameNotice, Notice{Title: title, Message: message, Severity: severity})
}

// Forget drops the cached badge of userID.
func (h *Hub) Forget(userID string) {
	h.mu.Lock()
	delete(h.badges, userID)
	h.mu.Unlock()
}
