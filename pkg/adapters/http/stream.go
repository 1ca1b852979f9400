package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aretw0/micromouse/internal/logging"
	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/go-chi/chi/v5"
)

// subscriberBuffer is how many events a slow client may lag behind before drops.
const subscriberBuffer = 64

// Message is one server-sent event.
type Message struct {
	Event string
	Data  []byte
}

// StreamManager fans lifecycle events out to SSE subscribers, keyed by run ID.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- Message]struct{}
	logger      *slog.Logger
}

// NewStreamManager creates an empty manager. A nil logger discards diagnostics.
func NewStreamManager(logger *slog.Logger) *StreamManager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &StreamManager{
		subscribers: make(map[string]map[chan<- Message]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a channel for runID. The returned func unregisters and closes it.
func (sm *StreamManager) Subscribe(runID string) (<-chan Message, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan Message, subscriberBuffer)
	if _, ok := sm.subscribers[runID]; !ok {
		sm.subscribers[runID] = make(map[chan<- Message]struct{})
	}
	sm.subscribers[runID][ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			sm.mu.Lock()
			defer sm.mu.Unlock()
			if subs, ok := sm.subscribers[runID]; ok {
				delete(subs, ch)
				if len(subs) == 0 {
					delete(sm.subscribers, runID)
				}
			}
			close(ch)
		})
	}
}

// Subscribers returns how many clients follow runID.
func (sm *StreamManager) Subscribers(runID string) int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers[runID])
}

// Broadcast sends msg to every subscriber of runID without blocking.
func (sm *StreamManager) Broadcast(runID string, msg Message) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers[runID] {
		select {
		case ch <- msg:
		default:
			sm.logger.Warn("SSE: client buffer full, dropping event", "run_id", runID, "event", msg.Event)
		}
	}
}

func (sm *StreamManager) publish(runID string, eventType domain.EventType, event any) {
	data, err := json.Marshal(event)
	if err != nil {
		sm.logger.Error("SSE: event encode failed", "run_id", runID, "error", err)
		return
	}
	sm.Broadcast(runID, Message{Event: string(eventType), Data: data})
}

// Hooks returns lifecycle hooks that broadcast every event to the run's subscribers.
func (sm *StreamManager) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTurn:    func(e *domain.TurnEvent) { sm.publish(e.RunID, e.Type, e) },
		OnMove:    func(e *domain.MoveEvent) { sm.publish(e.RunID, e.Type, e) },
		OnDeadEnd: func(e *domain.DeadEndEvent) { sm.publish(e.RunID, e.Type, e) },
		OnGoal:    func(e *domain.GoalEvent) { sm.publish(e.RunID, e.Type, e) },
	}
}

// SubscribeEvents handles GET /runs/{id}/events (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	if s.Streams == nil {
		http.Error(w, "event streaming disabled", http.StatusNotFound)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	runID := chi.URLParam(r, "id")
	ch, cancel := s.Streams.Subscribe(runID)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()
	s.Logger.Info("SSE: client subscribed", "run_id", runID)

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Info("SSE: client disconnected", "run_id", runID)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
			flusher.Flush()
			if msg.Event == string(domain.EventGoal) {
				return
			}
		}
	}
}
