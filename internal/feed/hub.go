// Package feed keeps in-memory views of a user's records synchronized with
// the database. Services announce every mutation to a Hub; each active view
// owns a Binding that reloads the full current result set on every
// announcement and recomputes its aggregates synchronously. Deltas are never
// shipped — replace-wholesale avoids incremental-merge bugs at a cost that
// is acceptable for personal-finance data volumes.
package feed

import "sync"

// Collection names used as subscription scopes.
const (
	CollectionTransactions = "transactions"
	CollectionGoals        = "goals"
)

// Scope identifies one user's view of one collection.
type Scope struct {
	UserID     string
	Collection string
}

// Hub fans mutation events out to subscribed bindings. Each subscriber has a
// one-slot channel: a pending signal absorbs later ones, which is sound
// because every signal triggers a full reload anyway.
type Hub struct {
	mu   sync.Mutex
	subs map[Scope]map[chan struct{}]struct{}
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[Scope]map[chan struct{}]struct{})}
}

// Notify announces that a record in the scoped collection changed.
// It never blocks.
func (h *Hub) Notify(scope Scope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs[scope] {
		select {
		case ch <- struct{}{}:
		default:
			// A signal is already pending; the reload it triggers
			// will observe this change too.
		}
	}
}

func (h *Hub) subscribe(scope Scope) chan struct{} {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[scope] == nil {
		h.subs[scope] = make(map[chan struct{}]struct{})
	}
	h.subs[scope][ch] = struct{}{}
	return ch
}

func (h *Hub) unsubscribe(scope Scope, ch chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subs[scope], ch)
	if len(h.subs[scope]) == 0 {
		delete(h.subs, scope)
	}
}
