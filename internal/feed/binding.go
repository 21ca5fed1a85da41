package feed

import (
	"context"
	"sync"

	"spendwise/internal/insight"
	"spendwise/internal/models"
)

// Status is the state of a binding's snapshot. A binding is always in
// exactly one state — never, say, loading with an error set.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// Snapshot is one full state of a bound transaction view: the complete
// current result set plus the aggregates derived from it.
type Snapshot struct {
	Status       Status
	Transactions []models.Transaction
	Summary      insight.Summary
	Breakdown    []insight.CategoryTotal
	Trend        []insight.MonthTotal
	Err          error
}

// Loader fetches the full current result set for a binding's scope,
// ordered by date descending.
type Loader func(ctx context.Context) ([]models.Transaction, error)

// Options tunes the aggregates a binding derives on each reload.
type Options struct {
	CategoryLimit int // top-N category breakdown entries
	TrendMonths   int // most recent N monthly trend buckets
}

// Binding subscribes one view to one user's transaction collection. On
// every change it replaces its in-memory list wholesale and recomputes the
// aggregates before publishing a new Snapshot. A loader failure is terminal:
// the binding publishes an error snapshot and stops; the consumer offers a
// retry by creating a fresh binding. Close must be called when the view is
// torn down, or the subscription leaks.
type Binding struct {
	hub    *Hub
	scope  Scope
	loader Loader
	opts   Options

	notify  chan struct{}
	updates chan Snapshot
	cancel  context.CancelFunc
	once    sync.Once
	done    chan struct{}
}

// NewBinding registers a subscription and starts the reload loop. The first
// snapshot is published as soon as the initial load completes. Bindings for
// the same scope are independent; nothing is shared or deduplicated.
func NewBinding(ctx context.Context, hub *Hub, scope Scope, loader Loader, opts Options) *Binding {
	if opts.CategoryLimit == 0 {
		opts.CategoryLimit = 6
	}
	if opts.TrendMonths == 0 {
		opts.TrendMonths = 6
	}

	ctx, cancel := context.WithCancel(ctx)
	b := &Binding{
		hub:     hub,
		scope:   scope,
		loader:  loader,
		opts:    opts,
		notify:  hub.subscribe(scope),
		updates: make(chan Snapshot, 1),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go b.run(ctx)
	return b
}

// Updates delivers snapshots. Only the latest snapshot is retained: a slow
// consumer sees the newest state, not a backlog. The channel is closed when
// the binding stops, whether by Close or by a terminal load error.
func (b *Binding) Updates() <-chan Snapshot {
	return b.updates
}

// Close cancels the subscription and releases hub resources. Idempotent.
func (b *Binding) Close() {
	b.once.Do(b.cancel)
	<-b.done
}

func (b *Binding) run(ctx context.Context) {
	defer close(b.done)
	defer close(b.updates)
	defer b.hub.unsubscribe(b.scope, b.notify)

	if !b.reload(ctx) {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-b.notify:
			if !b.reload(ctx) {
				return
			}
		}
	}
}

// reload fetches the full result set, recomputes aggregates, and publishes.
// Returns false on a terminal error.
func (b *Binding) reload(ctx context.Context) bool {
	txs, err := b.loader(ctx)
	if err != nil {
		b.publish(Snapshot{Status: StatusError, Err: err})
		return false
	}

	b.publish(Snapshot{
		Status:       StatusReady,
		Transactions: txs,
		Summary:      insight.Summarize(txs),
		Breakdown:    insight.CategoryBreakdown(txs, b.opts.CategoryLimit),
		Trend:        insight.MonthlyTrend(txs, b.opts.TrendMonths),
	})
	return true
}

// publish replaces any undelivered snapshot with the new one.
func (b *Binding) publish(s Snapshot) {
	for {
		select {
		case b.updates <- s:
			return
		default:
			select {
			case <-b.updates:
			default:
			}
		}
	}
}
