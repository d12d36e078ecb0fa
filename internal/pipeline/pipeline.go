package pipeline

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/themuzzleflare/provenance/internal/config"
)

// Source fetches the raw collection for one screen.
type Source[V any] func(ctx context.Context) ([]V, error)

// Update is the outcome of one pipeline run: a fresh snapshot, the
// changes relative to the previous one and the presentation state.
// Snapshot, Changes and State are derived from the same event and are
// delivered together.
type Update[K comparable, V any] struct {
	Snapshot   SectionedCollection[K, V]
	Changes    Changeset[K]
	State      State
	Generation uint64
}

// Config parameterizes a Pipeline for one screen. The per-screen
// variation lives entirely in these functions, the control flow is
// shared.
type Config[K comparable, V any] struct {
	Source      Source[V]
	GroupKey    func(V) K
	CompareKeys func(K, K) int
	ID          func(V) string
	Equal       func(V, V) bool

	// OnUpdate receives every applied update, including re-renders
	// pushed by settings changes.
	OnUpdate func(Update[K, V])

	// Settings, when set, is subscribed to so that settings writes
	// trigger a re-render of the current snapshot.
	Settings *config.Store
}

// Pipeline drives fetch, filter, group, diff and state for one screen.
// One goroutine owns each instance; completions are serialized through
// the internal mutex and stale completions are discarded by generation.
type Pipeline[K comparable, V any] struct {
	cfg Config[K, V]
	log zerolog.Logger

	issued uint64 // atomic

	mu          sync.Mutex
	predicate   Predicate[V]
	raw         []V
	snapshot    SectionedCollection[K, V]
	state       State
	everLoaded  bool
	applied     uint64
	unsubscribe func()
}

// New returns a Pipeline for the given configuration. Close must be
// called when the screen is dismissed.
func New[K comparable, V any](cfg Config[K, V]) *Pipeline[K, V] {
	p := &Pipeline[K, V]{
		cfg:   cfg,
		log:   log.With().Str("component", "pipeline").Logger(),
		state: State{Kind: StateInitialLoad},
	}

	if cfg.Settings != nil {
		p.unsubscribe = cfg.Settings.Subscribe(func(config.Settings) {
			p.mu.Lock()
			update := Update[K, V]{Snapshot: p.snapshot, State: p.state, Generation: p.applied}
			p.mu.Unlock()
			p.deliver(update)
		})
	}

	return p
}

// Close releases the settings subscription.
func (p *Pipeline[K, V]) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
	}
}

// State returns the current presentation state.
func (p *Pipeline[K, V]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Snapshot returns the current sectioned collection.
func (p *Pipeline[K, V]) Snapshot() SectionedCollection[K, V] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot
}

// Refresh fetches the raw collection and applies a full pipeline run.
// The returned bool is false when the completion was stale: a run
// issued later has already been applied and this result was discarded.
func (p *Pipeline[K, V]) Refresh(ctx context.Context) (Update[K, V], bool) {
	generation := atomic.AddUint64(&p.issued, 1)

	raw, err := p.cfg.Source(ctx)

	p.mu.Lock()
	if generation <= p.applied {
		p.mu.Unlock()
		p.log.Debug().Uint64("generation", generation).Msg("discarding stale completion")
		return Update[K, V]{}, false
	}

	var update Update[K, V]
	if err != nil {
		// The held collection survives a failed fetch, only the state
		// changes.
		p.applied = generation
		p.state = Transition(Conditions{
			RawEmpty:      len(p.raw) == 0,
			EverLoaded:    p.everLoaded,
			FilteredEmpty: p.snapshot.IsEmpty(),
			ErrorMessage:  err.Error(),
		})
		update = Update[K, V]{Snapshot: p.snapshot, State: p.state, Generation: generation}
		p.mu.Unlock()

		p.log.Error().Err(err).Msg("pipeline fetch failed")
		p.deliver(update)
		return update, true
	}

	p.raw = raw
	p.everLoaded = true
	update = p.applyLocked(generation)
	p.mu.Unlock()

	p.deliver(update)
	return update, true
}

// SetPredicate replaces the active predicate and re-projects the held
// raw collection without a fetch.
func (p *Pipeline[K, V]) SetPredicate(predicate Predicate[V]) Update[K, V] {
	p.mu.Lock()
	p.predicate = predicate
	update := p.applyLocked(p.applied)
	p.mu.Unlock()

	p.deliver(update)
	return update
}

// applyLocked recomputes projection, diff and state from the held raw
// collection. The caller holds the mutex.
func (p *Pipeline[K, V]) applyLocked(generation uint64) Update[K, V] {
	next := Project(p.raw, p.predicate, p.cfg.GroupKey, p.cfg.CompareKeys)
	changes := Diff(p.snapshot, next, p.cfg.ID, p.cfg.Equal)

	p.snapshot = next
	p.applied = generation
	p.state = Transition(Conditions{
		RawEmpty:      len(p.raw) == 0,
		EverLoaded:    p.everLoaded,
		FilteredEmpty: next.IsEmpty(),
	})

	return Update[K, V]{Snapshot: next, Changes: changes, State: p.state, Generation: generation}
}

func (p *Pipeline[K, V]) deliver(update Update[K, V]) {
	if p.cfg.OnUpdate != nil {
		p.cfg.OnUpdate(update)
	}
}
