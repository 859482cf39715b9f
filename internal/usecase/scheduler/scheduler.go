package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"storefront-sim/internal/domain/product"
	"storefront-sim/internal/domain/promotion"
	"storefront-sim/internal/pkg/clock"
	"storefront-sim/internal/pkg/errs"
)

var ErrSchedulerAlreadyRunning = errs.ErrSchedulerAlreadyRunning

// Hooks are called synchronously after every transition, outside the scheduler lock.
// Lane hooks receive the activated product id, or an empty id on deactivation.
type Hooks struct {
	OnFlashSaleChange      func(product.ID)
	OnRecommendationChange func(product.ID)
	OnStateChange          func(promotion.State)
}

type lane struct {
	kind   promotion.Kind
	timing Timing
	cycle  clock.Timer
	expiry clock.Timer
	// incremented per activation so a stale expiry cannot clear a newer one
	activation uint64
}

// Scheduler owns the promotion state and drives the flash sale and
// recommendation lanes from clock timers.
type Scheduler struct {
	mu          sync.Mutex
	catalog     *product.Catalog
	clock       clock.Clock
	rng         Random
	logger      *slog.Logger
	state       promotion.State
	hooks       Hooks
	subscribers map[uint64]func(promotion.State)
	nextSubID   uint64
	flash       *lane
	recommend   *lane
	running     bool
	generation  uint64
}

func New(catalog *product.Catalog, clk clock.Clock, rng Random, cfg Config, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		catalog:     catalog,
		clock:       clk,
		rng:         rng,
		logger:      logger.With("component", "promotion_scheduler"),
		subscribers: make(map[uint64]func(promotion.State)),
		flash:       &lane{kind: promotion.KindFlashSale, timing: cfg.FlashSale},
		recommend:   &lane{kind: promotion.KindRecommendation, timing: cfg.Recommendation},
	}
}

// Initialize arms both lanes with their random start delays. Slots left over
// from a stopped run have no expiry pending, so they are cleared first.
func (s *Scheduler) Initialize(hooks Hooks) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrSchedulerAlreadyRunning
	}
	s.running = true
	s.hooks = hooks
	s.generation++
	gen := s.generation

	var stale []*notification
	for _, l := range []*lane{s.flash, s.recommend} {
		if !s.slotLocked(l.kind).IsZero() {
			s.setSlotLocked(l.kind, "")
			s.logger.Info("stale promotion cleared", "kind", l.kind)
			stale = append(stale, s.notificationLocked(l.kind, ""))
		}
		delay := s.startDelay(l.timing)
		l.cycle = s.clock.AfterFunc(delay, func() { s.tick(l, gen) })
		s.logger.Debug("promotion lane armed", "kind", l.kind, "start_delay", delay)
	}
	s.mu.Unlock()

	for _, n := range stale {
		s.dispatch(n)
	}
	return nil
}

// UpdateLastSelectedProduct records the product most recently added to a cart.
func (s *Scheduler) UpdateLastSelectedProduct(id product.ID) {
	s.mu.Lock()
	s.state.LastSelectedProductID = id
	n := s.notificationLocked("", "")
	s.mu.Unlock()

	s.dispatch(n)
}

// StopAll cancels every pending timer. Safe to call repeatedly.
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopAllLocked()
}

// Cleanup stops all timers, clears both promotion slots and drops every hook and subscriber.
func (s *Scheduler) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopAllLocked()
	s.state.FlashSaleProductID = ""
	s.state.RecommendationProductID = ""
	s.hooks = Hooks{}
	s.subscribers = make(map[uint64]func(promotion.State))
}

func (s *Scheduler) State() promotion.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Subscribe registers fn for every state change and returns a func that removes it.
func (s *Scheduler) Subscribe(fn func(promotion.State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Scheduler) stopAllLocked() {
	for _, l := range []*lane{s.flash, s.recommend} {
		if l.cycle != nil {
			l.cycle.Stop()
			l.cycle = nil
		}
		if l.expiry != nil {
			l.expiry.Stop()
			l.expiry = nil
		}
	}
	if s.running {
		s.logger.Info("promotion scheduler stopped")
	}
	s.running = false
	s.generation++
}

func (s *Scheduler) tick(l *lane, gen uint64) {
	s.mu.Lock()
	if !s.running || gen != s.generation {
		s.mu.Unlock()
		return
	}
	l.cycle = s.clock.AfterFunc(l.timing.Interval, func() { s.tick(l, gen) })
	n := s.activateLocked(l, gen)
	s.mu.Unlock()

	s.dispatch(n)
}

func (s *Scheduler) activateLocked(l *lane, gen uint64) *notification {
	candidates := s.candidatesLocked(l)
	if len(candidates) == 0 {
		s.logger.Debug("promotion skipped: no eligible product", "kind", l.kind)
		return nil
	}
	picked := candidates[s.rng.IntN(len(candidates))]

	if l.expiry != nil {
		l.expiry.Stop()
	}
	l.activation++
	activation := l.activation
	s.setSlotLocked(l.kind, picked.ID)
	l.expiry = s.clock.AfterFunc(l.timing.Duration, func() { s.expire(l, gen, activation) })

	s.logger.Info("promotion activated", "kind", l.kind, "product_id", picked.ID, "duration", l.timing.Duration)
	return s.notificationLocked(l.kind, picked.ID)
}

func (s *Scheduler) expire(l *lane, gen, activation uint64) {
	s.mu.Lock()
	if !s.running || gen != s.generation || l.activation != activation {
		s.mu.Unlock()
		return
	}
	l.expiry = nil
	s.setSlotLocked(l.kind, "")
	s.logger.Info("promotion deactivated", "kind", l.kind)
	n := s.notificationLocked(l.kind, "")
	s.mu.Unlock()

	s.dispatch(n)
}

func (s *Scheduler) candidatesLocked(l *lane) []product.Snapshot {
	inStock := s.catalog.InStock()
	if l.kind != promotion.KindRecommendation {
		return inStock
	}
	out := inStock[:0]
	for _, p := range inStock {
		if p.ID == s.state.LastSelectedProductID || p.ID == s.state.RecommendationProductID {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *Scheduler) slotLocked(kind promotion.Kind) product.ID {
	switch kind {
	case promotion.KindFlashSale:
		return s.state.FlashSaleProductID
	case promotion.KindRecommendation:
		return s.state.RecommendationProductID
	}
	return ""
}

func (s *Scheduler) setSlotLocked(kind promotion.Kind, id product.ID) {
	switch kind {
	case promotion.KindFlashSale:
		s.state.FlashSaleProductID = id
	case promotion.KindRecommendation:
		s.state.RecommendationProductID = id
	}
}

func (s *Scheduler) startDelay(t Timing) time.Duration {
	if t.StartDelayMax <= 0 {
		return 0
	}
	return time.Duration(s.rng.Float64() * float64(t.StartDelayMax))
}

type notification struct {
	kind        promotion.Kind
	productID   product.ID
	state       promotion.State
	hooks       Hooks
	subscribers []func(promotion.State)
}

func (s *Scheduler) notificationLocked(kind promotion.Kind, id product.ID) *notification {
	subs := make([]func(promotion.State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return &notification{
		kind:        kind,
		productID:   id,
		state:       s.state,
		hooks:       s.hooks,
		subscribers: subs,
	}
}

func (s *Scheduler) dispatch(n *notification) {
	if n == nil {
		return
	}
	switch n.kind {
	case promotion.KindFlashSale:
		if n.hooks.OnFlashSaleChange != nil {
			n.hooks.OnFlashSaleChange(n.productID)
		}
	case promotion.KindRecommendation:
		if n.hooks.OnRecommendationChange != nil {
			n.hooks.OnRecommendationChange(n.productID)
		}
	}
	if n.hooks.OnStateChange != nil {
		n.hooks.OnStateChange(n.state)
	}
	for _, fn := range n.subscribers {
		fn(n.state)
	}
}
