// Package listcontroller drives one dashboard list screen: debounced filters,
// immediate paging, silent background polling and refetch-after-mutation.
// Responses are keyed by a monotonic token so an older reply never overwrites
// state produced by a newer request.
package listcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	DefaultDebounce     = 500 * time.Millisecond
	DefaultPollInterval = 5 * time.Second
	DefaultFetchTimeout = 15 * time.Second
)

// Query is what the screen currently asks the server for.
type Query struct {
	Page         int
	Limit        int
	Search       string
	Status       string
	From         *time.Time
	To           *time.Time
	IncludeStats bool
}

type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// Page mirrors the list endpoint body: {data, meta, stats?}.
type Page[T any] struct {
	Data  []T              `json:"data"`
	Meta  Meta             `json:"meta"`
	Stats map[string]int64 `json:"stats,omitempty"`
}

type Fetcher[T any] func(ctx context.Context, q Query) (Page[T], error)

// State is an immutable snapshot handed to subscribers.
type State[T any] struct {
	Query      Query
	Data       []T
	Meta       Meta
	Stats      map[string]int64
	Loading    bool
	Refreshing bool
	Err        error
}

func (s State[T]) CanPrev() bool { return s.Query.Page > 1 }

func (s State[T]) CanNext() bool { return s.Meta.TotalPages > 0 && s.Query.Page < s.Meta.TotalPages }

type Options struct {
	Clock        clockwork.Clock
	Debounce     time.Duration
	PollInterval time.Duration // 0 disables polling
	FetchTimeout time.Duration
	Initial      Query
}

type Controller[T any] struct {
	fetch Fetcher[T]
	clock clockwork.Clock
	opts  Options

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	state    State[T]
	seq      uint64
	pending  bool
	debounce clockwork.Timer
	ticker   clockwork.Ticker
	subs     map[chan State[T]]struct{}
	closed   bool
}

// New issues the first (non-silent) fetch right away and starts polling.
func New[T any](fetch Fetcher[T], opts Options) *Controller[T] {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = DefaultFetchTimeout
	}
	if opts.Initial.Page < 1 {
		opts.Initial.Page = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller[T]{
		fetch:  fetch,
		clock:  opts.Clock,
		opts:   opts,
		ctx:    ctx,
		cancel: cancel,
		state:  State[T]{Query: opts.Initial, Data: []T{}},
		subs:   make(map[chan State[T]]struct{}),
	}

	c.mu.Lock()
	c.startLocked(false)
	if opts.PollInterval > 0 {
		c.ticker = c.clock.NewTicker(opts.PollInterval)
		c.wg.Add(1)
		go c.poll(c.ticker)
	}
	c.mu.Unlock()
	return c
}

// Snapshot returns the current state.
func (c *Controller[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe delivers every state change; a slow reader only sees the latest one.
// The channel is closed by Close or by the returned cancel func.
func (c *Controller[T]) Subscribe() (<-chan State[T], func()) {
	ch := make(chan State[T], 1)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		close(ch)
		return ch, func() {}
	}
	c.subs[ch] = struct{}{}
	ch <- c.state
	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if _, ok := c.subs[ch]; ok {
			delete(c.subs, ch)
			close(ch)
		}
	}
}

func (c *Controller[T]) SetSearch(s string) {
	c.setFilters(func(q *Query) bool {
		if q.Search == s {
			return false
		}
		q.Search = s
		return true
	})
}

func (c *Controller[T]) SetStatus(s string) {
	c.setFilters(func(q *Query) bool {
		if q.Status == s {
			return false
		}
		q.Status = s
		return true
	})
}

// SetDateRange: nil bound = tidak difilter.
func (c *Controller[T]) SetDateRange(from, to *time.Time) {
	c.setFilters(func(q *Query) bool {
		if sameTime(q.From, from) && sameTime(q.To, to) {
			return false
		}
		q.From, q.To = from, to
		return true
	})
}

// setFilters resets to page 1 and (re)arms the debounce timer.
func (c *Controller[T]) setFilters(apply func(q *Query) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !apply(&c.state.Query) {
		return
	}
	c.state.Query.Page = 1
	if c.debounce != nil {
		c.debounce.Stop()
	}
	var t clockwork.Timer
	t = c.clock.AfterFunc(c.opts.Debounce, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// timer yang sudah diganti tidak boleh fetch
		if c.closed || c.debounce != t {
			return
		}
		c.debounce = nil
		c.startLocked(false)
	})
	c.debounce = t
	c.publishLocked()
}

// SetPage fetches immediately. Pages outside [1, totalPages] are ignored.
func (c *Controller[T]) SetPage(page int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || page < 1 || page > c.state.Meta.TotalPages || page == c.state.Query.Page {
		return false
	}
	c.state.Query.Page = page
	c.stopDebounceLocked()
	c.startLocked(false)
	return true
}

func (c *Controller[T]) Next() bool { return c.SetPage(c.Snapshot().Query.Page + 1) }

func (c *Controller[T]) Prev() bool { return c.SetPage(c.Snapshot().Query.Page - 1) }

// Refresh refetches the current query non-silently. The channel closes when
// that fetch has finished (or was superseded).
func (c *Controller[T]) Refresh() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		done := make(chan struct{})
		close(done)
		return done
	}
	c.stopDebounceLocked()
	return c.startLocked(false)
}

// AfterMutation runs fn and, only when it succeeds, waits for a fresh non-silent fetch.
func (c *Controller[T]) AfterMutation(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	select {
	case <-c.Refresh():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops every timer, cancels in-flight fetches and closes subscriber channels.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.stopDebounceLocked()
	if c.ticker != nil {
		c.ticker.Stop()
	}
	for ch := range c.subs {
		close(ch)
		delete(c.subs, ch)
	}
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

func (c *Controller[T]) poll(t clockwork.Ticker) {
	defer c.wg.Done()
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-t.Chan():
			c.mu.Lock()
			// jangan tumpuk request, dan jangan dahului debounce yang sedang menunggu
			if !c.closed && !c.pending && c.debounce == nil {
				c.startLocked(true)
			}
			c.mu.Unlock()
		}
	}
}

func (c *Controller[T]) startLocked(silent bool) <-chan struct{} {
	c.seq++
	token := c.seq
	q := c.state.Query
	c.pending = true
	if silent {
		c.state.Refreshing = true
	} else {
		c.state.Loading = true
	}
	c.publishLocked()

	done := make(chan struct{})
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer close(done)

		ctx, cancel := context.WithTimeout(c.ctx, c.opts.FetchTimeout)
		page, err := c.fetch(ctx, q)
		cancel()

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed || token != c.seq {
			return
		}
		c.pending = false
		c.state.Loading = false
		c.state.Refreshing = false
		c.state.Err = err
		if err == nil {
			if page.Data == nil {
				page.Data = []T{}
			}
			c.state.Data = page.Data
			c.state.Meta = page.Meta
			c.state.Stats = page.Stats
		}
		c.publishLocked()
	}()
	return done
}

func (c *Controller[T]) stopDebounceLocked() {
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
}

func (c *Controller[T]) publishLocked() {
	s := c.state
	for ch := range c.subs {
		select {
		case ch <- s:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- s
		}
	}
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
