package resilient

import (
	"sync"
	"time"
)

// State is the position of a Breaker.
type State int

// Breaker states. The numeric values are exported as the circuit state gauge.
const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig configures a Breaker.
type BreakerConfig struct {
	// MaxFailures consecutive failures open the circuit.
	MaxFailures int

	// Cooldown is how long the circuit stays open before probing.
	Cooldown time.Duration

	// Probes is both the number of concurrent half-open calls allowed and the
	// number of consecutive successes that close the circuit again.
	Probes int
}

// Breaker stops calls to a failing database until it has had time to recover.
//
//   - closed → open after MaxFailures consecutive failures
//   - open → half-open once Cooldown has passed
//   - half-open → closed after Probes consecutive successes
//   - half-open → open on any failure
type Breaker struct {
	mu        sync.Mutex
	cfg       BreakerConfig
	state     State
	failures  int
	successes int
	inFlight  int
	openedAt  time.Time

	onChange func(from, to State)
	now      func() time.Time
}

// NewBreaker creates a closed breaker. Non-positive limits are raised to one.
func NewBreaker(cfg BreakerConfig) *Breaker {
	cfg.MaxFailures = max(cfg.MaxFailures, 1)
	cfg.Probes = max(cfg.Probes, 1)

	return &Breaker{cfg: cfg, now: time.Now}
}

// OnStateChange registers fn to run after every transition. It is called
// synchronously outside the breaker lock.
func (b *Breaker) OnStateChange(fn func(from, to State)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.onChange = fn
}

// Allow reports whether a call may proceed. A true result must be followed by
// exactly one Success or Failure.
func (b *Breaker) Allow() bool {
	b.mu.Lock()

	var from State

	allowed, changed := false, false

	switch b.state {
	case StateClosed:
		allowed = true
	case StateOpen:
		if b.now().Sub(b.openedAt) >= b.cfg.Cooldown {
			from, changed = b.setState(StateHalfOpen)
			b.inFlight = 1
			allowed = true
		}
	case StateHalfOpen:
		if b.inFlight < b.cfg.Probes {
			b.inFlight++
			allowed = true
		}
	}

	fn := b.onChange
	b.mu.Unlock()

	if changed && fn != nil {
		fn(from, StateHalfOpen)
	}

	return allowed
}

// Success records a call that reached a healthy database.
func (b *Breaker) Success() {
	b.mu.Lock()

	var (
		from    State
		changed bool
	)

	switch b.state {
	case StateClosed:
		b.failures = 0
	case StateHalfOpen:
		b.inFlight--
		b.successes++

		if b.successes >= b.cfg.Probes {
			from, changed = b.setState(StateClosed)
		}
	}

	fn := b.onChange
	b.mu.Unlock()

	if changed && fn != nil {
		fn(from, StateClosed)
	}
}

// Failure records a call that the database could not serve.
func (b *Breaker) Failure() {
	b.mu.Lock()

	var (
		from    State
		changed bool
	)

	switch b.state {
	case StateClosed:
		b.failures++

		if b.failures >= b.cfg.MaxFailures {
			from, changed = b.setState(StateOpen)
		}
	case StateHalfOpen:
		b.inFlight--
		from, changed = b.setState(StateOpen)
	}

	fn := b.onChange
	b.mu.Unlock()

	if changed && fn != nil {
		fn(from, StateOpen)
	}
}

// State returns the current state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}

// setState must be called with the lock held.
func (b *Breaker) setState(to State) (State, bool) {
	from := b.state
	if from == to {
		return from, false
	}

	b.state = to
	b.failures = 0
	b.successes = 0

	if to == StateOpen {
		b.openedAt = b.now()
		b.inFlight = 0
	}

	return from, true
}
