package services

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"luminous/app/models"
)

// DefaultGradientInterval is how often the heading gradient changes.
const DefaultGradientInterval = 1500 * time.Millisecond

var ErrAlreadyMounted = errors.New("gradient cycler already mounted")

// RandomSource picks an index in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Ticker is the subset of *time.Ticker the cycler depends on.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

type timeTicker struct{ *time.Ticker }

func (t timeTicker) Chan() <-chan time.Time { return t.C }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// NewRandomSource returns a time-seeded source. It is not safe for concurrent use.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GradientCycler periodically picks a new two-color gradient from a palette.
// The timer runs only between Mount and Unmount.
type GradientCycler struct {
	palette   []string
	rnd       RandomSource
	interval  time.Duration
	newTicker func(time.Duration) Ticker

	mu      sync.Mutex
	current models.GradientPair
	stop    chan struct{}
	done    chan struct{}
}

// GradientOption configures a GradientCycler.
type GradientOption func(*GradientCycler)

// WithInterval overrides DefaultGradientInterval.
func WithInterval(d time.Duration) GradientOption {
	return func(c *GradientCycler) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithTicker replaces the ticker factory.
func WithTicker(f func(time.Duration) Ticker) GradientOption {
	return func(c *GradientCycler) { c.newTicker = f }
}

// WithInitial sets the pair reported by Current before the first tick.
func WithInitial(p models.GradientPair) GradientOption {
	return func(c *GradientCycler) { c.current = p }
}

// NewGradientCycler creates a cycler over palette. A nil rnd uses NewRandomSource.
func NewGradientCycler(palette []string, rnd RandomSource, opts ...GradientOption) *GradientCycler {
	if rnd == nil {
		rnd = NewRandomSource()
	}
	c := &GradientCycler{
		palette:   append([]string(nil), palette...),
		rnd:       rnd,
		interval:  DefaultGradientInterval,
		newTicker: NewTimeTicker,
		current:   models.DefaultGradient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Interval reports the tick interval.
func (c *GradientCycler) Interval() time.Duration {
	return c.interval
}

// Current returns the most recently applied pair.
func (c *GradientCycler) Current() models.GradientPair {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Tick draws two colors uniformly, with replacement, and applies them.
func (c *GradientCycler) Tick() models.GradientPair {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = models.GradientPair{
		From: c.palette[c.rnd.Intn(len(c.palette))],
		To:   c.palette[c.rnd.Intn(len(c.palette))],
	}
	return c.current
}

// Mounted reports whether the timer is running.
func (c *GradientCycler) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

// Mount starts the timer. onChange runs on the timer goroutine after every tick.
// onChange must not call Unmount directly, since Unmount waits for that
// goroutine; a callback that wants to stop the cycler calls go c.Unmount().
func (c *GradientCycler) Mount(onChange func(models.GradientPair)) error {
	c.mu.Lock()
	if c.stop != nil {
		c.mu.Unlock()
		return ErrAlreadyMounted
	}
	stop, done := make(chan struct{}), make(chan struct{})
	c.stop, c.done = stop, done
	ticker := c.newTicker(c.interval)
	c.mu.Unlock()

	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.Chan():
				// A pending stop wins over a tick that raced with it.
				select {
				case <-stop:
					return
				default:
				}
				pair := c.Tick()
				if onChange != nil {
					onChange(pair)
				}
			}
		}
	}()
	return nil
}

// Unmount stops the timer and waits for the timer goroutine to exit.
// No onChange call happens after Unmount returns. Calling it twice is a no-op.
// It must not be called synchronously from onChange.
func (c *GradientCycler) Unmount() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// GradientService hands out one cycler per viewer so no random source or timer is shared.
type GradientService struct {
	Palette   []string
	Interval  time.Duration
	NewRandom func() RandomSource
	NewTicker func(time.Duration) Ticker
}

// NewGradientService creates a service over models.Palette.
func NewGradientService(interval time.Duration) *GradientService {
	if interval <= 0 {
		interval = DefaultGradientInterval
	}
	return &GradientService{
		Palette:   models.Palette,
		Interval:  interval,
		NewRandom: NewRandomSource,
		NewTicker: NewTimeTicker,
	}
}

// NewCycler returns an unmounted cycler.
func (s *GradientService) NewCycler() *GradientCycler {
	return NewGradientCycler(s.Palette, s.NewRandom(),
		WithInterval(s.Interval),
		WithTicker(s.NewTicker),
	)
}

// Draw returns one freshly drawn pair.
func (s *GradientService) Draw() models.GradientPair {
	return s.NewCycler().Tick()
}
