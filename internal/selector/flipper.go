package selector

import (
	"math/rand"
	"sync"
	"time"
)

// Flipper supplies the coin flip used for PreferBoth. Heads (true) means nonveg.
type Flipper interface {
	Flip() bool
}

// RandomFlipper is an unweighted coin. Safe for concurrent use.
type RandomFlipper struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomFlipper returns a coin seeded with seed. The same seed replays the
// same sequence of flips.
func NewRandomFlipper(seed int64) *RandomFlipper {
	return &RandomFlipper{rnd: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededFlipper returns a coin seeded from the clock.
func NewTimeSeededFlipper() *RandomFlipper {
	return NewRandomFlipper(time.Now().UnixNano())
}

func (f *RandomFlipper) Flip() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rnd.Intn(2) == 1
}

// FixedFlipper always lands the same way.
type FixedFlipper bool

func (f FixedFlipper) Flip() bool { return bool(f) }

const (
	AlwaysNonVeg = FixedFlipper(true)
	AlwaysVeg    = FixedFlipper(false)
)
