package scenario

import (
	"math"
	"math/rand"
	"strconv"
	"sync"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// Generator produces cache requests: a weighted GET/PUT/DELETE mix
// over a bounded key population, with geometrically distributed key
// popularity and value sizes.
type Generator struct {
	BaseURL     string
	Keys        int
	ProbGet     int
	ProbSet     int
	ProbDel     int
	ValSizeDist float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator creates a Generator with the given workload shape.
func NewGenerator(base string, keys, probGet, probSet, probDel int, valSizeDist float64) *Generator {
	if keys < 2 {
		keys = 2
	}
	return &Generator{
		BaseURL:     base,
		Keys:        keys,
		ProbGet:     probGet,
		ProbSet:     probSet,
		ProbDel:     probDel,
		ValSizeDist: clamp(valSizeDist, 0.001, 0.999),
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// geometric samples a geometric distribution with success probability
// p (number of failures before the first success).
func geometric(r *rand.Rand, p float64) int {
	return int(math.Log(1-r.Float64()) / math.Log(1-p))
}

func (g *Generator) key() string {
	// Geometric popularity: low-numbered keys are hot.
	k := geometric(g.rnd, 1/float64(g.Keys-1)) % g.Keys
	return "key" + strconv.Itoa(k)
}

func (g *Generator) value() string {
	n := geometric(g.rnd, g.ValSizeDist) + 1
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = letters[g.rnd.Intn(len(letters))]
	}
	return string(buf)
}

// Targeter yields one target per call, choosing the request type by
// the configured weights.
func (g *Generator) Targeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		g.mu.Lock()
		defer g.mu.Unlock()

		total := g.ProbGet + g.ProbSet + g.ProbDel
		pick := g.rnd.Intn(total)
		key := g.key()

		switch {
		case pick < g.ProbGet:
			t.Method = "GET"
			t.URL = g.BaseURL + "/" + key
		case pick < g.ProbGet+g.ProbSet:
			t.Method = "PUT"
			t.URL = g.BaseURL + "/" + key + "/" + g.value()
		default:
			t.Method = "DELETE"
			t.URL = g.BaseURL + "/" + key
		}
		t.Body = nil
		t.Header = nil
		return nil
	}
}
