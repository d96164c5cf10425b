// Package congruential implements the linear and multiplicative congruential
// generators used to teach pseudo-random sequences.
//
// All state is exact (math/big): the period of X[i] = (a*X[i-1] + c) mod 2^P
// depends on the exact recurrence, so no floating point is involved until the
// ratio r[i] = X[i] / (m-1) is derived for display.
package congruential

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/tifye/simlab/assert"
	"github.com/tifye/simlab/sim"
)

// Kind selects the recurrence.
type Kind uint8

const (
	// Linear is X = (a*X + c) mod m with a = 1 + 4K.
	Linear Kind = iota
	// Multiplicative is X = (a*X) mod m with a = 8K + 3 and c = 0.
	Multiplicative
)

func (k Kind) String() string {
	if k == Multiplicative {
		return "mcg"
	}
	return "lcg"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

const (
	MinPower = 2
	// MaxPower bounds m = 2^P so a request cannot allocate unbounded integers.
	MaxPower = 4096
	MaxCount = 100_000
)

var ErrPeriodNotFound = errors.New("period not found")

// Config holds the user-chosen generator parameters. C is ignored for
// Multiplicative.
type Config struct {
	Kind     Kind
	Seed     *big.Int
	K        *big.Int
	C        *big.Int
	Power    int
	Decimals int
	Count    int
}

// Generator is a validated configuration with derived a and m.
type Generator struct {
	kind     Kind
	seed     *big.Int
	a        *big.Int
	c        *big.Int
	m        *big.Int
	mMinus1  *big.Float
	decimals int
	count    int
}

// Row is one step: index, previous state, operation trace, new state and
// the rounded ratio.
type Row struct {
	Index     int      `json:"index"`
	Previous  *big.Int `json:"previous"`
	Operation string   `json:"operation"`
	Next      *big.Int `json:"next"`
	Ratio     float64  `json:"ratio"`
	Rounded   string   `json:"rounded"`
}

func (Row) Header() []string {
	return []string{"i", "x_prev", "operation", "x", "r"}
}

func (r Row) Record() []string {
	return []string{strconv.Itoa(r.Index), r.Previous.String(), r.Operation, r.Next.String(), r.Rounded}
}

// Diagnostic is the full-period check for a power-of-two modulus.
type Diagnostic struct {
	OK      bool     `json:"ok"`
	Failed  []string `json:"failed,omitempty"`
	Message string   `json:"message"`
}

// Sequence is a complete regeneration.
type Sequence struct {
	Kind       Kind       `json:"kind"`
	A          *big.Int   `json:"a"`
	C          *big.Int   `json:"c"`
	M          *big.Int   `json:"m"`
	Diagnostic Diagnostic `json:"diagnostic"`
	Rows       []Row      `json:"rows"`
}

// DefaultConfig is a small full-period example for kind.
func DefaultConfig(kind Kind) Config {
	if kind == Multiplicative {
		return Config{Kind: kind, Seed: big.NewInt(5), K: big.NewInt(1), Power: 6, Decimals: 4, Count: 10}
	}
	return Config{Kind: kind, Seed: big.NewInt(7), K: big.NewInt(1), C: big.NewInt(3), Power: 5, Decimals: 4, Count: 10}
}

// New validates cfg. It rejects rather than clamps.
func New(cfg Config) (*Generator, error) {
	if cfg.Power < MinPower {
		return nil, sim.Invalid("power", "P must be at least %d, got %d", MinPower, cfg.Power)
	}
	if cfg.Power > MaxPower {
		return nil, sim.Invalid("power", "P must be at most %d, got %d", MaxPower, cfg.Power)
	}
	m := new(big.Int).Lsh(big.NewInt(1), uint(cfg.Power))

	if cfg.Seed == nil {
		return nil, sim.Invalid("seed", "X0 is required")
	}
	if cfg.Seed.Sign() < 0 || cfg.Seed.Cmp(m) >= 0 {
		return nil, sim.Invalid("seed", "X0 must satisfy 0 <= X0 < 2^%d, got %s", cfg.Power, cfg.Seed)
	}
	if cfg.K == nil || cfg.K.Sign() < 0 {
		return nil, sim.Invalid("k", "K must be a non-negative integer")
	}

	a := new(big.Int)
	c := new(big.Int)
	switch cfg.Kind {
	case Linear:
		if cfg.C == nil || cfg.C.Sign() < 0 {
			return nil, sim.Invalid("c", "c must be a non-negative integer")
		}
		a.Mul(cfg.K, big.NewInt(4)).Add(a, big.NewInt(1))
		c.Set(cfg.C)
	case Multiplicative:
		a.Mul(cfg.K, big.NewInt(8)).Add(a, big.NewInt(3))
	default:
		return nil, sim.Invalid("kind", "unknown generator kind %d", cfg.Kind)
	}

	switch cfg.Decimals {
	case 2, 4, 6, 8:
	default:
		return nil, sim.Invalid("decimals", "must be one of 2, 4, 6 or 8, got %d", cfg.Decimals)
	}
	if cfg.Count < 1 || cfg.Count > MaxCount {
		return nil, sim.Invalid("count", "must be between 1 and %d, got %d", MaxCount, cfg.Count)
	}

	mMinus1 := new(big.Int).Sub(m, big.NewInt(1))
	return &Generator{
		kind:     cfg.Kind,
		seed:     new(big.Int).Set(cfg.Seed),
		a:        a,
		c:        c,
		m:        m,
		mMinus1:  new(big.Float).SetInt(mMinus1),
		decimals: cfg.Decimals,
		count:    cfg.Count,
	}, nil
}

// Generate validates cfg and produces its sequence.
func Generate(cfg Config) (Sequence, error) {
	g, err := New(cfg)
	if err != nil {
		return Sequence{}, err
	}
	return g.Sequence(), nil
}

func (g *Generator) A() *big.Int { return new(big.Int).Set(g.a) }
func (g *Generator) C() *big.Int { return new(big.Int).Set(g.c) }
func (g *Generator) M() *big.Int { return new(big.Int).Set(g.m) }

// Next applies one step of the recurrence to x.
func (g *Generator) Next(x *big.Int) *big.Int {
	next := new(big.Int).Mul(g.a, x)
	next.Add(next, g.c)
	return next.Mod(next, g.m)
}

func (g *Generator) trace(x *big.Int) string {
	if g.kind == Multiplicative {
		return fmt.Sprintf("(%s · %s) mod %s", g.a, x, g.m)
	}
	return fmt.Sprintf("(%s · %s + %s) mod %s", g.a, x, g.c, g.m)
}

// ratioPrec is float64's mantissa, so the quotient converts exactly.
const ratioPrec = 53

func (g *Generator) ratio(x *big.Int) float64 {
	q := new(big.Float).SetPrec(ratioPrec).Quo(new(big.Float).SetInt(x), g.mMinus1)
	r, _ := q.Float64()
	return r
}

// Round formats x rounded half-up to d decimals.
func Round(x float64, d int) string {
	assert.AssertInRange(d, 0, 15)
	f := math.Pow(10, float64(d))
	return strconv.FormatFloat(math.Floor(float64(x*f)+0.5)/f, 'f', d, 64)
}

// Sequence regenerates Count rows from the seed.
func (g *Generator) Sequence() Sequence {
	rows := make([]Row, 0, g.count)
	x := new(big.Int).Set(g.seed)
	for i := 1; i <= g.count; i++ {
		next := g.Next(x)
		r := g.ratio(next)
		rows = append(rows, Row{
			Index:     i,
			Previous:  x,
			Operation: g.trace(x),
			Next:      next,
			Ratio:     r,
			Rounded:   Round(r, g.decimals),
		})
		x = next
	}

	return Sequence{
		Kind:       g.kind,
		A:          g.A(),
		C:          g.C(),
		M:          g.M(),
		Diagnostic: g.Diagnose(),
		Rows:       rows,
	}
}

// Diagnose reports whether the Hull–Dobell sufficient condition for maximal
// period holds for m = 2^P.
func (g *Generator) Diagnose() Diagnostic {
	var failed []string
	mod := func(x *big.Int, n int64) int64 {
		return new(big.Int).Mod(x, big.NewInt(n)).Int64()
	}

	if g.kind == Multiplicative {
		if mod(g.a, 8) != 3 {
			failed = append(failed, "a ≡ 3 (mod 8)")
		}
		if mod(g.seed, 2) != 1 {
			failed = append(failed, "odd seed")
		}
		if len(failed) == 0 {
			return Diagnostic{OK: true, Message: "MCG OK: a = 8K+3 and odd seed (c = 0)"}
		}
	} else {
		if mod(g.c, 2) != 1 {
			failed = append(failed, "odd c")
		}
		if mod(g.a, 4) != 1 {
			failed = append(failed, "a ≡ 1 (mod 4)")
		}
		if len(failed) == 0 {
			return Diagnostic{OK: true, Message: "Hull–Dobell OK (m = 2^P): odd c and a ≡ 1 (mod 4)"}
		}
	}

	msg := "check parameters: " + failed[0]
	if len(failed) > 1 {
		msg += " and " + failed[1]
	}
	return Diagnostic{OK: false, Failed: failed, Message: msg}
}

// Period iterates from the seed until a state repeats and returns the cycle
// length. It gives up after maxSteps steps.
func (g *Generator) Period(maxSteps int) (int, error) {
	seen := map[string]int{}
	x := new(big.Int).Set(g.seed)
	for step := 0; step <= maxSteps; step++ {
		key := x.String()
		if at, ok := seen[key]; ok {
			return step - at, nil
		}
		seen[key] = step
		x = g.Next(x)
	}
	return 0, fmt.Errorf("%w within %d steps", ErrPeriodNotFound, maxSteps)
}
