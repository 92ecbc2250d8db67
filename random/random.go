package random

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
)

// ErrInvalidArgument is wrapped by every validation failure in this package.
var ErrInvalidArgument = errors.New("invalid argument")

// Kind selects which flavor of number to generate.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
)

// ParseKind converts the textual kind accepted on the command line.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "int":
		return KindInt, nil
	case "float":
		return KindFloat, nil
	default:
		return 0, fmt.Errorf("%w: kind must be either 'int' or 'float'", ErrInvalidArgument)
	}
}

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Source supplies uniform randomness. *rand.Rand satisfies it; tests may
// substitute a deterministic implementation.
type Source interface {
	IntN(n int) int
	Float64() float64
}

type processSource struct{}

func (processSource) IntN(n int) int   { return rand.IntN(n) }
func (processSource) Float64() float64 { return rand.Float64() }

// Generator produces random numbers from a Source.
type Generator struct {
	src Source
}

func New(src Source) *Generator {
	return &Generator{src: src}
}

// Default draws from the process-wide math/rand/v2 generator.
var Default = New(processSource{})

// Int returns a uniform integer in [min, max]. Both endpoints are possible
// outcomes. The caller is responsible for min <= max.
func (g *Generator) Int(min, max int) int {
	return min + g.src.IntN(max-min+1)
}

// Float returns min + (max-min)*u with u uniform in [0, 1). The upper bound
// is excluded unless min == max.
func (g *Generator) Float(min, max float64) float64 {
	return min + (max-min)*g.src.Float64()
}

// Many generates count numbers of the given kind between min and max,
// in generation order. Integer kinds truncate the bounds toward zero first.
// A validation failure returns before any randomness is drawn.
func (g *Generator) Many(kind Kind, count int, min, max float64) ([]Number, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be a positive integer", ErrInvalidArgument)
	}
	if min > max {
		return nil, fmt.Errorf("%w: min_value must be <= max_value", ErrInvalidArgument)
	}

	out := make([]Number, 0, count)
	switch kind {
	case KindInt:
		imin, imax := int(min), int(max)
		for i := 0; i < count; i++ {
			out = append(out, Number{Kind: KindInt, Int: g.Int(imin, imax)})
		}
	case KindFloat:
		for i := 0; i < count; i++ {
			out = append(out, Number{Kind: KindFloat, Float: g.Float(min, max)})
		}
	default:
		return nil, fmt.Errorf("%w: kind must be either 'int' or 'float'", ErrInvalidArgument)
	}
	return out, nil
}

func Int(min, max int) int           { return Default.Int(min, max) }
func Float(min, max float64) float64 { return Default.Float(min, max) }

func Many(kind Kind, count int, min, max float64) ([]Number, error) {
	return Default.Many(kind, count, min, max)
}

// Number is a single generated value tagged with its kind.
type Number struct {
	Kind  Kind
	Int   int
	Float float64
}

func (n Number) String() string {
	if n.Kind == KindInt {
		return strconv.Itoa(n.Int)
	}
	return strconv.FormatFloat(n.Float, 'g', -1, 64)
}
