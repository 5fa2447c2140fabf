package problemgen

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
)

// Generator produces arithmetic questions. Every question it returns has a
// non-negative answer, and multi-step questions also have a non-negative
// intermediate result. Both hold by construction.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator drawing from src. A nil src uses a randomly
// seeded PCG source.
func New(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rng: rand.New(src)}
}

var defaultGenerator = New(nil)

// Generate produces a question using the package default generator.
func Generate(level Level, advanced bool) *Question {
	return defaultGenerator.Generate(level, advanced)
}

// Generate produces one question for the given level. When advanced is
// true the question has three terms.
func (g *Generator) Generate(level Level, advanced bool) *Question {
	g.mu.Lock()
	defer g.mu.Unlock()

	level = level.Clamp()
	if advanced {
		return g.multiStep(level.MaxOperand())
	}
	return g.standard(level.MaxOperand())
}

func (g *Generator) standard(maxNum int) *Question {
	op := g.operation()
	a := g.between(1, maxNum)
	b := g.between(1, maxNum)

	if op == OpSubtraction && a < b {
		a, b = b, a
	}

	return &Question{
		ID:        uuid.NewString(),
		OperandA:  a,
		OperandB:  b,
		Operation: op,
		Answer:    op.Apply(a, b),
	}
}

func (g *Generator) multiStep(maxNum int) *Question {
	op1 := g.operation()
	op2 := g.operation()

	a := g.between(5, maxNum+4)
	b := g.between(1, min(maxNum, a))

	current := op1.Apply(a, b)

	var c int
	switch {
	case op2 == OpSubtraction && current == 0:
		op2 = OpAddition
		c = g.between(1, maxNum)
	case op2 == OpSubtraction:
		c = g.between(1, current)
	default:
		c = g.between(1, maxNum)
	}

	return &Question{
		ID:         uuid.NewString(),
		OperandA:   a,
		OperandB:   b,
		Operation:  op1,
		OperandC:   &c,
		Operation2: op2,
		Answer:     op2.Apply(current, c),
	}
}

func (g *Generator) operation() Operation {
	if g.rng.IntN(2) == 0 {
		return OpAddition
	}
	return OpSubtraction
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
