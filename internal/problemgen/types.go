package problemgen

import (
	"fmt"
	"strings"
)

// Operation is the operator placed between two terms of a question.
type Operation string

const (
	OpAddition    Operation = "addition"
	OpSubtraction Operation = "subtraction"
)

// Symbol returns the display symbol for the operation.
func (o Operation) Symbol() string {
	if o == OpSubtraction {
		return "−"
	}
	return "+"
}

// Apply evaluates a (op) b.
func (o Operation) Apply(a, b int) int {
	if o == OpSubtraction {
		return a - b
	}
	return a + b
}

// Level is a difficulty level. It only controls the operand magnitude.
type Level int

const (
	LevelMoon  Level = 1
	LevelMars  Level = 2
	LevelSpace Level = 3

	MinLevel = LevelMoon
	MaxLevel = LevelSpace
)

// Levels returns all levels in ascending order.
func Levels() []Level {
	return []Level{LevelMoon, LevelMars, LevelSpace}
}

// Clamp maps out-of-range levels to level 1.
func (l Level) Clamp() Level {
	if l < MinLevel || l > MaxLevel {
		return LevelMoon
	}
	return l
}

// MaxOperand returns the largest operand drawn at this level.
func (l Level) MaxOperand() int {
	switch l.Clamp() {
	case LevelMars:
		return 20
	case LevelSpace:
		return 50
	default:
		return 10
	}
}

// Name returns the planet name shown for the level.
func (l Level) Name() string {
	switch l.Clamp() {
	case LevelMars:
		return "Mars"
	case LevelSpace:
		return "Deep Space"
	default:
		return "Moon"
	}
}

// Icon returns the planet icon for the level.
func (l Level) Icon() string {
	switch l.Clamp() {
	case LevelMars:
		return "🔴"
	case LevelSpace:
		return "🌌"
	default:
		return "🌙"
	}
}

// Question is one generated arithmetic problem.
//
// Terms are evaluated left to right with no operator precedence:
// Answer = (OperandA Operation OperandB) Operation2 OperandC.
type Question struct {
	ID       string
	OperandA int
	OperandB int

	Operation Operation

	// OperandC and Operation2 are set only for multi-step questions.
	OperandC   *int
	Operation2 Operation

	Answer int
}

// Clone returns a copy that shares no memory with q.
func (q *Question) Clone() *Question {
	c := *q
	if q.OperandC != nil {
		v := *q.OperandC
		c.OperandC = &v
	}
	return &c
}

// IsMultiStep reports whether the question has a third term.
func (q *Question) IsMultiStep() bool {
	return q.OperandC != nil
}

// Intermediate returns OperandA (Operation) OperandB.
func (q *Question) Intermediate() int {
	return q.Operation.Apply(q.OperandA, q.OperandB)
}

// Evaluate recomputes the answer from the operands.
func (q *Question) Evaluate() int {
	v := q.Intermediate()
	if q.OperandC != nil {
		v = q.Operation2.Apply(v, *q.OperandC)
	}
	return v
}

// Text renders the question, e.g. "12 + 7 − 3".
func (q *Question) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s %d", q.OperandA, q.Operation.Symbol(), q.OperandB)
	if q.OperandC != nil {
		fmt.Fprintf(&b, " %s %d", q.Operation2.Symbol(), *q.OperandC)
	}
	return b.String()
}
