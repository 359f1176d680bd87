// SPDX-License-Identifier: MIT
// Package gauss - trace and result types.

package gauss

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvgeom/matrix"
)

// Op identifies an elementary row operation.
type Op int

const (
	// Swap exchanges rows Row and Other.
	Swap Op = iota
	// Scale multiplies row Row by Factor.
	Scale
	// Combine adds Factor·row Other to row Row.
	Combine
)

// String returns the lower-case operation name.
func (o Op) String() string {
	switch o {
	case Swap:
		return "swap"
	case Scale:
		return "scale"
	case Combine:
		return "combine"
	default:
		return "op(" + strconv.Itoa(int(o)) + ")"
	}
}

// Step is one recorded row operation. Fields unused by an Op are zero:
// Swap uses Row/Other, Scale uses Row/Factor, Combine uses all three.
type Step struct {
	Op     Op
	Row    int
	Other  int
	Factor float64
}

// String renders the step with the factor in shortest round-trip form,
// e.g. "swap(0, 2)", "scale(1, 0.5)", "combine(2, 1, -3)".
func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.Op.String())
	b.WriteByte('(')
	b.WriteString(strconv.Itoa(s.Row))
	switch s.Op {
	case Swap:
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(s.Other))
	case Scale:
		b.WriteString(", ")
		b.WriteString(strconv.FormatFloat(s.Factor, 'g', -1, 64))
	default:
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(s.Other))
		b.WriteString(", ")
		b.WriteString(strconv.FormatFloat(s.Factor, 'g', -1, 64))
	}
	b.WriteByte(')')

	return b.String()
}

// Status is the terminal tag of a Trace.
type Status int

const (
	// Unfinished marks a trace that has not been terminated. Invert never
	// returns one.
	Unfinished Status = iota
	// Degenerate: a pivot fell below tolerance or verification failed.
	Degenerate
	// Solved: elimination reached [I | A⁻¹] and A·A⁻¹ ≈ I verified.
	Solved
)

// String returns "unfinished", "degenerate" or "solved".
func (s Status) String() string {
	switch s {
	case Degenerate:
		return "degenerate"
	case Solved:
		return "solved"
	default:
		return "unfinished"
	}
}

// Trace is the append-only record of one elimination run.
type Trace struct {
	steps  []Step
	status Status
}

// Steps returns a copy of the recorded steps in execution order.
func (t Trace) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)

	return out
}

// Len returns the number of recorded steps.
func (t Trace) Len() int { return len(t.steps) }

// Status returns the terminal status.
func (t Trace) Status() Status { return t.status }

// String renders one step per line followed by the status line.
func (t Trace) String() string {
	var b strings.Builder
	for _, s := range t.steps {
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	b.WriteString(t.status.String())
	b.WriteByte('\n')

	return b.String()
}

func (t *Trace) record(s Step) { t.steps = append(t.steps, s) }

func (t *Trace) finish(s Status) { t.status = s }

// Result pairs the trace with the inverse. Inverse is non-nil iff
// Trace.Status() == Solved.
type Result struct {
	Trace   Trace
	Inverse *matrix.Dense
}

// Solved reports whether an inverse was found.
func (r *Result) Solved() bool { return r.Trace.Status() == Solved }
