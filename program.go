// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Interpretable programs: descriptions over an uninterpreted operation set.
//
// A Program is built from chain/map combinators and Perform'd operations,
// but nothing executes at construction time. Evaluation is deferred to
// RunProgram with an Interpreter, which assigns meaning — and a failure
// channel — to each operation. The representation is defunctionalized:
// continuations are explicit frame structures evaluated iteratively, so
// evaluation never grows the call stack with program length.

// Erased represents a type-erased value in a defunctionalized frame chain.
// Concrete types are recovered via type assertions at frame boundaries.
type Erased = any

// Op is an uninterpreted program operation. Callers define concrete
// operation types; only an Interpreter gives them meaning.
type Op any

// Interpreter assigns meaning to program operations.
// Interpret returns the operation's result, or an error to abort the
// program; on error no further operations are interpreted.
type Interpreter interface {
	Interpret(op Op) (Erased, error)
}

// interpretFunc wraps a dispatch function as a concrete Interpreter.
type interpretFunc struct {
	f func(op Op) (Erased, error)
}

func (i interpretFunc) Interpret(op Op) (Erased, error) {
	return i.f(op)
}

// InterpretFunc creates an Interpreter from a dispatch function.
//
// Example:
//
//	InterpretFunc(func(op Op) (Erased, error) {
//	    switch o := op.(type) {
//	    case GetUser:
//	        return store.Lookup(o.ID)
//	    default:
//	        panic("eff: unhandled op")
//	    }
//	})
func InterpretFunc(f func(op Op) (Erased, error)) Interpreter {
	return interpretFunc{f: f}
}

// progFrame is the marker interface for program continuation frames.
// Dispatch uses type switches; progFrame is a pure marker.
type progFrame interface {
	progFrame()
}

// progReturn signals program completion.
type progReturn struct{}

func (progReturn) progFrame() {}

// progBind represents monadic sequencing; the function input is type-erased
// and re-asserted at the facade boundary.
type progBind struct {
	f    func(Erased) progExpr
	next progFrame
}

func (*progBind) progFrame() {}

// progOp represents a pending uninterpreted operation.
type progOp struct {
	op   Op
	next progFrame
}

func (*progOp) progFrame() {}

// progChained represents a frame followed by more frames, composing frame
// chains without mutation.
type progChained struct {
	first progFrame
	rest  progFrame
}

func (*progChained) progFrame() {}

// progExpr is the type-erased interior view of a Program.
type progExpr struct {
	value Erased
	frame progFrame
}

// chainProg links two frame chains. progReturn is the identity element, so
// either operand is returned directly when the other is progReturn.
func chainProg(first, second progFrame) progFrame {
	if _, ok := first.(progReturn); ok {
		return second
	}
	if _, ok := second.(progReturn); ok {
		return first
	}
	return &progChained{first: first, rest: second}
}

// Program is a description of a computation producing A over an
// uninterpreted operation set. Constructing or composing a Program never
// interprets anything.
type Program[A any] struct {
	value A
	frame progFrame
}

func (Program[A]) kind(ProgramKind, A) {}

// ProgramOf creates a completed program holding a.
func ProgramOf[A any](a A) Program[A] {
	return Program[A]{value: a, frame: progReturn{}}
}

// PerformOp creates a program that performs a single operation whose
// interpreted result is asserted to type A.
func PerformOp[A any](op Op) Program[A] {
	var zero A
	return Program[A]{
		value: zero,
		frame: &progOp{op: op, next: progReturn{}},
	}
}

// MapProgram applies a pure function to the program's eventual value.
func MapProgram[A, B any](p Program[A], f func(A) B) Program[B] {
	return ChainProgram(p, func(a A) Program[B] {
		return ProgramOf(f(a))
	})
}

// ChainProgram sequences two programs.
// If p aborts under interpretation, f is never invoked.
func ChainProgram[A, B any](p Program[A], f func(A) Program[B]) Program[B] {
	if _, ok := p.frame.(progReturn); ok {
		return f(p.value)
	}
	bind := &progBind{
		f: func(v Erased) progExpr {
			r := f(v.(A))
			return progExpr{value: Erased(r.value), frame: r.frame}
		},
		next: progReturn{},
	}
	var zero B
	return Program[B]{
		value: zero,
		frame: chainProg(p.frame, bind),
	}
}

// ThenProgram sequences without data flow, discarding p's value.
func ThenProgram[A, B any](p Program[A], next func() Program[B]) Program[B] {
	return ChainProgram(p, func(A) Program[B] { return next() })
}

// RunProgram interprets the program to completion.
// Frames are processed iteratively without stack growth; an interpreter
// error aborts evaluation and no later operation is interpreted.
func RunProgram[A any](p Program[A], in Interpreter) (A, error) {
	current := Erased(p.value)
	frame := p.frame
	for {
		if cf, ok := frame.(*progChained); ok {
			switch f := cf.first.(type) {
			case progReturn:
				frame = cf.rest
			case *progBind:
				next := f.f(current)
				current = next.value
				frame = chainProg(chainProg(next.frame, f.next), cf.rest)
			case *progOp:
				v, err := in.Interpret(f.op)
				if err != nil {
					var zero A
					return zero, err
				}
				current = v
				frame = chainProg(f.next, cf.rest)
			case *progChained:
				frame = &progChained{
					first: f.first,
					rest:  chainProg(f.rest, cf.rest),
				}
			default:
				panic("eff: unknown program frame in chain")
			}
			continue
		}

		switch f := frame.(type) {
		case progReturn:
			return current.(A), nil
		case *progBind:
			next := f.f(current)
			current = next.value
			frame = chainProg(next.frame, f.next)
		case *progOp:
			v, err := in.Interpret(f.op)
			if err != nil {
				var zero A
				return zero, err
			}
			current = v
			frame = f.next
		default:
			panic("eff: unknown program frame")
		}
	}
}

// Par is a program whose operations are independent of one another.
//
// Because no operation's input depends on another's result, the full
// operation list is fixed before interpretation: AnalyzePar inspects it
// statically, and Combine is the only composition — Par deliberately has
// no Chain.
type Par[A any] struct {
	ops      []Op
	assemble func([]Erased) A
}

func (Par[A]) kind(ParKind, A) {}

// ParOf creates a completed independent program holding a.
func ParOf[A any](a A) Par[A] {
	return Par[A]{assemble: func([]Erased) A { return a }}
}

// PerformPar creates an independent program performing a single operation
// whose interpreted result is asserted to type A.
func PerformPar[A any](op Op) Par[A] {
	return Par[A]{
		ops:      []Op{op},
		assemble: func(vs []Erased) A { return vs[0].(A) },
	}
}

// MapPar applies a pure function to the assembled value.
func MapPar[A, B any](p Par[A], f func(A) B) Par[B] {
	return Par[B]{
		ops:      p.ops,
		assemble: func(vs []Erased) B { return f(p.assemble(vs)) },
	}
}

// CombinePar2 merges two independent programs with f.
// Operation order is left operand first, then right.
func CombinePar2[A, B, C any](pa Par[A], pb Par[B], f func(A, B) C) Par[C] {
	ops := make([]Op, 0, len(pa.ops)+len(pb.ops))
	ops = append(ops, pa.ops...)
	ops = append(ops, pb.ops...)
	n := len(pa.ops)
	return Par[C]{
		ops: ops,
		assemble: func(vs []Erased) C {
			return f(pa.assemble(vs[:n]), pb.assemble(vs[n:]))
		},
	}
}

// CombinePar3 merges three independent programs by pairwise association.
func CombinePar3[A, B, C, D any](pa Par[A], pb Par[B], pc Par[C], f func(A, B, C) D) Par[D] {
	type pair struct {
		a A
		b B
	}
	ab := CombinePar2(pa, pb, func(a A, b B) pair { return pair{a, b} })
	return CombinePar2(ab, pc, func(p pair, c C) D { return f(p.a, p.b, c) })
}

// CombinePar4 merges four independent programs by pairwise association.
func CombinePar4[A, B, C, D, R any](pa Par[A], pb Par[B], pc Par[C], pd Par[D], f func(A, B, C, D) R) Par[R] {
	type triple struct {
		a A
		b B
		c C
	}
	abc := CombinePar3(pa, pb, pc, func(a A, b B, c C) triple { return triple{a, b, c} })
	return CombinePar2(abc, pd, func(t triple, d D) R { return f(t.a, t.b, t.c, d) })
}

// AnalyzePar returns the program's operation list without interpreting it.
// The structure is fixed at construction, which is what makes static
// analysis of independent programs possible.
func AnalyzePar[A any](p Par[A]) []Op {
	ops := make([]Op, len(p.ops))
	copy(ops, p.ops)
	return ops
}

// RunPar interprets every operation in order and assembles the result.
// Operations are independent; the first interpreter error (in operation
// order) aborts assembly.
func RunPar[A any](p Par[A], in Interpreter) (A, error) {
	vs := make([]Erased, len(p.ops))
	for i, op := range p.ops {
		v, err := in.Interpret(op)
		if err != nil {
			var zero A
			return zero, err
		}
		vs[i] = v
	}
	return p.assemble(vs), nil
}
