package automata

import (
	"fmt"
	"strings"
)

// DFA A deterministic finite automaton: a StateSet, an AlphabetSet and a
// TransitionFunction assembled at construction. The components are shared,
// not copied; mutating any of them after construction is unsupported.
// Simulation never mutates them, so concurrent Accepts calls on an
// unchanging DFA need no locking.
type DFA struct {
	q     *StateSet
	sigma *AlphabetSet
	delta *TransitionFunction
	start int
}

// New assembles a DFA. The StateSet must already have a start state
// designated; its id is snapshotted here and every run begins from it.
func New(q *StateSet, sigma *AlphabetSet, delta *TransitionFunction) (*DFA, error) {
	start, err := q.StartState()
	if err != nil {
		return nil, err
	}
	return &DFA{q: q, sigma: sigma, delta: delta, start: start.ID}, nil
}

// Step One simulation step: the transition taken for one input symbol.
type Step struct {
	From   int
	Symbol rune
	To     int
}

// Run folds input through the transition function, one symbol at a time,
// and reports whether the run ends in an accept state. A symbol outside the
// alphabet, or a (state, symbol) pair with no transition defined, rejects
// the run immediately; the returned cause wraps ErrSymbolNotInAlphabet or
// ErrNoTransition respectively. A non-nil cause is a normal reject, not a
// failure of the automaton.
func (d *DFA) Run(input string) (bool, error) {
	state := d.start
	for _, r := range input {
		if !d.sigma.Contains(r) {
			return false, fmt.Errorf("%w: input symbol %q", ErrSymbolNotInAlphabet, r)
		}
		next, ok := d.delta.Lookup(state, r)
		if !ok {
			return false, fmt.Errorf("%w: (q%d, %q)", ErrNoTransition, state, r)
		}
		state = next
	}
	return d.q.IsAccept(state), nil
}

// Accepts reports whether the DFA accepts the input. The empty input is
// accepted iff the start state is an accept state.
func (d *DFA) Accepts(input string) bool {
	accepted, _ := d.Run(input)
	return accepted
}

// Trace runs the input and returns the sequence of transitions taken along
// with the verdict. On a reject the trace ends at the offending symbol.
func (d *DFA) Trace(input string) ([]Step, bool) {
	steps := make([]Step, 0, len(input))
	state := d.start
	for _, r := range input {
		if !d.sigma.Contains(r) {
			return steps, false
		}
		next, ok := d.delta.Lookup(state, r)
		if !ok {
			return steps, false
		}
		steps = append(steps, Step{From: state, Symbol: r, To: next})
		state = next
	}
	return steps, d.q.IsAccept(state)
}

func (d *DFA) String() string {
	accepting := make([]string, 0, d.q.Size())
	for _, s := range d.q.States() {
		if s.Accepting {
			accepting = append(accepting, fmt.Sprintf("q%d", s.ID))
		}
	}
	return fmt.Sprintf("DFA(%s, %s, q%d, {%s})",
		d.q, d.sigma, d.start, strings.Join(accepting, ", "))
}
