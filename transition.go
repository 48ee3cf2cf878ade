package automata

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrNoTransition = errors.New("no transition defined")

type transitionKey struct {
	state  int
	symbol rune
}

// TransitionFunction A partial map from (state, symbol) pairs to a successor
// state, scoped to a fixed alphabet. State ids are not bounds-checked here:
// the function is not tied to any StateSet, so one instance can serve
// multiple state sets sharing an alphabet. Id validity is the consumer's
// concern.
type TransitionFunction struct {
	sigma *AlphabetSet
	table map[transitionKey]int
}

func NewTransitionFunction(sigma *AlphabetSet) *TransitionFunction {
	return &TransitionFunction{
		sigma: sigma,
		table: make(map[transitionKey]int),
	}
}

// AddTransition records the mapping (from, symbol) -> to. The symbol must be
// a member of the bound alphabet at insertion time. Re-adding an existing
// (state, symbol) pair overwrites the prior destination: last write wins.
func (t *TransitionFunction) AddTransition(from int, symbol rune, to int) error {
	if !t.sigma.Contains(symbol) {
		return fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, symbol)
	}
	t.table[transitionKey{state: from, symbol: symbol}] = to
	return nil
}

// RemoveTransition deletes the mapping for (from, symbol), erroring when no
// such transition is defined.
func (t *TransitionFunction) RemoveTransition(from int, symbol rune) error {
	k := transitionKey{state: from, symbol: symbol}
	if _, ok := t.table[k]; !ok {
		return fmt.Errorf("%w: (q%d, %q)", ErrNoTransition, from, symbol)
	}
	delete(t.table, k)
	return nil
}

// Lookup returns the destination for (from, symbol). Absence is reported
// through ok, never as an error: an undefined transition is an expected
// condition during simulation, not a construction bug.
func (t *TransitionFunction) Lookup(from int, symbol rune) (int, bool) {
	to, ok := t.table[transitionKey{state: from, symbol: symbol}]
	return to, ok
}

// Len How many transitions are defined.
func (t *TransitionFunction) Len() int {
	return len(t.table)
}

func (t *TransitionFunction) String() string {
	lines := make([]string, 0, len(t.table))
	for k, to := range t.table {
		lines = append(lines, fmt.Sprintf("q%d -> %c -> q%d", k.state, k.symbol, to))
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}
