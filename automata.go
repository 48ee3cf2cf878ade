package automata

type Automata struct {
}

// MakeEmpty
// Returns a new DFA with the empty language over the given alphabet: a
// single non-accepting state and no transitions, so every input rejects.
func (*Automata) MakeEmpty(sigma *AlphabetSet) (*DFA, error) {
	q, err := NewStateSet(1)
	if err != nil {
		return nil, err
	}
	if err := q.SetStartState(0); err != nil {
		return nil, err
	}
	return New(q, sigma, NewTransitionFunction(sigma))
}

// MakeEmptyString
// Returns a new DFA that accepts only the empty string.
func (*Automata) MakeEmptyString(sigma *AlphabetSet) (*DFA, error) {
	q, err := NewStateSet(1)
	if err != nil {
		return nil, err
	}
	if err := q.SetStartState(0); err != nil {
		return nil, err
	}
	if err := q.SetAcceptingStates(0); err != nil {
		return nil, err
	}
	return New(q, sigma, NewTransitionFunction(sigma))
}

// MakeAnyString
// Returns a new DFA that accepts every string over the given alphabet.
func (*Automata) MakeAnyString(sigma *AlphabetSet) (*DFA, error) {
	q, err := NewStateSet(1)
	if err != nil {
		return nil, err
	}
	if err := q.SetStartState(0); err != nil {
		return nil, err
	}
	if err := q.SetAcceptingStates(0); err != nil {
		return nil, err
	}

	delta := NewTransitionFunction(sigma)
	for _, r := range sigma.Symbols() {
		if err := delta.AddTransition(0, r, 0); err != nil {
			return nil, err
		}
	}
	return New(q, sigma, delta)
}
