package automata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

var (
	ErrStateOutOfRange = errors.New("state id out of range")
	ErrNoStartState    = errors.New("no start state designated")
)

// State A snapshot of one automaton state: its id and whether it is the
// designated start state or an accept state. Flags are owned by the
// StateSet the state came from; mutate through the set, not the snapshot.
type State struct {
	ID        int
	Start     bool
	Accepting bool
}

func (s State) String() string {
	parts := []string{fmt.Sprintf("q%d", s.ID)}
	if s.Start {
		parts = append(parts, "(start)")
	}
	if s.Accepting {
		parts = append(parts, "(accept)")
	}
	return strings.Join(parts, " ")
}

// StateSet A fixed-size collection of states with ids 0..size-1, tracking
// at most one start state and any subset of accept states. A fresh set has
// no accept states and no start state designated. Never resized.
type StateSet struct {
	size   int
	start  int // -1 until designated
	accept *bitset.BitSet
}

func NewStateSet(size int) (*StateSet, error) {
	if size <= 0 {
		return nil, fmt.Errorf("state set size expected greater than 0, received %d", size)
	}
	return &StateSet{
		size:   size,
		start:  -1,
		accept: bitset.New(uint(size)),
	}, nil
}

// SetStartState designates id as the start state, clearing any prior
// designation so exactly one state carries the flag afterwards.
func (q *StateSet) SetStartState(id int) error {
	if err := q.checkID(id); err != nil {
		return err
	}
	q.start = id
	return nil
}

// SetAcceptingStates marks the given states as accept states. The call is
// atomic: every id is validated before any flag is set, so an out-of-range
// id leaves the set untouched. Flags accumulate across calls; states not
// named keep their prior status.
func (q *StateSet) SetAcceptingStates(ids ...int) error {
	for _, id := range ids {
		if err := q.checkID(id); err != nil {
			return err
		}
	}
	for _, id := range ids {
		q.accept.Set(uint(id))
	}
	return nil
}

// StartState returns the designated start state.
func (q *StateSet) StartState() (State, error) {
	if q.start == -1 {
		return State{}, fmt.Errorf("%w, see StateSet.SetStartState", ErrNoStartState)
	}
	return q.stateAt(q.start), nil
}

// State returns the state with the given id.
func (q *StateSet) State(id int) (State, error) {
	if err := q.checkID(id); err != nil {
		return State{}, err
	}
	return q.stateAt(id), nil
}

// States returns all states in id order (index = id).
func (q *StateSet) States() []State {
	states := make([]State, q.size)
	for i := range states {
		states[i] = q.stateAt(i)
	}
	return states
}

// IsAccept Returns true if this state is an accept state.
func (q *StateSet) IsAccept(id int) bool {
	return id >= 0 && id < q.size && q.accept.Test(uint(id))
}

func (q *StateSet) Size() int {
	return q.size
}

func (q *StateSet) stateAt(id int) State {
	return State{
		ID:        id,
		Start:     id == q.start,
		Accepting: q.accept.Test(uint(id)),
	}
}

func (q *StateSet) checkID(id int) error {
	if id < 0 || id >= q.size {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrStateOutOfRange, id, q.size)
	}
	return nil
}

func (q *StateSet) String() string {
	elems := make([]string, q.size)
	for i := range elems {
		elems[i] = q.stateAt(i).String()
	}
	return "{" + strings.Join(elems, ", ") + "}"
}
