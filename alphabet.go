package automata

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

var (
	ErrInvalidSymbol       = errors.New("invalid symbol")
	ErrSymbolNotInAlphabet = errors.New("symbol not in alphabet")
)

// AlphabetSet The set of symbols an automaton's input may be drawn from.
// Symbols are single alphanumeric runes; membership is order-insensitive
// and the set holds no duplicates.
type AlphabetSet struct {
	symbols map[rune]struct{}
}

// NewAlphabetSet Builds an alphabet from an initial sequence of symbols.
// The sequence must be non-empty and free of duplicates.
func NewAlphabetSet(symbols string) (*AlphabetSet, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: alphabet cannot be empty", ErrInvalidSymbol)
	}

	s := &AlphabetSet{symbols: make(map[rune]struct{}, len(symbols))}
	for _, r := range symbols {
		if s.Contains(r) {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidSymbol, r)
		}
		if err := s.Add(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add inserts a symbol. Adding a symbol already present has no effect.
func (s *AlphabetSet) Add(r rune) error {
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return fmt.Errorf("%w: %q must be alphanumeric", ErrInvalidSymbol, r)
	}
	s.symbols[r] = struct{}{}
	return nil
}

// Remove deletes a symbol. Removing a symbol that is not a member is an
// error, not a no-op.
func (s *AlphabetSet) Remove(r rune) error {
	if !s.Contains(r) {
		return fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, r)
	}
	delete(s.symbols, r)
	return nil
}

// Contains reports whether r is a member of the alphabet.
func (s *AlphabetSet) Contains(r rune) bool {
	_, ok := s.symbols[r]
	return ok
}

func (s *AlphabetSet) Size() int {
	return len(s.symbols)
}

// Symbols returns the members in sorted order.
func (s *AlphabetSet) Symbols() []rune {
	out := make([]rune, 0, len(s.symbols))
	for r := range s.symbols {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

func (s *AlphabetSet) String() string {
	symbols := s.Symbols()
	elems := make([]string, len(symbols))
	for i, r := range symbols {
		elems[i] = string(r)
	}
	return "{" + strings.Join(elems, ", ") + "}"
}
