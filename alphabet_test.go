package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAlphabetSet(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		sigma, err := NewAlphabetSet("abc")
		assert.Nil(t, err)
		assert.Equal(t, 3, sigma.Size())
		assert.True(t, sigma.Contains('a'))
		assert.True(t, sigma.Contains('b'))
		assert.True(t, sigma.Contains('c'))
		assert.False(t, sigma.Contains('d'))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NewAlphabetSet("")
		assert.ErrorIs(t, err, ErrInvalidSymbol)
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := NewAlphabetSet("aba")
		assert.ErrorIs(t, err, ErrInvalidSymbol)
	})

	t.Run("nonAlphanumeric", func(t *testing.T) {
		_, err := NewAlphabetSet("a!b")
		assert.ErrorIs(t, err, ErrInvalidSymbol)
	})
}

func TestAlphabetSet_Add(t *testing.T) {
	sigma, err := NewAlphabetSet("ab")
	assert.Nil(t, err)

	t.Run("addThenContains", func(t *testing.T) {
		assert.Nil(t, sigma.Add('c'))
		assert.True(t, sigma.Contains('c'))
	})

	t.Run("idempotent", func(t *testing.T) {
		assert.Nil(t, sigma.Add('c'))
		assert.Equal(t, 3, sigma.Size())
	})

	t.Run("invalid", func(t *testing.T) {
		assert.ErrorIs(t, sigma.Add(' '), ErrInvalidSymbol)
	})
}

func TestAlphabetSet_Remove(t *testing.T) {
	sigma, err := NewAlphabetSet("abc")
	assert.Nil(t, err)

	t.Run("removeThenContains", func(t *testing.T) {
		assert.Nil(t, sigma.Remove('b'))
		assert.False(t, sigma.Contains('b'))
	})

	t.Run("absent", func(t *testing.T) {
		assert.ErrorIs(t, sigma.Remove('b'), ErrSymbolNotInAlphabet)
	})
}

func TestAlphabetSet_String(t *testing.T) {
	sigma, err := NewAlphabetSet("cab")
	assert.Nil(t, err)
	assert.Equal(t, "{a, b, c}", sigma.String())
	assert.Equal(t, []rune{'a', 'b', 'c'}, sigma.Symbols())
}
