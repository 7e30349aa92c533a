package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolPair_Merged(t *testing.T) {
	pair := SymbolPair{Left: "ta", Right: "ll"}
	assert.Equal(t, Symbol("tall"), pair.Merged())
}

func TestSymbolPair_Less(t *testing.T) {
	assert.True(t, SymbolPair{"a", "l"}.Less(SymbolPair{"l", "l"}))
	assert.True(t, SymbolPair{"a", "l"}.Less(SymbolPair{"a", "s"}))
	assert.False(t, SymbolPair{"t", "a"}.Less(SymbolPair{"t", "a"}))
}

func TestSymbols_JoinSplit(t *testing.T) {
	symbols := Symbols{"tall", "er", "_"}
	joined := symbols.Join(" ")
	assert.Equal(t, "tall er _", joined)
	assert.Equal(t, symbols, SplitSymbols(joined, " "))
	assert.Equal(t, "taller_", symbols.Concat())
	assert.Equal(t, Symbols{}, SplitSymbols("", " "))
}

func TestSymbols_Contains(t *testing.T) {
	symbols := Symbols{"fa", "[UNK]"}
	assert.True(t, symbols.Contains("[UNK]"))
	assert.False(t, symbols.Contains("fa_"))
}
