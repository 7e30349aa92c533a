package types

import (
	"strings"
)

// Merged returns the concatenation of the pair, which is the symbol a merge
// step introduces into the vocabulary.
func (pair SymbolPair) Merged() Symbol {
	return pair.Left + pair.Right
}

// Less orders pairs lexicographically, Left before Right. It is the
// tie-break used when two pairs have the same frequency.
func (pair SymbolPair) Less(other SymbolPair) bool {
	if pair.Left != other.Left {
		return pair.Left < other.Left
	}
	return pair.Right < other.Right
}

// Join renders the symbol sequence as a single string with the given
// separator between symbols.
func (symbols Symbols) Join(sep string) string {
	strs := make([]string, len(symbols))
	for idx := range symbols {
		strs[idx] = string(symbols[idx])
	}
	return strings.Join(strs, sep)
}

// Concat renders the symbol sequence with no separator, recombining a
// segmentation back into its underlying text.
func (symbols Symbols) Concat() string {
	return symbols.Join("")
}

// Contains reports whether sym occurs in the sequence.
func (symbols Symbols) Contains(sym Symbol) bool {
	for idx := range symbols {
		if symbols[idx] == sym {
			return true
		}
	}
	return false
}

// SplitSymbols parses a separator-joined representation back into a symbol
// sequence. An empty string yields an empty sequence.
func SplitSymbols(text string, sep string) Symbols {
	if text == "" {
		return Symbols{}
	}
	parts := strings.Split(text, sep)
	symbols := make(Symbols, len(parts))
	for idx := range parts {
		symbols[idx] = Symbol(parts[idx])
	}
	return symbols
}
