package types

type Symbol string
type Symbols []Symbol

// SymbolPair is an ordered pair of adjacent symbols observed within a single
// word's segmentation. Pairs never span two words.
type SymbolPair struct {
	Left  Symbol
	Right Symbol
}

type PairCounts map[SymbolPair]int
