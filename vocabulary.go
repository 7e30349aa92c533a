package subword_bpe

import (
	"github.com/wbrown/subword_bpe/types"
)

const (
	DefaultEndOfWord = types.Symbol("_")
	DefaultUnknown   = types.Symbol("[UNK]")
)

// EnglishAlphabet is the reference base alphabet, one symbol per lowercase
// ASCII letter.
var EnglishAlphabet = BaseAlphabet("abcdefghijklmnopqrstuvwxyz")

// BaseAlphabet splits a string into single-rune symbols, for use as a
// learner's base alphabet.
func BaseAlphabet(letters string) types.Symbols {
	symbols := make(types.Symbols, 0, len(letters))
	for _, r := range letters {
		symbols = append(symbols, types.Symbol(string(r)))
	}
	return symbols
}

// SymbolVocabulary is an ordered set of symbols. Insertion order is merge
// order: base symbols and the two special markers first, then one merged
// symbol per completed merge step. Segmentation only uses membership, but
// the order is preserved for inspection and for writing merges.txt.
//
// A vocabulary is private to one learning run and read-only afterwards.
type SymbolVocabulary struct {
	symbols   types.Symbols
	index     map[types.Symbol]int
	merges    []types.SymbolPair
	endOfWord types.Symbol
	unknown   types.Symbol
}

// NewSymbolVocabulary returns a vocabulary seeded with the base alphabet
// followed by the end-of-word and unknown markers.
func NewSymbolVocabulary(
	base types.Symbols,
	endOfWord types.Symbol,
	unknown types.Symbol,
) *SymbolVocabulary {
	vocab := &SymbolVocabulary{
		symbols:   make(types.Symbols, 0, len(base)+2),
		index:     make(map[types.Symbol]int, len(base)+2),
		endOfWord: endOfWord,
		unknown:   unknown,
	}
	for _, sym := range base {
		vocab.Append(sym)
	}
	vocab.Append(endOfWord)
	vocab.Append(unknown)
	return vocab
}

// Append adds sym to the vocabulary if it is not already present, and
// reports whether it was added.
func (vocab *SymbolVocabulary) Append(sym types.Symbol) bool {
	if _, ok := vocab.index[sym]; ok {
		return false
	}
	vocab.index[sym] = len(vocab.symbols)
	vocab.symbols = append(vocab.symbols, sym)
	return true
}

// AppendMerge records a completed merge step: the concatenation of the pair
// joins the vocabulary, and the pair itself is kept so the vocabulary can be
// serialized as a merge list. Appending an already-merged pair is a no-op.
func (vocab *SymbolVocabulary) AppendMerge(pair types.SymbolPair) types.Symbol {
	merged := pair.Merged()
	if vocab.Append(merged) {
		vocab.merges = append(vocab.merges, pair)
	}
	return merged
}

// Contains reports set membership, which is all the segmenter ever asks of
// a vocabulary.
func (vocab *SymbolVocabulary) Contains(sym types.Symbol) bool {
	_, ok := vocab.index[sym]
	return ok
}

func (vocab *SymbolVocabulary) Len() int {
	return len(vocab.symbols)
}

// Symbols returns the vocabulary in insertion order.
func (vocab *SymbolVocabulary) Symbols() types.Symbols {
	symbols := make(types.Symbols, len(vocab.symbols))
	copy(symbols, vocab.symbols)
	return symbols
}

// Merges returns the merge pairs in the order they were applied.
func (vocab *SymbolVocabulary) Merges() []types.SymbolPair {
	merges := make([]types.SymbolPair, len(vocab.merges))
	copy(merges, vocab.merges)
	return merges
}

func (vocab *SymbolVocabulary) EndOfWord() types.Symbol {
	return vocab.endOfWord
}

func (vocab *SymbolVocabulary) Unknown() types.Symbol {
	return vocab.unknown
}
