package subword_bpe

import (
	"errors"
	"fmt"
	"log"

	"github.com/wbrown/subword_bpe/types"
)

// SymbolSeparator joins a word's current segmentation into a
// TokenFrequencyTable key. Input words are assumed not to contain it.
const SymbolSeparator = " "

// ErrEmptyVocabulary is returned by MostFrequentPair when no adjacent symbol
// pairs remain to count, i.e. every word has been reduced to a single
// symbol. Callers should treat it as "no further merges possible" rather
// than a failure; Learn stops merging early on it.
var ErrEmptyVocabulary = errors.New(
	"subword_bpe: no adjacent symbol pairs remain")

// TokenFrequencyTable maps a word's current segmentation, joined by
// SymbolSeparator, to that word's frequency in the corpus. Every retained
// entry has frequency >= 1.
type TokenFrequencyTable map[string]int

// TotalFrequency sums the frequency mass over all entries. Merge steps
// never change it.
func (table TokenFrequencyTable) TotalFrequency() int {
	total := 0
	for _, freq := range table {
		total += freq
	}
	return total
}

// Segmentation returns the symbol sequence currently segmenting the given
// table key.
func (table TokenFrequencyTable) Segmentation(key string) types.Symbols {
	return types.SplitSymbols(key, SymbolSeparator)
}

// NewTokenFrequencyTable builds the initial table from raw word
// frequencies: each word gets the end-of-word marker appended and is split
// into single-character symbols. Entries with non-positive frequency are
// dropped.
func NewTokenFrequencyTable(
	rawWordFreqs map[string]int,
	endOfWord types.Symbol,
) TokenFrequencyTable {
	table := make(TokenFrequencyTable, len(rawWordFreqs))
	for word, freq := range rawWordFreqs {
		if freq < 1 {
			continue
		}
		symbols := make(types.Symbols, 0, len(word)+1)
		for _, r := range word {
			symbols = append(symbols, types.Symbol(string(r)))
		}
		symbols = append(symbols, endOfWord)
		table[symbols.Join(SymbolSeparator)] += freq
	}
	return table
}

// Learner grows a symbol vocabulary by repeatedly merging the most frequent
// adjacent symbol pair across a word-frequency table. The base alphabet and
// both special markers are configuration; zero values fall back to the
// English lowercase alphabet and the `_`/`[UNK]` markers.
type Learner struct {
	Alphabet  types.Symbols
	EndOfWord types.Symbol
	Unknown   types.Symbol
	// Verbose logs each merge step. Observability only, not part of the
	// learning contract.
	Verbose bool
}

// NewLearner returns a Learner with the reference configuration: English
// lowercase base alphabet, `_` end-of-word marker, `[UNK]` unknown marker.
func NewLearner() *Learner {
	return &Learner{
		Alphabet:  EnglishAlphabet,
		EndOfWord: DefaultEndOfWord,
		Unknown:   DefaultUnknown,
	}
}

func (learner *Learner) endOfWord() types.Symbol {
	if learner.EndOfWord == "" {
		return DefaultEndOfWord
	}
	return learner.EndOfWord
}

func (learner *Learner) unknown() types.Symbol {
	if learner.Unknown == "" {
		return DefaultUnknown
	}
	return learner.Unknown
}

func (learner *Learner) alphabet() types.Symbols {
	if learner.Alphabet == nil {
		return EnglishAlphabet
	}
	return learner.Alphabet
}

// CountPairFrequencies sums each entry's frequency into every adjacent
// symbol pair within that entry's segmentation. Pairs are only ever counted
// within a single word; no pair spans two entries. No side effects.
func (learner *Learner) CountPairFrequencies(
	table TokenFrequencyTable,
) types.PairCounts {
	counts := make(types.PairCounts)
	for key, freq := range table {
		symbols := table.Segmentation(key)
		for idx := 1; idx < len(symbols); idx++ {
			pair := types.SymbolPair{
				Left:  symbols[idx-1],
				Right: symbols[idx],
			}
			counts[pair] += freq
		}
	}
	return counts
}

// MostFrequentPair picks the pair with the highest summed frequency.
// Ties are broken deterministically in favor of the lexicographically
// smallest pair, Left before Right, so the result never depends on map
// iteration order. Returns ErrEmptyVocabulary when counts is empty.
func (learner *Learner) MostFrequentPair(
	counts types.PairCounts,
) (types.SymbolPair, error) {
	if len(counts) == 0 {
		return types.SymbolPair{}, ErrEmptyVocabulary
	}
	var best types.SymbolPair
	bestCount := -1
	for pair, count := range counts {
		if count > bestCount ||
			(count == bestCount && pair.Less(best)) {
			best = pair
			bestCount = count
		}
	}
	return best, nil
}

// MergePair replaces every adjacent occurrence of pair in each entry's
// symbol sequence with the merged symbol, leaving frequencies unchanged,
// and appends the merged symbol to vocab. The replacement is an explicit
// left-to-right pass over the symbol sequence, never a substring
// replacement on the joined key, so a separator-joined coincidence inside
// another symbol's text can never match. Merging a pair with no remaining
// occurrences is a no-op.
func (learner *Learner) MergePair(
	pair types.SymbolPair,
	table TokenFrequencyTable,
	vocab *SymbolVocabulary,
) TokenFrequencyTable {
	merged := vocab.AppendMerge(pair)
	newTable := make(TokenFrequencyTable, len(table))
	for key, freq := range table {
		symbols := table.Segmentation(key)
		newSymbols := make(types.Symbols, 0, len(symbols))
		for idx := 0; idx < len(symbols); {
			if idx+1 < len(symbols) &&
				symbols[idx] == pair.Left &&
				symbols[idx+1] == pair.Right {
				newSymbols = append(newSymbols, merged)
				idx += 2
			} else {
				newSymbols = append(newSymbols, symbols[idx])
				idx += 1
			}
		}
		newTable[newSymbols.Join(SymbolSeparator)] += freq
	}
	return newTable
}

// Learn builds the initial table and vocabulary from raw word frequencies,
// then performs up to numMerges merge steps. Running out of adjacent pairs
// before numMerges is normal termination, not an error. The returned
// vocabulary contains the base alphabet, both markers, every single
// character seen in the corpus, and one merged symbol per completed step.
func (learner *Learner) Learn(
	rawWordFreqs map[string]int,
	numMerges int,
) (TokenFrequencyTable, *SymbolVocabulary, error) {
	if numMerges < 0 {
		return nil, nil, fmt.Errorf(
			"subword_bpe: negative merge count %d", numMerges)
	}
	vocab := NewSymbolVocabulary(
		learner.alphabet(), learner.endOfWord(), learner.unknown())
	table := NewTokenFrequencyTable(rawWordFreqs, learner.endOfWord())

	// Corpus characters outside the base alphabet still segment words, so
	// the vocabulary has to cover them.
	for key := range table {
		for _, sym := range table.Segmentation(key) {
			vocab.Append(sym)
		}
	}

	for step := 0; step < numMerges; step++ {
		counts := learner.CountPairFrequencies(table)
		pair, err := learner.MostFrequentPair(counts)
		if errors.Is(err, ErrEmptyVocabulary) {
			break
		}
		table = learner.MergePair(pair, table, vocab)
		if learner.Verbose {
			log.Printf("merge %d: %q + %q -> %q (frequency %d)",
				step+1, pair.Left, pair.Right, pair.Merged(),
				counts[pair])
		}
	}
	return table, vocab, nil
}
