package subword_bpe

import (
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"github.com/wbrown/subword_bpe/types"
)

const SEGMENT_LRU_SZ = 16384

// Segmenter segments words, seen or unseen during learning, against a
// learned SymbolVocabulary. The vocabulary is treated as read-only; segment
// results for repeated words are served from an ARC cache.
type Segmenter struct {
	vocab     *SymbolVocabulary
	cache     *lru.ARCCache
	LruHits   int
	LruMisses int
}

func NewSegmenter(vocab *SymbolVocabulary) *Segmenter {
	cache, _ := lru.NewARC(SEGMENT_LRU_SZ)
	return &Segmenter{
		vocab: vocab,
		cache: cache,
	}
}

// Segment splits word into the longest sequence of known symbols, greedy
// longest-match-first from the left. The end-of-word marker is appended
// before matching, mirroring training-time preprocessing; the marker is
// atomic and never split. If no known symbol matches the remaining suffix,
// exactly one unknown marker is appended and matching stops. Segment never
// fails.
func (segmenter *Segmenter) Segment(word string) types.Symbols {
	if lookup, ok := segmenter.cache.Get(word); ok {
		segmenter.LruHits++
		return lookup.(types.Symbols)
	}
	segmenter.LruMisses++

	// One unit per rune, with the whole end-of-word marker as the final
	// unit.
	units := make([]string, 0, len(word)+1)
	for _, r := range word {
		units = append(units, string(r))
	}
	units = append(units, string(segmenter.vocab.EndOfWord()))

	symbols := make(types.Symbols, 0, len(units))
	start := 0
	end := len(units)
	for start < len(units) && start < end {
		candidate := types.Symbol(strings.Join(units[start:end], ""))
		if segmenter.vocab.Contains(candidate) {
			symbols = append(symbols, candidate)
			start = end
			end = len(units)
		} else {
			end -= 1
		}
	}
	if start < len(units) {
		symbols = append(symbols, segmenter.vocab.Unknown())
	}
	segmenter.cache.Add(word, symbols)
	return symbols
}

// Restore recombines a segmentation back into the raw word by
// concatenating its symbols and stripping the end-of-word marker. It
// reports false when the segmentation contains the unknown marker, in
// which case the unmatched remainder is lost and the word cannot be
// reconstructed.
func (segmenter *Segmenter) Restore(symbols types.Symbols) (string, bool) {
	if symbols.Contains(segmenter.vocab.Unknown()) {
		return "", false
	}
	text := symbols.Concat()
	return strings.TrimSuffix(text, string(segmenter.vocab.EndOfWord())), true
}
