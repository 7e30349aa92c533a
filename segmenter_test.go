package subword_bpe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/subword_bpe/types"
)

type SegmentTest struct {
	Word     string
	Expected types.Symbols
}

var demoSegmentTests = []SegmentTest{
	{"fast", types.Symbols{"fast_"}},
	{"faster", types.Symbols{"fast", "er_"}},
	{"tall", types.Symbols{"tall_"}},
	{"taller", types.Symbols{"tall", "er_"}},
	// Unseen during learning: falls back to the whole-"tall" unit plus
	// single characters, all of which the vocabulary covers.
	{"tallest", types.Symbols{"tall", "e", "s", "t", "_"}},
	{"fat", types.Symbols{"f", "a", "t", "_"}},
}

func TestSegmenter_DemoVocabulary(t *testing.T) {
	segmenter := NewSegmenter(demoVocab)
	for _, test := range demoSegmentTests {
		assert.Equal(t, test.Expected, segmenter.Segment(test.Word),
			"segmenting %q", test.Word)
	}
}

func TestSegmenter_UnknownResidual(t *testing.T) {
	// A vocabulary where `fa` and `er_` are merged units but `t` is not
	// even a known character: the residual after `fa` has no match at any
	// window size, so it degrades to a single unknown marker.
	vocab := NewSymbolVocabulary(BaseAlphabet("aefr"),
		DefaultEndOfWord, DefaultUnknown)
	vocab.AppendMerge(types.SymbolPair{Left: "f", Right: "a"})
	vocab.AppendMerge(types.SymbolPair{Left: "e", Right: "r"})
	vocab.AppendMerge(types.SymbolPair{Left: "er", Right: "_"})

	segmenter := NewSegmenter(vocab)
	assert.Equal(t, types.Symbols{"fa", "[UNK]"},
		segmenter.Segment("fatter"))
}

func TestSegmenter_UnknownSingleCharacter(t *testing.T) {
	// A single-character residual outside the vocabulary is never split
	// further; it becomes the unknown marker directly.
	vocab := NewSymbolVocabulary(BaseAlphabet("ab"),
		DefaultEndOfWord, DefaultUnknown)
	segmenter := NewSegmenter(vocab)
	assert.Equal(t, types.Symbols{"a", "[UNK]"}, segmenter.Segment("a!"))
	assert.Equal(t, types.Symbols{"[UNK]"}, segmenter.Segment("!"))
}

func TestSegmenter_EmptyWord(t *testing.T) {
	segmenter := NewSegmenter(demoVocab)
	assert.Equal(t, types.Symbols{"_"}, segmenter.Segment(""))
}

func TestSegmenter_Soundness(t *testing.T) {
	// Any word over the covered alphabet recombines to itself.
	segmenter := NewSegmenter(demoVocab)
	for _, word := range []string{
		"fast", "faster", "tallest", "alfalfa", "zigzag",
	} {
		symbols := segmenter.Segment(word)
		restored, ok := segmenter.Restore(symbols)
		require.True(t, ok, "segmenting %q", word)
		assert.Equal(t, word, restored)
		assert.Equal(t, word+"_", symbols.Concat())
	}
}

func TestSegmenter_RestoreUnknown(t *testing.T) {
	segmenter := NewSegmenter(demoVocab)
	_, ok := segmenter.Restore(segmenter.Segment("éclair"))
	assert.False(t, ok)
}

func TestSegmenter_Cache(t *testing.T) {
	segmenter := NewSegmenter(demoVocab)
	first := segmenter.Segment("taller")
	second := segmenter.Segment("taller")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, segmenter.LruMisses)
	assert.Equal(t, 1, segmenter.LruHits)
}
