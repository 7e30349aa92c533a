package subword_bpe

import (
	"fmt"
	"testing"
)

// A synthetic corpus with enough pair structure to keep the learner busy.
func benchmarkWordFreqs() map[string]int {
	wordFreqs := make(map[string]int)
	stems := []string{"fast", "tall", "small", "bright", "deep", "sharp"}
	suffixes := []string{"", "er", "est", "ness", "ly"}
	for stemIdx, stem := range stems {
		for suffixIdx, suffix := range suffixes {
			wordFreqs[stem+suffix] = (stemIdx+1)*7 + suffixIdx
		}
	}
	return wordFreqs
}

func BenchmarkLearner_Learn(b *testing.B) {
	wordFreqs := benchmarkWordFreqs()
	learner := NewLearner()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := learner.Learn(wordFreqs, 50); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSegmenter_Segment(b *testing.B) {
	_, vocab, err := NewLearner().Learn(benchmarkWordFreqs(), 50)
	if err != nil {
		b.Fatal(err)
	}
	segmenter := NewSegmenter(vocab)
	words := make([]string, 0, 64)
	for idx := 0; idx < 64; idx++ {
		words = append(words, fmt.Sprintf("brightness%d", idx))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		segmenter.Segment(words[i%len(words)])
	}
}
