package main

import (
	"flag"
	"log"

	"github.com/dustin/go-humanize"

	"github.com/wbrown/subword_bpe"
	"github.com/wbrown/subword_bpe/corpus"
	"github.com/wbrown/subword_bpe/types"
)

func main() {
	inputPath := flag.String("input", "",
		"text file, or directory of .txt files, to learn from")
	numMerges := flag.Int("merges", 100,
		"number of merge steps to perform")
	alphabet := flag.String("alphabet", "abcdefghijklmnopqrstuvwxyz",
		"base alphabet, one symbol per character")
	endOfWord := flag.String("end_of_word", string(subword_bpe.DefaultEndOfWord),
		"end-of-word marker symbol")
	unknown := flag.String("unknown", string(subword_bpe.DefaultUnknown),
		"unknown marker symbol")
	outputDir := flag.String("output", "vocab",
		"directory to write vocab.json, merges.txt and special_config.json")
	verbose := flag.Bool("verbose", false,
		"log each merge step")
	flag.Parse()

	if *inputPath == "" {
		flag.Usage()
		log.Fatal("Must provide -input")
	}

	wordFreqs, countErr := corpus.CountPath(*inputPath)
	if countErr != nil {
		log.Fatal(countErr)
	}
	totalWords := 0
	for _, freq := range wordFreqs {
		totalWords += freq
	}
	log.Printf("Counted %s words (%s distinct) from %s.",
		humanize.Comma(int64(totalWords)),
		humanize.Comma(int64(len(wordFreqs))),
		*inputPath)

	learner := &subword_bpe.Learner{
		Alphabet:  subword_bpe.BaseAlphabet(*alphabet),
		EndOfWord: types.Symbol(*endOfWord),
		Unknown:   types.Symbol(*unknown),
		Verbose:   *verbose,
	}
	_, vocab, learnErr := learner.Learn(wordFreqs, *numMerges)
	if learnErr != nil {
		log.Fatal(learnErr)
	}
	log.Printf("Learned %s merges; vocabulary has %s symbols.",
		humanize.Comma(int64(len(vocab.Merges()))),
		humanize.Comma(int64(vocab.Len())))

	if saveErr := subword_bpe.SaveVocabulary(vocab, *outputDir); saveErr != nil {
		log.Fatal(saveErr)
	}
	log.Printf("Wrote vocabulary to %s.", *outputDir)
}
