package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/wbrown/subword_bpe"
)

// A REPL for interacting with a learned `subword_bpe` vocabulary.

func main() {
	vocabOpt := flag.String("vocab", "demo-vocab",
		"vocabulary id: embedded id, local directory, or URL")
	flag.Parse()

	vocab, err := subword_bpe.NewVocabulary(*vocabOpt)
	if err != nil {
		log.Fatal(err)
	}
	segmenter := subword_bpe.NewSegmenter(vocab)

	reader := bufio.NewReader(os.Stdin)
	// Provide a REPL
	for {
		fmt.Print(">>> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			log.Fatal(err)
		}
		for _, word := range strings.Fields(input) {
			symbols := segmenter.Segment(word)
			fmt.Printf("%s -> |%s|\n", word, symbols.Join("|"))
		}
	}
}
