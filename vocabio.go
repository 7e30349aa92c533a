package subword_bpe

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/wbrown/subword_bpe/resources"
	"github.com/wbrown/subword_bpe/types"
)

const mergesHeader = "#version: 0.2"

// SpecialConfig names the two special markers of a stored vocabulary.
// Both fields default to the reference markers when the file is absent.
type SpecialConfig struct {
	EndOfWord string `json:"end_of_word"`
	Unknown   string `json:"unknown"`
}

// NewVocabulary
// Returns a SymbolVocabulary loaded for the given vocabulary id. The id may
// be an embedded vocabulary (`demo-vocab`), a local directory, or an
// HTTP(S) base URL; the stored form is a `vocab.json` symbol-to-index map
// plus a `merges.txt` merge list, with an optional `special_config.json`.
func NewVocabulary(vocabId string) (*SymbolVocabulary, error) {
	rsrcsPtr, resolveErr := resources.ResolveVocabId(vocabId, "")
	if resolveErr != nil {
		return nil, resolveErr
	}
	rsrcs := *rsrcsPtr

	specialConfig := SpecialConfig{
		EndOfWord: string(DefaultEndOfWord),
		Unknown:   string(DefaultUnknown),
	}
	if special, ok := rsrcs["special_config.json"]; ok {
		if err := json.Unmarshal(*special.Data, &specialConfig); err != nil {
			return nil, fmt.Errorf(
				"cannot unmarshal `special_config.json` for %s: %w",
				vocabId, err)
		}
	}

	indexes := make(map[types.Symbol]int)
	if err := json.Unmarshal(*rsrcs["vocab.json"].Data, &indexes); err != nil {
		return nil, fmt.Errorf("cannot unmarshal `vocab.json` for %s: %w",
			vocabId, err)
	}
	ordered := make(types.Symbols, len(indexes))
	for sym, idx := range indexes {
		if idx < 0 || idx >= len(ordered) {
			return nil, fmt.Errorf(
				"vocab.json for %s: symbol %q has index %d out of range",
				vocabId, sym, idx)
		}
		if ordered[idx] != "" {
			return nil, fmt.Errorf(
				"vocab.json for %s: duplicate index %d", vocabId, idx)
		}
		ordered[idx] = sym
	}

	vocab := &SymbolVocabulary{
		symbols:   make(types.Symbols, 0, len(ordered)),
		index:     make(map[types.Symbol]int, len(ordered)),
		endOfWord: types.Symbol(specialConfig.EndOfWord),
		unknown:   types.Symbol(specialConfig.Unknown),
	}
	for _, sym := range ordered {
		vocab.Append(sym)
	}

	scanner := bufio.NewScanner(bytes.NewBuffer(*rsrcs["merges.txt"].Data))
	firstLine := true
	for scanner.Scan() {
		if firstLine {
			firstLine = false
			continue
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		leftRight := strings.SplitN(line, " ", 2)
		if len(leftRight) != 2 {
			return nil, fmt.Errorf(
				"merges.txt for %s: malformed merge line %q", vocabId, line)
		}
		pair := types.SymbolPair{
			Left:  types.Symbol(leftRight[0]),
			Right: types.Symbol(leftRight[1]),
		}
		if !vocab.Contains(pair.Merged()) {
			return nil, fmt.Errorf(
				"merges.txt for %s: merged symbol %q missing from vocab.json",
				vocabId, pair.Merged())
		}
		vocab.merges = append(vocab.merges, pair)
	}
	return vocab, nil
}

// WriteVocabJSON writes the symbol-to-index map, indexes following
// insertion order.
func WriteVocabJSON(w io.Writer, vocab *SymbolVocabulary) error {
	indexes := make(map[types.Symbol]int, vocab.Len())
	for idx, sym := range vocab.symbols {
		indexes[sym] = idx
	}
	vocabBytes, marshalErr := json.MarshalIndent(indexes, "", "  ")
	if marshalErr != nil {
		return marshalErr
	}
	_, writeErr := w.Write(append(vocabBytes, '\n'))
	return writeErr
}

// WriteMergesTxt writes the merge list, one `left right` line per merge
// step, after a version header line.
func WriteMergesTxt(w io.Writer, vocab *SymbolVocabulary) error {
	writer := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(writer, mergesHeader); err != nil {
		return err
	}
	for _, pair := range vocab.merges {
		if _, err := fmt.Fprintf(writer, "%s %s\n",
			pair.Left, pair.Right); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// WriteSpecialConfig writes the marker configuration.
func WriteSpecialConfig(w io.Writer, vocab *SymbolVocabulary) error {
	configBytes, marshalErr := json.MarshalIndent(SpecialConfig{
		EndOfWord: string(vocab.endOfWord),
		Unknown:   string(vocab.unknown),
	}, "", "  ")
	if marshalErr != nil {
		return marshalErr
	}
	_, writeErr := w.Write(append(configBytes, '\n'))
	return writeErr
}

// SaveVocabulary writes vocab.json, merges.txt, and special_config.json
// into dir, creating it if needed. A directory saved this way resolves
// through NewVocabulary.
func SaveVocabulary(vocab *SymbolVocabulary, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	writers := map[string]func(io.Writer, *SymbolVocabulary) error{
		"vocab.json":          WriteVocabJSON,
		"merges.txt":          WriteMergesTxt,
		"special_config.json": WriteSpecialConfig,
	}
	for name, write := range writers {
		file, createErr := os.Create(path.Join(dir, name))
		if createErr != nil {
			return createErr
		}
		if writeErr := write(file, vocab); writeErr != nil {
			file.Close()
			return writeErr
		}
		if closeErr := file.Close(); closeErr != nil {
			return closeErr
		}
	}
	return nil
}
