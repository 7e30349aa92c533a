// Package corpus builds raw word-frequency tables from running text, the
// input the vocabulary learner consumes.
package corpus

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/jdkato/prose/v2"
	"github.com/yargevad/filepathx"

	"github.com/wbrown/subword_bpe/resources"
)

type PathInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
	Dir     bool
}

// GlobTexts
// Given a directory path, recursively finds all `.txt` files, returning a
// slice of PathInfo.
func GlobTexts(dirPath string) (pathInfos []PathInfo, err error) {
	textPaths, err := filepathx.Glob(dirPath + "/**/*.txt")
	if err != nil {
		return nil, err
	}
	numMatches := len(textPaths)
	if numMatches == 0 {
		return nil, errors.New(fmt.Sprintf(
			"%s does not contain any .txt files", dirPath))
	}
	pathInfos = make([]PathInfo, numMatches)
	for matchIdx := range textPaths {
		currPath := textPaths[matchIdx]
		if stat, statErr := os.Stat(currPath); statErr != nil {
			return nil, statErr
		} else {
			pathInfos[matchIdx] = PathInfo{
				Path:    currPath,
				Size:    stat.Size(),
				ModTime: stat.ModTime(),
				Dir:     stat.IsDir(),
			}
		}
	}
	return pathInfos, nil
}

func SortPathInfoByPath(pathInfos []PathInfo, ascending bool) {
	if ascending {
		sort.Slice(pathInfos, func(i, j int) bool {
			return pathInfos[i].Path < pathInfos[j].Path
		})
	} else {
		sort.Slice(pathInfos, func(i, j int) bool {
			return pathInfos[i].Path > pathInfos[j].Path
		})
	}
}

func lettersOnly(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// CountWords extracts words from running text and counts them. Word
// boundaries come from prose's tokenizer; tokens are lowercased, and only
// all-letter tokens count as words (punctuation and numbers never reach the
// learner).
func CountWords(text string) (map[string]int, error) {
	doc, docErr := prose.NewDocument(
		text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if docErr != nil {
		return nil, docErr
	}
	wordFreqs := make(map[string]int)
	for _, tok := range doc.Tokens() {
		word := strings.ToLower(tok.Text)
		if lettersOnly(word) {
			wordFreqs[word] += 1
		}
	}
	return wordFreqs, nil
}

// CountReader counts words from an io.Reader.
func CountReader(reader io.Reader) (map[string]int, error) {
	text, readErr := io.ReadAll(reader)
	if readErr != nil {
		return nil, readErr
	}
	return CountWords(string(text))
}

// accumulate folds src counts into dst.
func accumulate(dst map[string]int, src map[string]int) {
	for word, freq := range src {
		dst[word] += freq
	}
}

// CountPath counts words from a single text file, or from every `.txt`
// file under a directory. Files are visited in path order so the result is
// stable; large files are memory-mapped.
func CountPath(inputPath string) (map[string]int, error) {
	stat, statErr := os.Stat(inputPath)
	if statErr != nil {
		return nil, statErr
	}
	paths := []string{inputPath}
	if stat.IsDir() {
		pathInfos, globErr := GlobTexts(inputPath)
		if globErr != nil {
			return nil, globErr
		}
		SortPathInfoByPath(pathInfos, true)
		paths = paths[:0]
		for _, pathInfo := range pathInfos {
			paths = append(paths, pathInfo.Path)
		}
	}
	wordFreqs := make(map[string]int)
	for _, textPath := range paths {
		textBytes, readErr := resources.ReadLocal(textPath)
		if readErr != nil {
			return nil, readErr
		}
		fileFreqs, countErr := CountWords(string(*textBytes))
		if countErr != nil {
			return nil, countErr
		}
		accumulate(wordFreqs, fileFreqs)
	}
	return wordFreqs, nil
}
