package resources

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"path"
	"time"

	"github.com/dustin/go-humanize"
)

type ResourceFlag uint8

// Enumeration of resource flags that indicate what the resolver should do
// with the resource.
const (
	RESOURCE_REQUIRED ResourceFlag = 1 << iota
	RESOURCE_OPTIONAL
)

type ResourceEntryDefs map[string]ResourceFlag

type ResourceEntry struct {
	Data *[]byte
}

type Resources map[string]ResourceEntry

// GetResourceEntries
// Returns the map of resource entries that express which vocabulary files
// are required and which are optional.
func GetResourceEntries() ResourceEntryDefs {
	return ResourceEntryDefs{
		"vocab.json":          RESOURCE_REQUIRED,
		"merges.txt":          RESOURCE_REQUIRED,
		"special_config.json": RESOURCE_OPTIONAL,
	}
}

// WriteCounter counts the number of bytes written to it, and every 10
// seconds, it prints a message reporting the number of bytes written so far.
type WriteCounter struct {
	Total uint64
	Last  time.Time
	Path  string
	Size  uint64
}

func (wc *WriteCounter) Write(p []byte) (int, error) {
	n := len(p)
	wc.Total += uint64(n)
	if time.Now().Sub(wc.Last).Seconds() > 10 {
		wc.Last = time.Now()
		log.Printf("Downloading %s... %s / %s completed.",
			wc.Path, humanize.Bytes(wc.Total), humanize.Bytes(wc.Size))
	}
	return n, nil
}

func isValidUrl(toTest string) bool {
	_, err := url.ParseRequestURI(toTest)
	if err != nil {
		return false
	}
	u, err := url.Parse(toTest)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	return true
}

// fetchRemote downloads one resource into memory, reporting progress for
// larger files through a WriteCounter.
func fetchRemote(uri string, rsrc string, token string) (*[]byte, error) {
	size, sizeErr := SizeHTTP(uri, rsrc, token)
	if sizeErr != nil {
		return nil, sizeErr
	}
	reader, fetchErr := FetchHTTP(uri, rsrc, token)
	if fetchErr != nil {
		return nil, fetchErr
	}
	defer reader.Close()
	counter := &WriteCounter{
		Last: time.Now(),
		Path: uri + "/" + rsrc,
		Size: uint64(size),
	}
	buf, readErr := io.ReadAll(io.TeeReader(reader, counter))
	if readErr != nil {
		return nil, readErr
	}
	return &buf, nil
}

// resolveEntry locates one resource for vocabId, checking embedded data,
// then the local filesystem, then HTTP.
func resolveEntry(vocabId string, rsrc string, token string) (
	*ResourceEntry, error) {
	if embedded := GetEmbeddedResource(vocabId + "/" + rsrc); embedded != nil {
		return embedded, nil
	}
	if isValidUrl(vocabId) {
		data, fetchErr := fetchRemote(vocabId, rsrc, token)
		if fetchErr != nil {
			return nil, fetchErr
		}
		return &ResourceEntry{data}, nil
	}
	localPath := path.Join(vocabId, rsrc)
	if _, statErr := os.Stat(localPath); statErr != nil {
		return nil, statErr
	}
	data, readErr := ReadLocal(localPath)
	if readErr != nil {
		return nil, readErr
	}
	return &ResourceEntry{data}, nil
}

// ResolveVocabId
// Resolves a vocabulary id to its resource files. The id may name an
// embedded vocabulary (such as `demo-vocab`), a local directory containing
// the files, or an HTTP(S) base URL to fetch them from. Required files that
// cannot be resolved are an error; optional ones are skipped.
func ResolveVocabId(vocabId string, token string) (*Resources, error) {
	foundResources := make(Resources, 0)
	for rsrc, flag := range GetResourceEntries() {
		entry, resolveErr := resolveEntry(vocabId, rsrc, token)
		if resolveErr != nil {
			if flag&RESOURCE_REQUIRED != 0 {
				return nil, errors.New(fmt.Sprintf(
					"cannot retrieve required `%s` for `%s`: %s",
					rsrc, vocabId, resolveErr))
			}
			continue
		}
		foundResources[rsrc] = *entry
	}
	return &foundResources, nil
}
