package resources

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// Files at or above this size are memory-mapped rather than read into the
// heap.
const mmapThreshold = 1 << 20

func readMmap(file *os.File) (*[]byte, error) {
	fileMmap, mmapErr := mmap.Map(file, mmap.RDONLY, 0)
	mmapBytes := (*[]byte)(&fileMmap)
	return mmapBytes, mmapErr
}

// ReadLocal returns the contents of a local file, memory-mapping large
// files. The returned bytes stay valid for the life of the process; small
// files are plain heap reads.
func ReadLocal(path string) (*[]byte, error) {
	stat, statErr := os.Stat(path)
	if statErr != nil {
		return nil, statErr
	}
	if stat.Size() >= mmapThreshold {
		file, openErr := os.Open(path)
		if openErr != nil {
			return nil, openErr
		}
		return readMmap(file)
	}
	fileBytes, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, readErr
	}
	return &fileBytes, nil
}
