package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/saleslens/saleslens/core"
)

// Key prefixes for different data types
const (
	profileRecordPrefix = "prorec"
	profileDatePrefix   = "prorecd"
)

// makeProfileKey generates a key for a profile record by ID.
func makeProfileKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", profileRecordPrefix, id))
}

// makeProfileDateKey generates a composite key for the fetch-time index.
// Format: prefix:timestamp:id
func makeProfileDateKey(fetchedAt time.Time, id core.ID) []byte {
	prefix := profileDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(fetchedAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialProfileDateKey generates a partial key for fetch-time range
// queries. Format: prefix:timestamp
func makePartialProfileDateKey(fetchedAt time.Time) []byte {
	prefix := profileDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(fetchedAt.UnixMicro()))
	return buf
}
