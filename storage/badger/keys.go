package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/vidyasetu/scholarrank/core"
)

// Key prefixes for different data types
const (
	catalogPrefix        = "catent"
	catalogOrdinalPrefix = "catord"
	catalogOrdinalSeq    = "catordseq"
	eventPrefix          = "evt"
	eventUserPrefix      = "evtu"
	eventIDSeq           = "evtseq"
)

// makeCatalogKey generates a key for a catalog entry by its string ID.
func makeCatalogKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", catalogPrefix, id))
}

// makeCatalogOrdinalKey generates a composite key for the insertion-order index.
// Format: prefix:ordinal
func makeCatalogOrdinalKey(ordinal uint64) []byte {
	prefix := catalogOrdinalPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	// BigEndian so lexicographic order matches insertion order
	binary.BigEndian.PutUint64(buf[offset:], ordinal)
	return buf
}

// makeEventKey generates a key for an interaction event by ID.
func makeEventKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", eventPrefix, id))
}

// makeEventUserKey generates a composite key for the per-user recency index.
// Format: prefix:userID:timestampMicros:id
func makeEventUserKey(userID string, tsMicro int64, id core.ID) []byte {
	prefix := eventUserPrefix + ":" + userID + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+16)
	offset := copy(buf, prefixBytes)
	// BigEndian so lexicographic sort within a user partition is time order
	binary.BigEndian.PutUint64(buf[offset:], uint64(tsMicro))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeEventUserPartition generates the key prefix for one user's event index.
func makeEventUserPartition(userID string) []byte {
	return []byte(eventUserPrefix + ":" + userID + ":")
}
