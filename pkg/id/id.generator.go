package id

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewULID returns a lexically sortable id; ids from one process are strictly
// increasing.
func NewULID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// GenerateEventID prefixes a ULID, e.g. evt_01JA...
func GenerateEventID(prefix string) string {
	return prefix + "_" + NewULID()
}

// NewRowID returns a random UUID for table primary keys.
func NewRowID() string {
	return uuid.NewString()
}
