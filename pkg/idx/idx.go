// Package idx mints the ULIDs that identify users and tasks. An ID is the
// 26 character Crockford base32 form; its leading characters encode the
// creation millisecond, so IDs sort by age.
package idx

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a ULID in canonical string form.
type ID string

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New mints an ID stamped with the current time.
func New() ID { return NewAt(time.Now()) }

// NewAt mints an ID stamped with t. IDs minted within the same millisecond
// still increase.
func NewAt(t time.Time) ID {
	mu.Lock()
	defer mu.Unlock()
	return ID(ulid.MustNew(ulid.Timestamp(t), entropy).String())
}

func (id ID) String() string { return string(id) }

// Time returns the creation instant encoded in id, or the zero time when id
// is not a ULID.
func (id ID) Time() time.Time {
	u, err := ulid.ParseStrict(string(id))
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time()).UTC()
}

// Valid reports whether s is a well formed ULID. Lookups use it to answer
// "not found" for garbage path ids without a database round trip.
func Valid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
