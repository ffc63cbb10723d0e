package slug

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind selects the uniqueness namespace a slug lives in. Artists and events
// each have their own; "tango-quartet" may exist once in each.
type Kind string

const (
	KindArtist Kind = "artist"
	KindEvent  Kind = "event"
)

// Counter reports how many records of a kind already carry an exact slug,
// optionally ignoring one record (so an update does not collide with itself).
type Counter interface {
	CountBySlug(kind Kind, slug string, excludeID *uuid.UUID) (int64, error)
}

// Ensure returns candidate, or candidate with the lowest numeric suffix that
// is free in the kind's namespace: "name", "name-1", "name-2", ...
//
// An empty candidate (a name made only of symbols or emoji slugifies to "")
// falls back to a generated token instead of producing the "-1", "-2" chain
// an empty base would otherwise yield.
//
// The check is read-only and not atomic with the caller's eventual write; the
// store's unique index is the real guarantee, and callers should retry the
// assignment once when that index rejects the write.
func Ensure(counter Counter, candidate string, kind Kind, excludeID *uuid.UUID) (string, error) {
	if candidate == "" {
		candidate = fallback(kind)
	}

	unique := candidate
	for n := 1; ; n++ {
		count, err := counter.CountBySlug(kind, unique, excludeID)
		if err != nil {
			return "", err
		}
		if count == 0 {
			return unique, nil
		}
		unique = fmt.Sprintf("%s-%d", candidate, n)
	}
}

func fallback(kind Kind) string {
	return fmt.Sprintf("%s-%s", kind, uuid.NewString()[:8])
}
