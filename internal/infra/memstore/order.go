package memstore

import (
	"bytes"
	"time"

	"foodbridge/internal/usecase/queries"

	"github.com/google/uuid"
)

// compareNullsLast orders ascending with nil after every value.
func compareNullsLast(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return a.Compare(*b)
}

func compareID(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// newestFirst orders by (created_at, id) descending.
func newestFirst(aAt time.Time, aID uuid.UUID, bAt time.Time, bID uuid.UUID) int {
	if c := bAt.Compare(aAt); c != 0 {
		return c
	}
	return compareID(bID, aID)
}

// before reports whether the row sorts strictly after the page key.
func before(at time.Time, id uuid.UUID, key *queries.PageKey) bool {
	if key == nil {
		return true
	}
	if c := at.Compare(key.CreatedAt); c != 0 {
		return c < 0
	}
	return compareID(id, key.ID) < 0
}
