package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"foodbridge/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.Sentinel(errs.ErrValidation, "invalid cursor")

type Cursor struct {
	After string `json:"after,omitempty"`
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw := CursorVersionV1 + ":" + strconv.FormatInt(t.UnixMicro(), 10) + "-" + id.String()
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (*PageKey, error) {
	if cursor == "" {
		return nil, nil
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return nil, ErrInvalidCursor
	}
	micros, idStr, ok := strings.Cut(payload, "-")
	if !ok {
		return nil, ErrInvalidCursor
	}
	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	return &PageKey{CreatedAt: time.UnixMicro(ts), ID: id}, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// paginate trims a limit+1 result set and derives the next cursor.
func paginate(rows []*RequestView, limit int) ([]*RequestView, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	last := rows[limit-1]
	return rows[:limit], &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
}
