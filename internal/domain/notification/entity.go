package notification

import (
	"fmt"
	"strings"
	"time"

	"foodbridge/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxMessageLength = 500

var (
	ErrEmptyMessage          = errs.Sentinel(errs.ErrValidation, "notification message cannot be empty")
	ErrNotificationNotFound  = errs.Sentinel(errs.ErrNotFound, "notification not found")
	ErrNotNotificationOwner  = errs.Sentinel(errs.ErrUnauthorized, "notification not owned by actor")
	ErrAcknowledgeConflicted = errs.Sentinel(errs.ErrStateConflict, "notification was modified concurrently")
)

type Kind string

const (
	KindNearExpiry Kind = "near_expiry"
)

type Notification struct {
	id             uuid.UUID
	itemID         uuid.UUID
	ownerID        uuid.UUID
	kind           Kind
	message        string
	triggeredAt    time.Time
	acknowledged   bool
	acknowledgedAt *time.Time
	version        int64
}

func New(itemID, ownerID uuid.UUID, kind Kind, message string, now time.Time) (*Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if runes := []rune(message); len(runes) > MaxMessageLength {
		message = string(runes[:MaxMessageLength])
	}
	return &Notification{
		id:          uuid.New(),
		itemID:      itemID,
		ownerID:     ownerID,
		kind:        kind,
		message:     message,
		triggeredAt: now,
		version:     1,
	}, nil
}

func Reconstruct(
	id, itemID, ownerID uuid.UUID,
	kind Kind,
	message string,
	triggeredAt time.Time,
	acknowledgedAt *time.Time,
	version int64,
) *Notification {
	return &Notification{
		id:             id,
		itemID:         itemID,
		ownerID:        ownerID,
		kind:           kind,
		message:        message,
		triggeredAt:    triggeredAt,
		acknowledged:   acknowledgedAt != nil,
		acknowledgedAt: acknowledgedAt,
		version:        version,
	}
}

// Acknowledge is idempotent; the first acknowledgement time is kept.
func (n *Notification) Acknowledge(now time.Time) {
	if n.acknowledged {
		return
	}
	n.acknowledged = true
	n.acknowledgedAt = &now
}

func (n *Notification) ID() uuid.UUID              { return n.id }
func (n *Notification) ItemID() uuid.UUID          { return n.itemID }
func (n *Notification) OwnerID() uuid.UUID         { return n.ownerID }
func (n *Notification) Kind() Kind                 { return n.kind }
func (n *Notification) Message() string            { return n.message }
func (n *Notification) TriggeredAt() time.Time     { return n.triggeredAt }
func (n *Notification) Acknowledged() bool         { return n.acknowledged }
func (n *Notification) AcknowledgedAt() *time.Time { return n.acknowledgedAt }
func (n *Notification) Version() int64             { return n.version }

func (n *Notification) Clone() *Notification {
	c := *n
	return &c
}

// NearExpiryMessage is the text suppliers see when an item approaches its best-before date.
func NearExpiryMessage(itemName string, bestBefore, now time.Time) string {
	remaining := bestBefore.Sub(now)
	if remaining <= 0 {
		return fmt.Sprintf("%s has passed its best-before date (%s). List it for distributors or remove it.",
			itemName, bestBefore.Format(time.DateOnly))
	}
	return fmt.Sprintf("%s reaches its best-before date in %s (%s). Consider listing it for distributors.",
		itemName, humanizeDuration(remaining), bestBefore.Format(time.DateOnly))
}

func humanizeDuration(d time.Duration) string {
	hours := int(d.Hours())
	switch {
	case hours >= 48:
		return fmt.Sprintf("%d days", hours/24)
	case hours >= 1:
		return fmt.Sprintf("%d hours", hours)
	default:
		return "less than an hour"
	}
}
