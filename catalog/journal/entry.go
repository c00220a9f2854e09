package journal

import (
	"errors"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

// Entry is one stored notification.
type Entry struct {
	ID               uuid.UUID
	NotificationType string
	OccurredAt       time.Time
	Failure          bool
	Payload          []byte
}

// Notification decodes the payload back into the catalog notification it was built from.
func (e Entry) Notification() (catalog.Notification, error) {
	switch e.NotificationType {
	case catalog.BookBorrowedNotificationType:
		return decode[catalog.BookBorrowed](e.Payload)
	case catalog.BorrowingBookFailedNotificationType:
		return decode[catalog.BorrowingBookFailed](e.Payload)
	case catalog.BookReturnedNotificationType:
		return decode[catalog.BookReturned](e.Payload)
	case catalog.ReturningBookFailedNotificationType:
		return decode[catalog.ReturningBookFailed](e.Payload)
	default:
		return nil, ErrUnknownNotificationType
	}
}

func decode[T catalog.Notification](payload []byte) (catalog.Notification, error) {
	var notification T
	if err := jsoniter.ConfigFastest.Unmarshal(payload, &notification); err != nil {
		return nil, errors.Join(ErrDecodingPayloadFailed, err)
	}

	return notification, nil
}

// buildEntry encodes a notification into a new Entry with a time-ordered ID.
func buildEntry(notification catalog.Notification) (Entry, error) {
	payload, err := jsoniter.ConfigFastest.Marshal(notification)
	if err != nil {
		return Entry{}, errors.Join(ErrEncodingPayloadFailed, err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		ID:               id,
		NotificationType: notification.NotificationType(),
		OccurredAt:       notification.HasOccurredAt(),
		Failure:          notification.IsFailure(),
		Payload:          payload,
	}, nil
}
