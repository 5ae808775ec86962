package reservation

import (
	"time"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange = errs.New("start date must be before end date")
	ErrMissingPlace     = errs.New("place id is required")
	ErrMissingInvoice   = errs.New("invoice id is required")
)

// Reservation is recorded only after a successful charge; InvoiceID is the
// charge id returned by the payments service.
type Reservation struct {
	ID        uuid.UUID `json:"id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	PlaceID   string    `json:"place_id"`
	InvoiceID string    `json:"invoice_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Draft struct {
	StartDate time.Time
	EndDate   time.Time
	PlaceID   string
}

func New(draft Draft, invoiceID string, userID uuid.UUID, now time.Time) (Reservation, error) {
	if !draft.StartDate.Before(draft.EndDate) {
		return Reservation{}, ErrInvalidDateRange
	}
	if draft.PlaceID == "" {
		return Reservation{}, ErrMissingPlace
	}
	if invoiceID == "" {
		return Reservation{}, ErrMissingInvoice
	}

	return Reservation{
		ID:        uuid.New(),
		StartDate: draft.StartDate,
		EndDate:   draft.EndDate,
		PlaceID:   draft.PlaceID,
		InvoiceID: invoiceID,
		UserID:    userID,
		CreatedAt: now,
	}, nil
}
