package reservations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/guard"
	"stayhub/internal/messages"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/store"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNotOwner            = errors.New("reservation belongs to another user")
	// ErrPersistenceFailed marks the charged-but-unrecorded case: the charge
	// succeeded and the store write did not. No compensation path exists.
	ErrPersistenceFailed = errors.New("reservation persistence failed")
)

type ReservationStore = store.Store[reservation.Reservation]

type CreateParams struct {
	Draft  reservation.Draft
	Charge ChargeParams
}

type ChargeParams struct {
	CardToken        string
	AmountMinorUnits int64
	Currency         string
}

type UpdateParams struct {
	StartDate *time.Time
	EndDate   *time.Time
	PlaceID   *string
}

type UseCase interface {
	// Create sequences the only multi-service write path: synchronous charge,
	// conditional persistence, then a fire-and-forget receipt event.
	Create(ctx context.Context, params CreateParams, principal guard.Principal) (reservation.Reservation, error)
	Get(ctx context.Context, id uuid.UUID, principal guard.Principal) (reservation.Reservation, error)
	ListByUser(ctx context.Context, principal guard.Principal) ([]reservation.Reservation, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams, principal guard.Principal) (reservation.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID, principal guard.Principal) error
}

type useCaseImpl struct {
	reservations ReservationStore
	payments     PaymentsGateway
	notifier     Notifier
	clock        clock.Clock
	log          *slog.Logger
}

func NewUseCase(
	reservations ReservationStore,
	payments PaymentsGateway,
	notifier Notifier,
	clk clock.Clock,
	log *slog.Logger,
) UseCase {
	return &useCaseImpl{
		reservations: reservations,
		payments:     payments,
		notifier:     notifier,
		clock:        clk,
		log:          log,
	}
}

func (r *useCaseImpl) Create(ctx context.Context, params CreateParams, principal guard.Principal) (reservation.Reservation, error) {
	// Step 1: charge first. A failure here aborts the whole operation and
	// propagates verbatim; nothing has been persisted yet.
	chargeReq := messages.CreateChargeRequest{
		CardToken:        params.Charge.CardToken,
		AmountMinorUnits: params.Charge.AmountMinorUnits,
		Currency:         params.Charge.Currency,
		Email:            principal.Email,
	}
	result, err := r.payments.CreateCharge(ctx, chargeReq)
	if err != nil {
		return reservation.Reservation{}, err
	}

	// Step 2: record the reservation with the charge id as invoice reference.
	rsv, err := reservation.New(params.Draft, result.ChargeID, principal.ID, r.clock.Now())
	if err != nil {
		return reservation.Reservation{}, err
	}

	if err := r.reservations.Create(ctx, rsv.ID, rsv); err != nil {
		// Money has moved but no record exists. Logged loudly; the caller
		// sees an internal failure.
		r.log.Error("reservation persistence failed after successful charge",
			"charge_id", result.ChargeID,
			"user_id", principal.ID,
			"error", err,
		)
		return reservation.Reservation{}, errs.Mark(err, ErrPersistenceFailed)
	}

	// Step 3: receipt event. Outcome is neither awaited nor allowed to
	// affect the result.
	event := messages.NotifyEmailEvent{
		Email: principal.Email,
		Text:  receiptText(params.Charge, result.ChargeID),
	}
	if err := r.notifier.NotifyEmail(event); err != nil {
		r.log.Warn("receipt notification not delivered", "email", principal.Email, "error", err)
	}

	return rsv, nil
}

func (r *useCaseImpl) Get(ctx context.Context, id uuid.UUID, principal guard.Principal) (reservation.Reservation, error) {
	rsv, err := r.reservations.FindOne(ctx, id)
	if err != nil {
		return reservation.Reservation{}, errs.Mark(err, ErrReservationNotFound)
	}
	if rsv.UserID != principal.ID {
		return reservation.Reservation{}, ErrNotOwner
	}
	return rsv, nil
}

func (r *useCaseImpl) ListByUser(ctx context.Context, principal guard.Principal) ([]reservation.Reservation, error) {
	return r.reservations.Find(ctx, func(rsv reservation.Reservation) bool {
		return rsv.UserID == principal.ID
	})
}

func (r *useCaseImpl) Update(ctx context.Context, id uuid.UUID, params UpdateParams, principal guard.Principal) (reservation.Reservation, error) {
	if _, err := r.Get(ctx, id, principal); err != nil {
		return reservation.Reservation{}, err
	}

	updated, err := r.reservations.FindOneAndUpdate(ctx, id, func(rsv reservation.Reservation) reservation.Reservation {
		if params.StartDate != nil {
			rsv.StartDate = *params.StartDate
		}
		if params.EndDate != nil {
			rsv.EndDate = *params.EndDate
		}
		if params.PlaceID != nil {
			rsv.PlaceID = *params.PlaceID
		}
		return rsv
	})
	if err != nil {
		return reservation.Reservation{}, errs.Mark(err, ErrReservationNotFound)
	}
	return updated, nil
}

func (r *useCaseImpl) Delete(ctx context.Context, id uuid.UUID, principal guard.Principal) error {
	if _, err := r.Get(ctx, id, principal); err != nil {
		return err
	}

	if _, err := r.reservations.FindOneAndDelete(ctx, id); err != nil {
		return errs.Mark(err, ErrReservationNotFound)
	}
	return nil
}

func receiptText(charge ChargeParams, chargeID string) string {
	major := float64(charge.AmountMinorUnits) / 100
	return fmt.Sprintf(
		"Your payment of %.2f %s has completed successfully. Invoice: %s",
		major, charge.Currency, chargeID,
	)
}
