package payments

import (
	"context"
	"errors"
	"log/slog"

	"stayhub/internal/messages"
	"stayhub/internal/pkg/errs"
)

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrMissingCard     = errors.New("card token is required")
	ErrChargeFailed    = errors.New("charge failed")
	ErrMissingCurrency = errors.New("currency is required")
)

type UseCase interface {
	CreateCharge(ctx context.Context, req messages.CreateChargeRequest) (messages.ChargeResult, error)
}

type useCaseImpl struct {
	charger CardCharger
	log     *slog.Logger
}

func NewUseCase(charger CardCharger, log *slog.Logger) UseCase {
	return &useCaseImpl{
		charger: charger,
		log:     log,
	}
}

func (p *useCaseImpl) CreateCharge(ctx context.Context, req messages.CreateChargeRequest) (messages.ChargeResult, error) {
	if req.AmountMinorUnits <= 0 {
		return messages.ChargeResult{}, ErrInvalidAmount
	}
	if req.CardToken == "" {
		return messages.ChargeResult{}, ErrMissingCard
	}
	if req.Currency == "" {
		return messages.ChargeResult{}, ErrMissingCurrency
	}

	result, err := p.charger.Charge(ctx, req)
	if err != nil {
		p.log.Warn("card charge declined", "email", req.Email, "error", err)
		return messages.ChargeResult{}, errs.Mark(err, ErrChargeFailed)
	}

	p.log.Info("charge created",
		"charge_id", result.ChargeID,
		"amount_minor_units", req.AmountMinorUnits,
		"currency", req.Currency,
	)
	return result, nil
}
