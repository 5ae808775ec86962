package payments

import (
	"context"
	"strings"

	"stayhub/internal/messages"

	"github.com/google/uuid"
)

// CardCharger is the card-network collaborator. Integration details (Stripe
// et al.) live behind this interface.
type CardCharger interface {
	Charge(ctx context.Context, req messages.CreateChargeRequest) (messages.ChargeResult, error)
}

// StubCharger approves every well-formed charge and mints an invoice id.
// Stands in for the real processor in development and tests.
type StubCharger struct{}

func NewStubCharger() *StubCharger {
	return &StubCharger{}
}

func (s *StubCharger) Charge(_ context.Context, _ messages.CreateChargeRequest) (messages.ChargeResult, error) {
	id := "ch_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	return messages.ChargeResult{ChargeID: id, Status: "succeeded"}, nil
}
