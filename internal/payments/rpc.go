package payments

import (
	"context"
	"encoding/json"

	"stayhub/internal/messages"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/transport"
)

// RegisterHandlers exposes the payments service on the message transport.
// Failures are returned with a human-readable reason string.
func RegisterHandlers(srv *transport.Server, uc UseCase) {
	srv.Handle(messages.PatternCreateCharge, func(ctx context.Context, data json.RawMessage) (any, error) {
		var req messages.CreateChargeRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, errs.New("malformed create_charge request")
		}

		return uc.CreateCharge(ctx, req)
	})
}
