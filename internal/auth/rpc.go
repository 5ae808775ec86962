package auth

import (
	"context"
	"encoding/json"

	"stayhub/internal/guard"
	"stayhub/internal/messages"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/transport"
)

// RegisterHandlers exposes the auth service on the message transport.
func RegisterHandlers(srv *transport.Server, uc UseCase) {
	srv.Handle(messages.PatternAuthenticate, func(ctx context.Context, data json.RawMessage) (any, error) {
		var req messages.AuthenticateRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, errs.New("malformed authenticate request")
		}

		principal, err := uc.Authenticate(ctx, req.Credential)
		if err != nil {
			// All validation failure kinds collapse into one denial on the
			// wire; callers get a deny decision, not our internals.
			return nil, errs.New("unauthorized")
		}

		return messages.UserDTO{ID: principal.ID, Email: principal.Email}, nil
	})
}

// LocalChecker validates credentials in-process. The auth service uses it for
// its own guarded HTTP routes instead of an RPC round trip to itself.
type LocalChecker struct {
	uc UseCase
}

func NewLocalChecker(uc UseCase) *LocalChecker {
	return &LocalChecker{uc: uc}
}

func (c *LocalChecker) Check(ctx context.Context, credential string) (guard.Principal, error) {
	return c.uc.Authenticate(ctx, credential)
}
