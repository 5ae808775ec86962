package guard

import (
	"context"

	"stayhub/internal/messages"
	"stayhub/internal/rpc"

	"github.com/google/uuid"
)

// Principal is the resolved identity of the caller, attached to the request
// after successful validation. Request-scoped, never persisted.
type Principal struct {
	ID    uuid.UUID
	Email string
}

// AuthChecker resolves a bearer credential to a Principal. The guard takes it
// as an explicit constructor dependency; implementations exist for the remote
// auth service (RPCChecker) and for in-process validation inside the auth
// service itself.
type AuthChecker interface {
	Check(ctx context.Context, credential string) (Principal, error)
}

// RPCChecker asks the auth service over the message transport.
type RPCChecker struct {
	auth *rpc.Client
}

func NewRPCChecker(auth *rpc.Client) *RPCChecker {
	return &RPCChecker{auth: auth}
}

func (c *RPCChecker) Check(ctx context.Context, credential string) (Principal, error) {
	var dto messages.UserDTO
	err := c.auth.Call(ctx, messages.PatternAuthenticate, messages.AuthenticateRequest{
		Credential: credential,
	}, &dto)
	if err != nil {
		return Principal{}, err
	}

	return Principal{ID: dto.ID, Email: dto.Email}, nil
}
