package reservations

import (
	"context"

	"stayhub/internal/messages"
	"stayhub/internal/rpc"
)

// PaymentsGateway is the synchronous charge collaborator.
type PaymentsGateway interface {
	CreateCharge(ctx context.Context, req messages.CreateChargeRequest) (messages.ChargeResult, error)
}

// Notifier is the fire-and-forget event collaborator.
type Notifier interface {
	NotifyEmail(event messages.NotifyEmailEvent) error
}

type rpcPaymentsGateway struct {
	payments *rpc.Client
}

func NewRPCPaymentsGateway(payments *rpc.Client) PaymentsGateway {
	return &rpcPaymentsGateway{payments: payments}
}

func (g *rpcPaymentsGateway) CreateCharge(ctx context.Context, req messages.CreateChargeRequest) (messages.ChargeResult, error) {
	var result messages.ChargeResult
	if err := g.payments.Call(ctx, messages.PatternCreateCharge, req, &result); err != nil {
		return messages.ChargeResult{}, err
	}
	return result, nil
}

type rpcNotifier struct {
	notifications *rpc.Client
}

func NewRPCNotifier(notifications *rpc.Client) Notifier {
	return &rpcNotifier{notifications: notifications}
}

func (n *rpcNotifier) NotifyEmail(event messages.NotifyEmailEvent) error {
	return n.notifications.Notify(messages.PatternNotifyEmail, event)
}
