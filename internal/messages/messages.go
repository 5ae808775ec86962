// Package messages holds the wire DTOs shared between services. They are the
// contract of the RPC patterns, kept separate from any one service's domain.
package messages

import "github.com/google/uuid"

// Pattern names understood across the system.
const (
	PatternAuthenticate = "authenticate"
	PatternCreateCharge = "create_charge"
	PatternNotifyEmail  = "notify_email"
)

// AuthenticateRequest asks the auth service to resolve a bearer credential.
type AuthenticateRequest struct {
	Credential string `json:"credential"`
}

// UserDTO is the resolved identity returned on successful authentication.
type UserDTO struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// CreateChargeRequest is sent to the payments service. Amount is in minor
// units (cents) to avoid floating-point money.
type CreateChargeRequest struct {
	CardToken        string `json:"card_token"`
	AmountMinorUnits int64  `json:"amount_minor_units"`
	Currency         string `json:"currency"`
	Email            string `json:"email"`
}

// ChargeResult is the payments reply. ChargeID becomes the reservation's
// invoice reference on the success path.
type ChargeResult struct {
	ChargeID string `json:"charge_id"`
	Status   string `json:"status"`
}

// NotifyEmailEvent is fire-and-forget; no acknowledgment exists.
type NotifyEmailEvent struct {
	Email string `json:"email"`
	Text  string `json:"text"`
}
