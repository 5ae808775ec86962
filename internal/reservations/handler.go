package reservations

import (
	"errors"
	"net/http"
	"time"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/guard"
	"stayhub/internal/transport"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	uc UseCase
}

func NewHandler(uc UseCase) *Handler {
	return &Handler{uc: uc}
}

type ChargeRequest struct {
	CardToken        string `json:"card_token" binding:"required"`
	AmountMinorUnits int64  `json:"amount_minor_units" binding:"required,gt=0"`
	Currency         string `json:"currency" binding:"required,len=3"`
}

type CreateReservationRequest struct {
	StartDate time.Time     `json:"start_date" binding:"required"`
	EndDate   time.Time     `json:"end_date" binding:"required"`
	PlaceID   string        `json:"place_id" binding:"required"`
	Charge    ChargeRequest `json:"charge" binding:"required"`
}

type UpdateReservationRequest struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	PlaceID   *string    `json:"place_id,omitempty"`
}

type ReservationResponse struct {
	ID        string    `json:"id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	PlaceID   string    `json:"place_id"`
	InvoiceID string    `json:"invoice_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(rsv reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        rsv.ID.String(),
		StartDate: rsv.StartDate,
		EndDate:   rsv.EndDate,
		PlaceID:   rsv.PlaceID,
		InvoiceID: rsv.InvoiceID,
		UserID:    rsv.UserID.String(),
		CreatedAt: rsv.CreatedAt,
	}
}

func (h *Handler) Create(c *gin.Context) {
	principal, ok := guard.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	params := CreateParams{
		Draft: reservation.Draft{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			PlaceID:   req.PlaceID,
		},
		Charge: ChargeParams{
			CardToken:        req.Charge.CardToken,
			AmountMinorUnits: req.Charge.AmountMinorUnits,
			Currency:         req.Charge.Currency,
		},
	}

	rsv, err := h.uc.Create(c.Request.Context(), params, principal)
	if err != nil {
		var remoteErr *transport.RemoteError
		switch {
		case errors.As(err, &remoteErr):
			// The charge was explicitly declined; the reason travels as-is.
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": remoteErr.Message})
		case errors.Is(err, reservation.ErrInvalidDateRange),
			errors.Is(err, reservation.ErrMissingPlace):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, toResponse(rsv))
}

func (h *Handler) Get(c *gin.Context) {
	principal, ok := guard.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}

	rsv, err := h.uc.Get(c.Request.Context(), id, principal)
	if err != nil {
		h.writeLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(rsv))
}

func (h *Handler) List(c *gin.Context) {
	principal, ok := guard.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	rsvs, err := h.uc.ListByUser(c.Request.Context(), principal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	responses := make([]ReservationResponse, 0, len(rsvs))
	for _, rsv := range rsvs {
		responses = append(responses, toResponse(rsv))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *Handler) Update(c *gin.Context) {
	principal, ok := guard.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rsv, err := h.uc.Update(c.Request.Context(), id, UpdateParams{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		PlaceID:   req.PlaceID,
	}, principal)
	if err != nil {
		h.writeLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(rsv))
}

func (h *Handler) Delete(c *gin.Context) {
	principal, ok := guard.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation id"})
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id, principal); err != nil {
		h.writeLookupError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
	case errors.Is(err, ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
