package auth

import (
	"errors"
	"net/http"

	"stayhub/internal/domain/user"
	"stayhub/internal/guard"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	uc  UseCase
	cfg config.JWTConfig
}

func NewHandler(uc UseCase, cfg config.JWTConfig) *Handler {
	return &Handler{uc: uc, cfg: cfg}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	credential, u, err := h.uc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	cookie.SetAuthCookie(c, credential, h.cfg.TTL)
	c.JSON(http.StatusOK, UserResponse{ID: u.ID.String(), Email: u.Email})
}

func (h *Handler) Logout(c *gin.Context) {
	cookie.ClearAuthCookie(c)
	c.Status(http.StatusNoContent)
}

func (h *Handler) Me(c *gin.Context) {
	principal, ok := guard.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	u, err := h.uc.GetUser(c.Request.Context(), principal.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, UserResponse{ID: u.ID.String(), Email: u.Email})
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	u, err := h.uc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		case errors.Is(err, user.ErrInvalidEmail), errors.Is(err, user.ErrPasswordTooWeak):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, UserResponse{ID: u.ID.String(), Email: u.Email})
}
