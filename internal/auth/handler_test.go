package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayhub/internal/auth"
	"stayhub/internal/domain/user"
	"stayhub/internal/guard"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/cookie"
	"stayhub/internal/pkg/token"
	"stayhub/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	uc     auth.UseCase
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	clk := clock.NewMockClock(time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC))
	users := store.NewMemory[user.User]()
	tokens := token.NewService("test-secret", time.Hour, clk)
	s.uc = auth.NewUseCase(users, tokens, clk)

	handler := auth.NewHandler(s.uc, config.NewTestConfig().JWT)
	mw := guard.NewMiddleware(auth.NewLocalChecker(s.uc))

	s.router = gin.New()
	s.router.POST("/api/auth/login", handler.Login)
	s.router.POST("/api/auth/logout", handler.Logout)
	s.router.POST("/api/users", handler.Register)
	s.router.GET("/api/auth/me", mw.RequireAuth(), handler.Me)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) performJSON(method, url string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func authCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookie.AuthCookieName {
			return c
		}
	}
	return nil
}

func (s *AuthHandlerTestSuite) TestLoginSetsAuthCookie() {
	rec := s.performJSON(http.MethodPost, "/api/users", gin.H{"email": "a@b.com", "password": "password123"})
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.performJSON(http.MethodPost, "/api/auth/login", gin.H{"email": "a@b.com", "password": "password123"})
	s.Equal(http.StatusOK, rec.Code)

	c := authCookieFrom(rec)
	s.Require().NotNil(c, "login must set the Authentication cookie")
	s.NotEmpty(c.Value)
	s.True(c.HttpOnly)
}

func (s *AuthHandlerTestSuite) TestLoginRejectsBadCredentials() {
	rec := s.performJSON(http.MethodPost, "/api/users", gin.H{"email": "a@b.com", "password": "password123"})
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.performJSON(http.MethodPost, "/api/auth/login", gin.H{"email": "a@b.com", "password": "wrong-password"})
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Nil(authCookieFrom(rec))
}

func (s *AuthHandlerTestSuite) TestRegisterValidationAndConflict() {
	rec := s.performJSON(http.MethodPost, "/api/users", gin.H{"email": "not-an-email", "password": "password123"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.performJSON(http.MethodPost, "/api/users", gin.H{"email": "a@b.com", "password": "short"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.performJSON(http.MethodPost, "/api/users", gin.H{"email": "a@b.com", "password": "password123"})
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.performJSON(http.MethodPost, "/api/users", gin.H{"email": "a@b.com", "password": "password123"})
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *AuthHandlerTestSuite) TestMeRequiresAndUsesCookie() {
	rec := s.performJSON(http.MethodGet, "/api/auth/me", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.performJSON(http.MethodPost, "/api/users", gin.H{"email": "a@b.com", "password": "password123"})
	s.Equal(http.StatusCreated, rec.Code)
	rec = s.performJSON(http.MethodPost, "/api/auth/login", gin.H{"email": "a@b.com", "password": "password123"})
	s.Equal(http.StatusOK, rec.Code)
	c := authCookieFrom(rec)
	s.Require().NotNil(c)

	rec = s.performJSON(http.MethodGet, "/api/auth/me", nil, c)
	s.Equal(http.StatusOK, rec.Code)

	var resp auth.UserResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("a@b.com", resp.Email)
}
