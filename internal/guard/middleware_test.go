package guard_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stayhub/internal/guard"
	"stayhub/internal/pkg/cookie"
	"stayhub/tests/mock/guardmock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GuardMiddlewareTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockChecker *guardmock.MockAuthChecker

	seenPrincipal *guard.Principal
}

func (s *GuardMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockChecker = guardmock.NewMockAuthChecker(s.mockCtrl)
	s.seenPrincipal = nil

	mw := guard.NewMiddleware(s.mockChecker)
	s.router = gin.New()
	s.router.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		if p, ok := guard.CurrentPrincipal(c); ok {
			s.seenPrincipal = &p
		}
		c.Status(http.StatusOK)
	})
}

func (s *GuardMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuardMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(GuardMiddlewareTestSuite))
}

func (s *GuardMiddlewareTestSuite) perform(credential string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if credential != "" {
		req.AddCookie(&http.Cookie{Name: cookie.AuthCookieName, Value: credential})
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *GuardMiddlewareTestSuite) TestMissingCookieDeniesWithoutAnyCall() {
	// Fail-fast path: the checker must not be consulted at all.
	s.mockChecker.EXPECT().Check(gomock.Any(), gomock.Any()).Times(0)

	rec := s.perform("")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Nil(s.seenPrincipal)
}

func (s *GuardMiddlewareTestSuite) TestValidCredentialAdmitsAndAttachesPrincipal() {
	principal := guard.Principal{ID: uuid.New(), Email: "a@b.com"}
	s.mockChecker.EXPECT().Check(gomock.Any(), "good-token").
		Return(principal, nil).Times(1)

	rec := s.perform("good-token")

	s.Equal(http.StatusOK, rec.Code)
	s.Require().NotNil(s.seenPrincipal)
	s.Equal(principal, *s.seenPrincipal)
}

func (s *GuardMiddlewareTestSuite) TestCheckerFailureDeniesWithOpaqueReason() {
	s.mockChecker.EXPECT().Check(gomock.Any(), "bad-token").
		Return(guard.Principal{}, errors.New("remote error: unauthorized")).Times(1)

	rec := s.perform("bad-token")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Nil(s.seenPrincipal)
	// The remote error text stays behind the boundary.
	s.NotContains(rec.Body.String(), "remote error")
}

func (s *GuardMiddlewareTestSuite) TestIndependentRequestsGetIndependentDecisions() {
	admitted := guard.Principal{ID: uuid.New(), Email: "ok@b.com"}
	s.mockChecker.EXPECT().Check(gomock.Any(), "good-token").
		Return(admitted, nil).Times(1)
	s.mockChecker.EXPECT().Check(gomock.Any(), "bad-token").
		Return(guard.Principal{}, errors.New("denied")).Times(1)

	s.Equal(http.StatusUnauthorized, s.perform("bad-token").Code)
	s.Equal(http.StatusOK, s.perform("good-token").Code)
}
