//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"invoice-service/internal/domain/account"
	"invoice-service/internal/handler/api"
	resdto "invoice-service/internal/handler/dto/response"
	"invoice-service/internal/pkg/config"
	"invoice-service/internal/pkg/errs"
	"invoice-service/internal/pkg/jwt"
	"invoice-service/internal/usecase"
	"invoice-service/internal/usecase/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *mocks.MockAuthUseCase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = mocks.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase, &jwt.Service{}, config.NewTestConfig())

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", setUserID(uuid.New()), s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := map[string]any{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "password123",
	}
	expectedParams := usecase.RegisterParams{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	}

	s.Run("success: returns 201 with token, user and auth cookie", func() {
		returnUser := accountRM()
		s.mockUseCase.EXPECT().Register(gomock.Any(), expectedParams).
			Return("test-jwt-token", returnUser, nil).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.AuthResponse
		decodeResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal(returnUser.Email, response.User.Email)
		s.Contains(rec.Header().Get("Set-Cookie"), "access_token=")
	})

	s.Run("error: 409 on duplicate email", func() {
		s.mockUseCase.EXPECT().Register(gomock.Any(), expectedParams).
			Return("", nil, errs.ErrDuplicateAccount).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		assertErrorBody(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("error: 400 when the domain rejects what the binder accepted", func() {
		// go-playground's email check is looser than the domain's, so
		// addresses like "user@example.c" reach the usecase.
		for _, sentinel := range []error{
			account.ErrInvalidEmail,
			account.ErrPasswordTooWeak,
			account.ErrEmptyName,
		} {
			s.mockUseCase.EXPECT().Register(gomock.Any(), expectedParams).
				Return("", nil, sentinel).Times(1)

			rec := performRequest(s.T(), s.router, http.MethodPost, url, reqBody)
			assertErrorBody(s.T(), rec, http.StatusBadRequest, "Invalid request data")
		}
	})

	s.Run("error: 400 on malformed body", func() {
		cases := []map[string]any{
			{"name": "Alice", "email": "not-an-email", "password": "password123"},
			{"name": "Alice", "email": "alice@example.com", "password": "short"},
			{"email": "alice@example.com", "password": "password123"},
		}
		for _, body := range cases {
			rec := performRequest(s.T(), s.router, http.MethodPost, url, body)
			assertErrorBody(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		}
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockUseCase.EXPECT().Register(gomock.Any(), expectedParams).
			Return("", nil, errors.New("storage failure")).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		assertErrorBody(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]any{
		"email":    "alice@example.com",
		"password": "password123",
	}

	s.Run("success: returns 200 with token and auth cookie", func() {
		returnUser := accountRM()
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("test-jwt-token", returnUser, nil).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.AuthResponse
		decodeResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.User.Email)
		s.Contains(rec.Header().Get("Set-Cookie"), "access_token=")
	})

	s.Run("error: 401 on invalid credentials", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("", nil, errs.ErrInvalidCredentials).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		assertErrorBody(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 on binder rejection", func() {
		rec := performRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "bad"})
		assertErrorBody(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 on a wrong guess shorter than the strength rule", func() {
		rec := performRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"email":    "alice@example.com",
			"password": "short",
		})
		assertErrorBody(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and clears the cookie", func() {
		s.mockUseCase.EXPECT().Logout(gomock.Any()).Return(nil).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Contains(rec.Header().Get("Set-Cookie"), "access_token=;")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the current account", func() {
		returnUser := accountRM()
		s.mockUseCase.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response map[string]any
		decodeResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response["email"])
	})

	s.Run("error: 404 when the account no longer exists", func() {
		s.mockUseCase.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrAccountNotFound).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodGet, url, nil)
		assertErrorBody(s.T(), rec, http.StatusNotFound, "Account not found")
	})

	s.Run("error: 401 when user_id missing in context", func() {
		router := gin.New()
		router.GET(url, s.handler.Me)

		rec := performRequest(s.T(), router, http.MethodGet, url, nil)
		assertErrorBody(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})
}
