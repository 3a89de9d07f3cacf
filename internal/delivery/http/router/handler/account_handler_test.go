package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passport/internal/delivery/http/middleware"
	deliveryvalidator "passport/internal/delivery/http/validator"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	mockUC "passport/internal/mocks/usecase"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestServer wires a full echo instance so routes, validator and the
// centralized error handler behave like production.
func newTestServer(t *testing.T) (*echo.Echo, *mockUC.MockAccountUsecase) {
	uc := mockUC.NewMockAccountUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HideBanner = true
	e.Validator = deliveryvalidator.New()
	errorMiddleware := middleware.NewErrorMiddleware(logger)
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	h := NewAccountHandler(uc, logger)
	authMW := middleware.NewAuthMiddleware(uc)

	api := e.Group("/api/v1")
	accountGroup := api.Group("/account")
	accountGroup.POST("", h.Register)
	accountGroup.GET("/list", h.ListAccounts)
	accountGroup.POST("/login", h.Login)
	accountGroup.POST("/authenticate", h.Authenticate)
	accountGroup.GET("/me", h.Me, authMW.Authenticate)
	accountGroup.GET("/:id", h.GetAccount)
	e.GET("/health", HealthCheck)

	return e, uc
}

func doJSON(e *echo.Echo, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestAccountHandler_Register_Created(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Username: "alice",
			Password: "Password123!",
			Email:    "alice@example.com",
		}).
		Return(&usecase.RegisterOutput{Account: &entity.Account{
			ID:           7,
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "hashed_password",
		}}, nil)

	rec := doJSON(e, http.MethodPost, "/api/v1/account",
		`{"username":"alice","password":"Password123!","email":"alice@example.com"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]any)
	assert.Equal(t, float64(7), data["id"])
	assert.Equal(t, "alice", data["username"])
	assert.Equal(t, "alice@example.com", data["email"])

	// The password hash must never appear in a response body.
	assert.NotContains(t, rec.Body.String(), "hashed_password")
	assert.NotContains(t, rec.Body.String(), "Password123!")
}

func TestAccountHandler_Register_MissingField(t *testing.T) {
	// Required-field violations are caught by request validation before the
	// usecase runs; no expectation is set on the mock.
	e, _ := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing password and email", `{"username":"alice"}`},
		{"missing username", `{"password":"pw","email":"a@b.c"}`},
		{"empty password", `{"username":"alice","password":"","email":"a@b.c"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/api/v1/account", tc.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			envelope := decodeEnvelope(t, rec)
			assert.Equal(t, false, envelope["success"])
			errInfo := envelope["error"].(map[string]any)
			assert.Equal(t, "MISSING_FIELD", errInfo["code"])
		})
	}
}

func TestAccountHandler_Login_MissingField(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/account/login",
		`{"username":"alice"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	errInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "MISSING_FIELD", errInfo["code"])
}

func TestAccountHandler_Register_Duplicate(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrDuplicateUsername.WrapMessage("username already taken"))

	rec := doJSON(e, http.MethodPost, "/api/v1/account",
		`{"username":"alice","password":"pw","email":"a@b.c"}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)

	envelope := decodeEnvelope(t, rec)
	errInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "DUPLICATE_USERNAME", errInfo["code"])
}

func TestAccountHandler_GetAccount_OK(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		GetAccount(mock.Anything, int64(7)).
		Return(&entity.Account{ID: 7, Username: "alice", Email: "alice@example.com"}, nil)

	rec := doJSON(e, http.MethodGet, "/api/v1/account/7", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, float64(7), data["id"])
}

func TestAccountHandler_GetAccount_NotFound(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		GetAccount(mock.Anything, int64(99)).
		Return(nil, domainerrors.ErrAccountNotFound.WrapMessage("account not found"))

	rec := doJSON(e, http.MethodGet, "/api/v1/account/99", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeEnvelope(t, rec)
	errInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "ACCOUNT_NOT_FOUND", errInfo["code"])
}

func TestAccountHandler_GetAccount_BadID(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/account/abc", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccountHandler_ListAccounts(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		ListAccounts(mock.Anything).
		Return([]*entity.Account{
			{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "h1"},
			{ID: 2, Username: "bob", Email: "bob@example.com", PasswordHash: "h2"},
		}, nil)

	rec := doJSON(e, http.MethodGet, "/api/v1/account/list", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	users := data["users"].([]any)
	require.Len(t, users, 2)
	first := users[0].(map[string]any)
	assert.Equal(t, "alice", first["username"])

	assert.NotContains(t, rec.Body.String(), "h1")
	assert.NotContains(t, rec.Body.String(), "h2")
}

func TestAccountHandler_ListAccounts_Empty(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().ListAccounts(mock.Anything).Return([]*entity.Account{}, nil)

	rec := doJSON(e, http.MethodGet, "/api/v1/account/list", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	users := data["users"].([]any)
	assert.Empty(t, users)
}

func TestAccountHandler_Login_Created(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "Password123!"}).
		Return(&usecase.LoginOutput{
			Token:    "signed.token.value",
			Duration: 3600,
			Account:  &entity.Account{ID: 7, Username: "alice"},
		}, nil)

	rec := doJSON(e, http.MethodPost, "/api/v1/account/login",
		`{"username":"alice","password":"Password123!"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "signed.token.value", data["token"])
	assert.Equal(t, float64(3600), data["duration"])
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid credentials"))

	rec := doJSON(e, http.MethodPost, "/api/v1/account/login",
		`{"username":"alice","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	envelope := decodeEnvelope(t, rec)
	errInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "INVALID_CREDENTIALS", errInfo["code"])
}

func TestAccountHandler_Authenticate_OK(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		ValidateToken(mock.Anything, "signed.token.value").
		Return(&entity.Account{ID: 7, Username: "alice", Email: "alice@example.com"}, nil)

	rec := doJSON(e, http.MethodPost, "/api/v1/account/authenticate",
		`{"token":"signed.token.value"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "signed.token.value", data["token"])
	user := data["user"].(map[string]any)
	assert.Equal(t, "alice", user["username"])
}

func TestAccountHandler_Authenticate_Expired(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		ValidateToken(mock.Anything, "stale.token").
		Return(nil, domainerrors.ErrTokenExpired.WrapMessage("token has expired"))

	rec := doJSON(e, http.MethodPost, "/api/v1/account/authenticate",
		`{"token":"stale.token"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	envelope := decodeEnvelope(t, rec)
	errInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "TOKEN_EXPIRED", errInfo["code"])
}

func TestAccountHandler_Authenticate_MissingToken(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/account/authenticate", `{}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	errInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errInfo["code"])
}

func TestAccountHandler_Me_OK(t *testing.T) {
	e, uc := newTestServer(t)

	uc.EXPECT().
		ValidateToken(mock.Anything, "signed.token.value").
		Return(&entity.Account{ID: 7, Username: "alice", Email: "alice@example.com"}, nil)

	header := http.Header{}
	header.Set(echo.HeaderAuthorization, "Bearer signed.token.value")
	rec := doJSON(e, http.MethodGet, "/api/v1/account/me", "", header)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "alice", data["username"])
}

func TestAccountHandler_Me_NoAuthorizationHeader(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/account/me", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	envelope := decodeEnvelope(t, rec)
	errInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "TOKEN_INVALID", errInfo["code"])
}

func TestAccountHandler_Me_BadScheme(t *testing.T) {
	e, _ := newTestServer(t)

	header := http.Header{}
	header.Set(echo.HeaderAuthorization, "Basic YWxpY2U6cHc=")
	rec := doJSON(e, http.MethodGet, "/api/v1/account/me", "", header)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
