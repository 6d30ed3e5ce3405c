package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tavern/internal/domain/entity"
	"tavern/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountUsecase returns canned values for handler tests.
type stubAccountUsecase struct {
	registerOutput *usecase.RegisterOutput
	authOutput     *usecase.AuthenticateOutput
	err            error
}

func (s *stubAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.registerOutput, s.err
}

func (s *stubAccountUsecase) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	return s.authOutput, s.err
}

func (s *stubAccountUsecase) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) (*usecase.ChangePasswordOutput, error) {
	return nil, s.err
}

func (s *stubAccountUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return nil, s.err
}

func (s *stubAccountUsecase) GetUserByID(ctx context.Context, id int64) (*entity.User, error) {
	return nil, s.err
}

func (s *stubAccountUsecase) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, s.err
}

type noopValidator struct{}

func (noopValidator) Validate(i any) error { return nil }

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = noopValidator{}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAccountHandler_Register_ReturnsUserID(t *testing.T) {
	uc := &stubAccountUsecase{registerOutput: &usecase.RegisterOutput{UserID: 1}}
	h := &AccountHandler{uc: uc}

	c, rec := newTestContext(t, http.MethodPost, "/users/register", `{"username":"Frodo","password":"Password123!"}`)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":1`)
}

func TestAccountHandler_Authenticate_RedactsCredentials(t *testing.T) {
	uc := &stubAccountUsecase{
		authOutput: &usecase.AuthenticateOutput{
			User: &entity.User{
				ID:           7,
				Username:     "Frodo",
				PasswordHash: []byte("secret-hash"),
				PasswordSalt: []byte("secret-salt"),
			},
		},
	}
	h := &AccountHandler{uc: uc}

	c, rec := newTestContext(t, http.MethodPost, "/users/authenticate", `{"username":"Frodo","password":"Password123!"}`)

	err := h.Authenticate(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"username":"Frodo"`)
	// The credential pair must never appear in a response body.
	assert.NotContains(t, body, "secret-hash")
	assert.NotContains(t, body, "secret-salt")
	assert.NotContains(t, body, "passwordHash")
}

func TestAccountHandler_GetUserByID_RejectsNonNumericID(t *testing.T) {
	h := &AccountHandler{uc: &stubAccountUsecase{}}

	c, rec := newTestContext(t, http.MethodGet, "/users/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.GetUserByID(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}
