package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	identityapp "employee_console_service/internal/identity/app"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAccessUseCase Mock AccessUseCase
type MockAccessUseCase struct {
	mock.Mock
}

// IssueOwnerCode moke issue owner code
func (m *MockAccessUseCase) IssueOwnerCode(ctx context.Context, phoneNumber string) (string, error) {
	args := m.Called(ctx, phoneNumber)
	return args.String(0), args.Error(1)
}

// VerifyOwnerCode moke verify owner code
func (m *MockAccessUseCase) VerifyOwnerCode(ctx context.Context, phoneNumber, code string) (string, error) {
	args := m.Called(ctx, phoneNumber, code)
	return args.String(0), args.Error(1)
}

// IssueEmployeeCode moke issue employee code
func (m *MockAccessUseCase) IssueEmployeeCode(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

// VerifyEmployeeCode moke verify employee code
func (m *MockAccessUseCase) VerifyEmployeeCode(ctx context.Context, email, code string) (string, error) {
	args := m.Called(ctx, email, code)
	return args.String(0), args.Error(1)
}

func newAuthTestApp(access identityapp.AccessUseCase) *fiber.App {
	handler := NewAuthHandler(access)

	app := fiber.New()
	app.Post("/owner/CreateNewAccessCode", handler.CreateOwnerAccessCode)
	app.Post("/owner/ValidateAccessCode", handler.ValidateOwnerAccessCode)
	app.Post("/employee/LoginEmail", handler.EmployeeLoginEmail)
	app.Post("/employee/ValidateAccessCode", handler.ValidateEmployeeAccessCode)
	return app
}

func authPost(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp, out
}

// 測試簽發 owner 驗證碼
func TestCreateOwnerAccessCode(t *testing.T) {
	access := new(MockAccessUseCase)
	access.On("IssueOwnerCode", mock.Anything, "0912345678").Return("123456", nil)

	app := newAuthTestApp(access)
	resp, body := authPost(t, app, "/owner/CreateNewAccessCode", `{"phoneNumber": "0912345678"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "123456", body["accessCode"])
}

// 測試缺 phoneNumber 回 400
func TestCreateOwnerAccessCode_MissingPhone(t *testing.T) {
	access := new(MockAccessUseCase)
	app := newAuthTestApp(access)

	resp, _ := authPost(t, app, "/owner/CreateNewAccessCode", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	access.AssertNotCalled(t, "IssueOwnerCode")
}

// 測試驗證成功回 token
func TestValidateOwnerAccessCode(t *testing.T) {
	access := new(MockAccessUseCase)
	access.On("VerifyOwnerCode", mock.Anything, "0912345678", "123456").Return("jwt-token", nil)

	app := newAuthTestApp(access)
	resp, body := authPost(t, app, "/owner/ValidateAccessCode", `{"phoneNumber": "0912345678", "accessCode": "123456"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "jwt-token", body["token"])
}

// 測試錯誤驗證碼回 401
func TestValidateOwnerAccessCode_Invalid(t *testing.T) {
	access := new(MockAccessUseCase)
	access.On("VerifyOwnerCode", mock.Anything, "0912345678", "999999").Return("", identityapp.ErrInvalidCode)

	app := newAuthTestApp(access)
	resp, body := authPost(t, app, "/owner/ValidateAccessCode", `{"phoneNumber": "0912345678", "accessCode": "999999"}`)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid code", body["error"])
}

// 測試 employee 信箱登入流程
func TestEmployeeLoginAndValidate(t *testing.T) {
	access := new(MockAccessUseCase)
	access.On("IssueEmployeeCode", mock.Anything, "alice@example.com").Return("654321", nil)
	access.On("VerifyEmployeeCode", mock.Anything, "alice@example.com", "654321").Return("jwt-token", nil)

	app := newAuthTestApp(access)

	resp, body := authPost(t, app, "/employee/LoginEmail", `{"email": "alice@example.com"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "654321", body["accessCode"])

	resp, body = authPost(t, app, "/employee/ValidateAccessCode", `{"email": "alice@example.com", "accessCode": "654321"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "jwt-token", body["token"])
}
