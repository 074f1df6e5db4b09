package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/amit-3245/Secure-Notes-API/domain"
	"github.com/amit-3245/Secure-Notes-API/utils"
	"github.com/gin-gonic/gin"
)

// stubAuthUseCase lets each test script the controller outcome.
type stubAuthUseCase struct {
	tokenManager *utils.JWTManager

	registerErr   error
	verifyUser    *domain.User
	verifyErr     error
	loginToken    *domain.AuthToken
	loginErr      error
	forgotErr     error
	resetErr      error
	resetTokenErr error
	changeErr     error
	deleteErr     error

	changedFor uint
	deletedFor uint
}

func (s *stubAuthUseCase) GetAccessTokenManager() *utils.JWTManager { return s.tokenManager }

func (s *stubAuthUseCase) Register(context.Context, string, string, string) error {
	return s.registerErr
}

func (s *stubAuthUseCase) VerifyRegistration(context.Context, string, string) (*domain.User, error) {
	return s.verifyUser, s.verifyErr
}

func (s *stubAuthUseCase) Login(context.Context, string, string) (*domain.AuthToken, error) {
	return s.loginToken, s.loginErr
}

func (s *stubAuthUseCase) ForgotPassword(context.Context, string) error { return s.forgotErr }

func (s *stubAuthUseCase) ResetPassword(context.Context, string, string, string) error {
	return s.resetErr
}

func (s *stubAuthUseCase) ResetPasswordWithToken(context.Context, string, string) error {
	return s.resetTokenErr
}

func (s *stubAuthUseCase) ChangePassword(_ context.Context, userID uint, _, _ string) error {
	s.changedFor = userID
	return s.changeErr
}

func (s *stubAuthUseCase) DeleteAccount(_ context.Context, userID uint) error {
	s.deletedFor = userID
	return s.deleteErr
}

func newTestRouter(stub *stubAuthUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewAuthHandler(r, stub)
	NewPasswordHandler(r, stub)
	return r
}

func newStub() *stubAuthUseCase {
	return &stubAuthUseCase{
		tokenManager: utils.NewJWTManager("test-secret-key-of-sufficient-len", 30*time.Minute),
	}
}

func postJSON(r *gin.Engine, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	r := newTestRouter(newStub())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestSendOTP_Success(t *testing.T) {
	r := newTestRouter(newStub())

	w := postJSON(r, "/register/send-otp",
		`{"name":"Asha","email":"asha@example.com","password":"s3cret-password"}`, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body.String())
	}
	// The code travels by email only; nothing like the old otp_demo field.
	if strings.Contains(w.Body.String(), "otp_demo") {
		t.Fatalf("response leaks otp material: %s", w.Body.String())
	}
}

func TestSendOTP_ValidationRejected(t *testing.T) {
	r := newTestRouter(newStub())

	cases := []string{
		`{"name":"Asha","email":"not-an-email","password":"s3cret-password"}`,
		`{"name":"Asha","email":"asha@example.com","password":"short"}`,
		`{}`,
	}
	for _, body := range cases {
		if w := postJSON(r, "/register/send-otp", body, nil); w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestSendOTP_EmailAlreadyRegistered(t *testing.T) {
	stub := newStub()
	stub.registerErr = domain.ErrEmailAlreadyRegistered
	r := newTestRouter(stub)

	w := postJSON(r, "/register/send-otp",
		`{"name":"Asha","email":"asha@example.com","password":"s3cret-password"}`, nil)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestVerifyOTP_Created(t *testing.T) {
	stub := newStub()
	stub.verifyUser = &domain.User{ID: 1, Name: "Asha", Email: "asha@example.com"}
	r := newTestRouter(stub)

	w := postJSON(r, "/register/verify-otp",
		`{"email":"asha@example.com","otp":"000023"}`, nil)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body = %s", w.Code, w.Body.String())
	}
}

func TestVerifyOTP_InvalidAndExpired(t *testing.T) {
	for _, scenario := range []error{domain.ErrInvalidOTP, domain.ErrOTPExpired} {
		stub := newStub()
		stub.verifyErr = scenario
		r := newTestRouter(stub)

		w := postJSON(r, "/register/verify-otp",
			`{"email":"asha@example.com","otp":"123456"}`, nil)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("%v: status = %d, want 400", scenario, w.Code)
		}
	}
}

func TestLogin_FormEncoded(t *testing.T) {
	stub := newStub()
	stub.loginToken = &domain.AuthToken{AccessToken: "signed-token", TokenType: "bearer"}
	r := newTestRouter(stub)

	form := url.Values{"username": {"asha@example.com"}, "password": {"s3cret-password"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body.String())
	}

	var resp domain.AuthToken
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.AccessToken != "signed-token" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected token response: %+v", resp)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	stub := newStub()
	stub.loginErr = domain.ErrInvalidCredentials
	r := newTestRouter(stub)

	form := url.Values{"username": {"asha@example.com"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	stub := newStub()
	stub.forgotErr = domain.ErrUserNotFound
	r := newTestRouter(stub)

	w := postJSON(r, "/password/forgot", `{"email":"nobody@example.com"}`, nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestResetPassword_Success(t *testing.T) {
	r := newTestRouter(newStub())

	w := postJSON(r, "/password/reset",
		`{"email":"asha@example.com","otp":"000023","new_password":"new-password-22"}`, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body.String())
	}
}

func TestResetWithToken_Invalid(t *testing.T) {
	stub := newStub()
	stub.resetTokenErr = domain.ErrInvalidResetToken
	r := newTestRouter(stub)

	w := postJSON(r, "/password/reset-link",
		`{"token":"dead-token","new_password":"new-password-22"}`, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestChangePassword_RequiresBearer(t *testing.T) {
	r := newTestRouter(newStub())

	w := postJSON(r, "/password/change",
		`{"old_password":"old-password-11","new_password":"new-password-22"}`, nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d, want 401", w.Code)
	}

	w = postJSON(r, "/password/change",
		`{"old_password":"old-password-11","new_password":"new-password-22"}`,
		map[string]string{"Authorization": "Bearer garbage"})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status with bad token = %d, want 401", w.Code)
	}
}

func TestChangePassword_WithValidToken(t *testing.T) {
	stub := newStub()
	r := newTestRouter(stub)

	tok, err := stub.tokenManager.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	w := postJSON(r, "/password/change",
		`{"old_password":"old-password-11","new_password":"new-password-22"}`,
		map[string]string{"Authorization": "Bearer " + tok})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body.String())
	}
	if stub.changedFor != 42 {
		t.Fatalf("change ran for user %d, want 42", stub.changedFor)
	}
}

func TestDeleteAccount(t *testing.T) {
	stub := newStub()
	r := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodDelete, "/account", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d, want 401", w.Code)
	}

	tok, err := stub.tokenManager.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	req = httptest.NewRequest(http.MethodDelete, "/account", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body.String())
	}
	if stub.deletedFor != 42 {
		t.Fatalf("delete ran for user %d, want 42", stub.deletedFor)
	}
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	stub := newStub()
	stub.changeErr = domain.ErrIncorrectOldPassword
	r := newTestRouter(stub)

	tok, err := stub.tokenManager.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	w := postJSON(r, "/password/change",
		`{"old_password":"wrong-password1","new_password":"new-password-22"}`,
		map[string]string{"Authorization": "Bearer " + tok})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
