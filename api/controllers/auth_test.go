package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	authsvc "github.com/KSunShin4/EcoMart/internal/auth"
	"github.com/KSunShin4/EcoMart/pkg/types"
)

type stubAuthService struct {
	requestResult *authsvc.RequestOTPResult
	session       *authsvc.SessionDTO
	err           error

	gotPhone string
	gotIP    string
	gotCode  string
}

func (s *stubAuthService) RequestOTP(_ context.Context, phone, clientIP string) (*authsvc.RequestOTPResult, error) {
	s.gotPhone = phone
	s.gotIP = clientIP
	return s.requestResult, s.err
}

func (s *stubAuthService) VerifyOTP(_ context.Context, phone, code string) (*authsvc.SessionDTO, error) {
	s.gotPhone = phone
	s.gotCode = code
	return s.session, s.err
}

func TestAuthRequestOTPSuccess(t *testing.T) {
	svc := &stubAuthService{requestResult: &authsvc.RequestOTPResult{ExpiresIn: 300}}
	handler := AuthRequestOTP(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/otp/request", bytes.NewReader([]byte(`{"phone":"+84912345678"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.gotPhone != "+84912345678" {
		t.Fatalf("unexpected phone %q", svc.gotPhone)
	}
	if svc.gotIP != "203.0.113.7" {
		t.Fatalf("expected first forwarded hop, got %q", svc.gotIP)
	}
}

func TestAuthRequestOTPRejectsMissingPhone(t *testing.T) {
	handler := AuthRequestOTP(&stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/otp/request", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}

	var body types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if body.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("unexpected code %s", body.Error.Code)
	}
}

func TestAuthVerifyOTPSuccess(t *testing.T) {
	svc := &stubAuthService{session: &authsvc.SessionDTO{Token: "access-token", Phone: "+84912345678"}}
	handler := AuthVerifyOTP(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/otp/verify", bytes.NewReader([]byte(`{"phone":"+84912345678","code":"481516"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.gotCode != "481516" {
		t.Fatalf("unexpected code %q", svc.gotCode)
	}

	var body struct {
		Data authsvc.SessionDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if body.Data.Token != "access-token" {
		t.Fatalf("unexpected token %q", body.Data.Token)
	}
}

func TestAuthVerifyOTPRejectsUnknownFields(t *testing.T) {
	handler := AuthVerifyOTP(&stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/otp/verify", bytes.NewReader([]byte(`{"phone":"+84912345678","code":"481516","admin":true}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
