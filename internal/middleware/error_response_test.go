package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hitoshi/hireadmin/internal/model"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *model.APIError
		want int
	}{
		{"missing token", model.NewMissingTokenError(), http.StatusUnauthorized},
		{"invalid token", model.NewInvalidTokenError(), http.StatusUnauthorized},
		{"expired session", model.NewSessionExpiredError(), http.StatusUnauthorized},
		{"unknown admin", model.NewUnknownAdminError(), http.StatusUnauthorized},
		{"bad credentials", model.NewInvalidCredentialsError(), http.StatusUnauthorized},
		{"forbidden", model.NewForbiddenError(), http.StatusForbidden},
		{"not found", model.NewApplicantNotFoundError("ap-1"), http.StatusNotFound},
		{"invalid input", model.NewInvalidInputError("bad"), http.StatusBadRequest},
		{"conflict", model.NewDuplicateUsernameError("dup"), http.StatusConflict},
		{"unknown code", &model.APIError{Code: "SOMETHING_ELSE"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus(%s) = %d, want %d", tt.err.Code, got, tt.want)
			}
		})
	}
}

func TestWriteError_APIError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, model.NewForbiddenError())

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body ErrorResponseBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body unmarshal failed: %v", err)
	}
	if body.Code != model.ErrCodeForbidden {
		t.Errorf("code = %q, want %q", body.Code, model.ErrCodeForbidden)
	}
	if body.Action == "" {
		t.Error("action is empty")
	}
}

func TestWriteError_WrappedAPIError(t *testing.T) {
	rec := httptest.NewRecorder()

	wrapped := errors.Join(errors.New("outer"), model.NewInvalidTokenError())
	WriteError(rec, wrapped)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestWriteError_UnknownError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, errors.New("database connection lost"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}

	var body ErrorResponseBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body unmarshal failed: %v", err)
	}
	// 内部エラーの詳細はレスポンスに漏れないこと
	if body.Message != "An unexpected error occurred." {
		t.Errorf("message = %q, want generic message", body.Message)
	}
}
