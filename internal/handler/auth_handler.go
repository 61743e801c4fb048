// Package handler はHTTPハンドラーを提供する。
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/hitoshi/hireadmin/internal/middleware"
	"github.com/hitoshi/hireadmin/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	// Login は資格情報を検証しセッションを発行する。
	Login(ctx context.Context, login, password string) (*model.Admin, *model.Session, error)
	// Logout はトークンに対応するセッションを削除する。
	Logout(ctx context.Context, token string) error
}

// AuthHandler はログイン・ログアウトのHTTPハンドラー。
type AuthHandler struct {
	service AuthServiceInterface
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// loginRequest はログインリクエストのボディ。
// usernameフィールドはユーザー名または表示名のどちらでもよい。
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse はログイン成功時のレスポンス。
// liveはセッション失効時刻のRFC3339表現。
type loginResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Level    string `json:"level"`
	Token    string `json:"token"`
	Live     string `json:"live"`
}

// Login はログインを処理する。
// PUT /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if req.Username == "" || req.Password == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidInputError("username and password are required"))
		return
	}

	admin, session, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, loginResponse{
		ID:       admin.ID,
		Name:     admin.Name,
		Username: admin.Username,
		Level:    string(admin.Level),
		Token:    session.Token,
		Live:     session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout はログアウトを処理する。セッションをサーバー側で失効させる。
// POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromRequest(r)
	if token == "" {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewMissingTokenError())
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]bool{"ok": true})
}
