// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hitoshi/hireadmin/internal/model"
)

// SessionTokenHeader はセッショントークンを運ぶリクエストヘッダー名。
const SessionTokenHeader = "x-session-token"

// maxTokenPeekBytes はトークンのボディフォールバック探索で読む上限。
const maxTokenPeekBytes = 1 << 20

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// adminContextKey はリクエストコンテキストに認可済み管理者を格納するためのキー。
var adminContextKey = contextKey("admin")

// Authorizer はトークンを管理者に解決し権限レベルを検査するインターフェース。
// auth.Serviceの部分集合として定義する。
type Authorizer interface {
	Authorize(ctx context.Context, token string, allowedLevels ...model.Level) (*model.Admin, error)
}

// TokenFromRequest はリクエストからセッショントークンを取り出す。
// x-session-tokenヘッダーを優先し、無ければJSONボディのtokenフィールドに
// フォールバックする（旧フロントエンド互換）。ボディは読み出し後に復元する。
func TokenFromRequest(r *http.Request) string {
	if token := r.Header.Get(SessionTokenHeader); token != "" {
		return token
	}

	if r.Body == nil {
		return ""
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxTokenPeekBytes))
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var probe struct {
		Token string `json:"token"`
	}
	// JSONでないボディは単にトークンなしとして扱う
	if err := json.Unmarshal(body, &probe); err != nil {
		return ""
	}
	return probe.Token
}

// NewAuthMiddleware はリクエストのトークンを管理者に解決し、
// 許可レベルを検査するミドルウェアを返す。
// 解決済みのAdminをリクエストコンテキストに注入する。
// 認証失敗は401、レベル不足は403を統一エラーフォーマットで返す。
func NewAuthMiddleware(gate Authorizer, allowedLevels ...model.Level) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)

			admin, err := gate.Authorize(r.Context(), token, allowedLevels...)
			if err != nil {
				WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), adminContextKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext はリクエストコンテキストから認可済み管理者を取得する。
// 認可ミドルウェアを通過したリクエストでのみ有効。
func AdminFromContext(ctx context.Context) (*model.Admin, error) {
	admin, ok := ctx.Value(adminContextKey).(*model.Admin)
	if !ok || admin == nil {
		return nil, fmt.Errorf("admin not found in context")
	}
	return admin, nil
}

// ContextWithAdmin はコンテキストに管理者を注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithAdmin(ctx context.Context, admin *model.Admin) context.Context {
	return context.WithValue(ctx, adminContextKey, admin)
}
