package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/hireadmin/internal/admin"
	"github.com/hitoshi/hireadmin/internal/model"
)

// AdminServiceInterface は管理者ハンドラーが必要とするサービスインターフェース。
type AdminServiceInterface interface {
	// Add は新しい管理者アカウントを登録する。
	Add(ctx context.Context, name, username, password string, level model.Level) (*admin.Summary, error)
	// Remove は管理者アカウントを削除し、削除前の情報を返す。
	Remove(ctx context.Context, id int64) (*admin.Summary, error)
}

// AdminHandler は管理者アカウント管理のHTTPハンドラー。
type AdminHandler struct {
	service AdminServiceInterface
}

// NewAdminHandler はAdminHandlerを生成する。
func NewAdminHandler(service AdminServiceInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

// addAdminRequest は管理者追加リクエストのボディ。
type addAdminRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Level    string `json:"level"`
}

// removeAdminRequest は管理者削除リクエストのボディ。
// idは数値で指定する。
type removeAdminRequest struct {
	ID *int64 `json:"id"`
}

// Add は管理者アカウントを追加する。
// PUT /addAdmin
func (h *AdminHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addAdminRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	summary, err := h.service.Add(r.Context(), req.Name, req.Username, req.Password, model.Level(req.Level))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, adminSummaryResponse{
		ID:       summary.ID,
		Name:     summary.Name,
		Username: summary.Username,
		Level:    string(summary.Level),
	})
}

// Remove は管理者アカウントを削除する。削除された管理者の情報を返す。
// DELETE /removeAdmin
func (h *AdminHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req removeAdminRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if req.ID == nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidInputError("id is required"))
		return
	}

	summary, err := h.service.Remove(r.Context(), *req.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, adminSummaryResponse{
		ID:       summary.ID,
		Name:     summary.Name,
		Username: summary.Username,
		Level:    string(summary.Level),
	})
}
