package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/hireadmin/internal/applicant"
	"github.com/hitoshi/hireadmin/internal/middleware"
	"github.com/hitoshi/hireadmin/internal/model"
)

// ApplicantServiceInterface は応募者ハンドラーが必要とするサービスインターフェース。
type ApplicantServiceInterface interface {
	// List は応募者一覧を適格性分類付きで返す。statusが空なら全件。
	List(ctx context.Context, status model.ApplicantStatus) ([]applicant.WithEligibility, error)
	// CountsByClassification は未決定応募者の分類別件数を返す。
	CountsByClassification(ctx context.Context) (applicant.Counts, error)
	// Decide は応募者の採否を確定する。
	Decide(ctx context.Context, id string, outcome model.ApplicantStatus, decidedBy string) (*applicant.WithEligibility, error)
	// Reopen は決定済み応募者を未決定に戻す。
	Reopen(ctx context.Context, id string) (*applicant.WithEligibility, error)
}

// ApplicantHandler は応募者管理のHTTPハンドラー。
type ApplicantHandler struct {
	service ApplicantServiceInterface
}

// NewApplicantHandler はApplicantHandlerを生成する。
func NewApplicantHandler(service ApplicantServiceInterface) *ApplicantHandler {
	return &ApplicantHandler{service: service}
}

// decideRequest は採否決定・再オープンリクエストのボディ。
// decidedByは旧フロントエンド互換のため受理するが、記録には
// 認可済み管理者のユーザー名を使う。
type decideRequest struct {
	ID string `json:"id"`
}

// ListAll は全応募者を返す。
// GET /getAllStudents
func (h *ApplicantHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "")
}

// ListAccepted は採用決定済みの応募者を返す。
// GET /getAllAcceptedStudents
func (h *ApplicantHandler) ListAccepted(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, model.StatusAccepted)
}

// ListDenied は不採用決定済みの応募者を返す。
// GET /getAllDeniedStudents
func (h *ApplicantHandler) ListDenied(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, model.StatusDenied)
}

// ListUndecided は未決定の応募者を返す。
// GET /getAllUndecidedStudents
func (h *ApplicantHandler) ListUndecided(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, model.StatusUndecided)
}

func (h *ApplicantHandler) list(w http.ResponseWriter, r *http.Request, status model.ApplicantStatus) {
	applicants, err := h.service.List(r.Context(), status)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]applicantResponse, len(applicants))
	for i, a := range applicants {
		results[i] = toApplicantResponse(a)
	}
	writeJSONResponse(w, http.StatusOK, results)
}

// Counts は未決定応募者の分類別件数を返す。
// GET /getApplicantCounts
func (h *ApplicantHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.CountsByClassification(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, counts)
}

// Accept は応募者の採用を確定する。
// PUT /acceptStudent
func (h *ApplicantHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, model.StatusAccepted)
}

// Deny は応募者の不採用を確定する。
// PUT /denyStudent
func (h *ApplicantHandler) Deny(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, model.StatusDenied)
}

func (h *ApplicantHandler) decide(w http.ResponseWriter, r *http.Request, outcome model.ApplicantStatus) {
	admin, err := middleware.AdminFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewInvalidTokenError())
		return
	}

	var req decideRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidInputError("id is required"))
		return
	}

	// 決定者はクライアントの申告値でなく認可済み管理者に固定する
	updated, err := h.service.Decide(r.Context(), req.ID, outcome, admin.Username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, toApplicantResponse(*updated))
}

// Reopen は決定済み応募者を未決定に戻す。
// PUT /reopenStudent
func (h *ApplicantHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	var req decideRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidInputError("id is required"))
		return
	}

	updated, err := h.service.Reopen(r.Context(), req.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, toApplicantResponse(*updated))
}
