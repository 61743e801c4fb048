package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/hireadmin/internal/model"
)

// PolicyServiceInterface はポリシーハンドラーが必要とするサービスインターフェース。
type PolicyServiceInterface interface {
	// GetRule は現行の適格性判定ルールを返す。
	GetRule(ctx context.Context) (model.EligibilityRule, error)
	// SetRule は適格性判定ルールを検証・正規化して保存する。
	SetRule(ctx context.Context, minAge, minCreditHours int, allowedCountries []string) (model.EligibilityRule, error)
}

// PolicyHandler は適格性判定ルールのHTTPハンドラー。
type PolicyHandler struct {
	service PolicyServiceInterface
}

// NewPolicyHandler はPolicyHandlerを生成する。
func NewPolicyHandler(service PolicyServiceInterface) *PolicyHandler {
	return &PolicyHandler{service: service}
}

// modifyRuleRequest はルール変更リクエストのボディ。
// minAge/minCreditHoursはポインタで受け、欠落を検出する。
type modifyRuleRequest struct {
	MinAge           *int      `json:"minAge"`
	MinCreditHours   *int      `json:"minCreditHours"`
	AllowedCountries *[]string `json:"allowedCountries"`
}

// GetRule は現行の適格性判定ルールを返す。
// GET /getEligibilityRequirements
func (h *PolicyHandler) GetRule(w http.ResponseWriter, r *http.Request) {
	rule, err := h.service.GetRule(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, toRuleResponse(rule))
}

// ModifyRule は適格性判定ルールを更新する。
// PUT /modifyEligibilityRequirements
func (h *PolicyHandler) ModifyRule(w http.ResponseWriter, r *http.Request) {
	var req modifyRuleRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if req.MinAge == nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidInputError("minAge is required"))
		return
	}
	if req.MinCreditHours == nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidInputError("minCreditHours is required"))
		return
	}
	if req.AllowedCountries == nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidInputError("allowedCountries is required"))
		return
	}

	updated, err := h.service.SetRule(r.Context(), *req.MinAge, *req.MinCreditHours, *req.AllowedCountries)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, toRuleResponse(updated))
}
