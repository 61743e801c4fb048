package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hitoshi/hireadmin/internal/applicant"
	"github.com/hitoshi/hireadmin/internal/employee"
	"github.com/hitoshi/hireadmin/internal/middleware"
	"github.com/hitoshi/hireadmin/internal/model"
)

// applicantResponse は応募者のAPIレスポンス。
// 適格性分類は保存値ではなく、現行ルールで再計算された値。
type applicantResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	StudentID       string  `json:"studentId"`
	Position        string  `json:"position"`
	Address         string  `json:"address"`
	Age             int     `json:"age"`
	Birthday        string  `json:"birthday"`
	CitizenshipISO3 string  `json:"citizenshipISO3"`
	Email           string  `json:"email"`
	AppliedAt       string  `json:"appliedAt"`
	Visa            string  `json:"visa"`
	Status          string  `json:"status"`
	DecidedAt       *string `json:"decidedAt"`
	DecidedBy       *string `json:"decidedBy"`
	CreditHours     int     `json:"creditHours"`
	EligibilityKey  string  `json:"eligibilityKey"`
	EligibilityText string  `json:"eligibilityText"`
}

// employeeResponse は学生従業員のAPIレスポンス。
// workStatusは常に週間労働時間から導出された値。
type employeeResponse struct {
	ID                 string  `json:"id"`
	StudentID          string  `json:"studentId"`
	Name               string  `json:"name"`
	Position           string  `json:"position"`
	HourlyPay          float64 `json:"hourlyPay"`
	HireDate           string  `json:"hireDate"`
	Supervisor         string  `json:"supervisor"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	MaxHoursPerWeek    float64 `json:"maxHoursPerWeek"`
	WorkedHoursPerWeek float64 `json:"workedHoursPerWeek"`
	WorkStatus         string  `json:"workStatus"`
}

// ruleResponse は適格性判定ルールのAPIレスポンス。
type ruleResponse struct {
	MinAge           int      `json:"minAge"`
	MinCreditHours   int      `json:"minCreditHours"`
	AllowedCountries []string `json:"allowedCountries"`
}

// adminSummaryResponse は管理者情報のAPIレスポンス。
// パスワードハッシュは含めない。
type adminSummaryResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Level    string `json:"level"`
}

// --- ヘルパー関数 ---

// toApplicantResponse は分類付き応募者をAPIレスポンスに変換する。
func toApplicantResponse(a applicant.WithEligibility) applicantResponse {
	return applicantResponse{
		ID:              a.ID,
		Name:            a.Name,
		StudentID:       a.StudentID,
		Position:        a.Position,
		Address:         a.Address,
		Age:             a.Age,
		Birthday:        a.Birthday,
		CitizenshipISO3: a.CitizenshipISO3,
		Email:           a.Email,
		AppliedAt:       a.AppliedAt,
		Visa:            a.Visa,
		Status:          string(a.Status),
		DecidedAt:       a.DecidedAt,
		DecidedBy:       a.DecidedBy,
		CreditHours:     a.CreditHours,
		EligibilityKey:  a.Classification.Key,
		EligibilityText: a.Classification.Text,
	}
}

// toEmployeeResponse は勤務状況付き従業員をAPIレスポンスに変換する。
func toEmployeeResponse(e employee.WithWorkStatus) employeeResponse {
	return employeeResponse{
		ID:                 e.ID,
		StudentID:          e.StudentID,
		Name:               e.Name,
		Position:           e.Position,
		HourlyPay:          e.HourlyPay,
		HireDate:           e.HireDate,
		Supervisor:         e.Supervisor,
		Email:              e.Email,
		Phone:              e.Phone,
		MaxHoursPerWeek:    e.MaxHoursPerWeek,
		WorkedHoursPerWeek: e.WorkedHoursPerWeek,
		WorkStatus:         e.WorkStatus,
	}
}

// toRuleResponse は適格性ルールをAPIレスポンスに変換する。
func toRuleResponse(rule model.EligibilityRule) ruleResponse {
	countries := rule.AllowedCountries
	if countries == nil {
		countries = []string{}
	}
	return ruleResponse{
		MinAge:           rule.MinAge,
		MinCreditHours:   rule.MinCreditHours,
		AllowedCountries: countries,
	}
}

// writeJSONResponse はJSONレスポンスを書き込む。
func writeJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

// writeAPIErrorResponse は統一エラーフォーマットでエラーレスポンスを書き込む。
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	middleware.WriteErrorResponse(w, statusCode, apiErr)
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeAPIErrorResponse(w, middleware.HTTPStatus(apiErr), apiErr)
		return
	}

	// APIError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error", slog.String("error", err.Error()))
	middleware.WriteInternalServerError(w)
}

// decodeJSONBody はリクエストボディをJSONとしてデコードする。
// 失敗時は400レスポンスを書き込みfalseを返す。
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidInputError("request body must be valid JSON"))
		return false
	}
	return true
}
