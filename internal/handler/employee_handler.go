package handler

import (
	"context"
	"math"
	"net/http"

	"github.com/hitoshi/hireadmin/internal/employee"
	"github.com/hitoshi/hireadmin/internal/model"
)

// EmployeeServiceInterface は従業員ハンドラーが必要とするサービスインターフェース。
type EmployeeServiceInterface interface {
	// List は全学生従業員を勤務状況付きで返す。
	List(ctx context.Context) ([]employee.WithWorkStatus, error)
	// IncreasePay は時給を加算する。
	IncreasePay(ctx context.Context, studentID string, amount float64) (*employee.WithWorkStatus, error)
	// Fire は従業員を解雇し、削除前のスナップショットを返す。
	Fire(ctx context.Context, studentID string) (*employee.WithWorkStatus, error)
}

// EmployeeHandler は学生従業員管理のHTTPハンドラー。
type EmployeeHandler struct {
	service EmployeeServiceInterface
}

// NewEmployeeHandler はEmployeeHandlerを生成する。
func NewEmployeeHandler(service EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// increasePayRequest は昇給リクエストのボディ。
// amountが未指定または数値でない場合は1として扱う。
type increasePayRequest struct {
	StudentID string   `json:"studentId"`
	Amount    *float64 `json:"amount"`
}

// fireStudentRequest は解雇リクエストのボディ。
type fireStudentRequest struct {
	StudentID string `json:"studentId"`
}

// List は全学生従業員を返す。
// GET /getStudentEmployees
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]employeeResponse, len(employees))
	for i, e := range employees {
		results[i] = toEmployeeResponse(e)
	}
	writeJSONResponse(w, http.StatusOK, results)
}

// IncreasePay は従業員の時給を加算する。
// PUT /increasePay
func (h *EmployeeHandler) IncreasePay(w http.ResponseWriter, r *http.Request) {
	var req increasePayRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	// 未指定または非有限値のamountは1にフォールバック
	amount := 1.0
	if req.Amount != nil && !math.IsNaN(*req.Amount) && !math.IsInf(*req.Amount, 0) {
		amount = *req.Amount
	}

	updated, err := h.service.IncreasePay(r.Context(), req.StudentID, amount)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, toEmployeeResponse(*updated))
}

// Fire は従業員を解雇する。削除された従業員のスナップショットを返す。
// DELETE /fireStudent
func (h *EmployeeHandler) Fire(w http.ResponseWriter, r *http.Request) {
	var req fireStudentRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if req.StudentID == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidInputError("studentId is required"))
		return
	}

	fired, err := h.service.Fire(r.Context(), req.StudentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, toEmployeeResponse(*fired))
}
