// Package employee は学生従業員の参照・給与変更・解雇を提供する。
package employee

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/hitoshi/hireadmin/internal/eligibility"
	"github.com/hitoshi/hireadmin/internal/model"
	"github.com/hitoshi/hireadmin/internal/repository"
)

// WithWorkStatus は従業員レコードと導出済み勤務状態を合成した読み取りビュー。
// workStatusはストアの値を使わず常に再計算する。
type WithWorkStatus struct {
	model.Employee
	WorkStatus string `json:"workStatus"`
}

// Service は従業員操作のビジネスロジックを提供する。
type Service struct {
	employees repository.EmployeeRepository
}

// NewService はServiceを生成する。
func NewService(employees repository.EmployeeRepository) *Service {
	return &Service{employees: employees}
}

// List は全従業員を勤務状態付きで返す。
func (s *Service) List(ctx context.Context) ([]WithWorkStatus, error) {
	employees, err := s.employees.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	result := make([]WithWorkStatus, len(employees))
	for i, e := range employees {
		result[i] = withWorkStatus(e)
	}
	return result, nil
}

// IncreasePay は従業員の時給にamountを加算する。
// 新しい時給は小数第2位に丸める。更新後のレコードを勤務状態付きで返す。
func (s *Service) IncreasePay(ctx context.Context, studentID string, amount float64) (*WithWorkStatus, error) {
	if studentID == "" {
		return nil, model.NewInvalidInputError("missing studentId")
	}

	e, err := s.employees.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	if e == nil {
		return nil, model.NewEmployeeNotFoundError(studentID)
	}

	e.HourlyPay = roundToCents(e.HourlyPay + amount)
	if err := s.employees.UpdateHourlyPay(ctx, studentID, e.HourlyPay); err != nil {
		return nil, fmt.Errorf("failed to update hourly pay: %w", err)
	}

	slog.Info("hourly pay increased",
		slog.String("student_id", studentID),
		slog.Float64("hourly_pay", e.HourlyPay),
	)

	result := withWorkStatus(e)
	return &result, nil
}

// Fire は従業員レコードを削除し、削除時点のスナップショットを返す。
func (s *Service) Fire(ctx context.Context, studentID string) (*WithWorkStatus, error) {
	if studentID == "" {
		return nil, model.NewInvalidInputError("missing studentId")
	}

	e, err := s.employees.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	if e == nil {
		return nil, model.NewEmployeeNotFoundError(studentID)
	}

	if err := s.employees.DeleteByStudentID(ctx, studentID); err != nil {
		return nil, fmt.Errorf("failed to delete employee: %w", err)
	}

	slog.Info("employee fired", slog.String("student_id", studentID))

	result := withWorkStatus(e)
	return &result, nil
}

func withWorkStatus(e *model.Employee) WithWorkStatus {
	return WithWorkStatus{
		Employee:   *e,
		WorkStatus: eligibility.WorkStatus(e),
	}
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
