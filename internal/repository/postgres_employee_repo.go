package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/hireadmin/internal/model"
)

// PostgresEmployeeRepo はPostgreSQLを使用した学生従業員リポジトリ。
type PostgresEmployeeRepo struct {
	db *sql.DB
}

// NewPostgresEmployeeRepo はPostgresEmployeeRepoを生成する。
func NewPostgresEmployeeRepo(db *sql.DB) *PostgresEmployeeRepo {
	return &PostgresEmployeeRepo{db: db}
}

const employeeColumns = `id, student_id, name, position, hourly_pay, hire_date,
	supervisor, email, phone, max_hours_per_week, worked_hours_per_week`

func scanEmployee(row interface{ Scan(...any) error }) (*model.Employee, error) {
	e := &model.Employee{}
	err := row.Scan(
		&e.ID, &e.StudentID, &e.Name, &e.Position, &e.HourlyPay, &e.HireDate,
		&e.Supervisor, &e.Email, &e.Phone, &e.MaxHoursPerWeek, &e.WorkedHoursPerWeek,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// FindByStudentID は学籍番号で従業員を取得する。見つからない場合はnilを返す。
func (r *PostgresEmployeeRepo) FindByStudentID(ctx context.Context, studentID string) (*model.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE student_id = $1`,
		studentID,
	)
	e, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find employee by student ID: %w", err)
	}
	return e, nil
}

// ListAll は全従業員を返す。
func (r *PostgresEmployeeRepo) ListAll(ctx context.Context) ([]*model.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY hire_date, student_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []*model.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

// UpdateHourlyPay は指定従業員の時給を更新する。
func (r *PostgresEmployeeRepo) UpdateHourlyPay(ctx context.Context, studentID string, hourlyPay float64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE employees SET hourly_pay = $2 WHERE student_id = $1`,
		studentID, hourlyPay,
	)
	if err != nil {
		return fmt.Errorf("failed to update hourly pay: %w", err)
	}
	return nil
}

// DeleteByStudentID は学籍番号で従業員を削除する。
func (r *PostgresEmployeeRepo) DeleteByStudentID(ctx context.Context, studentID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM employees WHERE student_id = $1`,
		studentID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// Create は従業員を作成する。
func (r *PostgresEmployeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (`+employeeColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		employee.ID, employee.StudentID, employee.Name, employee.Position,
		employee.HourlyPay, employee.HireDate, employee.Supervisor, employee.Email,
		employee.Phone, employee.MaxHoursPerWeek, employee.WorkedHoursPerWeek,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// DeleteAll は全従業員を削除する。
func (r *PostgresEmployeeRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM employees`); err != nil {
		return fmt.Errorf("failed to delete employees: %w", err)
	}
	return nil
}

// compile-time interface check
var _ EmployeeRepository = (*PostgresEmployeeRepo)(nil)
