package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/hireadmin/internal/model"
)

// PostgresApplicantRepo はPostgreSQLを使用した応募者リポジトリ。
type PostgresApplicantRepo struct {
	db *sql.DB
}

// NewPostgresApplicantRepo はPostgresApplicantRepoを生成する。
func NewPostgresApplicantRepo(db *sql.DB) *PostgresApplicantRepo {
	return &PostgresApplicantRepo{db: db}
}

const applicantColumns = `id, name, student_id, position, address, age, birthday,
	citizenship_iso3, email, applied_at, visa, status, decided_at, decided_by, credit_hours`

func scanApplicant(row interface{ Scan(...any) error }) (*model.Applicant, error) {
	a := &model.Applicant{}
	err := row.Scan(
		&a.ID, &a.Name, &a.StudentID, &a.Position, &a.Address, &a.Age, &a.Birthday,
		&a.CitizenshipISO3, &a.Email, &a.AppliedAt, &a.Visa, &a.Status,
		&a.DecidedAt, &a.DecidedBy, &a.CreditHours,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// FindByID は指定IDの応募者を取得する。見つからない場合はnilを返す。
func (r *PostgresApplicantRepo) FindByID(ctx context.Context, id string) (*model.Applicant, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+applicantColumns+` FROM applicants WHERE id = $1`,
		id,
	)
	a, err := scanApplicant(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find applicant by ID: %w", err)
	}
	return a, nil
}

// ListAll は全応募者を返す。
func (r *PostgresApplicantRepo) ListAll(ctx context.Context) ([]*model.Applicant, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+applicantColumns+` FROM applicants ORDER BY applied_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	defer rows.Close()

	return collectApplicants(rows)
}

// ListByStatus は指定ステータスの応募者を返す。
func (r *PostgresApplicantRepo) ListByStatus(ctx context.Context, status model.ApplicantStatus) ([]*model.Applicant, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+applicantColumns+` FROM applicants WHERE status = $1 ORDER BY applied_at, id`,
		status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants by status: %w", err)
	}
	defer rows.Close()

	return collectApplicants(rows)
}

func collectApplicants(rows *sql.Rows) ([]*model.Applicant, error) {
	applicants := []*model.Applicant{}
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan applicant: %w", err)
		}
		applicants = append(applicants, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applicants: %w", err)
	}
	return applicants, nil
}

// Update は応募者レコードを上書き更新する。行粒度のlast-writer-wins。
func (r *PostgresApplicantRepo) Update(ctx context.Context, applicant *model.Applicant) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE applicants
		 SET name = $2, student_id = $3, position = $4, address = $5, age = $6,
		     birthday = $7, citizenship_iso3 = $8, email = $9, applied_at = $10,
		     visa = $11, status = $12, decided_at = $13, decided_by = $14, credit_hours = $15
		 WHERE id = $1`,
		applicant.ID, applicant.Name, applicant.StudentID, applicant.Position,
		applicant.Address, applicant.Age, applicant.Birthday, applicant.CitizenshipISO3,
		applicant.Email, applicant.AppliedAt, applicant.Visa, applicant.Status,
		applicant.DecidedAt, applicant.DecidedBy, applicant.CreditHours,
	)
	if err != nil {
		return fmt.Errorf("failed to update applicant: %w", err)
	}
	return nil
}

// Create は応募者を作成する。
func (r *PostgresApplicantRepo) Create(ctx context.Context, applicant *model.Applicant) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO applicants (`+applicantColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		applicant.ID, applicant.Name, applicant.StudentID, applicant.Position,
		applicant.Address, applicant.Age, applicant.Birthday, applicant.CitizenshipISO3,
		applicant.Email, applicant.AppliedAt, applicant.Visa, applicant.Status,
		applicant.DecidedAt, applicant.DecidedBy, applicant.CreditHours,
	)
	if err != nil {
		return fmt.Errorf("failed to create applicant: %w", err)
	}
	return nil
}

// DeleteAll は全応募者を削除する。
func (r *PostgresApplicantRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM applicants`); err != nil {
		return fmt.Errorf("failed to delete applicants: %w", err)
	}
	return nil
}

// compile-time interface check
var _ ApplicantRepository = (*PostgresApplicantRepo)(nil)
