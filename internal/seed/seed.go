// Package seed はJSONフィクスチャからのデータベース初期投入を提供する。
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/hitoshi/hireadmin/internal/auth"
	"github.com/hitoshi/hireadmin/internal/model"
	"github.com/hitoshi/hireadmin/internal/repository"
)

// フィクスチャファイル名。旧運用のJSONデータベースと同じ構成。
const (
	adminsFile    = "admins.json"
	studentsFile  = "database.json"
	employeesFile = "student-employees.json"
	ruleFile      = "eligibilityDB.json"
)

// Importer はJSONフィクスチャを読み込み、データベースに投入する。
// 既存データは投入前にすべて削除する。
type Importer struct {
	admins     repository.AdminRepository
	sessions   repository.SessionRepository
	applicants repository.ApplicantRepository
	employees  repository.EmployeeRepository
	rules      repository.EligibilityRuleRepository

	sanitizer *bluemonday.Policy
}

// NewImporter はImporterを生成する。
func NewImporter(
	admins repository.AdminRepository,
	sessions repository.SessionRepository,
	applicants repository.ApplicantRepository,
	employees repository.EmployeeRepository,
	rules repository.EligibilityRuleRepository,
) *Importer {
	return &Importer{
		admins:     admins,
		sessions:   sessions,
		applicants: applicants,
		employees:  employees,
		rules:      rules,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

// adminsFixture はadmins.jsonの形式。
// パスワードは平文で書かれており、投入時にbcryptでハッシュ化する。
type adminsFixture struct {
	Admins []struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Password string `json:"password"`
		Level    string `json:"level"`
	} `json:"admins"`
}

// studentsFixture はdatabase.jsonの形式。
// 旧データのeligibilityKey/eligibilityText/workStatusは読み捨てる。
// 分類は保存せず読み取り時に再計算するため。
type studentsFixture struct {
	Students []struct {
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
	} `json:"students"`
}

// employeesFixture はstudent-employees.jsonの形式。
type employeesFixture struct {
	Employees []struct {
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
	} `json:"employees"`
}

// ruleFixture はeligibilityDB.jsonの形式。
type ruleFixture struct {
	MinAge           *int     `json:"minAge"`
	MinCreditHours   *int     `json:"minCreditHours"`
	AllowedCountries []string `json:"allowedCountries"`
}

// Run は指定ディレクトリのフィクスチャを読み込み、全テーブルを入れ替える。
func (i *Importer) Run(ctx context.Context, dir string) error {
	admins, err := readFixture[adminsFixture](filepath.Join(dir, adminsFile))
	if err != nil {
		return err
	}
	students, err := readFixture[studentsFixture](filepath.Join(dir, studentsFile))
	if err != nil {
		return err
	}
	employees, err := readFixture[employeesFixture](filepath.Join(dir, employeesFile))
	if err != nil {
		return err
	}
	rule, err := readFixture[ruleFixture](filepath.Join(dir, ruleFile))
	if err != nil {
		return err
	}

	// 入れ替え: セッション → 管理者 → 応募者 → 従業員の順に全削除
	if err := i.sessions.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}
	if err := i.admins.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear admins: %w", err)
	}
	if err := i.applicants.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear applicants: %w", err)
	}
	if err := i.employees.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear employees: %w", err)
	}

	for _, a := range admins.Admins {
		hash, err := auth.HashPassword(a.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %q: %w", a.Username, err)
		}
		if _, err := i.admins.Create(ctx, &model.Admin{
			Name:         i.clean(a.Name),
			Username:     strings.TrimSpace(a.Username),
			PasswordHash: hash,
			Level:        model.Level(a.Level),
		}); err != nil {
			return fmt.Errorf("failed to seed admin %q: %w", a.Username, err)
		}
	}

	for _, s := range students.Students {
		status := model.ApplicantStatus(s.Status)
		if !status.IsValid() {
			status = model.StatusUndecided
		}
		if err := i.applicants.Create(ctx, &model.Applicant{
			ID:              s.ID,
			Name:            i.clean(s.Name),
			StudentID:       s.StudentID,
			Position:        i.clean(s.Position),
			Address:         i.clean(s.Address),
			Age:             s.Age,
			Birthday:        s.Birthday,
			CitizenshipISO3: strings.ToUpper(strings.TrimSpace(s.CitizenshipISO3)),
			Email:           s.Email,
			AppliedAt:       s.AppliedAt,
			Visa:            s.Visa,
			Status:          status,
			DecidedAt:       s.DecidedAt,
			DecidedBy:       s.DecidedBy,
			CreditHours:     s.CreditHours,
		}); err != nil {
			return fmt.Errorf("failed to seed applicant %q: %w", s.ID, err)
		}
	}

	for _, e := range employees.Employees {
		if err := i.employees.Create(ctx, &model.Employee{
			ID:                 e.ID,
			StudentID:          e.StudentID,
			Name:               i.clean(e.Name),
			Position:           i.clean(e.Position),
			HourlyPay:          e.HourlyPay,
			HireDate:           e.HireDate,
			Supervisor:         i.clean(e.Supervisor),
			Email:              e.Email,
			Phone:              e.Phone,
			MaxHoursPerWeek:    e.MaxHoursPerWeek,
			WorkedHoursPerWeek: e.WorkedHoursPerWeek,
		}); err != nil {
			return fmt.Errorf("failed to seed employee %q: %w", e.ID, err)
		}
	}

	seeded := model.DefaultEligibilityRule()
	if rule.MinAge != nil {
		seeded.MinAge = *rule.MinAge
	}
	if rule.MinCreditHours != nil {
		seeded.MinCreditHours = *rule.MinCreditHours
	}
	if rule.AllowedCountries != nil {
		seeded.AllowedCountries = rule.AllowedCountries
	}
	if err := i.rules.Upsert(ctx, seeded); err != nil {
		return fmt.Errorf("failed to seed eligibility rule: %w", err)
	}

	slog.Info("seed completed",
		slog.Int("admins", len(admins.Admins)),
		slog.Int("applicants", len(students.Students)),
		slog.Int("employees", len(employees.Employees)),
	)

	return nil
}

// clean は自由入力テキストからHTMLタグを除去しトリムする。
func (i *Importer) clean(s string) string {
	return strings.TrimSpace(i.sanitizer.Sanitize(s))
}

// readFixture はJSONフィクスチャファイルを読み込む。
func readFixture[T any](path string) (*T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return &v, nil
}
