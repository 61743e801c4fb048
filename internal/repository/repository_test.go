package repository

import (
	"testing"
)

// PostgresAdminRepoはAdminRepositoryインターフェースを満たすことを検証
func TestPostgresAdminRepo_ImplementsInterface(t *testing.T) {
	var _ AdminRepository = (*PostgresAdminRepo)(nil)
}

// PostgresSessionRepoはSessionRepositoryインターフェースを満たすことを検証
func TestPostgresSessionRepo_ImplementsInterface(t *testing.T) {
	var _ SessionRepository = (*PostgresSessionRepo)(nil)
}

// PostgresApplicantRepoはApplicantRepositoryインターフェースを満たすことを検証
func TestPostgresApplicantRepo_ImplementsInterface(t *testing.T) {
	var _ ApplicantRepository = (*PostgresApplicantRepo)(nil)
}

// PostgresEmployeeRepoはEmployeeRepositoryインターフェースを満たすことを検証
func TestPostgresEmployeeRepo_ImplementsInterface(t *testing.T) {
	var _ EmployeeRepository = (*PostgresEmployeeRepo)(nil)
}

// PostgresEligibilityRuleRepoはEligibilityRuleRepositoryインターフェースを満たすことを検証
func TestPostgresEligibilityRuleRepo_ImplementsInterface(t *testing.T) {
	var _ EligibilityRuleRepository = (*PostgresEligibilityRuleRepo)(nil)
}

// 各コンストラクタが正しく初期化されることを検証
func TestNewRepos_Initialize(t *testing.T) {
	if NewPostgresAdminRepo(nil) == nil {
		t.Fatal("expected non-nil admin repo")
	}
	if NewPostgresSessionRepo(nil) == nil {
		t.Fatal("expected non-nil session repo")
	}
	if NewPostgresApplicantRepo(nil) == nil {
		t.Fatal("expected non-nil applicant repo")
	}
	if NewPostgresEmployeeRepo(nil) == nil {
		t.Fatal("expected non-nil employee repo")
	}
	if NewPostgresEligibilityRuleRepo(nil) == nil {
		t.Fatal("expected non-nil rule repo")
	}
}
