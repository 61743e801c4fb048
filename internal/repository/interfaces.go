// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/hireadmin/internal/model"
)

// AdminRepository は管理者アカウントの永続化インターフェース。
type AdminRepository interface {
	// FindByID は指定IDの管理者を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.Admin, error)

	// FindByUsername はユーザー名で管理者を検索する。見つからない場合はnilを返す。
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)

	// FindByLogin はユーザー名または表示名で管理者を検索する。
	// ログインは両方を受け付ける。見つからない場合はnilを返す。
	FindByLogin(ctx context.Context, login string) (*model.Admin, error)

	// Create は管理者を作成し、採番されたIDを返す。
	Create(ctx context.Context, admin *model.Admin) (int64, error)

	// DeleteByID は指定IDの管理者を削除する。
	DeleteByID(ctx context.Context, id int64) error

	// DeleteAll は全管理者を削除する。フィクスチャ投入時のみ使用する。
	DeleteAll(ctx context.Context) error
}

// SessionRepository はセッションデータの永続化インターフェース。
type SessionRepository interface {
	// Create はセッションを作成する。
	Create(ctx context.Context, session *model.Session) error

	// FindByToken は指定トークンのセッションを取得する。見つからない場合はnilを返す。
	// 期限切れの判定は行わない。TTL判定と遅延削除はサービス層の責務。
	FindByToken(ctx context.Context, token string) (*model.Session, error)

	// DeleteByToken は指定トークンのセッションを削除する。
	// 既に存在しない場合もエラーにしない（レース時の二重削除は無害）。
	DeleteByToken(ctx context.Context, token string) error

	// DeleteAll は全セッションを削除する。フィクスチャ投入時のみ使用する。
	DeleteAll(ctx context.Context) error
}

// ApplicantRepository は応募者データの永続化インターフェース。
type ApplicantRepository interface {
	// FindByID は指定IDの応募者を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Applicant, error)

	// ListAll は全応募者を返す。
	ListAll(ctx context.Context) ([]*model.Applicant, error)

	// ListByStatus は指定ステータスの応募者を返す。
	ListByStatus(ctx context.Context, status model.ApplicantStatus) ([]*model.Applicant, error)

	// Update は応募者レコードを上書き更新する。
	Update(ctx context.Context, applicant *model.Applicant) error

	// Create は応募者を作成する。フィクスチャ投入時のみ使用する。
	Create(ctx context.Context, applicant *model.Applicant) error

	// DeleteAll は全応募者を削除する。フィクスチャ投入時のみ使用する。
	DeleteAll(ctx context.Context) error
}

// EmployeeRepository は学生従業員データの永続化インターフェース。
type EmployeeRepository interface {
	// FindByStudentID は学籍番号で従業員を取得する。見つからない場合はnilを返す。
	FindByStudentID(ctx context.Context, studentID string) (*model.Employee, error)

	// ListAll は全従業員を返す。
	ListAll(ctx context.Context) ([]*model.Employee, error)

	// UpdateHourlyPay は指定従業員の時給を更新する。
	UpdateHourlyPay(ctx context.Context, studentID string, hourlyPay float64) error

	// DeleteByStudentID は学籍番号で従業員を削除する。
	DeleteByStudentID(ctx context.Context, studentID string) error

	// Create は従業員を作成する。フィクスチャ投入時のみ使用する。
	Create(ctx context.Context, employee *model.Employee) error

	// DeleteAll は全従業員を削除する。フィクスチャ投入時のみ使用する。
	DeleteAll(ctx context.Context) error
}

// EligibilityRuleRepository は適格性ルール（シングルトン）の永続化インターフェース。
type EligibilityRuleRepository interface {
	// Find はアクティブなルールを取得する。レコードが存在しない場合はnilを返す。
	Find(ctx context.Context) (*model.EligibilityRule, error)

	// Upsert はルールレコードを作成または更新する。レコードは常に高々1件。
	Upsert(ctx context.Context, rule model.EligibilityRule) error
}
