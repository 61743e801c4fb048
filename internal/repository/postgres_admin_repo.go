package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/hireadmin/internal/model"
)

// PostgresAdminRepo はPostgreSQLを使用した管理者リポジトリ。
type PostgresAdminRepo struct {
	db *sql.DB
}

// NewPostgresAdminRepo はPostgresAdminRepoを生成する。
func NewPostgresAdminRepo(db *sql.DB) *PostgresAdminRepo {
	return &PostgresAdminRepo{db: db}
}

const adminColumns = `id, name, username, password_hash, level, created_at`

// FindByID は指定IDの管理者を取得する。見つからない場合はnilを返す。
func (r *PostgresAdminRepo) FindByID(ctx context.Context, id int64) (*model.Admin, error) {
	admin := &model.Admin{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = $1`,
		id,
	).Scan(&admin.ID, &admin.Name, &admin.Username, &admin.PasswordHash, &admin.Level, &admin.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin by ID: %w", err)
	}

	return admin, nil
}

// FindByUsername はユーザー名で管理者を検索する。見つからない場合はnilを返す。
func (r *PostgresAdminRepo) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	admin := &model.Admin{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE username = $1`,
		username,
	).Scan(&admin.ID, &admin.Name, &admin.Username, &admin.PasswordHash, &admin.Level, &admin.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin by username: %w", err)
	}

	return admin, nil
}

// FindByLogin はユーザー名または表示名で管理者を検索する。見つからない場合はnilを返す。
func (r *PostgresAdminRepo) FindByLogin(ctx context.Context, login string) (*model.Admin, error) {
	admin := &model.Admin{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE username = $1 OR name = $1 LIMIT 1`,
		login,
	).Scan(&admin.ID, &admin.Name, &admin.Username, &admin.PasswordHash, &admin.Level, &admin.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin by login: %w", err)
	}

	return admin, nil
}

// Create は管理者を作成し、採番されたIDを返す。
func (r *PostgresAdminRepo) Create(ctx context.Context, admin *model.Admin) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO admins (name, username, password_hash, level, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		admin.Name, admin.Username, admin.PasswordHash, admin.Level, admin.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create admin: %w", err)
	}
	return id, nil
}

// DeleteByID は指定IDの管理者を削除する。
func (r *PostgresAdminRepo) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM admins WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	return nil
}

// DeleteAll は全管理者を削除する。
func (r *PostgresAdminRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM admins`); err != nil {
		return fmt.Errorf("failed to delete admins: %w", err)
	}
	return nil
}

// compile-time interface check
var _ AdminRepository = (*PostgresAdminRepo)(nil)
