// Package admin は管理者アカウントの管理を提供する。
package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hitoshi/hireadmin/internal/auth"
	"github.com/hitoshi/hireadmin/internal/model"
	"github.com/hitoshi/hireadmin/internal/repository"
	"github.com/microcosm-cc/bluemonday"
)

// Summary は管理者のAPI応答用ビュー。パスワードハッシュは含めない。
type Summary struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Username string      `json:"username"`
	Level    model.Level `json:"level"`
}

// Service は管理者アカウントの作成・削除を提供する。
type Service struct {
	admins repository.AdminRepository

	// sanitizer は保存する表示名からマークアップを除去する。
	// 表示名はポータルのテーブルにそのまま描画されるため。
	sanitizer *bluemonday.Policy

	now func() time.Time
}

// NewService はServiceを生成する。
func NewService(admins repository.AdminRepository) *Service {
	return &Service{
		admins:    admins,
		sanitizer: bluemonday.StrictPolicy(),
		now:       time.Now,
	}
}

// Add は管理者を作成する。ユーザー名が既に存在する場合はCONFLICTを返す。
// パスワードはbcryptでハッシュ化して保存する。
func (s *Service) Add(ctx context.Context, name, username, password string, level model.Level) (*Summary, error) {
	name = strings.TrimSpace(s.sanitizer.Sanitize(name))
	username = strings.TrimSpace(username)

	if name == "" || username == "" || password == "" || level == "" {
		return nil, model.NewInvalidInputError("name, username, password and level are required")
	}
	if !level.IsValid() {
		return nil, model.NewInvalidInputError(fmt.Sprintf("unknown level %q", level))
	}

	existing, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, model.NewDuplicateUsernameError(username)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.Admin{
		Name:         name,
		Username:     username,
		PasswordHash: hash,
		Level:        level,
		CreatedAt:    s.now(),
	}

	id, err := s.admins.Create(ctx, admin)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	slog.Info("admin created",
		slog.String("username", username),
		slog.String("level", string(level)),
	)

	return &Summary{ID: id, Name: name, Username: username, Level: level}, nil
}

// Remove は指定IDの管理者を削除し、削除した管理者の要約を返す。
// 発行済みセッションは失効させない。次回のAuthorizeでUNKNOWN_ADMINになる。
func (s *Service) Remove(ctx context.Context, id int64) (*Summary, error) {
	admin, err := s.admins.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	if admin == nil {
		return nil, model.NewAdminNotFoundError(id)
	}

	if err := s.admins.DeleteByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete admin: %w", err)
	}

	slog.Info("admin removed", slog.String("username", admin.Username))

	return &Summary{
		ID:       admin.ID,
		Name:     admin.Name,
		Username: admin.Username,
		Level:    admin.Level,
	}, nil
}
