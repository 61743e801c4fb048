// Package auth はログイン、セッション管理、権限判定を提供する。
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/hireadmin/internal/model"
	"github.com/hitoshi/hireadmin/internal/repository"
)

// DefaultSessionTTL はセッションの有効期間。発行時に固定で設定され、延長はない。
const DefaultSessionTTL = 10 * time.Minute

// ServiceConfig は認証サービスの設定。
type ServiceConfig struct {
	SessionTTL time.Duration // セッション有効期間。ゼロ値ならDefaultSessionTTL
}

// MetricsRecorder は認証イベントのメトリクス記録インターフェース。
// metrics.Collectorの部分集合として定義する。
type MetricsRecorder interface {
	RecordLogin(success bool)
	RecordSessionExpired()
}

// Service は認証・認可に関するビジネスロジックを提供する。
// セッションストアは注入されたリポジトリ抽象で、グローバル状態は持たない。
type Service struct {
	admins   repository.AdminRepository
	sessions repository.SessionRepository
	ttl      time.Duration
	recorder MetricsRecorder

	// now は時刻源。テストでTTL境界を検証するために差し替え可能。
	now func() time.Time
}

// SetMetricsRecorder はメトリクス記録先を設定する。未設定なら記録しない。
func (s *Service) SetMetricsRecorder(recorder MetricsRecorder) {
	s.recorder = recorder
}

// NewService はServiceを生成する。
func NewService(admins repository.AdminRepository, sessions repository.SessionRepository, config ServiceConfig) *Service {
	ttl := config.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Service{
		admins:   admins,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Login は資格情報を検証し、セッションを発行する。
// loginはユーザー名または表示名のどちらでもよい。
// パスワードはbcryptハッシュと照合する。平文比較は行わない。
func (s *Service) Login(ctx context.Context, login, password string) (*model.Admin, *model.Session, error) {
	if login == "" || password == "" {
		return nil, nil, model.NewInvalidInputError("missing credentials")
	}

	admin, err := s.admins.FindByLogin(ctx, login)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find admin: %w", err)
	}
	if admin == nil {
		s.recordLogin(false)
		return nil, nil, model.NewInvalidCredentialsError()
	}

	if !ComparePassword(admin.PasswordHash, password) {
		s.recordLogin(false)
		return nil, nil, model.NewInvalidCredentialsError()
	}

	session, err := s.createSession(ctx, admin.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.recordLogin(true)
	slog.Info("admin logged in",
		slog.String("username", admin.Username),
		slog.String("level", string(admin.Level)),
	)

	return admin, session, nil
}

func (s *Service) recordLogin(success bool) {
	if s.recorder != nil {
		s.recorder.RecordLogin(success)
	}
}

// Logout は提示されたトークンのセッションをストアから削除する。
// TTL満了を待たずにサーバー側で失効させる。
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return model.NewMissingTokenError()
	}

	if err := s.sessions.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	slog.Info("admin logged out")
	return nil
}

// Validate はトークンを検証し、有効なセッションを返す。
// 空トークンはMISSING_TOKEN、未知のトークンはINVALID_TOKEN。
// 期限切れのセッションはその場で削除してSESSION_EXPIREDを返す（遅延削除）。
// バックグラウンドでの掃き出しは行わない。
func (s *Service) Validate(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, model.NewMissingTokenError()
	}

	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	if session == nil {
		return nil, model.NewInvalidTokenError()
	}

	if s.now().After(session.ExpiresAt) {
		// 削除失敗は失効判定を覆さない。レース時の二重削除も無害。
		if err := s.sessions.DeleteByToken(ctx, token); err != nil {
			slog.Error("failed to evict expired session", slog.String("error", err.Error()))
		}
		if s.recorder != nil {
			s.recorder.RecordSessionExpired()
		}
		return nil, model.NewSessionExpiredError()
	}

	return session, nil
}

// Authorize はリクエストのトークンを管理者に解決し、権限レベルを検査する。
// 手順: トークン検証 → 管理者解決（セッション発行後に削除された管理者は
// UNKNOWN_ADMIN）→ allowedLevelsが指定されていればレベル照合。
// 成功時は解決済みのAdminを返す。これが監査上の操作主体（decidedBy）になる。
func (s *Service) Authorize(ctx context.Context, token string, allowedLevels ...model.Level) (*model.Admin, error) {
	session, err := s.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	admin, err := s.admins.FindByUsername(ctx, session.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to find admin for session: %w", err)
	}
	if admin == nil {
		return nil, model.NewUnknownAdminError()
	}

	if len(allowedLevels) > 0 {
		allowed := false
		for _, l := range allowedLevels {
			if admin.Level == l {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, model.NewForbiddenError()
		}
	}

	return admin, nil
}

// createSession はセッションを作成し永続化する。
// トークンは128bitのランダムUUID。衝突確率は無視できるものとして扱う。
func (s *Service) createSession(ctx context.Context, username string) (*model.Session, error) {
	now := s.now()
	session := &model.Session{
		Token:     uuid.NewString(),
		Username:  username,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}
