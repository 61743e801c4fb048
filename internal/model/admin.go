// Package model はドメインモデルを定義する。
package model

import "time"

// Level は管理者の権限レベルを表す。
type Level string

const (
	// LevelSuperadmin は全操作（管理者管理・ポリシー変更を含む）を許可する。
	LevelSuperadmin Level = "superadmin"
	// LevelAdmin は採用判断・給与変更・解雇を許可する。
	LevelAdmin Level = "admin"
	// LevelReadonly は参照系エンドポイントのみを許可する。
	LevelReadonly Level = "readonly"
)

// IsValid はレベルが定義済みのいずれかであるかを返す。
func (l Level) IsValid() bool {
	switch l {
	case LevelSuperadmin, LevelAdmin, LevelReadonly:
		return true
	}
	return false
}

// Admin はポータルを操作する管理者アカウントを表す。
// PasswordHashはbcryptハッシュを保持する。平文は保存しない。
type Admin struct {
	ID           int64
	Name         string
	Username     string
	PasswordHash string
	Level        Level
	CreatedAt    time.Time
}

// Session は管理者のログインセッションを表す。
// Tokenは不透明なランダム値で、発行から固定TTLの間のみ有効。
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
	CreatedAt time.Time
}
