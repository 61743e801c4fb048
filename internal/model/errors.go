package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, hiring, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeMissingToken       = "MISSING_TOKEN"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeSessionExpired     = "SESSION_EXPIRED"
	ErrCodeUnknownAdmin       = "UNKNOWN_ADMIN"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewMissingTokenError はトークン未提示エラーを生成する。
func NewMissingTokenError() *APIError {
	return &APIError{
		Code:     ErrCodeMissingToken,
		Message:  "Missing session",
		Category: "auth",
		Action:   "Log in and retry with a session token.",
	}
}

// NewInvalidTokenError は一致するセッションが存在しない場合のエラーを生成する。
func NewInvalidTokenError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidToken,
		Message:  "Invalid session",
		Category: "auth",
		Action:   "Log in again to obtain a new session token.",
	}
}

// NewSessionExpiredError はセッション期限切れエラーを生成する。
func NewSessionExpiredError() *APIError {
	return &APIError{
		Code:     ErrCodeSessionExpired,
		Message:  "Session expired",
		Category: "auth",
		Action:   "Log in again to obtain a new session token.",
	}
}

// NewUnknownAdminError はセッション発行後に管理者が削除された場合のエラーを生成する。
func NewUnknownAdminError() *APIError {
	return &APIError{
		Code:     ErrCodeUnknownAdmin,
		Message:  "Unknown admin",
		Category: "auth",
		Action:   "Log in again with an existing account.",
	}
}

// NewInvalidCredentialsError はログイン失敗エラーを生成する。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "Invalid credentials",
		Category: "auth",
		Action:   "Check the username and password.",
	}
}

// NewForbiddenError は権限レベル不足エラーを生成する。
func NewForbiddenError() *APIError {
	return &APIError{
		Code:     ErrCodeForbidden,
		Message:  "Forbidden",
		Category: "auth",
		Action:   "This operation requires a higher admin level.",
	}
}

// NewApplicantNotFoundError は応募者未検出エラーを生成する。
func NewApplicantNotFoundError(id string) *APIError {
	return &APIError{
		Code:     ErrCodeNotFound,
		Message:  fmt.Sprintf("Applicant not found: %s", id),
		Category: "hiring",
		Action:   "Check the applicant id.",
	}
}

// NewEmployeeNotFoundError は従業員未検出エラーを生成する。
func NewEmployeeNotFoundError(studentID string) *APIError {
	return &APIError{
		Code:     ErrCodeNotFound,
		Message:  fmt.Sprintf("Student not found: %s", studentID),
		Category: "hiring",
		Action:   "Check the student id.",
	}
}

// NewAdminNotFoundError は管理者未検出エラーを生成する。
func NewAdminNotFoundError(id int64) *APIError {
	return &APIError{
		Code:     ErrCodeNotFound,
		Message:  fmt.Sprintf("Admin not found: %d", id),
		Category: "admin",
		Action:   "Check the admin id.",
	}
}

// NewInvalidInputError は入力値検証エラーを生成する。
func NewInvalidInputError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidInput,
		Message:  fmt.Sprintf("Invalid input: %s", reason),
		Category: "validation",
		Action:   "Fix the request body and retry.",
	}
}

// NewDuplicateUsernameError はユーザー名重複エラーを生成する。
func NewDuplicateUsernameError(username string) *APIError {
	return &APIError{
		Code:     ErrCodeConflict,
		Message:  fmt.Sprintf("Username already exists: %s", username),
		Category: "admin",
		Action:   "Choose a different username.",
	}
}
