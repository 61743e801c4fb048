package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/hireadmin/internal/middleware"
	"github.com/hitoshi/hireadmin/internal/model"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Gate              middleware.Authorizer
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	Logger            *slog.Logger
	HTTPRecorder      middleware.HTTPRecorder

	// メトリクス公開エンドポイント
	MetricsHandler http.Handler

	// サービス
	AuthService      AuthServiceInterface
	ApplicantService ApplicantServiceInterface
	EmployeeService  EmployeeServiceInterface
	PolicyService    PolicyServiceInterface
	AdminService     AdminServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → CORS → Logging → Auth → RateLimit(General)
//
// パスと動詞は既存フロントエンドとの互換のため固定。
// 参照系はreadonlyを含む全レベル、採用判断系はsuperadmin/admin、
// ポリシー変更と管理者管理はsuperadminのみに許可する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewLoggingMiddleware(deps.Logger, deps.HTTPRecorder))

	authHandler := NewAuthHandler(deps.AuthService)
	applicantHandler := NewApplicantHandler(deps.ApplicantService)
	employeeHandler := NewEmployeeHandler(deps.EmployeeService)
	policyHandler := NewPolicyHandler(deps.PolicyService)
	adminHandler := NewAdminHandler(deps.AdminService)

	// --- 認証不要のルート ---

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}

	// ログインは接続元IPごとのレート制限付き
	r.With(deps.RateLimiter.LoginMiddleware()).Put("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)

	// --- 参照系（全レベル）---
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(deps.Gate,
			model.LevelSuperadmin, model.LevelAdmin, model.LevelReadonly))
		r.Use(deps.RateLimiter.GeneralMiddleware())

		r.Get("/getAllStudents", applicantHandler.ListAll)
		r.Get("/getAllAcceptedStudents", applicantHandler.ListAccepted)
		r.Get("/getAllDeniedStudents", applicantHandler.ListDenied)
		r.Get("/getAllUndecidedStudents", applicantHandler.ListUndecided)
		r.Get("/getApplicantCounts", applicantHandler.Counts)
		r.Get("/getEligibilityRequirements", policyHandler.GetRule)
		r.Get("/getStudentEmployees", employeeHandler.List)
	})

	// --- 採用判断・雇用管理（superadmin/admin）---
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(deps.Gate,
			model.LevelSuperadmin, model.LevelAdmin))
		r.Use(deps.RateLimiter.GeneralMiddleware())

		r.Put("/acceptStudent", applicantHandler.Accept)
		r.Put("/denyStudent", applicantHandler.Deny)
		r.Put("/reopenStudent", applicantHandler.Reopen)
		r.Put("/increasePay", employeeHandler.IncreasePay)
		r.Delete("/fireStudent", employeeHandler.Fire)
	})

	// --- ポリシー変更・管理者管理（superadminのみ）---
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(deps.Gate, model.LevelSuperadmin))
		r.Use(deps.RateLimiter.GeneralMiddleware())

		r.Put("/modifyEligibilityRequirements", policyHandler.ModifyRule)
		r.Put("/addAdmin", adminHandler.Add)
		r.Delete("/removeAdmin", adminHandler.Remove)
	})

	return r
}
