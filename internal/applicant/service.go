// Package applicant は応募者の選考ライフサイクルを提供する。
package applicant

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hitoshi/hireadmin/internal/eligibility"
	"github.com/hitoshi/hireadmin/internal/model"
	"github.com/hitoshi/hireadmin/internal/repository"
)

// RuleGetter は現行の適格性ルールを取得するためのインターフェース。
// eligibility.Serviceの部分集合として定義する。
type RuleGetter interface {
	GetRule(ctx context.Context) (model.EligibilityRule, error)
}

// WithEligibility は応募者レコードと再計算済みの分類を合成した読み取りビュー。
// 分類は保存されず、返却のたびに現行ルールで計算し直す。
type WithEligibility struct {
	model.Applicant
	eligibility.Classification
}

// MetricsRecorder は選考イベントのメトリクス記録インターフェース。
// metrics.Collectorの部分集合として定義する。
type MetricsRecorder interface {
	RecordDecision(outcome string)
	RecordReopen()
}

// Counts は未決定応募者の分類別件数。
type Counts struct {
	Eligible   int `json:"eligible"`
	Actions    int `json:"actions"`
	Ineligible int `json:"ineligible"`
}

// Service は応募者の参照と状態遷移を提供する。
// 遷移は undecided→accepted / undecided→denied / accepted→undecided /
// denied→undecided のみ。decided同士の直接遷移は再オープンを経由させる。
type Service struct {
	applicants repository.ApplicantRepository
	rules      RuleGetter
	recorder   MetricsRecorder

	// locks は応募者IDごとの直列化ポイント。
	// 同一応募者へのdecide/reopenの同時実行をプロセス内で直列化する。
	// 応募者の母集団は有界なのでエントリは回収しない。
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	now func() time.Time
}

// NewService はServiceを生成する。
func NewService(applicants repository.ApplicantRepository, rules RuleGetter) *Service {
	return &Service{
		applicants: applicants,
		rules:      rules,
		locks:      make(map[string]*sync.Mutex),
		now:        time.Now,
	}
}

// SetMetricsRecorder はメトリクス記録先を設定する。未設定なら記録しない。
func (s *Service) SetMetricsRecorder(recorder MetricsRecorder) {
	s.recorder = recorder
}

// List は応募者一覧を分類付きで返す。
// statusが空文字列の場合は全応募者を返す。
func (s *Service) List(ctx context.Context, status model.ApplicantStatus) ([]WithEligibility, error) {
	var (
		applicants []*model.Applicant
		err        error
	)
	if status == "" {
		applicants, err = s.applicants.ListAll(ctx)
	} else {
		applicants, err = s.applicants.ListByStatus(ctx, status)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}

	rule, err := s.rules.GetRule(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]WithEligibility, len(applicants))
	for i, a := range applicants {
		result[i] = WithEligibility{
			Applicant:      *a,
			Classification: eligibility.Evaluate(a, rule),
		}
	}
	return result, nil
}

// CountsByClassification は未決定応募者を分類別に数える。
func (s *Service) CountsByClassification(ctx context.Context) (Counts, error) {
	undecided, err := s.List(ctx, model.StatusUndecided)
	if err != nil {
		return Counts{}, err
	}

	counts := Counts{}
	for _, a := range undecided {
		switch a.Key {
		case eligibility.KeyEligible:
			counts.Eligible++
		case eligibility.KeyActions:
			counts.Actions++
		case eligibility.KeyIneligible:
			counts.Ineligible++
		}
	}
	return counts, nil
}

// Decide は未決定の応募者を採用または不採用にする。
// decidedAtとdecidedByを同時に設定し、現行ルールで再分類した結果を返す。
// decidedByは認可ゲートが解決した管理者の識別子であること。
func (s *Service) Decide(ctx context.Context, id string, outcome model.ApplicantStatus, decidedBy string) (*WithEligibility, error) {
	if outcome != model.StatusAccepted && outcome != model.StatusDenied {
		return nil, model.NewInvalidInputError(fmt.Sprintf("outcome must be accepted or denied, got %q", outcome))
	}

	unlock := s.lock(id)
	defer unlock()

	a, err := s.applicants.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find applicant: %w", err)
	}
	if a == nil {
		return nil, model.NewApplicantNotFoundError(id)
	}

	// decided同士の直接遷移は許可しない。先にreopenを要求する。
	if a.Status != model.StatusUndecided {
		return nil, model.NewInvalidInputError(
			fmt.Sprintf("applicant is already %s; reopen it before deciding again", a.Status))
	}

	decidedAt := s.now().UTC().Format(time.RFC3339)
	a.Status = outcome
	a.DecidedAt = &decidedAt
	a.DecidedBy = &decidedBy

	if err := s.applicants.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to update applicant: %w", err)
	}

	if s.recorder != nil {
		s.recorder.RecordDecision(string(outcome))
	}
	slog.Info("applicant decided",
		slog.String("applicant_id", id),
		slog.String("outcome", string(outcome)),
		slog.String("decided_by", decidedBy),
	)

	return s.withEligibility(ctx, a)
}

// Reopen は決定済みの応募者を未決定に戻し、decidedAt/decidedByをクリアする。
// 既に未決定の応募者に対しては観測可能な状態を変えない（冪等）。
func (s *Service) Reopen(ctx context.Context, id string) (*WithEligibility, error) {
	unlock := s.lock(id)
	defer unlock()

	a, err := s.applicants.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find applicant: %w", err)
	}
	if a == nil {
		return nil, model.NewApplicantNotFoundError(id)
	}

	if a.Status != model.StatusUndecided {
		a.Status = model.StatusUndecided
		a.DecidedAt = nil
		a.DecidedBy = nil

		if err := s.applicants.Update(ctx, a); err != nil {
			return nil, fmt.Errorf("failed to update applicant: %w", err)
		}

		if s.recorder != nil {
			s.recorder.RecordReopen()
		}
		slog.Info("applicant reopened", slog.String("applicant_id", id))
	}

	return s.withEligibility(ctx, a)
}

func (s *Service) withEligibility(ctx context.Context, a *model.Applicant) (*WithEligibility, error) {
	rule, err := s.rules.GetRule(ctx)
	if err != nil {
		return nil, err
	}
	return &WithEligibility{
		Applicant:      *a,
		Classification: eligibility.Evaluate(a, rule),
	}, nil
}

// lock は応募者ID単位のミューテックスを取得し、解放関数を返す。
func (s *Service) lock(id string) func() {
	s.locksMu.Lock()
	mu, ok := s.locks[id]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[id] = mu
	}
	s.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}
