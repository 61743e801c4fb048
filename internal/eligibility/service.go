package eligibility

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hitoshi/hireadmin/internal/model"
	"github.com/hitoshi/hireadmin/internal/repository"
)

// MetricsRecorder はルール更新のメトリクス記録インターフェース。
// metrics.Collectorの部分集合として定義する。
type MetricsRecorder interface {
	RecordRuleUpdate()
}

// Service は適格性ルール（シングルトンポリシー）の取得と更新を提供する。
type Service struct {
	rules    repository.EligibilityRuleRepository
	recorder MetricsRecorder
}

// NewService はServiceを生成する。
func NewService(rules repository.EligibilityRuleRepository) *Service {
	return &Service{rules: rules}
}

// SetMetricsRecorder はメトリクス記録先を設定する。未設定なら記録しない。
func (s *Service) SetMetricsRecorder(recorder MetricsRecorder) {
	s.recorder = recorder
}

// GetRule はアクティブなルールを返す。
// レコードが存在しない場合は既定値 {18, 12, []} を返す。
func (s *Service) GetRule(ctx context.Context) (model.EligibilityRule, error) {
	rule, err := s.rules.Find(ctx)
	if err != nil {
		return model.EligibilityRule{}, fmt.Errorf("failed to load eligibility rule: %w", err)
	}
	if rule == nil {
		return model.DefaultEligibilityRule(), nil
	}
	return *rule, nil
}

// SetRule はルールを検証・正規化して保存し、保存後のルールを返す。
// minAgeとminCreditHoursは0以上であること。
// allowedCountriesは大文字化・トリムし、空要素は捨てる。
func (s *Service) SetRule(ctx context.Context, minAge, minCreditHours int, allowedCountries []string) (model.EligibilityRule, error) {
	if minAge < 0 {
		return model.EligibilityRule{}, model.NewInvalidInputError("minAge must be >= 0")
	}
	if minCreditHours < 0 {
		return model.EligibilityRule{}, model.NewInvalidInputError("minCreditHours must be >= 0")
	}

	rule := model.EligibilityRule{
		MinAge:           minAge,
		MinCreditHours:   minCreditHours,
		AllowedCountries: NormalizeCountries(allowedCountries),
	}

	if err := s.rules.Upsert(ctx, rule); err != nil {
		return model.EligibilityRule{}, fmt.Errorf("failed to save eligibility rule: %w", err)
	}

	if s.recorder != nil {
		s.recorder.RecordRuleUpdate()
	}
	slog.Info("eligibility rule updated",
		slog.Int("min_age", rule.MinAge),
		slog.Int("min_credit_hours", rule.MinCreditHours),
		slog.Int("allowed_countries", len(rule.AllowedCountries)),
	)

	return rule, nil
}

// NormalizeCountries は国コードリストを大文字化・トリムし、空要素を除去する。
// 重複除去は行わない（保存形と応答形を一致させる）。
func NormalizeCountries(countries []string) []string {
	normalized := []string{}
	for _, c := range countries {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		normalized = append(normalized, c)
	}
	return normalized
}
