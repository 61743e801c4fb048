package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hitoshi/hireadmin/internal/model"
)

// PostgresEligibilityRuleRepo はPostgreSQLを使用した適格性ルールリポジトリ。
// ルールは高々1行で、allowed_countriesはJSON文字列として保存する。
type PostgresEligibilityRuleRepo struct {
	db *sql.DB
}

// NewPostgresEligibilityRuleRepo はPostgresEligibilityRuleRepoを生成する。
func NewPostgresEligibilityRuleRepo(db *sql.DB) *PostgresEligibilityRuleRepo {
	return &PostgresEligibilityRuleRepo{db: db}
}

// Find はアクティブなルールを取得する。レコードが存在しない場合はnilを返す。
// allowed_countriesのJSONが壊れている場合は空リストに縮退させる。
// 読み取りを失敗させるより空ポリシーで続行する方が安全なため。
func (r *PostgresEligibilityRuleRepo) Find(ctx context.Context) (*model.EligibilityRule, error) {
	rule := &model.EligibilityRule{}
	var countriesJSON string

	err := r.db.QueryRowContext(ctx,
		`SELECT min_age, min_credit_hours, allowed_countries
		 FROM eligibility_rules
		 ORDER BY id
		 LIMIT 1`,
	).Scan(&rule.MinAge, &rule.MinCreditHours, &countriesJSON)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find eligibility rule: %w", err)
	}

	rule.AllowedCountries = []string{}
	if countriesJSON != "" {
		if err := json.Unmarshal([]byte(countriesJSON), &rule.AllowedCountries); err != nil {
			rule.AllowedCountries = []string{}
		}
	}

	return rule, nil
}

// Upsert はルールレコードを作成または更新する。
// 行が存在すればその行を更新し、なければ作成する（シングルトン維持）。
func (r *PostgresEligibilityRuleRepo) Upsert(ctx context.Context, rule model.EligibilityRule) error {
	countriesJSON, err := json.Marshal(rule.AllowedCountries)
	if err != nil {
		return fmt.Errorf("failed to encode allowed countries: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM eligibility_rules ORDER BY id LIMIT 1`,
	).Scan(&id)

	switch {
	case err == sql.ErrNoRows:
		_, err = tx.ExecContext(ctx,
			`INSERT INTO eligibility_rules (min_age, min_credit_hours, allowed_countries)
			 VALUES ($1, $2, $3)`,
			rule.MinAge, rule.MinCreditHours, string(countriesJSON),
		)
		if err != nil {
			return fmt.Errorf("failed to insert eligibility rule: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to find eligibility rule for upsert: %w", err)
	default:
		_, err = tx.ExecContext(ctx,
			`UPDATE eligibility_rules
			 SET min_age = $2, min_credit_hours = $3, allowed_countries = $4
			 WHERE id = $1`,
			id, rule.MinAge, rule.MinCreditHours, string(countriesJSON),
		)
		if err != nil {
			return fmt.Errorf("failed to update eligibility rule: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// compile-time interface check
var _ EligibilityRuleRepository = (*PostgresEligibilityRuleRepo)(nil)
