// Package eligibility は応募者の適格性分類と従業員の勤務状態導出を提供する。
package eligibility

import (
	"strings"

	"github.com/hitoshi/hireadmin/internal/model"
)

// Classification は適格性分類の結果を表す。
// Keyは機械可読な識別子、Textは画面表示用ラベル。
type Classification struct {
	Key  string `json:"eligibilityKey"`
	Text string `json:"eligibilityText"`
}

// 分類キー
const (
	KeyEligible   = "eligible"
	KeyActions    = "actions"
	KeyIneligible = "ineligible"
)

// 勤務状態ラベル
const (
	WorkStatusOK          = "No issues"
	WorkStatusNeedsAction = "Needs actions"
)

// Evaluate は応募者をルールに対して分類する純粋関数。
// 4つの独立した述語（年齢・国籍・ビザ・履修単位）の成立数で分類する:
// 4つ成立でeligible、0でineligible、それ以外はactions。
// どの述語が落ちたかは結果に含めない。欠損・不正値は述語不成立に倒し、
// エラーは返さない（全域関数）。
func Evaluate(a *model.Applicant, rule model.EligibilityRule) Classification {
	ageOK := a.Age >= rule.MinAge
	citizenOK := containsCountry(rule.AllowedCountries, a.CitizenshipISO3)
	visaOK := strings.EqualFold(strings.TrimSpace(a.Visa), "no issues")
	creditOK := a.CreditHours >= rule.MinCreditHours

	trueCount := 0
	for _, ok := range []bool{ageOK, citizenOK, visaOK, creditOK} {
		if ok {
			trueCount++
		}
	}

	switch trueCount {
	case 4:
		return Classification{Key: KeyEligible, Text: "Eligible"}
	case 0:
		return Classification{Key: KeyIneligible, Text: "Ineligible"}
	default:
		return Classification{Key: KeyActions, Text: "Actions Needed"}
	}
}

// WorkStatus は従業員の勤務状態を導出する。
// 保存値は信用せず、常に時間数から再計算する。
func WorkStatus(e *model.Employee) string {
	if e.WorkedHoursPerWeek > e.MaxHoursPerWeek {
		return WorkStatusNeedsAction
	}
	return WorkStatusOK
}

func containsCountry(allowed []string, iso3 string) bool {
	upper := strings.ToUpper(iso3)
	for _, c := range allowed {
		if c == upper {
			return true
		}
	}
	return false
}
