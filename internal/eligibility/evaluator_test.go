package eligibility

import (
	"testing"

	"github.com/hitoshi/hireadmin/internal/model"
)

func testRule() model.EligibilityRule {
	return model.EligibilityRule{
		MinAge:           18,
		MinCreditHours:   12,
		AllowedCountries: []string{"USA"},
	}
}

// 4述語すべて成立でeligibleになることを検証
func TestEvaluate_AllPredicatesPass_Eligible(t *testing.T) {
	a := &model.Applicant{
		Age:             20,
		CitizenshipISO3: "USA",
		Visa:            "No Issues",
		CreditHours:     15,
	}

	got := Evaluate(a, testRule())

	if got.Key != KeyEligible {
		t.Errorf("Key = %q, want %q", got.Key, KeyEligible)
	}
	if got.Text != "Eligible" {
		t.Errorf("Text = %q, want %q", got.Text, "Eligible")
	}
}

// 述語が1つだけ落ちた場合はactionsになることを検証
func TestEvaluate_OnePredicateFails_ActionsNeeded(t *testing.T) {
	a := &model.Applicant{
		Age:             20,
		CitizenshipISO3: "USA",
		Visa:            "No Issues",
		CreditHours:     5, // minCreditHoursを下回る
	}

	got := Evaluate(a, testRule())

	if got.Key != KeyActions {
		t.Errorf("Key = %q, want %q", got.Key, KeyActions)
	}
	if got.Text != "Actions Needed" {
		t.Errorf("Text = %q, want %q", got.Text, "Actions Needed")
	}
}

// 全述語不成立でineligibleになることを検証
func TestEvaluate_AllPredicatesFail_Ineligible(t *testing.T) {
	a := &model.Applicant{
		Age:             16,
		CitizenshipISO3: "FRA",
		Visa:            "pending review",
		CreditHours:     3,
	}

	got := Evaluate(a, testRule())

	if got.Key != KeyIneligible {
		t.Errorf("Key = %q, want %q", got.Key, KeyIneligible)
	}
	if got.Text != "Ineligible" {
		t.Errorf("Text = %q, want %q", got.Text, "Ineligible")
	}
}

// 成立数1〜3はすべてactionsに分類されることを検証
func TestEvaluate_PartialPredicates_AlwaysActions(t *testing.T) {
	cases := []struct {
		name string
		a    *model.Applicant
	}{
		{
			name: "one predicate holds",
			a:    &model.Applicant{Age: 20, CitizenshipISO3: "FRA", Visa: "expired", CreditHours: 0},
		},
		{
			name: "two predicates hold",
			a:    &model.Applicant{Age: 20, CitizenshipISO3: "USA", Visa: "expired", CreditHours: 0},
		},
		{
			name: "three predicates hold",
			a:    &model.Applicant{Age: 20, CitizenshipISO3: "USA", Visa: "no issues", CreditHours: 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.a, testRule())
			if got.Key != KeyActions {
				t.Errorf("Key = %q, want %q", got.Key, KeyActions)
			}
		})
	}
}

// 国籍は大文字小文字を区別せず照合されることを検証
func TestEvaluate_CitizenshipCaseInsensitive(t *testing.T) {
	a := &model.Applicant{
		Age:             20,
		CitizenshipISO3: "usa",
		Visa:            "NO ISSUES",
		CreditHours:     15,
	}

	got := Evaluate(a, testRule())

	if got.Key != KeyEligible {
		t.Errorf("Key = %q, want %q", got.Key, KeyEligible)
	}
}

// 許可国リストが空なら国籍述語は常に不成立になることを検証
func TestEvaluate_EmptyAllowedCountries_CitizenshipFails(t *testing.T) {
	rule := model.EligibilityRule{MinAge: 18, MinCreditHours: 12, AllowedCountries: []string{}}
	a := &model.Applicant{
		Age:             20,
		CitizenshipISO3: "USA",
		Visa:            "no issues",
		CreditHours:     15,
	}

	got := Evaluate(a, rule)

	if got.Key != KeyActions {
		t.Errorf("Key = %q, want %q", got.Key, KeyActions)
	}
}

// 欠損フィールドはエラーにならず述語不成立として扱われることを検証
func TestEvaluate_ZeroValueApplicant_TotalFunction(t *testing.T) {
	got := Evaluate(&model.Applicant{}, testRule())

	if got.Key != KeyIneligible {
		t.Errorf("Key = %q, want %q", got.Key, KeyIneligible)
	}
}

// 結果キーは3値のいずれかであることを検証
func TestEvaluate_KeyAlwaysInDomain(t *testing.T) {
	applicants := []*model.Applicant{
		{},
		{Age: 99, CitizenshipISO3: "USA", Visa: "no issues", CreditHours: 99},
		{Age: 18},
		{Visa: " No Issues "},
	}
	valid := map[string]bool{KeyEligible: true, KeyActions: true, KeyIneligible: true}

	for _, a := range applicants {
		got := Evaluate(a, testRule())
		if !valid[got.Key] {
			t.Errorf("Key = %q, want one of eligible/actions/ineligible", got.Key)
		}
	}
}

// 勤務時間超過でNeeds actionsになることを検証
func TestWorkStatus_OverMaxHours_NeedsActions(t *testing.T) {
	e := &model.Employee{MaxHoursPerWeek: 20, WorkedHoursPerWeek: 25}
	if got := WorkStatus(e); got != WorkStatusNeedsAction {
		t.Errorf("WorkStatus = %q, want %q", got, WorkStatusNeedsAction)
	}
}

// 勤務時間が上限以内ならNo issuesになることを検証
func TestWorkStatus_WithinMaxHours_NoIssues(t *testing.T) {
	e := &model.Employee{MaxHoursPerWeek: 20, WorkedHoursPerWeek: 15}
	if got := WorkStatus(e); got != WorkStatusOK {
		t.Errorf("WorkStatus = %q, want %q", got, WorkStatusOK)
	}

	// 境界値: ちょうど上限はNo issues
	e = &model.Employee{MaxHoursPerWeek: 20, WorkedHoursPerWeek: 20}
	if got := WorkStatus(e); got != WorkStatusOK {
		t.Errorf("WorkStatus = %q, want %q", got, WorkStatusOK)
	}
}
