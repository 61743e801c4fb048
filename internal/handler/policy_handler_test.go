package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hitoshi/hireadmin/internal/model"
)

// mockPolicyService はテスト用のPolicyServiceInterfaceモック。
type mockPolicyService struct {
	getRuleFunc func(ctx context.Context) (model.EligibilityRule, error)
	setRuleFunc func(ctx context.Context, minAge, minCreditHours int, allowedCountries []string) (model.EligibilityRule, error)
}

func (m *mockPolicyService) GetRule(ctx context.Context) (model.EligibilityRule, error) {
	return m.getRuleFunc(ctx)
}

func (m *mockPolicyService) SetRule(ctx context.Context, minAge, minCreditHours int, allowedCountries []string) (model.EligibilityRule, error) {
	return m.setRuleFunc(ctx, minAge, minCreditHours, allowedCountries)
}

func TestPolicyHandler_GetRule(t *testing.T) {
	service := &mockPolicyService{
		getRuleFunc: func(ctx context.Context) (model.EligibilityRule, error) {
			return model.EligibilityRule{MinAge: 18, MinCreditHours: 12, AllowedCountries: []string{"USA", "CAN"}}, nil
		},
	}
	h := NewPolicyHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/getEligibilityRequirements", nil)
	rec := httptest.NewRecorder()

	h.GetRule(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp ruleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal failed: %v", err)
	}
	if resp.MinAge != 18 || resp.MinCreditHours != 12 {
		t.Errorf("rule = %+v, want minAge=18 minCreditHours=12", resp)
	}
	if len(resp.AllowedCountries) != 2 {
		t.Errorf("allowedCountries = %v, want 2 entries", resp.AllowedCountries)
	}
}

func TestPolicyHandler_GetRule_EmptyCountriesNotNull(t *testing.T) {
	service := &mockPolicyService{
		getRuleFunc: func(ctx context.Context) (model.EligibilityRule, error) {
			return model.EligibilityRule{MinAge: 18, MinCreditHours: 12, AllowedCountries: nil}, nil
		},
	}
	h := NewPolicyHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/getEligibilityRequirements", nil)
	rec := httptest.NewRecorder()

	h.GetRule(rec, req)

	// allowedCountriesはnullでなく[]としてシリアライズされること
	if !strings.Contains(rec.Body.String(), `"allowedCountries":[]`) {
		t.Errorf("body = %s, want allowedCountries to be []", rec.Body.String())
	}
}

func TestPolicyHandler_ModifyRule_Success(t *testing.T) {
	service := &mockPolicyService{
		setRuleFunc: func(ctx context.Context, minAge, minCreditHours int, allowedCountries []string) (model.EligibilityRule, error) {
			if minAge != 21 || minCreditHours != 9 {
				t.Errorf("args = %d/%d, want 21/9", minAge, minCreditHours)
			}
			return model.EligibilityRule{MinAge: minAge, MinCreditHours: minCreditHours, AllowedCountries: []string{"USA"}}, nil
		},
	}
	h := NewPolicyHandler(service)

	body := `{"minAge":21,"minCreditHours":9,"allowedCountries":["usa"]}`
	req := httptest.NewRequest(http.MethodPut, "/modifyEligibilityRequirements", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ModifyRule(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestPolicyHandler_ModifyRule_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing minAge", `{"minCreditHours":9,"allowedCountries":[]}`},
		{"missing minCreditHours", `{"minAge":21,"allowedCountries":[]}`},
		{"missing allowedCountries", `{"minAge":21,"minCreditHours":9}`},
		{"not json", `minAge=21`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockPolicyService{
				setRuleFunc: func(ctx context.Context, minAge, minCreditHours int, allowedCountries []string) (model.EligibilityRule, error) {
					t.Error("SetRule should not be called")
					return model.EligibilityRule{}, nil
				},
			}
			h := NewPolicyHandler(service)

			req := httptest.NewRequest(http.MethodPut, "/modifyEligibilityRequirements", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.ModifyRule(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestPolicyHandler_ModifyRule_NegativeThreshold(t *testing.T) {
	service := &mockPolicyService{
		setRuleFunc: func(ctx context.Context, minAge, minCreditHours int, allowedCountries []string) (model.EligibilityRule, error) {
			return model.EligibilityRule{}, model.NewInvalidInputError("minAge must not be negative")
		},
	}
	h := NewPolicyHandler(service)

	body := `{"minAge":-1,"minCreditHours":9,"allowedCountries":[]}`
	req := httptest.NewRequest(http.MethodPut, "/modifyEligibilityRequirements", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ModifyRule(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
