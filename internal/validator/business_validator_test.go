package validator

import (
	"testing"
)

func TestMissingCarrierFields(t *testing.T) {
	bv := NewBusinessValidator()

	complete := &CarrierOnboardRequest{
		DOTNumber:    "1234567",
		MCNumber:     "MC123456",
		LegalName:    "Carolina Freight LLC",
		City:         "Charlotte",
		State:        "NC",
		ContactEmail: "dispatch@carolinafreight.example",
		ContactPhone: "704-555-0142",
		Password:     "TestPass123",
	}

	if missing := bv.MissingCarrierFields(complete); len(missing) != 0 {
		t.Errorf("complete payload reported missing fields: %v", missing)
	}

	t.Run("reports display names in declaration order", func(t *testing.T) {
		req := *complete
		req.DOTNumber = ""
		req.Password = " "
		req.State = ""

		got := bv.MissingCarrierFields(&req)
		want := []string{"DOT Number", "Password", "State"}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
			}
		}
	})

	t.Run("empty request reports every required field", func(t *testing.T) {
		got := bv.MissingCarrierFields(&CarrierOnboardRequest{})
		if len(got) != 8 {
			t.Errorf("expected 8 missing fields, got %d: %v", len(got), got)
		}
	})
}

func TestMissingShipperFields(t *testing.T) {
	bv := NewBusinessValidator()

	req := &ShipperOnboardRequest{
		LegalName:    "Peachtree Goods Inc",
		City:         "Atlanta",
		State:        "GA",
		ContactEmail: "logistics@peachtreegoods.example",
		ContactPhone: "404-555-0188",
		Password:     "TestPass123",
	}

	if missing := bv.MissingShipperFields(req); len(missing) != 0 {
		t.Errorf("complete payload reported missing fields: %v", missing)
	}

	// Shippers have no regulatory identity fields
	if got := bv.MissingShipperFields(&ShipperOnboardRequest{}); len(got) != 6 {
		t.Errorf("expected 6 missing fields, got %d: %v", len(got), got)
	}
}

func TestValidateCredentials(t *testing.T) {
	bv := NewBusinessValidator()

	tests := []struct {
		name     string
		email    string
		password string
		fields   []string
	}{
		{"valid", "user@example.com", "secret1", nil},
		{"bad email", "user@@example", "secret1", []string{"contactEmail"}},
		{"email with spaces", "us er@example.com", "secret1", []string{"contactEmail"}},
		{"short password", "user@example.com", "abc", []string{"password"}},
		{"both invalid", "nope", "abc", []string{"contactEmail", "password"}},
		{"absent fields are not format checked", "", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := bv.ValidateCredentials(tt.email, tt.password)
			if len(errs) != len(tt.fields) {
				t.Fatalf("expected %d errors, got %v", len(tt.fields), errs)
			}
			for i, field := range tt.fields {
				if errs[i].Field != field {
					t.Errorf("error %d: expected field %q, got %q", i, field, errs[i].Field)
				}
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last+tag@sub.domain.org"}
	invalid := []string{"", "plain", "a@b", "a b@c.com", "a@b c.com"}

	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestStructValidation(t *testing.T) {
	v := New()

	t.Run("status rule", func(t *testing.T) {
		if err := v.Validate(&StatusUpdateRequest{Status: "approved"}); err != nil {
			t.Errorf("approved should pass: %v", err)
		}
		if err := v.Validate(&StatusUpdateRequest{Status: "active"}); err == nil {
			t.Error("active is admin-only and must fail profile_status")
		}
	})

	t.Run("role rule", func(t *testing.T) {
		if err := v.Validate(&StartOnboardingRequest{Role: "carrier"}); err != nil {
			t.Errorf("carrier should pass: %v", err)
		}
		if err := v.Validate(&StartOnboardingRequest{Role: "admin"}); err == nil {
			t.Error("admin cannot start onboarding")
		}
	})

	t.Run("direction rule", func(t *testing.T) {
		if err := v.Validate(&AdvanceStepRequest{Direction: "next"}); err != nil {
			t.Errorf("next should pass: %v", err)
		}
		if err := v.Validate(&AdvanceStepRequest{Direction: "forward"}); err == nil {
			t.Error("unknown direction must fail")
		}
	})
}
