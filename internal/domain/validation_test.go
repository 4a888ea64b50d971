package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateCurrency(t *testing.T) {
	valid := []string{"USD", "usd", " EUR ", "JPY"}
	for _, c := range valid {
		if err := ValidateCurrency(c); err != nil {
			t.Errorf("ValidateCurrency(%q): unexpected error: %v", c, err)
		}
	}

	invalid := []string{"", "US", "DOGE", "usdollar"}
	for _, c := range invalid {
		if err := ValidateCurrency(c); err == nil {
			t.Errorf("ValidateCurrency(%q): expected error, got nil", c)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(decimal.NewFromInt(1)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateAmount(decimal.Zero); err == nil {
		t.Error("expected error for zero amount")
	}

	if err := ValidateAmount(decimal.NewFromInt(-5)); err == nil {
		t.Error("expected error for negative amount")
	}

	huge, _ := decimal.NewFromString("1000000000001")
	if err := ValidateAmount(huge); err == nil {
		t.Error("expected error for amount above maximum")
	}
}

func TestValidateReference(t *testing.T) {
	if err := ValidateReference("order-2024-0001"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateReference(""); err == nil {
		t.Error("expected error for empty reference")
	}

	long := make([]byte, MaxReferenceLength+1)
	for i := range long {
		long[i] = 'x'
	}
	if err := ValidateReference(string(long)); err == nil {
		t.Error("expected error for oversized reference")
	}
}

func TestValidateAccountID(t *testing.T) {
	if err := ValidateAccountID("acc-123"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateAccountID("  "); err == nil {
		t.Error("expected error for blank id")
	}
}

func TestValidateMetadata(t *testing.T) {
	if err := ValidateMetadata(nil); err != nil {
		t.Errorf("unexpected error for nil metadata: %v", err)
	}

	if err := ValidateMetadata(map[string]any{"k": "v"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	big := map[string]any{"blob": string(make([]byte, MaxMetadataSize+1))}
	if err := ValidateMetadata(big); err == nil {
		t.Error("expected error for oversized metadata")
	}
}
