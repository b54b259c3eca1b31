package service

import (
	"errors"
	"testing"

	"github.com/brentsteel/lunchmenu/internal/entity"
)

func TestPriceSelection(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name        string
		sel         entity.Selection
		offerPrice  float64
		wantTotal   float64
		wantApplied bool
		wantSavings float64
	}{
		{
			name:        "regular sandwich gets the offer",
			sel:         entity.Selection{Sandwich: "Sandwich A", Crisps: "Crisps B", Snack: "Snack C"},
			offerPrice:  5.00,
			wantTotal:   5.00,
			wantApplied: true,
			wantSavings: 1.00, // 3.50+1.50+1.00-5.00
		},
		{
			name:        "premium sandwich never qualifies",
			sel:         entity.Selection{Sandwich: "Sandwich D", Crisps: "Crisps B", Snack: "Snack C"},
			offerPrice:  5.00,
			wantTotal:   7.00, // 4.50+1.50+1.00
			wantApplied: false,
			wantSavings: 0,
		},
		{
			name:        "savings clamp at zero on inconsistent catalog",
			sel:         entity.Selection{Sandwich: "Sandwich A", Crisps: "Crisps B", Snack: "Snack C"},
			offerPrice:  10.00,
			wantTotal:   10.00,
			wantApplied: true,
			wantSavings: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := PriceSelection(tt.sel, catalog, tt.offerPrice)
			if err != nil {
				t.Fatalf("PriceSelection() error: %v", err)
			}
			if quote.Total != tt.wantTotal {
				t.Errorf("Total = %v, want %v", quote.Total, tt.wantTotal)
			}
			if quote.OfferApplied != tt.wantApplied {
				t.Errorf("OfferApplied = %v, want %v", quote.OfferApplied, tt.wantApplied)
			}
			if quote.Savings != tt.wantSavings {
				t.Errorf("Savings = %v, want %v", quote.Savings, tt.wantSavings)
			}
			if !quote.OfferApplied && quote.Savings != 0 {
				t.Errorf("non-offer quote must have zero savings, got %v", quote.Savings)
			}
			if quote.Savings < 0 {
				t.Errorf("savings must never be negative, got %v", quote.Savings)
			}
		})
	}
}

func TestPriceSelectionUnknownItems(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name string
		sel  entity.Selection
	}{
		{"unknown sandwich", entity.Selection{Sandwich: "Nope", Crisps: "Crisps B", Snack: "Snack C"}},
		{"unknown crisps", entity.Selection{Sandwich: "Sandwich A", Crisps: "Nope", Snack: "Snack C"}},
		{"unknown snack", entity.Selection{Sandwich: "Sandwich A", Crisps: "Crisps B", Snack: "Nope"}},
		{"right name wrong category", entity.Selection{Sandwich: "Crisps B", Crisps: "Crisps B", Snack: "Snack C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PriceSelection(tt.sel, catalog, 5.00)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("PriceSelection() error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestOfferEligible(t *testing.T) {
	if OfferEligible(entity.MenuItem{IsPremium: true}) {
		t.Error("premium sandwich must not be eligible")
	}
	if !OfferEligible(entity.MenuItem{IsPremium: false}) {
		t.Error("regular sandwich must be eligible")
	}
}
