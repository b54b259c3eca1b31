package service

import (
	"fmt"
	"math"

	"github.com/brentsteel/lunchmenu/internal/entity"
)

// Quote is the priced outcome of one selection against a catalog snapshot.
type Quote struct {
	SandwichPrice float64
	CrispsPrice   float64
	SnackPrice    float64
	Total         float64
	OfferApplied  bool
	Savings       float64
}

// RegularTotal is the undiscounted sum of the three item prices.
func (q Quote) RegularTotal() float64 {
	return round2(q.SandwichPrice + q.CrispsPrice + q.SnackPrice)
}

// OfferEligible reports whether a sandwich qualifies for the bundled offer.
// Only the sandwich matters; the crisps and snack choices never affect it.
func OfferEligible(sandwich entity.MenuItem) bool {
	return !sandwich.IsPremium
}

// PriceSelection prices a selection against a catalog snapshot. It is pure:
// no store, no clock, no side effects, so the same inputs always quote the
// same way. Each selected name must exist in its category in the snapshot,
// otherwise the error wraps ErrNotFound.
//
// Savings are clamped at zero: an offer price above the item sum is a
// catalog-data problem the caller may report, not a reason to charge extra
// or to emit negative savings.
func PriceSelection(sel entity.Selection, catalog entity.Catalog, offerPrice float64) (Quote, error) {
	sandwich, ok := catalog.Find(entity.CategorySandwich, sel.Sandwich)
	if !ok {
		return Quote{}, fmt.Errorf("sandwich %q: %w", sel.Sandwich, ErrNotFound)
	}
	crisps, ok := catalog.Find(entity.CategoryCrisps, sel.Crisps)
	if !ok {
		return Quote{}, fmt.Errorf("crisps %q: %w", sel.Crisps, ErrNotFound)
	}
	snack, ok := catalog.Find(entity.CategorySnack, sel.Snack)
	if !ok {
		return Quote{}, fmt.Errorf("snack %q: %w", sel.Snack, ErrNotFound)
	}

	quote := Quote{
		SandwichPrice: sandwich.Price,
		CrispsPrice:   crisps.Price,
		SnackPrice:    snack.Price,
	}

	if OfferEligible(*sandwich) {
		quote.OfferApplied = true
		quote.Total = offerPrice
		quote.Savings = round2(quote.RegularTotal() - offerPrice)
		if quote.Savings < 0 {
			quote.Savings = 0
		}
	} else {
		quote.Total = quote.RegularTotal()
	}

	return quote, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
