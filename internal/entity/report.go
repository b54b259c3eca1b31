package entity

// Summary are the headline numbers over a set of orders.
type Summary struct {
	OrderCount    int     `json:"order_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalSavings  float64 `json:"total_savings"`
	OffersApplied int     `json:"offers_applied"`
}

// DailySales is one calendar-date bucket of the sales series.
type DailySales struct {
	Date       string  `json:"date"` // YYYY-MM-DD, UTC
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"order_count"`
}

// ItemCount ranks one menu item name by how often it was ordered.
type ItemCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type TopItems struct {
	Sandwiches []ItemCount `json:"sandwiches"`
	Crisps     []ItemCount `json:"crisps"`
	Snacks     []ItemCount `json:"snacks"`
}

type OfferBreakdown struct {
	OfferCount   int `json:"offer_count"`
	RegularCount int `json:"regular_count"`
}

// Analytics bundles everything the admin dashboard shows for one day window.
type Analytics struct {
	Days           int            `json:"days"`
	Summary        Summary        `json:"summary"`
	DailySeries    []DailySales   `json:"daily_series"`
	TopItems       TopItems       `json:"top_items"`
	OfferBreakdown OfferBreakdown `json:"offer_breakdown"`
}
