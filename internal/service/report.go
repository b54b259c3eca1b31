package service

import (
	"context"
	"sort"
	"time"

	"github.com/brentsteel/lunchmenu/internal/entity"
)

const (
	defaultWindowDays = 7
	defaultTopN       = 5
)

// ReportService aggregates the order log. All operations are read-only; the
// log is small enough that aggregation happens in memory over one query,
// which also keeps the ranking tie-break explicit.
type ReportService struct {
	orderRepo OrderStore
}

func NewReportService(orderRepo OrderStore) *ReportService {
	return &ReportService{orderRepo: orderRepo}
}

// Summarize computes the headline numbers for a set of orders.
func Summarize(orders []entity.Order) entity.Summary {
	var s entity.Summary
	for _, o := range orders {
		s.OrderCount++
		s.TotalRevenue += o.TotalPrice
		s.TotalSavings += o.Savings
		if o.OfferApplied {
			s.OffersApplied++
		}
	}
	return s
}

// Summary aggregates orders created at or after since; zero since means the
// whole log.
func (s *ReportService) Summary(ctx context.Context, since time.Time) (entity.Summary, error) {
	orders, err := s.orderRepo.ListOrders(ctx, since)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing orders for summary")
		return entity.Summary{}, err
	}
	return Summarize(orders), nil
}

// DailySeries buckets the trailing window by UTC calendar date, ascending.
// Dates without orders are omitted, so the series is sparse.
func (s *ReportService) DailySeries(ctx context.Context, days int) ([]entity.DailySales, error) {
	if days <= 0 {
		days = defaultWindowDays
	}
	orders, err := s.orderRepo.ListOrders(ctx, windowStart(days))
	if err != nil {
		logger.Error().Err(err).Msg("Error listing orders for daily series")
		return nil, err
	}

	buckets := make(map[string]*entity.DailySales)
	for _, o := range orders {
		date := o.CreatedAt.UTC().Format("2006-01-02")
		b, ok := buckets[date]
		if !ok {
			b = &entity.DailySales{Date: date}
			buckets[date] = b
		}
		b.Revenue += o.TotalPrice
		b.OrderCount++
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]entity.DailySales, 0, len(dates))
	for _, date := range dates {
		series = append(series, *buckets[date])
	}
	return series, nil
}

// TopItems ranks the distinct chosen names per category by order count,
// descending, truncated to n. Ties rank by the first order that chose the
// name: the input is id-ascending and the sort is stable.
func (s *ReportService) TopItems(ctx context.Context, n int) (entity.TopItems, error) {
	if n <= 0 {
		n = defaultTopN
	}
	orders, err := s.orderRepo.ListOrders(ctx, time.Time{})
	if err != nil {
		logger.Error().Err(err).Msg("Error listing orders for top items")
		return entity.TopItems{}, err
	}

	return entity.TopItems{
		Sandwiches: rankNames(orders, n, func(o entity.Order) string { return o.SandwichName }),
		Crisps:     rankNames(orders, n, func(o entity.Order) string { return o.CrispsName }),
		Snacks:     rankNames(orders, n, func(o entity.Order) string { return o.SnackName }),
	}, nil
}

// OfferBreakdown partitions the whole log by offer_applied.
func (s *ReportService) OfferBreakdown(ctx context.Context) (entity.OfferBreakdown, error) {
	orders, err := s.orderRepo.ListOrders(ctx, time.Time{})
	if err != nil {
		logger.Error().Err(err).Msg("Error listing orders for offer breakdown")
		return entity.OfferBreakdown{}, err
	}

	var b entity.OfferBreakdown
	for _, o := range orders {
		if o.OfferApplied {
			b.OfferCount++
		} else {
			b.RegularCount++
		}
	}
	return b, nil
}

// Analytics bundles the four reports with a consistent window: the summary
// covers the same trailing days as the daily series, so the series revenue
// sums to the summary revenue.
func (s *ReportService) Analytics(ctx context.Context, days int) (*entity.Analytics, error) {
	if days <= 0 {
		days = defaultWindowDays
	}

	summary, err := s.Summary(ctx, windowStart(days))
	if err != nil {
		return nil, err
	}
	series, err := s.DailySeries(ctx, days)
	if err != nil {
		return nil, err
	}
	top, err := s.TopItems(ctx, defaultTopN)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.OfferBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	return &entity.Analytics{
		Days:           days,
		Summary:        summary,
		DailySeries:    series,
		TopItems:       top,
		OfferBreakdown: breakdown,
	}, nil
}

// windowStart is midnight UTC days-1 days ago, so a 1-day window is today.
func windowStart(days int) time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))
}

func rankNames(orders []entity.Order, n int, pick func(entity.Order) string) []entity.ItemCount {
	counts := make(map[string]int)
	var firstSeen []string
	for _, o := range orders {
		name := pick(o)
		if _, seen := counts[name]; !seen {
			firstSeen = append(firstSeen, name)
		}
		counts[name]++
	}

	ranked := make([]entity.ItemCount, 0, len(firstSeen))
	for _, name := range firstSeen {
		ranked = append(ranked, entity.ItemCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
