package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/brentsteel/lunchmenu/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// OrderStore is the order persistence the services need; satisfied by
// repository.OrderRepository.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error)
	ListOrders(ctx context.Context, since time.Time) ([]entity.Order, error)
	CountOrders(ctx context.Context) (int, error)
}

// EventWriter is the slice of *kafka.Writer the order service uses.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// OrderService validates submissions, prices them against the active catalog
// and appends the resulting immutable order record.
type OrderService struct {
	orderRepo  OrderStore
	catalog    *CatalogService
	writer     EventWriter
	offerPrice float64
}

// NewOrderService creates a new instance of OrderService. writer may be nil
// to disable order events.
func NewOrderService(orderRepo OrderStore, catalog *CatalogService, writer EventWriter, offerPrice float64) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		catalog:    catalog,
		writer:     writer,
		offerPrice: offerPrice,
	}
}

// Submit takes one selection per category and returns the persisted order as
// the receipt. Failures never leave partial state: the single store append
// happens only after validation and pricing succeed.
func (s *OrderService) Submit(ctx context.Context, sel entity.Selection) (*entity.Order, error) {
	if sel.Sandwich == "" || sel.Crisps == "" || sel.Snack == "" {
		return nil, &ValidationError{Reason: "missing selection"}
	}

	catalog, err := s.catalog.ActiveCatalog(ctx)
	if err != nil {
		return nil, err
	}

	quote, err := PriceSelection(sel, *catalog, s.offerPrice)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &ValidationError{Reason: fmt.Sprintf("unknown item: %v", err)}
		}
		return nil, err
	}

	if quote.OfferApplied && quote.RegularTotal() < s.offerPrice {
		logger.Warn().Msgf("Offer price %.2f exceeds regular sum %.2f; check catalog prices", s.offerPrice, quote.RegularTotal())
	}

	order := &entity.Order{
		SandwichName:  sel.Sandwich,
		CrispsName:    sel.Crisps,
		SnackName:     sel.Snack,
		SandwichPrice: quote.SandwichPrice,
		CrispsPrice:   quote.CrispsPrice,
		SnackPrice:    quote.SnackPrice,
		TotalPrice:    quote.Total,
		OfferApplied:  quote.OfferApplied,
		Savings:       quote.Savings,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating order")
		return nil, err
	}

	// if env is set to test, return
	if os.Getenv("ENV") == "test" || s.writer == nil {
		return created, nil
	}
	if err := s.publishOrderEvent(ctx, created, "created"); err != nil {
		// Best effort: the receipt contract depends only on the store append.
		logger.Error().Err(err).Msgf("Error publishing event for order %d", created.ID)
	}

	return created, nil
}

// History returns the full order log (oldest first) with summary stats for
// the history page.
func (s *OrderService) History(ctx context.Context) ([]entity.Order, entity.Summary, error) {
	orders, err := s.orderRepo.ListOrders(ctx, time.Time{})
	if err != nil {
		logger.Error().Err(err).Msg("Error listing orders")
		return nil, entity.Summary{}, err
	}
	return orders, Summarize(orders), nil
}

func (s *OrderService) publishOrderEvent(ctx context.Context, order *entity.Order, key string) error {
	orderJSON, err := json.Marshal(order)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-%s-%d", key, order.ID)),
		Value: orderJSON,
	}

	return s.writer.WriteMessages(ctx, msg)
}
