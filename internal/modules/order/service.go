package order

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ErrInvalidOrder marks a checkout request the client can correct. Handlers
// classify on it; anything else is a server-side failure.
var ErrInvalidOrder = errors.New("invalid order")

// Service defines the order management business logic.
type Service interface {
	// Create validates the line items, checks the client-sent total against
	// the lines, and persists the order with its items.
	Create(ctx context.Context, userID string, req CreateOrderRequest) (*Order, error)

	// Get retrieves a full order with its items.
	Get(ctx context.Context, id string) (*Order, error)

	// ListByUser returns all orders placed by a user.
	ListByUser(ctx context.Context, userID string) ([]*Order, error)
}

type service struct {
	repo Repository
}

// NewService creates a new order service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID string, req CreateOrderRequest) (*Order, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user id: %v", ErrInvalidOrder, err)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: must contain at least one item", ErrInvalidOrder)
	}

	var items []*Item
	var computed float64
	for _, li := range req.Items {
		if li.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0 for product %s", ErrInvalidOrder, li.ProductID)
		}
		if li.Price < 0 {
			return nil, fmt.Errorf("%w: price must be >= 0 for product %s", ErrInvalidOrder, li.ProductID)
		}
		pid, err := uuid.Parse(li.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: bad product id %q: %v", ErrInvalidOrder, li.ProductID, err)
		}
		computed += li.Price * float64(li.Quantity)
		items = append(items, &Item{
			ID:            uuid.New(),
			ProductID:     pid,
			Quantity:      li.Quantity,
			Customization: li.Customization,
			UnitPrice:     li.Price,
		})
	}

	// The client sends its own total; trust it only if it matches the lines.
	if math.Abs(computed-req.Total) > 0.01 {
		return nil, fmt.Errorf("%w: total %.2f does not match line items (%.2f)", ErrInvalidOrder, req.Total, computed)
	}

	o := &Order{
		ID:     uuid.New(),
		UserID: uid,
		Total:  round2(computed),
		Status: StatusPending,
		Items:  items,
	}
	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	return o, nil
}

func (s *service) Get(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.ListOrdersByUser(ctx, userID)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
