package order

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo stores orders in memory and can be told to fail mid-create,
// mimicking an item insert blowing up inside the transaction.
type fakeRepo struct {
	orders    map[string]*Order
	createErr error
}

func newFakeRepo() *fakeRepo { return &fakeRepo{orders: map[string]*Order{}} }

func (f *fakeRepo) CreateOrder(_ context.Context, o *Order) error {
	if f.createErr != nil {
		// Transactional path: nothing is persisted on failure.
		return f.createErr
	}
	f.orders[o.ID.String()] = o
	return nil
}

func (f *fakeRepo) GetOrderByID(_ context.Context, id string) (*Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, fmt.Errorf("order not found")
	}
	return o, nil
}

func (f *fakeRepo) ListOrdersByUser(_ context.Context, userID string) ([]*Order, error) {
	var out []*Order
	for _, o := range f.orders {
		if o.UserID.String() == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func validRequest() CreateOrderRequest {
	return CreateOrderRequest{
		Items: []LineItem{
			{ProductID: uuid.NewString(), Quantity: 2, Price: 699,
				Customization: json.RawMessage(`{"color":"#000000","text":"HI"}`)},
			{ProductID: uuid.NewString(), Quantity: 1, Price: 499},
		},
		Total: 2*699 + 499,
	}
}

func TestCreateOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	userID := uuid.NewString()

	o, err := svc.Create(context.Background(), userID, validRequest())
	require.NoError(t, err)
	assert.Equal(t, StatusPending, o.Status)
	assert.InDelta(t, 1897, o.Total, 1e-9)
	require.Len(t, o.Items, 2)
	assert.Equal(t, userID, o.UserID.String())

	stored, err := svc.Get(context.Background(), o.ID.String())
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
}

func TestCreateOrderValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	userID := uuid.NewString()
	ctx := context.Background()

	_, err := svc.Create(ctx, userID, CreateOrderRequest{})
	require.ErrorIs(t, err, ErrInvalidOrder)
	assert.Contains(t, err.Error(), "at least one item")

	req := validRequest()
	req.Items[0].Quantity = 0
	_, err = svc.Create(ctx, userID, req)
	require.ErrorIs(t, err, ErrInvalidOrder)
	assert.Contains(t, err.Error(), "quantity must be > 0")

	req = validRequest()
	req.Items[0].ProductID = "not-a-uuid"
	_, err = svc.Create(ctx, userID, req)
	require.ErrorIs(t, err, ErrInvalidOrder)

	_, err = svc.Create(ctx, "nope", validRequest())
	require.ErrorIs(t, err, ErrInvalidOrder)
	assert.Contains(t, err.Error(), "bad user id")
}

func TestCreateOrderRejectsMismatchedTotal(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	req := validRequest()
	req.Total = 1.00
	_, err := svc.Create(context.Background(), uuid.NewString(), req)
	require.ErrorIs(t, err, ErrInvalidOrder)
	assert.Contains(t, err.Error(), "does not match")
	assert.Empty(t, repo.orders, "nothing persisted on validation failure")
}

func TestCreateOrderIsAllOrNothing(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = fmt.Errorf("insert order_item: connection reset")
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), uuid.NewString(), validRequest())
	require.Error(t, err)
	assert.Empty(t, repo.orders, "a failed item insert leaves no order behind")
}

func TestRepositoryFailureIsNotAClientError(t *testing.T) {
	repo := newFakeRepo()
	// Driver messages can contain validation-sounding words; they still
	// classify as server-side failures.
	repo.createErr = fmt.Errorf(`pq: invalid input syntax for type uuid: "x"`)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), uuid.NewString(), validRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidOrder)
}

func TestListByUserScopesToOwner(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	alice := uuid.NewString()
	bob := uuid.NewString()
	_, err := svc.Create(ctx, alice, validRequest())
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, validRequest())
	require.NoError(t, err)

	orders, err := svc.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, alice, orders[0].UserID.String())
}
