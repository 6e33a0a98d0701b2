// Package cart holds committed customization snapshots pending checkout.
// The store is an explicit object with an injected persistence adapter:
// items are loaded once at construction and written back after every
// mutation. It is used from single-threaded UI event handling and does no
// locking of its own.
package cart

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/customcraft/customcraft-backend/internal/customize"
	"github.com/customcraft/customcraft-backend/internal/modules/catalog"
)

// Item is a frozen snapshot of a customized product. Quantity is the only
// field that may change after creation.
type Item struct {
	ID          string              `json:"id"`
	ProductID   string              `json:"productId"`
	ProductName string              `json:"productName"`
	ProductType catalog.ProductType `json:"productType"`
	BasePrice   float64             `json:"basePrice"`
	Quantity    int                 `json:"quantity"`
	State       customize.State     `json:"customization"`
	Thumbnail   []byte              `json:"thumbnail,omitempty"`
}

// Persistence is the durable storage adapter behind a Store.
type Persistence interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// Store is the cart. All mutations persist before returning.
type Store struct {
	items []Item
	db    Persistence
}

// NewStore creates a cart backed by the given adapter, loading any
// previously saved items.
func NewStore(db Persistence) (*Store, error) {
	items, err := db.Load()
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return &Store{items: items, db: db}, nil
}

// Add validates the edit for its product type and appends a new item with a
// generated id. On validation failure nothing is stored.
func (s *Store) Add(product *catalog.Product, quantity int, state customize.State, thumbnail []byte) (*Item, error) {
	kind := customize.EditorFor(product.Type)
	if err := customize.ValidateForCart(kind, state); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		quantity = 1
	}
	item := Item{
		ID:          uuid.NewString(),
		ProductID:   product.ID.String(),
		ProductName: product.Name,
		ProductType: product.Type,
		BasePrice:   product.BasePrice,
		Quantity:    quantity,
		State:       state,
		Thumbnail:   thumbnail,
	}
	s.items = append(s.items, item)
	if err := s.db.Save(s.items); err != nil {
		// Keep memory and storage in step: an unsaved item must not
		// ride along with the next successful mutation.
		s.items = s.items[:len(s.items)-1]
		return nil, fmt.Errorf("persist cart: %w", err)
	}
	return &item, nil
}

// Remove deletes the item with the given id. Unknown ids are a no-op.
func (s *Store) Remove(id string) error {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return s.db.Save(s.items)
}

// UpdateQuantity replaces an item's quantity. A non-positive quantity
// removes the item entirely.
func (s *Store) UpdateQuantity(id string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(id)
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			break
		}
	}
	return s.db.Save(s.items)
}

// Clear empties the cart.
func (s *Store) Clear() error {
	s.items = nil
	return s.db.Save(nil)
}

// Items returns a copy of the cart contents in insertion order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Total is the sum of base price times quantity across all items.
func (s *Store) Total() float64 {
	var total float64
	for _, item := range s.items {
		total += item.BasePrice * float64(item.Quantity)
	}
	return total
}

// Count is the sum of quantities across all items.
func (s *Store) Count() int {
	var n int
	for _, item := range s.items {
		n += item.Quantity
	}
	return n
}
