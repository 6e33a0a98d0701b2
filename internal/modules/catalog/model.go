package catalog

import (
	"time"

	"github.com/google/uuid"
)

// ProductType tags a product with the customization experience it gets.
// The set is closed: the editor routing in internal/customize switches
// exhaustively over these values.
type ProductType string

const (
	TypeTShirt     ProductType = "tshirt"
	TypeHoodie     ProductType = "hoodie"
	TypeCap        ProductType = "cap"
	TypeMug        ProductType = "mug"
	TypePetBowl    ProductType = "pet-bowl"
	TypePillow     ProductType = "pillow"
	TypeBlanket    ProductType = "blanket"
	TypePhotoFrame ProductType = "photo-frame"
	TypeChain      ProductType = "chain"
	TypeNecklace   ProductType = "necklace"
	TypeSticker    ProductType = "sticker"
)

// Options describes which customizations a product declares as editable.
// Nil slices and false booleans mean the corresponding control is absent.
type Options struct {
	Colors         []string `json:"colors,omitempty"`
	Sizes          []string `json:"sizes,omitempty"`
	Fonts          []string `json:"fonts,omitempty"`
	AllowText      bool     `json:"allowText,omitempty"`
	AllowImage     bool     `json:"allowImage,omitempty"`
	AllowEngraving bool     `json:"allowEngraving,omitempty"`
}

// Product is an item in the catalog. Reference data: seeded once, never
// mutated by clients.
type Product struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Type        ProductType `json:"type"`
	Category    string      `json:"category"`
	BasePrice   float64     `json:"base_price"`
	ImageURL    string      `json:"image,omitempty"`
	Description string      `json:"description,omitempty"`
	Options     Options     `json:"customization_options"`
	CreatedAt   time.Time   `json:"created_at"`
}
