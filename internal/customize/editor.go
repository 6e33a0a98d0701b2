package customize

import (
	"fmt"
	"strings"

	"github.com/customcraft/customcraft-backend/internal/modules/catalog"
)

// EditorKind is the closed set of customization experiences. Every product
// type maps onto exactly one of these.
type EditorKind int

const (
	// EditorText customizes with text, color, and size controls.
	EditorText EditorKind = iota
	// EditorImage customizes with an uploaded, positioned image.
	EditorImage
	// EditorEngraving simulates engraved text on a metal plate.
	EditorEngraving
)

func (k EditorKind) String() string {
	switch k {
	case EditorText:
		return "text"
	case EditorImage:
		return "image"
	case EditorEngraving:
		return "engraving"
	}
	return "unknown"
}

// EditorFor routes a product type to its editor. The switch is exhaustive
// over the catalog's closed type set; a type outside it falls back to the
// text editor.
func EditorFor(t catalog.ProductType) EditorKind {
	switch t {
	case catalog.TypeTShirt, catalog.TypeHoodie, catalog.TypeCap,
		catalog.TypeMug, catalog.TypePetBowl, catalog.TypeSticker:
		return EditorText
	case catalog.TypePillow, catalog.TypeBlanket, catalog.TypePhotoFrame:
		return EditorImage
	case catalog.TypeChain, catalog.TypeNecklace:
		return EditorEngraving
	default:
		return EditorText
	}
}

// MaxEngravingChars bounds engraved text length.
const MaxEngravingChars = 15

// ValidateForCart checks a finished edit before it becomes a cart item.
// It never mutates the state.
func ValidateForCart(kind EditorKind, state State) error {
	switch kind {
	case EditorEngraving:
		text := strings.TrimSpace(state.Text)
		if text == "" {
			return fmt.Errorf("please enter a name to engrave")
		}
		if len([]rune(text)) > MaxEngravingChars {
			return fmt.Errorf("name is too long (max %d characters)", MaxEngravingChars)
		}
	case EditorImage:
		if len(state.Image) == 0 {
			return fmt.Errorf("please upload an image first")
		}
	case EditorText:
		// No add-time constraints for the text editor.
	}
	return nil
}

// Gate returns a copy of state with every field the product's options do
// not declare zeroed out, so irrelevant fields cannot influence rendering.
func Gate(opts catalog.Options, state State) State {
	out := state
	if len(opts.Colors) == 0 {
		out.Color = ""
	}
	if len(opts.Sizes) == 0 {
		out.Size = ""
	}
	if !opts.AllowText && !opts.AllowEngraving {
		out.Text = ""
		out.Font = ""
		out.FontSize = 0
		out.TextPosition = nil
	}
	if len(opts.Fonts) == 0 {
		out.Font = ""
	}
	if !opts.AllowImage {
		out.Image = nil
		out.ImagePos = nil
	}
	return out
}
