package assistant

import (
	"context"
	"fmt"
	"strings"
)

// FallbackResponder is the second stage of the assistant: a pure
// keyword-matched response table used when no provider is configured or the
// provider call fails. Deterministic, no I/O.
type FallbackResponder struct{}

// NewFallbackResponder creates the static-table responder.
func NewFallbackResponder() *FallbackResponder { return &FallbackResponder{} }

// keywordReplies is checked in order; the first keyword contained in the
// message wins.
var keywordReplies = []struct {
	keyword string
	reply   string
}{
	{"color", "For bold designs pair a dark base with one accent color, like black with #FF6B6B. For a softer look try #4ECDC4 on white. Keep it to two or three colors."},
	{"font", "Impact and Arial Black work well for short, loud text. Script fonts suit names and engraving. Avoid mixing more than two fonts on one product."},
	{"text", "Keep custom text short and centered. Three to five words read best on apparel; a single name works best for engraving."},
	{"engrav", "Engraved text looks best in Script or Block fonts, fifteen characters or fewer. All-caps names are the classic choice for chains and pendants."},
	{"image", "Upload a high-resolution image (at least 800x800) with the subject centered. Busy backgrounds print poorly on fabric."},
	{"size", "When in doubt size up: prints sit better on M and L apparel. For pillows, 18x18 is the most popular canvas."},
	{"idea", "Popular directions: a minimalist one-line design, a bold typographic print, or a photo-centered layout with a short caption."},
}

const defaultReply = "I can help with design suggestions, color recommendations, fonts, and layout ideas. Tell me what product you're customizing and the look you're after."

// suggestionTable maps product types to canned suggestion text.
var suggestionTable = map[string]string{
	"tshirt":      "1. White tee, black Impact text, centered chest print.\n2. Pastel #95E1D3 base with a small pocket-area graphic.\n3. Full-front photo print with a one-word caption below.",
	"hoodie":      "1. Black hoodie with a high-contrast white chest logo.\n2. Deep navy #2C5282 with a small embroidered-style monogram.\n3. Back-panel photo print, front kept plain.",
	"cap":         "1. Black cap, short word in Impact across the front panel.\n2. Gold #FFD700 text on white for a summer look.\n3. Small centered initials for a subtle finish.",
	"mug":         "1. Wrap-around photo with a short quote on the reverse.\n2. Single bold word facing the drinker.\n3. Two-tone: colored interior matched to the design accent.",
	"pillow":      "1. Single centered photo with a thin border.\n2. Collage of three photos in a row.\n3. Name in Georgia with a small date underneath.",
	"blanket":     "1. Photo grid with alternating solid squares.\n2. One large centered image with a script name.\n3. Repeating initial pattern in two colors.",
	"chain":       "1. First name in Script, gold finish.\n2. All-caps surname in Block, silver.\n3. A short word like LOVE in Cursive, rose gold.",
	"necklace":    "1. Single initial pendant in Modern.\n2. A name under ten characters in Script.\n3. Matching pair with complementary engravings.",
	"photo-frame": "1. Names and a date in Script along the lower edge.\n2. A short quote in Georgia on the top rail.\n3. Coordinates of a meaningful place.",
	"pet-bowl":    "1. Pet name in Impact, high contrast against the bowl color.\n2. Name plus a small paw motif.\n3. Matching pair with FOOD and WATER labels.",
	"sticker":     "1. Die-cut around a bold word.\n2. Photo sticker with a thick white border.\n3. Minimal line-art with a single accent color.",
}

func (f *FallbackResponder) Chat(_ context.Context, message string) (string, error) {
	lower := strings.ToLower(message)
	for _, entry := range keywordReplies {
		if strings.Contains(lower, entry.keyword) {
			return entry.reply, nil
		}
	}
	return defaultReply, nil
}

func (f *FallbackResponder) Suggest(_ context.Context, productType string) (string, error) {
	if text, ok := suggestionTable[strings.ToLower(productType)]; ok {
		return text, nil
	}
	return "1. Keep the design minimal with one focal element.\n2. Use at most two colors from the product's palette.\n3. Short text reads best: five words or fewer.", nil
}

func (f *FallbackResponder) CreateDesign(_ context.Context, req CreateDesignRequest) (string, error) {
	style := req.Style
	if style == "" {
		style = "minimalist"
	}
	msg := fmt.Sprintf("A %s design for your %s: clean layout, centered focal element", style, req.ProductType)
	if len(req.Colors) > 0 {
		msg += ", built on " + strings.Join(req.Colors, ", ")
	}
	if req.Requirements != "" {
		msg += ", tailored to: " + req.Requirements
	}
	return msg + ".", nil
}
