package catalog

import "github.com/google/uuid"

// SampleProducts returns the starter catalog inserted on first boot.
func SampleProducts() []*Product {
	return []*Product{
		{
			ID:          uuid.New(),
			Name:        "T Shirt",
			Type:        TypeTShirt,
			Category:    "apparel",
			BasePrice:   699,
			ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=800&h=800&fit=crop",
			Description: "Soft premium cotton t-shirt with custom designs, perfect for events, branding, or personal style",
			Options: Options{
				Colors:     []string{"#FFFFFF", "#000000", "#FF6B6B", "#4ECDC4", "#FFD93D", "#95E1D3", "#6C5CE7", "#FDA7DF"},
				Sizes:      []string{"XS", "S", "M", "L", "XL", "XXL"},
				Fonts:      []string{"Arial", "Times New Roman", "Georgia", "Courier New", "Impact", "Comic Sans MS", "Helvetica", "Verdana"},
				AllowText:  true,
				AllowImage: true,
			},
		},
		{
			ID:          uuid.New(),
			Name:        "Hoodie",
			Type:        TypeHoodie,
			Category:    "apparel",
			BasePrice:   799,
			ImageURL:    "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=800&h=800&fit=crop",
			Description: "Ultra-soft fleece hoodie with custom printing, ideal for teams, brands, or gifts",
			Options: Options{
				Colors:     []string{"#000000", "#1a1a1a", "#4A5568", "#2C5282", "#742A2A", "#2F855A", "#6B46C1"},
				Sizes:      []string{"S", "M", "L", "XL", "XXL", "3XL"},
				Fonts:      []string{"Arial", "Impact", "Georgia", "Courier New", "Helvetica", "Verdana"},
				AllowText:  true,
				AllowImage: true,
			},
		},
		{
			ID:          uuid.New(),
			Name:        "Custom Baseball Cap",
			Type:        TypeCap,
			Category:    "apparel",
			BasePrice:   899,
			ImageURL:    "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?w=800&h=800&fit=crop",
			Description: "Classic baseball cap with embroidered or printed custom designs",
			Options: Options{
				Colors:     []string{"#000000", "#FFFFFF", "#FF0000", "#0000FF", "#00FF00", "#FFD700", "#FF1493"},
				Fonts:      []string{"Arial", "Impact", "Georgia", "Helvetica"},
				AllowText:  true,
				AllowImage: true,
			},
		},
		{
			ID:          uuid.New(),
			Name:        "Engraved Name Chain",
			Type:        TypeChain,
			Category:    "jewelry",
			BasePrice:   499,
			ImageURL:    "https://images.unsplash.com/photo-1599643477877-530eb83abc8e?w=800&h=800&fit=crop",
			Description: "Premium chain necklace with personalized name engraving in your choice of metal",
			Options: Options{
				Colors:         []string{"#FFD700", "#C0C0C0", "#CD7F32", "#E5E4E2"},
				Fonts:          []string{"Script", "Block", "Cursive", "Modern", "Gothic"},
				AllowEngraving: true,
			},
		},
		{
			ID:          uuid.New(),
			Name:        "Custom Pendant Necklace",
			Type:        TypeNecklace,
			Category:    "jewelry",
			BasePrice:   499,
			ImageURL:    "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=800&h=800&fit=crop",
			Description: "Elegant necklace with customizable pendant design and engraving",
			Options: Options{
				Colors:         []string{"#FFD700", "#C0C0C0", "#CD7F32"},
				Fonts:          []string{"Script", "Block", "Cursive", "Modern"},
				AllowEngraving: true,
			},
		},
		{
			ID:          uuid.New(),
			Name:        "Custom Photo Pillow",
			Type:        TypePillow,
			Category:    "home-decor",
			BasePrice:   799,
			ImageURL:    "https://images.unsplash.com/photo-1584100936595-c0654b55a2e2?w=800&h=800&fit=crop",
			Description: "Soft decorative pillow with your favorite photos or designs",
			Options: Options{
				Sizes:      []string{"14x14", "16x16", "18x18", "20x20"},
				Fonts:      []string{"Arial", "Georgia", "Impact"},
				AllowText:  true,
				AllowImage: true,
			},
		},
		{
			ID:          uuid.New(),
			Name:        "Engraved Photo Frame",
			Type:        TypePhotoFrame,
			Category:    "home-decor",
			BasePrice:   699,
			ImageURL:    "https://images.unsplash.com/photo-1513506003901-1e6a229e2d15?w=800&h=800&fit=crop",
			Description: "Wooden photo frame with custom engraving for special memories",
			Options: Options{
				Colors:         []string{"#8B4513", "#000000", "#FFFFFF", "#C0C0C0"},
				Sizes:          []string{"4x6", "5x7", "8x10", "11x14"},
				Fonts:          []string{"Script", "Georgia", "Times New Roman"},
				AllowEngraving: true,
			},
		},
		{
			ID:          uuid.New(),
			Name:        "Personalized Blanket",
			Type:        TypeBlanket,
			Category:    "home-decor",
			BasePrice:   799,
			ImageURL:    "https://images.unsplash.com/photo-1617906050149-3e6441a55db3?w=800&h=800&fit=crop",
			Description: "Cozy fleece blanket with custom photos, text, or patterns",
			Options: Options{
				Sizes:      []string{"50x60", "60x80", "80x90"},
				Fonts:      []string{"Arial", "Georgia", "Script"},
				AllowText:  true,
				AllowImage: true,
			},
		},
		{
			ID:          uuid.New(),
			Name:        "Custom Pet Bowl",
			Type:        TypePetBowl,
			Category:    "pet-accessories",
			BasePrice:   499,
			ImageURL:    "https://images.unsplash.com/photo-1589924691995-400dc9ecc119?w=800&h=800&fit=crop",
			Description: "Stainless steel pet bowl with personalized name and designs",
			Options: Options{
				Colors:    []string{"#C0C0C0", "#FFD700", "#FF6B6B", "#4ECDC4"},
				Sizes:     []string{"Small", "Medium", "Large"},
				Fonts:     []string{"Arial", "Impact", "Georgia"},
				AllowText: true,
			},
		},
		{
			ID:          uuid.New(),
			Name:        "Custom Ceramic Mug",
			Type:        TypeMug,
			Category:    "drinkware",
			BasePrice:   499,
			ImageURL:    "https://images.unsplash.com/photo-1514228742587-6b1558fcca3d?w=800&h=800&fit=crop",
			Description: "Premium ceramic mug with full-color custom designs and text",
			Options: Options{
				Colors:     []string{"#FFFFFF", "#000000", "#FF6B6B", "#4ECDC4", "#FFD93D"},
				Fonts:      []string{"Arial", "Georgia", "Impact", "Comic Sans MS"},
				AllowText:  true,
				AllowImage: true,
			},
		},
		{
			ID:          uuid.New(),
			Name:        "Custom Vinyl Stickers",
			Type:        TypeSticker,
			Category:    "stickers",
			BasePrice:   199,
			ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=800&fit=crop",
			Description: "High-quality vinyl stickers with custom designs, perfect for laptops, water bottles, and more",
			Options: Options{
				Colors:     []string{"#FFFFFF", "#000000", "#FF6B6B", "#4ECDC4", "#FFD93D", "#6C5CE7"},
				Sizes:      []string{"2x2", "3x3", "4x4", "5x5"},
				Fonts:      []string{"Arial", "Impact", "Georgia", "Comic Sans MS", "Script"},
				AllowText:  true,
				AllowImage: true,
			},
		},
		{
			ID:          uuid.New(),
			Name:        "Die-Cut Stickers",
			Type:        TypeSticker,
			Category:    "stickers",
			BasePrice:   249,
			ImageURL:    "https://images.unsplash.com/photo-1606092195730-5d7b9af1efc5?w=800&h=800&fit=crop",
			Description: "Custom shaped die-cut stickers with unique designs and premium vinyl material",
			Options: Options{
				Colors:     []string{"#FFFFFF", "#000000", "#FF6B6B", "#4ECDC4", "#FFD93D"},
				Sizes:      []string{"2x2", "3x3", "4x4"},
				Fonts:      []string{"Arial", "Impact", "Georgia", "Script", "Modern"},
				AllowText:  true,
				AllowImage: true,
			},
		},
		{
			ID:          uuid.New(),
			Name:        "Holographic Stickers",
			Type:        TypeSticker,
			Category:    "stickers",
			BasePrice:   349,
			ImageURL:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=800&fit=crop",
			Description: "Eye-catching holographic stickers that change color with light, perfect for special occasions",
			Options: Options{
				Colors:     []string{"Holographic", "#FFFFFF", "#000000"},
				Sizes:      []string{"2x2", "3x3", "4x4"},
				Fonts:      []string{"Script", "Modern", "Impact"},
				AllowText:  true,
				AllowImage: true,
			},
		},
	}
}
