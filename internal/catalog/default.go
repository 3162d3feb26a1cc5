package catalog

import "voiceagents/internal/model"

// Default returns the built-in demo catalog used when no catalog file is
// available.
func Default() *Store {
	return NewStore([]model.CatalogItem{
		{
			ID:          "mug-001",
			Name:        "Stoneware Coffee Mug",
			Description: "Handcrafted ceramic mug perfect for your morning coffee",
			Price:       800,
			Currency:    "INR",
			Category:    "mug",
			Color:       "white",
			Size:        "350ml",
		},
		{
			ID:          "mug-002",
			Name:        "Blue Ceramic Mug",
			Description: "Beautiful blue glazed ceramic mug",
			Price:       650,
			Currency:    "INR",
			Category:    "mug",
			Color:       "blue",
			Size:        "300ml",
		},
		{
			ID:          "tshirt-001",
			Name:        "Cotton T-Shirt",
			Description: "Comfortable 100% cotton t-shirt",
			Price:       1200,
			Currency:    "INR",
			Category:    "clothing",
			Color:       "black",
			Size:        "M",
		},
		{
			ID:          "hoodie-001",
			Name:        "Black Hoodie",
			Description: "Warm and cozy black hoodie",
			Price:       2500,
			Currency:    "INR",
			Category:    "clothing",
			Color:       "black",
			Size:        "L",
		},
		{
			ID:          "hoodie-002",
			Name:        "Gray Hoodie",
			Description: "Comfortable gray pullover hoodie",
			Price:       2200,
			Currency:    "INR",
			Category:    "clothing",
			Color:       "gray",
			Size:        "M",
		},
	})
}
