package catalog

import "github.com/quirklo/storefront/internal/core/domain"

var products = []domain.Product{
	{
		ID:          "1",
		Name:        "Neon Dream Tee",
		Price:       39.99,
		Image:       "https://images.pexels.com/photos/8484308/pexels-photo-8484308.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Description: "Bold neon graphic tee with oversized fit. The statement piece your wardrobe needs.",
		Badge:       "trending",
	},
	{
		ID:          "2",
		Name:        "Y2K Butterfly Crop Top",
		Price:       32.99,
		Image:       "https://images.pexels.com/photos/247206/pexels-photo-247206.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Description: "Y2K-inspired crop top with embroidered butterflies. Major throwback energy.",
		Badge:       "new",
	},
	{
		ID:          "3",
		Name:        "Monochrome Cargo Pants",
		Price:       59.99,
		Image:       "https://images.pexels.com/photos/2260628/pexels-photo-2260628.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Description: "Utility-style cargo pants with multiple pockets. Practical but make it fashion.",
		Colors:      []string{"Black", "White"},
	},
	{
		ID:          "4",
		Name:        "Oversized Check Shirt",
		Price:       44.99,
		Image:       "https://images.pexels.com/photos/769749/pexels-photo-769749.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Description: "Classic check pattern with a modern oversized fit. Layer up for maximum style points.",
	},
	{
		ID:          "5",
		Name:        "Abstract Print Hoodie",
		Price:       65.99,
		Image:       "https://images.pexels.com/photos/5368956/pexels-photo-5368956.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Description: "Vibrant abstract prints on a premium cotton hoodie. Art you can wear.",
		Badge:       "almost-gone",
		Colors:      []string{"Neon", "Turquoise", "Pink"},
	},
	{
		ID:          "6",
		Name:        "Platform Chunky Sneakers",
		Price:       79.99,
		Image:       "https://images.pexels.com/photos/267242/pexels-photo-267242.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Description: "Extra height, extra style. These chunky platform sneakers will elevate any outfit.",
	},
	{
		ID:          "7",
		Name:        "Mini Canvas Tote Bag",
		Price:       29.99,
		Image:       "https://images.pexels.com/photos/1204464/pexels-photo-1204464.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Description: "Compact canvas tote with quirky graphic print. Small bag, big personality.",
	},
	{
		ID:          "8",
		Name:        "Retro Bucket Hat",
		Price:       24.99,
		Image:       "https://images.pexels.com/photos/984619/pexels-photo-984619.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Description: "Throwback bucket hat in pastel tones. The perfect finishing touch to any outfit.",
		Badge:       "trending",
	},
}
