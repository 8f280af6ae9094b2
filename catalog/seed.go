package catalog

import "framekart-io/api/models"

// seedProducts returns the compiled-in catalog. Order matters: listing
// endpoints and tie-breaking during sorting preserve this source order.
func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Vincent Chase Retro Rectangle",
			Brand:         "Vincent Chase",
			Price:         1200,
			OriginalPrice: 1500,
			Images: []string{
				"https://ext.same-assets.com/2368309368/4236837394.jpeg",
				"https://ext.same-assets.com/2368309368/2828971850.jpeg",
			},
			Category:     models.CategoryEyeglasses,
			FrameShape:   models.FrameShapeRectangle,
			FrameColor:   "Black",
			Material:     "Acetate",
			Size:         models.FrameSize{Width: 54, Height: 42, Bridge: 18},
			Features:     []string{"Blue Light Protection", "Anti-Glare", "Lightweight"},
			Description:  "Classic rectangle frame with modern aesthetics. Perfect for professional and casual wear.",
			InStock:      true,
			Rating:       4.5,
			ReviewsCount: 324,
			Collection:   "Vincent Chase",
		},
		{
			ID:            "2",
			Name:          "John Jacobs Round Vintage",
			Brand:         "John Jacobs",
			Price:         1800,
			OriginalPrice: 2200,
			Images: []string{
				"https://ext.same-assets.com/2368309368/2828971850.jpeg",
				"https://ext.same-assets.com/2368309368/3717482288.jpeg",
			},
			Category:     models.CategoryEyeglasses,
			FrameShape:   models.FrameShapeRound,
			FrameColor:   "Tortoise",
			Material:     "Metal",
			Size:         models.FrameSize{Width: 50, Height: 48, Bridge: 20},
			Features:     []string{"Vintage Style", "Premium Metal", "Adjustable Nose Pads"},
			Description:  "Timeless round frame with vintage appeal. Handcrafted with premium materials.",
			InStock:      true,
			Rating:       4.7,
			ReviewsCount: 198,
			Collection:   "John Jacobs",
		},
		{
			ID:    "3",
			Name:  "Lenskart Air Wrap Sports",
			Brand: "Lenskart",
			Price: 2500,
			Images: []string{
				"https://ext.same-assets.com/2368309368/4263523015.jpeg",
				"https://ext.same-assets.com/2368309368/3184420008.jpeg",
			},
			Category:     models.CategorySunglasses,
			FrameShape:   models.FrameShapeAviator,
			FrameColor:   "Silver",
			LensColor:    "Mirror Blue",
			Material:     "Titanium",
			Size:         models.FrameSize{Width: 58, Height: 52, Bridge: 16},
			Features:     []string{"UV Protection", "Polarized", "Unbreakable", "Snug Fit"},
			Description:  "High-performance sports sunglasses with advanced wrap technology for active lifestyles.",
			InStock:      true,
			Rating:       4.8,
			ReviewsCount: 456,
			Collection:   "Air Wrap",
		},
		{
			ID:            "4",
			Name:          "Hustlr Blue Light Blockers",
			Brand:         "Hustlr",
			Price:         999,
			OriginalPrice: 1299,
			Images: []string{
				"https://ext.same-assets.com/2368309368/135582018.png",
				"https://ext.same-assets.com/2368309368/1111610242.png",
			},
			Category:     models.CategoryComputerGlasses,
			FrameShape:   models.FrameShapeWayfarer,
			FrameColor:   "Clear Blue",
			Material:     "TR90",
			Size:         models.FrameSize{Width: 52, Height: 44, Bridge: 19},
			Features:     []string{"Blue Light Filter", "Anti-Fatigue", "Lightweight", "Flexible"},
			Description:  "Essential computer glasses for digital professionals. Reduces eye strain and improves focus.",
			InStock:      true,
			Rating:       4.6,
			ReviewsCount: 891,
			Collection:   "Hustlr",
		},
		{
			ID:            "5",
			Name:          "Roman Holiday Cat-Eye",
			Brand:         "Vincent Chase",
			Price:         1650,
			OriginalPrice: 1950,
			Images: []string{
				"https://ext.same-assets.com/2368309368/3717482288.jpeg",
				"https://ext.same-assets.com/2368309368/1341939864.jpeg",
			},
			Category:     models.CategoryEyeglasses,
			FrameShape:   models.FrameShapeCatEye,
			FrameColor:   "Rose Gold",
			Material:     "Metal Acetate Combo",
			Size:         models.FrameSize{Width: 53, Height: 46, Bridge: 17},
			Features:     []string{"Premium Design", "Lightweight", "Comfortable Fit", "Stylish"},
			Description:  "Elegant cat-eye frame inspired by Roman holiday fashion. Perfect for making a statement.",
			InStock:      true,
			Rating:       4.4,
			ReviewsCount: 267,
			Collection:   "Roman Holiday",
		},
		{
			ID:    "6",
			Name:  "Surrealist Hexagonal",
			Brand: "Lenskart",
			Price: 2100,
			Images: []string{
				"https://ext.same-assets.com/2368309368/2870062446.jpeg",
				"https://ext.same-assets.com/2368309368/3450756294.jpeg",
			},
			Category:     models.CategoryEyeglasses,
			FrameShape:   models.FrameShapeHexagonal,
			FrameColor:   "Gradient Purple",
			Material:     "Premium Acetate",
			Size:         models.FrameSize{Width: 55, Height: 47, Bridge: 18},
			Features:     []string{"Unique Shape", "Gradient Colors", "Premium Material", "Artist Inspired"},
			Description:  "Enter a virtual dream with these surrealist-inspired hexagonal frames.",
			InStock:      true,
			Rating:       4.9,
			ReviewsCount: 123,
			Collection:   "Surrealist",
		},
		{
			ID:            "7",
			Name:          "Kids Explorer Frames",
			Brand:         "Lenskart Kids",
			Price:         800,
			OriginalPrice: 1000,
			Images: []string{
				"https://ext.same-assets.com/2368309368/2974312501.jpeg",
				"https://ext.same-assets.com/2368309368/1111610242.png",
			},
			Category:     models.CategoryKidsGlasses,
			FrameShape:   models.FrameShapeRound,
			FrameColor:   "Blue",
			Material:     "Flexible TR90",
			Size:         models.FrameSize{Width: 46, Height: 40, Bridge: 16},
			Features:     []string{"Kid Safe", "Flexible", "Durable", "Fun Colors"},
			Description:  "Safe and durable glasses designed specifically for children with active lifestyles.",
			InStock:      true,
			Rating:       4.7,
			ReviewsCount: 445,
			Collection:   "Kids Collection",
		},
		{
			ID:    "8",
			Name:  "Prism Light Reader",
			Brand: "Lenskart",
			Price: 699,
			Images: []string{
				"https://ext.same-assets.com/2368309368/2721969670.jpeg",
				"https://ext.same-assets.com/2368309368/3761654728.jpeg",
			},
			Category:     models.CategoryReadingGlasses,
			FrameShape:   models.FrameShapeRectangle,
			FrameColor:   "Crystal Clear",
			Material:     "Lightweight Plastic",
			Size:         models.FrameSize{Width: 52, Height: 41, Bridge: 19},
			Features:     []string{"Reading Optimized", "Sharp Vision", "Edgy Design", "Light Weight"},
			Description:  "Sharp, edgy, and light reading glasses with prism technology for enhanced clarity.",
			InStock:      true,
			Rating:       4.5,
			ReviewsCount: 678,
			Collection:   "Prism",
		},
	}
}
