package database

import (
	"time"

	"digikart/internal/model"

	"github.com/google/uuid"
)

// SeedProducts returns the initial digital-products catalogue, inserted on
// first startup when the products table is empty.
func SeedProducts() []model.Product {
	now := time.Now().UTC()

	return []model.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Professional Logo Design",
			Description: "Get a custom professional logo designed for your brand. Perfect for businesses, startups, and personal projects.",
			Price:       25.0,
			Category:    model.CategoryDesign,
			ImageURL:    "https://images.unsplash.com/photo-1705056509266-c80d38d564e4",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Art Drawings - Photo to Art",
			Description: "Transform your photos into stunning art pieces with various artistic styles available.",
			Price:       45.0,
			Category:    model.CategoryArt,
			ImageURL:    "https://images.pexels.com/photos/6231/marketing-color-colors-wheel.jpg",
			Options: model.Options{
				"styles": []any{
					map[string]any{"name": "Oil Painting", "description": "Timeless, textured, rich colors (Van Gogh, Rembrandt style)"},
					map[string]any{"name": "Vector / Flat Design", "description": "Bold, clean shapes (perfect for logos, apps, infographics)"},
					map[string]any{"name": "Anime / Manga", "description": "Japanese style (Naruto, Studio Ghibli, Demon Slayer)"},
					map[string]any{"name": "Impressionism", "description": "Soft, light brushstrokes (Claude Monet's Water Lilies style)"},
					map[string]any{"name": "Cyberpunk", "description": "Neon, futuristic, dystopian (Blade Runner vibe)"},
				},
			},
			CreatedAt: now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Video Editing - 1 Minute",
			Description: "Professional video editing for short form content, perfect for social media and marketing.",
			Price:       35.0,
			Category:    model.CategoryVideo,
			ImageURL:    "https://images.unsplash.com/photo-1712904284384-4ac912d0c9d8",
			Options:     model.Options{"duration": "1 minute"},
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Video Editing - 5 Minutes",
			Description: "Professional video editing for medium length content, ideal for tutorials and presentations.",
			Price:       75.0,
			Category:    model.CategoryVideo,
			ImageURL:    "https://images.unsplash.com/photo-1712904284384-4ac912d0c9d8",
			Options:     model.Options{"duration": "5 minutes"},
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Video Editing - 20+ Minutes",
			Description: "Professional video editing for long form content, perfect for documentaries and detailed presentations.",
			Price:       120.0,
			Category:    model.CategoryVideo,
			ImageURL:    "https://images.unsplash.com/photo-1712904284384-4ac912d0c9d8",
			Options:     model.Options{"duration": "20+ minutes"},
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Full Photoshop Course",
			Description: "Complete Adobe Photoshop course covering everything from basics to advanced techniques. Perfect for beginners and professionals.",
			Price:       149.99,
			Category:    model.CategoryCourse,
			ImageURL:    "https://images.unsplash.com/photo-1626785774573-4b799315345d",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Full Adobe Premiere Course",
			Description: "Comprehensive Adobe Premiere Pro course for video editing mastery. Learn professional video editing from scratch.",
			Price:       199.99,
			Category:    model.CategoryCourse,
			ImageURL:    "https://images.unsplash.com/photo-1609921212029-bb5a28e60960",
			CreatedAt:   now,
		},
	}
}
