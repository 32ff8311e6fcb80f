package model

import "time"

// Product categories served by the catalogue.
const (
	CategoryDesign = "design"
	CategoryArt    = "art"
	CategoryVideo  = "video"
	CategoryCourse = "course"
	CategoryOther  = "other"
)

// Options holds category-specific product attributes, e.g. the set of art
// styles on an art product, or the single style a customer selected.
type Options map[string]any

// Product represents a digital product in the catalogue.
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Category    string    `json:"category" db:"category"`
	ImageURL    string    `json:"image_url,omitempty" db:"image_url"`
	Options     Options   `json:"options,omitempty" db:"options"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
