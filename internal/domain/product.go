package domain

import (
	"strings"
	"time"
)

// Product represents one sellable item in the catalog.
// Prices are stored in minor currency units (paise).
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"`
	OfferPrice  *int64    `json:"offer_price,omitempty"`
	Stock       int       `json:"stock"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EffectivePrice returns the unit price used for cart lines and totals:
// the offer price when one is set, otherwise the base price.
func (p *Product) EffectivePrice() int64 {
	if p.OfferPrice != nil {
		return *p.OfferPrice
	}
	return p.Price
}

// PrimaryImage returns the first image reference, or "" when the product has none.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Matches reports whether the product matches a search query: case-insensitive
// substring match against name, description, and category, OR-combined.
func (p *Product) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}
