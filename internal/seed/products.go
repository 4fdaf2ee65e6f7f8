// Package seed holds the hardcoded default catalog the service falls back to
// when no usable snapshot exists in the store.
package seed

import "github.com/nyrazari/storefront/internal/domain"

func offer(v int64) *int64 { return &v }

// Products returns a fresh copy of the default jewelry catalog.
// Prices are in paise.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Silver Antique Set",
			Price:       289900,
			OfferPrice:  offer(229900),
			Images:      []string{"/assets/silver-antique-set1.jpg"},
			Category:    "necklaces",
			Description: "Exquisite 18k white gold eternity ring featuring brilliant-cut diamonds",
			Stock:       5,
		},
		{
			ID:          "2",
			Name:        "Rose Gold Wedding Band",
			Price:       79900,
			Images:      []string{"/assets/ring-rose-gold-band.jpg"},
			Category:    "rings",
			Description: "Classic rose gold wedding band with subtle texture",
			Stock:       15,
		},
		{
			ID:          "3",
			Name:        "Korean Stud",
			Price:       329900,
			OfferPrice:  offer(279900),
			Images:      []string{"/assets/korean-stud1.jpg"},
			Category:    "rings",
			Description: "Art deco inspired ruby ring with diamond accents",
			Stock:       3,
		},
		{
			ID:          "4",
			Name:        "Platinum Solitaire",
			Price:       459900,
			Images:      []string{"/assets/ring-rose-gold-band.jpg"},
			Category:    "rings",
			Description: "Classic platinum solitaire engagement ring",
			Stock:       7,
		},
		{
			ID:          "5",
			Name:        "Moonstone Cocktail Ring",
			Price:       129900,
			OfferPrice:  offer(99900),
			Images:      []string{"/assets/ring-diamond-eternity.jpg"},
			Category:    "rings",
			Description: "Statement moonstone ring in yellow gold setting",
			Stock:       9,
		},
		{
			ID:          "6",
			Name:        "Tanzanite Cluster Ring",
			Price:       229900,
			Images:      []string{"/assets/ring-rose-gold-band.jpg"},
			Category:    "rings",
			Description: "Unique tanzanite cluster design in white gold",
			Stock:       4,
		},
		{
			ID:          "7",
			Name:        "Opal Anniversary Band",
			Price:       159900,
			OfferPrice:  offer(129900),
			Images:      []string{"/assets/ring-diamond-eternity.jpg"},
			Category:    "rings",
			Description: "Delicate opal anniversary band with milgrain details",
			Stock:       8,
		},
		{
			ID:          "8",
			Name:        "Black Diamond Ring",
			Price:       189900,
			Images:      []string{"/assets/ring-rose-gold-band.jpg"},
			Category:    "rings",
			Description: "Modern black diamond ring in rose gold",
			Stock:       6,
		},
		{
			ID:          "9",
			Name:        "Emerald Cut Aquamarine Ring",
			Price:       279900,
			OfferPrice:  offer(239900),
			Images:      []string{"/assets/ring-diamond-eternity.jpg"},
			Category:    "rings",
			Description: "Stunning emerald cut aquamarine with diamond halo",
			Stock:       5,
		},
		{
			ID:          "10",
			Name:        "Vintage Inspired Sapphire Ring",
			Price:       349900,
			Images:      []string{"/assets/ring-rose-gold-band.jpg"},
			Category:    "rings",
			Description: "Blue sapphire ring with vintage filigree work",
			Stock:       3,
		},
		{
			ID:          "11",
			Name:        "Gold Chain Necklace",
			Price:       159900,
			OfferPrice:  offer(129900),
			Images:      []string{"/assets/necklace-gold-chain.jpg"},
			Category:    "necklaces",
			Description: "Luxurious 14k gold chain necklace with adjustable length",
			Stock:       8,
		},
		{
			ID:          "12",
			Name:        "Emerald Pendant Necklace",
			Price:       219900,
			Images:      []string{"/assets/necklace-emerald-pendant.jpg"},
			Category:    "necklaces",
			Description: "Stunning emerald pendant on delicate gold chain",
			Stock:       4,
		},
		{
			ID:          "13",
			Name:        "Diamond Solitaire Pendant",
			Price:       189900,
			OfferPrice:  offer(159900),
			Images:      []string{"/assets/necklace-gold-chain.jpg"},
			Category:    "necklaces",
			Description: "Classic diamond solitaire pendant in white gold",
			Stock:       12,
		},
		{
			ID:          "14",
			Name:        "Pearl Strand Necklace",
			Price:       89900,
			Images:      []string{"/assets/necklace-emerald-pendant.jpg"},
			Category:    "necklaces",
			Description: "Cultured pearl strand with gold clasp",
			Stock:       15,
		},
		{
			ID:          "15",
			Name:        "Layered Gold Chains",
			Price:       69900,
			OfferPrice:  offer(54900),
			Images:      []string{"/assets/necklace-gold-chain.jpg"},
			Category:    "necklaces",
			Description: "Trendy layered gold chain set",
			Stock:       20,
		},
		{
			ID:          "16",
			Name:        "Ruby Heart Pendant",
			Price:       149900,
			Images:      []string{"/assets/necklace-emerald-pendant.jpg"},
			Category:    "necklaces",
			Description: "Romantic ruby heart pendant with diamond accent",
			Stock:       7,
		},
		{
			ID:          "17",
			Name:        "Sapphire Bar Necklace",
			Price:       129900,
			OfferPrice:  offer(109900),
			Images:      []string{"/assets/necklace-gold-chain.jpg"},
			Category:    "necklaces",
			Description: "Modern sapphire bar pendant on delicate chain",
			Stock:       10,
		},
		{
			ID:          "18",
			Name:        "Vintage Locket",
			Price:       79900,
			Images:      []string{"/assets/necklace-emerald-pendant.jpg"},
			Category:    "necklaces",
			Description: "Antique-inspired gold locket with engraving",
			Stock:       6,
		},
		{
			ID:          "19",
			Name:        "Tennis Diamond Necklace",
			Price:       399900,
			OfferPrice:  offer(339900),
			Images:      []string{"/assets/necklace-gold-chain.jpg"},
			Category:    "necklaces",
			Description: "Luxurious tennis diamond necklace",
			Stock:       2,
		},
		{
			ID:          "20",
			Name:        "Turquoise Statement Necklace",
			Price:       119900,
			Images:      []string{"/assets/necklace-emerald-pendant.jpg"},
			Category:    "necklaces",
			Description: "Bold turquoise statement piece in silver",
			Stock:       8,
		},
	}
}
