package http

import "github.com/nyrazari/storefront/internal/domain"

// cartView is the wire shape of a cart: the stored snapshot plus the derived
// aggregates, computed at response time so they can never go stale.
type cartView struct {
	*domain.Cart
	ItemCount   int   `json:"item_count"`
	TotalAmount int64 `json:"total_amount"`
}

func newCartView(cart *domain.Cart) cartView {
	return cartView{
		Cart:        cart,
		ItemCount:   cart.ItemCount(),
		TotalAmount: cart.TotalAmount(),
	}
}
