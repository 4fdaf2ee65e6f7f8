package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Customer holds the contact details collected at checkout.
type Customer struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Notes      string `json:"notes,omitempty"`
}

// Order is the payload assembled at checkout: the customer contact fields
// plus a snapshot of the cart and its total at submission time. It is
// ephemeral; nothing persists it after submission.
type Order struct {
	ID          string     `json:"id"`
	Customer    Customer   `json:"customer"`
	Items       []CartItem `json:"items"`
	TotalAmount int64      `json:"total_amount"`
	SubmittedAt time.Time  `json:"submitted_at"`
}

// ProductSummary renders the order lines as a single human-readable string,
// e.g. "Gold Chain Necklace x 2, Vintage Locket x 1".
func (o *Order) ProductSummary() string {
	parts := make([]string, len(o.Items))
	for i, item := range o.Items {
		parts[i] = fmt.Sprintf("%s x %d", item.Name, item.Quantity)
	}
	return strings.Join(parts, ", ")
}

// FormatAmount renders an amount in minor units as a decimal string,
// e.g. 229900 -> "2299.00".
func FormatAmount(amount int64) string {
	whole := amount / 100
	frac := amount % 100
	if frac < 0 {
		frac = -frac
	}
	return strconv.FormatInt(whole, 10) + "." + fmt.Sprintf("%02d", frac)
}
