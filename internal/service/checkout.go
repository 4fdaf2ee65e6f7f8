package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nyrazari/storefront/internal/domain"
	apperrors "github.com/nyrazari/storefront/pkg/errors"
	"github.com/nyrazari/storefront/pkg/validator"
)

// OrderSubmitter hands an assembled order to the external transport.
// Submission is fire-and-forget: the transport reports only whether the
// payload could be sent, never whether the order was received and processed.
type OrderSubmitter interface {
	Submit(ctx context.Context, order *domain.Order) error
}

// CheckoutInput holds the customer contact fields collected by the checkout
// form. The validate tags are the declarative field schema: presence,
// length bounds, and email shape.
type CheckoutInput struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Phone      string `json:"phone" validate:"required,min=10,max=20"`
	Address    string `json:"address" validate:"required,min=10,max=500"`
	City       string `json:"city" validate:"required,min=2,max=100"`
	PostalCode string `json:"postal_code" validate:"required,min=4,max=10"`
	Notes      string `json:"notes" validate:"omitempty,max=1000"`
}

// CheckoutService validates contact details, assembles the order payload from
// the session's cart, and hands it to the submitter. The cart is cleared only
// after the payload was sent.
type CheckoutService struct {
	carts     *CartService
	submitter OrderSubmitter
	logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(carts *CartService, submitter OrderSubmitter, logger *slog.Logger) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		submitter: submitter,
		logger:    logger,
	}
}

// Checkout runs the full checkout flow for a session. On validation failure
// it returns a *validator.ValidationError and leaves the cart untouched. On
// transport failure the cart is also left intact so the shopper can retry.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, input CheckoutInput) (*domain.Order, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart for checkout: %w", err)
	}
	if cart.ItemCount() == 0 {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	order := &domain.Order{
		ID: uuid.New().String(),
		Customer: domain.Customer{
			Name:       input.Name,
			Email:      input.Email,
			Phone:      input.Phone,
			Address:    input.Address,
			City:       input.City,
			PostalCode: input.PostalCode,
			Notes:      input.Notes,
		},
		Items:       append([]domain.CartItem(nil), cart.Items...),
		TotalAmount: cart.TotalAmount(),
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.submitter.Submit(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "order submission failed",
			slog.String("session_id", sessionID),
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("submit order: %w", err)
	}

	// Payload was sent; clear the cart. A failed clear is logged but does
	// not undo the submission.
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear cart after checkout",
			slog.String("session_id", sessionID),
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order submitted",
		slog.String("session_id", sessionID),
		slog.String("order_id", order.ID),
		slog.Int("item_count", len(order.Items)),
		slog.Int64("total_amount", order.TotalAmount),
	)

	return order, nil
}
