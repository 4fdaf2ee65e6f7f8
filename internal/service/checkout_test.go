package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyrazari/storefront/internal/domain"
	apperrors "github.com/nyrazari/storefront/pkg/errors"
	"github.com/nyrazari/storefront/pkg/validator"
)

// --- Fake submitter ---

type fakeSubmitter struct {
	submitted []*domain.Order
	err       error
}

func (f *fakeSubmitter) Submit(ctx context.Context, order *domain.Order) error {
	if f.err != nil {
		return f.err
	}
	f.submitted = append(f.submitted, order)
	return nil
}

// --- Helpers ---

func newTestCheckout(t *testing.T) (*CheckoutService, *CartService, *fakeSubmitter) {
	t.Helper()
	carts, _ := newTestCart(t)
	sub := &fakeSubmitter{}
	return NewCheckoutService(carts, sub, newTestLogger()), carts, sub
}

func validInput() CheckoutInput {
	return CheckoutInput{
		Name:       "Asha Verma",
		Email:      "asha@example.com",
		Phone:      "9876543210",
		Address:    "14 Marine Drive, Apartment 3B",
		City:       "Mumbai",
		PostalCode: "400001",
	}
}

// --- Checkout ---

func TestCheckout_Succeeds(t *testing.T) {
	svc, carts, sub := newTestCheckout(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "sess-1", ringProduct(), 2)
	require.NoError(t, err)

	order, err := svc.Checkout(ctx, "sess-1", validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "Asha Verma", order.Customer.Name)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(2*79900), order.TotalAmount)
	assert.False(t, order.SubmittedAt.IsZero())

	require.Len(t, sub.submitted, 1)
	assert.Equal(t, order.ID, sub.submitted[0].ID)
}

func TestCheckout_ClearsCartAfterSubmit(t *testing.T) {
	svc, carts, _ := newTestCheckout(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "sess-1", ringProduct(), 1)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "sess-1", validInput())
	require.NoError(t, err)

	cart, err := carts.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCheckout_ValidationFailureLeavesCartIntact(t *testing.T) {
	svc, carts, sub := newTestCheckout(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "sess-1", ringProduct(), 1)
	require.NoError(t, err)

	input := validInput()
	input.Email = "not-an-email"

	_, err = svc.Checkout(ctx, "sess-1", input)
	require.Error(t, err)

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields(), "email")

	assert.Empty(t, sub.submitted)
	cart, err := carts.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCheckout_ValidatesEveryField(t *testing.T) {
	svc, carts, _ := newTestCheckout(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "sess-1", ringProduct(), 1)
	require.NoError(t, err)

	tests := []struct {
		field  string
		mutate func(*CheckoutInput)
	}{
		{"name", func(in *CheckoutInput) { in.Name = "A" }},
		{"email", func(in *CheckoutInput) { in.Email = "" }},
		{"phone", func(in *CheckoutInput) { in.Phone = "12345" }},
		{"address", func(in *CheckoutInput) { in.Address = "short" }},
		{"city", func(in *CheckoutInput) { in.City = "X" }},
		{"postal_code", func(in *CheckoutInput) { in.PostalCode = "12" }},
	}
	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			_, err := svc.Checkout(ctx, "sess-1", input)
			require.Error(t, err)

			var verr *validator.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields(), tc.field)
		})
	}
}

func TestCheckout_NotesAreOptional(t *testing.T) {
	svc, carts, _ := newTestCheckout(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "sess-1", ringProduct(), 1)
	require.NoError(t, err)

	input := validInput()
	input.Notes = "Please gift-wrap"

	order, err := svc.Checkout(ctx, "sess-1", input)
	require.NoError(t, err)
	assert.Equal(t, "Please gift-wrap", order.Customer.Notes)
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _, sub := newTestCheckout(t)

	_, err := svc.Checkout(context.Background(), "sess-1", validInput())
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Empty(t, sub.submitted)
}

func TestCheckout_SubmitFailureLeavesCartIntact(t *testing.T) {
	svc, carts, sub := newTestCheckout(t)
	ctx := context.Background()

	_, err := carts.AddItem(ctx, "sess-1", ringProduct(), 2)
	require.NoError(t, err)

	sub.err = apperrors.SubmissionFailed(errors.New("connection refused"))

	_, err = svc.Checkout(ctx, "sess-1", validInput())
	assert.ErrorIs(t, err, apperrors.ErrSubmissionFailed)

	// The shopper can retry with the same cart.
	cart, err := carts.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCheckout_RequiresSession(t *testing.T) {
	svc, _, _ := newTestCheckout(t)

	_, err := svc.Checkout(context.Background(), "", validInput())
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
