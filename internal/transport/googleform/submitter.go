// Package googleform submits orders to a Google Forms endpoint as
// form-encoded POSTs. The endpoint accepts submissions without
// authentication and returns no machine-readable outcome, so delivery is
// fire-and-forget: a submission counts as sent once the POST went out on
// the wire, regardless of response status.
package googleform

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/nyrazari/storefront/internal/domain"
	apperrors "github.com/nyrazari/storefront/pkg/errors"
)

// DefaultFormURL is the formResponse endpoint of the order intake form.
const DefaultFormURL = "https://docs.google.com/forms/d/e/1FAIpQLSdDegYUC3MKGv3_-gmbTBRaA-MXymivkiux1F1VxD3VeGFvfQ/formResponse"

// Form field ids, one per question on the intake form.
const (
	fieldName       = "entry.325378209"
	fieldEmail      = "entry.629337478"
	fieldPhone      = "entry.2035764280"
	fieldAddress    = "entry.2123084750"
	fieldCity       = "entry.528762314"
	fieldPostalCode = "entry.452850288"
	fieldNotes      = "entry.288149772"
	fieldTotal      = "entry.1925755690"
	fieldProducts   = "entry.1943477887"
)

// HTTPDoer executes an outbound HTTP request.
type HTTPDoer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Submitter posts order payloads to the form endpoint.
type Submitter struct {
	formURL string
	client  HTTPDoer
	logger  *slog.Logger
}

// NewSubmitter creates a submitter for the given form endpoint. An empty
// formURL selects DefaultFormURL.
func NewSubmitter(formURL string, client HTTPDoer, logger *slog.Logger) *Submitter {
	if formURL == "" {
		formURL = DefaultFormURL
	}
	return &Submitter{
		formURL: formURL,
		client:  client,
		logger:  logger,
	}
}

// Submit encodes the order as form fields and POSTs it. The response status
// and body carry no usable signal and are discarded; only a transport-level
// failure is reported, as a submission-failed error.
func (s *Submitter) Submit(ctx context.Context, order *domain.Order) error {
	form := url.Values{}
	form.Set(fieldName, order.Customer.Name)
	form.Set(fieldEmail, order.Customer.Email)
	form.Set(fieldPhone, order.Customer.Phone)
	form.Set(fieldAddress, order.Customer.Address)
	form.Set(fieldCity, order.Customer.City)
	form.Set(fieldPostalCode, order.Customer.PostalCode)
	form.Set(fieldNotes, order.Customer.Notes)
	form.Set(fieldTotal, domain.FormatAmount(order.TotalAmount))
	form.Set(fieldProducts, order.ProductSummary())

	req, err := http.NewRequest(http.MethodPost, s.formURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create form request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return apperrors.SubmissionFailed(err)
	}
	defer resp.Body.Close()

	s.logger.InfoContext(ctx, "order posted to form endpoint",
		slog.String("order_id", order.ID),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}
