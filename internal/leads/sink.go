package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/encuotas/storefront-backend/pkg/config"
	"github.com/encuotas/storefront-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// Sink forwards captured leads to an external collector.
type Sink interface {
	Forward(ctx context.Context, record *models.LeadRecord) error
}

// sinkPayload is the flattened shape the spreadsheet webhook expects.
type sinkPayload struct {
	Timestamp       string               `json:"timestamp"`
	FirstName       string               `json:"firstName"`
	LastName        string               `json:"lastName"`
	DNI             string               `json:"dni"`
	Email           string               `json:"email"`
	AcceptMarketing bool                 `json:"acceptMarketing"`
	Source          string               `json:"source"`
	ProductsCount   int                  `json:"productsCount"`
	Products        []models.LeadProduct `json:"products"`
	TotalValue      decimal.Decimal      `json:"totalValue"`
}

// HTTPSink posts leads to the configured webhook URL.
type HTTPSink struct {
	url    string
	client *http.Client
}

// NewHTTPSink builds an HTTP sink; when no URL is configured it returns nil
// and the workflow skips forwarding entirely.
func NewHTTPSink(cfg config.LeadSinkConfig) *HTTPSink {
	if cfg.URL == "" {
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPSink{
		url:    cfg.URL,
		client: &http.Client{Timeout: timeout},
	}
}

// Forward posts the flattened lead. Callers treat any returned error as a
// warning; the submission itself already succeeded.
func (s *HTTPSink) Forward(ctx context.Context, record *models.LeadRecord) error {
	body, err := json.Marshal(sinkPayload{
		Timestamp:       record.SubmittedAt.UTC().Format(time.RFC3339),
		FirstName:       record.FirstName,
		LastName:        record.LastName,
		DNI:             record.DNI,
		Email:           record.Email,
		AcceptMarketing: record.AcceptMarketing,
		Source:          record.Source,
		ProductsCount:   record.ProductCount,
		Products:        record.Products,
		TotalValue:      record.TotalValue,
	})
	if err != nil {
		return fmt.Errorf("marshal lead payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build lead sink request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post lead to sink: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("lead sink responded with status %d", resp.StatusCode)
	}
	return nil
}
