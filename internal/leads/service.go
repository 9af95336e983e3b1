package leads

import (
	"context"
	"regexp"
	"time"

	"github.com/encuotas/storefront-backend/pkg/db/models"
	"github.com/encuotas/storefront-backend/pkg/errors"
	"github.com/encuotas/storefront-backend/pkg/logger"
	"github.com/encuotas/storefront-backend/pkg/metrics"
	"github.com/encuotas/storefront-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// Lead sources. Cart submissions carry every line in the session's cart;
// product submissions carry exactly one product.
const (
	SourceProduct = "product"
	SourceCart    = "cart"
)

var (
	dniPattern   = regexp.MustCompile(`^[0-9]{8}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// SubmitProduct is one product snapshot attached to a submission.
type SubmitProduct struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	Brand        string
	Category     string
	Seller       string
	Installments models.Installments
}

// SubmitInput carries everything needed to capture a lead.
type SubmitInput struct {
	FirstName       string
	LastName        string
	DNI             string
	Email           string
	AcceptMarketing bool
	Source          string
	Products        []SubmitProduct
}

// Result reports the submission outcome. HandoffURL is always populated on
// success, even when persistence or forwarding failed.
type Result struct {
	LeadID             uuid.UUID
	HandoffURL         string
	Message            string
	PersistenceWarning bool
}

// Store persists and pages the append-only lead log.
type Store interface {
	Append(ctx context.Context, record *models.LeadRecord) error
	List(ctx context.Context, limit int, cursor *pagination.Cursor) ([]models.LeadRecord, *pagination.Cursor, error)
}

// Service runs the lead capture workflow and serves the captured log.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*Result, error)
	List(ctx context.Context, params pagination.Params) (*LeadPageDTO, error)
}

type service struct {
	repo    Store
	sink    Sink
	host    string
	number  string
	metrics *metrics.StorefrontMetrics
	logg    *logger.Logger
	now     func() time.Time
}

// NewService wires the lead workflow. host is the WhatsApp link host
// (normally wa.me) and number the digits-only destination; sink may be nil
// when forwarding is not configured.
func NewService(repo Store, sink Sink, host, number string, m *metrics.StorefrontMetrics, logg *logger.Logger) Service {
	return &service{
		repo:    repo,
		sink:    sink,
		host:    host,
		number:  number,
		metrics: m,
		logg:    logg,
		now:     time.Now,
	}
}

func (s *service) Submit(ctx context.Context, input SubmitInput) (*Result, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	submittedAt := s.now()
	record := composeRecord(input, submittedAt)

	// Persistence and forwarding are best effort. The customer still gets
	// their WhatsApp handoff even when the lead log or the sink is down.
	var warnings error
	if err := s.repo.Append(ctx, record); err != nil {
		warnings = multierr.Append(warnings, err)
		s.metrics.IncPersistFailure()
	}

	message := ComposeMessage(messageProducts(input.Products), Contact{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		DNI:       input.DNI,
		Email:     input.Email,
	}, input.Source, submittedAt)
	handoff := HandoffURL(s.host, s.number, message)

	if s.sink != nil {
		if err := s.sink.Forward(ctx, record); err != nil {
			warnings = multierr.Append(warnings, err)
			s.metrics.IncPersistFailure()
		}
	}

	if warnings != nil && s.logg != nil {
		s.logg.Error(ctx, "lead captured with degraded persistence", warnings)
	}
	s.metrics.IncLeadSubmission(input.Source)
	s.metrics.IncHandoff()

	return &Result{
		LeadID:             record.ID,
		HandoffURL:         handoff,
		Message:            message,
		PersistenceWarning: warnings != nil,
	}, nil
}

// List pages the captured lead log newest first. An empty cursor starts from
// the most recent record.
func (s *service) List(ctx context.Context, params pagination.Params) (*LeadPageDTO, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, errors.BadRequest("cursor is not valid")
	}

	records, next, err := s.repo.List(ctx, params.Limit, cursor)
	if err != nil {
		return nil, errors.Dependency("listing lead records", err)
	}

	page := &LeadPageDTO{Leads: make([]LeadDTO, 0, len(records))}
	for i := range records {
		page.Leads = append(page.Leads, newLeadDTO(records[i]))
	}
	if next != nil {
		page.NextCursor = pagination.EncodeCursor(*next)
	}
	return page, nil
}

func validate(input SubmitInput) error {
	if !dniPattern.MatchString(input.DNI) {
		return errors.Validation(errors.ReasonInvalidDNI, "DNI must be exactly 8 digits")
	}
	if !emailPattern.MatchString(input.Email) {
		return errors.Validation(errors.ReasonInvalidEmail, "email address is not valid")
	}
	if input.Source != SourceProduct && input.Source != SourceCart {
		return errors.BadRequest("source must be product or cart")
	}
	if len(input.Products) == 0 {
		return errors.BadRequest("at least one product is required")
	}
	return nil
}

func composeRecord(input SubmitInput, submittedAt time.Time) *models.LeadRecord {
	products := make([]models.LeadProduct, 0, len(input.Products))
	total := decimal.Zero
	for _, p := range input.Products {
		products = append(products, models.LeadProduct{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Brand:    p.Brand,
			Category: p.Category,
			Seller:   p.Seller,
		})
		total = total.Add(p.Price)
	}

	return &models.LeadRecord{
		ID:              uuid.New(),
		SchemaVersion:   models.LeadRecordSchemaVersion,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		DNI:             input.DNI,
		Email:           input.Email,
		AcceptMarketing: input.AcceptMarketing,
		Source:          input.Source,
		ProductCount:    len(products),
		Products:        products,
		TotalValue:      total,
		SubmittedAt:     submittedAt,
	}
}

func messageProducts(products []SubmitProduct) []MessageProduct {
	out := make([]MessageProduct, 0, len(products))
	for _, p := range products {
		out = append(out, MessageProduct{
			Name:           p.Name,
			Price:          p.Price,
			MonthlyPayment: p.Installments.MonthlyPayment,
			Months:         p.Installments.Months,
			Brand:          p.Brand,
			Seller:         p.Seller,
		})
	}
	return out
}
