package payment

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"memberdesk/internal/api"
	"memberdesk/internal/email"
	"memberdesk/internal/events"
	"memberdesk/internal/logger"
	"memberdesk/internal/metrics"
	"memberdesk/internal/subscription"
	"memberdesk/internal/upload"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFound = fmt.Errorf("payment record %w", api.ErrNotFound)
	ErrMappingNotFound = fmt.Errorf("user subscription mapping %w", api.ErrNotFound)
	ErrExceedsPending  = api.Invalid("AmountReceived", "amount received exceeds pending amount")
	ErrReceiptRequired = api.Invalid(ReceiptField, "imagePath is required when PaymentType is 'O'")
)

// Notifier tells a member about a recorded payment.
type Notifier interface {
	SendPaymentReceipt(ctx context.Context, r email.Receipt) error
}

type Service interface {
	Record(ctx context.Context, tenantID string, req RecordRequest, receipt *multipart.FileHeader) (*Payment, error)
	List(ctx context.Context, tenantID string, filter ListFilter) ([]Payment, error)
	Get(ctx context.Context, tenantID string, id int) (*Payment, error)
	Update(ctx context.Context, tenantID string, id int, patch PaymentPatch) (*Payment, error)
	Delete(ctx context.Context, tenantID string, id int) error
	Export(ctx context.Context, tenantID string) (*Export, error)
}

type service struct {
	repo      Repository
	storage   *upload.Storage
	publisher events.Publisher
	notifier  Notifier
	loc       *time.Location
	now       func() time.Time
}

func NewService(repo Repository, storage *upload.Storage, publisher events.Publisher, notifier Notifier, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	if notifier == nil {
		notifier = email.Disabled{}
	}
	return &service{
		repo:      repo,
		storage:   storage,
		publisher: publisher,
		notifier:  notifier,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *service) clock() time.Time {
	return s.now().In(s.loc)
}

// Record runs the admission check for a new payment. A receipt is staged
// before the transaction, promoted into the member's folder once the amount
// is admitted, and removed again if the insert or commit fails.
func (s *service) Record(ctx context.Context, tenantID string, req RecordRequest, receipt *multipart.FileHeader) (*Payment, error) {
	amount, err := parseAmount(req.AmountReceived)
	if err != nil {
		return nil, err
	}
	if req.PaymentType == TypeOnline && receipt == nil {
		metrics.RecordPaymentRejection("missing_receipt")
		return nil, ErrReceiptRequired
	}

	now := s.clock()
	paymentDate := now
	if req.PaymentDate != "" {
		if paymentDate, err = s.parsePaymentDate(req.PaymentDate); err != nil {
			return nil, err
		}
	}

	p := &Payment{
		TenantID:         tenantID,
		UserID:           req.UserID,
		MappingID:        req.MappingID,
		TransactionRefID: optional(req.TransactionRefID),
		AmountReceived:   amount,
		PaymentType:      req.PaymentType,
		PaymentDate:      paymentDate,
		CreatedBy:        optional(req.CreatedBy),
		CreatedDate:      now,
	}

	staging := s.storage.NewStaging()
	defer staging.Discard()

	if err := staging.Add(ReceiptField, receipt); err != nil {
		return nil, err
	}

	attach := func(p *Payment) error {
		if !staging.Has(ReceiptField) {
			return nil
		}
		url, err := staging.Promote(tenantID, p.UserID, ReceiptField, "receipt_"+uuid.NewString())
		if err != nil {
			return err
		}
		p.ImagePath = &url
		return nil
	}

	remaining, err := s.repo.Record(ctx, p, attach)
	if err != nil {
		staging.Rollback()
		if errors.Is(err, ErrExceedsPending) {
			metrics.RecordPaymentRejection("exceeds_pending")
		}
		return nil, err
	}

	amountF, _ := p.AmountReceived.Float64()
	metrics.RecordPayment(p.PaymentType, amountF)
	logger.Info("payment recorded",
		"tenant_id", tenantID,
		"payment_id", p.ID,
		"mapping_id", p.MappingID,
		"amount", p.AmountReceived.String(),
		"payment_type", p.PaymentType,
	)

	pendingDue := pendingDue(remaining)
	events.Emit(ctx, s.publisher, events.PaymentRecorded, tenantID, events.PaymentRecordedData{
		PaymentID:      p.ID,
		UserID:         p.UserID,
		MappingID:      p.MappingID,
		AmountReceived: p.AmountReceived.String(),
		PaymentType:    p.PaymentType,
		PendingDue:     pendingDue,
		PaymentDate:    p.PaymentDate,
	})
	s.sendReceipt(ctx, p, pendingDue)

	return p, nil
}

func (s *service) sendReceipt(ctx context.Context, p *Payment, pendingDue string) {
	d, err := s.repo.ReceiptDetails(ctx, p.TenantID, p.ID)
	if err != nil {
		logger.Warn("receipt email skipped", "payment_id", p.ID, "error", err)
		return
	}

	r := email.Receipt{
		To:             d.MemberEmail,
		Name:           d.MemberName,
		TenantName:     d.TenantName,
		PlanName:       d.PlanName,
		AmountReceived: p.AmountReceived.String(),
		PendingDue:     pendingDue,
		PaymentType:    p.PaymentType,
		PaymentDate:    p.PaymentDate,
	}
	if p.ImagePath != nil {
		r.ReceiptURL = *p.ImagePath
	}
	if err := s.notifier.SendPaymentReceipt(ctx, r); err != nil {
		logger.Warn("receipt email not queued", "payment_id", p.ID, "error", err)
	}
}

func (s *service) List(ctx context.Context, tenantID string, filter ListFilter) ([]Payment, error) {
	return s.repo.List(ctx, tenantID, filter)
}

func (s *service) Get(ctx context.Context, tenantID string, id int) (*Payment, error) {
	return s.repo.GetByID(ctx, tenantID, id)
}

func (s *service) Update(ctx context.Context, tenantID string, id int, patch PaymentPatch) (*Payment, error) {
	if patch.AmountReceived != nil {
		if err := validateAmount(*patch.AmountReceived); err != nil {
			return nil, err
		}
	}

	var paymentDate *time.Time
	if patch.PaymentDate != nil {
		d, err := s.parsePaymentDate(*patch.PaymentDate)
		if err != nil {
			return nil, err
		}
		paymentDate = &d
	}

	p, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(p, paymentDate)
	if p.PaymentType == TypeOnline && p.ImagePath == nil {
		return nil, ErrReceiptRequired
	}
	now := s.clock()
	p.UpdatedDate = &now

	if _, err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, ErrExceedsPending) {
			metrics.RecordPaymentRejection("exceeds_pending")
		}
		return nil, err
	}
	return p, nil
}

// Delete removes the payment and then its receipt file.
func (s *service) Delete(ctx context.Context, tenantID string, id int) error {
	p, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	if p.ImagePath != nil {
		if err := s.storage.RemoveURL(*p.ImagePath); err != nil {
			logger.Warn("receipt file not removed", "payment_id", id, "path", *p.ImagePath, "error", err)
		}
	}
	return nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, api.Invalid("AmountReceived", "AmountReceived must be a number")
	}
	if err := validateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return api.Invalid("AmountReceived", "AmountReceived must be greater than 0")
	}
	if amount.Exponent() < -2 {
		return api.Invalid("AmountReceived", "AmountReceived allows at most 2 decimal places")
	}
	return nil
}

// parsePaymentDate accepts RFC 3339 or a bare date, which is read as
// midnight in the business timezone.
func (s *service) parsePaymentDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.In(s.loc), nil
	}
	if t, err := time.ParseInLocation(api.DateLayout, v, s.loc); err == nil {
		return t, nil
	}
	return time.Time{}, api.Invalid("PaymentDate", "Invalid Payment Date format")
}

func pendingDue(remaining decimal.Decimal) string {
	if remaining.IsPositive() {
		return remaining.String()
	}
	return subscription.NotApplicable
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
