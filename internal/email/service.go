package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/smtp"
	"time"

	"memberdesk/internal/logger"
	"memberdesk/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey       = "memberdesk:emails"
	failedQueueKey = "memberdesk:emails:failed"
	maxTries       = 3
)

// sendFunc matches smtp.SendMail.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type EmailJob struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Receipt is what a member is told after a payment is recorded.
type Receipt struct {
	To             string
	Name           string
	TenantName     string
	PlanName       string
	AmountReceived string
	PendingDue     string
	PaymentType    string
	PaymentDate    time.Time
	ReceiptURL     string
}

type Config struct {
	From     string
	FromName string
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
}

type Service struct {
	redis      *redis.Client
	cfg        Config
	send       sendFunc
	retryDelay time.Duration
}

func New(cfg Config, rdb *redis.Client) *Service {
	return &Service{
		redis:      rdb,
		cfg:        cfg,
		send:       smtp.SendMail,
		retryDelay: 5 * time.Second,
	}
}

func (s *Service) Send(ctx context.Context, kind, to, name, subject, body string) error {
	job := EmailJob{
		Type:    kind,
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	}
	return s.enqueue(ctx, job)
}

func (s *Service) enqueue(ctx context.Context, job EmailJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal email job: %w", err)
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		metrics.RecordEmail(job.Type, "queue_failed")
		return fmt.Errorf("queue email to %s: %w", job.To, err)
	}

	metrics.RecordEmail(job.Type, "queued")
	logger.Debug("email queued", "type", job.Type, "to", job.To)
	return nil
}

// Start consumes the queue until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	logger.Info("email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			logger.Warn("email queue pop failed", "error", err)
			time.Sleep(time.Second)
		}
		return
	}
	s.updateQueueGauge(ctx)

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Error("bad email job", "error", err)
		return
	}

	job.Tries++
	if err := s.sendNow(job); err != nil {
		logger.Warn("email send failed", "to", job.To, "attempt", job.Tries, "error", err)

		if job.Tries < maxTries {
			time.Sleep(s.retryDelay)
			if err := s.enqueue(ctx, job); err != nil {
				logger.Error("email requeue failed", "to", job.To, "error", err)
			}
			return
		}
		metrics.RecordEmail(job.Type, "failed")
		s.saveFailed(ctx, job, err)
		return
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Info("email sent", "type", job.Type, "to", job.To)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "MIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n"
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.cfg.SMTPUser != "" && s.cfg.SMTPPass != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	}

	addr := s.cfg.SMTPHost + ":" + s.cfg.SMTPPort
	return s.send(addr, auth, s.cfg.From, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(ctx context.Context, job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	if err := s.redis.LPush(ctx, failedQueueKey, string(data)).Err(); err != nil {
		logger.Error("could not store failed email", "to", job.To, "error", err)
		return
	}
	logger.Error("email moved to failed queue", "to", job.To, "tries", job.Tries)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	return length
}

func (s *Service) updateQueueGauge(ctx context.Context) {
	metrics.EmailQueueLength.Set(float64(s.QueueLength(ctx)))
}

func (s *Service) Close() error {
	return s.redis.Close()
}

// SendPaymentReceipt queues the receipt for a recorded payment.
func (s *Service) SendPaymentReceipt(ctx context.Context, r Receipt) error {
	if r.To == "" {
		return nil
	}
	subject := "Payment received - " + r.TenantName
	return s.Send(ctx, "payment_receipt", r.To, r.Name, subject, receiptBody(r))
}

func receiptBody(r Receipt) string {
	method := "Cash"
	if r.PaymentType == "O" {
		method = "Online"
	}

	body := fmt.Sprintf(`Hi %s,

We have received your payment.

Plan: %s
Amount: %s
Method: %s
Date: %s
Pending due: %s
`, r.Name, r.PlanName, r.AmountReceived, method, r.PaymentDate.Format("02 Jan 2006, 15:04"), r.PendingDue)

	if r.ReceiptURL != "" {
		body += "Receipt: " + r.ReceiptURL + "\n"
	}
	return body + "\n- " + r.TenantName + "\n"
}

// Disabled drops every message. It stands in for Service when email is
// switched off.
type Disabled struct{}

func (Disabled) SendPaymentReceipt(ctx context.Context, r Receipt) error {
	return nil
}
