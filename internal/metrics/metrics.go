package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memberdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "memberdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PaymentsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memberdesk_payments_recorded_total",
			Help: "Total number of accepted payments",
		},
		[]string{"payment_type"},
	)

	PaymentAmountTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memberdesk_payment_amount_total",
			Help: "Sum of accepted payment amounts",
		},
		[]string{"payment_type"},
	)

	PaymentRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memberdesk_payment_rejections_total",
			Help: "Total number of rejected payments",
		},
		[]string{"reason"},
	)

	AttendanceEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memberdesk_attendance_events_total",
			Help: "Total number of attendance transitions",
		},
		[]string{"event", "result"},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memberdesk_uploads_total",
			Help: "Total number of staged uploads",
		},
		[]string{"status"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memberdesk_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "memberdesk_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memberdesk_events_published_total",
			Help: "Total number of domain events published",
		},
		[]string{"routing_key", "status"},
	)

	ActiveSubscriptions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "memberdesk_active_subscriptions",
			Help: "Number of active subscription mappings",
		},
		[]string{"tenant_id"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordPayment(paymentType string, amount float64) {
	PaymentsRecordedTotal.WithLabelValues(paymentType).Inc()
	PaymentAmountTotal.WithLabelValues(paymentType).Add(amount)
}

func RecordPaymentRejection(reason string) {
	PaymentRejectionsTotal.WithLabelValues(reason).Inc()
}

func RecordAttendance(event, result string) {
	AttendanceEventsTotal.WithLabelValues(event, result).Inc()
}

func RecordUpload(status string) {
	UploadsTotal.WithLabelValues(status).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordEvent(routingKey, status string) {
	EventsPublishedTotal.WithLabelValues(routingKey, status).Inc()
}

// SetActiveSubscriptions replaces the per-tenant gauge with counts.
func SetActiveSubscriptions(counts map[string]int) {
	ActiveSubscriptions.Reset()
	for tenantID, n := range counts {
		ActiveSubscriptions.WithLabelValues(tenantID).Set(float64(n))
	}
}
