package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(rdb *redis.Client) *Service {
	svc := New(Config{
		From:     "noreply@memberdesk.test",
		FromName: "Iron Gym",
		SMTPHost: "smtp.test.com",
		SMTPPort: "587",
		SMTPUser: "test@example.com",
		SMTPPass: "password",
	}, rdb)
	svc.retryDelay = 0
	return svc
}

func TestSend(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.Send(context.Background(), "test", "user@example.com", "User", "Hello", "Test body")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSend_QueueDown(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectLPush(queueKey, `.*`).SetErr(errors.New("connection refused"))

	svc := newTestService(db)

	err := svc.Send(context.Background(), "test", "user@example.com", "User", "Hello", "Test body")
	assert.ErrorContains(t, err, "connection refused")
}

func TestSendPaymentReceipt(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectLPush(queueKey, `.*Payment received - Iron Gym.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.SendPaymentReceipt(context.Background(), Receipt{
		To: "member@example.com", Name: "Asha", TenantName: "Iron Gym", PlanName: "Monthly",
		AmountReceived: "400", PendingDue: "600", PaymentType: "O",
		PaymentDate: time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
		ReceiptURL:  "http://localhost/uploads/T1/users/101/receipt_1.png",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendPaymentReceipt_NoAddress(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := newTestService(db)

	assert.NoError(t, svc.SendPaymentReceipt(context.Background(), Receipt{Name: "Asha"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptBody(t *testing.T) {
	body := receiptBody(Receipt{
		Name: "Asha", TenantName: "Iron Gym", PlanName: "Monthly", AmountReceived: "400",
		PendingDue: "NA", PaymentType: "C", PaymentDate: time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
	})

	assert.Contains(t, body, "Hi Asha")
	assert.Contains(t, body, "Method: Cash")
	assert.Contains(t, body, "Date: 10 Mar 2025, 09:30")
	assert.Contains(t, body, "Pending due: NA")
	assert.NotContains(t, body, "Receipt:")
}

func TestProcessNext_Sends(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := newTestService(db)

	var gotTo []string
	svc.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotTo = to
		assert.Equal(t, "smtp.test.com:587", addr)
		assert.Contains(t, string(msg), "Subject: Hi")
		return nil
	}

	data, _ := json.Marshal(EmailJob{Type: "test", To: "user@example.com", Subject: "Hi", Body: "x"})
	mock.ExpectBRPop(2*time.Second, queueKey).SetVal([]string{queueKey, string(data)})
	mock.ExpectLLen(queueKey).SetVal(0)

	svc.processNext(context.Background())

	assert.Equal(t, []string{"user@example.com"}, gotTo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_RetriesThenFails(t *testing.T) {
	t.Run("requeues below the limit", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		svc := newTestService(db)
		svc.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("smtp down") }

		data, _ := json.Marshal(EmailJob{Type: "test", To: "user@example.com", Tries: 0})
		mock.ExpectBRPop(2*time.Second, queueKey).SetVal([]string{queueKey, string(data)})
		mock.ExpectLLen(queueKey).SetVal(0)
		mock.Regexp().ExpectLPush(queueKey, `.*"tries":1.*`).SetVal(1)

		svc.processNext(context.Background())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("moves to failed queue at the limit", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		svc := newTestService(db)
		svc.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("smtp down") }

		data, _ := json.Marshal(EmailJob{Type: "test", To: "user@example.com", Tries: maxTries - 1})
		mock.ExpectBRPop(2*time.Second, queueKey).SetVal([]string{queueKey, string(data)})
		mock.ExpectLLen(queueKey).SetVal(0)
		mock.Regexp().ExpectLPush(failedQueueKey, `.*smtp down.*`).SetVal(1)

		svc.processNext(context.Background())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectLLen(queueKey).SetVal(4)

	svc := newTestService(db)
	require.Equal(t, int64(4), svc.QueueLength(context.Background()))
}
