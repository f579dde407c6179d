package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []*EmailMessage
}

func (r *recordingSender) Send(ctx context.Context, msg *EmailMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return nil
}

func notice() InquiryNotice {
	return InquiryNotice{
		Name:          "김하늘",
		Phone:         "010-1234-5678",
		Email:         "sky@example.com",
		ShootType:     "성장앨범",
		PreferredDate: "2024-06-01",
		Message:       "<b>백일</b> 촬영 문의",
		ReceivedAt:    time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestSendGridClientPostsMessage(t *testing.T) {
	var got SendGridRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewSendGridClient(SendGridConfig{
		APIKey:    "key",
		FromEmail: "no-reply@familysoo.com",
		FromName:  "Family Soo Studio",
		BaseURL:   server.URL + "/",
	})
	err := client.Send(context.Background(), &EmailMessage{
		To:          "studio@example.com",
		ReplyTo:     "sky@example.com",
		Subject:     "hello",
		TextContent: "plain",
		HTMLContent: "<p>html</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer key", auth)
	assert.Equal(t, "studio@example.com", got.Personalizations[0].To[0].Email)
	require.NotNil(t, got.ReplyTo)
	assert.Equal(t, "sky@example.com", got.ReplyTo.Email)
	require.Len(t, got.Content, 2)
	assert.Equal(t, "text/plain", got.Content[0].Type)
	assert.Equal(t, "text/html", got.Content[1].Type)
}

func TestSendGridClientReturnsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer server.Close()

	client := NewSendGridClient(SendGridConfig{BaseURL: server.URL})
	err := client.Send(context.Background(), &EmailMessage{To: "a@example.com"})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "bad key")
}

func TestSendInquiryReceivedRendersAndDrains(t *testing.T) {
	sender := &recordingSender{}
	svc := NewServiceWithSender(sender)

	svc.SendInquiryReceived("studio@example.com", notice())
	svc.Close()
	svc.Close()

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "studio@example.com", msg.To)
	assert.Equal(t, "sky@example.com", msg.ReplyTo)
	assert.Equal(t, "[상담 문의] 성장앨범 · 김하늘", msg.Subject)
	assert.Contains(t, msg.HTMLContent, "010-1234-5678")
	assert.Contains(t, msg.HTMLContent, "2024-05-01 09:30")
	assert.Contains(t, msg.HTMLContent, "&lt;b&gt;백일&lt;/b&gt;")
	assert.NotContains(t, msg.HTMLContent, "<b>백일")
}

func TestSendSyncUnknownTemplate(t *testing.T) {
	svc := NewServiceWithSender(&recordingSender{})
	defer svc.Close()

	err := svc.SendSync(context.Background(), &QueuedEmail{To: "a@example.com", TemplateName: "missing"})
	assert.ErrorContains(t, err, "template missing not found")
}

func TestOptionalFieldsAreOmitted(t *testing.T) {
	sender := &recordingSender{}
	svc := NewServiceWithSender(sender)
	defer svc.Close()

	n := notice()
	n.Email = ""
	n.People = ""
	err := svc.SendSync(context.Background(), &QueuedEmail{
		To:           "studio@example.com",
		TemplateName: templateInquiryReceived,
		Data:         n,
	})

	require.NoError(t, err)
	assert.NotContains(t, sender.sent[0].HTMLContent, "이메일")
	assert.NotContains(t, sender.sent[0].HTMLContent, "인원")
}

func TestQueueAfterCloseDropsEmail(t *testing.T) {
	sender := &recordingSender{}
	svc := NewServiceWithSender(sender)
	svc.Close()

	assert.NotPanics(t, func() {
		assert.False(t, svc.Queue(&QueuedEmail{To: "late@example.com", TemplateName: templateInquiryReceived, Data: notice()}))
		svc.SendInquiryReceived("late@example.com", notice())
	})
	assert.Empty(t, sender.sent)
}
