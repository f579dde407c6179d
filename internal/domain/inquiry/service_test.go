package inquiry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/familysoo/studio-web/internal/pkg/email"
)

type memoryRepo struct {
	mu        sync.Mutex
	inquiries []*Inquiry
	err       error
}

func (m *memoryRepo) Create(ctx context.Context, inquiry *Inquiry) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inquiries = append(m.inquiries, inquiry)
	return nil
}

func (m *memoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, i := range m.inquiries {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, nil
}

func (m *memoryRepo) List(ctx context.Context, limit, offset int) ([]*Inquiry, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inquiries, len(m.inquiries), nil
}

func validRequest() *CreateInquiryRequest {
	return &CreateInquiryRequest{
		Name:           "김하늘",
		Phone:          "010-1234-5678",
		ShootType:      "baby",
		PreferredDate:  "2024-06-01",
		People:         "3",
		Message:        "백일 촬영 문의드립니다.",
		PrivacyConsent: true,
	}
}

func TestSubmitStoresInquiry(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }

	inquiry, err := svc.Submit(context.Background(), validRequest(), "203.0.113.1", "test-agent")

	require.NoError(t, err)
	require.Len(t, repo.inquiries, 1)
	assert.NotEqual(t, uuid.Nil, inquiry.ID)
	assert.Equal(t, StatusNew, inquiry.Status)
	assert.Equal(t, ShootBaby, inquiry.ShootType)
	assert.True(t, inquiry.PreferredDate.Valid)
	assert.Equal(t, "2024-06-01", inquiry.PreferredDate.Time.Format(DateLayout))
	assert.Equal(t, "3", inquiry.People.String)
	assert.False(t, inquiry.Email.Valid)
	assert.Equal(t, "203.0.113.1", inquiry.IPAddress.String)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), inquiry.CreatedAt)
}

func TestSubmitSanitizesFreeText(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo)

	req := validRequest()
	req.Name = "<b>김하늘</b>"
	req.Message = `<script>alert(1)</script>아이 & 부모 <a href="x">링크</a>`

	inquiry, err := svc.Submit(context.Background(), req, "", "")

	require.NoError(t, err)
	assert.Equal(t, "김하늘", inquiry.Name)
	assert.Equal(t, "아이 & 부모 링크", inquiry.Message.String)
	assert.False(t, inquiry.IPAddress.Valid)
}

func TestSubmitRejectsBadDate(t *testing.T) {
	svc := NewService(&memoryRepo{})
	req := validRequest()
	req.PreferredDate = "2024-13-40"

	_, err := svc.Submit(context.Background(), req, "", "")

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestSubmitWrapsRepositoryError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewService(&memoryRepo{err: boom})

	_, err := svc.Submit(context.Background(), validRequest(), "", "")

	assert.ErrorIs(t, err, boom)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(&memoryRepo{})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrInquiryNotFound)
}

func TestLogRepositoryAcceptsEverything(t *testing.T) {
	svc := NewService(NewLogRepository())

	inquiry, err := svc.Submit(context.Background(), validRequest(), "", "")
	require.NoError(t, err)

	items, total, err := svc.List(context.Background(), 0, -1)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)

	_, err = svc.GetByID(context.Background(), inquiry.ID)
	assert.ErrorIs(t, err, ErrInquiryNotFound)
}

func TestToResponse(t *testing.T) {
	svc := NewService(&memoryRepo{})
	req := validRequest()
	req.Email = "sky@example.com"

	inquiry, err := svc.Submit(context.Background(), req, "", "")
	require.NoError(t, err)

	resp := ToResponse(inquiry)
	assert.Equal(t, "sky@example.com", resp.Email)
	assert.Equal(t, "2024-06-01", resp.PreferredDate)
	assert.Equal(t, "baby", resp.ShootType)
	assert.Equal(t, "new", resp.Status)
}

type recordingMailer struct {
	to      string
	notices []email.InquiryNotice
}

func (m *recordingMailer) SendInquiryReceived(to string, notice email.InquiryNotice) {
	m.to = to
	m.notices = append(m.notices, notice)
}

func TestSubmitNotifiesStudio(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewService(&memoryRepo{}).WithNotifier(NewMailNotifier(mailer, "studio@example.com"))

	_, err := svc.Submit(context.Background(), validRequest(), "", "")

	require.NoError(t, err)
	assert.Equal(t, "studio@example.com", mailer.to)
	require.Len(t, mailer.notices, 1)
	assert.Equal(t, "성장앨범", mailer.notices[0].ShootType)
	assert.Equal(t, "2024-06-01", mailer.notices[0].PreferredDate)
	assert.Empty(t, mailer.notices[0].Email)
}

func TestSubmitDoesNotNotifyOnFailure(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewService(&memoryRepo{err: errors.New("down")}).WithNotifier(NewMailNotifier(mailer, "studio@example.com"))

	_, err := svc.Submit(context.Background(), validRequest(), "", "")

	require.Error(t, err)
	assert.Empty(t, mailer.notices)
}
