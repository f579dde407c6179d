package inquiry

import (
	"context"
	"database/sql"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/familysoo/studio-web/internal/pkg/errorhandler"
)

// Service handles inquiry business logic
type Service struct {
	repo     Repository
	notifier Notifier
	policy   *bluemonday.Policy
	now      func() time.Time
}

// NewService creates inquiry service
func NewService(repo Repository) *Service {
	return &Service{
		repo:   repo,
		policy: bluemonday.StrictPolicy(),
		now:    time.Now,
	}
}

// WithNotifier sets the hook called after each stored inquiry.
func (s *Service) WithNotifier(n Notifier) *Service {
	s.notifier = n
	return s
}

// Submit stores a validated request. Free text is stripped of markup first.
func (s *Service) Submit(ctx context.Context, req *CreateInquiryRequest, ip, userAgent string) (*Inquiry, error) {
	inquiry := &Inquiry{
		ID:             uuid.New(),
		Name:           s.sanitize(req.Name),
		Phone:          req.Phone,
		Email:          nullString(req.Email),
		ShootType:      ShootType(req.ShootType),
		People:         nullString(req.People),
		Message:        nullString(s.sanitize(req.Message)),
		PrivacyConsent: req.PrivacyConsent,
		Status:         StatusNew,
		IPAddress:      nullString(ip),
		UserAgent:      nullString(userAgent),
		CreatedAt:      s.now().UTC(),
	}

	if req.PreferredDate != "" {
		d, err := time.Parse(DateLayout, req.PreferredDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		inquiry.PreferredDate = sql.NullTime{Time: d, Valid: true}
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		errorhandler.LogDatabaseError(ctx, "create_inquiry", err)
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	if s.notifier != nil {
		s.notifier.InquiryReceived(ctx, inquiry)
	}

	return inquiry, nil
}

// GetByID returns inquiry by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	inquiry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, ErrInquiryNotFound
	}
	return inquiry, nil
}

// List returns the newest inquiries first
func (s *Service) List(ctx context.Context, limit, offset int) ([]*Inquiry, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

// sanitize strips markup and keeps the remaining text unescaped; pages escape on output.
func (s *Service) sanitize(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
