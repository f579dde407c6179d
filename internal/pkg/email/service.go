package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	templateInquiryReceived = "inquiry_received"

	queueSize   = 100
	sendTimeout = 15 * time.Second
)

// Sender delivers a single rendered message.
type Sender interface {
	Send(ctx context.Context, msg *EmailMessage) error
}

// Service renders templated emails and sends them from a background queue.
type Service struct {
	sender       Sender
	templates    map[string]*template.Template
	baseTemplate *template.Template
	queue        chan *QueuedEmail
	wg           sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// QueuedEmail represents an email in the send queue
type QueuedEmail struct {
	To           string
	ToName       string
	ReplyTo      string
	Subject      string
	TemplateName string
	Data         interface{}
}

// InquiryNotice is what the studio sees about a new contact-form submission.
type InquiryNotice struct {
	Name          string
	Phone         string
	Email         string
	ShootType     string
	PreferredDate string
	People        string
	Message       string
	ReceivedAt    time.Time
}

// NewService creates email service backed by SendGrid
func NewService(config SendGridConfig) *Service {
	return NewServiceWithSender(NewSendGridClient(config))
}

// NewServiceWithSender creates email service over any Sender.
func NewServiceWithSender(sender Sender) *Service {
	s := &Service{
		sender:       sender,
		templates:    make(map[string]*template.Template),
		baseTemplate: template.Must(template.New("base").Parse(BaseTemplate)),
		queue:        make(chan *QueuedEmail, queueSize),
	}

	s.templates[templateInquiryReceived] = template.Must(template.New(templateInquiryReceived).Parse(InquiryReceivedTemplate))

	s.wg.Add(1)
	go s.worker()

	return s
}

// worker processes queued emails asynchronously
func (s *Service) worker() {
	defer s.wg.Done()

	for email := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := s.send(ctx, email); err != nil {
			log.Error().Err(err).
				Str("to", email.To).
				Str("template", email.TemplateName).
				Msg("Failed to send email")
		}
		cancel()
	}
}

func (s *Service) render(email *QueuedEmail) (string, error) {
	tmpl, ok := s.templates[email.TemplateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", email.TemplateName)
	}

	var contentBuf bytes.Buffer
	if err := tmpl.Execute(&contentBuf, email.Data); err != nil {
		return "", err
	}

	var htmlBuf bytes.Buffer
	if err := s.baseTemplate.Execute(&htmlBuf, map[string]interface{}{
		"Content": template.HTML(contentBuf.String()),
	}); err != nil {
		return "", err
	}
	return htmlBuf.String(), nil
}

func (s *Service) send(ctx context.Context, email *QueuedEmail) error {
	html, err := s.render(email)
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, &EmailMessage{
		To:          email.To,
		ToName:      email.ToName,
		ReplyTo:     email.ReplyTo,
		Subject:     email.Subject,
		HTMLContent: html,
	})
}

// Queue adds an email to the async send queue. A full queue or a closed
// service drops the email.
func (s *Service) Queue(email *QueuedEmail) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		log.Warn().Str("to", email.To).Msg("Email service closed, dropping email")
		return false
	}
	select {
	case s.queue <- email:
		return true
	default:
		log.Warn().Str("to", email.To).Msg("Email queue full, dropping email")
		return false
	}
}

// SendSync sends an email synchronously (blocking)
func (s *Service) SendSync(ctx context.Context, email *QueuedEmail) error {
	return s.send(ctx, email)
}

// Close drains the queue and stops the worker.
func (s *Service) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// SendInquiryReceived queues the new-inquiry notice for the studio inbox.
// Replies go straight to the customer when they left an address.
func (s *Service) SendInquiryReceived(to string, notice InquiryNotice) {
	s.Queue(&QueuedEmail{
		To:           to,
		ReplyTo:      notice.Email,
		Subject:      fmt.Sprintf("[상담 문의] %s · %s", notice.ShootType, notice.Name),
		TemplateName: templateInquiryReceived,
		Data:         notice,
	})
}
