package inquiry

import (
	"context"

	"github.com/familysoo/studio-web/internal/pkg/email"
)

// Notifier is told about every stored inquiry. It must not block.
type Notifier interface {
	InquiryReceived(ctx context.Context, inquiry *Inquiry)
}

// Mailer queues the studio-facing notice.
type Mailer interface {
	SendInquiryReceived(to string, notice email.InquiryNotice)
}

// MailNotifier forwards inquiries to the studio inbox.
type MailNotifier struct {
	mailer Mailer
	to     string
}

// NewMailNotifier creates a notifier that mails to.
func NewMailNotifier(mailer Mailer, to string) *MailNotifier {
	return &MailNotifier{mailer: mailer, to: to}
}

// InquiryReceived implements Notifier.
func (n *MailNotifier) InquiryReceived(ctx context.Context, inquiry *Inquiry) {
	notice := email.InquiryNotice{
		Name:       inquiry.Name,
		Phone:      inquiry.Phone,
		Email:      inquiry.Email.String,
		ShootType:  inquiry.ShootType.Label(),
		People:     inquiry.People.String,
		Message:    inquiry.Message.String,
		ReceivedAt: inquiry.CreatedAt,
	}
	if inquiry.PreferredDate.Valid {
		notice.PreferredDate = inquiry.PreferredDate.Time.Format(DateLayout)
	}
	n.mailer.SendInquiryReceived(n.to, notice)
}
