package inquiry

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format of the preferred date.
const DateLayout = "2006-01-02"

// CreateInquiryRequest for submitting the contact form
type CreateInquiryRequest struct {
	Name           string `json:"name" form:"name" validate:"required,max=100"`
	Phone          string `json:"phone" form:"phone" validate:"required,phone_kr"`
	Email          string `json:"email,omitempty" form:"email" validate:"omitempty,email,max=255"`
	ShootType      string `json:"shoot_type" form:"shoot_type" validate:"required,shoot_type"`
	PreferredDate  string `json:"preferred_date,omitempty" form:"preferred_date" validate:"omitempty,datetime=2006-01-02"`
	People         string `json:"people,omitempty" form:"people" validate:"headcount"`
	Message        string `json:"message,omitempty" form:"message" validate:"max=2000"`
	PrivacyConsent bool   `json:"privacy_consent" form:"privacy_consent" validate:"required"`
}

// FromForm builds a request from an urlencoded contact form.
// A checkbox counts as checked when it is present with any value other than "false".
func FromForm(values url.Values) CreateInquiryRequest {
	consent := values.Get("privacy_consent")
	return CreateInquiryRequest{
		Name:           values.Get("name"),
		Phone:          values.Get("phone"),
		Email:          values.Get("email"),
		ShootType:      values.Get("shoot_type"),
		PreferredDate:  values.Get("preferred_date"),
		People:         values.Get("people"),
		Message:        values.Get("message"),
		PrivacyConsent: consent != "" && consent != "false",
	}
}

// Normalize trims surrounding whitespace from every text field.
func (r *CreateInquiryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.ShootType = strings.TrimSpace(r.ShootType)
	r.PreferredDate = strings.TrimSpace(r.PreferredDate)
	r.People = strings.TrimSpace(r.People)
	r.Message = strings.TrimSpace(r.Message)
}

// InquirySubmittedResponse for public inquiry submission
type InquirySubmittedResponse struct {
	InquiryID uuid.UUID `json:"inquiry_id"`
	Message   string    `json:"message"`
}

// InquiryResponse for listings
type InquiryResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	ShootType     string    `json:"shoot_type"`
	PreferredDate string    `json:"preferred_date,omitempty"`
	People        string    `json:"people,omitempty"`
	Message       string    `json:"message,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     string    `json:"created_at"`
}

// ToResponse converts entity to response
func ToResponse(i *Inquiry) *InquiryResponse {
	resp := &InquiryResponse{
		ID:        i.ID,
		Name:      i.Name,
		Phone:     i.Phone,
		ShootType: string(i.ShootType),
		Status:    string(i.Status),
		CreatedAt: i.CreatedAt.Format(time.RFC3339),
	}

	if i.Email.Valid {
		resp.Email = i.Email.String
	}
	if i.PreferredDate.Valid {
		resp.PreferredDate = i.PreferredDate.Time.Format(DateLayout)
	}
	if i.People.Valid {
		resp.People = i.People.String
	}
	if i.Message.Valid {
		resp.Message = i.Message.String
	}

	return resp
}
