package inquiry

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// ShootType is the kind of session the customer asks about.
type ShootType string

const (
	ShootFamily ShootType = "family"
	ShootRemind ShootType = "remind"
	ShootBaby   ShootType = "baby"
)

// Label returns the Korean display name of the shoot type.
func (t ShootType) Label() string {
	switch t {
	case ShootFamily:
		return "가족사진"
	case ShootRemind:
		return "리마인드웨딩"
	case ShootBaby:
		return "성장앨범"
	}
	return string(t)
}

// Status of an inquiry
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusBooked    Status = "booked"
	StatusClosed    Status = "closed"
)

// Inquiry is a contact-form submission.
type Inquiry struct {
	ID             uuid.UUID      `db:"id"`
	Name           string         `db:"name"`
	Phone          string         `db:"phone"`
	Email          sql.NullString `db:"email"`
	ShootType      ShootType      `db:"shoot_type"`
	PreferredDate  sql.NullTime   `db:"preferred_date"`
	People         sql.NullString `db:"people"`
	Message        sql.NullString `db:"message"`
	PrivacyConsent bool           `db:"privacy_consent"`
	Status         Status         `db:"status"`
	IPAddress      sql.NullString `db:"ip_address"`
	UserAgent      sql.NullString `db:"user_agent"`
	CreatedAt      time.Time      `db:"created_at"`
}
