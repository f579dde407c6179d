package inquiry

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/familysoo/studio-web/internal/pkg/logger"
)

//go:embed schema.sql
var schema string

// Repository defines inquiry data access
type Repository interface {
	Create(ctx context.Context, inquiry *Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error)
	List(ctx context.Context, limit, offset int) ([]*Inquiry, int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates inquiry repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// EnsureSchema creates the inquiries table when it does not exist.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (r *repository) Create(ctx context.Context, inquiry *Inquiry) error {
	query := `
		INSERT INTO inquiries (
			id, name, phone, email, shoot_type, preferred_date, people,
			message, privacy_consent, status, ip_address, user_agent, created_at
		) VALUES (
			:id, :name, :phone, :email, :shoot_type, :preferred_date, :people,
			:message, :privacy_consent, :status, :ip_address, :user_agent, :created_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, inquiry)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	query := `SELECT * FROM inquiries WHERE id = $1`
	var inquiry Inquiry
	err := r.db.GetContext(ctx, &inquiry, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]*Inquiry, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM inquiries`); err != nil {
		return nil, 0, err
	}

	var inquiries []*Inquiry
	query := `SELECT * FROM inquiries ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	if err := r.db.SelectContext(ctx, &inquiries, query, limit, offset); err != nil {
		return nil, 0, err
	}
	return inquiries, total, nil
}

// logRepository records inquiries in the log when no database is configured.
type logRepository struct{}

// NewLogRepository creates a repository that only logs submissions
func NewLogRepository() Repository {
	return logRepository{}
}

func (logRepository) Create(ctx context.Context, inquiry *Inquiry) error {
	logger.FromContext(ctx).Info().
		Str("inquiry_id", inquiry.ID.String()).
		Str("name", inquiry.Name).
		Str("phone", inquiry.Phone).
		Str("shoot_type", string(inquiry.ShootType)).
		Str("preferred_date", formatDate(inquiry.PreferredDate)).
		Str("people", inquiry.People.String).
		Msg("Inquiry received (no database configured)")
	return nil
}

func (logRepository) GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	return nil, nil
}

func (logRepository) List(ctx context.Context, limit, offset int) ([]*Inquiry, int, error) {
	return nil, 0, nil
}

func formatDate(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(DateLayout)
}
