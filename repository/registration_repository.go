package repository

import (
	"context"
	"database/sql"
	"errors"

	"smartcity-portal/logger"
	"smartcity-portal/model"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// ErrDuplicateEmail is returned when an insert violates the unique email index.
var ErrDuplicateEmail = errors.New("email already registered")

const uniqueViolation = "23505"

const registrationColumns = `id, account_type, email, phone, password, status,
	first_name, last_name, gender, nin_number, address,
	business_name, business_type, cac_number, business_location,
	created_at, decided_at`

// IRegistrationRepository defines the contract for the pending-approval store.
type IRegistrationRepository interface {
	Create(ctx context.Context, reg *model.Registration) error
	GetByID(ctx context.Context, id string) (*model.Registration, error)
	GetByEmail(ctx context.Context, email string) (*model.Registration, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListPending(ctx context.Context) ([]*model.Registration, error)
	UpdateStatus(ctx context.Context, id string, status model.RegistrationStatus) (bool, error)
}

// RegistrationRepository implements IRegistrationRepository on PostgreSQL.
type RegistrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) *RegistrationRepository {
	return &RegistrationRepository{DB: db}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRegistration(row rowScanner) (*model.Registration, error) {
	var (
		reg                                               model.Registration
		firstName, lastName, gender, nin, address         sql.NullString
		businessName, businessType, cac, businessLocation sql.NullString
		decidedAt                                         sql.NullTime
	)
	err := row.Scan(&reg.ID, &reg.AccountType, &reg.Email, &reg.Phone, &reg.Password, &reg.Status,
		&firstName, &lastName, &gender, &nin, &address,
		&businessName, &businessType, &cac, &businessLocation,
		&reg.CreatedAt, &decidedAt)
	if err != nil {
		return nil, err
	}
	reg.FirstName, reg.LastName, reg.Gender = firstName.String, lastName.String, gender.String
	reg.NINNumber, reg.Address = nin.String, address.String
	reg.BusinessName, reg.BusinessType = businessName.String, businessType.String
	reg.CACNumber, reg.BusinessLocation = cac.String, businessLocation.String
	if decidedAt.Valid {
		t := decidedAt.Time
		reg.DecidedAt = &t
	}
	return &reg, nil
}

// Create inserts a new registration. Status and CreatedAt are filled in from the database.
func (r *RegistrationRepository) Create(ctx context.Context, reg *model.Registration) error {
	log := logger.Log.WithFields(logrus.Fields{
		"registration_id": reg.ID,
		"account_type":    reg.AccountType,
	})
	log.Info("Executing query to create a new registration")

	query := `INSERT INTO registrations (id, account_type, email, phone, password,
		first_name, last_name, gender, nin_number, address,
		business_name, business_type, cac_number, business_location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING status, created_at`
	err := r.DB.QueryRowContext(ctx, query,
		reg.ID, reg.AccountType, reg.Email, reg.Phone, reg.Password,
		nullString(reg.FirstName), nullString(reg.LastName), nullString(reg.Gender),
		nullString(reg.NINNumber), nullString(reg.Address),
		nullString(reg.BusinessName), nullString(reg.BusinessType),
		nullString(reg.CACNumber), nullString(reg.BusinessLocation),
	).Scan(&reg.Status, &reg.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		log.WithError(err).Error("Failed to execute create registration query")
		return err
	}
	return nil
}

// GetByID returns sql.ErrNoRows when the registration does not exist.
func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*model.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, id))
	if err != nil && err != sql.ErrNoRows {
		logger.Log.WithError(err).WithField("registration_id", id).Error("Failed to get registration by ID")
	}
	return reg, err
}

// GetByEmail matches the email case-insensitively.
func (r *RegistrationRepository) GetByEmail(ctx context.Context, email string) (*model.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE LOWER(email) = LOWER($1)`
	reg, err := scanRegistration(r.DB.QueryRowContext(ctx, query, email))
	if err != nil && err != sql.ErrNoRows {
		logger.Log.WithError(err).Error("Failed to get registration by email")
	}
	return reg, err
}

func (r *RegistrationRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM registrations WHERE LOWER(email) = LOWER($1))`
	if err := r.DB.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		logger.Log.WithError(err).Error("Failed to check registration email")
		return false, err
	}
	return exists, nil
}

// ListPending returns pending registrations, oldest first.
func (r *RegistrationRepository) ListPending(ctx context.Context) ([]*model.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE status = $1 ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, model.StatusPending)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for pending registrations")
		return nil, err
	}
	defer rows.Close()

	registrations := []*model.Registration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to scan registration row")
			return nil, err
		}
		registrations = append(registrations, reg)
	}
	return registrations, rows.Err()
}

// UpdateStatus moves a pending registration to status. It reports false when
// no pending row with that id exists, so a decision is applied at most once.
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, status model.RegistrationStatus) (bool, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"registration_id": id,
		"status":          status,
	})
	log.Info("Executing query to update registration status")

	query := `UPDATE registrations SET status = $1, decided_at = NOW() WHERE id = $2 AND status = $3`
	res, err := r.DB.ExecContext(ctx, query, status, id, model.StatusPending)
	if err != nil {
		log.WithError(err).Error("Failed to execute update registration status query")
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
