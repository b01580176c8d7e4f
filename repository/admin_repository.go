package repository

import (
	"context"
	"database/sql"

	"smartcity-portal/logger"
	"smartcity-portal/model"
)

// IAdminRepository defines the contract for admin account storage.
type IAdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	Count(ctx context.Context) (int, error)
}

type AdminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	query := `INSERT INTO admins (name, email, password) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, admin.Name, admin.Email, admin.Password).Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		logger.Log.WithError(err).WithField("email", admin.Email).Error("Failed to execute create admin query")
		return err
	}
	return nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	admin := &model.Admin{}
	query := `SELECT id, name, email, password, created_at FROM admins WHERE LOWER(email) = LOWER($1)`
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.Password, &admin.CreatedAt)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
