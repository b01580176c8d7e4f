// file: repository/session_repository.go

package repository

import (
	"context"
	"database/sql"

	"smartcity-portal/logger"
	"smartcity-portal/model"

	"github.com/sirupsen/logrus"
)

// ISessionRepository defines the contract for admin session database operations.
type ISessionRepository interface {
	Create(ctx context.Context, session *model.AdminSession) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*model.AdminSession, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}

// SessionRepository implements ISessionRepository.
type SessionRepository struct {
	DB *sql.DB
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// Create inserts a new admin session record into the database.
func (r *SessionRepository) Create(ctx context.Context, session *model.AdminSession) error {
	log := logger.Log.WithFields(logrus.Fields{
		"admin_id":   session.AdminID,
		"expires_at": session.ExpiresAt,
	})
	log.Info("Executing query to create a new admin session")

	query := `INSERT INTO admin_sessions (admin_id, token_hash, expires_at) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, session.AdminID, session.TokenHash, session.ExpiresAt).Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create admin session query")
		return err
	}
	return nil
}

// GetByTokenHash retrieves a session by the hash of its token.
func (r *SessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*model.AdminSession, error) {
	session := &model.AdminSession{}
	query := `SELECT id, admin_id, token_hash, expires_at, created_at FROM admin_sessions WHERE token_hash = $1`
	err := r.DB.QueryRowContext(ctx, query, tokenHash).Scan(&session.ID, &session.AdminID, &session.TokenHash, &session.ExpiresAt, &session.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).Error("Failed to execute get admin session query")
		}
		return nil, err // sql.ErrNoRows if not found
	}
	return session, nil
}

// DeleteByTokenHash revokes a single session. Deleting an unknown hash is not an error.
func (r *SessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM admin_sessions WHERE token_hash = $1`, tokenHash)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete admin session query")
		return err
	}
	return nil
}
