package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/okorolev/auth-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, name, email, password_hash, activated, activation_token, reset_token, reset_token_expiry, created_at, updated_at`

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, name, email, password_hash, activated, activation_token, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + userColumns

	var savedUser model.User
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Activated,
		user.ActivationToken, user.CreatedAt, user.UpdatedAt,
	).Scan(scanTargets(&savedUser)...)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return model.User{}, model.ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, "email", email)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, "id", id)
}

func (r *UserRepository) GetByActivationToken(ctx context.Context, token string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE activation_token = $1`
	return r.getOne(ctx, query, "activation token", token)
}

func (r *UserRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE reset_token = $1 AND reset_token_expiry > $2`
	return r.getOne(ctx, query, "reset token", token, now)
}

// Activate marks the user activated and consumes the activation token in a
// single statement so the token cannot be replayed.
func (r *UserRepository) Activate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET activated = TRUE, activation_token = NULL, updated_at = now() WHERE id = $1`
	return r.execOne(ctx, query, "failed to activate user", id)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`
	return r.execOne(ctx, query, "failed to update password", id, passwordHash)
}

func (r *UserRepository) SetResetToken(ctx context.Context, id uuid.UUID, token string, expiry time.Time) error {
	query := `UPDATE users SET reset_token = $2, reset_token_expiry = $3, updated_at = now() WHERE id = $1`
	return r.execOne(ctx, query, "failed to set reset token", id, token, expiry)
}

// ResetPassword replaces the credential and clears the reset token and its
// expiry together, keeping the token/expiry pairing invariant.
func (r *UserRepository) ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, reset_token = NULL, reset_token_expiry = NULL, updated_at = now() WHERE id = $1`
	return r.execOne(ctx, query, "failed to reset password", id, passwordHash)
}

func (r *UserRepository) getOne(ctx context.Context, query, by string, args ...any) (model.User, error) {
	var user model.User
	err := r.db.QueryRow(ctx, query, args...).Scan(scanTargets(&user)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by %s: %w", by, err)
	}

	return user, nil
}

func (r *UserRepository) execOne(ctx context.Context, query, failMsg string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", failMsg, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanTargets(user *model.User) []any {
	return []any{
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Activated,
		&user.ActivationToken, &user.ResetToken, &user.ResetTokenExpiry,
		&user.CreatedAt, &user.UpdatedAt,
	}
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}
