package repository

import (
	"context"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	AppendBookingID(ctx context.Context, username, bookingID string) error
	RemoveBookingID(ctx context.Context, username, bookingID string) error
	UpdateNotifications(ctx context.Context, username string, notifications []string) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `username, email, password, booking_ids, notifications`

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.Username,
		&user.Email,
		&user.Password,
		&user.BookingIDs,
		&user.Notifications,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		user.Username,
		user.Email,
		user.Password,
		user.BookingIDs,
		user.Notifications,
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user %s: %w", username, err)
	}

	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY username`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) AppendBookingID(ctx context.Context, username, bookingID string) error {
	query := `UPDATE users SET booking_ids = array_append(booking_ids, $2) WHERE username = $1`

	result, err := r.db.Exec(ctx, query, username, bookingID)
	if err != nil {
		r.log.Error("Failed to link booking to user",
			zap.Error(err),
			zap.String("username", username),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("link booking %s to user %s: %w", bookingID, username, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", username)
	}

	return nil
}

func (r *userRepository) RemoveBookingID(ctx context.Context, username, bookingID string) error {
	query := `UPDATE users SET booking_ids = array_remove(booking_ids, $2) WHERE username = $1`

	result, err := r.db.Exec(ctx, query, username, bookingID)
	if err != nil {
		r.log.Error("Failed to unlink booking from user",
			zap.Error(err),
			zap.String("username", username),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("unlink booking %s from user %s: %w", bookingID, username, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", username)
	}

	return nil
}

func (r *userRepository) UpdateNotifications(ctx context.Context, username string, notifications []string) error {
	query := `UPDATE users SET notifications = $2 WHERE username = $1`

	result, err := r.db.Exec(ctx, query, username, notifications)
	if err != nil {
		r.log.Error("Failed to update notifications",
			zap.Error(err),
			zap.String("username", username),
		)
		return fmt.Errorf("update notifications for user %s: %w", username, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", username)
	}

	return nil
}
