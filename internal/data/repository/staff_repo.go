package repository

import (
	"context"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
	FindByEmail(ctx context.Context, email string) (*entity.Staff, error)
	FindByPhone(ctx context.Context, phone string) (*entity.Staff, error)
	FindAll(ctx context.Context) ([]*entity.Staff, error)
	Update(ctx context.Context, staff *entity.Staff) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type staffRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStaffRepository(db database.PgxIface, log *zap.Logger) StaffRepository {
	return &staffRepository{
		db:  db,
		log: log.With(zap.String("repository", "staff")),
	}
}

const staffColumns = `id, name, position, department, email, phone, join_date, status`

func scanStaff(row pgx.Row) (*entity.Staff, error) {
	var staff entity.Staff
	err := row.Scan(
		&staff.ID,
		&staff.Name,
		&staff.Position,
		&staff.Department,
		&staff.Email,
		&staff.Phone,
		&staff.JoinDate,
		&staff.Status,
	)
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	query := `
		INSERT INTO staff (` + staffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		staff.ID,
		staff.Name,
		staff.Position,
		staff.Department,
		staff.Email,
		staff.Phone,
		staff.JoinDate,
		staff.Status,
	)

	if err != nil {
		r.log.Error("Failed to create staff member",
			zap.Error(err),
			zap.String("email", staff.Email),
		)
		return fmt.Errorf("create staff member %s: %w", staff.Email, err)
	}

	return nil
}

func (r *staffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`

	staff, err := scanStaff(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find staff member",
			zap.Error(err),
			zap.String("staff_id", id.String()),
		)
		return nil, fmt.Errorf("find staff member %s: %w", id.String(), err)
	}

	return staff, nil
}

func (r *staffRepository) FindByEmail(ctx context.Context, email string) (*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE email = $1`

	staff, err := scanStaff(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find staff member by email %s: %w", email, err)
	}

	return staff, nil
}

func (r *staffRepository) FindByPhone(ctx context.Context, phone string) (*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE phone = $1`

	staff, err := scanStaff(r.db.QueryRow(ctx, query, phone))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find staff member by phone %s: %w", phone, err)
	}

	return staff, nil
}

func (r *staffRepository) FindAll(ctx context.Context) ([]*entity.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list staff", zap.Error(err))
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()

	var members []*entity.Staff
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("scan staff row: %w", err)
		}
		members = append(members, staff)
	}
	return members, rows.Err()
}

func (r *staffRepository) Update(ctx context.Context, staff *entity.Staff) error {
	query := `
		UPDATE staff
		SET name = $2, position = $3, department = $4, email = $5, phone = $6,
		    join_date = $7, status = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		staff.ID,
		staff.Name,
		staff.Position,
		staff.Department,
		staff.Email,
		staff.Phone,
		staff.JoinDate,
		staff.Status,
	)

	if err != nil {
		r.log.Error("Failed to update staff member",
			zap.Error(err),
			zap.String("staff_id", staff.ID.String()),
		)
		return fmt.Errorf("update staff member %s: %w", staff.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("staff member %s not found", staff.ID.String())
	}

	return nil
}

func (r *staffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM staff WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete staff member",
			zap.Error(err),
			zap.String("staff_id", id.String()),
		)
		return fmt.Errorf("delete staff member %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("staff member %s not found", id.String())
	}

	return nil
}
