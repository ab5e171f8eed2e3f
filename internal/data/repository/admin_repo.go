package repository

import (
	"context"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AdminRepository interface {
	FindByAdminName(ctx context.Context, adminName string) (*entity.Admin, error)
}

type adminRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminRepository(db database.PgxIface, log *zap.Logger) AdminRepository {
	return &adminRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin")),
	}
}

func (r *adminRepository) FindByAdminName(ctx context.Context, adminName string) (*entity.Admin, error) {
	query := `SELECT admin_name, email, password FROM admins WHERE admin_name = $1`

	var admin entity.Admin
	err := r.db.QueryRow(ctx, query, adminName).Scan(&admin.AdminName, &admin.Email, &admin.Password)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin",
			zap.Error(err),
			zap.String("admin_name", adminName),
		)
		return nil, fmt.Errorf("find admin %s: %w", adminName, err)
	}

	return &admin, nil
}
