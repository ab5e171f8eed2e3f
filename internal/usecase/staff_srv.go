package usecase

import (
	"context"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StaffService interface {
	CreateStaff(ctx context.Context, req *request.CreateStaffRequest) (*response.StaffResponse, error)
	ListStaff(ctx context.Context) ([]response.StaffResponse, error)
	UpdateStaff(ctx context.Context, id string, req *request.UpdateStaffRequest) (*response.StaffResponse, error)
	DeleteStaff(ctx context.Context, id string) error
}

type staffService struct {
	staffRepo repository.StaffRepository
	log       *zap.Logger
}

func NewStaffService(staffRepo repository.StaffRepository, log *zap.Logger) StaffService {
	return &staffService{staffRepo: staffRepo, log: log}
}

func (s *staffService) CreateStaff(ctx context.Context, req *request.CreateStaffRequest) (*response.StaffResponse, error) {
	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		s.log.Error("create staff validation failed", zap.Any("errors", verrs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(verrs))
	}

	if err := s.checkUnique(ctx, req.Email, req.Phone, uuid.Nil); err != nil {
		return nil, err
	}

	staff := &entity.Staff{
		ID:         uuid.New(),
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Email:      req.Email,
		Phone:      req.Phone,
		JoinDate:   req.JoinDate,
		Status:     req.Status,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		s.log.Error("failed to create staff member", zap.String("email", req.Email), zap.Error(err))
		return nil, fmt.Errorf("failed to create staff member: %s", err.Error())
	}

	s.log.Info("staff member created", zap.String("staff_id", staff.ID.String()), zap.String("name", staff.Name))
	resp := response.StaffToResponse(staff)
	return &resp, nil
}

func (s *staffService) ListStaff(ctx context.Context) ([]response.StaffResponse, error) {
	members, err := s.staffRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("failed to list staff", zap.Error(err))
		return nil, fmt.Errorf("failed to list staff: %s", err.Error())
	}

	responses := make([]response.StaffResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, response.StaffToResponse(member))
	}
	return responses, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, id string, req *request.UpdateStaffRequest) (*response.StaffResponse, error) {
	staffID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid staff id %s", id)
	}
	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		s.log.Error("update staff validation failed", zap.Any("errors", verrs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(verrs))
	}

	existing, err := s.staffRepo.FindByID(ctx, staffID)
	if err != nil {
		s.log.Error("failed to load staff member", zap.String("staff_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update staff member: %s", err.Error())
	}
	if existing == nil {
		return nil, fmt.Errorf("staff member %s not found", id)
	}

	if err := s.checkUnique(ctx, req.Email, req.Phone, staffID); err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Position = req.Position
	existing.Department = req.Department
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.JoinDate = req.JoinDate
	existing.Status = req.Status

	if err := s.staffRepo.Update(ctx, existing); err != nil {
		s.log.Error("failed to update staff member", zap.String("staff_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update staff member: %s", err.Error())
	}

	resp := response.StaffToResponse(existing)
	return &resp, nil
}

func (s *staffService) DeleteStaff(ctx context.Context, id string) error {
	staffID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid staff id %s", id)
	}

	if err := s.staffRepo.Delete(ctx, staffID); err != nil {
		s.log.Error("failed to delete staff member", zap.String("staff_id", id), zap.Error(err))
		return err
	}

	s.log.Info("staff member deleted", zap.String("staff_id", id))
	return nil
}

// checkUnique rejects an email or phone already held by another staff member.
// self is uuid.Nil on create.
func (s *staffService) checkUnique(ctx context.Context, email, phone string, self uuid.UUID) error {
	byEmail, err := s.staffRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check staff email: %s", err.Error())
	}
	if byEmail != nil && byEmail.ID != self {
		return fmt.Errorf("staff email %s already exists", email)
	}

	byPhone, err := s.staffRepo.FindByPhone(ctx, phone)
	if err != nil {
		return fmt.Errorf("failed to check staff phone: %s", err.Error())
	}
	if byPhone != nil && byPhone.ID != self {
		return fmt.Errorf("staff phone %s already exists", phone)
	}
	return nil
}
