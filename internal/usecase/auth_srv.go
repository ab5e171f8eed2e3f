package usecase

import (
	"context"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	AdminLogin(ctx context.Context, req *request.AdminLoginRequest) (*response.AdminAuthResponse, error)
}

type authService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuthService(repo *repository.Repository, log *zap.Logger) AuthService {
	return &authService{repo: repo, log: log}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		s.log.Error("register validation failed", zap.Any("errors", verrs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(verrs))
	}

	byUsername, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("failed to check username", zap.Error(err))
		return nil, fmt.Errorf("failed to register: %s", err.Error())
	}
	if byUsername != nil {
		return nil, fmt.Errorf("username %s already taken", req.Username)
	}

	byEmail, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("failed to check email", zap.Error(err))
		return nil, fmt.Errorf("failed to register: %s", err.Error())
	}
	if byEmail != nil {
		return nil, fmt.Errorf("email %s already registered", req.Email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to register: %s", err.Error())
	}

	user := &entity.User{
		Username:      req.Username,
		Email:         req.Email,
		Password:      hash,
		BookingIDs:    []string{},
		Notifications: []string{},
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("failed to create user", zap.String("username", req.Username), zap.Error(err))
		return nil, fmt.Errorf("failed to register: %s", err.Error())
	}

	s.log.Info("user registered", zap.String("username", user.Username))
	return &response.AuthResponse{Username: user.Username, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(verrs))
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("failed to load user for login", zap.Error(err))
		return nil, fmt.Errorf("failed to login: %s", err.Error())
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", req.Username)
	}

	if !utils.VerifyPassword(user.Password, req.Password) {
		s.log.Warn("login rejected, wrong password", zap.String("username", req.Username))
		return nil, fmt.Errorf("incorrect password")
	}

	s.log.Info("user logged in", zap.String("username", user.Username))
	return &response.AuthResponse{Username: user.Username, Email: user.Email}, nil
}

func (s *authService) AdminLogin(ctx context.Context, req *request.AdminLoginRequest) (*response.AdminAuthResponse, error) {
	if verrs := utils.ValidateStruct(req); len(verrs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(verrs))
	}

	admin, err := s.repo.Admin.FindByAdminName(ctx, req.AdminName)
	if err != nil {
		s.log.Error("failed to load admin for login", zap.Error(err))
		return nil, fmt.Errorf("failed to login: %s", err.Error())
	}
	if admin == nil {
		return nil, fmt.Errorf("admin %s not found", req.AdminName)
	}

	if !utils.VerifyPassword(admin.Password, req.Password) {
		s.log.Warn("admin login rejected, wrong password", zap.String("adminname", req.AdminName))
		return nil, fmt.Errorf("incorrect password")
	}

	s.log.Info("admin logged in", zap.String("adminname", admin.AdminName))
	return &response.AdminAuthResponse{AdminName: admin.AdminName, Email: admin.Email}, nil
}
