package usecase

import (
	"context"
	"fmt"

	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	GetNotifications(ctx context.Context, username string) (*response.NotificationsResponse, error)
	ListPassengers(ctx context.Context) ([]response.PassengerOverviewResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{userRepo: userRepo, log: log}
}

func (s *userService) GetNotifications(ctx context.Context, username string) (*response.NotificationsResponse, error) {
	if username == "" {
		return nil, fmt.Errorf("validation failed: username is required")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("failed to load user for notifications", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("failed to get notifications: %s", err.Error())
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", username)
	}

	return &response.NotificationsResponse{Notifications: user.NotificationsNewestFirst()}, nil
}

func (s *userService) ListPassengers(ctx context.Context) ([]response.PassengerOverviewResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("failed to list passengers", zap.Error(err))
		return nil, fmt.Errorf("failed to list passengers: %s", err.Error())
	}

	passengers := make([]response.PassengerOverviewResponse, 0, len(users))
	for _, user := range users {
		passengers = append(passengers, response.UserToPassengerOverview(user))
	}
	return passengers, nil
}
