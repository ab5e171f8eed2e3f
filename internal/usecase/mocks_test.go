package usecase

import (
	"context"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) FindByFlightNumber(ctx context.Context, flightNumber string) (*entity.Flight, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) FindAll(ctx context.Context) ([]*entity.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) Search(ctx context.Context, filter repository.FlightSearchFilter) ([]*entity.Flight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) UpdateSchedule(ctx context.Context, flight *entity.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, flightNumber string) error {
	args := m.Called(ctx, flightNumber)
	return args.Error(0)
}

func (m *MockFlightRepository) AllocateSeats(ctx context.Context, flightNumber string, seats []string, count entity.SeatCount) (bool, error) {
	args := m.Called(ctx, flightNumber, seats, count)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlightRepository) ReleaseSeats(ctx context.Context, flightNumber string, seats []string, count entity.SeatCount) error {
	args := m.Called(ctx, flightNumber, seats, count)
	return args.Error(0)
}

func (m *MockFlightRepository) AppendBookingID(ctx context.Context, flightNumber, bookingID string) error {
	args := m.Called(ctx, flightNumber, bookingID)
	return args.Error(0)
}

func (m *MockFlightRepository) FindStale(ctx context.Context, today string) ([]*entity.Flight, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) ResetForRollover(ctx context.Context, flightNumber, newDate string) error {
	args := m.Called(ctx, flightNumber, newDate)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByUsername(ctx context.Context, username string) ([]*entity.Booking, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByFlightNumber(ctx context.Context, flightNumber string) ([]*entity.Booking, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateSnapshot(ctx context.Context, bookingID string, flight *entity.Flight) error {
	args := m.Called(ctx, bookingID, flight)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockBookingRepository) DeleteByFlightNumber(ctx context.Context, flightNumber string) error {
	args := m.Called(ctx, flightNumber)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) AppendBookingID(ctx context.Context, username, bookingID string) error {
	args := m.Called(ctx, username, bookingID)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveBookingID(ctx context.Context, username, bookingID string) error {
	args := m.Called(ctx, username, bookingID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateNotifications(ctx context.Context, username string, notifications []string) error {
	args := m.Called(ctx, username, notifications)
	return args.Error(0)
}

type MockCancellationRepository struct {
	mock.Mock
}

func (m *MockCancellationRepository) Create(ctx context.Context, cancellation *entity.Cancellation) error {
	args := m.Called(ctx, cancellation)
	return args.Error(0)
}

func (m *MockCancellationRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Cancellation, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Cancellation), args.Error(1)
}

func (m *MockCancellationRepository) FindByStatus(ctx context.Context, status entity.CancellationStatus) ([]*entity.Cancellation, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Cancellation), args.Error(1)
}

func (m *MockCancellationRepository) UpdateStatus(ctx context.Context, bookingID string, from, to entity.CancellationStatus, approvedAt *time.Time) (bool, error) {
	args := m.Called(ctx, bookingID, from, to, approvedAt)
	return args.Bool(0), args.Error(1)
}

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Staff), args.Error(1)
}

func (m *MockStaffRepository) FindByEmail(ctx context.Context, email string) (*entity.Staff, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Staff), args.Error(1)
}

func (m *MockStaffRepository) FindByPhone(ctx context.Context, phone string) (*entity.Staff, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Staff), args.Error(1)
}

func (m *MockStaffRepository) FindAll(ctx context.Context) ([]*entity.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Staff), args.Error(1)
}

func (m *MockStaffRepository) Update(ctx context.Context, staff *entity.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByAdminName(ctx context.Context, adminName string) (*entity.Admin, error) {
	args := m.Called(ctx, adminName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

// testRepo bundles fresh mocks into a Repository for service construction.
type testRepo struct {
	flights       *MockFlightRepository
	bookings      *MockBookingRepository
	users         *MockUserRepository
	cancellations *MockCancellationRepository
	staff         *MockStaffRepository
	admins        *MockAdminRepository
	repo          *repository.Repository
}

func newTestRepo() *testRepo {
	tr := &testRepo{
		flights:       &MockFlightRepository{},
		bookings:      &MockBookingRepository{},
		users:         &MockUserRepository{},
		cancellations: &MockCancellationRepository{},
		staff:         &MockStaffRepository{},
		admins:        &MockAdminRepository{},
	}
	tr.repo = &repository.Repository{
		User:         tr.users,
		Admin:        tr.admins,
		Flight:       tr.flights,
		Booking:      tr.bookings,
		Cancellation: tr.cancellations,
		Staff:        tr.staff,
	}
	return tr
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
