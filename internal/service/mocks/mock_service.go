package mocks

import (
	"context"

	"github.com/cx-tal-miterani/skybook/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockService is a mock implementation of service.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, form models.AuthForm) (*models.AuthResponse, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *MockService) Login(ctx context.Context, form models.AuthForm) (*models.AuthResponse, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *MockService) Logout(ctx context.Context) (*models.MessageResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MessageResponse), args.Error(1)
}

func (m *MockService) AuthState(ctx context.Context) *models.AuthState {
	args := m.Called(ctx)
	return args.Get(0).(*models.AuthState)
}

func (m *MockService) SearchFlights(ctx context.Context, form models.SearchForm) (*models.SearchResponse, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SearchResponse), args.Error(1)
}

func (m *MockService) GetFlight(ctx context.Context, id int) (*models.FlightOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlightOffer), args.Error(1)
}

func (m *MockService) ListOffers(ctx context.Context) []models.FlightOffer {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.FlightOffer)
}

func (m *MockService) SearchBounds(ctx context.Context, departure string) models.SearchBounds {
	args := m.Called(ctx, departure)
	return args.Get(0).(models.SearchBounds)
}

func (m *MockService) BookFlight(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingConfirmation), args.Error(1)
}
