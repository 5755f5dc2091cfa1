package mocks

import (
	"context"

	"dreamdwell/internal/model"
	"dreamdwell/internal/repository"
	"dreamdwell/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) List(ctx context.Context, c repository.Criteria) ([]model.Property, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Property), args.Error(1)
}

func (m *MockPropertyService) Get(ctx context.Context, id string) (*model.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyService) Create(ctx context.Context, in model.PropertyInput) (*model.Property, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyService) Update(ctx context.Context, id string, in model.PropertyInput) (*model.Property, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) PresignUpload(ctx context.Context, fileName string) (*service.UploadResult, error) {
	args := m.Called(ctx, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}
