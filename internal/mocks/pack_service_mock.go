// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/pack-planner/internal/domain/model"
)

// MockPackService mocks service.PackService.
type MockPackService struct {
	mock.Mock
}

// NewMockPackService creates a mock that asserts its expectations on cleanup.
func NewMockPackService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPackService {
	m := &MockPackService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPackService) AddPackSize(ctx context.Context, size int) (model.PackSizeSet, bool, error) {
	args := m.Called(ctx, size)
	set, _ := args.Get(0).(model.PackSizeSet)
	return set, args.Bool(1), args.Error(2)
}

func (m *MockPackService) RemovePackSize(ctx context.Context, size int) (model.PackSizeSet, error) {
	args := m.Called(ctx, size)
	set, _ := args.Get(0).(model.PackSizeSet)
	return set, args.Error(1)
}

func (m *MockPackService) ListPackSizes(ctx context.Context) model.PackSizeSet {
	args := m.Called(ctx)
	set, _ := args.Get(0).(model.PackSizeSet)
	return set
}

func (m *MockPackService) ComputePacks(ctx context.Context, quantity int) (model.PackResult, error) {
	args := m.Called(ctx, quantity)
	result, _ := args.Get(0).(model.PackResult)
	return result, args.Error(1)
}

func (m *MockPackService) ComputePacksWithSizes(ctx context.Context, quantity int, sizes []int) (model.PackResult, error) {
	args := m.Called(ctx, quantity, sizes)
	result, _ := args.Get(0).(model.PackResult)
	return result, args.Error(1)
}
