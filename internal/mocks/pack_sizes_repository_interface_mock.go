// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPackSizesRepositoryInterface mocks repository.PackSizesRepositoryInterface.
type MockPackSizesRepositoryInterface struct {
	mock.Mock
}

// NewMockPackSizesRepositoryInterface creates a mock that asserts its expectations on cleanup.
func NewMockPackSizesRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPackSizesRepositoryInterface {
	m := &MockPackSizesRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPackSizesRepositoryInterface) List(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockPackSizesRepositoryInterface) Insert(ctx context.Context, size int, createdBy string) (bool, error) {
	args := m.Called(ctx, size, createdBy)
	return args.Bool(0), args.Error(1)
}

func (m *MockPackSizesRepositoryInterface) Delete(ctx context.Context, size int) error {
	args := m.Called(ctx, size)
	return args.Error(0)
}
