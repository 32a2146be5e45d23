// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/pack-planner/internal/domain/dto"
)

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock that asserts its expectations on cleanup.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTokenService) IssueToken(subject string, roles []string) (dto.TokenResponse, error) {
	args := m.Called(subject, roles)
	resp, _ := args.Get(0).(dto.TokenResponse)
	return resp, args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*dto.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*dto.Claims)
	return claims, args.Error(1)
}
