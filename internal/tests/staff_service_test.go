package tests

import (
	"testing"

	"coffeeshop-pos/internal/domain"
	"coffeeshop-pos/internal/mocks"
	"coffeeshop-pos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStaffService_ChangeRole(t *testing.T) {
	repository := mocks.NewStaffRepository(t)
	activity := mocks.NewActivityRecorder(t)
	svc := service.NewStaffService(repository, activity)

	admin := &domain.Profile{UserID: 1, Role: domain.RoleAdmin}
	owner := &domain.Profile{UserID: 2, Role: domain.RoleOwner}
	cashier := &domain.Profile{UserID: 3, Role: domain.RoleCashier}

	tests := []struct {
		name          string
		actor         *domain.Profile
		role          domain.Role
		prepareMocks  func()
		expectedError error
	}{
		{
			name:  "admin_promotes_to_manager",
			actor: admin,
			role:  domain.RoleManager,
			prepareMocks: func() {
				repository.On("UpdateProfileRole", 5, domain.RoleManager).Return(nil).Once()
				activity.On("Record", "role_changed", mock.Anything, mock.Anything, mock.Anything).Return().Once()
			},
		},
		{
			name:  "owner_demotes_to_staff",
			actor: owner,
			role:  domain.RoleStaff,
			prepareMocks: func() {
				repository.On("UpdateProfileRole", 5, domain.RoleStaff).Return(nil).Once()
				activity.On("Record", "role_changed", mock.Anything, mock.Anything, mock.Anything).Return().Once()
			},
		},
		{
			name:          "cashier_forbidden",
			actor:         cashier,
			role:          domain.RoleAdmin,
			prepareMocks:  func() {},
			expectedError: service.ErrRoleChangeForbidden,
		},
		{
			name:          "anonymous_forbidden",
			actor:         nil,
			role:          domain.RoleManager,
			prepareMocks:  func() {},
			expectedError: service.ErrRoleChangeForbidden,
		},
		{
			name:          "unknown_role_rejected",
			actor:         admin,
			role:          domain.Role("barista-in-chief"),
			prepareMocks:  func() {},
			expectedError: service.ErrUnknownRole,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			err := svc.ChangeRole(testCase.actor, 5, testCase.role)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestStaffService_Create(t *testing.T) {
	repository := mocks.NewStaffRepository(t)
	activity := mocks.NewActivityRecorder(t)
	svc := service.NewStaffService(repository, activity)

	repository.On("CreateProfile", mock.Anything).Return(nil).Once()
	assert.NoError(t, svc.Create(&domain.Profile{FullName: "New Hire", Role: domain.RoleCashier}))

	err := svc.Create(&domain.Profile{FullName: "Imposter", Role: domain.Role("superuser")})
	assert.ErrorIs(t, err, service.ErrUnknownRole)
}
