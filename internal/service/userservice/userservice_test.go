package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/battlehub/battlehub/internal/domain"
	userrepo "github.com/battlehub/battlehub/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)

	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestGet(t *testing.T) {
	service, userRepo := NewMock(t)

	t.Run("Found", func(t *testing.T) {
		expected := &domain.User{ID: 1, Username: "gamer42", Role: domain.RolePlayer}
		userRepo.EXPECT().FindByID(context.Background(), 1).Return(expected, nil)

		user, err := service.Get(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, expected, user)
	})

	t.Run("Not found", func(t *testing.T) {
		userRepo.EXPECT().FindByID(context.Background(), 42).Return(nil, nil)

		user, err := service.Get(context.Background(), 42)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("Repository error", func(t *testing.T) {
		userRepo.EXPECT().FindByID(context.Background(), 1).Return(nil, errors.New("database error"))

		user, err := service.Get(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestList(t *testing.T) {
	service, userRepo := NewMock(t)

	t.Run("Successful fetch", func(t *testing.T) {
		expected := []domain.User{
			{ID: 1, Username: "gamer42", Role: domain.RolePlayer},
			{ID: 2, Username: "admin", Role: domain.RoleAdmin},
		}
		userRepo.EXPECT().List(context.Background()).Return(expected, nil)

		users, err := service.List(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, expected, users)
	})

	t.Run("Repository error", func(t *testing.T) {
		userRepo.EXPECT().List(context.Background()).Return(nil, errors.New("database error"))

		users, err := service.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, users)
	})
}

func TestUpdateUser(t *testing.T) {
	banned := true
	adminRole := domain.RoleAdmin
	badRole := "superuser"
	earnings := decimal.NewFromInt(500)

	tests := []struct {
		name          string
		params        UpdateParams
		prepareMock   func(userRepo *MockRepo)
		expectedError error
	}{
		{
			name:          "No fields",
			params:        UpdateParams{},
			prepareMock:   func(_ *MockRepo) {},
			expectedError: ErrNoFields,
		},
		{
			name:          "Unknown role",
			params:        UpdateParams{Role: &badRole},
			prepareMock:   func(_ *MockRepo) {},
			expectedError: ErrInvalidRole,
		},
		{
			name:   "User not found",
			params: UpdateParams{Banned: &banned},
			prepareMock: func(userRepo *MockRepo) {
				userRepo.EXPECT().Update(context.Background(), 42, userrepo.UpdateFields{Banned: &banned}).Return(false, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:   "Successful update",
			params: UpdateParams{Role: &adminRole, Banned: &banned, TotalEarnings: &earnings},
			prepareMock: func(userRepo *MockRepo) {
				userRepo.EXPECT().Update(context.Background(), 42, userrepo.UpdateFields{
					Role:          &adminRole,
					Banned:        &banned,
					TotalEarnings: &earnings,
				}).Return(true, nil)
			},
		},
		{
			name:   "Repository error",
			params: UpdateParams{Banned: &banned},
			prepareMock: func(userRepo *MockRepo) {
				userRepo.EXPECT().Update(context.Background(), 42, userrepo.UpdateFields{Banned: &banned}).Return(false, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo := NewMock(t)
			tt.prepareMock(userRepo)

			err := service.UpdateUser(context.Background(), 42, tt.params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
