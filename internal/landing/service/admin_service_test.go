package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Simohamed05/VENTESPRO/internal/landing/domain"
	"github.com/Simohamed05/VENTESPRO/internal/landing/service"
	"github.com/Simohamed05/VENTESPRO/internal/mocks"
	"github.com/Simohamed05/VENTESPRO/pkg/constant"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepository(ctrl)
	s := service.NewAdminService(mockRepo)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().CountStats(gomock.Any()).Return(&domain.Stats{
			Users:        10,
			Demos:        4,
			Logins:       25,
			LoginSuccess: 20,
		}, nil)

		stats, err := s.Stats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 10, stats.Users)
		assert.Equal(t, 4, stats.Demos)
		assert.Equal(t, 25, stats.Logins)
		assert.Equal(t, 20, stats.LoginSuccess)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().CountStats(gomock.Any()).Return(nil, errors.New("db error"))

		stats, err := s.Stats(context.Background())

		assert.Error(t, err)
		assert.Nil(t, stats)
	})
}

func TestAdminService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepository(ctrl)
	s := service.NewAdminService(mockRepo)

	name := "Ana"
	users := []domain.User{
		{ID: "u2", Name: &name, Email: "ana@x.com", PasswordHash: "hash", Role: "user", CreatedAt: time.Now()},
		{ID: "u1", Email: "old@x.com", PasswordHash: "hash", Role: "admin", CreatedAt: time.Now().Add(-time.Hour)},
	}

	mockRepo.EXPECT().ListUsers(gomock.Any(), constant.AdminListLimit).Return(users, nil)

	rows, err := s.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Newest first, as the repository orders them.
	assert.Equal(t, "u2", rows[0].ID)
	assert.Equal(t, "ana@x.com", rows[0].Email)
	assert.Equal(t, "admin", rows[1].Role)
}

func TestAdminService_ListDemoRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepository(ctrl)
	s := service.NewAdminService(mockRepo)

	msg := "call me"
	demos := []domain.DemoRequest{
		{ID: "d1", Name: "Bob", Email: "b@x.com", Business: "Retail", Message: &msg, CreatedAt: time.Now()},
	}

	mockRepo.EXPECT().ListDemoRequests(gomock.Any(), constant.AdminListLimit).Return(demos, nil)

	rows, err := s.ListDemoRequests(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bob", rows[0].Name)
	assert.Equal(t, "Retail", rows[0].Business)
	require.NotNil(t, rows[0].Message)
	assert.Equal(t, msg, *rows[0].Message)
}

func TestAdminService_ListLoginAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepository(ctrl)
	s := service.NewAdminService(mockRepo)

	userID := "u1"
	attempts := []domain.LoginAttempt{
		{ID: "l2", UserID: &userID, Email: "ana@x.com", Success: true, CreatedAt: time.Now()},
		{ID: "l1", Email: "ghost@x.com", Success: false, CreatedAt: time.Now().Add(-time.Minute)},
	}

	mockRepo.EXPECT().ListLoginAttempts(gomock.Any(), constant.AdminListLimit).Return(attempts, nil)

	rows, err := s.ListLoginAttempts(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Success)
	require.NotNil(t, rows[0].UserID)
	assert.Equal(t, userID, *rows[0].UserID)
	assert.Nil(t, rows[1].UserID)
}

func TestAdminService_ListErrorsPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepository(ctrl)
	s := service.NewAdminService(mockRepo)

	expectedError := errors.New("db error")

	mockRepo.EXPECT().ListUsers(gomock.Any(), constant.AdminListLimit).Return(nil, expectedError)
	mockRepo.EXPECT().ListDemoRequests(gomock.Any(), constant.AdminListLimit).Return(nil, expectedError)
	mockRepo.EXPECT().ListLoginAttempts(gomock.Any(), constant.AdminListLimit).Return(nil, expectedError)

	_, err := s.ListUsers(context.Background())
	assert.Equal(t, expectedError, err)

	_, err = s.ListDemoRequests(context.Background())
	assert.Equal(t, expectedError, err)

	_, err = s.ListLoginAttempts(context.Background())
	assert.Equal(t, expectedError, err)
}
