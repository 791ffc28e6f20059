package service

import (
	"context"

	"github.com/Simohamed05/VENTESPRO/internal/landing/domain"
	"github.com/Simohamed05/VENTESPRO/internal/landing/dto"
	"github.com/Simohamed05/VENTESPRO/pkg/constant"
)

type AdminService struct {
	repo domain.AdminRepository
}

func NewAdminService(repo domain.AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

func (s *AdminService) Stats(ctx context.Context) (*dto.StatsOutput, error) {
	stats, err := s.repo.CountStats(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsOutput{
		Users:        stats.Users,
		Demos:        stats.Demos,
		Logins:       stats.Logins,
		LoginSuccess: stats.LoginSuccess,
	}, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]dto.UserRow, error) {
	users, err := s.repo.ListUsers(ctx, constant.AdminListLimit)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.UserRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, dto.UserRow{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}

	return rows, nil
}

func (s *AdminService) ListDemoRequests(ctx context.Context) ([]dto.DemoRequestRow, error) {
	demos, err := s.repo.ListDemoRequests(ctx, constant.AdminListLimit)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.DemoRequestRow, 0, len(demos))
	for _, d := range demos {
		rows = append(rows, dto.DemoRequestRow{
			ID:        d.ID,
			Name:      d.Name,
			Email:     d.Email,
			Business:  d.Business,
			Message:   d.Message,
			CreatedAt: d.CreatedAt,
		})
	}

	return rows, nil
}

func (s *AdminService) ListLoginAttempts(ctx context.Context) ([]dto.LoginAttemptRow, error) {
	attempts, err := s.repo.ListLoginAttempts(ctx, constant.AdminListLimit)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.LoginAttemptRow, 0, len(attempts))
	for _, a := range attempts {
		rows = append(rows, dto.LoginAttemptRow{
			ID:        a.ID,
			UserID:    a.UserID,
			Email:     a.Email,
			Success:   a.Success,
			IP:        a.IP,
			UserAgent: a.UserAgent,
			CreatedAt: a.CreatedAt,
		})
	}

	return rows, nil
}
