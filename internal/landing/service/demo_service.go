package service

import (
	"context"
	"time"

	"github.com/Simohamed05/VENTESPRO/internal/landing/domain"
	"github.com/Simohamed05/VENTESPRO/internal/landing/dto"
	"github.com/google/uuid"
)

type DemoService struct {
	repo domain.DemoRepository
}

func NewDemoService(repo domain.DemoRepository) *DemoService {
	return &DemoService{repo: repo}
}

// Submit stores one lead record. No deduplication, no email verification.
func (s *DemoService) Submit(ctx context.Context, input dto.DemoInput) error {
	demo := &domain.DemoRequest{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Business:  input.Business,
		Message:   optional(input.Message),
		CreatedAt: time.Now(),
	}

	return s.repo.CreateDemoRequest(ctx, demo)
}
