package service

//go:generate mockgen -destination=../../mocks/mock_repository.go -package=mocks github.com/Simohamed05/VENTESPRO/internal/landing/domain UserRepository,DemoRepository,AdminRepository

import (
	"context"
	"time"

	autherror "github.com/Simohamed05/VENTESPRO/internal/errors"
	"github.com/Simohamed05/VENTESPRO/internal/landing/domain"
	"github.com/Simohamed05/VENTESPRO/internal/landing/dto"
	"github.com/Simohamed05/VENTESPRO/pkg/constant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
	}
}

// Signup creates the account with a single constrained insert; the store's
// unique index on email is the only uniqueness check, so concurrent signups
// cannot both succeed.
func (s *UserService) Signup(ctx context.Context, input dto.SignupInput) (*domain.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), constant.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         optional(input.Name),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         constant.DefaultUserRole,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and issues a bearer token. Exactly one audit
// row is written per call, before any return, whatever the outcome.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	attempt := &domain.LoginAttempt{
		ID:        uuid.New().String(),
		Email:     input.Email,
		IP:        optional(input.IPAddress),
		UserAgent: optional(truncate(input.UserAgent, constant.UserAgentMaxLength)),
		CreatedAt: time.Now(),
	}

	if user == nil {
		if err := s.repo.RecordLoginAttempt(ctx, attempt); err != nil {
			return nil, err
		}
		// Same message as the wrong-password case; the response never
		// reveals whether the email exists.
		return nil, autherror.ErrInvalidCredentials
	}

	ok := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) == nil

	attempt.UserID = &user.ID
	attempt.Success = ok
	if err := s.repo.RecordLoginAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	if !ok {
		return nil, autherror.ErrInvalidCredentials
	}

	token, err := s.tokenService.Generate(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginOutput{
		Token: token,
		User: dto.UserOutput{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
