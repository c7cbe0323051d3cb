package services

import (
	"context"
	"log"
	"strings"

	"github.com/phoebe497/Travel-Recommendation/internal/models/db_models"
	"github.com/phoebe497/Travel-Recommendation/internal/models/request_models"
	"github.com/phoebe497/Travel-Recommendation/internal/models/response_models"
	"github.com/phoebe497/Travel-Recommendation/internal/repositories"
	"github.com/phoebe497/Travel-Recommendation/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
}

type accountService struct {
	accounts repositories.AccountRepository
}

func NewAccountService(accounts repositories.AccountRepository) AccountServiceInterface {
	return &accountService{accounts: accounts}
}

func (s *accountService) Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.AccountResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("Error checking account email: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		log.Printf("Error creating account: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AccountResponse{
		ID:          account.ID.String(),
		Email:       account.Email,
		DisplayName: account.DisplayName,
	}, nil
}

func (s *accountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("Error fetching account: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.LoginResponse{
		Token: token,
		Account: response_models.AccountResponse{
			ID:          account.ID.String(),
			Email:       account.Email,
			DisplayName: account.DisplayName,
		},
	}, nil
}
