package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hallworks/ms-go-hall/app/entity"
	"github.com/hallworks/ms-go-hall/app/repository"
	"github.com/hallworks/ms-go-hall/app/types"
)

type accountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	List(ctx context.Context) ([]*entity.Account, error)
	UpdateRole(ctx context.Context, id uint64, role string) error
}

type AccountService struct {
	accountRepo accountRepository
}

func NewAccountService(accountRepo accountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// CreateAccount pre-checks for an existing email but relies on the unique
// index for correctness: two racing signups both pass the pre-check, and the
// insert decides the winner.
func (s *AccountService) CreateAccount(ctx context.Context, req *types.CreateAccountRequest) (*entity.Account, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, ErrValidation
	}

	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateResource
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = entity.AccountRoleUser
	}
	if !entity.ValidAccountRole(role) {
		return nil, ErrValidation
	}

	account := &entity.Account{
		Email:     email,
		Name:      strings.TrimSpace(req.Name),
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountAlreadyExists) {
			return nil, ErrDuplicateResource
		}
		return nil, err
	}

	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	return s.accountRepo.List(ctx)
}

func (s *AccountService) UpdateRole(ctx context.Context, req *types.UpdateAccountRoleRequest) error {
	if req.ID == 0 || !entity.ValidAccountRole(req.Role) {
		return ErrValidation
	}

	if err := s.accountRepo.UpdateRole(ctx, req.ID, req.Role); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
