package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/models"
	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/internal/repository"
	"github.com/pluravita-pixel/Plataforma-v21012026-sub001/pkg/utils"
)

var ErrUserNotFound = errors.New("user not found")

type accountTxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type userStore interface {
	List(ctx context.Context) ([]models.User, error)
	UpdateAccount(ctx context.Context, id int64, email *string, phone *string) (*models.User, error)
}

type AccountService struct {
	db    accountTxStarter
	users userStore
}

func NewAccountService(db accountTxStarter, users userStore) *AccountService {
	return &AccountService{db: db, users: users}
}

type CreateUserInput struct {
	FullName string
	Email    string
	Phone    *string
	Role     string
}

// CreateUser inserts the user and, for the psychologist role, its referral
// record in one transaction so a failed second insert leaves nothing behind.
func (s *AccountService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	if fullName == "" || email == "" {
		return nil, ErrInvalidInput
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = models.RolePatient
	}
	switch role {
	case models.RolePatient, models.RolePsychologist, models.RoleAdmin:
	default:
		return nil, ErrInvalidInput
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txUserRepo := repository.NewUserRepository(tx)
	txPsychologistRepo := repository.NewPsychologistRepository(tx)

	user := &models.User{
		FullName: fullName,
		Email:    email,
		Phone:    input.Phone,
		Role:     role,
	}
	if err := txUserRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if role == models.RolePsychologist {
		psychologist := &models.Psychologist{
			UserID:   &user.ID,
			FullName: fullName,
			RefCode:  utils.NewRefCode(),
		}
		if err := txPsychologistRepo.Create(ctx, psychologist); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AccountService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

type UpdateAccountInput struct {
	Email *string
	Phone *string
}

// UpdateAccount patches email and phone only. An empty patch is rejected
// rather than silently succeeding.
func (s *AccountService) UpdateAccount(
	ctx context.Context,
	userID int64,
	input UpdateAccountInput,
) (*models.User, error) {
	if userID <= 0 {
		return nil, ErrInvalidInput
	}
	if input.Email == nil && input.Phone == nil {
		return nil, ErrInvalidInput
	}
	if input.Email != nil && strings.TrimSpace(*input.Email) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.UpdateAccount(ctx, userID, input.Email, input.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
