package usecase

import (
	"context"

	"github.com/google/uuid"

	"invoice-service/internal/domain/account"
	"invoice-service/internal/pkg/clock"
	"invoice-service/internal/pkg/errs"
	"invoice-service/internal/pkg/jwt"
	"invoice-service/internal/pkg/password"
	"invoice-service/internal/usecase/readmodel"
)

var (
	ErrTokenGeneration = errs.New("token generation failed")
	ErrTokenValidation = errs.New("token validation failed")
)

// AccountRepository is the credential store contract the auth usecase
// depends on. Registration, session and lookup operations either fully
// apply or fully fail.
type AccountRepository interface {
	Create(ctx context.Context, acc *account.Account) error
	FindByEmail(email account.Email) (*account.Account, bool)
	FindByID(id uuid.UUID) (*account.Account, bool)
	SetSession(ctx context.Context, id uuid.UUID) error
	ClearSession(ctx context.Context) error
	CurrentSession() (*account.Account, bool)
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

type AuthUseCase interface {
	Register(ctx context.Context, params RegisterParams) (string, *readmodel.AccountRM, error)
	Login(ctx context.Context, credentials account.Credentials) (string, *readmodel.AccountRM, error)
	Logout(ctx context.Context) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AccountRM, error)
}

type authUseCaseImpl struct {
	accountRepo AccountRepository
	jwtService  *jwt.Service
	clock       clock.Clock
}

func NewAuthUseCase(accountRepo AccountRepository, jwtService *jwt.Service, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		clock:       clk,
	}
}

// Register creates the account and signs it in immediately; there is
// no separate login step after a successful registration.
func (a *authUseCaseImpl) Register(ctx context.Context, params RegisterParams) (string, *readmodel.AccountRM, error) {
	if params.Name == "" {
		return "", nil, account.ErrEmptyName
	}

	credentials, err := account.NewCredentials(params.Email, params.Password)
	if err != nil {
		return "", nil, err
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to hash password")
	}

	acc := account.NewAccount(params.Name, credentials.Email(), hash, a.clock.Now())
	if err := a.accountRepo.Create(ctx, acc); err != nil {
		return "", nil, err
	}

	token, err := a.jwtService.GenerateToken(acc.ID())
	if err != nil {
		return "", nil, errs.Mark(err, ErrTokenGeneration)
	}

	return token, readmodel.NewAccountRM(acc), nil
}

// Login verifies the credentials against the stored bcrypt hash and
// sets the matching account as the current session. Unknown email and
// wrong password return the same error to prevent account enumeration.
func (a *authUseCaseImpl) Login(ctx context.Context, credentials account.Credentials) (string, *readmodel.AccountRM, error) {
	acc, ok := a.accountRepo.FindByEmail(credentials.Email())
	if !ok {
		return "", nil, errs.ErrInvalidCredentials
	}

	if err := password.ComparePassword(acc.PasswordHash(), credentials.Password().Value()); err != nil {
		return "", nil, errs.ErrInvalidCredentials
	}

	if err := a.accountRepo.SetSession(ctx, acc.ID()); err != nil {
		return "", nil, err
	}

	token, err := a.jwtService.GenerateToken(acc.ID())
	if err != nil {
		return "", nil, errs.Mark(err, ErrTokenGeneration)
	}

	return token, readmodel.NewAccountRM(acc), nil
}

// Logout clears the session unconditionally; logging out while already
// logged out is not an error.
func (a *authUseCaseImpl) Logout(ctx context.Context) error {
	return a.accountRepo.ClearSession(ctx)
}

func (a *authUseCaseImpl) GetCurrentUser(_ context.Context, userID uuid.UUID) (*readmodel.AccountRM, error) {
	acc, ok := a.accountRepo.FindByID(userID)
	if !ok {
		return nil, errs.ErrAccountNotFound
	}
	return readmodel.NewAccountRM(acc), nil
}
