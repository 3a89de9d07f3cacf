// Package impl provides the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/errors"
	"passport/internal/usecase"

	"go.uber.org/fx"
)

// accountService implements the usecase.AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	tokenCodec  service.TokenCodec
	logger      *slog.Logger
}

// AccountServiceParams defines the dependencies for the account service.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	TokenCodec  service.TokenCodec
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		tokenCodec:  params.TokenCodec,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register handles the business logic for creating a new account.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil || input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, domainerrors.ErrMissingField.WrapMessage("username, password and email are required")
	}

	srv.log(ctx).Info("Starting account registration", slog.String("username", input.Username))

	// Pre-check for a friendlier error; the unique index on username is the
	// authoritative guard against concurrent registrations.
	if _, err := srv.accountRepo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domainerrors.ErrDuplicateUsername.WrapMessage("username already taken")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check username availability")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	newAccount := &entity.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashed,
	}

	if err := srv.accountRepo.Create(ctx, newAccount); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, domainerrors.ErrDuplicateUsername.WrapMessage("username already taken")
		}

		srv.log(ctx).Error("Failed to create account",
			slog.String("username", input.Username),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account registered",
		slog.Int64("accountID", newAccount.ID),
		slog.String("username", newAccount.Username))

	return &usecase.RegisterOutput{Account: newAccount}, nil
}

// Authenticate verifies a username/password pair against the store.
func (srv *accountService) Authenticate(ctx context.Context, username, password string) (*entity.Account, error) {
	if username == "" || password == "" {
		return nil, domainerrors.ErrMissingField.WrapMessage("username and password are required")
	}

	account, err := srv.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	if !srv.hasher.Check(password, account.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("invalid credentials")
	}

	return account, nil
}

// Login authenticates the account and mints a fresh bearer token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrMissingField.WrapMessage("username and password are required")
	}

	account, err := srv.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenCodec.Mint(account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to mint token",
			slog.Int64("accountID", account.ID),
			slog.Any("error", err))

		return nil, domainerrors.ErrTokenMintFailed.WrapMessage("failed to mint token")
	}

	srv.log(ctx).Info("Account logged in", slog.Int64("accountID", account.ID))

	return &usecase.LoginOutput{
		Token:    token,
		Duration: int64(srv.tokenCodec.TTL().Seconds()),
		Account:  account,
	}, nil
}

// ValidateToken verifies a token and loads the account it belongs to.
func (srv *accountService) ValidateToken(ctx context.Context, token string) (*entity.Account, error) {
	if token == "" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token is required")
	}

	accountID, err := srv.tokenCodec.Validate(token)
	if err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// A well-signed token for a vanished account is still unusable.
			srv.log(ctx).Warn("Token references unknown account", slog.Int64("accountID", accountID))

			return nil, domainerrors.ErrTokenInvalid.WrapMessage("token references unknown account")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

// GetAccount retrieves a single account by ID.
func (srv *accountService) GetAccount(ctx context.Context, id int64) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

// ListAccounts retrieves all accounts.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}
