// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	metrics      service.MetricsRecorder
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser validates the form, creates the account and signs the caller in.
// The email check, hash and insert share one transaction; the unique index on
// users.email rejects a concurrent duplicate that slips past the check.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.AuthOutput, error) {
	if err := validateInput(input, registerRules); err != nil {
		srv.metrics.RecordRegistration(service.OutcomeValidation)

		return nil, err
	}
	if len(input.Password) > service.MaxPasswordBytes {
		srv.metrics.RecordRegistration(service.OutcomeValidation)

		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("Password must be at most 72 bytes long"))
	}

	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email))

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		switch {
		case err == nil:
			return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "email already registered")
		case !errors.Is(err, repository.ErrUserNotFound):
			return errors.Wrap(err, "failed to check existing email")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			Phone:        input.Phone,
			BloodType:    entity.BloodType(input.BloodType),
			PasswordHash: hashedPassword,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		registered = newUser

		return nil
	})
	if err != nil {
		srv.recordFailure(ctx, srv.metrics.RecordRegistration, "Registration failed", input.Email, err)

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	token, err := srv.issueToken(ctx, registered)
	if err != nil {
		srv.metrics.RecordRegistration(service.OutcomeError)

		return nil, err
	}

	srv.metrics.RecordRegistration(service.OutcomeSuccess)
	srv.log(ctx).Info("User registered", slog.String("userID", registered.ID.String()))

	return &usecase.AuthOutput{Token: token, User: registered}, nil
}

// Login checks the credentials. An unknown email and a wrong password are
// indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if err := validateInput(input, loginRules); err != nil {
		srv.metrics.RecordLogin(service.OutcomeValidation)

		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.metrics.RecordLogin(service.OutcomeRejected)
			srv.log(ctx).Debug("Login rejected: unknown email")

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "user not found")
		}

		srv.recordFailure(ctx, srv.metrics.RecordLogin, "Login lookup failed", input.Email, err)

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.metrics.RecordLogin(service.OutcomeRejected)
		srv.log(ctx).Debug("Login rejected: password mismatch", slog.String("userID", user.ID.String()))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, err := srv.issueToken(ctx, user)
	if err != nil {
		srv.metrics.RecordLogin(service.OutcomeError)

		return nil, err
	}

	srv.metrics.RecordLogin(service.OutcomeSuccess)
	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID.String()))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

func (srv *userService) issueToken(ctx context.Context, user *entity.User) (string, error) {
	token, err := srv.tokenService.IssueToken(service.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("userID", user.ID.String()), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return token, nil
}

// recordFailure classifies err for metrics and logs server-side failures.
// The address only appears at debug level.
func (srv *userService) recordFailure(ctx context.Context, record func(string), msg, email string, err error) {
	logger := srv.log(ctx)
	logger.Debug(msg, slog.String("email", email))

	switch {
	case errors.Is(err, domainerrors.ErrEmailAlreadyRegistered):
		record(service.OutcomeConflict)
		logger.Info(msg, slog.String("reason", "email already registered"))
	case domainerrors.IsServerError(err):
		record(service.OutcomeError)
		logger.Error(msg, slog.Any("error", err))
	default:
		record(service.OutcomeRejected)
		logger.Warn(msg, slog.Any("error", err))
	}
}
