// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	deliverycontext "reportsys/internal/delivery/context"
	"reportsys/internal/domain/entity"
	domainerrors "reportsys/internal/domain/errors"
	"reportsys/internal/domain/repository"
	"reportsys/internal/domain/service"
	"reportsys/internal/usecase"
	"reportsys/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPassword is hashed once and verified when a login matches no account,
// so an unknown login costs about as much as a wrong password.
const dummyPassword = "reportsys-dummy-password"

type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hashers      service.HasherTable
	tokenService service.TokenService
	metrics      service.AccountMetrics
	validate     *validator.Validate
	logger       *slog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// AccountServiceParams holds dependencies for the account service, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hashers      service.HasherTable
	TokenService service.TokenService
	Metrics      service.AccountMetrics
	Logger       *slog.Logger
}

// NewAccountService is the constructor for the account service.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hashers:      params.Hashers,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		validate:     newInputValidator(),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials against the partitions in priority order and issues a token.
// Every rejection returns ErrAuthenticationFailed so callers cannot probe for existing logins.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Login == "" || input.Password == "" {
		srv.metrics.LoginAttempt(nil, service.OutcomeFailure)

		return nil, errors.Wrap(domainerrors.ErrAuthenticationFailed, "empty credentials")
	}

	srv.log(ctx).Debug("Starting login", slog.String("login", input.Login))

	account, err := srv.findLoginAccount(ctx, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.burnVerification(input.Password)
			srv.metrics.LoginAttempt(nil, service.OutcomeFailure)
			srv.log(ctx).Warn("Login failed", slog.String("login", input.Login), slog.String("reason", "no matching account"))

			return nil, errors.Wrap(domainerrors.ErrAuthenticationFailed, "login failed")
		}

		srv.metrics.LoginAttempt(nil, service.OutcomeError)
		srv.log(ctx).Error("Login lookup failed", slog.String("login", input.Login), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up account")
	}

	hasher, err := srv.hashers.For(account.Role)
	if err != nil {
		srv.metrics.LoginAttempt(&account.Role, service.OutcomeError)

		return nil, errors.Wrap(err, "failed to select password hasher")
	}

	// Repositories already filter deleted rows; IsActive guards against a store that does not.
	if !account.IsActive() || !hasher.Check(input.Password, account.PasswordHash) {
		srv.metrics.LoginAttempt(&account.Role, service.OutcomeFailure)
		srv.log(ctx).Warn("Login failed", slog.String("login", input.Login), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrAuthenticationFailed, "login failed")
	}

	token, err := srv.tokenService.Issue(account.Principal())
	if err != nil {
		srv.metrics.LoginAttempt(&account.Role, service.OutcomeError)
		srv.log(ctx).Error("Token issuance failed", slog.Int("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.metrics.LoginAttempt(&account.Role, service.OutcomeSuccess)
	srv.log(ctx).Debug("Login succeeded", slog.Int("accountID", account.ID), slog.String("role", account.Role.String()))

	return &usecase.LoginOutput{Token: token}, nil
}

// findLoginAccount returns the first active match in entity.LoginPriority order.
// A login present in several partitions only ever resolves to the highest-priority one.
func (srv *accountService) findLoginAccount(ctx context.Context, login string) (*entity.Account, error) {
	for _, role := range entity.LoginPriority {
		account, err := srv.accountRepo.FindActiveByLogin(ctx, role, login)
		if errors.Is(err, repository.ErrAccountNotFound) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to find %s", role)
		}

		return account, nil
	}

	return nil, repository.ErrAccountNotFound
}

func (srv *accountService) burnVerification(password string) {
	role := entity.LoginPriority[len(entity.LoginPriority)-1]
	hasher, err := srv.hashers.For(role)
	if err != nil {
		return
	}

	srv.dummyOnce.Do(func() {
		srv.dummyHash, _ = hasher.Hash(dummyPassword)
	})
	if srv.dummyHash != "" {
		hasher.Check(password, srv.dummyHash)
	}
}

// newInputValidator registers maxbytes, a length limit in bytes. The built-in max counts runes.
func newInputValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}

		return len(fl.Field().String()) <= limit
	})

	return validate
}

type studentFields struct {
	Name     string `validate:"required,max=100"`
	Surname  string `validate:"required,max=100"`
	Email    string `validate:"required,email,max=255"`
	Login    string `validate:"required,max=100"`
	Password string `validate:"required,maxbytes=72"`
}

type teacherFields struct {
	Name     string `validate:"required,max=100"`
	Surname  string `validate:"required,max=100"`
	Email    string `validate:"required,email,max=255"`
	Degree   string `validate:"required,max=100"`
	Position string `validate:"required,max=100"`
	Login    string `validate:"required,max=100"`
	Password string `validate:"required,maxbytes=72"`
}

type adminFields struct {
	Login    string `validate:"required,max=100"`
	Password string `validate:"required,maxbytes=72"`
}

// RegisterStudent hashes the password with the student scheme and inserts one student record.
func (srv *accountService) RegisterStudent(ctx context.Context, input *usecase.RegisterStudentInput) (*usecase.RegisterOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("missing registration data")
	}

	if err := srv.validate.Struct(studentFields(*input)); err != nil {
		srv.metrics.Registration(entity.RoleStudent, service.OutcomeFailure)

		return nil, domainerrors.ErrInvalidInput.WithDetails(util.DescribeValidationError(err))
	}

	account := &entity.Account{
		Role:  entity.RoleStudent,
		Login: input.Login,
		StudentProfile: &entity.StudentProfile{
			Name:    input.Name,
			Surname: input.Surname,
			Email:   input.Email,
		},
	}

	return srv.register(ctx, account, input.Password)
}

// RegisterTeacherOrAdmin registers a privileged account. Any role other than teacher
// or admin is rejected before anything is hashed or stored.
func (srv *accountService) RegisterTeacherOrAdmin(ctx context.Context, input *usecase.RegisterPrivilegedInput) (*usecase.RegisterOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("missing registration data")
	}

	var (
		account *entity.Account
		err     error
	)
	switch input.Role {
	case entity.RoleTeacher:
		err = srv.validate.Struct(teacherFields{
			Name:     input.Name,
			Surname:  input.Surname,
			Email:    input.Email,
			Degree:   input.Degree,
			Position: input.Position,
			Login:    input.Login,
			Password: input.Password,
		})
		account = &entity.Account{
			Role:  entity.RoleTeacher,
			Login: input.Login,
			TeacherProfile: &entity.TeacherProfile{
				Name:     input.Name,
				Surname:  input.Surname,
				Email:    input.Email,
				Degree:   input.Degree,
				Position: input.Position,
			},
		}
	case entity.RoleAdmin:
		err = srv.validate.Struct(adminFields{Login: input.Login, Password: input.Password})
		account = &entity.Account{
			Role:  entity.RoleAdmin,
			Login: input.Login,
		}
	default:
		srv.log(ctx).Warn("Rejected privileged registration", slog.Int("role", int(input.Role)))

		return nil, domainerrors.ErrInvalidInput.WithDetails("Wrong user role!")
	}

	if err != nil {
		srv.metrics.Registration(input.Role, service.OutcomeFailure)

		return nil, domainerrors.ErrInvalidInput.WithDetails(util.DescribeValidationError(err))
	}

	return srv.register(ctx, account, input.Password)
}

// register hashes the password with the account role's scheme and performs one insert in one transaction.
func (srv *accountService) register(ctx context.Context, account *entity.Account, password string) (*usecase.RegisterOutput, error) {
	role := account.Role
	srv.log(ctx).Info("Starting registration", slog.String("role", role.String()), slog.String("login", account.Login))

	hasher, err := srv.hashers.For(role)
	if err != nil {
		srv.metrics.Registration(role, service.OutcomeError)

		return nil, errors.Wrap(err, "failed to select password hasher")
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		srv.metrics.Registration(role, service.OutcomeError)
		srv.log(ctx).Error("Failed to hash password during registration", slog.String("role", role.String()), slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}
	account.PasswordHash = hash

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AccountRepo().Create(ctx, account)
	})
	if err != nil {
		outcome := service.OutcomeError
		if errors.Is(err, domainerrors.ErrLoginAlreadyExists) {
			outcome = service.OutcomeFailure
		}
		srv.metrics.Registration(role, outcome)
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("role", role.String()), slog.String("login", account.Login), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.metrics.Registration(role, service.OutcomeSuccess)
	srv.log(ctx).Debug("Registration completed", slog.String("role", role.String()), slog.Int("accountID", account.ID))

	return &usecase.RegisterOutput{
		AccountID: account.ID,
		Role:      role,
		Login:     account.Login,
	}, nil
}
