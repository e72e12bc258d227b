package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"reportsys/internal/domain/entity"
	domainerrors "reportsys/internal/domain/errors"
	"reportsys/internal/domain/repository"
	"reportsys/internal/domain/service"
	"reportsys/internal/infra/auth"
	"reportsys/internal/infra/metrics"
	mockRepo "reportsys/internal/mocks/repository"
	mockSvc "reportsys/internal/mocks/service"
	"reportsys/internal/usecase"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const executeFnType = "func(repository.RepositoryFactory) error"

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service       usecase.AccountUsecase
	txManager     *mockRepo.MockTransactionManager
	accountRepo   *mockRepo.MockAccountRepository
	tokenService  *mockSvc.MockTokenService
	studentHasher *mockSvc.MockPasswordHasher
	teacherHasher *mockSvc.MockPasswordHasher
	adminHasher   *mockSvc.MockPasswordHasher
}

func (f accountServiceFixtures) hasher(role entity.Role) *mockSvc.MockPasswordHasher {
	switch role {
	case entity.RoleTeacher:
		return f.teacherHasher
	case entity.RoleAdmin:
		return f.adminHasher
	default:
		return f.studentHasher
	}
}

func newTestAccountService(t *testing.T, hashers service.HasherTable, fx *accountServiceFixtures) {
	fx.txManager = mockRepo.NewMockTransactionManager(t)
	fx.accountRepo = mockRepo.NewMockAccountRepository(t)
	fx.tokenService = mockSvc.NewMockTokenService(t)

	fx.service = NewAccountService(AccountServiceParams{
		TxManager:    fx.txManager,
		AccountRepo:  fx.accountRepo,
		Hashers:      hashers,
		TokenService: fx.tokenService,
		Metrics:      metrics.NewAccountMetrics(prometheus.NewRegistry()),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	fx := accountServiceFixtures{
		studentHasher: mockSvc.NewMockPasswordHasher(t),
		teacherHasher: mockSvc.NewMockPasswordHasher(t),
		adminHasher:   mockSvc.NewMockPasswordHasher(t),
	}
	newTestAccountService(t, service.HasherTable{
		entity.RoleStudent: fx.studentHasher,
		entity.RoleTeacher: fx.teacherHasher,
		entity.RoleAdmin:   fx.adminHasher,
	}, &fx)

	return fx
}

// expectNotFoundBefore makes every partition ahead of role in login priority miss.
func expectNotFoundBefore(fx accountServiceFixtures, ctx context.Context, role entity.Role, login string) {
	for _, r := range entity.LoginPriority {
		if r == role {
			return
		}
		fx.accountRepo.EXPECT().FindActiveByLogin(ctx, r, login).Return(nil, repository.ErrAccountNotFound).Once()
	}
}

// expectInsert runs the transaction body against a factory whose repository assigns id.
func expectInsert(t *testing.T, fx accountServiceFixtures, ctx context.Context, id int, created **entity.Account) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType(executeFnType)).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRepo := mockRepo.NewMockAccountRepository(t)
			mockFactory.EXPECT().AccountRepo().Return(txRepo)
			txRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(_ context.Context, account *entity.Account) {
					account.ID = id
					if created != nil {
						*created = account
					}
				}).
				Return(nil).Once()

			return fn(mockFactory)
		}).Once()
}

func TestAccountService_Login_Success(t *testing.T) {
	tests := []struct {
		name string
		role entity.Role
		id   int
	}{
		{name: "student", role: entity.RoleStudent, id: 11},
		{name: "teacher", role: entity.RoleTeacher, id: 22},
		{name: "admin", role: entity.RoleAdmin, id: 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			ctx := context.Background()

			account := &entity.Account{ID: tt.id, Role: tt.role, Login: "jdoe", PasswordHash: "stored-hash"}
			expectNotFoundBefore(fx, ctx, tt.role, "jdoe")
			fx.accountRepo.EXPECT().FindActiveByLogin(ctx, tt.role, "jdoe").Return(account, nil).Once()
			fx.hasher(tt.role).EXPECT().Check("secret", "stored-hash").Return(true).Once()
			fx.tokenService.EXPECT().Issue(entity.Principal{ID: tt.id, Role: tt.role}).Return("signed-token", nil).Once()

			output, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "jdoe", Password: "secret"})

			require.NoError(t, err)
			assert.Equal(t, "signed-token", output.Token)
		})
	}
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	account := &entity.Account{ID: 5, Role: entity.RoleTeacher, Login: "prof", PasswordHash: "stored-hash"}
	expectNotFoundBefore(fx, ctx, entity.RoleTeacher, "prof")
	fx.accountRepo.EXPECT().FindActiveByLogin(ctx, entity.RoleTeacher, "prof").Return(account, nil).Once()
	fx.teacherHasher.EXPECT().Check("bad", "stored-hash").Return(false).Once()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "prof", Password: "bad"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
}

func TestAccountService_Login_UnknownLoginLooksLikeWrongPassword(t *testing.T) {
	ctx := context.Background()

	unknown := createTestAccountService(t)
	expectNotFoundBefore(unknown, ctx, entity.Role(-1), "ghost")
	unknown.adminHasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
	unknown.adminHasher.EXPECT().Check("secret", "dummy-hash").Return(false).Once()

	_, unknownErr := unknown.service.Login(ctx, &usecase.LoginInput{Login: "ghost", Password: "secret"})

	wrong := createTestAccountService(t)
	account := &entity.Account{ID: 1, Role: entity.RoleStudent, Login: "ghost", PasswordHash: "stored-hash"}
	wrong.accountRepo.EXPECT().FindActiveByLogin(ctx, entity.RoleStudent, "ghost").Return(account, nil).Once()
	wrong.studentHasher.EXPECT().Check("secret", "stored-hash").Return(false).Once()

	_, wrongErr := wrong.service.Login(ctx, &usecase.LoginInput{Login: "ghost", Password: "secret"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrAuthenticationFailed)
	assert.Equal(t, wrongErr.Error(), unknownErr.Error())
}

func TestAccountService_Login_DummyHashComputedOnce(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.adminHasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
	fx.adminHasher.EXPECT().Check(mock.Anything, "dummy-hash").Return(false).Twice()
	for range 2 {
		expectNotFoundBefore(fx, ctx, entity.Role(-1), "ghost")
	}

	for range 2 {
		_, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "ghost", Password: "secret"})
		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
	}
}

func TestAccountService_Login_DeletedAccountFails(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	account := &entity.Account{ID: 9, Role: entity.RoleStudent, Login: "gone", PasswordHash: "stored-hash", IsDeleted: true}
	fx.accountRepo.EXPECT().FindActiveByLogin(ctx, entity.RoleStudent, "gone").Return(account, nil).Once()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "gone", Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
}

func TestAccountService_Login_EmptyCredentials(t *testing.T) {
	fx := createTestAccountService(t)

	for _, input := range []*usecase.LoginInput{
		nil,
		{Login: "", Password: "secret"},
		{Login: "jdoe", Password: ""},
	} {
		_, err := fx.service.Login(context.Background(), input)
		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
	}
}

func TestAccountService_Login_StudentShadowsOtherPartitions(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	// The teacher and admin partitions are never queried once the student partition matches.
	student := &entity.Account{ID: 1, Role: entity.RoleStudent, Login: "shared", PasswordHash: "student-hash"}
	fx.accountRepo.EXPECT().FindActiveByLogin(ctx, entity.RoleStudent, "shared").Return(student, nil).Once()
	fx.studentHasher.EXPECT().Check("teacher-password", "student-hash").Return(false).Once()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "shared", Password: "teacher-password"})

	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
}

func TestAccountService_Login_RepositoryError(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find student")
	fx.accountRepo.EXPECT().FindActiveByLogin(ctx, entity.RoleStudent, "jdoe").Return(nil, dbErr).Once()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "jdoe", Password: "secret"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrAuthenticationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestAccountService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	account := &entity.Account{ID: 4, Role: entity.RoleStudent, Login: "jdoe", PasswordHash: "stored-hash"}
	fx.accountRepo.EXPECT().FindActiveByLogin(ctx, entity.RoleStudent, "jdoe").Return(account, nil).Once()
	fx.studentHasher.EXPECT().Check("secret", "stored-hash").Return(true).Once()
	fx.tokenService.EXPECT().Issue(account.Principal()).Return("", errors.New("signing failed")).Once()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "jdoe", Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrTokenIssueFailed)
}

func TestAccountService_RegisterStudent_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.RegisterStudentInput{
		Name:     "Jan",
		Surname:  "Kowalski",
		Email:    "jan@example.com",
		Login:    "jkowalski",
		Password: "Passw0rd!",
	}

	var created *entity.Account
	fx.studentHasher.EXPECT().Hash("Passw0rd!").Return("student-hash", nil).Once()
	expectInsert(t, fx, ctx, 7, &created)

	output, err := fx.service.RegisterStudent(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 7, output.AccountID)
	assert.Equal(t, entity.RoleStudent, output.Role)
	assert.Equal(t, "jkowalski", output.Login)

	require.NotNil(t, created)
	assert.Equal(t, "student-hash", created.PasswordHash)
	assert.False(t, created.IsDeleted)
	require.NotNil(t, created.StudentProfile)
	assert.Equal(t, "jan@example.com", created.StudentProfile.Email)
	assert.Nil(t, created.TeacherProfile)
}

func TestAccountService_RegisterStudent_InvalidInput(t *testing.T) {
	fx := createTestAccountService(t)

	tests := []struct {
		name  string
		input *usecase.RegisterStudentInput
	}{
		{name: "nil input", input: nil},
		{name: "missing name", input: &usecase.RegisterStudentInput{Surname: "K", Email: "a@b.pl", Login: "l", Password: "p"}},
		{name: "bad email", input: &usecase.RegisterStudentInput{Name: "J", Surname: "K", Email: "not-an-email", Login: "l", Password: "p"}},
		{name: "missing password", input: &usecase.RegisterStudentInput{Name: "J", Surname: "K", Email: "a@b.pl", Login: "l"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.RegisterStudent(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}
}

func TestAccountService_Register_PasswordLimitCountsBytes(t *testing.T) {
	// 40 two-byte runes: within a 72 character limit, but 80 bytes for bcrypt.
	password := strings.Repeat("ą", 40)
	require.Len(t, password, 80)

	bcryptHasher := auth.NewBcryptHasher(bcrypt.MinCost)
	fx := accountServiceFixtures{}
	newTestAccountService(t, service.HasherTable{
		entity.RoleStudent: bcryptHasher,
		entity.RoleTeacher: bcryptHasher,
		entity.RoleAdmin:   bcryptHasher,
	}, &fx)
	ctx := context.Background()

	_, err := fx.service.RegisterStudent(ctx, &usecase.RegisterStudentInput{
		Name: "Jan", Surname: "Kowalski", Email: "jan@example.com", Login: "jk", Password: password,
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	assert.NotErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "password must be at most 72 bytes")

	_, err = fx.service.RegisterTeacherOrAdmin(ctx, &usecase.RegisterPrivilegedInput{
		Role: entity.RoleAdmin, Login: "root", Password: password,
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	var created *entity.Account
	expectInsert(t, fx, ctx, 7, &created)

	_, err = fx.service.RegisterStudent(ctx, &usecase.RegisterStudentInput{
		Name: "Jan", Surname: "Kowalski", Email: "jan@example.com", Login: "jk", Password: strings.Repeat("ą", 36),
	})
	require.NoError(t, err)
	require.NotNil(t, created)
}

func TestAccountService_RegisterStudent_LoginTaken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.studentHasher.EXPECT().Hash("Passw0rd!").Return("student-hash", nil).Once()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType(executeFnType)).
		Return(domainerrors.ErrLoginAlreadyExists).Once()

	_, err := fx.service.RegisterStudent(ctx, &usecase.RegisterStudentInput{
		Name: "Jan", Surname: "Kowalski", Email: "jan@example.com", Login: "taken", Password: "Passw0rd!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrLoginAlreadyExists)
}

func TestAccountService_RegisterStudent_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	fx.studentHasher.EXPECT().Hash("Passw0rd!").Return("", errors.New("entropy exhausted")).Once()

	_, err := fx.service.RegisterStudent(context.Background(), &usecase.RegisterStudentInput{
		Name: "Jan", Surname: "Kowalski", Email: "jan@example.com", Login: "jk", Password: "Passw0rd!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_RegisterTeacherOrAdmin_Teacher(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	var created *entity.Account
	fx.teacherHasher.EXPECT().Hash("Passw0rd!").Return("teacher-hash", nil).Once()
	expectInsert(t, fx, ctx, 3, &created)

	output, err := fx.service.RegisterTeacherOrAdmin(ctx, &usecase.RegisterPrivilegedInput{
		Role:     entity.RoleTeacher,
		Name:     "Anna",
		Surname:  "Nowak",
		Email:    "anna@example.com",
		Degree:   "PhD",
		Position: "Lecturer",
		Login:    "anowak",
		Password: "Passw0rd!",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleTeacher, output.Role)
	require.NotNil(t, created.TeacherProfile)
	assert.Equal(t, "Lecturer", created.TeacherProfile.Position)
	assert.Equal(t, "teacher-hash", created.PasswordHash)
}

func TestAccountService_RegisterTeacherOrAdmin_Admin(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	var created *entity.Account
	fx.adminHasher.EXPECT().Hash("Passw0rd!").Return("admin-hash", nil).Once()
	expectInsert(t, fx, ctx, 1, &created)

	output, err := fx.service.RegisterTeacherOrAdmin(ctx, &usecase.RegisterPrivilegedInput{
		Role:     entity.RoleAdmin,
		Login:    "root",
		Password: "Passw0rd!",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, output.Role)
	assert.Nil(t, created.StudentProfile)
	assert.Nil(t, created.TeacherProfile)
}

func TestAccountService_RegisterTeacherOrAdmin_InvalidRole(t *testing.T) {
	// No hasher or transaction expectations: nothing may be hashed or inserted.
	fx := createTestAccountService(t)

	for _, role := range []entity.Role{entity.RoleStudent, entity.Role(3), entity.Role(-1)} {
		_, err := fx.service.RegisterTeacherOrAdmin(context.Background(), &usecase.RegisterPrivilegedInput{
			Role:     role,
			Name:     "X",
			Surname:  "Y",
			Email:    "x@example.com",
			Login:    "xy",
			Password: "Passw0rd!",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Wrong user role!", appErr.Details())
	}
}

func TestAccountService_RegisterTeacherOrAdmin_TeacherMissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.RegisterTeacherOrAdmin(context.Background(), &usecase.RegisterPrivilegedInput{
		Role:     entity.RoleTeacher,
		Name:     "Anna",
		Surname:  "Nowak",
		Email:    "anna@example.com",
		Login:    "anowak",
		Password: "Passw0rd!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAccountService_RegisterThenLogin(t *testing.T) {
	bcryptHasher := auth.NewBcryptHasher(bcrypt.MinCost)
	fx := accountServiceFixtures{}
	newTestAccountService(t, service.HasherTable{
		entity.RoleStudent: bcryptHasher,
		entity.RoleTeacher: bcryptHasher,
		entity.RoleAdmin:   bcryptHasher,
	}, &fx)
	ctx := context.Background()

	var created *entity.Account
	expectInsert(t, fx, ctx, 42, &created)

	_, err := fx.service.RegisterStudent(ctx, &usecase.RegisterStudentInput{
		Name: "Jan", Surname: "Kowalski", Email: "jan@example.com", Login: "jkowalski", Password: "Passw0rd!",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, "Passw0rd!", created.PasswordHash)

	fx.accountRepo.EXPECT().FindActiveByLogin(ctx, entity.RoleStudent, "jkowalski").Return(created, nil).Twice()
	fx.tokenService.EXPECT().Issue(entity.Principal{ID: 42, Role: entity.RoleStudent}).Return("signed-token", nil).Once()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Login: "jkowalski", Password: "Passw0rd!"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Login: "jkowalski", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationFailed)
}
