// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"reportsys/internal/domain/entity"
	domainerrors "reportsys/internal/domain/errors"
	"reportsys/internal/domain/repository"
	"reportsys/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements repository.AccountRepository over the three partition tables.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindActiveByLogin looks the login up in the partition of the given role only.
// Lookups go to the primary so an account can log in right after it was registered.
func (repo *accountRepository) FindActiveByLogin(ctx context.Context, role entity.Role, login string) (*entity.Account, error) {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)

	var (
		account *entity.Account
		err     error
	)
	switch role {
	case entity.RoleStudent:
		var m model.StudentModel
		err = db.Where("login = ? AND is_deleted = ?", login, false).First(&m).Error
		account = toStudentDomain(&m)
	case entity.RoleTeacher:
		var m model.TeacherModel
		err = db.Where("login = ? AND is_deleted = ?", login, false).First(&m).Error
		account = toTeacherDomain(&m)
	case entity.RoleAdmin:
		var m model.AdminModel
		err = db.Where("login = ?", login).First(&m).Error
		account = toAdminDomain(&m)
	default:
		return nil, errors.Errorf("unknown account role %d", int(role))
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find "+role.String()+" by login")
	}

	return account, nil
}

// Create inserts a single row into the partition named by account.Role.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	db := repo.db.WithContext(ctx)

	var (
		err error
		id  func() int
	)
	switch account.Role {
	case entity.RoleStudent:
		m := fromStudentDomain(account)
		err = db.Create(m).Error
		id = func() int { return m.ID }
	case entity.RoleTeacher:
		m := fromTeacherDomain(account)
		err = db.Create(m).Error
		id = func() int { return m.ID }
	case entity.RoleAdmin:
		m := fromAdminDomain(account)
		err = db.Create(m).Error
		id = func() int { return m.ID }
	default:
		return domainerrors.ErrInvalidInput.WithDetails("unknown account role")
	}

	if err != nil {
		return translateCreateError(err, account.Role)
	}

	account.ID = id()

	return nil
}

func translateCreateError(err error, role entity.Role) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrLoginAlreadyExists.WrapMessage(role.String() + " login already exists")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required " + role.String() + " information")
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrAccountCreationFailed.WrapMessage("invalid " + role.String() + " data")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to create "+role.String())
}

// --- Mapper Functions ---

func toStudentDomain(data *model.StudentModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Role:         entity.RoleStudent,
		Login:        data.Login,
		PasswordHash: data.Password,
		IsDeleted:    data.IsDeleted,
		StudentProfile: &entity.StudentProfile{
			Name:    data.Name,
			Surname: data.Surname,
			Email:   data.Email,
		},
	}
}

func toTeacherDomain(data *model.TeacherModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Role:         entity.RoleTeacher,
		Login:        data.Login,
		PasswordHash: data.Password,
		IsDeleted:    data.IsDeleted,
		TeacherProfile: &entity.TeacherProfile{
			Name:     data.Name,
			Surname:  data.Surname,
			Email:    data.Email,
			Degree:   data.Degree,
			Position: data.Position,
		},
	}
}

func toAdminDomain(data *model.AdminModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Role:         entity.RoleAdmin,
		Login:        data.Login,
		PasswordHash: data.Password,
	}
}

func fromStudentDomain(data *entity.Account) *model.StudentModel {
	m := &model.StudentModel{
		ID:        data.ID,
		Login:     data.Login,
		Password:  data.PasswordHash,
		IsDeleted: data.IsDeleted,
	}
	if p := data.StudentProfile; p != nil {
		m.Name = p.Name
		m.Surname = p.Surname
		m.Email = p.Email
	}

	return m
}

func fromTeacherDomain(data *entity.Account) *model.TeacherModel {
	m := &model.TeacherModel{
		ID:        data.ID,
		Login:     data.Login,
		Password:  data.PasswordHash,
		IsDeleted: data.IsDeleted,
	}
	if p := data.TeacherProfile; p != nil {
		m.Name = p.Name
		m.Surname = p.Surname
		m.Email = p.Email
		m.Degree = p.Degree
		m.Position = p.Position
	}

	return m
}

func fromAdminDomain(data *entity.Account) *model.AdminModel {
	return &model.AdminModel{
		ID:       data.ID,
		Login:    data.Login,
		Password: data.PasswordHash,
	}
}
