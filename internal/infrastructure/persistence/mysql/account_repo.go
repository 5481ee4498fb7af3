package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/storefront/internal/infrastructure/identity"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// accountRepository 账号仓储实现(MySQL)
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository 创建账号仓储
func NewAccountRepository(db *gorm.DB) identity.AccountRepository {
	return &accountRepository{db: db}
}

// Create 创建账号
func (r *accountRepository) Create(ctx context.Context, account *identity.Account) error {
	model := &AccountModel{
		ID:        account.ID,
		Email:     account.Email,
		Password:  account.Password,
		CreatedAt: account.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建账号失败")
	}
	return nil
}

// FindByEmail 根据邮箱查找账号
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*identity.Account, error) {
	var model AccountModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询账号失败")
	}

	return toAccount(&model), nil
}

// FindByID 根据ID查找账号
func (r *accountRepository) FindByID(ctx context.Context, id string) (*identity.Account, error) {
	var model AccountModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询账号失败")
	}

	return toAccount(&model), nil
}

func toAccount(model *AccountModel) *identity.Account {
	return &identity.Account{
		ID:        model.ID,
		Email:     model.Email,
		Password:  model.Password,
		CreatedAt: model.CreatedAt,
	}
}
