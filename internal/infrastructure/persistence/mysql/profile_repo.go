package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/storefront/internal/domain/session"
	"github.com/xiebiao/storefront/internal/infrastructure/identity"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// profileRepository 档案仓储实现(MySQL)
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository 创建档案仓储
func NewProfileRepository(db *gorm.DB) identity.ProfileRepository {
	return &profileRepository{db: db}
}

// Create 创建档案
func (r *profileRepository) Create(ctx context.Context, profile *identity.ProfileRecord) error {
	model := &ProfileModel{
		UserID:    profile.UserID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Role:      string(profile.Role),
		CreatedAt: profile.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "档案已存在")
		}
		return apperrors.Wrap(err, "创建档案失败")
	}
	return nil
}

// FindByUserID 根据用户ID查找档案
func (r *profileRepository) FindByUserID(ctx context.Context, userID string) (*identity.ProfileRecord, error) {
	var model ProfileModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(err, "查询档案失败")
	}

	return &identity.ProfileRecord{
		UserID:    model.UserID,
		Email:     model.Email,
		FullName:  model.FullName,
		Role:      session.Role(model.Role),
		CreatedAt: model.CreatedAt,
	}, nil
}
