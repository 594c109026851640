package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/modules/model"
	"gorm.io/gorm"
)

type IdentityRepo interface {
	Create(ctx context.Context, ident *model.Identity) error
	Save(ctx context.Context, ident *model.Identity) error
	// GetByID loads an identity with its role and account.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Identity, error)
	// GetByAccount loads the identity bound to an account, with its role.
	GetByAccount(ctx context.Context, accountID uuid.UUID) (*model.Identity, error)
	// List returns every identity with role and account preloaded.
	List(ctx context.Context) ([]model.Identity, error)
}

type identityRepo struct{ db *gorm.DB }

func NewIdentityRepo(db *gorm.DB) IdentityRepo {
	return &identityRepo{db: db}
}

func (r *identityRepo) Create(ctx context.Context, ident *model.Identity) error {
	return r.db.WithContext(ctx).Create(ident).Error
}

func (r *identityRepo) Save(ctx context.Context, ident *model.Identity) error {
	return r.db.WithContext(ctx).Save(ident).Error
}

func (r *identityRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Identity, error) {
	var ident model.Identity
	err := r.db.WithContext(ctx).Preload("Role").Preload("Account").
		Where("id = ?", id).First(&ident).Error
	if err != nil {
		return nil, err
	}
	return &ident, nil
}

func (r *identityRepo) GetByAccount(ctx context.Context, accountID uuid.UUID) (*model.Identity, error) {
	var ident model.Identity
	err := r.db.WithContext(ctx).Preload("Role").Preload("Account").
		Where("account_id = ?", accountID).First(&ident).Error
	if err != nil {
		return nil, err
	}
	return &ident, nil
}

func (r *identityRepo) List(ctx context.Context) ([]model.Identity, error) {
	var items []model.Identity
	err := r.db.WithContext(ctx).Preload("Role").Preload("Account").
		Order("created_at ASC").Find(&items).Error
	return items, err
}
