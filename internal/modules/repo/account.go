package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/modules/model"
	"gorm.io/gorm"
)

type AccountRepo interface {
	// CreateWithIdentity creates the account and its identity atomically.
	CreateWithIdentity(ctx context.Context, acc *model.Account, ident *model.Identity) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	Save(ctx context.Context, acc *model.Account) error
	// Delete removes the account row; the identity cascades and owned
	// tasks keep their rows with created_by nulled.
	Delete(ctx context.Context, acc *model.Account) error
	// EmailTaken reports whether another account already uses the email.
	EmailTaken(ctx context.Context, email string, exclude uuid.UUID) (bool, error)
}

type accountRepo struct{ db *gorm.DB }

func NewAccountRepo(db *gorm.DB) AccountRepo {
	return &accountRepo{db: db}
}

func (r *accountRepo) CreateWithIdentity(ctx context.Context, acc *model.Account, ident *model.Identity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(acc).Error; err != nil {
			return err
		}
		accID := acc.ID
		ident.AccountID = &accID
		return tx.Create(ident).Error
	})
}

func (r *accountRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	var acc model.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *accountRepo) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	var acc model.Account
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *accountRepo) Save(ctx context.Context, acc *model.Account) error {
	return r.db.WithContext(ctx).Save(acc).Error
}

func (r *accountRepo) Delete(ctx context.Context, acc *model.Account) error {
	return r.db.WithContext(ctx).Delete(acc).Error
}

func (r *accountRepo) EmailTaken(ctx context.Context, email string, exclude uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("email = ? AND id <> ?", email, exclude).
		Count(&n).Error
	return n > 0, err
}
