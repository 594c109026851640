package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	GetByName(ctx context.Context, name string) (*model.Role, error)
	// GetOrCreate resolves a role row by name, creating it when absent.
	GetOrCreate(ctx context.Context, name string) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
}

type roleRepo struct{ db *gorm.DB }

func NewRoleRepo(db *gorm.DB) RoleRepo {
	return &roleRepo{db: db}
}

func (r *roleRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) GetByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) GetOrCreate(ctx context.Context, name string) (*model.Role, error) {
	role := model.Role{Name: name}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&role).Error
	if err != nil {
		return nil, err
	}
	// DoNothing leaves the id zero when the row already existed.
	return r.GetByName(ctx, name)
}

func (r *roleRepo) List(ctx context.Context) ([]model.Role, error) {
	var items []model.Role
	return items, r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
}
