package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/modules/model"
	"github.com/marafik-io/greenspace/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TaskTypeService interface {
	List(ctx context.Context) ([]model.TaskType, error)
	Create(ctx context.Context, name string) (*model.TaskType, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*model.TaskType, error)
	// Delete removes the type and, through the declared cascade, every
	// dependent task.
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskTypeService struct {
	types repo.TaskTypeRepo
	log   *zap.Logger
}

func NewTaskTypeService(types repo.TaskTypeRepo, log *zap.Logger) TaskTypeService {
	return &taskTypeService{types: types, log: log}
}

func (s *taskTypeService) List(ctx context.Context) ([]model.TaskType, error) {
	return s.types.List(ctx)
}

func (s *taskTypeService) Create(ctx context.Context, name string) (*model.TaskType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingFields
	}
	tt := &model.TaskType{Name: name}
	if err := s.types.Create(ctx, tt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	s.log.Sugar().Infow("task type created", "task_type_id", tt.ID, "name", name)
	return tt, nil
}

func (s *taskTypeService) Rename(ctx context.Context, id uuid.UUID, name string) (*model.TaskType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingFields
	}
	tt, err := s.types.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundOrUnauthorized
		}
		return nil, err
	}
	tt.Name = name
	if err := s.types.Save(ctx, tt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return tt, nil
}

func (s *taskTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	tt, err := s.types.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFoundOrUnauthorized
		}
		return err
	}
	if err := s.types.Delete(ctx, tt); err != nil {
		return err
	}
	s.log.Sugar().Infow("task type deleted", "task_type_id", tt.ID, "name", tt.Name)
	return nil
}
