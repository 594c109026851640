package bootstrap

import (
	"context"

	"github.com/marafik-io/greenspace/internal/config"
	"github.com/marafik-io/greenspace/internal/infra/cache"
	"github.com/marafik-io/greenspace/internal/infra/db"
	"github.com/marafik-io/greenspace/internal/infra/logger"
	"github.com/marafik-io/greenspace/internal/infra/queue"
	"github.com/marafik-io/greenspace/internal/modules/handler"
	"github.com/marafik-io/greenspace/internal/modules/model"
	"github.com/marafik-io/greenspace/internal/modules/repo"
	"github.com/marafik-io/greenspace/internal/modules/service"
	"github.com/marafik-io/greenspace/internal/pkg/role"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.Role{},
				&model.Account{},
				&model.Identity{},
				&model.TaskType{},
				&model.Task{},
				&model.HiddenTask{},
				&model.TaskHistory{},
				&model.ExcelFile{},
			)
			if err := seedRoles(d); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		rdb := cache.New(cfg)
		return rdb, nil
	})

	// RabbitMQ Connection
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return amqp.Dial(cfg.RabbitMQ.URL)
	})
	do.Provide(inj, func(i *do.Injector) (*queue.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		conn := do.MustInvoke[*amqp.Connection](i)
		return queue.NewPublisher(conn, cfg.RabbitMQ.Queue), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.RoleRepo, error) {
		return repo.NewRoleRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.AccountRepo, error) {
		return repo.NewAccountRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.IdentityRepo, error) {
		return repo.NewIdentityRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskTypeRepo, error) {
		return repo.NewTaskTypeRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskRepo, error) {
		return repo.NewTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.HiddenTaskRepo, error) {
		return repo.NewHiddenTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.SessionService, error) {
		return service.NewSessionService(
			do.MustInvoke[*redis.Client](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(
			do.MustInvoke[repo.AccountRepo](i),
			do.MustInvoke[repo.IdentityRepo](i),
			do.MustInvoke[repo.RoleRepo](i),
			do.MustInvoke[service.SessionService](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskService, error) {
		return service.NewTaskService(
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[repo.TaskTypeRepo](i),
			do.MustInvoke[repo.HiddenTaskRepo](i),
			do.MustInvoke[*queue.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskTypeService, error) {
		return service.NewTaskTypeService(
			do.MustInvoke[repo.TaskTypeRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.IdentityService, error) {
		return service.NewIdentityService(
			do.MustInvoke[repo.IdentityRepo](i),
			do.MustInvoke[repo.AccountRepo](i),
			do.MustInvoke[repo.RoleRepo](i),
			do.MustInvoke[service.SessionService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.AuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaskHandler, error) {
		return handler.NewTaskHandler(do.MustInvoke[service.TaskService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.AdminTaskHandler, error) {
		return handler.NewAdminTaskHandler(do.MustInvoke[service.TaskService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.HistoryHandler, error) {
		return handler.NewHistoryHandler(do.MustInvoke[service.TaskService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaskTypeHandler, error) {
		return handler.NewTaskTypeHandler(do.MustInvoke[service.TaskTypeService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UserHandler, error) {
		return handler.NewUserHandler(do.MustInvoke[service.IdentityService](i)), nil
	})

	return inj
}

// seedRoles makes sure the three built-in roles exist before the first
// login.
func seedRoles(d *gorm.DB) error {
	roles := repo.NewRoleRepo(d)
	for _, name := range role.All() {
		if _, err := roles.GetOrCreate(context.Background(), name.String()); err != nil {
			return err
		}
	}
	return nil
}
