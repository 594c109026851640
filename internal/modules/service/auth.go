package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/config"
	"github.com/marafik-io/greenspace/internal/modules/model"
	"github.com/marafik-io/greenspace/internal/modules/repo"
	"github.com/marafik-io/greenspace/internal/pkg/role"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	LastName        string
	Email           string
	Password        string
	PasswordConfirm string
}

type AuthService interface {
	// Register creates an account plus an active Employé identity.
	Register(ctx context.Context, in RegisterInput) error
	// Login verifies credentials and issues a session token. A missing
	// identity row is provisioned on the spot with the Employé role; an
	// inactive identity never gets a session.
	Login(ctx context.Context, email, password string) (string, *model.Identity, error)
	// Logout revokes the presented token.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	accounts   repo.AccountRepo
	identities repo.IdentityRepo
	roles      repo.RoleRepo
	sessions   SessionService
	log        *zap.Logger
	bcryptCost int
}

func NewAuthService(accounts repo.AccountRepo, identities repo.IdentityRepo, roles repo.RoleRepo, sessions SessionService, cfg *config.Config, log *zap.Logger) AuthService {
	cost := cfg.Auth.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &authService{
		accounts:   accounts,
		identities: identities,
		roles:      roles,
		sessions:   sessions,
		log:        log,
		bcryptCost: cost,
	}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) error {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" || in.LastName == "" {
		return ErrMissingFields
	}
	if in.Password != in.PasswordConfirm {
		return ErrPasswordMismatch
	}

	taken, err := s.accounts.EmailTaken(ctx, email, uuid.Nil)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return err
	}

	employeeRole, err := s.roles.GetOrCreate(ctx, role.Employee.String())
	if err != nil {
		return err
	}

	acc := &model.Account{
		Username:     email,
		Email:        email,
		LastName:     in.LastName,
		PasswordHash: string(hash),
	}
	identEmail := email
	ident := &model.Identity{
		RoleID: employeeRole.ID,
		Active: true,
		Email:  &identEmail,
	}
	if err := s.accounts.CreateWithIdentity(ctx, acc, ident); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}

	s.log.Sugar().Infow("account registered", "account_id", acc.ID, "email", email)
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *model.Identity, error) {
	acc, err := s.accounts.GetByUsername(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	ident, err := s.identities.GetByAccount(ctx, acc.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Legacy accounts may predate the identity table; bind them to
		// the Employé role on first login.
		employeeRole, rerr := s.roles.GetOrCreate(ctx, role.Employee.String())
		if rerr != nil {
			return "", nil, rerr
		}
		accID := acc.ID
		ident = &model.Identity{
			AccountID: &accID,
			RoleID:    employeeRole.ID,
			Role:      employeeRole,
			Active:    true,
		}
		if cerr := s.identities.Create(ctx, ident); cerr != nil {
			return "", nil, cerr
		}
		s.log.Sugar().Infow("identity provisioned on login", "account_id", acc.ID)
	} else if err != nil {
		return "", nil, err
	}

	if !ident.Active {
		s.log.Sugar().Warnw("login refused for disabled account", "account_id", acc.ID)
		return "", nil, ErrAccountDisabled
	}

	token, err := s.sessions.Issue(ctx, acc.ID)
	if err != nil {
		return "", nil, err
	}
	s.log.Sugar().Infow("login", "account_id", acc.ID, "role", ident.RoleName())
	return token, ident, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}
