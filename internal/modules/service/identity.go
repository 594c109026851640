package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/modules/model"
	"github.com/marafik-io/greenspace/internal/modules/repo"
	"github.com/marafik-io/greenspace/internal/pkg/role"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserView is one row of the user administration listing.
type UserView struct {
	IdentityID uuid.UUID `json:"identity_id"`
	Username   string    `json:"username"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Active     bool      `json:"active"`
}

type UserListOutput struct {
	Users       []UserView   `json:"users"`
	Roles       []model.Role `json:"roles"`
	Total       int          `json:"total"`
	Employees   int          `json:"employees"`
	Admins      int          `json:"admins"`
	SuperAdmins int          `json:"super_admins"`
}

// IdentityService is the Super Admin user administration surface. Every
// mutation is rejected up front when the actor targets their own identity.
type IdentityService interface {
	List(ctx context.Context) (*UserListOutput, error)
	// ToggleStatus flips the active flag and returns the new value. On
	// deactivation every session of the account is revoked immediately.
	ToggleStatus(ctx context.Context, actor, target uuid.UUID) (bool, error)
	ChangeRole(ctx context.Context, actor, target, newRoleID uuid.UUID) error
	EditProfile(ctx context.Context, actor, target uuid.UUID, lastName, email string) error
	// Delete removes the target's account; the identity cascades away
	// and owned tasks keep their rows with created_by nulled.
	Delete(ctx context.Context, actor, target uuid.UUID) error
}

type identityService struct {
	identities repo.IdentityRepo
	accounts   repo.AccountRepo
	roles      repo.RoleRepo
	sessions   SessionService
	log        *zap.Logger
}

func NewIdentityService(identities repo.IdentityRepo, accounts repo.AccountRepo, roles repo.RoleRepo, sessions SessionService, log *zap.Logger) IdentityService {
	return &identityService{
		identities: identities,
		accounts:   accounts,
		roles:      roles,
		sessions:   sessions,
		log:        log,
	}
}

func (s *identityService) List(ctx context.Context) (*UserListOutput, error) {
	idents, err := s.identities.List(ctx)
	if err != nil {
		return nil, err
	}
	roleRows, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &UserListOutput{
		Users: make([]UserView, 0, len(idents)),
		Roles: roleRows,
		Total: len(idents),
	}
	for i := range idents {
		ident := &idents[i]
		v := UserView{
			IdentityID: ident.ID,
			Role:       ident.RoleName(),
			Active:     ident.Active,
		}
		if ident.Account != nil {
			v.Username = ident.Account.Username
			v.LastName = ident.Account.LastName
			v.Email = ident.Account.Email
		}
		switch role.Role(ident.RoleName()) {
		case role.Employee:
			out.Employees++
		case role.Admin:
			out.Admins++
		case role.SuperAdmin:
			out.SuperAdmins++
		}
		out.Users = append(out.Users, v)
	}
	return out, nil
}

// loadTarget enforces the self-modification guard before touching the row.
func (s *identityService) loadTarget(ctx context.Context, actor, target uuid.UUID) (*model.Identity, error) {
	if actor == target {
		return nil, ErrSelfModification
	}
	ident, err := s.identities.GetByID(ctx, target)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFoundOrUnauthorized
		}
		return nil, err
	}
	return ident, nil
}

func (s *identityService) ToggleStatus(ctx context.Context, actor, target uuid.UUID) (bool, error) {
	ident, err := s.loadTarget(ctx, actor, target)
	if err != nil {
		return false, err
	}

	ident.Active = !ident.Active
	if err := s.identities.Save(ctx, ident); err != nil {
		return false, err
	}

	if !ident.Active && ident.AccountID != nil {
		// The account must lose access mid-session, not at token expiry.
		if err := s.sessions.RevokeAll(ctx, *ident.AccountID); err != nil {
			return false, err
		}
	}
	s.log.Sugar().Infow("identity status toggled", "identity_id", ident.ID, "active", ident.Active, "actor", actor)
	return ident.Active, nil
}

func (s *identityService) ChangeRole(ctx context.Context, actor, target, newRoleID uuid.UUID) error {
	ident, err := s.loadTarget(ctx, actor, target)
	if err != nil {
		return err
	}

	newRole, err := s.roles.GetByID(ctx, newRoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownRole
		}
		return err
	}

	oldRole := ident.RoleName()
	ident.RoleID = newRole.ID
	ident.Role = newRole
	if err := s.identities.Save(ctx, ident); err != nil {
		return err
	}
	s.log.Sugar().Infow("identity role changed", "identity_id", ident.ID, "from", oldRole, "to", newRole.Name, "actor", actor)
	return nil
}

func (s *identityService) EditProfile(ctx context.Context, actor, target uuid.UUID, lastName, email string) error {
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	if lastName == "" || email == "" {
		return ErrMissingFields
	}

	ident, err := s.loadTarget(ctx, actor, target)
	if err != nil {
		return err
	}
	if ident.AccountID == nil || ident.Account == nil {
		return ErrNotFoundOrUnauthorized
	}

	taken, err := s.accounts.EmailTaken(ctx, email, *ident.AccountID)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	acc := ident.Account
	acc.LastName = lastName
	acc.Email = email
	if err := s.accounts.Save(ctx, acc); err != nil {
		return err
	}
	s.log.Sugar().Infow("profile edited", "identity_id", ident.ID, "actor", actor)
	return nil
}

func (s *identityService) Delete(ctx context.Context, actor, target uuid.UUID) error {
	ident, err := s.loadTarget(ctx, actor, target)
	if err != nil {
		return err
	}
	if ident.AccountID == nil || ident.Account == nil {
		return ErrNotFoundOrUnauthorized
	}

	if err := s.sessions.RevokeAll(ctx, *ident.AccountID); err != nil {
		return err
	}
	if err := s.accounts.Delete(ctx, ident.Account); err != nil {
		return err
	}
	s.log.Sugar().Infow("account deleted", "identity_id", ident.ID, "actor", actor)
	return nil
}
