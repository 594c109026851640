package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/marafik-io/greenspace/internal/modules/model"
	"github.com/marafik-io/greenspace/internal/modules/repo"
	"github.com/marafik-io/greenspace/internal/modules/serializer"
	"github.com/marafik-io/greenspace/internal/modules/service"
	"github.com/marafik-io/greenspace/internal/policy"
	"github.com/marafik-io/greenspace/internal/pkg/role"
)

// Context keys set by SessionAuth.
const (
	CtxAccountID    = "account_id"
	CtxIdentity     = "identity"
	CtxSessionToken = "session_token"
)

// SessionAuth resolves the bearer token against the session store and
// loads the caller's identity (with role) from the database. The identity
// lookup happens on every request so role and status changes take effect
// immediately; nothing about the decision is cached.
func SessionAuth(sessions service.SessionService, identities repo.IdentityRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("please login first"))
			return
		}
		token := strings.TrimPrefix(auth, "Bearer ")

		accountID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrNoSession) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("please login first"))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}

		ident, err := identities.GetByAccount(c.Request.Context(), accountID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}

		c.Set(CtxAccountID, accountID)
		c.Set(CtxSessionToken, token)
		if ident != nil {
			c.Set(CtxIdentity, ident)
		}
		c.Next()
	}
}

// RequireRole gates a route group on the access-control decision. On a
// disabled account it also revokes every session bound to the account
// before denying, so deactivation cuts access mid-session.
func RequireRole(required role.Role, sessions service.SessionService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ident *model.Identity
		if v, ok := c.Get(CtxIdentity); ok {
			ident = v.(*model.Identity)
		}

		d := policy.Decide(true, ident, required)
		if d.Allow {
			c.Next()
			return
		}

		switch d.Reason {
		case policy.DenyIdentityMissing:
			log.Sugar().Errorw("authenticated account has no identity",
				"account_id", c.MustGet(CtxAccountID))
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr("no identity for account"))
		case policy.DenyDisabled:
			accountID := c.MustGet(CtxAccountID).(uuid.UUID)
			if err := sessions.RevokeAll(c.Request.Context(), accountID); err != nil {
				log.Sugar().Errorw("session revocation failed", "account_id", accountID, "err", err)
			}
			log.Sugar().Warnw("disabled account denied", "account_id", accountID)
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				serializer.AuthErr("account disabled, contact an administrator"))
		default:
			log.Sugar().Warnw("insufficient role",
				"account_id", c.MustGet(CtxAccountID), "required", required.String())
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr(""))
		}
	}
}

// Identity returns the caller's identity from the request context.
func Identity(c *gin.Context) (*model.Identity, bool) {
	v, ok := c.Get(CtxIdentity)
	if !ok {
		return nil, false
	}
	ident, ok := v.(*model.Identity)
	return ident, ok
}

// AccountID returns the caller's account id from the request context.
func AccountID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(CtxAccountID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// SessionToken returns the raw bearer token of the current request.
func SessionToken(c *gin.Context) (string, bool) {
	v, ok := c.Get(CtxSessionToken)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}
