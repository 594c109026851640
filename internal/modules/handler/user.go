package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/middleware"
	"github.com/marafik-io/greenspace/internal/modules/serializer"
	"github.com/marafik-io/greenspace/internal/modules/service"
)

// UserHandler is the Super Admin user administration surface.
type UserHandler struct {
	svc service.IdentityService
}

func NewUserHandler(svc service.IdentityService) *UserHandler {
	return &UserHandler{svc: svc}
}

// actorIdentity resolves the caller's identity id; the self-modification
// guard in the service keys off it.
func actorIdentity(c *gin.Context) (uuid.UUID, bool) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusForbidden, serializer.ForbiddenErr(""))
		return uuid.Nil, false
	}
	return ident.ID, true
}

// ListUsers godoc
//
//	@Summary		List users
//	@Description	Every identity with its role and status, plus per-role counts
//	@Tags			user
//	@Produce		json
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response{data=service.UserListOutput}
//	@Router			/admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// ToggleStatus godoc
//
//	@Summary		Toggle user status
//	@Description	Flip the active flag. Deactivating an account revokes all of its sessions at once.
//	@Tags			user
//	@Produce		json
//	@Param			identity_id	path	string	true	"Identity id"
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/admin/users/{identity_id}/toggle-status [post]
func (h *UserHandler) ToggleStatus(c *gin.Context) {
	target, ok := pathUUID(c, "identity_id")
	if !ok {
		return
	}
	actor, ok := actorIdentity(c)
	if !ok {
		return
	}
	active, err := h.svc.ToggleStatus(c.Request.Context(), actor, target)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: gin.H{"active": active}})
}

type ChangeRoleReq struct {
	RoleID string `form:"role_id" json:"role_id" binding:"required"`
}

// ChangeRole godoc
//
//	@Summary		Change user role
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Param			identity_id	path	string					true	"Identity id"
//	@Param			payload		body	handler.ChangeRoleReq	true	"ChangeRole payload"
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/admin/users/{identity_id}/role [put]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	target, ok := pathUUID(c, "identity_id")
	if !ok {
		return
	}
	req := ChangeRoleReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid role_id", err))
		return
	}
	actor, ok := actorIdentity(c)
	if !ok {
		return
	}
	if err := h.svc.ChangeRole(c.Request.Context(), actor, target, roleID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "role updated"})
}

type EditProfileReq struct {
	LastName string `form:"last_name" json:"last_name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required"`
}

// EditProfile godoc
//
//	@Summary		Edit user profile
//	@Tags			user
//	@Accept			json
//	@Produce		json
//	@Param			identity_id	path	string					true	"Identity id"
//	@Param			payload		body	handler.EditProfileReq	true	"EditProfile payload"
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/admin/users/{identity_id}/profile [put]
func (h *UserHandler) EditProfile(c *gin.Context) {
	target, ok := pathUUID(c, "identity_id")
	if !ok {
		return
	}
	req := EditProfileReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	actor, ok := actorIdentity(c)
	if !ok {
		return
	}
	if err := h.svc.EditProfile(c.Request.Context(), actor, target, req.LastName, req.Email); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "profile updated"})
}

// DeleteUser godoc
//
//	@Summary		Delete user
//	@Description	Remove the account and its identity. Tasks the user created survive with no owner.
//	@Tags			user
//	@Produce		json
//	@Param			identity_id	path	string	true	"Identity id"
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/admin/users/{identity_id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	target, ok := pathUUID(c, "identity_id")
	if !ok {
		return
	}
	actor, ok := actorIdentity(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), actor, target); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "user deleted"})
}
