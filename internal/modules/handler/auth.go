package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marafik-io/greenspace/internal/middleware"
	"github.com/marafik-io/greenspace/internal/modules/serializer"
	"github.com/marafik-io/greenspace/internal/modules/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type RegisterReq struct {
	LastName        string `form:"last_name" json:"last_name" binding:"required"`
	Email           string `form:"email" json:"email" binding:"required"`
	Password        string `form:"password" json:"password" binding:"required"`
	PasswordConfirm string `form:"password_confirm" json:"password_confirm" binding:"required"`
}

// Register godoc
//
//	@Summary		Register account
//	@Description	Create an account with the default employee role
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.RegisterReq	true	"Register payload"
//	@Success		201	{object}	serializer.Response
//	@Router			/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	req := RegisterReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Msg: "account created"})
}

type LoginReq struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type LoginResp struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Verify credentials and issue a bearer session token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.LoginReq	true	"Login payload"
//	@Success		200	{object}	serializer.Response{data=handler.LoginResp}
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req := LoginReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	token, ident, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: LoginResp{
		Token: token,
		Role:  ident.RoleName(),
	}})
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Revoke the presented session token
//	@Tags			auth
//	@Produce		json
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.SessionToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}
	if err := h.svc.Logout(c.Request.Context(), token); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "logged out"})
}
