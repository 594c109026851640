package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marafik-io/greenspace/internal/modules/serializer"
	"github.com/marafik-io/greenspace/internal/modules/service"
)

type TaskTypeHandler struct {
	svc service.TaskTypeService
}

func NewTaskTypeHandler(svc service.TaskTypeService) *TaskTypeHandler {
	return &TaskTypeHandler{svc: svc}
}

type TaskTypeReq struct {
	Name string `form:"name" json:"name" binding:"required"`
}

// ListTaskTypes godoc
//
//	@Summary		List task types
//	@Tags			task-type
//	@Produce		json
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response{data=[]model.TaskType}
//	@Router			/admin/task-types [get]
func (h *TaskTypeHandler) ListTaskTypes(c *gin.Context) {
	types, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: types})
}

// CreateTaskType godoc
//
//	@Summary		Create task type
//	@Tags			task-type
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.TaskTypeReq	true	"CreateTaskType payload"
//	@Security		SessionAuth
//	@Success		201	{object}	serializer.Response{data=model.TaskType}
//	@Router			/admin/task-types [post]
func (h *TaskTypeHandler) CreateTaskType(c *gin.Context) {
	req := TaskTypeReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	tt, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: tt})
}

// UpdateTaskType godoc
//
//	@Summary		Rename task type
//	@Tags			task-type
//	@Accept			json
//	@Produce		json
//	@Param			type_id	path	string	true	"Task type id"
//	@Param			payload	body	handler.TaskTypeReq	true	"UpdateTaskType payload"
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response{data=model.TaskType}
//	@Router			/admin/task-types/{type_id} [put]
func (h *TaskTypeHandler) UpdateTaskType(c *gin.Context) {
	typeID, ok := pathUUID(c, "type_id")
	if !ok {
		return
	}
	req := TaskTypeReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	tt, err := h.svc.Rename(c.Request.Context(), typeID, req.Name)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: tt})
}

// DeleteTaskType godoc
//
//	@Summary		Delete task type
//	@Description	Delete a task type and every task recorded under it
//	@Tags			task-type
//	@Produce		json
//	@Param			type_id	path	string	true	"Task type id"
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/admin/task-types/{type_id} [delete]
func (h *TaskTypeHandler) DeleteTaskType(c *gin.Context) {
	typeID, ok := pathUUID(c, "type_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), typeID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "task type deleted"})
}
