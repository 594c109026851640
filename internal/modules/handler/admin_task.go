package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marafik-io/greenspace/internal/middleware"
	"github.com/marafik-io/greenspace/internal/modules/serializer"
	"github.com/marafik-io/greenspace/internal/modules/service"
)

// AdminTaskHandler is the admin setup surface: every account's tasks, an
// optional month filter, and irreversible deletes.
type AdminTaskHandler struct {
	svc service.TaskService
}

func NewAdminTaskHandler(svc service.TaskService) *AdminTaskHandler {
	return &AdminTaskHandler{svc: svc}
}

// ListTasks godoc
//
//	@Summary		List all tasks
//	@Description	List every active task grouped by task type, optionally filtered to one month. Hide markers do not apply here.
//	@Tags			admin-task
//	@Produce		json
//	@Param			year_month	query	string	false	"Month filter, YYYY-MM"
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response{data=service.ListTasksOutput}
//	@Router			/admin/tasks [get]
func (h *AdminTaskHandler) ListTasks(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context(), service.ListTasksInput{
		Month: c.Query("year_month"),
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// CreateTask godoc
//
//	@Summary		Create task
//	@Tags			admin-task
//	@Accept			mpfd
//	@Produce		json
//	@Security		SessionAuth
//	@Success		201	{object}	serializer.Response{data=model.Task}
//	@Router			/admin/tasks [post]
func (h *AdminTaskHandler) CreateTask(c *gin.Context) {
	req := TaskReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	in, err := req.toInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid task_type_id", err))
		return
	}

	accountID, _ := middleware.AccountID(c)
	task, err := h.svc.Create(c.Request.Context(), accountID, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: task})
}

// UpdateTask godoc
//
//	@Summary		Update any task
//	@Tags			admin-task
//	@Accept			mpfd
//	@Produce		json
//	@Param			task_id	path	string	true	"Task id"
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response{data=model.Task}
//	@Router			/admin/tasks/{task_id} [put]
func (h *AdminTaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := pathUUID(c, "task_id")
	if !ok {
		return
	}
	req := TaskReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	in, err := req.toInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid task_type_id", err))
		return
	}

	accountID, _ := middleware.AccountID(c)
	task, err := h.svc.Update(c.Request.Context(), accountID, true, taskID, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: task})
}

// DeleteTask godoc
//
//	@Summary		Delete any task
//	@Description	Hard delete: the row is gone for good, with no history record
//	@Tags			admin-task
//	@Produce		json
//	@Param			task_id	path	string	true	"Task id"
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/admin/tasks/{task_id} [delete]
func (h *AdminTaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := pathUUID(c, "task_id")
	if !ok {
		return
	}
	accountID, _ := middleware.AccountID(c)
	if err := h.svc.HardDelete(c.Request.Context(), accountID, taskID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "task deleted"})
}
