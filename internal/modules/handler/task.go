package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/marafik-io/greenspace/internal/middleware"
	"github.com/marafik-io/greenspace/internal/modules/serializer"
	"github.com/marafik-io/greenspace/internal/modules/service"
)

// TaskHandler is the employee surface: own tasks only, recoverable deletes.
type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(svc service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

type TaskReq struct {
	TaskTypeID string `form:"task_type_id" json:"task_type_id" binding:"required"`
	Adresse    string `form:"adresse" json:"adresse" binding:"required"`
	Date       string `form:"date" json:"date" binding:"required"`
}

func (r *TaskReq) toInput(c *gin.Context) (service.TaskInput, error) {
	typeID, err := uuid.Parse(r.TaskTypeID)
	if err != nil {
		return service.TaskInput{}, err
	}
	return service.TaskInput{
		TaskTypeID: typeID,
		Quartier:   r.Adresse,
		Date:       r.Date,
		Days:       parseDayFields(c),
	}, nil
}

// ListTasks godoc
//
//	@Summary		List own tasks
//	@Description	List the caller's active tasks grouped by task type, with per-type totals
//	@Tags			task
//	@Produce		json
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response{data=service.ListTasksOutput}
//	@Router			/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	accountID, _ := middleware.AccountID(c)
	out, err := h.svc.List(c.Request.Context(), service.ListTasksInput{
		Owner:  &accountID,
		Viewer: &accountID,
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
//	@Description	Record a task for a quartier and month, with a count per day of the month
//	@Tags			task
//	@Accept			mpfd
//	@Produce		json
//	@Param			task_type_id	formData	string	true	"Task type id"
//	@Param			adresse			formData	string	true	"Quartier"
//	@Param			date			formData	string	true	"Month, YYYY-MM"
//	@Security		SessionAuth
//	@Success		201	{object}	serializer.Response{data=model.Task}
//	@Router			/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
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
//	@Summary		Update own task
//	@Tags			task
//	@Accept			mpfd
//	@Produce		json
//	@Param			task_id	path	string	true	"Task id"
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response{data=model.Task}
//	@Router			/tasks/{task_id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
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
	task, err := h.svc.Update(c.Request.Context(), accountID, false, taskID, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: task})
}

// DeleteTask godoc
//
//	@Summary		Delete own task
//	@Description	Soft-delete: the row moves to the admin history view and can be restored
//	@Tags			task
//	@Produce		json
//	@Param			task_id	path	string	true	"Task id"
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/tasks/{task_id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := pathUUID(c, "task_id")
	if !ok {
		return
	}
	accountID, _ := middleware.AccountID(c)
	if err := h.svc.SoftDelete(c.Request.Context(), accountID, taskID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "task deleted"})
}

type HideTasksReq struct {
	TaskIDs []string `form:"task_ids" json:"task_ids" binding:"required"`
}

// HideTasks godoc
//
//	@Summary		Hide tasks
//	@Description	Remove tasks from the caller's own listing without touching the rows. Ids that are not the caller's active tasks are skipped.
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.HideTasksReq	true	"HideTasks payload"
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/tasks/hide [post]
func (h *TaskHandler) HideTasks(c *gin.Context) {
	req := HideTasksReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	ids := make([]uuid.UUID, 0, len(req.TaskIDs))
	for _, raw := range req.TaskIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	accountID, _ := middleware.AccountID(c)
	hidden, err := h.svc.Hide(c.Request.Context(), accountID, ids)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: gin.H{"hidden": hidden}})
}
