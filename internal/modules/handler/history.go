package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marafik-io/greenspace/internal/middleware"
	"github.com/marafik-io/greenspace/internal/modules/serializer"
	"github.com/marafik-io/greenspace/internal/modules/service"
)

// HistoryHandler serves the admin recovery view over soft-deleted tasks.
type HistoryHandler struct {
	svc service.TaskService
}

func NewHistoryHandler(svc service.TaskService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// ListHistory godoc
//
//	@Summary		List deleted and active tasks
//	@Description	Soft-deleted tasks awaiting restore or purge, plus the active rows the caller has not hidden
//	@Tags			history
//	@Produce		json
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response{data=service.HistoryOutput}
//	@Router			/admin/history [get]
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	accountID, _ := middleware.AccountID(c)
	out, err := h.svc.History(c.Request.Context(), accountID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// RestoreTask godoc
//
//	@Summary		Restore task
//	@Description	Bring a soft-deleted task back to the active listings
//	@Tags			history
//	@Produce		json
//	@Param			task_id	path	string	true	"Task id"
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/admin/history/{task_id}/restore [post]
func (h *HistoryHandler) RestoreTask(c *gin.Context) {
	taskID, ok := pathUUID(c, "task_id")
	if !ok {
		return
	}
	accountID, _ := middleware.AccountID(c)
	if err := h.svc.Restore(c.Request.Context(), accountID, taskID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "task restored"})
}

// PurgeTask godoc
//
//	@Summary		Permanently delete task
//	@Description	Remove a soft-deleted task for good; an audit record with a row snapshot is kept
//	@Tags			history
//	@Produce		json
//	@Param			task_id	path	string	true	"Task id"
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/admin/history/{task_id} [delete]
func (h *HistoryHandler) PurgeTask(c *gin.Context) {
	taskID, ok := pathUUID(c, "task_id")
	if !ok {
		return
	}
	accountID, _ := middleware.AccountID(c)
	if err := h.svc.Purge(c.Request.Context(), accountID, taskID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "task permanently deleted"})
}

// HideTask godoc
//
//	@Summary		Hide one task
//	@Description	Remove one active task from the caller's own listing
//	@Tags			history
//	@Produce		json
//	@Param			task_id	path	string	true	"Task id"
//	@Security		SessionAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/admin/history/{task_id}/hide [post]
func (h *HistoryHandler) HideTask(c *gin.Context) {
	taskID, ok := pathUUID(c, "task_id")
	if !ok {
		return
	}
	accountID, _ := middleware.AccountID(c)
	already, err := h.svc.HideOne(c.Request.Context(), accountID, taskID)
	if err != nil {
		respondErr(c, err)
		return
	}
	msg := "task hidden"
	if already {
		msg = "task already hidden"
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: msg})
}
