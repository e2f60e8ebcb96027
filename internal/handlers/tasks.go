package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

type createTaskInput struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"desc" binding:"required"`
}

// @Summary      List my tasks
// @Tags         tasks
// @Produce      html
// @Success      200  {string}  string  "html"
// @Failure      303  {string}  string  "redirect to /login"
// @Router       / [get]
func (h *Handler) index(c *gin.Context) {
	h.renderIndex(c, popFlash(c))
}

// @Summary      Create a task
// @Tags         tasks
// @Accept       x-www-form-urlencoded
// @Param        title  formData  string  true  "Title"
// @Param        desc   formData  string  true  "Description"
// @Success      200  {string}  string  "html"
// @Router       / [post]
func (h *Handler) createTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	var input createTaskInput
	if err := c.ShouldBind(&input); err != nil {
		h.renderIndexFlash(c, flashDanger, "Title and description are required.")
		return
	}

	if _, err := h.services.TaskManager.Create(c.Request.Context(), userID, input.Title, input.Description); err != nil {
		if errors.Is(err, service.ErrEmptyTitle) || errors.Is(err, service.ErrEmptyDesc) {
			h.renderIndexFlash(c, flashDanger, "Title and description are required.")
			return
		}
		h.logAndError(c, http.StatusInternalServerError, "failed to create task", "task_create_failed", err, "userId", userID)
		return
	}

	h.renderIndex(c, nil)
}

// @Summary      Delete a task
// @Tags         tasks
// @Param        id  path  int  true  "Task ID"
// @Success      303  {string}  string  "redirect to /"
// @Failure      404  {string}  string
// @Router       /delete/{id} [get]
func (h *Handler) deleteTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	if err := h.services.TaskManager.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			c.String(http.StatusNotFound, "not found")
			return
		}
		h.logAndError(c, http.StatusInternalServerError, "failed to delete task", "task_delete_failed", err, "taskId", id)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// renderIndex loads the session user's tasks and renders the list page.
func (h *Handler) renderIndex(c *gin.Context, flash *flashMessage) {
	userID, ok := currentUserID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	tasks, count, err := h.services.TaskManager.List(c.Request.Context(), userID)
	if err != nil {
		h.logAndError(c, http.StatusInternalServerError, "failed to load tasks", "task_list_failed", err, "userId", userID)
		return
	}

	c.HTML(http.StatusOK, tmplIndex, gin.H{
		"Tasks": tasks,
		"Count": count,
		"Flash": flash,
	})
}

func (h *Handler) renderIndexFlash(c *gin.Context, category, msg string) {
	h.renderIndex(c, &flashMessage{Category: category, Message: msg})
}
