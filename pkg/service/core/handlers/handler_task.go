package handlers

import (
	"context"
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
)

type TaskHandler struct {
	taskService service.TaskService
}

func (h *TaskHandler) ListTasks(ctx context.Context, _ *http.Request, _ any) (*service.Envelope[service.EmptyMeta, *service.TaskStatus], error) {
	const op errs.Op = "TaskHandler.ListTasks"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	tasks, err := h.taskService.ListTasks(ctx, user)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return tasks, nil
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}
