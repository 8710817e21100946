package handlers

import (
	"github.com/gofiber/fiber/v2"

	"todolist-api/domain/dto"
	"todolist-api/domain/services"
	"todolist-api/pkg/config"
	"todolist-api/pkg/datetime"
	"todolist-api/pkg/logger"
	"todolist-api/pkg/utils"
)

const msgTaskNotFound = "Tarefa não encontrada"

type TaskHandler struct {
	taskService services.TaskService
	formatter   *datetime.Formatter
	pagination  config.PaginationConfig
}

func NewTaskHandler(taskService services.TaskService, formatter *datetime.Formatter, pagination config.PaginationConfig) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		formatter:   formatter,
		pagination:  pagination,
	}
}

// List supports category_id, status, priority and search filters
func (h *TaskHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	caller, ok := currentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var filter dto.TaskFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		logger.WarnContext(ctx, "Invalid query parameters", "error", err)
		return utils.BadRequestResponse(c, "Parâmetros de consulta inválidos")
	}
	filter.Normalize()
	if err := utils.ValidateStruct(&filter); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	params := utils.ParsePageParams(c, h.pagination.DefaultPerPage, h.pagination.MaxPerPage)
	tasks, total, err := h.taskService.List(ctx, caller.ID, &filter, params.Offset(), params.PerPage)
	if err != nil {
		return respondError(c, err, msgTaskNotFound)
	}

	return utils.PaginatedSuccessResponse(c,
		dto.TasksToTaskResponses(tasks, h.formatter),
		utils.NewPagination(total, params, utils.PageURLBuilder(c)),
		"Tarefas listadas com sucesso",
	)
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	caller, ok := currentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	task, err := h.taskService.Create(c.UserContext(), caller.ID, &req)
	if err != nil {
		return respondError(c, err, msgTaskNotFound)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task, h.formatter), "Tarefa criada com sucesso")
}

func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	caller, ok := currentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgTaskNotFound)
	}

	task, err := h.taskService.GetByID(c.UserContext(), caller.ID, id)
	if err != nil {
		return respondError(c, err, msgTaskNotFound)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task, h.formatter), "Tarefa encontrada")
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	caller, ok := currentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgTaskNotFound)
	}

	var req dto.UpdateTaskRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	task, err := h.taskService.Update(c.UserContext(), caller.ID, id, &req)
	if err != nil {
		return respondError(c, err, msgTaskNotFound)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task, h.formatter), "Tarefa atualizada com sucesso")
}

func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	caller, ok := currentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgTaskNotFound)
	}

	var req dto.UpdateTaskStatusRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	task, err := h.taskService.UpdateStatus(c.UserContext(), caller.ID, id, &req)
	if err != nil {
		return respondError(c, err, msgTaskNotFound)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task, h.formatter), "Status da tarefa atualizado com sucesso")
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	caller, ok := currentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgTaskNotFound)
	}

	if err := h.taskService.Delete(c.UserContext(), caller.ID, id); err != nil {
		return respondError(c, err, msgTaskNotFound)
	}

	return utils.MessageResponse(c, "Tarefa excluída com sucesso")
}
