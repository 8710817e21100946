package handlers

import (
	"github.com/gofiber/fiber/v2"

	"todolist-api/domain/services"
	"todolist-api/pkg/utils"
)

type ExportHandler struct {
	exportService services.ExportService
}

func NewExportHandler(exportService services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportTasks writes the caller's tasks to storage and returns where
func (h *ExportHandler) ExportTasks(c *fiber.Ctx) error {
	caller, ok := currentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.exportService.ExportTasks(c.UserContext(), caller.ID)
	if err != nil {
		return respondError(c, err, "Usuário não encontrado")
	}

	return utils.CreatedResponse(c, result, "Exportação gerada com sucesso")
}
