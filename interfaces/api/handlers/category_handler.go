package handlers

import (
	"github.com/gofiber/fiber/v2"

	"todolist-api/domain/dto"
	"todolist-api/domain/services"
	"todolist-api/pkg/config"
	"todolist-api/pkg/datetime"
	"todolist-api/pkg/utils"
)

const msgCategoryNotFound = "Categoria não encontrada"

type CategoryHandler struct {
	categoryService services.CategoryService
	formatter       *datetime.Formatter
	pagination      config.PaginationConfig
}

func NewCategoryHandler(categoryService services.CategoryService, formatter *datetime.Formatter, pagination config.PaginationConfig) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		formatter:       formatter,
		pagination:      pagination,
	}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	caller, ok := currentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	params := utils.ParsePageParams(c, h.pagination.DefaultPerPage, h.pagination.MaxPerPage)
	categories, total, err := h.categoryService.List(c.UserContext(), caller.ID, params.Offset(), params.PerPage)
	if err != nil {
		return respondError(c, err, msgCategoryNotFound)
	}

	return utils.PaginatedSuccessResponse(c,
		dto.CategoriesToCategoryResponses(categories, h.formatter),
		utils.NewPagination(total, params, utils.PageURLBuilder(c)),
		"Categorias listadas com sucesso",
	)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	caller, ok := currentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateCategoryRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	category, err := h.categoryService.Create(c.UserContext(), caller.ID, &req)
	if err != nil {
		return respondError(c, err, msgCategoryNotFound)
	}

	return utils.CreatedResponse(c, dto.CategoryToCategoryResponse(category, h.formatter), "Categoria criada com sucesso")
}

func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	caller, ok := currentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgCategoryNotFound)
	}

	category, err := h.categoryService.GetByID(c.UserContext(), caller.ID, id)
	if err != nil {
		return respondError(c, err, msgCategoryNotFound)
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category, h.formatter), "Categoria encontrada")
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	caller, ok := currentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgCategoryNotFound)
	}

	var req dto.UpdateCategoryRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	category, err := h.categoryService.Update(c.UserContext(), caller.ID, id, &req)
	if err != nil {
		return respondError(c, err, msgCategoryNotFound)
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category, h.formatter), "Categoria atualizada com sucesso")
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	caller, ok := currentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, msgCategoryNotFound)
	}

	if err := h.categoryService.Delete(c.UserContext(), caller.ID, id); err != nil {
		return respondError(c, err, msgCategoryNotFound)
	}

	return utils.MessageResponse(c, "Categoria excluída com sucesso")
}
