package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/services"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/utils"
)

// ClassHandler handles class routes
type ClassHandler struct {
	Store store.Store
	Clock Clock
}

// CreateClass handles POST /api/class
// @Summary Create a class
// @Tags Class
// @Accept json
// @Produce json
// @Param class body models.Class true "Class"
// @Success 201 {object} models.Class
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /class [post]
func (h *ClassHandler) CreateClass(c *fiber.Ctx) error {
	var class models.Class
	if err := parseBody(c, &class); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	created, err := services.CreateClass(c.UserContext(), h.Store, class)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, created)
}

// GetClasses handles GET /api/class
// @Summary List classes
// @Tags Class
// @Produce json
// @Success 200 {array} models.Class
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /class [get]
func (h *ClassHandler) GetClasses(c *fiber.Ctx) error {
	classes, err := services.GetClasses(c.UserContext(), h.Store)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, classes, fiber.StatusOK)
}

// GetClass handles GET /api/class/:id
// @Summary Get a class
// @Tags Class
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} models.Class
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /class/{id} [get]
func (h *ClassHandler) GetClass(c *fiber.Ctx) error {
	class, err := services.GetClass(c.UserContext(), h.Store, c.Params("id"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, class, fiber.StatusOK)
}

// GetClassChildren handles GET /api/class/:classId/children
// @Summary List the children of a class
// @Tags Class
// @Produce json
// @Param classId path string true "Class ID"
// @Success 200 {array} models.Child
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /class/{classId}/children [get]
func (h *ClassHandler) GetClassChildren(c *fiber.Ctx) error {
	children, err := services.GetClassChildren(c.UserContext(), h.Store, c.Params("classId"), h.Clock.now())
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, children, fiber.StatusOK)
}
