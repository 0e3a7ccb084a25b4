package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/services"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/utils"
)

// ChildHandler handles child routes.
// Every child in a response carries an age computed from Clock.
type ChildHandler struct {
	Store store.Store
	Clock Clock
}

// CreateChild handles POST /api/child
// @Summary Create a child
// @Tags Child
// @Accept json
// @Produce json
// @Param child body models.Child true "Child"
// @Success 201 {object} models.Child
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /child [post]
func (h *ChildHandler) CreateChild(c *fiber.Ctx) error {
	var child models.Child
	if err := parseBody(c, &child); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	created, err := services.CreateChild(c.UserContext(), h.Store, child, h.Clock.now())
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, created)
}

// GetChildren handles GET /api/child
// @Summary List children
// @Tags Child
// @Produce json
// @Success 200 {array} models.Child
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /child [get]
func (h *ChildHandler) GetChildren(c *fiber.Ctx) error {
	children, err := services.GetChildren(c.UserContext(), h.Store, h.Clock.now())
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, children, fiber.StatusOK)
}

// GetChild handles GET /api/child/:id
// @Summary Get a child
// @Tags Child
// @Produce json
// @Param id path string true "Child ID"
// @Success 200 {object} models.Child
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /child/{id} [get]
func (h *ChildHandler) GetChild(c *fiber.Ctx) error {
	child, err := services.GetChild(c.UserContext(), h.Store, c.Params("id"), h.Clock.now())
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, child, fiber.StatusOK)
}

// GetChildrenByStaff handles GET /api/child/staff/:staffId
// @Summary List the children assigned to a staff member
// @Tags Child
// @Produce json
// @Param staffId path string true "Staff ID"
// @Success 200 {array} models.Child
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /child/staff/{staffId} [get]
func (h *ChildHandler) GetChildrenByStaff(c *fiber.Ctx) error {
	children, err := services.GetChildrenByStaff(c.UserContext(), h.Store, c.Params("staffId"), h.Clock.now())
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, children, fiber.StatusOK)
}

// GetChildrenBirthdays handles GET /api/child/birthdays/check
// @Summary Children with a birthday this month and today
// @Tags Child
// @Produce json
// @Success 200 {object} services.Birthdays
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /child/birthdays/check [get]
func (h *ChildHandler) GetChildrenBirthdays(c *fiber.Ctx) error {
	birthdays, err := services.GetChildrenBirthdays(c.UserContext(), h.Store, h.Clock.now())
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, birthdays, fiber.StatusOK)
}
