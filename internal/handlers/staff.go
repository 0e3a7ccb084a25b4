package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/services"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/utils"
)

// StaffHandler handles staff member routes
type StaffHandler struct {
	Store store.Store
}

// CreateStaffMember handles POST /api/staff
// @Summary Create a staff member
// @Tags Staff
// @Accept json
// @Produce json
// @Param staff body models.Staff true "Staff member"
// @Success 201 {object} models.Staff
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /staff [post]
func (h *StaffHandler) CreateStaffMember(c *fiber.Ctx) error {
	var staff models.Staff
	if err := parseBody(c, &staff); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	created, err := services.CreateStaffMember(c.UserContext(), h.Store, staff)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, created)
}

// GetStaffMembers handles GET /api/staff
// @Summary List staff members
// @Tags Staff
// @Produce json
// @Success 200 {array} models.Staff
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /staff [get]
func (h *StaffHandler) GetStaffMembers(c *fiber.Ctx) error {
	staff, err := services.GetStaffMembers(c.UserContext(), h.Store)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, staff, fiber.StatusOK)
}

// GetStaffMember handles GET /api/staff/:id
// @Summary Get a staff member
// @Tags Staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} models.Staff
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /staff/{id} [get]
func (h *StaffHandler) GetStaffMember(c *fiber.Ctx) error {
	staff, err := services.GetStaffMember(c.UserContext(), h.Store, c.Params("id"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, staff, fiber.StatusOK)
}
