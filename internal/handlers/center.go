package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/services"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/utils"
)

// CenterHandler handles center routes
type CenterHandler struct {
	Store store.Store
}

// CreateCenter handles POST /api/center
// @Summary Create a center
// @Tags Center
// @Accept json
// @Produce json
// @Param center body models.Center true "Center"
// @Success 201 {object} models.Center
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /center [post]
func (h *CenterHandler) CreateCenter(c *fiber.Ctx) error {
	var center models.Center
	if err := parseBody(c, &center); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	created, err := services.CreateCenter(c.UserContext(), h.Store, center)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, created)
}

// GetCenters handles GET /api/center
// @Summary List centers
// @Tags Center
// @Produce json
// @Success 200 {array} models.Center
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /center [get]
func (h *CenterHandler) GetCenters(c *fiber.Ctx) error {
	centers, err := services.GetCenters(c.UserContext(), h.Store)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, centers, fiber.StatusOK)
}

// GetCenter handles GET /api/center/:id
// @Summary Get a center
// @Tags Center
// @Produce json
// @Param id path string true "Center ID"
// @Success 200 {object} models.Center
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /center/{id} [get]
func (h *CenterHandler) GetCenter(c *fiber.Ctx) error {
	center, err := services.GetCenter(c.UserContext(), h.Store, c.Params("id"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, center, fiber.StatusOK)
}
