package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/daycare-data/internal/analytics"
	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/services"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/types"
	"github.com/localnerve/daycare-data/internal/utils"
)

// HealthRecordHandler handles health record routes
type HealthRecordHandler struct {
	Store store.Store
}

// CreateHealthRecord handles POST /api/healthRecords
// @Summary Create a health record
// @Tags HealthRecords
// @Accept json
// @Produce json
// @Param record body models.HealthRecordEntry true "Health record"
// @Success 201 {object} models.HealthRecordView
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /healthRecords [post]
func (h *HealthRecordHandler) CreateHealthRecord(c *fiber.Ctx) error {
	var record models.HealthRecordEntry
	if err := parseBody(c, &record); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	created, err := services.CreateHealthRecord(c.UserContext(), h.Store, record)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, created)
}

// GetHealthRecords handles GET /api/healthRecords
// @Summary List every health record with references resolved
// @Tags HealthRecords
// @Produce json
// @Success 200 {array} models.HealthRecordView
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /healthRecords [get]
func (h *HealthRecordHandler) GetHealthRecords(c *fiber.Ctx) error {
	views, err := services.GetHealthRecordViews(c.UserContext(), h.Store)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, views, fiber.StatusOK)
}

// GetHealthRecordsByChild handles GET /api/healthRecords/child/:id
// @Summary List the health records of a child
// @Tags HealthRecords
// @Produce json
// @Param id path string true "Child ID"
// @Success 200 {array} models.HealthRecordView
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /healthRecords/child/{id} [get]
func (h *HealthRecordHandler) GetHealthRecordsByChild(c *fiber.Ctx) error {
	views, err := services.GetHealthRecordViewsByChild(c.UserContext(), h.Store, c.Params("id"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, views, fiber.StatusOK)
}

// GetHealthRecordsByStaff handles GET /api/healthRecords/staff/:id
// @Summary List the health records written by a staff member
// @Tags HealthRecords
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {array} models.HealthRecordView
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /healthRecords/staff/{id} [get]
func (h *HealthRecordHandler) GetHealthRecordsByStaff(c *fiber.Ctx) error {
	views, err := services.GetHealthRecordViewsByStaff(c.UserContext(), h.Store, c.Params("id"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, views, fiber.StatusOK)
}

// GetHealthRecordsByCenter handles GET /api/healthRecords/center/:id
// @Summary List the health records of a center
// @Tags HealthRecords
// @Produce json
// @Param id path string true "Center ID"
// @Success 200 {array} models.HealthRecordView
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /healthRecords/center/{id} [get]
func (h *HealthRecordHandler) GetHealthRecordsByCenter(c *fiber.Ctx) error {
	views, err := services.GetHealthRecordViewsByCenter(c.UserContext(), h.Store, c.Params("id"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, views, fiber.StatusOK)
}

// Analytics returns the handler for one health record aggregation
// @Summary Health record aggregations
// @Tags HealthRecords
// @Produce json
// @Param childId query string false "Child ID"
// @Param staffId query string false "Staff ID"
// @Param centerId query string false "Center ID"
// @Param type query string false "Record type"
// @Param severity query string false "Low, Medium or High"
// @Param startDate query string false "Inclusive lower bound, ISO-8601"
// @Param endDate query string false "Inclusive upper bound, ISO-8601"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /healthRecords/incident-vs-medication [get]
// @Router /healthRecords/incidents-by-severity [get]
// @Router /healthRecords/incidents-by-child [get]
// @Router /healthRecords/medication-by-child [get]
// @Router /healthRecords/records-by-staff [get]
// @Router /healthRecords/records-by-center [get]
// @Router /healthRecords/records-over-time [get]
// @Router /healthRecords/incident-type-breakdown [get]
// @Router /healthRecords/action-taken-summary [get]
// @Router /healthRecords/recent [get]
func (h *HealthRecordHandler) Analytics(op analytics.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseFilter(c, models.HealthRecordTypes)
		if err != nil {
			return utils.ServiceErrorResponse(c, err)
		}
		return h.run(c, op, filter)
	}
}

// IncidentsByClass handles GET /api/healthRecords/incident-by-class
// @Summary Incident counts keyed by class name
// @Description startDate and endDate are required.
// @Tags HealthRecords
// @Produce json
// @Param startDate query string true "Inclusive lower bound, ISO-8601"
// @Param endDate query string true "Inclusive upper bound, ISO-8601"
// @Param centerId query string false "Center ID"
// @Success 200 {object} map[string]int
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /healthRecords/incident-by-class [get]
func (h *HealthRecordHandler) IncidentsByClass(c *fiber.Ctx) error {
	filter, err := parseFilter(c, models.HealthRecordTypes)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	if filter.StartDate == nil || filter.EndDate == nil {
		return utils.ServiceErrorResponse(c, types.NewBadRequestError("startDate and endDate are required"))
	}
	return h.run(c, analytics.OpIncidentsByClass, filter)
}

func (h *HealthRecordHandler) run(c *fiber.Ctx, op analytics.Operation, filter analytics.Filter) error {
	result, err := services.RunHealthAnalytics(c.UserContext(), h.Store, op, filter)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, result, fiber.StatusOK)
}
