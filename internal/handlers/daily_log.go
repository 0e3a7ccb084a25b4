// daily_log.go
//
// A childcare center data and analytics service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of daycare-data.
// daycare-data is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// daycare-data is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with daycare-data.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/daycare-data/internal/analytics"
	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/services"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/types"
	"github.com/localnerve/daycare-data/internal/utils"
	"github.com/localnerve/daycare-data/internal/validation"
)

// DailyLogHandler handles daily log routes
type DailyLogHandler struct {
	Store store.Store
}

// CreateDailyLogs handles POST /api/daily-logs
// @Summary Create one or many daily logs
// @Description Accepts a single log object or an array. The response mirrors the request shape.
// @Description No entry is stored unless every entry validates.
// @Tags DailyLogs
// @Accept json
// @Produce json
// @Param logs body models.DailyLogEntry true "Daily log, or an array of them"
// @Success 201 {object} models.DailyLogEntry
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /daily-logs [post]
func (h *DailyLogHandler) CreateDailyLogs(c *fiber.Ctx) error {
	var body types.FlexList[models.DailyLogEntry]
	if err := parseBody(c, &body); err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	if body.Len() == 0 {
		return utils.ServiceErrorResponse(c, validation.DecodeError(errEmptyBody))
	}

	if !body.Batch {
		created, err := services.CreateDailyLog(c.UserContext(), h.Store, body.Items[0])
		if err != nil {
			return utils.ServiceErrorResponse(c, err)
		}
		return utils.CreatedResponse(c, created)
	}

	created, err := services.CreateDailyLogs(c.UserContext(), h.Store, body.Items)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, created)
}

// GetDailyLogs handles GET /api/daily-logs
// @Summary List daily logs matching the filter
// @Tags DailyLogs
// @Produce json
// @Param childId query string false "Child ID"
// @Param staffId query string false "Staff ID"
// @Param centerId query string false "Center ID"
// @Param type query string false "Log type"
// @Param startDate query string false "Inclusive lower bound, ISO-8601"
// @Param endDate query string false "Inclusive upper bound, ISO-8601"
// @Success 200 {array} models.DailyLogEntry
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /daily-logs [get]
func (h *DailyLogHandler) GetDailyLogs(c *fiber.Ctx) error {
	filter, err := parseFilter(c, models.DailyLogTypes)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}

	logs, err := services.GetDailyLogs(c.UserContext(), h.Store, filter)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, logs, fiber.StatusOK)
}

// GetAllDailyLogs handles GET /api/daily-logs/all
// @Summary List every daily log with child, staff and center resolved
// @Tags DailyLogs
// @Produce json
// @Success 200 {array} models.DailyLogView
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /daily-logs/all [get]
func (h *DailyLogHandler) GetAllDailyLogs(c *fiber.Ctx) error {
	views, err := services.GetAllDailyLogViews(c.UserContext(), h.Store)
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, views, fiber.StatusOK)
}

// GetDailyLog handles GET /api/daily-logs/:id
// @Summary Get a daily log with child, staff and center resolved
// @Tags DailyLogs
// @Produce json
// @Param id path string true "Daily log ID"
// @Success 200 {object} models.DailyLogView
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /daily-logs/{id} [get]
func (h *DailyLogHandler) GetDailyLog(c *fiber.Ctx) error {
	view, err := services.GetDailyLogView(c.UserContext(), h.Store, c.Params("id"))
	if err != nil {
		return utils.ServiceErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, view, fiber.StatusOK)
}

// Analytics returns the handler for one daily log aggregation
// @Summary Daily log aggregations
// @Description Count maps keyed by type, name or UTC day, or the five newest logs for /recent.
// @Tags DailyLogs
// @Produce json
// @Param childId query string false "Child ID"
// @Param staffId query string false "Staff ID"
// @Param centerId query string false "Center ID"
// @Param type query string false "Log type"
// @Param startDate query string false "Inclusive lower bound, ISO-8601"
// @Param endDate query string false "Inclusive upper bound, ISO-8601"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /daily-logs/type [get]
// @Router /daily-logs/by-child [get]
// @Router /daily-logs/by-staff [get]
// @Router /daily-logs/by-center [get]
// @Router /daily-logs/over-time [get]
// @Router /daily-logs/mood-trends [get]
// @Router /daily-logs/diaper-nap-patterns [get]
// @Router /daily-logs/recent [get]
func (h *DailyLogHandler) Analytics(op analytics.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseFilter(c, models.DailyLogTypes)
		if err != nil {
			return utils.ServiceErrorResponse(c, err)
		}

		result, err := services.RunDailyLogAnalytics(c.UserContext(), h.Store, op, filter)
		if err != nil {
			return utils.ServiceErrorResponse(c, err)
		}
		return utils.SuccessResponse(c, result, fiber.StatusOK)
	}
}
