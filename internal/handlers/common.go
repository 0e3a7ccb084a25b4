// common.go
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
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/daycare-data/internal/analytics"
	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/types"
	"github.com/localnerve/daycare-data/internal/validation"
)

// Clock supplies the current time for age and birthday calculations
type Clock func() time.Time

func (clk Clock) now() time.Time {
	if clk == nil {
		return time.Now().UTC()
	}
	return clk().UTC()
}

// filterQuery is the raw query string form of analytics.Filter
type filterQuery struct {
	ChildID   string `query:"childId"`
	StaffID   string `query:"staffId"`
	CenterID  string `query:"centerId"`
	Type      string `query:"type"`
	Severity  string `query:"severity"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// parseFilter reads the analytics query parameters.
// allowedTypes lists the type literals the collection accepts.
func parseFilter(c *fiber.Ctx, allowedTypes []string) (analytics.Filter, error) {
	var q filterQuery
	if err := c.QueryParser(&q); err != nil {
		return analytics.Filter{}, types.NewBadRequestError(fmt.Sprintf("invalid query parameters: %v", err))
	}

	filter := analytics.Filter{
		ChildID:  strings.TrimSpace(q.ChildID),
		StaffID:  strings.TrimSpace(q.StaffID),
		CenterID: strings.TrimSpace(q.CenterID),
		Type:     q.Type,
		Severity: q.Severity,
	}

	if filter.Type != "" && !slices.Contains(allowedTypes, filter.Type) {
		return analytics.Filter{}, types.NewBadRequestError(
			fmt.Sprintf("type must be one of %s", strings.Join(allowedTypes, ", ")))
	}
	if filter.Severity != "" && !slices.Contains(models.Severities, filter.Severity) {
		return analytics.Filter{}, types.NewBadRequestError(
			fmt.Sprintf("severity must be one of %s", strings.Join(models.Severities, ", ")))
	}

	var err error
	if filter.StartDate, err = parseDateParam("startDate", q.StartDate); err != nil {
		return analytics.Filter{}, err
	}
	if filter.EndDate, err = parseDateParam("endDate", q.EndDate); err != nil {
		return analytics.Filter{}, err
	}

	return filter, nil
}

// parseDateParam returns nil for an absent parameter
func parseDateParam(name, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := types.ParseTimestamp(value)
	if err != nil {
		return nil, types.NewBadRequestError(fmt.Sprintf("%s must be an ISO-8601 date: %q", name, value))
	}
	return &t, nil
}

// parseBody decodes the request body into v, reporting failures as 422
func parseBody(c *fiber.Ctx, v interface{}) error {
	if err := c.BodyParser(v); err != nil {
		return validation.DecodeError(err)
	}
	return nil
}
