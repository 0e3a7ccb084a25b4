package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/daycare-data/internal/analytics"
	"github.com/localnerve/daycare-data/internal/store"
)

var errEmptyBody = errors.New("request body is empty")

// RegisterRoutes mounts every entity and analytics route on router.
// Fixed paths are registered before their /:id siblings.
func RegisterRoutes(router fiber.Router, st store.Store, clock Clock) {
	centers := &CenterHandler{Store: st}
	classes := &ClassHandler{Store: st, Clock: clock}
	staff := &StaffHandler{Store: st}
	children := &ChildHandler{Store: st, Clock: clock}
	logs := &DailyLogHandler{Store: st}
	records := &HealthRecordHandler{Store: st}

	center := router.Group("/center")
	center.Post("/", centers.CreateCenter)
	center.Get("/", centers.GetCenters)
	center.Get("/:id", centers.GetCenter)

	class := router.Group("/class")
	class.Post("/", classes.CreateClass)
	class.Get("/", classes.GetClasses)
	class.Get("/:classId/children", classes.GetClassChildren)
	class.Get("/:id", classes.GetClass)

	staffGroup := router.Group("/staff")
	staffGroup.Post("/", staff.CreateStaffMember)
	staffGroup.Get("/", staff.GetStaffMembers)
	staffGroup.Get("/:id", staff.GetStaffMember)

	child := router.Group("/child")
	child.Post("/", children.CreateChild)
	child.Get("/", children.GetChildren)
	child.Get("/staff/:staffId", children.GetChildrenByStaff)
	child.Get("/birthdays/check", children.GetChildrenBirthdays)
	child.Get("/:id", children.GetChild)

	dailyLogs := router.Group("/daily-logs")
	dailyLogs.Post("/", logs.CreateDailyLogs)
	dailyLogs.Get("/", logs.GetDailyLogs)
	dailyLogs.Get("/all", logs.GetAllDailyLogs)
	dailyLogs.Get("/type", logs.Analytics(analytics.OpActivityCountByType))
	dailyLogs.Get("/by-child", logs.Analytics(analytics.OpLogsByChild))
	dailyLogs.Get("/by-staff", logs.Analytics(analytics.OpLogsByStaff))
	dailyLogs.Get("/by-center", logs.Analytics(analytics.OpLogsByCenter))
	dailyLogs.Get("/over-time", logs.Analytics(analytics.OpLogsOverTime))
	dailyLogs.Get("/mood-trends", logs.Analytics(analytics.OpMoodTrends))
	dailyLogs.Get("/diaper-nap-patterns", logs.Analytics(analytics.OpDiaperNapPatterns))
	dailyLogs.Get("/recent", logs.Analytics(analytics.OpRecentLogs))
	dailyLogs.Get("/:id", logs.GetDailyLog)

	health := router.Group("/healthRecords")
	health.Post("/", records.CreateHealthRecord)
	health.Get("/", records.GetHealthRecords)
	health.Get("/child/:id", records.GetHealthRecordsByChild)
	health.Get("/staff/:id", records.GetHealthRecordsByStaff)
	health.Get("/center/:id", records.GetHealthRecordsByCenter)
	health.Get("/incident-vs-medication", records.Analytics(analytics.OpIncidentVsMedication))
	health.Get("/incidents-by-severity", records.Analytics(analytics.OpIncidentsBySeverity))
	health.Get("/incidents-by-child", records.Analytics(analytics.OpIncidentsByChild))
	health.Get("/medication-by-child", records.Analytics(analytics.OpMedicationByChild))
	health.Get("/records-by-staff", records.Analytics(analytics.OpRecordsByStaff))
	health.Get("/records-by-center", records.Analytics(analytics.OpRecordsByCenter))
	health.Get("/records-over-time", records.Analytics(analytics.OpRecordsOverTime))
	health.Get("/incident-type-breakdown", records.Analytics(analytics.OpIncidentTypeBreakdown))
	health.Get("/action-taken-summary", records.Analytics(analytics.OpActionTakenSummary))
	health.Get("/incident-by-class", records.IncidentsByClass)
	health.Get("/recent", records.Analytics(analytics.OpRecentHealthRecords))
}
