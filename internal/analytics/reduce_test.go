package analytics

import (
	"testing"
	"time"

	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/types"
	"github.com/stretchr/testify/assert"
)

func ts(day, hour int) types.Timestamp {
	return types.NewTimestamp(time.Date(2025, time.January, day, hour, 0, 0, 0, time.UTC))
}

func dailyLog(childID, logType, details string, at types.Timestamp) models.DailyLogEntry {
	return models.DailyLogEntry{ChildID: childID, StaffID: "s1", CenterID: "ce1", Type: logType, Details: details, Timestamp: at}
}

func healthRecord(classID, recordType, severity string) models.HealthRecordEntry {
	return models.HealthRecordEntry{
		ChildID: "c1", RecordedByUserID: "s1", CenterID: "ce1", ClassID: classID,
		Type: recordType, Severity: severity, Details: "Scraped knee", ActionTaken: "Bandaged",
		Timestamp: ts(15, 10),
	}
}

func TestActivityCountByType(t *testing.T) {
	logs := []models.DailyLogEntry{
		dailyLog("c1", "Nap", "", ts(15, 10)),
		dailyLog("c1", "Nap", "", ts(15, 11)),
		dailyLog("c2", "Meal", "", ts(15, 12)),
	}
	assert.Equal(t, Counts{"Nap": 2, "Meal": 1}, ActivityCountByType(logs))
}

func TestLogsByReferenceExcludesUnresolved(t *testing.T) {
	logs := []models.DailyLogEntry{
		dailyLog("c1", "Nap", "", ts(15, 10)),
		dailyLog("c1", "Meal", "", ts(15, 11)),
		dailyLog("ghost", "Meal", "", ts(15, 12)),
	}
	names := Names{"c1": "Ava Lindqvist"}

	got := LogsByReference(logs, func(l models.DailyLogEntry) string { return l.ChildID }, names)
	assert.Equal(t, Counts{"Ava Lindqvist": 2}, got)
}

func TestLogsOverTimeBucketsByUTCDay(t *testing.T) {
	late := types.NewTimestamp(time.Date(2025, 1, 15, 20, 0, 0, 0, time.FixedZone("EST", -5*3600)))
	logs := []models.DailyLogEntry{
		dailyLog("c1", "Nap", "", ts(15, 10)),
		dailyLog("c1", "Nap", "", late),
	}
	assert.Equal(t, Counts{"2025-01-15": 1, "2025-01-16": 1}, LogsOverTime(logs))
}

func TestMoodTrends(t *testing.T) {
	logs := []models.DailyLogEntry{
		dailyLog("c1", "Mood", "Happy", ts(15, 10)),
		dailyLog("c2", "Mood", "Happy", ts(15, 11)),
		dailyLog("c3", "Mood", "", ts(15, 12)),
	}
	assert.Equal(t, Counts{"Happy": 2, Unknown: 1}, MoodTrends(logs))
}

func TestDiaperNapPatterns(t *testing.T) {
	logs := []models.DailyLogEntry{
		dailyLog("c1", "Nap", "", ts(15, 10)),
		dailyLog("c1", "Diaper", "", ts(15, 11)),
		dailyLog("c1", "Diaper", "", ts(15, 12)),
		dailyLog("c1", "Meal", "", ts(15, 13)),
		dailyLog("c2", "Nap", "", ts(15, 14)),
		dailyLog("ghost", "Nap", "", ts(15, 15)),
	}
	names := Names{"c1": "Ava Lindqvist", "c2": "Milo Reyes"}

	assert.Equal(t, NestedCounts{
		"Ava Lindqvist": {"Nap": 1, "Diaper": 2},
		"Milo Reyes":    {"Nap": 1},
	}, DiaperNapPatterns(logs, names))
}

func TestRecentLogs(t *testing.T) {
	logs := make([]models.DailyLogEntry, 0, 7)
	for hour := 16; hour >= 10; hour-- {
		logs = append(logs, dailyLog("c1", "Nap", "", ts(15, hour)))
	}
	logs[1].ChildID = "ghost"

	recent := RecentLogs(logs, Names{"c1": "Ava Lindqvist"}, Names{"s1": "Dana Okafor"})
	assert.Len(t, recent, RecentLimit)
	assert.Equal(t, "Ava Lindqvist", recent[0].ChildName)
	assert.Equal(t, Unknown, recent[1].ChildName)
	assert.Equal(t, "Dana Okafor", recent[1].StaffName)
	assert.Equal(t, ts(15, 16), recent[0].Timestamp)
}

func TestIncidentVsMedicationCount(t *testing.T) {
	records := []models.HealthRecordEntry{
		healthRecord("k1", models.HealthTypeIncident, "Low"),
		healthRecord("k1", models.HealthTypeIncident, ""),
		healthRecord("k1", models.HealthTypeMedication, ""),
	}
	assert.Equal(t, IncidentMedication{IncidentCount: 2, MedicationCount: 1}, IncidentVsMedicationCount(records))
	assert.Equal(t, IncidentMedication{}, IncidentVsMedicationCount(nil))
}

func TestBySeverity(t *testing.T) {
	records := []models.HealthRecordEntry{
		healthRecord("k1", models.HealthTypeIncident, "High"),
		healthRecord("k1", models.HealthTypeIncident, ""),
	}
	assert.Equal(t, Counts{"High": 1, Unknown: 1}, BySeverity(records))
}

func TestRawIDCounts(t *testing.T) {
	a := healthRecord("k1", models.HealthTypeIncident, "")
	b := healthRecord("k2", models.HealthTypeIncident, "")
	b.ChildID, b.RecordedByUserID, b.CenterID = "c2", "s2", "ce2"
	records := []models.HealthRecordEntry{a, b, a}

	assert.Equal(t, Counts{"c1": 2, "c2": 1}, ByChildID(records))
	assert.Equal(t, Counts{"s1": 2, "s2": 1}, ByStaffID(records))
	assert.Equal(t, Counts{"ce1": 2, "ce2": 1}, ByCenterID(records))
	assert.Equal(t, Counts{"2025-01-15": 3}, RecordsOverTime(records))
	assert.Equal(t, Counts{"Scraped knee": 3}, IncidentTypes(records))
	assert.Equal(t, Counts{"Bandaged": 3}, ActionTaken(records))
}

func TestIncidentsByClassDropsUnresolvedClass(t *testing.T) {
	records := []models.HealthRecordEntry{
		healthRecord("k1", models.HealthTypeIncident, ""),
		healthRecord("k1", models.HealthTypeIncident, ""),
		healthRecord("k-gone", models.HealthTypeIncident, ""),
	}

	got := RekeyByName(CountByClassID(records), Names{"k1": "Acorns"})
	assert.Equal(t, Counts{"Acorns": 2}, got)
}

func TestRekeyByNameMergesCollidingNames(t *testing.T) {
	got := RekeyByName(Counts{"k1": 2, "k2": 3}, Names{"k1": "Acorns", "k2": "Acorns"})
	assert.Equal(t, Counts{"Acorns": 5}, got)
}

func TestRecentHealthRecords(t *testing.T) {
	records := []models.HealthRecordEntry{
		healthRecord("k1", models.HealthTypeIncident, "Low"),
		healthRecord("k-gone", models.HealthTypeMedication, ""),
	}

	recent := RecentHealthRecords(records, Names{"c1": "Ava Lindqvist"}, Names{"k1": "Acorns"})
	assert.Equal(t, []RecentHealthRecord{
		{ChildName: "Ava Lindqvist", ClassName: "Acorns", Type: models.HealthTypeIncident, Details: "Scraped knee", Timestamp: ts(15, 10)},
		{ChildName: "Ava Lindqvist", ClassName: Unknown, Type: models.HealthTypeMedication, Details: "Scraped knee", Timestamp: ts(15, 10)},
	}, recent)
}
