package analytics

import (
	"time"

	"github.com/localnerve/daycare-data/internal/models"
	"github.com/localnerve/daycare-data/internal/types"
)

// Unknown is the bucket for records missing the grouping value
const Unknown = "Unknown"

// RecentLimit bounds the recent-items lists
const RecentLimit = 5

// Counts is a flat count-by-key map
type Counts map[string]int

// NestedCounts is a two-level count map
type NestedCounts map[string]map[string]int

// Names maps a referenced id to its display name. Ids that did not resolve are absent.
type Names map[string]string

// IncidentMedication is the incident vs medication scalar pair
type IncidentMedication struct {
	IncidentCount   int `json:"incidentCount"`
	MedicationCount int `json:"medicationCount"`
}

// RecentLog is one row of the recent daily logs list
type RecentLog struct {
	ChildName string          `json:"childName"`
	StaffName string          `json:"staffName"`
	Type      string          `json:"type"`
	Details   string          `json:"details"`
	Timestamp types.Timestamp `json:"timestamp"`
}

// RecentHealthRecord is one row of the recent health records list
type RecentHealthRecord struct {
	ChildName string          `json:"childName"`
	ClassName string          `json:"className"`
	Type      string          `json:"type"`
	Details   string          `json:"details"`
	Timestamp types.Timestamp `json:"timestamp"`
}

// CountBy counts records per key. A record whose key function reports false is not counted.
func CountBy[T any](records []T, key func(T) (string, bool)) Counts {
	counts := make(Counts)
	for _, record := range records {
		if k, ok := key(record); ok {
			counts[k]++
		}
	}
	return counts
}

// DayKey buckets an instant by its UTC calendar day
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// OrUnknown returns value, or Unknown when it is empty
func OrUnknown(value string) string {
	if value == "" {
		return Unknown
	}
	return value
}

func (n Names) nameOr(id, fallback string) string {
	if name, ok := n[id]; ok {
		return name
	}
	return fallback
}

// ActivityCountByType counts logs by their raw type
func ActivityCountByType(logs []models.DailyLogEntry) Counts {
	return CountBy(logs, func(l models.DailyLogEntry) (string, bool) {
		return l.Type, true
	})
}

// LogsByReference counts logs by the display name of a resolved reference.
// Logs whose reference did not resolve are excluded, not counted as Unknown.
func LogsByReference(logs []models.DailyLogEntry, ref func(models.DailyLogEntry) string, names Names) Counts {
	return CountBy(logs, func(l models.DailyLogEntry) (string, bool) {
		name, ok := names[ref(l)]
		return name, ok
	})
}

// LogsOverTime counts logs per UTC day
func LogsOverTime(logs []models.DailyLogEntry) Counts {
	return CountBy(logs, func(l models.DailyLogEntry) (string, bool) {
		return DayKey(l.Timestamp.Time), true
	})
}

// MoodTrends counts mood logs by their details text
func MoodTrends(logs []models.DailyLogEntry) Counts {
	return CountBy(logs, func(l models.DailyLogEntry) (string, bool) {
		return OrUnknown(l.Details), true
	})
}

// DiaperNapPatterns counts Diaper and Nap logs per child display name.
// Other types and logs whose child did not resolve are skipped.
func DiaperNapPatterns(logs []models.DailyLogEntry, childNames Names) NestedCounts {
	patterns := make(NestedCounts)
	for _, l := range logs {
		if l.Type != models.LogTypeDiaper && l.Type != models.LogTypeNap {
			continue
		}
		name, ok := childNames[l.ChildID]
		if !ok {
			continue
		}
		if patterns[name] == nil {
			patterns[name] = make(map[string]int)
		}
		patterns[name][l.Type]++
	}
	return patterns
}

// RecentLogs maps newest-first logs to display rows, keeping at most RecentLimit
func RecentLogs(logs []models.DailyLogEntry, childNames, staffNames Names) []RecentLog {
	if len(logs) > RecentLimit {
		logs = logs[:RecentLimit]
	}
	recent := make([]RecentLog, 0, len(logs))
	for _, l := range logs {
		recent = append(recent, RecentLog{
			ChildName: childNames.nameOr(l.ChildID, Unknown),
			StaffName: staffNames.nameOr(l.StaffID, Unknown),
			Type:      l.Type,
			Details:   l.Details,
			Timestamp: l.Timestamp,
		})
	}
	return recent
}

// IncidentVsMedicationCount partitions records by type
func IncidentVsMedicationCount(records []models.HealthRecordEntry) IncidentMedication {
	var pair IncidentMedication
	for _, r := range records {
		switch r.Type {
		case models.HealthTypeIncident:
			pair.IncidentCount++
		case models.HealthTypeMedication:
			pair.MedicationCount++
		}
	}
	return pair
}

// BySeverity counts records by severity, Unknown when absent
func BySeverity(records []models.HealthRecordEntry) Counts {
	return CountBy(records, func(r models.HealthRecordEntry) (string, bool) {
		return OrUnknown(r.Severity), true
	})
}

// ByChildID counts records by raw child id
func ByChildID(records []models.HealthRecordEntry) Counts {
	return CountBy(records, func(r models.HealthRecordEntry) (string, bool) {
		return r.ChildID, true
	})
}

// ByStaffID counts records by the raw id of the staff member who recorded them
func ByStaffID(records []models.HealthRecordEntry) Counts {
	return CountBy(records, func(r models.HealthRecordEntry) (string, bool) {
		return r.RecordedByUserID, true
	})
}

// ByCenterID counts records by raw center id
func ByCenterID(records []models.HealthRecordEntry) Counts {
	return CountBy(records, func(r models.HealthRecordEntry) (string, bool) {
		return r.CenterID, true
	})
}

// RecordsOverTime counts records per UTC day
func RecordsOverTime(records []models.HealthRecordEntry) Counts {
	return CountBy(records, func(r models.HealthRecordEntry) (string, bool) {
		return DayKey(r.Timestamp.Time), true
	})
}

// IncidentTypes counts records by their details text
func IncidentTypes(records []models.HealthRecordEntry) Counts {
	return CountBy(records, func(r models.HealthRecordEntry) (string, bool) {
		return OrUnknown(r.Details), true
	})
}

// ActionTaken counts records by the action taken
func ActionTaken(records []models.HealthRecordEntry) Counts {
	return CountBy(records, func(r models.HealthRecordEntry) (string, bool) {
		return OrUnknown(r.ActionTaken), true
	})
}

// CountByClassID groups records by raw class id, the first step of incidents by class
func CountByClassID(records []models.HealthRecordEntry) Counts {
	return CountBy(records, func(r models.HealthRecordEntry) (string, bool) {
		return r.ClassID, true
	})
}

// RekeyByName re-keys id counts by resolved display name.
// Ids without a resolved name are dropped rather than surfaced as Unknown.
func RekeyByName(counts Counts, names Names) Counts {
	rekeyed := make(Counts, len(counts))
	for id, n := range counts {
		if name, ok := names[id]; ok {
			rekeyed[name] += n
		}
	}
	return rekeyed
}

// RecentHealthRecords maps newest-first records to display rows, keeping at most RecentLimit
func RecentHealthRecords(records []models.HealthRecordEntry, childNames, classNames Names) []RecentHealthRecord {
	if len(records) > RecentLimit {
		records = records[:RecentLimit]
	}
	recent := make([]RecentHealthRecord, 0, len(records))
	for _, r := range records {
		recent = append(recent, RecentHealthRecord{
			ChildName: childNames.nameOr(r.ChildID, Unknown),
			ClassName: classNames.nameOr(r.ClassID, Unknown),
			Type:      r.Type,
			Details:   r.Details,
			Timestamp: r.Timestamp,
		})
	}
	return recent
}
