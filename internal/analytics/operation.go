package analytics

// Operation tags one fixed aggregation shape
type Operation int

const (
	OpActivityCountByType Operation = iota
	OpLogsByChild
	OpLogsByStaff
	OpLogsByCenter
	OpLogsOverTime
	OpMoodTrends
	OpDiaperNapPatterns
	OpRecentLogs
	OpIncidentVsMedication
	OpIncidentsBySeverity
	OpIncidentsByChild
	OpMedicationByChild
	OpRecordsByStaff
	OpRecordsByCenter
	OpRecordsOverTime
	OpIncidentTypeBreakdown
	OpActionTakenSummary
	OpIncidentsByClass
	OpRecentHealthRecords
)

var operationNames = map[Operation]string{
	OpActivityCountByType:   "activity-count-by-type",
	OpLogsByChild:           "logs-by-child",
	OpLogsByStaff:           "logs-by-staff",
	OpLogsByCenter:          "logs-by-center",
	OpLogsOverTime:          "logs-over-time",
	OpMoodTrends:            "mood-trends",
	OpDiaperNapPatterns:     "diaper-nap-patterns",
	OpRecentLogs:            "recent-logs",
	OpIncidentVsMedication:  "incident-vs-medication",
	OpIncidentsBySeverity:   "incidents-by-severity",
	OpIncidentsByChild:      "incidents-by-child",
	OpMedicationByChild:     "medication-by-child",
	OpRecordsByStaff:        "records-by-staff",
	OpRecordsByCenter:       "records-by-center",
	OpRecordsOverTime:       "records-over-time",
	OpIncidentTypeBreakdown: "incident-type-breakdown",
	OpActionTakenSummary:    "action-taken-summary",
	OpIncidentsByClass:      "incidents-by-class",
	OpRecentHealthRecords:   "recent-health-records",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "unknown"
}

// DailyLog reports whether the operation reads the daily log collection
func (o Operation) DailyLog() bool {
	return o <= OpRecentLogs
}
