package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/daycare-data/internal/handlers"
	"github.com/localnerve/daycare-data/internal/store"
	"github.com/localnerve/daycare-data/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

// setupTestApp mounts every route under /api over st
func setupTestApp(st store.Store) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	handlers.RegisterRoutes(api, st, func() time.Time { return fixedNow })
	return app
}

// request executes a request and decodes the JSON response into out, when out is not nil
func request(t *testing.T, app *fiber.App, method, path string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(data)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err, "Failed to execute request")

	if out != nil {
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, out), "Failed to decode JSON: %s", string(data))
	}
	return resp
}

type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Ok      bool   `json:"ok"`
	Type    string `json:"type"`
	URL     string `json:"url"`
}

func create(t *testing.T, app *fiber.App, path string, body interface{}) string {
	t.Helper()
	var out map[string]interface{}
	resp := request(t, app, fiber.MethodPost, path, body, &out)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, "POST %s: %v", path, out)
	id, _ := out["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// seedCenter creates a center, a class, a staff member and a child
func seedCenter(t *testing.T, app *fiber.App) (centerID, classID, staffID, childID string) {
	t.Helper()
	centerID = create(t, app, "/api/center", map[string]string{"name": "Maple Street Center", "location": "12 Maple Street"})
	classID = create(t, app, "/api/class", map[string]string{"name": "Acorns", "centerId": centerID})
	staffID = create(t, app, "/api/staff", map[string]string{
		"firstName": "Dana", "lastName": "Okafor", "role": "Lead Teacher", "centerId": centerID,
	})
	childID = create(t, app, "/api/child", map[string]string{
		"firstName": "Ava", "lastName": "Lindqvist", "classId": classID, "centerId": centerID,
		"staffId": staffID, "birthDate": "2020-03-10",
	})
	return
}

func TestCenterCreateAndGet(t *testing.T) {
	app := setupTestApp(storetest.NewSQLite(t))

	id := create(t, app, "/api/center", map[string]string{"name": "Maple Street Center", "location": "12 Maple Street"})

	var center map[string]interface{}
	resp := request(t, app, fiber.MethodGet, "/api/center/"+id, nil, &center)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Maple Street Center", center["name"])
	assert.Equal(t, id, center["id"])

	var centers []map[string]interface{}
	resp = request(t, app, fiber.MethodGet, "/api/center", nil, &centers)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, centers, 1)
}

func TestGetMissingIs404(t *testing.T) {
	app := setupTestApp(storetest.NewSQLite(t))

	for _, path := range []string{"/api/center/nope", "/api/class/nope", "/api/staff/nope", "/api/child/nope", "/api/daily-logs/nope"} {
		var body errorBody
		resp := request(t, app, fiber.MethodGet, path, nil, &body)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, path)
		assert.False(t, body.Ok)
		assert.Equal(t, "notFound", body.Type)
		assert.Equal(t, path, body.URL)
	}
}

func TestCreateValidationIs422(t *testing.T) {
	app := setupTestApp(storetest.NewSQLite(t))

	var body errorBody
	resp := request(t, app, fiber.MethodPost, "/api/staff", map[string]string{"firstName": "Dana"}, &body)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "validation", body.Type)
	assert.Equal(t, "lastName is required, role is required, centerId is required", body.Message)
}

func TestCreateWrongJSONTypeIs422(t *testing.T) {
	app := setupTestApp(storetest.NewSQLite(t))

	var body errorBody
	resp := request(t, app, fiber.MethodPost, "/api/center", `{"name": 12, "location": "x"}`, &body)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "validation", body.Type)
}

func TestChildAgeAndRoutes(t *testing.T) {
	app := setupTestApp(storetest.NewSQLite(t))
	_, classID, staffID, childID := seedCenter(t, app)

	var child map[string]interface{}
	request(t, app, fiber.MethodGet, "/api/child/"+childID, nil, &child)
	assert.EqualValues(t, 5, child["age"])
	assert.Equal(t, "2020-03-10T00:00:00Z", child["birthDate"])

	var byStaff []map[string]interface{}
	resp := request(t, app, fiber.MethodGet, "/api/child/staff/"+staffID, nil, &byStaff)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, byStaff, 1)

	var roster []map[string]interface{}
	resp = request(t, app, fiber.MethodGet, "/api/class/"+classID+"/children", nil, &roster)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, roster, 1)

	var birthdays struct {
		BirthdaysThisMonth []map[string]interface{} `json:"birthdaysThisMonth"`
		BirthdaysToday     []map[string]interface{} `json:"birthdaysToday"`
	}
	resp = request(t, app, fiber.MethodGet, "/api/child/birthdays/check", nil, &birthdays)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, birthdays.BirthdaysThisMonth, 1)
	assert.Len(t, birthdays.BirthdaysToday, 1)
}

func TestDailyLogSingleAndBatch(t *testing.T) {
	app := setupTestApp(storetest.NewSQLite(t))
	centerID, _, staffID, childID := seedCenter(t, app)

	entry := map[string]interface{}{
		"childId": childID, "staffId": staffID, "centerId": centerID,
		"timestamp": "2025-01-15T12:00:00Z", "type": "Nap", "details": "Slept 1h30",
	}

	var single map[string]interface{}
	resp := request(t, app, fiber.MethodPost, "/api/daily-logs", entry, &single)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Nap", single["type"])
	assert.NotEmpty(t, single["id"])

	seconds := map[string]interface{}{
		"childId": childID, "staffId": staffID, "centerId": centerID,
		"timestamp": map[string]int64{"_seconds": 1736935200, "_nanoseconds": 0},
		"type": "Diaper", "details": "Wet",
	}
	var batch []map[string]interface{}
	resp = request(t, app, fiber.MethodPost, "/api/daily-logs", []interface{}{entry, seconds}, &batch)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Len(t, batch, 2)
	assert.Equal(t, "2025-01-15T10:00:00Z", batch[1]["timestamp"])

	var logs []map[string]interface{}
	resp = request(t, app, fiber.MethodGet, "/api/daily-logs?childId="+childID+"&type=Nap", nil, &logs)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, logs, 2)

	var view map[string]interface{}
	resp = request(t, app, fiber.MethodGet, "/api/daily-logs/"+single["id"].(string), nil, &view)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotNil(t, view["child"])
	assert.NotNil(t, view["staff"])
	assert.NotNil(t, view["center"])

	var all []map[string]interface{}
	resp = request(t, app, fiber.MethodGet, "/api/daily-logs/all", nil, &all)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, all, 3)
}

func TestDailyLogBatchRejectedAsWhole(t *testing.T) {
	counting := storetest.NewCounting(storetest.NewSQLite(t))
	app := setupTestApp(counting)

	valid := map[string]string{
		"childId": "c1", "staffId": "s1", "centerId": "ce1",
		"timestamp": "2025-01-15T12:00:00Z", "type": "Nap", "details": "1h",
	}
	invalid := map[string]string{
		"childId": "c1", "staffId": "s1", "centerId": "ce1",
		"timestamp": "2025-01-15T12:00:00Z", "type": "Snack", "details": "1h",
	}

	var body errorBody
	resp := request(t, app, fiber.MethodPost, "/api/daily-logs", []interface{}{valid, invalid}, &body)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body.Message, "type must be one of")
	assert.Zero(t, counting.Inserts())
}

func TestQueryParameterErrorsAre400(t *testing.T) {
	counting := storetest.NewCounting(nil)
	app := setupTestApp(counting)

	paths := []string{
		"/api/daily-logs?startDate=yesterday",
		"/api/daily-logs/type?type=Snack",
		"/api/daily-logs/over-time?endDate=2025-13-01",
		"/api/healthRecords/incidents-by-severity?severity=Severe",
		"/api/healthRecords/records-by-staff?type=Nap",
	}
	for _, path := range paths {
		var body errorBody
		resp := request(t, app, fiber.MethodGet, path, nil, &body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
		assert.Equal(t, "badRequest", body.Type, path)
	}
	assert.Zero(t, counting.Calls())
}

func TestIncidentByClassRequiresDates(t *testing.T) {
	counting := storetest.NewCounting(nil)
	app := setupTestApp(counting)

	for _, path := range []string{
		"/api/healthRecords/incident-by-class",
		"/api/healthRecords/incident-by-class?startDate=2025-01-01",
		"/api/healthRecords/incident-by-class?endDate=2025-01-31",
	} {
		var body errorBody
		resp := request(t, app, fiber.MethodGet, path, nil, &body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
		assert.Equal(t, "startDate and endDate are required", body.Message)
	}
	assert.Zero(t, counting.Calls())
}

func TestIncidentByClass(t *testing.T) {
	app := setupTestApp(storetest.NewSQLite(t))
	centerID, classID, staffID, childID := seedCenter(t, app)

	record := func(classID, recordType, ts string) map[string]string {
		return map[string]string{
			"childId": childID, "recordedByUserId": staffID, "centerId": centerID, "classId": classID,
			"timestamp": ts, "type": recordType, "severity": "Low",
			"details": "Scraped knee", "actionTaken": "Bandaged",
		}
	}
	create(t, app, "/api/healthRecords", record(classID, "Incident", "2025-01-15T10:00:00Z"))
	create(t, app, "/api/healthRecords", record(classID, "Incident", "2025-01-31T00:00:00Z"))
	create(t, app, "/api/healthRecords", record("class-gone", "Incident", "2025-01-15T11:00:00Z"))
	create(t, app, "/api/healthRecords", record(classID, "Incident", "2025-02-01T10:00:00Z"))

	var counts map[string]int
	resp := request(t, app, fiber.MethodGet,
		"/api/healthRecords/incident-by-class?startDate=2025-01-01&endDate=2025-01-31", nil, &counts)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]int{"Acorns": 2}, counts)
}

func TestHealthRecordCreateResolvesJoins(t *testing.T) {
	app := setupTestApp(storetest.NewSQLite(t))
	centerID, classID, staffID, childID := seedCenter(t, app)

	var view map[string]interface{}
	resp := request(t, app, fiber.MethodPost, "/api/healthRecords", map[string]string{
		"childId": childID, "recordedByUserId": staffID, "centerId": centerID, "classId": classID,
		"timestamp": "2025-01-15T10:00:00Z", "type": "Medication Administered",
		"details": "Scheduled dose", "actionTaken": "Administered", "medicationName": "Amoxicillin", "dose": "5ml",
	}, &view)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotNil(t, view["child"])
	assert.NotNil(t, view["class"])
	assert.NotContains(t, view, "severity")

	var pair map[string]int
	resp = request(t, app, fiber.MethodGet, "/api/healthRecords/incident-vs-medication", nil, &pair)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]int{"incidentCount": 0, "medicationCount": 1}, pair)

	var byChild []map[string]interface{}
	resp = request(t, app, fiber.MethodGet, "/api/healthRecords/child/"+childID, nil, &byChild)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, byChild, 1)
}

func TestDiaperNapPatternsEndpoint(t *testing.T) {
	app := setupTestApp(storetest.NewSQLite(t))
	centerID, _, staffID, childID := seedCenter(t, app)

	for _, logType := range []string{"Nap", "Diaper", "Diaper", "Meal"} {
		create(t, app, "/api/daily-logs", map[string]string{
			"childId": childID, "staffId": staffID, "centerId": centerID,
			"timestamp": "2025-01-15T12:00:00Z", "type": logType, "details": "x",
		})
	}

	var patterns map[string]map[string]int
	resp := request(t, app, fiber.MethodGet, "/api/daily-logs/diaper-nap-patterns?type=Meal", nil, &patterns)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]map[string]int{"Ava Lindqvist": {"Nap": 1, "Diaper": 2}}, patterns)

	var recent []map[string]interface{}
	resp = request(t, app, fiber.MethodGet, "/api/daily-logs/recent", nil, &recent)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, recent, 4)
	assert.Equal(t, "Dana Okafor", recent[0]["staffName"])
}

func TestStoreFailureHidesCause(t *testing.T) {
	counting := storetest.NewCounting(nil)
	counting.Err = errors.New("dial tcp 10.0.0.5:5432: connection refused")
	app := setupTestApp(counting)

	var body errorBody
	resp := request(t, app, fiber.MethodGet, "/api/daily-logs/type", nil, &body)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "store", body.Type)
	assert.Equal(t, "Failed to fetch daily logs", body.Message)
	assert.NotContains(t, body.Message, "10.0.0.5")
}
