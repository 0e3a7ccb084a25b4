package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/daycare-data/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, ErrorResponseStruct) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error { return ServiceErrorResponse(c, err) })

	resp, testErr := app.Test(httptest.NewRequest("GET", "/x?y=1", nil))
	require.NoError(t, testErr)

	data, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	var body ErrorResponseStruct
	require.NoError(t, json.Unmarshal(data, &body))
	return resp.StatusCode, body
}

func TestServiceErrorResponse(t *testing.T) {
	status, body := respond(t, types.NewBadRequestError("startDate and endDate are required"))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, fiber.StatusBadRequest, body.Status)
	assert.Equal(t, "badRequest", body.Type)
	assert.Equal(t, "/x?y=1", body.URL)
	assert.False(t, body.Ok)
	assert.NotEmpty(t, body.Timestamp)
}

func TestServiceErrorResponseUnknownError(t *testing.T) {
	status, body := respond(t, errors.New("secret detail"))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal Server Error", body.Message)
}

func TestPingServiceUnreachable(t *testing.T) {
	assert.Error(t, PingService("http://127.0.0.1:1", 100*time.Millisecond))
}
