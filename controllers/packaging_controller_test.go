package controllers_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackagingCreateDefaultsStatusStart(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/packaging", fiber.Map{
		"material_name": "Jute Bag",
		"weight":        0.5,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Packaging material added successfully", body["message"])
	id := int(body["pack_id"].(float64))
	require.NotZero(t, id)

	resp = doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/api/packaging/%d", id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	row := decodeMap(t, resp)
	assert.Equal(t, "Jute Bag", row["material_name"])
	assert.Equal(t, "Start", row["status"])
}

func TestPackagingUpdateAndDelete(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/packaging", fiber.Map{
		"material_name": "Jute Bag",
		"weight":        0.5,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	id := int(decodeMap(t, resp)["pack_id"].(float64))

	resp = doRequest(t, app, fiber.MethodPut, fmt.Sprintf("/api/packaging/%d", id), fiber.Map{
		"material_name": "HDPE Bag",
		"weight":        0.3,
		"status":        "Stop",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, fmt.Sprintf("/api/packaging/%d", id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	row := decodeMap(t, resp)
	assert.Equal(t, "HDPE Bag", row["material_name"])
	assert.Equal(t, "Stop", row["status"])

	resp = doRequest(t, app, fiber.MethodDelete, fmt.Sprintf("/api/packaging/%d", id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Packaging material deleted successfully", decodeMap(t, resp)["message"])
}

func TestPackagingInvalidID(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, fiber.MethodGet, "/api/packaging/not-a-number", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid ID", decodeMap(t, resp)["error"])
}

func TestPackagingMissingReturns404(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, fiber.MethodGet, "/api/packaging/9999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Packaging material not found", decodeMap(t, resp)["message"])
}
