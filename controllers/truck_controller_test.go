package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruckCreateDefaultsStatusActive(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/truck", fiber.Map{
		"truck_name":   "MH12AB1234",
		"company":      "Tata",
		"empty_weight": 6500.5,
		"gvw":          16000.0,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.Equal(t, "Truck added successfully", body["message"])
	id := body["uuid"].(string)

	resp = doRequest(t, app, fiber.MethodGet, "/api/truck/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	truck := decodeMap(t, resp)
	assert.Equal(t, "Active", truck["truck_status"])
	assert.Equal(t, 6500.5, truck["empty_weight"])
}

func TestTruckUpdate(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/truck", fiber.Map{
		"truck_name": "MH12AB1234",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	id := decodeMap(t, resp)["uuid"].(string)

	resp = doRequest(t, app, fiber.MethodPut, "/api/truck/"+id, fiber.Map{
		"truck_name":   "MH14CD5678",
		"truck_status": "Inactive",
		"gvw":          18000.0,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Truck updated successfully", decodeMap(t, resp)["message"])

	resp = doRequest(t, app, fiber.MethodGet, "/api/truck/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	truck := decodeMap(t, resp)
	assert.Equal(t, "MH14CD5678", truck["truck_name"])
	assert.Equal(t, "Inactive", truck["truck_status"])
}

func TestTruckDelete(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/truck", fiber.Map{
		"truck_name": "MH12AB1234",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	id := decodeMap(t, resp)["uuid"].(string)

	resp = doRequest(t, app, fiber.MethodDelete, "/api/truck/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Truck deleted successfully", decodeMap(t, resp)["message"])

	resp = doRequest(t, app, fiber.MethodDelete, "/api/truck/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Truck not found", decodeMap(t, resp)["message"])
}
