package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createGrain(t *testing.T, app *fiber.App, name string) string {
	t.Helper()
	resp := doRequest(t, app, fiber.MethodPost, "/api/grains", fiber.Map{
		"grainName":  name,
		"godownName": "Bhiwandi",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeMap(t, resp)["uuid"].(string)
}

func TestGrainCreateValidation(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/grains", fiber.Map{
		"grainName": "Wheat",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Grain name and one Godown selection are required", decodeMap(t, resp)["error"])
}

func TestGrainUpdateAcceptsEitherGodownField(t *testing.T) {
	app, _ := setupApp(t)

	id := createGrain(t, app, "Wheat")

	// subGodown alone is enough.
	resp := doRequest(t, app, fiber.MethodPut, "/api/grains/"+id, fiber.Map{
		"grainName": "Wheat",
		"subGodown": "Wakad",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/api/grains/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Wakad", decodeMap(t, resp)["godownName"])

	// When both are present the MSWC godown wins.
	resp = doRequest(t, app, fiber.MethodPut, "/api/grains/"+id, fiber.Map{
		"grainName":  "Wheat",
		"mswcGodown": "Panvel",
		"subGodown":  "Wakad",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/api/grains/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Panvel", decodeMap(t, resp)["godownName"])
}

func TestGrainUpdateWithoutGodownFails(t *testing.T) {
	app, _ := setupApp(t)

	id := createGrain(t, app, "Wheat")

	resp := doRequest(t, app, fiber.MethodPut, "/api/grains/"+id, fiber.Map{
		"grainName": "Rice",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGrainDeleteRenumbers(t *testing.T) {
	app, _ := setupApp(t)

	first := createGrain(t, app, "Wheat")
	createGrain(t, app, "Rice")

	resp := doRequest(t, app, fiber.MethodDelete, "/api/grains/"+first, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Grain deleted and order numbers reset successfully!", decodeMap(t, resp)["message"])

	resp = doRequest(t, app, fiber.MethodGet, "/api/grains", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	grains := decodeList(t, resp)
	require.Len(t, grains, 1)
	assert.Equal(t, "Rice", grains[0]["grainName"])
	assert.Equal(t, float64(1), grains[0]["order_number"])
}
