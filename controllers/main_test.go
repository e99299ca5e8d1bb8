package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"pds-backend/config"
	"pds-backend/database"
	"pds-backend/logger"
	"pds-backend/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Nop()
	config.JWTSecret = "test-secret"
	config.TokenValidity = 3600
	os.Exit(m.Run())
}

// setupApp wires the full route table against a fresh in-memory database.
// The shared-cache DSN keeps the database alive across the pool's
// connections for the duration of the test.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	routes.SetupRootRoutes(app)
	routes.SetupAuthRoutes(app, db)
	routes.SetupEmployeeRoutes(app, db)
	routes.SetupMswcGodownRoutes(app, db)
	routes.SetupSubGodownRoutes(app, db)
	routes.SetupOwnerRoutes(app, db)
	routes.SetupGrainRoutes(app, db)
	routes.SetupTruckRoutes(app, db)
	routes.SetupPackagingRoutes(app, db)
	routes.SetupCategoryRoutes(app, db)
	routes.SetupSchemeRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)

	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	return doRequestWithHeaders(t, app, method, path, body, nil)
}

func doRequestWithHeaders(t *testing.T, app *fiber.App, method, path string, body interface{}, headers map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
