package dashboard

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sync-gateway/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, svc *Service) *fiber.App {
	app := fiber.New()
	require.NoError(t, NewFeature(svc).Load(app))
	return app
}

func get(t *testing.T, app *fiber.App, target string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return resp.StatusCode
}

func TestHandleStats(t *testing.T) {
	svc, db := newTestService(t, Config{}, nil)
	seedProducts(t, db, 4)

	var stats Stats
	status := get(t, newTestApp(t, svc), "/api/dashboard/stats", &stats)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 4, stats.Products)
}

func TestHandleActivity(t *testing.T) {
	svc, _ := newTestService(t, Config{}, nil)
	svc.now = func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC) }

	var days []DailyActivity
	status := get(t, newTestApp(t, svc), "/api/dashboard/activity", &days)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, days, 7)
	assert.Equal(t, "2026-10-16", days[6].Date)
}

func TestHandleListing(t *testing.T) {
	svc, db := newTestService(t, Config{PageSize: 15, MaxPageSize: 100}, nil)
	seedProducts(t, db, 3)
	app := newTestApp(t, svc)

	var page Page[catalog.Product]
	status := get(t, app, "/api/dashboard/products?page=2&pageSize=2", &page)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 3, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "P03", page.Items[0].Ref)

	var raw map[string]any
	status = get(t, app, "/api/dashboard/prices", &raw)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, raw["total"])
	assert.Equal(t, []any{}, raw["items"])
}

func TestHandleListing_Routes(t *testing.T) {
	svc, _ := newTestService(t, Config{}, nil)
	app := newTestApp(t, svc)

	for _, path := range []string{
		"logs", "products", "counterparties", "shops", "workers",
		"orders", "specifications", "returns", "remains", "prices",
	} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusOK, get(t, app, "/api/dashboard/"+path, nil))
		})
	}
}

func TestHandleStats_StoreFailure(t *testing.T) {
	svc, db := newTestService(t, Config{}, nil)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	var body map[string]string
	status := get(t, newTestApp(t, svc), "/api/dashboard/stats", &body)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.NotEmpty(t, body["error"])
}
