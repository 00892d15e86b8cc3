package notifications

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	notifsvc "swapsociety-backend/internal/application/notifications"
	"swapsociety-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotifTest(t *testing.T) (*fiber.App, *notifsvc.Service) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})

	ns := &notifsvc.Service{Rdb: rdb}
	h := &Handlers{Service: ns}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", map[string]interface{}{"user_id": "u-1"})
		return c.Next()
	})
	ng := app.Group("/api/v1/notifications", middleware.RequireAuth())
	ng.Get("/", h.List)
	ng.Delete("/:notification_id", h.Dismiss)
	return app, ns
}

func TestList(t *testing.T) {
	app, ns := setupNotifTest(t)
	ctx := context.Background()
	require.NoError(t, ns.Show(ctx, "u-1", "Added \"JBL Speaker\" to wishlist ❤️", notifsvc.KindSuccess))
	require.NoError(t, ns.Show(ctx, "u-2", "someone else's", notifsvc.KindInfo))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/notifications/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []notifsvc.Notification `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Added \"JBL Speaker\" to wishlist ❤️", body.Data[0].Message)
}

func TestDismiss(t *testing.T) {
	app, ns := setupNotifTest(t)
	ctx := context.Background()
	require.NoError(t, ns.Show(ctx, "u-1", "hello", notifsvc.KindInfo))
	items, err := ns.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, items, 1)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/notifications/"+items[0].ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	items, err = ns.List(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDismiss_NotFound(t *testing.T) {
	app, _ := setupNotifTest(t)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/notifications/does-not-exist", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
