package wishlist

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	notifsvc "swapsociety-backend/internal/application/notifications"
	wishsvc "swapsociety-backend/internal/application/wishlist"
	"swapsociety-backend/internal/catalog"
	"swapsociety-backend/internal/domain"
	"swapsociety-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupWishlistTest(t *testing.T) (*fiber.App, *gorm.DB) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Listing{}))
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	for _, l := range catalog.SeedListings(now) {
		require.NoError(t, db.Create(&l).Error)
	}

	ns := &notifsvc.Service{Rdb: rdb}
	h := &Handlers{Service: &wishsvc.Service{DB: db, Rdb: rdb, Notify: ns}}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", map[string]interface{}{"user_id": "u-1"})
		return c.Next()
	})
	wg := app.Group("/api/v1/wishlist", middleware.RequireAuth())
	wg.Post("/toggle/:listing_id", h.Toggle)
	wg.Get("/view-wishlist", h.ViewWishlist)
	return app, db
}

func TestToggle(t *testing.T) {
	app, db := setupWishlistTest(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/wishlist/toggle/2", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["data"].(map[string]interface{})["wishlisted"])

	var l domain.Listing
	require.NoError(t, db.Where("listing_id = ?", "2").First(&l).Error)
	assert.Equal(t, int64(46), l.Likes)

	// toggling again removes and restores the counter
	resp, err = app.Test(httptest.NewRequest("POST", "/api/v1/wishlist/toggle/2", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, db.Where("listing_id = ?", "2").First(&l).Error)
	assert.Equal(t, int64(45), l.Likes)
}

func TestToggle_UnknownListing(t *testing.T) {
	app, _ := setupWishlistTest(t)
	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/wishlist/toggle/no-such-id", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestViewWishlist(t *testing.T) {
	app, _ := setupWishlistTest(t)

	for _, id := range []string{"5", "3"} {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/wishlist/toggle/"+id, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/wishlist/view-wishlist", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body struct {
		Data []domain.Listing `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 2)
	// newest first
	assert.Equal(t, "3", body.Data[0].ListingID)
	assert.Equal(t, "5", body.Data[1].ListingID)
}
