package offers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	notifsvc "swapsociety-backend/internal/application/notifications"
	offersvc "swapsociety-backend/internal/application/offers"
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

func setupOffersTest(t *testing.T) (*fiber.App, *notifsvc.Service) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Listing{}))
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	for _, l := range catalog.SeedListings(now) {
		require.NoError(t, db.Create(&l).Error)
	}

	ns := &notifsvc.Service{Rdb: rdb}
	h := &Handlers{Service: &offersvc.Service{DB: db, Notify: ns}}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", map[string]interface{}{"user_id": "u-1"})
		return c.Next()
	})
	og := app.Group("/api/v1/offers", middleware.RequireAuth())
	og.Get("/suggestions/:listing_id", h.Suggestions)
	og.Post("/make-offer", h.MakeOffer)
	return app, ns
}

func TestSuggestions(t *testing.T) {
	app, _ := setupOffersTest(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/offers/suggestions/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			ListingID   string  `json:"listingId"`
			Price       int64   `json:"price"`
			Suggestions []int64 `json:"suggestions"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1", body.Data.ListingID)
	assert.Equal(t, int64(65000), body.Data.Price)
	assert.Equal(t, []int64{45500, 52000, 58500}, body.Data.Suggestions)
}

func TestSuggestions_NotFound(t *testing.T) {
	app, _ := setupOffersTest(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/offers/suggestions/zzz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMakeOffer(t *testing.T) {
	app, ns := setupOffersTest(t)

	payload, _ := json.Marshal(map[string]interface{}{
		"listingId": "1", "amount": 52000, "message": "Would you take this?",
	})
	req := httptest.NewRequest("POST", "/api/v1/offers/make-offer", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	items, err := ns.List(req.Context(), "u-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Offer of ₹52000 sent to Arjun Patel! 🤝", items[0].Message)
}

func TestMakeOffer_Invalid(t *testing.T) {
	app, _ := setupOffersTest(t)

	payload, _ := json.Marshal(map[string]interface{}{"listingId": "1", "amount": 0})
	req := httptest.NewRequest("POST", "/api/v1/offers/make-offer", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	payload, _ = json.Marshal(map[string]interface{}{"listingId": "zzz", "amount": 100})
	req = httptest.NewRequest("POST", "/api/v1/offers/make-offer", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
