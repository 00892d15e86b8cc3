package user

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	usersvc "swapsociety-backend/internal/application/user"
	"swapsociety-backend/internal/domain"
	"swapsociety-backend/internal/middleware"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupProfileTest(t *testing.T, userID string) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	h := &Handlers{Service: &usersvc.Service{DB: db}}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals("user", map[string]interface{}{"user_id": userID})
		}
		return c.Next()
	})
	ug := app.Group("/api/v1/users", middleware.RequireAuth())
	ug.Get("/view-profile", h.ViewProfile)
	ug.Put("/update-profile", h.UpdateProfile)
	return app, db
}

func seedProfile(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&domain.User{
		UserID: "u-1", Name: "Priya Sharma", Email: "priya@iitb.ac.in",
		University: "IIT Bombay", Bio: "CS undergrad",
		Listings: datatypes.JSON([]byte("[]")), Wishlist: datatypes.JSON([]byte("[]")),
	}).Error)
}

func TestViewProfile(t *testing.T) {
	app, db := setupProfileTest(t, "u-1")
	seedProfile(t, db)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/users/view-profile", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data domain.User `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Priya Sharma", body.Data.Name)
	assert.Equal(t, "IIT Bombay", body.Data.University)
}

func TestViewProfile_RequiresAuth(t *testing.T) {
	app, _ := setupProfileTest(t, "")
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/users/view-profile", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateProfile(t *testing.T) {
	app, db := setupProfileTest(t, "u-1")
	seedProfile(t, db)

	payload, _ := json.Marshal(map[string]interface{}{
		"bio":    "Final year, trading textbooks",
		"email":  "hax@example.com", // ignored
		"rating": 5,                 // ignored
	})
	req := httptest.NewRequest("PUT", "/api/v1/users/update-profile", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var u domain.User
	require.NoError(t, db.Where("user_id = ?", "u-1").First(&u).Error)
	assert.Equal(t, "Final year, trading textbooks", u.Bio)
	assert.Equal(t, "priya@iitb.ac.in", u.Email)
	assert.Equal(t, float64(0), u.Rating)
}

func TestUpdateProfile_NoValidFields(t *testing.T) {
	app, db := setupProfileTest(t, "u-1")
	seedProfile(t, db)

	payload, _ := json.Marshal(map[string]interface{}{"email": "only@ignored.fields"})
	req := httptest.NewRequest("PUT", "/api/v1/users/update-profile", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
