package router

import (
	"context"
	"net/http"
	"time"

	listsvc "swapsociety-backend/internal/application/listings"
	notifsvc "swapsociety-backend/internal/application/notifications"
	offersvc "swapsociety-backend/internal/application/offers"
	usersvc "swapsociety-backend/internal/application/user"
	wishsvc "swapsociety-backend/internal/application/wishlist"
	authsvc "swapsociety-backend/internal/auth"
	"swapsociety-backend/internal/catalog"
	"swapsociety-backend/internal/config"
	"swapsociety-backend/internal/infrastructure/database"
	authhandler "swapsociety-backend/internal/interfaces/handlers/auth"
	healthhandler "swapsociety-backend/internal/interfaces/handlers/health"
	listhandler "swapsociety-backend/internal/interfaces/handlers/listings"
	notifhandler "swapsociety-backend/internal/interfaces/handlers/notifications"
	offerhandler "swapsociety-backend/internal/interfaces/handlers/offers"
	userhandler "swapsociety-backend/internal/interfaces/handlers/user"
	wishhandler "swapsociety-backend/internal/interfaces/handlers/wishlist"
	"swapsociety-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp builds the Fiber app with all middleware and routes. The app
// still boots when Redis or the database are unavailable; the affected
// groups are simply not mounted and /health reports the gap.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		sessionHandler, redisClient, err := middleware.Session(sessionCfg)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redisClient
		app.Use(sessionHandler)
		app.Use(middleware.HealthMarker(rdb))
	}
	app.Use(middleware.ResponseFormatter())
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	var errDB error
	if cfg.DatabaseURL != "" {
		db, errDB = database.Open(cfg.DatabaseURL)
	} else {
		db, errDB = database.OpenSQLite(cfg.SQLitePath)
	}
	if errDB != nil {
		log.Warn().Err(errDB).Msg("database unavailable, booting without persistent routes")
		db = nil
	}
	if db != nil {
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
		if err := catalog.EnsureSeeded(context.Background(), db, time.Now()); err != nil {
			return nil, nil, nil, err
		}
	}

	hh := &healthhandler.Handlers{
		Rdb:            rdb,
		FrontendURL:    cfg.FrontendURL,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	if db != nil {
		hh.DB = &gormDBPinger{db: db}
	}
	app.Get("/health/json", hh.JSON)
	app.Get("/health/reset", hh.Reset)

	if db == nil {
		return app, db, rdb, nil
	}

	ns := &notifsvc.Service{Rdb: rdb}
	us := &usersvc.Service{DB: db}
	as := &authsvc.Service{DB: db}
	ls := &listsvc.Service{DB: db}
	ws := &wishsvc.Service{DB: db, Rdb: rdb, Notify: ns}
	os := &offersvc.Service{DB: db, Notify: ns}

	google := authsvc.GoogleConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		StateSecret:  cfg.OAuthStateSecret,
	}
	ah := &authhandler.Handlers{
		Auth:        as,
		Users:       us,
		Rdb:         rdb,
		Config:      sessionCfg,
		Google:      google,
		FrontendURL: cfg.FrontendURL,
	}
	if google.Configured() {
		ah.Exchanger = authsvc.NewGoogleClient(google)
	}
	ag := app.Group("/api/v1/auth")
	ag.Post("/signup", ah.Signup)
	ag.Post("/login", ah.Login)
	ag.Get("/me", ah.Me)
	ag.Delete("/logout", ah.Logout)
	ag.Get("/google", ah.GoogleRedirect)
	ag.Get("/google/callback", ah.GoogleCallback)

	lh := &listhandler.Handlers{Service: ls}
	lg := app.Group("/api/v1/listings")
	lg.Get("/get-all-listings", lh.GetAllListings)
	lg.Get("/get-listing/:listing_id", lh.GetListingByID)
	lg.Get("/get-categories", lh.GetCategories)
	lg.Post("/create-listing", middleware.RequireAuth(), lh.CreateListing)

	uh := &userhandler.Handlers{Service: us}
	ug := app.Group("/api/v1/users", middleware.RequireAuth())
	ug.Get("/view-profile", uh.ViewProfile)
	ug.Put("/update-profile", uh.UpdateProfile)

	wh := &wishhandler.Handlers{Service: ws}
	wg := app.Group("/api/v1/wishlist", middleware.RequireAuth())
	wg.Post("/toggle/:listing_id", wh.Toggle)
	wg.Get("/view-wishlist", wh.ViewWishlist)

	oh := &offerhandler.Handlers{Service: os}
	og := app.Group("/api/v1/offers", middleware.RequireAuth())
	og.Get("/suggestions/:listing_id", oh.Suggestions)
	og.Post("/make-offer", oh.MakeOffer)

	nh := &notifhandler.Handlers{Service: ns}
	ng := app.Group("/api/v1/notifications", middleware.RequireAuth())
	ng.Get("/", nh.List)
	ng.Delete("/:notification_id", nh.Dismiss)

	return app, db, rdb, nil
}

// Handler adapts the Fiber app to net/http for embedding in other servers.
func Handler(app *fiber.App) http.Handler {
	return adaptor.FiberApp(app)
}
