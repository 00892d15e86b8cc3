package main

import (
	"context"
	"fmt"

	"swapsociety-backend/internal/config"
	"swapsociety-backend/internal/interfaces/router"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config load: " + err.Error())
	}

	app, db, rdb, err := router.CreateApp(cfg)
	if err != nil {
		panic("app create: " + err.Error())
	}

	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			panic("database: get DB: " + err.Error())
		}
		if err := sqlDB.Ping(); err != nil {
			panic("database connection failed: " + err.Error())
		}
		log.Info().Msg("Database connected")
	}
	if rdb != nil {
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			panic("Redis connection failed: " + err.Error())
		}
		log.Info().Msg("Redis connected")
	}

	fmt.Printf("Server running at http://localhost:%s\n", cfg.Port)
	fmt.Printf("Health check: http://localhost:%s/health/json\n", cfg.Port)
	fmt.Println("---")

	if err := app.Listen(":" + cfg.Port); err != nil {
		panic(err)
	}
}
