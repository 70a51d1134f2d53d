package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/minaret-dev/minaret/internal/announce"
	"github.com/minaret-dev/minaret/internal/db"
	"github.com/minaret-dev/minaret/internal/http/api"
	authapi "github.com/minaret-dev/minaret/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/minaret-dev/minaret/internal/http/api/admin/control/endpoints"
	pubapi "github.com/minaret-dev/minaret/internal/http/api/pub/endpoints"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, announcer *announce.Announcer) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
	},
		// control modules
		adminapi.MosqueModule(store, announcer),
		adminapi.RegistrationModule(store),
		// session endpoints that require auth
		authapi.AuthSessionModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/public",
	},
		pubapi.DirectoryModule(store),
		pubapi.PrayerModule(store),
		pubapi.RegistrationModule(store),
	)
}
