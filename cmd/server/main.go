package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/minaret-dev/minaret/internal/announce"
	"github.com/minaret-dev/minaret/internal/db"
	"github.com/minaret-dev/minaret/internal/redis"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	env := LoadEnvironment()

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	if env.RedisAddress != "" {
		redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	// the athan announcer is optional; mosque displays only exist in some
	// deployments
	var announcer *announce.Announcer
	if env.MQTTBrokerURL != "" {
		var err error
		announcer, err = announce.NewAnnouncer(env.MQTTBrokerURL, "minaret-server")
		if err != nil {
			log.Warn().Err(err).Msg("athan announcer disabled")
			announcer = nil
		} else {
			defer announcer.Close()
		}
	}

	store := db.NewStore()

	r := gin.Default()
	RegisterRoutes(r, env, store, announcer)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
