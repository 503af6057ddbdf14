package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"github.com/rneedle3/play-now/api"
	"github.com/rneedle3/play-now/api/recus"
	"github.com/rneedle3/play-now/config"
	pgdao "github.com/rneedle3/play-now/dao/postgres"
	"github.com/rneedle3/play-now/dao/redis"
	"github.com/rneedle3/play-now/db"
	"github.com/rneedle3/play-now/server"
	"github.com/rneedle3/play-now/server/handlers"
	services "github.com/rneedle3/play-now/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient                  db.RedisClient
	RedisVenueDao                *redis.RedisVenueDAO
	SlotDao                      *pgdao.PostgresSlotDAO
	RecUsAPI                     recus.RecUsAPI
	BookingLinks                 *config.BookingLinks
	AnnotationRenderer           *services.AnnotationRenderer
	CourtView                    *services.CourtView
	AvailabilityHandler          *handlers.AvailabilityHandler
	VenueHandler                 *handlers.VenueHandler
	MuxRouter                    *mux.Router
	Router                       *server.Router
	PlayNowHttpServer            *server.PlayNowHttpServer
	AvailabilityRefresherService *services.AvailabilityRefresherService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis Client internals
	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis Venue DAO
	redisVenueDao := redis.NewRedisVenueDAO(redisClient)

	// Initialize Postgres availability store
	pgPool, err := db.NewPostgresPool(ctx, config.PostgresURL())
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Postgres: %v", err))
	}
	slotDao := pgdao.NewPostgresSlotDAO(pgPool)

	// Initialize RecUsApi - mock outside prod
	var recUsAPIClient recus.RecUsAPI
	if env != "prod" {
		recUsAPIClient = recus.NewRecUsApiClientMock()
		log.Printf("Using mock rec.us api")
	} else {
		log.Printf("Using prod rec.us api")
		httpClient := api.NewHTTPClient(config.REC_US_ENDPOINT_BASE_V1)
		recUsAPIClient = recus.NewRecUsApiClient(httpClient)
	}

	// Initialize presentation core
	bookingLinks := config.DefaultBookingLinks()
	renderer := services.NewAnnotationRenderer(bookingLinks)
	courtView := services.NewCourtView(redisVenueDao, slotDao, renderer, nil)

	// Initialize handlers
	availabilityHandler := handlers.NewAvailabilityHandler(courtView)
	venueHandler := handlers.NewVenueHandler(redisVenueDao)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(availabilityHandler, venueHandler, muxRouter)

	// initialize play now server
	playNowHttpServer := server.NewPlayNowHttpServer(router, muxRouter)

	availabilityRefresherService := services.NewAvailabilityRefresherService(
		redisVenueDao, slotDao, recUsAPIClient, config.DefaultCourtLocations())

	return &Container{
		RedisClient:                  redisClient,
		RedisVenueDao:                redisVenueDao,
		SlotDao:                      slotDao,
		RecUsAPI:                     recUsAPIClient,
		BookingLinks:                 bookingLinks,
		AnnotationRenderer:           renderer,
		CourtView:                    courtView,
		AvailabilityHandler:          availabilityHandler,
		VenueHandler:                 venueHandler,
		MuxRouter:                    muxRouter,
		Router:                       router,
		PlayNowHttpServer:            playNowHttpServer,
		AvailabilityRefresherService: availabilityRefresherService,
	}
}
