// @title Hualien Aid API
// @version 1.0
// @description Mutual-aid map: location markers, bulletin channels, image storage and geocoding.
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name apikey

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "hualien-aid/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"

	"hualien-aid/bootstrap"
	"hualien-aid/config"
	"hualien-aid/database"
	"hualien-aid/internal/board"
	"hualien-aid/internal/controllers"
	"hualien-aid/internal/feed"
	"hualien-aid/internal/geocode"
	"hualien-aid/internal/middleware"
	"hualien-aid/internal/repository"
	"hualien-aid/internal/routes"
	"hualien-aid/internal/services"
	"hualien-aid/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)

	if err := bootstrap.EnsureLocationIndexes(db); err != nil {
		log.Fatalf("ensure location indexes failed: %v", err)
	}
	if err := bootstrap.EnsureChannelIndexes(db); err != nil {
		log.Fatalf("ensure channel indexes failed: %v", err)
	}

	// Change feed
	backend := feed.Backend(cfg.FeedBackend)
	var rdb *redis.Client
	if backend == feed.BackendRedis {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
	}
	src, pub, err := feed.New(backend, db, rdb)
	if err != nil {
		log.Fatalf("feed: %v", err)
	}

	// Image storage
	bucket, err := storage.NewBucketFromEnv(ctx, db, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	sync := board.NewSyncer(
		services.NewLocationService(repository.NewLocationRepository(db, pub), src),
		services.NewChannelService(repository.NewChannelRepository(db, pub), src),
		services.NewImageService(bucket),
	)

	hub := controllers.NewStreamHub()
	hub.Initial = func() []controllers.Event {
		var out []controllers.Event
		if ev, err := controllers.NewEvent(board.KindLocations, sync.Markers.Snapshot()); err == nil {
			out = append(out, ev)
		}
		if ev, err := controllers.NewEvent(board.KindChannels, sync.Posts.Snapshot()); err == nil {
			out = append(out, ev)
		}
		return out
	}
	sync.Notify = func(n board.Notice) { hub.Broadcast("notice", n) }
	sync.OnChange = func(kind string) {
		switch kind {
		case board.KindLocations:
			hub.Broadcast(kind, sync.Markers.Snapshot())
		case board.KindChannels:
			hub.Broadcast(kind, sync.Posts.Snapshot())
		}
	}
	sync.Start(ctx)
	defer sync.Stop()

	locator := geocode.NewLocator(geocode.NewClient(geocode.Config{
		BaseURL:   cfg.GeocoderURL,
		UserAgent: cfg.GeocoderUserAgent,
		Timeout:   cfg.GeocoderTimeout,
	}))

	// Fiber app
	app := fiber.New(controllers.AppConfig())
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, apikey",
	}))

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// Public image reads
	routes.StorageRoutes(app, bucket)

	api := app.Group("/api", middleware.APIKey(cfg.PublicAPIKey))

	// Routes
	routes.CategoryRoutes(api)
	routes.LocationRoutes(api, sync)
	routes.ChannelRoutes(api, sync)
	routes.GeocodeRoutes(api, locator)
	routes.StreamRoutes(api, hub)

	go func() {
		<-ctx.Done()
		hub.Close()
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	// RUN SERVER
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
