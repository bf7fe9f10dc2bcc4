package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/AshrafMorningstar/linkedin-viral-scheduler/configs"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/ai"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/api/handlers"
	job "github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/jobs"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/queue"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/repository"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/service"
	"github.com/AshrafMorningstar/linkedin-viral-scheduler/internal/watcher"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	userRepo := repository.NewUserRepository(db)
	mediaRepo := repository.NewMediaItemRepository(db)
	draftRepo := repository.NewPostDraftRepository(db)
	scheduleRepo := repository.NewSchedulePlanRepository(db)

	schedulerService := service.NewSchedulerService(*cfg, draftRepo, mediaRepo, scheduleRepo)
	generationService := service.NewGenerationService(*cfg, mediaRepo, draftRepo, schedulerService)
	mediaService := service.NewMediaService(*cfg, mediaRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, draftRepo)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("LinkedIn Viral Scheduler API is running")
	})

	media := handlers.NewMediaHandler(mediaService)
	app.Post("/upload", media.Upload)
	app.Get("/media", media.ListMedia)

	generate := handlers.NewGenerateHandler(generationService, userRepo, client)
	app.Post("/generate", generate.Generate)
	app.Get("/drafts", generate.ListDrafts)

	schedule := handlers.NewScheduleHandler(scheduleService)
	app.Get("/schedules", schedule.ListSchedules)
	app.Post("/schedules/:id/launch", schedule.Launch)

	image := handlers.NewImageHandler(ai.NewImageGenerator(cfg.OpenAIKey))
	app.Post("/ai/image", image.GenerateImage)

	// media watcher
	mediaWatcher := watcher.NewMediaWatcher(*cfg, userRepo, mediaRepo)
	watchCtx, stopWatcher := context.WithCancel(context.Background())
	defer stopWatcher()

	go func() {
		if err := mediaWatcher.Run(watchCtx); err != nil && err != context.Canceled {
			log.Printf("Media watcher stopped: %v", err)
		}
	}()

	// cron jobs
	publishJob := job.NewPublishDueJob(scheduleRepo, draftRepo, job.NewLinkedInTransmitter())

	c := cron.New()
	c.AddFunc(cfg.SweepSpec, func() {
		log.Println("Checking for due schedules...")
		publishJob.Run()
	})
	c.Start()

	// queue
	queueW := queue.NewQueue(generationService)

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeGenerateDrafts, queueW.HandleGenerateDraftsTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, db, stopWatcher)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB, stopWatcher context.CancelFunc) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	stopWatcher()

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
