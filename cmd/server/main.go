package main

import (
	"context"
	"errors"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fadilmartias/jobspec-studio/internal/config"
	"github.com/fadilmartias/jobspec-studio/internal/domain/fiber/handler"
	"github.com/fadilmartias/jobspec-studio/internal/history"
	"github.com/fadilmartias/jobspec-studio/internal/middleware"
	"github.com/fadilmartias/jobspec-studio/internal/service"
	"github.com/fadilmartias/jobspec-studio/internal/usecase"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	// the config loaders warn through the global logger
	zl, err := newLogger(os.Getenv("APP_ENV") == "production")
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: 6 * 1024 * 1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter("global", 50, time.Minute))

	gateway := service.NewGateway(ctx)
	structurer := usecase.NewStructureUsecase(gateway, config.LoadLLMConfig().MaxTokens)
	uc := usecase.NewJobSpecUsecase(structurer, gateway, history.NewStore(history.DefaultCapacity))
	handler.NewJobSpecHandler(uc).RegisterRoutes(app)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			zap.L().Debug("runtime", zap.Int("goroutines", runtime.NumGoroutine()))
		}
	}()

	zap.L().Info("server running",
		zap.String("port", appConfig.Port),
		zap.Bool("live_gateway", gateway.Available()))
	if err := app.Listen(appConfig.Port); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
