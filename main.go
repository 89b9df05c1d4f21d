package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/trailmates/trailmates-server/src/config"
	"github.com/trailmates/trailmates-server/src/lib"
	"github.com/trailmates/trailmates-server/src/repository"
	"github.com/trailmates/trailmates-server/src/routes"
	"github.com/trailmates/trailmates-server/src/services"
)

func main() {
	conf := config.GetConfig()

	if err := lib.InitLogger(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}

	db, err := lib.ConnectDB(&conf.MongoConfig)
	if err != nil {
		zap.L().Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	cache := lib.ConnectCache(&conf.RedisConfig)

	services.InitServices(repository.NewRepos(db), cache)

	app := fiber.New(fiber.Config{
		AppName: conf.MainConfig.AppName,
	})

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	routes.AuthRoutes(app)
	routes.UserRoutes(app)
	routes.FriendshipRoutes(app)
	routes.HikeRoutes(app)
	routes.FeedRoutes(app)

	addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
	go func() {
		zap.L().Info("server is running", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			zap.L().Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zap.L().Error("shutdown failed", zap.Error(err))
	}
}
