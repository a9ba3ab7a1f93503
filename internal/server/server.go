package server

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Config struct {
	Addr         string
	AllowOrigins string
	Depth        int
	Seed         int64
}

// Validate rejects a default depth the analysis endpoint would refuse.
func (config Config) Validate() error {
	if config.Depth < 0 || config.Depth > MaxDepth {
		return fmt.Errorf("depth %v: %w", config.Depth, ErrBadDepth)
	}
	return nil
}

// NewApp wires the game routes under /api.
func NewApp(logger *log.Logger, config Config, gameManager *GameManager) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "chesstack",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(func(c *fiber.Ctx) error {
		var start = time.Now()
		var err = c.Next()
		logger.Println(c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	gameController := NewGameController(gameManager, config.Depth)

	api := app.Group("/api")

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/", gameController.CreateGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Get("/:gameId/actions", gameController.GetLegalActions)
	gameRoutes.Post("/:gameId/action", gameController.MakeAction)
	gameRoutes.Post("/:gameId/bot", gameController.BotMove)
	gameRoutes.Get("/:gameId/analysis", gameController.Analyze)

	return app
}
