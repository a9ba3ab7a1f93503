package server

import (
	"errors"

	"github.com/ChizhovVadim/chesstack/pkg/engine"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameManager  *GameManager
	defaultDepth int
}

func NewGameController(gameManager *GameManager, defaultDepth int) *GameController {
	return &GameController{gameManager: gameManager, defaultDepth: defaultDepth}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameManager.CreateGame()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameManager.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) GetLegalActions(c *fiber.Ctx) error {
	actions, err := gc.gameManager.LegalActions(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"actions": actions,
	})
}

func (gc *GameController) MakeAction(c *fiber.Ctx) error {
	var req ActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	action, err := gc.gameManager.MakeAction(c.Params("gameId"), req.Action)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"action": action,
	})
}

func (gc *GameController) BotMove(c *fiber.Ctx) error {
	var req BotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	action, err := gc.gameManager.BotMove(c.Params("gameId"), req.Bot, req.Depth)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"action": action,
	})
}

func (gc *GameController) Analyze(c *fiber.Ctx) error {
	analysis, err := gc.gameManager.Analyze(c.Params("gameId"), c.QueryInt("depth", gc.defaultDepth))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(analysis)
}

func errorResponse(c *fiber.Ctx, err error) error {
	var status = fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrGameNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrBadDepth), errors.Is(err, ErrUnknownBot):
		status = fiber.StatusBadRequest
	case errors.Is(err, engine.ErrIllegalAction),
		errors.Is(err, engine.ErrNotYourTurn),
		errors.Is(err, engine.ErrNoLegalActions):
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
