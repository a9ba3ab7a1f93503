package server

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/ChizhovVadim/chesstack/internal/policybuilder"
	"github.com/ChizhovVadim/chesstack/pkg/board"
	"github.com/ChizhovVadim/chesstack/pkg/common"
	"github.com/ChizhovVadim/chesstack/pkg/engine"
	"github.com/ChizhovVadim/chesstack/pkg/eval/material"
	"github.com/google/uuid"
)

const MaxDepth = 5

var (
	ErrGameNotFound = errors.New("game not found")
	ErrBadDepth     = errors.New("depth out of range")
	ErrUnknownBot   = errors.New("unknown bot")
)

type game struct {
	mu       sync.Mutex
	id       string
	position *board.Position
	history  []common.Action
	rnd      *rand.Rand
}

// GameManager keeps the running games. A game is searched by one request at a time.
type GameManager struct {
	games     map[string]*game
	mu        sync.RWMutex
	options   engine.Options
	evaluator *material.EvaluationService
	seed      int64
}

func NewGameManager(options engine.Options, seed int64) *GameManager {
	return &GameManager{
		games:     make(map[string]*game),
		options:   options,
		evaluator: material.NewEvaluationService(),
		seed:      seed,
	}
}

func (gm *GameManager) CreateGame() (string, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	var gameID = uuid.New().String()
	if _, exists := gm.games[gameID]; exists {
		return "", errors.New("game already exists")
	}
	gm.seed++
	gm.games[gameID] = &game{
		id:       gameID,
		position: board.NewPosition(),
		rnd:      rand.New(rand.NewSource(gm.seed)),
	}
	return gameID, nil
}

func (gm *GameManager) getGame(gameID string) (*game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	var g, exists = gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return g, nil
}

func (gm *GameManager) GetGameState(gameID string) (GameState, error) {
	var g, err = gm.getGame(gameID)
	if err != nil {
		return GameState{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return GameState{
		GameID:  g.id,
		Turn:    g.position.Turn().String(),
		Pieces:  piecesState(g.position),
		Pockets: pocketsState(g.position),
		History: actionStrings(g.history),
		Eval:    gm.evaluator.Evaluate(g.position, common.White),
	}, nil
}

func (gm *GameManager) LegalActions(gameID string) ([]string, error) {
	var g, err = gm.getGame(gameID)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	var p = g.position
	return actionStrings(engine.AllLegalActions(p, p.Turn())), nil
}

// MakeAction applies an action in the notation of common.ParseAction and ends the turn.
func (gm *GameManager) MakeAction(gameID string, text string) (string, error) {
	var g, err = gm.getGame(gameID)
	if err != nil {
		return "", err
	}
	action, err := common.ParseAction(text)
	if err != nil {
		return "", fmt.Errorf("%w: %v", engine.ErrIllegalAction, err)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	action, err = engine.ApplyAction(g.position, action)
	if err != nil {
		return "", err
	}
	g.endTurn(action)
	return action.String(), nil
}

// BotMove lets the named policy play for the side to move.
func (gm *GameManager) BotMove(gameID string, bot string, depth int) (string, error) {
	var g, err = gm.getGame(gameID)
	if err != nil {
		return "", err
	}
	var options = gm.options
	if depth != 0 {
		if depth < 0 || depth > MaxDepth {
			return "", ErrBadDepth
		}
		options.Depth = depth
	}
	build, err := policybuilder.Get(bot, options)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnknownBot, err)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	var side = g.position.Turn()
	action, err := build(g.position, side, g.rnd).Play(side)
	if err != nil {
		return "", err
	}
	g.endTurn(action)
	return action.String(), nil
}

// Analyze searches the game for the side to move without changing it.
func (gm *GameManager) Analyze(gameID string, depth int) (Analysis, error) {
	if depth < 0 || depth > MaxDepth {
		return Analysis{}, ErrBadDepth
	}
	var g, err = gm.getGame(gameID)
	if err != nil {
		return Analysis{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	var p = g.position
	var eng = engine.NewEngine(p, p.Turn(), gm.evaluator, gm.options, g.rnd)
	var si = eng.Analyze(depth)
	return Analysis{
		Score: si.Score,
		Best:  si.BestAction.String(),
		PV:    actionStrings(si.MainLine),
		Nodes: si.Nodes,
		Depth: si.Depth,
	}, nil
}

func (g *game) endTurn(action common.Action) {
	g.history = append(g.history, action)
	g.position.EndTurn()
}
