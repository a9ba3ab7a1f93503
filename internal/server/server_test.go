package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ChizhovVadim/chesstack/pkg/engine"
	"github.com/gofiber/fiber/v2"
)

func newTestApp() *fiber.App {
	var logger = log.New(io.Discard, "", 0)
	var config = Config{AllowOrigins: "*", Depth: 1}
	return NewApp(logger, config, NewGameManager(engine.NewOptions(), 1))
}

func doRequest(t *testing.T, app *fiber.App, method, url, body string, result interface{}) int {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	var req = httptest.NewRequest(method, url, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	var resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			t.Fatal(method, url, err)
		}
	}
	return resp.StatusCode
}

func createGame(t *testing.T, app *fiber.App) string {
	var created struct {
		GameID string `json:"game_id"`
	}
	if status := doRequest(t, app, http.MethodPost, "/api/game", "", &created); status != http.StatusCreated {
		t.Fatal(status)
	}
	if created.GameID == "" {
		t.Fatal("empty game id")
	}
	return created.GameID
}

func TestGameFlow(t *testing.T) {
	var app = newTestApp()
	var id = createGame(t, app)
	var base = "/api/game/" + id

	var legal struct {
		Actions []string `json:"actions"`
	}
	if status := doRequest(t, app, http.MethodGet, base+"/actions", "", &legal); status != http.StatusOK {
		t.Fatal(status)
	}
	if len(legal.Actions) != 376 {
		t.Error(len(legal.Actions))
	}

	var played struct {
		Action string `json:"action"`
	}
	if status := doRequest(t, app, http.MethodPost, base+"/action", `{"action":"ADD Q@d4"}`, &played); status != http.StatusOK {
		t.Fatal(status)
	}
	if played.Action != "ADD Q@d4" {
		t.Error(played.Action)
	}
	if status := doRequest(t, app, http.MethodPost, base+"/bot", `{"bot":"weighted"}`, &played); status != http.StatusOK {
		t.Fatal(status)
	}

	var state GameState
	if status := doRequest(t, app, http.MethodGet, base, "", &state); status != http.StatusOK {
		t.Fatal(status)
	}
	if state.Turn != "white" || len(state.History) != 2 || len(state.Pieces) != 2 {
		t.Error(state)
	}
	if state.Pockets["white"]["Q"] != 0 || state.Pockets["white"]["P"] != 8 {
		t.Error(state.Pockets)
	}

	var analysis Analysis
	if status := doRequest(t, app, http.MethodGet, base+"/analysis?depth=1", "", &analysis); status != http.StatusOK {
		t.Fatal(status)
	}
	if analysis.Best == "" || len(analysis.PV) == 0 || analysis.PV[0] != analysis.Best || analysis.Nodes == 0 {
		t.Error(analysis)
	}
}

func TestErrors(t *testing.T) {
	var app = newTestApp()
	var id = createGame(t, app)
	var base = "/api/game/" + id
	var tests = []struct {
		method string
		url    string
		body   string
		status int
	}{
		{http.MethodGet, "/api/game/unknown", "", http.StatusNotFound},
		{http.MethodGet, "/api/game/unknown/actions", "", http.StatusNotFound},
		{http.MethodPost, base + "/action", `{"action":"e2->e4"}`, http.StatusUnprocessableEntity},
		{http.MethodPost, base + "/action", `{"action":"nonsense"}`, http.StatusUnprocessableEntity},
		{http.MethodPost, base + "/action", `not json`, http.StatusBadRequest},
		{http.MethodPost, base + "/bot", `{"bot":"random"}`, http.StatusBadRequest},
		{http.MethodPost, base + "/bot", `{"bot":"search","depth":99}`, http.StatusBadRequest},
		{http.MethodGet, base + "/analysis?depth=99", "", http.StatusBadRequest},
	}
	for _, test := range tests {
		var body map[string]interface{}
		if status := doRequest(t, app, test.method, test.url, test.body, &body); status != test.status {
			t.Error(test.method, test.url, status, body)
		}
		if body["error"] == nil {
			t.Error(test.url, "no error message")
		}
	}
}

func TestConfigValidate(t *testing.T) {
	for _, depth := range []int{0, 1, MaxDepth} {
		if err := (Config{Depth: depth}).Validate(); err != nil {
			t.Error(depth, err)
		}
	}
	for _, depth := range []int{-1, MaxDepth + 1} {
		if err := (Config{Depth: depth}).Validate(); !errors.Is(err, ErrBadDepth) {
			t.Error(depth, err)
		}
	}
}

func TestBotSearchDepthZero(t *testing.T) {
	var options = engine.NewOptions()
	options.Depth = 0
	var app = NewApp(log.New(io.Discard, "", 0), Config{Depth: 0}, NewGameManager(options, 1))
	var id = createGame(t, app)
	var played struct {
		Action string `json:"action"`
	}
	var status = doRequest(t, app, http.MethodPost, "/api/game/"+id+"/bot", `{"bot":"search","depth":0}`, &played)
	if status != http.StatusOK || played.Action == "" {
		t.Error(status, played)
	}
}
