package server

import (
	"github.com/ChizhovVadim/chesstack/pkg/common"
)

type PieceState struct {
	Square    string `json:"square"`
	Kind      string `json:"kind"`
	Color     string `json:"color"`
	Stun      int    `json:"stun"`
	MoveStack int    `json:"move_stack"`
	Royal     bool   `json:"royal"`
}

type GameState struct {
	GameID  string                    `json:"game_id"`
	Turn    string                    `json:"turn"`
	Pieces  []PieceState              `json:"pieces"`
	Pockets map[string]map[string]int `json:"pockets"`
	History []string                  `json:"history"`
	// Eval is the static evaluation from White's point of view.
	Eval float64 `json:"eval"`
}

type Analysis struct {
	Score float64  `json:"score"`
	Best  string   `json:"best"`
	PV    []string `json:"pv"`
	Nodes int64    `json:"nodes"`
	Depth int      `json:"depth"`
}

type ActionRequest struct {
	Action string `json:"action"`
}

type BotRequest struct {
	Bot   string `json:"bot"`
	Depth int    `json:"depth"`
}

func actionStrings(actions []common.Action) []string {
	var result = make([]string, len(actions))
	for i, a := range actions {
		result[i] = a.String()
	}
	return result
}

func piecesState(p common.Position) []PieceState {
	var result = []PieceState{}
	for _, info := range p.Pieces() {
		result = append(result, PieceState{
			Square:    info.Square.String(),
			Kind:      info.Kind.String(),
			Color:     info.Color.String(),
			Stun:      info.Stun,
			MoveStack: info.MoveStack,
			Royal:     info.IsRoyal,
		})
	}
	return result
}

func pocketsState(p common.Position) map[string]map[string]int {
	var result = make(map[string]map[string]int)
	for _, c := range []common.Color{common.White, common.Black} {
		var pocket = make(map[string]int)
		for kind, n := range p.Pocket(c) {
			if n > 0 {
				pocket[common.PieceKind(kind).String()] = n
			}
		}
		result[c.String()] = pocket
	}
	return result
}
