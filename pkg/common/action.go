package common

import (
	"fmt"
	"strings"
)

type ActionType int

const (
	ActionNone ActionType = iota
	ActionMove
	ActionPromote
	ActionDrop
	ActionSuccession
)

// Action is an immutable value: a move, a promotion, a drop from the pocket
// or a succession. Drops keep their square in To, successions in From.
type Action struct {
	actionType ActionType
	from       Square
	to         Square
	kind       PieceKind
}

var ActionEmpty = Action{actionType: ActionNone, from: SquareNone, to: SquareNone, kind: KindNone}

func NewMove(from, to Square) Action {
	return Action{actionType: ActionMove, from: from, to: to, kind: KindNone}
}

func NewPromote(from, to Square, kind PieceKind) Action {
	return Action{actionType: ActionPromote, from: from, to: to, kind: kind}
}

func NewDrop(kind PieceKind, sq Square) Action {
	return Action{actionType: ActionDrop, from: SquareNone, to: sq, kind: kind}
}

func NewSuccession(sq Square) Action {
	return Action{actionType: ActionSuccession, from: sq, to: SquareNone, kind: KindNone}
}

func (a Action) Type() ActionType { return a.actionType }
func (a Action) From() Square     { return a.from }
func (a Action) To() Square       { return a.to }
func (a Action) Kind() PieceKind  { return a.kind }

func (a Action) IsEmpty() bool {
	return a.actionType == ActionNone
}

// Square is the single square a drop or succession refers to.
func (a Action) Square() Square {
	switch a.actionType {
	case ActionDrop:
		return a.to
	case ActionSuccession:
		return a.from
	}
	return SquareNone
}

// WithPromotion turns a move into the promotion to kind.
func (a Action) WithPromotion(kind PieceKind) Action {
	return NewPromote(a.from, a.to, kind)
}

func (a Action) String() string {
	switch a.actionType {
	case ActionMove:
		return a.from.String() + "->" + a.to.String()
	case ActionPromote:
		return a.from.String() + "->" + a.to.String() + "=" + a.kind.String()
	case ActionDrop:
		return "ADD " + a.kind.String() + "@" + a.to.String()
	case ActionSuccession:
		return "SUC@" + a.from.String()
	}
	return "-"
}

// ParseAction reads the notation produced by Action.String.
func ParseAction(s string) (Action, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "ADD "):
		var body = strings.TrimPrefix(s, "ADD ")
		var at = strings.IndexByte(body, '@')
		if at < 0 {
			return ActionEmpty, fmt.Errorf("bad drop %q", s)
		}
		var kind, err = ParsePieceKind(body[:at])
		if err != nil {
			return ActionEmpty, err
		}
		sq, err := ParseSquare(body[at+1:])
		if err != nil {
			return ActionEmpty, err
		}
		return NewDrop(kind, sq), nil
	case strings.HasPrefix(s, "SUC@"):
		var sq, err = ParseSquare(strings.TrimPrefix(s, "SUC@"))
		if err != nil {
			return ActionEmpty, err
		}
		return NewSuccession(sq), nil
	}
	var arrow = strings.Index(s, "->")
	if arrow < 0 {
		return ActionEmpty, fmt.Errorf("bad action %q", s)
	}
	var from, err = ParseSquare(s[:arrow])
	if err != nil {
		return ActionEmpty, err
	}
	var rest = s[arrow+2:]
	var promotion = KindNone
	if eq := strings.IndexByte(rest, '='); eq >= 0 {
		promotion, err = ParsePieceKind(rest[eq+1:])
		if err != nil {
			return ActionEmpty, err
		}
		rest = rest[:eq]
	}
	to, err := ParseSquare(rest)
	if err != nil {
		return ActionEmpty, err
	}
	if promotion != KindNone {
		return NewPromote(from, to, promotion), nil
	}
	return NewMove(from, to), nil
}
