package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/ChizhovVadim/chesstack/internal/policybuilder"
	"github.com/ChizhovVadim/chesstack/pkg/board"
	"github.com/ChizhovVadim/chesstack/pkg/common"
	"github.com/ChizhovVadim/chesstack/pkg/engine"
	"github.com/ChizhovVadim/chesstack/pkg/eval/material"
)

const maxDepth = 8

// Protocol is a line oriented console for one game against the bots.
type Protocol struct {
	name          string
	version       string
	engineOptions engine.Options
	options       []Option
	policy        string
	position      *board.Position
	history       []common.Snapshot
	evaluator     *material.EvaluationService
	rnd           *rand.Rand
	out           io.Writer
}

func New(name, version string, engineOptions engine.Options, rnd *rand.Rand, out io.Writer) *Protocol {
	var protocol = &Protocol{
		name:          name,
		version:       version,
		engineOptions: engineOptions,
		policy:        "negamax",
		position:      board.NewPosition(),
		evaluator:     material.NewEvaluationService(),
		rnd:           rnd,
		out:           out,
	}
	var o = &protocol.engineOptions
	protocol.options = []Option{
		&IntOption{Name: "Depth", Min: 0, Max: maxDepth, Value: &o.Depth},
		&IntOption{Name: "QuietLimit", Min: 0, Max: 1 << 10, Value: &o.QuietLimit},
		&IntOption{Name: "DropLimit", Min: 0, Max: 1 << 10, Value: &o.DropLimit},
		&IntOption{Name: "SuccessionLimit", Min: 0, Max: common.SquareCount, Value: &o.SuccessionLimit},
		&FloatOption{Name: "Jitter", Min: 0, Max: 1000, Value: &o.Jitter},
		&BoolOption{Name: "FullSearch", Value: &o.FullSearch},
	}
	return protocol
}

func (protocol *Protocol) Handle(ctx context.Context, commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	var h func(fields []string) error

	switch commandName {
	case "help", "options":
		h = protocol.helpCommand
	case "new":
		h = protocol.newCommand
	case "show", "d":
		h = protocol.showCommand
	case "legal":
		h = protocol.legalCommand
	case "play":
		h = protocol.playCommand
	case "undo":
		h = protocol.undoCommand
	case "go":
		h = protocol.goCommand
	case "analyze":
		h = protocol.analyzeCommand
	case "eval":
		h = protocol.evalCommand
	case "bot":
		h = protocol.botCommand
	case "setoption":
		h = protocol.setOptionCommand
	}

	if h == nil {
		return errors.New("command not found")
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return h(fields)
}

func (protocol *Protocol) helpCommand(fields []string) error {
	fmt.Fprintf(protocol.out, "id name %s %s\n", protocol.name, protocol.version)
	fmt.Fprintf(protocol.out, "bots %s\n", strings.Join(policybuilder.Names, " "))
	for _, option := range protocol.options {
		fmt.Fprintln(protocol.out, option.String())
	}
	fmt.Fprintln(protocol.out, "ok")
	return nil
}

func (protocol *Protocol) newCommand(fields []string) error {
	protocol.position = board.NewPosition()
	protocol.history = nil
	return nil
}

func (protocol *Protocol) showCommand(fields []string) error {
	fmt.Fprint(protocol.out, protocol.position.String())
	return nil
}

func (protocol *Protocol) legalCommand(fields []string) error {
	var p = protocol.position
	var actions = engine.AllLegalActions(p, p.Turn())
	for _, a := range actions {
		fmt.Fprintln(protocol.out, a)
	}
	fmt.Fprintf(protocol.out, "total %v\n", len(actions))
	return nil
}

func (protocol *Protocol) playCommand(fields []string) error {
	var action, err = common.ParseAction(strings.Join(fields, " "))
	if err != nil {
		return err
	}
	var snapshot = protocol.position.Snapshot()
	action, err = engine.ApplyAction(protocol.position, action)
	if err != nil {
		return fmt.Errorf("play %v: %w", strings.Join(fields, " "), err)
	}
	protocol.endTurn(snapshot)
	fmt.Fprintf(protocol.out, "played %v\n", action)
	return nil
}

func (protocol *Protocol) undoCommand(fields []string) error {
	if len(protocol.history) == 0 {
		return errors.New("nothing to undo")
	}
	var last = len(protocol.history) - 1
	protocol.position.Restore(protocol.history[last])
	protocol.history = protocol.history[:last]
	return nil
}

func (protocol *Protocol) goCommand(fields []string) error {
	var build, err = policybuilder.Get(protocol.policy, protocol.engineOptions)
	if err != nil {
		return err
	}
	var p = protocol.position
	var side = p.Turn()
	var snapshot = p.Snapshot()
	action, err := build(p, side, protocol.rnd).Play(side)
	if err != nil {
		return fmt.Errorf("go %v: %w", side, err)
	}
	protocol.endTurn(snapshot)
	fmt.Fprintf(protocol.out, "bestmove %v\n", action)
	return nil
}

func (protocol *Protocol) analyzeCommand(fields []string) error {
	var depth = protocol.engineOptions.Depth
	if len(fields) != 0 {
		var err error
		depth, err = strconv.Atoi(fields[0])
		if err != nil {
			return err
		}
		if depth < 0 || depth > maxDepth {
			return errors.New("argument out of range")
		}
	}
	var p = protocol.position
	var eng = engine.NewEngine(p, p.Turn(), protocol.evaluator, protocol.engineOptions, protocol.rnd)
	var si = eng.Analyze(depth)
	fmt.Fprintln(protocol.out, searchInfoString(si))
	fmt.Fprintf(protocol.out, "bestmove %v\n", si.BestAction)
	return nil
}

func (protocol *Protocol) evalCommand(fields []string) error {
	var p = protocol.position
	fmt.Fprintf(protocol.out, "eval %.1f\n", protocol.evaluator.Evaluate(p, p.Turn()))
	return nil
}

func (protocol *Protocol) botCommand(fields []string) error {
	if len(fields) != 1 {
		return errors.New("invalid bot arguments")
	}
	if _, err := policybuilder.Get(fields[0], protocol.engineOptions); err != nil {
		return err
	}
	protocol.policy = fields[0]
	return nil
}

func (protocol *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[1], fields[3]
	for _, option := range protocol.options {
		if strings.EqualFold(option.OptionName(), name) {
			return option.Set(value)
		}
	}
	return errors.New("unhandled option")
}

func (protocol *Protocol) endTurn(snapshot common.Snapshot) {
	protocol.history = append(protocol.history, snapshot)
	protocol.position.EndTurn()
}

func searchInfoString(si common.SearchInfo) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth %v score %.1f", si.Depth, si.Score)
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes %v time %v nps %v", si.Nodes, timeMs, nps)
	if len(si.MainLine) != 0 {
		fmt.Fprintf(sb, " pv")
		for i, action := range si.MainLine {
			if i == 0 {
				sb.WriteString(" ")
			} else {
				sb.WriteString(", ")
			}
			sb.WriteString(action.String())
		}
	}
	return sb.String()
}
