package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mendeleevdice/mendeleev-go/internal/game"
	"github.com/mendeleevdice/mendeleev-go/internal/game/board"
	"github.com/mendeleevdice/mendeleev-go/internal/game/dice"
	"github.com/mendeleevdice/mendeleev-go/internal/game/skills"
)

const helpText = `commands:
  toggle <die>          select or deselect a die (0-based)
  op <operation>        NONE SINGLE ADD SUBTRACT MULTIPLY DIVIDE CONCAT
  occupy <element>      place a cube with the selected dice
  slide <from> <to>     move a cube after occupying (slide skill)
  end                   pass the production turn
  sell-phase            start the selling phase
  sell <card id>        sell a market card
  skip                  pass the selling turn
  die <type> [player]   claim a die reward (d4..d20)
  skill <id> [player]   claim a skill reward (math concat slide outsource)
  view | history | help | quit`

var errUsage = errors.New("usage")

// repl drives one game from line-oriented input.
type repl struct {
	engine *game.Engine
	gameID string
	in     io.Reader
	out    io.Writer
}

func (r *repl) run() error {
	view, err := r.engine.GetGameView(r.gameID)
	if err != nil {
		return err
	}
	renderView(r.out, view)
	fmt.Fprint(r.out, "> ")

	scanner := bufio.NewScanner(r.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(r.out, helpText)
		case "view":
			if view, err = r.engine.GetGameView(r.gameID); err != nil {
				return err
			}
			renderView(r.out, view)
		case "history":
			if err := r.history(); err != nil {
				return err
			}
		default:
			if err := r.apply(line, view.CurrentPlayer); err != nil {
				fmt.Fprintf(r.out, "error: %v\n", err)
			}
			if view, err = r.engine.GetGameView(r.gameID); err != nil {
				return err
			}
			if view.Result != nil {
				renderView(r.out, view)
				return nil
			}
		}
		fmt.Fprint(r.out, "> ")
	}
	return scanner.Err()
}

func (r *repl) apply(line string, current int) error {
	action, err := parseCommand(line, current)
	if err != nil {
		return err
	}
	outcome, err := r.engine.ProcessAction(r.gameID, action)
	if err != nil {
		return err
	}
	renderOutcome(r.out, outcome)
	return nil
}

func (r *repl) history() error {
	rp, err := r.engine.Replay(r.gameID)
	if err != nil {
		return err
	}
	for i := 0; i < rp.Size(); i++ {
		snap := rp.GetStateAt(i)
		if snap == nil {
			continue
		}
		label := "start"
		if snap.Action != nil {
			label = snap.Action.String()
		}
		fmt.Fprintf(r.out, "%3d  %-40s %s\n", snap.Index, label, shortSum(snap.Checksum))
	}
	return nil
}

// parseCommand turns a command line into an action for the current player.
func parseCommand(line string, current int) (game.Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return game.Action{}, errUsage
	}
	args := fields[1:]
	action := game.Action{Player: current}

	switch strings.ToLower(fields[0]) {
	case "toggle":
		n, err := intArg(args, 0)
		if err != nil {
			return game.Action{}, err
		}
		action.Type, action.Die = game.ActionToggleDie, n
	case "op":
		if len(args) != 1 {
			return game.Action{}, fmt.Errorf("%w: op <operation>", errUsage)
		}
		op, err := dice.ParseOperation(args[0])
		if err != nil {
			return game.Action{}, err
		}
		action.Type, action.Operation = game.ActionChangeOperation, op
	case "occupy":
		n, err := intArg(args, 0)
		if err != nil {
			return game.Action{}, err
		}
		action.Type, action.Element = game.ActionOccupyElement, n
	case "slide":
		from, err := intArg(args, 0)
		if err != nil {
			return game.Action{}, err
		}
		to, err := intArg(args, 1)
		if err != nil {
			return game.Action{}, err
		}
		action.Type, action.From, action.To = game.ActionSlideCube, from, to
	case "end":
		action.Type = game.ActionEndProductionTurn
	case "sell-phase":
		action.Type = game.ActionStartSelling
	case "sell":
		if len(args) != 1 {
			return game.Action{}, fmt.Errorf("%w: sell <card id>", errUsage)
		}
		action.Type, action.CardID = game.ActionSellCard, args[0]
	case "skip":
		action.Type = game.ActionSkipSellingTurn
	case "die":
		if len(args) < 1 {
			return game.Action{}, fmt.Errorf("%w: die <type> [player]", errUsage)
		}
		t, err := dice.ParseType(args[0])
		if err != nil {
			return game.Action{}, err
		}
		action.Type, action.DieType = game.ActionAcquireDie, t
		if action.Player, err = playerArg(args, 1, current); err != nil {
			return game.Action{}, err
		}
	case "skill":
		if len(args) < 1 {
			return game.Action{}, fmt.Errorf("%w: skill <id> [player]", errUsage)
		}
		s, ok := skills.Parse(args[0])
		if !ok {
			return game.Action{}, fmt.Errorf("unknown skill %q", args[0])
		}
		action.Type, action.Skill = game.ActionAcquireSkill, s
		var err error
		if action.Player, err = playerArg(args, 1, current); err != nil {
			return game.Action{}, err
		}
	default:
		return game.Action{}, fmt.Errorf("unknown command %q (try help)", fields[0])
	}
	return action, nil
}

func shortSum(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}

func intArg(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%w: missing argument %d", errUsage, i+1)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("argument %d: %w", i+1, err)
	}
	return n, nil
}

func playerArg(args []string, i, current int) (int, error) {
	if i >= len(args) {
		return current, nil
	}
	return intArg(args, i)
}

func elementLabel(n int) string {
	if el, ok := board.Lookup(n); ok {
		return fmt.Sprintf("%d%s", n, el.Symbol)
	}
	return strconv.Itoa(n)
}

func elementList(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = elementLabel(n)
	}
	return strings.Join(parts, " ")
}

func renderCard(w io.Writer, prefix string, c game.CardView) {
	fmt.Fprintf(w, "  %s %-24s %2dpt  needs %-16s %s\n", prefix, c.Name, c.Points, elementList(c.RequiredElements), c.ID)
}

func renderRow(w io.Writer, name string, row game.RowView) {
	fmt.Fprintf(w, "%s (deck %d)\n", name, row.DeckSize)
	if row.Top != nil {
		renderCard(w, "top", *row.Top)
	}
	for _, c := range row.Open {
		renderCard(w, "   ", c)
	}
}

func renderView(w io.Writer, v *game.View) {
	fmt.Fprintf(w, "\n== round %d  %s  player %d ==\n", v.Round, v.Phase, v.CurrentPlayer)
	for _, p := range v.Players {
		marker := " "
		if p.ID == v.CurrentPlayer {
			marker = "*"
		}
		fmt.Fprintf(w, "%s P%d score %d cubes %d skills %v elements [%s]\n",
			marker, p.ID, p.Score, p.Cubes, p.Skills, elementList(p.Elements))
		var faces []string
		for i, d := range p.Dice {
			flag := ""
			if d.Selected {
				flag = "*"
			}
			if d.Locked {
				flag = "#"
			}
			faces = append(faces, fmt.Sprintf("%d:%s=%d%s", i, d.Type, d.Value, flag))
		}
		fmt.Fprintf(w, "    dice %s", strings.Join(faces, " "))
		if len(p.PendingRewards) > 0 {
			fmt.Fprintf(w, "  rewards %v", p.PendingRewards)
		}
		fmt.Fprintln(w)
	}
	if len(v.Selection) > 0 {
		fmt.Fprintf(w, "selection %v %s = %s\n", v.Selection, v.Operation, elementLabel(v.CalculatedValue))
	}
	renderRow(w, "basic", v.Market.Basic)
	renderRow(w, "advanced", v.Market.Advanced)

	if v.Result != nil {
		fmt.Fprintln(w, "\n== final standings ==")
		for _, s := range v.Result.Standings {
			fmt.Fprintf(w, "#%d P%d %d (+%d categories) advanced %d dice %d\n",
				s.Rank, s.Player, s.FinalScore, s.CategoryBonus, s.AdvancedCards, s.DiceCount)
		}
		fmt.Fprintf(w, "winners %v\n", v.Result.Winners)
	}
}

func renderOutcome(w io.Writer, o *game.Outcome) {
	for _, evt := range o.Events {
		fmt.Fprintf(w, "  %s", evt.Type)
		if evt.Player >= 0 {
			fmt.Fprintf(w, " p%d", evt.Player)
		}
		if evt.Amount != 0 {
			fmt.Fprintf(w, " %d", evt.Amount)
		}
		if len(evt.Values) > 0 {
			fmt.Fprintf(w, " %v", evt.Values)
		}
		if evt.Data != "" {
			fmt.Fprintf(w, " %s", evt.Data)
		}
		fmt.Fprintln(w)
	}
}
