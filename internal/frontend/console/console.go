// Package console is the line-oriented terminal front end for the crawl engine.
// It turns typed commands into engine calls and renders the results with ANSI color.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/game/combat"
	"github.com/cory-johannsen/crawl/internal/game/command"
	"github.com/cory-johannsen/crawl/internal/game/dungeon"
	"github.com/cory-johannsen/crawl/internal/gameserver"
)

// errStopped is returned internally when Stop interrupts a prompt.
var errStopped = errors.New("console stopped")

// Options preselects the run. Empty fields are asked for interactively.
type Options struct {
	HeroID    string
	DungeonID string
}

// Session plays one dungeon run over a reader and writer.
// It implements server.Service.
type Session struct {
	engine   *gameserver.Engine
	commands *command.Registry
	out      io.Writer
	logger   *zap.Logger
	opts     Options

	lines <-chan string
	quit  chan struct{}
	once  sync.Once

	run *dungeon.Run
}

// New creates a Session reading commands from in and writing to out.
//
// Precondition: engine, in and out must be non-nil. A nil logger is replaced by a no-op logger.
func New(engine *gameserver.Engine, in io.Reader, out io.Writer, logger *zap.Logger, opts Options) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		engine:   engine,
		commands: command.DefaultRegistry(),
		out:      out,
		logger:   logger,
		opts:     opts,
		quit:     make(chan struct{}),
	}
	s.lines = scanLines(in, s.quit)
	return s
}

// scanLines feeds lines from in until it is exhausted or quit closes. After
// quit the reader goroutine exits once its pending Read returns.
func scanLines(in io.Reader, quit <-chan struct{}) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case <-quit:
				return
			default:
			}
			select {
			case ch <- sc.Text():
			case <-quit:
				return
			}
		}
	}()
	return ch
}

// Run returns the session's dungeon run, or nil before one was started.
func (s *Session) Run() *dungeon.Run { return s.run }

// Stop interrupts the session at its next prompt.
func (s *Session) Stop() {
	s.once.Do(func() { close(s.quit) })
}

// Start plays the run until it ends or the player leaves. Closed input and
// Stop both count as leaving.
//
// Postcondition: Returns nil on every normal ending; a non-nil error only when
// the run could not be started. The session is stopped on return.
func (s *Session) Start() error {
	defer s.Stop()
	if err := s.begin(); err != nil {
		if errors.Is(err, errStopped) || errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	for !s.run.Terminal() {
		line, err := s.prompt(s.promptText())
		if err != nil {
			s.logger.Info("session ended", zap.String("run_id", s.run.ID), zap.String("reason", err.Error()))
			return nil
		}
		if !s.handle(line) {
			s.printf("%s\n", Colorize(Dim, "You abandon the run."))
			s.logger.Info("run abandoned", zap.String("run_id", s.run.ID), zap.Int("room", s.run.Room))
			return nil
		}
	}
	s.printf("%s", RenderStatus(s.run, s.engine.Content().Rules.Levels()))
	return nil
}

func (s *Session) begin() error {
	rules := s.engine.Content().Rules
	heroID := s.opts.HeroID
	if heroID == "" {
		var options []choice
		for _, a := range rules.Archetypes() {
			options = append(options, choice{id: a.ID, label: fmt.Sprintf("%-10s %s", a.Name, a.Description)})
		}
		id, err := s.choose("Choose your hero", options)
		if err != nil {
			return err
		}
		heroID = id
	}
	dungeonID := s.opts.DungeonID
	if dungeonID == "" {
		var options []choice
		for _, d := range rules.Dungeons() {
			options = append(options, choice{id: d.ID, label: fmt.Sprintf("%-24s %2d rooms, %s", d.Name, d.Rooms, d.Difficulty)})
		}
		id, err := s.choose("Choose a dungeon", options)
		if err != nil {
			return err
		}
		dungeonID = id
	}

	run, err := s.engine.StartRun(heroID, dungeonID)
	if err != nil {
		return fmt.Errorf("starting run: %w", err)
	}
	s.run = run
	out, err := s.engine.EnterRoom(run)
	if err != nil {
		return fmt.Errorf("entering first room: %w", err)
	}
	s.printf("%s", RenderRoom(run, out))
	return nil
}

type choice struct {
	id    string
	label string
}

// choose asks until the player picks one option by number or id.
func (s *Session) choose(title string, options []choice) (string, error) {
	s.printf("%s\n", Colorize(BrightYellow, title))
	for i, o := range options {
		s.printf("  %s%d%s) %s\n", BrightCyan, i+1, Reset, o.label)
	}
	for {
		line, err := s.prompt("> ")
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
			return options[n-1].id, nil
		}
		for _, o := range options {
			if strings.EqualFold(o.id, line) {
				return o.id, nil
			}
		}
		s.printf("%s\n", Colorf(Red, "Pick 1-%d.", len(options)))
	}
}

func (s *Session) prompt(text string) (string, error) {
	s.printf("%s", text)
	select {
	case <-s.quit:
		return "", errStopped
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}

func (s *Session) promptText() string {
	c := s.run.Hero.Combatant
	tag := "explore"
	if s.run.Status == dungeon.StatusInCombat {
		tag = "combat"
	}
	return fmt.Sprintf("%s[%d/%d HP %d MP %s]%s > ", Dim, c.CurrentHP, c.MaxHP, c.CurrentMP, tag, Reset)
}

// handle executes one command line and reports whether the session continues.
func (s *Session) handle(line string) bool {
	in := command.Parse(line)
	if in.Verb == "" {
		return true
	}
	cmd, ok := s.commands.Resolve(in.Verb)
	if !ok {
		s.printf("%s\n", Colorf(Red, "Unknown command %q. Type help.", in.Verb))
		return true
	}
	if err := cmd.Check(in); err != nil {
		s.printf("%s\n", Colorize(Yellow, err.Error()))
		return true
	}
	s.logger.Debug("command",
		zap.String("run_id", s.run.ID),
		zap.String("command", cmd.Name),
		zap.String("target", in.Target()),
	)

	switch cmd.Handler {
	case command.HandlerAttack:
		s.act(combat.Attack())
	case command.HandlerDefend:
		s.act(combat.Defend())
	case command.HandlerSkill:
		s.act(combat.Skill(in.Target()))
	case command.HandlerItem:
		s.act(combat.Item(in.Target()))
	case command.HandlerNext:
		out, err := s.engine.AdvanceRoom(s.run)
		if err != nil {
			s.printf("%s", RenderError(err))
			return true
		}
		s.printf("%s", RenderRoom(s.run, out))
	case command.HandlerUse:
		healed, err := s.engine.UseItem(s.run, in.Target())
		if err != nil {
			s.printf("%s", RenderError(err))
			return true
		}
		s.printf("%s\n", Colorf(Green, "You recover %d HP.", healed))
	case command.HandlerStatus:
		s.printf("%s", RenderStatus(s.run, s.engine.Content().Rules.Levels()))
		if s.run.Monster != nil {
			s.printf("%s", renderGauge(s.run.Monster))
		}
	case command.HandlerSkills:
		s.printf("%s", RenderSkills(s.engine.Skills(s.run)))
	case command.HandlerInventory:
		s.printf("%s", RenderInventory(s.run.Hero))
	case command.HandlerShop:
		s.printf("%s", RenderShop(s.engine.Shop(), s.run.Hero.Purse.Gold()))
	case command.HandlerBuy:
		item, err := s.engine.Buy(s.run, in.Target())
		if err != nil {
			s.printf("%s", RenderError(err))
			return true
		}
		s.printf("%s\n", Colorf(Green, "You buy %s.", item.Name))
	case command.HandlerHelp:
		s.printf("%s", RenderHelp(s.commands))
	case command.HandlerQuit:
		return false
	}
	return true
}

func (s *Session) act(action combat.Action) {
	res, err := s.engine.PerformAction(s.run, action)
	if err != nil {
		s.printf("%s", RenderError(err))
		return
	}
	s.printf("%s", RenderTurn(s.run, res))
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
