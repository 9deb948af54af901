package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rogue/internal/entity"
	"github.com/samdwyer/rogue/internal/game"
	"github.com/samdwyer/rogue/internal/gamedata"
	"github.com/samdwyer/rogue/internal/level"
	"github.com/samdwyer/rogue/internal/logger"
	"github.com/samdwyer/rogue/internal/storage"
	"github.com/samdwyer/rogue/internal/telemetry"
)

const title = ` ____
|  _ \ ___   __ _ _   _  ___
| |_) / _ \ / _` + "`" + ` | | | |/ _ \
|  _ < (_) | (_| | |_| |  __/
|_| \_\___/ \__, |\__,_|\___|
            |___/`

const prompt = "> "

// Options configures a console session.
type Options struct {
	Levels   *level.Finder
	Store    storage.PlayerStore
	Defaults gamedata.DefaultsFile
	// Driver plays started worlds. Nil plays them on the console itself.
	Driver Driver
}

// Console is the line-based main menu: create a player and a monster,
// start worlds, save and load progress.
type Console struct {
	in   *bufio.Scanner
	out  io.Writer
	opts Options
	log  *logrus.Entry

	player  *entity.Unit
	monster *entity.Unit
}

// NewConsole creates a menu reading commands from in and writing to out.
func NewConsole(in io.Reader, out io.Writer, opts Options) *Console {
	return &Console{
		in:   bufio.NewScanner(in),
		out:  out,
		opts: opts,
		log:  logger.Component("engine"),
	}
}

// Player returns the current player, or nil before one is created.
func (c *Console) Player() *entity.Unit { return c.player }

// Monster returns the default monster, or nil before one is defined.
func (c *Console) Monster() *entity.Unit { return c.monster }

// Run shows the menu and handles commands until "exit" or end of input.
func (c *Console) Run(ctx context.Context) error {
	c.showMainMenu()

	for {
		c.print(prompt)
		line, ok := c.readLine()
		if !ok {
			break
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			c.unknownCommand()
			continue
		}

		switch args[0] {
		case "help":
			c.showHelp()
		case "commands":
			c.showCommands()
		case "player":
			c.optionPlayer()
		case "monster":
			c.createMonster()
		case "start":
			if err := c.optionStart(ctx, args); err != nil {
				return err
			}
		case "save":
			c.save(ctx)
		case "load":
			c.load(ctx)
		case "exit":
			c.println("Thank you for playing Rogue!")
			return c.in.Err()
		default:
			c.unknownCommand()
		}
	}

	c.println("Thank you for playing Rogue!")
	return c.in.Err()
}

func (c *Console) optionPlayer() {
	if c.player == nil {
		c.createPlayer()
		return
	}
	c.println(fmt.Sprintf("%s (Lv. %d)", c.player.Name, c.player.Level))
	c.println(fmt.Sprintf("Damage: %d", c.player.AttackDamage()))
	c.println(fmt.Sprintf("Health: %d/%d", c.player.Health, c.player.MaxHealth()))
	c.println("")
	c.pressEnterToReturn()
}

func (c *Console) createPlayer() {
	c.println("What is your character's name?")
	name, _ := c.readLine()

	p, err := entity.NewPlayer(strings.TrimSpace(name), 1)
	if err != nil {
		c.println("Error. Player must have a valid name. Please type 'player' to start again.")
		c.println("")
		return
	}
	c.player = p

	c.println(fmt.Sprintf("Player '%s' created.", p.Name))
	c.println("")
	c.pressEnterToReturn()
}

func (c *Console) createMonster() {
	c.print("Monster name: ")
	name, _ := c.readLine()
	name = strings.TrimSpace(name)
	if name == "" {
		c.println("Error. Monster must have a valid name. Please type 'monster' to start again.")
		c.println("")
		return
	}

	c.print("Monster health: ")
	health, ok := c.readInt()
	if !ok {
		c.println("Error. Monster Health needs to be an integer. Please type 'monster' to start again.")
		c.println("")
		return
	}

	c.print("Monster damage: ")
	attack, ok := c.readInt()
	if !ok {
		c.println("Error. Attack Damage needs to be an integer. Please type 'monster' to start again.")
		c.println("")
		return
	}

	m, err := entity.NewMonster(name, health, attack)
	if err != nil {
		c.println(fmt.Sprintf("Error. %v. Please type 'monster' to start again.", err))
		c.println("")
		return
	}
	c.monster = m

	c.println(fmt.Sprintf("Monster '%s' created.", m.Name))
	c.println("")
	c.pressEnterToReturn()
}

// CreatePlayer sets a new level 1 player, replacing any current one.
func (c *Console) CreatePlayer(name string) error {
	p, err := entity.NewPlayer(name, 1)
	if err != nil {
		return err
	}
	c.player = p
	return nil
}

// UseDefaultMonster sets the default monster from the embedded defaults.
func (c *Console) UseDefaultMonster() error {
	def := c.opts.Defaults.Monster
	m, err := entity.NewMonster(def.Name, def.Health, def.Attack)
	if err != nil {
		return fmt.Errorf("default monster: %w", err)
	}
	c.monster = m
	return nil
}

func (c *Console) optionStart(ctx context.Context, args []string) error {
	if c.player == nil {
		c.notFound("player")
		c.pressEnterToReturn()
		return nil
	}

	var err error
	switch len(args) {
	case 1:
		err = c.startDefault(ctx)
	case 2:
		err = c.startLevel(ctx, args[1])
	default:
		c.unknownCommand()
		return nil
	}
	if err != nil {
		return err
	}

	// Attack bonuses only last for one world.
	c.player.ResetBonus()
	c.pressEnterToReturn()
	return nil
}

func (c *Console) startDefault(ctx context.Context) error {
	if c.monster == nil {
		c.notFound("monster")
		return nil
	}

	w := game.NewDefault(c.player, c.monster, c.opts.Defaults.World)
	return c.play(ctx, w, "default")
}

func (c *Console) startLevel(ctx context.Context, name string) error {
	lvl, err := c.opts.Levels.Find(ctx, name)
	if level.IsNotFound(err) {
		c.println("Map not found.")
		c.println("")
		return nil
	}
	if err != nil {
		c.println("The following error occurred while loading the file:")
		c.println(err.Error())
		return nil
	}

	w, err := lvl.Build(c.player)
	if err != nil {
		c.println("The following error occurred while loading the file:")
		c.println(err.Error())
		return nil
	}

	c.player.ToFullHealth()
	return c.play(ctx, w, name)
}

func (c *Console) play(ctx context.Context, w *game.World, name string) error {
	ctx, span := telemetry.Tracer("engine").Start(ctx, "session.start")
	defer span.End()
	span.SetAttributes(
		attribute.String("world.session", w.ID().String()),
		attribute.String("world.level", name),
		attribute.Int("player.level", c.player.Level),
	)

	c.log.WithFields(logrus.Fields{
		"session":    w.ID().String(),
		"level_name": name,
	}).Debug("session started")

	driver := c.opts.Driver
	if driver == nil {
		driver = &lineDriver{console: c}
	}

	outcome, err := driver.Play(ctx, w)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("playing %s: %w", name, err)
	}
	span.SetAttributes(attribute.String("world.outcome", outcome.String()))
	return nil
}

func (c *Console) save(ctx context.Context) {
	if c.player == nil {
		c.println("No player data to save.")
		c.println("")
		return
	}

	if err := c.opts.Store.Save(ctx, storage.RecordOf(c.player)); err != nil {
		c.log.WithError(err).Warn("save failed")
		c.println("Error saving player data.")
		c.println("")
		return
	}
	c.println("Player data saved.")
	c.println("")
}

func (c *Console) load(ctx context.Context) {
	rec, err := c.opts.Store.Load(ctx)
	if errors.Is(err, storage.ErrNoSave) {
		c.println("No player data found.")
		c.println("")
		return
	}
	if err == nil {
		c.player, err = rec.Player()
	}
	if err != nil {
		c.log.WithError(err).Warn("load failed")
		c.println("Error reading player data.")
		c.println("")
		return
	}

	c.println("Player data loaded.")
	c.println("")
}

func (c *Console) showMainMenu() {
	c.println(title)
	c.println("")

	playerInfo, monsterInfo := "[None]", "[None]"
	if c.player != nil {
		playerInfo = c.player.HealthString()
	}
	if c.monster != nil {
		monsterInfo = c.monster.HealthString()
	}
	c.println(fmt.Sprintf("Player: %s  | Monster: %s", playerInfo, monsterInfo))
	c.println("")

	c.println("Please enter a command to continue.")
	c.println("Type 'help' to learn how to get started.")
	c.println("")
}

func (c *Console) showHelp() {
	c.println("Type 'commands' to list all available commands")
	c.println("Type 'start' to start a new game")
	c.println("Create a character, battle monsters, and find treasure!")
	c.println("")
}

func (c *Console) showCommands() {
	for _, cmd := range []string{"help", "player", "monster", "start", "load", "save", "exit"} {
		c.println(cmd)
	}
	c.println("")
}

func (c *Console) unknownCommand() {
	c.println("Sorry, that command is not recognised.")
	c.showHelp()
}

func (c *Console) notFound(thing string) {
	c.println(fmt.Sprintf("No %s found, please create a %s with '%s' first.", thing, thing, thing))
	c.println("")
}

func (c *Console) pressEnterToReturn() {
	c.println("(Press enter key to return to main menu)")
	c.readLine()
	c.showMainMenu()
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSuffix(c.in.Text(), "\r"), true
}

func (c *Console) readInt() (int, bool) {
	line, ok := c.readLine()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	return n, err == nil
}

func (c *Console) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// lineDriver plays a world on the console: one command per line.
type lineDriver struct {
	console *Console
}

// Play prints the frame, then reads commands until the world finishes.
// End of input sends the player home.
func (d *lineDriver) Play(ctx context.Context, w *game.World) (game.Outcome, error) {
	c := d.console
	c.print(w.Render().String())
	c.println("")

	for {
		c.print(prompt)
		line, ok := c.readLine()
		cmd := game.Home
		if ok {
			cmd = ParseMove(line)
		}

		result := w.Advance(ctx, cmd)
		for _, msg := range result.Messages {
			c.println(msg)
		}
		if len(result.Messages) > 0 {
			c.println("")
		}

		if result.Outcome.IsTerminal() {
			return result.Outcome, nil
		}
		c.print(result.Frame.String())
		c.println("")
	}
}
