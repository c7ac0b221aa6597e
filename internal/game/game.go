package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/littleprofessor/internal/house"
	"github.com/samdwyer/littleprofessor/internal/input"
	"github.com/samdwyer/littleprofessor/internal/level"
	"github.com/samdwyer/littleprofessor/internal/player"
	"github.com/samdwyer/littleprofessor/internal/telemetry"
)

// ErrNoLevels is returned when the level source is empty.
var ErrNoLevels = errors.New("game: no levels")

// Game holds the entire session state. Everything except the clock is
// owned by the goroutine calling Run.
type Game struct {
	cfg      Config
	display  Display
	store    UserStore
	levels   []*level.Level
	house    *house.House
	clock    *Clock
	progress *level.Progress
	tracer   trace.Tracer

	sessionID  string
	state      State
	user       *player.User
	levelIndex int
	baseline   int // score carried over from passed levels
	target     int // baseline plus the current level's minimum
	success    bool
	round      *Round
}

// New creates a session over the given collaborators. The clock must be the
// one the house reads its time from.
func New(cfg Config, display Display, store UserStore, levels LevelSource, h *house.House, clock *Clock) (*Game, error) {
	if cfg.QuestionsPerRoom <= 0 {
		return nil, fmt.Errorf("game: questions per room must be positive, got %d", cfg.QuestionsPerRoom)
	}
	lvls := levels.Levels()
	if len(lvls) == 0 {
		return nil, ErrNoLevels
	}
	return &Game{
		cfg:       cfg,
		display:   display,
		store:     store,
		levels:    lvls,
		house:     h,
		clock:     clock,
		progress:  level.NewProgress(),
		tracer:    telemetry.Tracer("game"),
		sessionID: uuid.NewString(),
		state:     StateAwaitingName,
	}, nil
}

// State returns the current state.
func (g *Game) State() State { return g.state }

// Level returns the level being played.
func (g *Game) Level() *level.Level { return g.levels[g.levelIndex] }

// User returns the player, or nil before the name was entered.
func (g *Game) User() *player.User { return g.user }

// Succeeded reports the outcome of the last ended session.
func (g *Game) Succeeded() bool { return g.success }

// Run plays sessions until the player declines to play again or quits.
// Quitting is not an error: the user is saved and Run returns nil.
func (g *Game) Run(ctx context.Context) error {
	err := g.run(ctx)
	if errors.Is(err, input.ErrQuit) {
		g.quit(ctx)
		return nil
	}
	return err
}

func (g *Game) run(ctx context.Context) error {
	if err := g.start(ctx); err != nil {
		return err
	}

	for g.state != StateTerminated {
		var err error
		switch g.state {
		case StateHallway:
			err = g.hallway(ctx)
		case StateInRoom:
			err = g.playRoom(ctx)
		case StateLevelAdvance:
			g.advanceLevel(ctx)
		case StateLevelFailed:
			log.Info().Str("level", g.Level().Name()).Int("score", g.user.Score).Msg("level failed")
			g.display.LevelFailed()
			g.success = false
			g.state = StateSessionEnded
		case StateSessionEnded:
			g.endSession(ctx)
		case StatePlayAgainPrompt:
			err = g.playAgain(ctx)
		default:
			err = fmt.Errorf("game: unexpected state %s", g.state)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// start shows the entrance, asks for the name and loads the user.
func (g *Game) start(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "session.start")
	defer span.End()

	grid, err := g.house.Render(g.Level(), g.progress)
	if err != nil {
		return err
	}
	g.display.ShowHouse(grid)
	g.display.Welcome()

	name, err := g.display.RequestUsername()
	if err != nil {
		return err
	}
	user, err := g.store.Load(ctx, name)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	g.user = user

	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.String("user", user.Name),
		attribute.Int("highscore", user.Highscore),
	)
	log.Info().Str("session", g.sessionID).Str("user", user.Name).Msg("session started")

	g.reset(ctx)
	return nil
}

// reset puts the session back to the first level with a fresh score.
func (g *Game) reset(ctx context.Context) {
	g.levelIndex = 0
	g.baseline = 0
	g.success = false
	g.round = nil
	g.user.ResetScore()
	g.startLevel(ctx)
}

// startLevel clears room completion, restarts the clock and enters the
// Hallway of the current level.
func (g *Game) startLevel(ctx context.Context) {
	lvl := g.Level()
	g.progress.Reset()
	g.clock.Reset(lvl.TimeBudget(g.cfg.QuestionsPerRoom))
	g.target = g.baseline + lvl.MinPoints()
	g.state = StateHallway

	_, span := g.tracer.Start(ctx, "level.start")
	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.String("level", lvl.Name()),
		attribute.String("difficulty", lvl.Difficulty().String()),
		attribute.Int("target", g.target),
		attribute.Int("time", g.clock.Remaining()),
	)
	span.End()
	log.Info().Str("level", lvl.Name()).Int("target", g.target).Msg("level started")
}

// hallway shows the house and handles one navigation command.
func (g *Game) hallway(ctx context.Context) error {
	if g.timeIsUp() {
		return nil
	}

	grid, err := g.composeHallway()
	if err != nil {
		return err
	}
	g.display.ShowHouse(grid)

	cmd, err := g.display.Navigate(g.Level())
	if err != nil {
		return err
	}
	if g.timeIsUp() {
		return nil
	}

	switch cmd {
	case input.CommandUnknown:
		return nil
	case input.CommandQuit:
		return input.ErrQuit
	case input.CommandHelp:
		g.display.Help()
		return nil
	}

	room, ok := g.Level().RoomFor(cmd)
	if !ok {
		g.display.ReportError(fmt.Errorf("%w: %q", input.ErrInvalidCommand, cmd))
		return nil
	}
	g.round = NewRound(room, g.cfg.QuestionsPerRoom)
	g.state = StateInRoom
	return nil
}

// timeIsUp ends the session when the clock has run out.
func (g *Game) timeIsUp() bool {
	if g.clock.Remaining() > 0 {
		return false
	}
	log.Info().Str("level", g.Level().Name()).Int("time", g.clock.Remaining()).Msg("time is up")
	g.display.TimeIsUp()
	g.success = false
	g.state = StateSessionEnded
	return true
}

// composeHallway fills every field of the Hallway layout and renders it.
func (g *Game) composeHallway() (house.Grid, error) {
	if err := g.house.ChangeLayout(house.Hallway); err != nil {
		return nil, err
	}
	g.house.SetUsername(g.user.Name)
	g.house.SetHighscore(g.user.Highscore)
	g.house.SetScore(g.user.Score)
	g.house.SetTotalScore(g.target)
	g.house.SetLevel(g.Level())
	return g.house.Render(g.Level(), g.progress)
}

// advanceLevel moves to the next level, carrying the score as baseline.
func (g *Game) advanceLevel(ctx context.Context) {
	g.baseline = g.user.Score
	g.levelIndex++
	g.startLevel(ctx)
	g.display.LevelAdvanced(g.Level())
}

// endSession reports the outcome and saves a beaten highscore.
func (g *Game) endSession(ctx context.Context) {
	ctx, span := g.tracer.Start(ctx, "session.end")
	defer span.End()

	g.display.GameEnded(g.success, g.user.Score)
	beaten := g.user.UpdateHighscore()
	if beaten {
		g.display.NewHighscore(g.user.Highscore)
		g.persist(ctx)
	}

	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.Bool("success", g.success),
		attribute.Int("score", g.user.Score),
		attribute.Bool("new_highscore", beaten),
		attribute.String("level", g.Level().Name()),
	)
	log.Info().
		Bool("success", g.success).
		Int("score", g.user.Score).
		Int("highscore", g.user.Highscore).
		Msg("session ended")
	g.state = StatePlayAgainPrompt
}

// playAgain resets on yes and terminates on anything else.
func (g *Game) playAgain(ctx context.Context) error {
	again, err := g.display.PlayAgain()
	if err != nil {
		return err
	}
	if again {
		g.reset(ctx)
		return nil
	}
	g.persist(ctx)
	g.display.Goodbye()
	g.state = StateTerminated
	return nil
}

// quit saves the user without notifying about a highscore.
func (g *Game) quit(ctx context.Context) {
	if g.user != nil {
		g.user.UpdateHighscore()
		g.persist(ctx)
	}
	g.display.Goodbye()
	g.state = StateTerminated
}

// persist saves the user. A failure is reported but does not stop the game.
func (g *Game) persist(ctx context.Context) {
	if err := g.store.Store(ctx, g.user); err != nil {
		log.Error().Err(err).Str("user", g.user.Name).Msg("could not save user")
		g.display.ReportError(err)
	}
}
