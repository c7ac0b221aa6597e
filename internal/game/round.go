package game

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/littleprofessor/internal/level"
)

// Round holds the state of one room visit.
type Round struct {
	Room    level.Room
	Total   int // questions to ask
	Asked   int
	Correct int
}

// NewRound creates the question set for room.
func NewRound(room level.Room, total int) *Round {
	return &Round{Room: room, Total: total}
}

// Done reports whether every question was asked.
func (r *Round) Done() bool {
	return r.Asked >= r.Total
}

// Record counts one answered question.
func (r *Round) Record(correct bool) {
	r.Asked++
	if correct {
		r.Correct++
	}
}

// LevelSuccessful reports whether a level is passed: enough points gained,
// time not run out and every room completed. Zero time left still counts.
func LevelSuccessful(gained, minPoints, remaining int, allCompleted bool) bool {
	return gained >= minPoints && remaining >= 0 && allCompleted
}

// =============================================================================
// Room Loop Methods on Game
// =============================================================================

// playRoom asks the room's questions, marks it completed and decides where
// the session goes next.
func (g *Game) playRoom(ctx context.Context) error {
	lvl := g.Level()
	round := g.round

	_, span := g.tracer.Start(ctx, "room.questions")
	defer span.End()

	g.display.EnterRoom(round.Room)
	for !round.Done() {
		q, err := lvl.Question(round.Room)
		if err != nil {
			return err
		}
		answer, err := g.display.AskQuestion(round.Room, q)
		if err != nil {
			return err
		}
		correct := answer == q.Answer
		if correct {
			g.user.AddPoint()
		}
		round.Record(correct)
		g.display.ShowSolution(q.Answer)
	}
	g.progress.Complete(round.Room.ID)

	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.String("level", lvl.Name()),
		attribute.String("room", round.Room.ID.String()),
		attribute.Int("correct", round.Correct),
		attribute.Int("rooms_completed", g.progress.CompletedCount(lvl)),
		attribute.Int("score", g.user.Score),
		attribute.Int("time", g.clock.Remaining()),
	)
	log.Debug().
		Str("room", round.Room.ID.String()).
		Int("correct", round.Correct).
		Int("score", g.user.Score).
		Msg("room completed")

	g.round = nil
	g.state = g.afterRoom()
	return nil
}

// afterRoom evaluates level completion before any timeout check, so a level
// finished with exactly zero time left is still judged on its merits.
func (g *Game) afterRoom() State {
	lvl := g.Level()
	if !g.progress.AllCompleted(lvl) {
		return StateHallway
	}
	passed := LevelSuccessful(g.user.Score-g.baseline, lvl.MinPoints(), g.clock.Remaining(), true)
	if g.levelIndex == len(g.levels)-1 {
		g.success = passed
		return StateSessionEnded
	}
	if passed {
		return StateLevelAdvance
	}
	return StateLevelFailed
}
