package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samdwyer/littleprofessor/internal/house"
	"github.com/samdwyer/littleprofessor/internal/input"
	"github.com/samdwyer/littleprofessor/internal/level"
	"github.com/samdwyer/littleprofessor/internal/question"
)

// IO is a backend the Display writes to and reads from.
type IO interface {
	ShowGrid(grid house.Grid)
	Print(text string)
	PrintError(text string)
	// ReadLine returns io.EOF when no more input will arrive.
	ReadLine() (string, error)
	Close() error
}

// Display formats the game's messages and validates input. Invalid input
// is reported and asked again here; only the quit token and fatal read
// errors leave it.
type Display struct {
	term IO
}

// NewDisplay creates a display on top of a backend.
func NewDisplay(term IO) *Display {
	return &Display{term: term}
}

// Close releases the backend.
func (d *Display) Close() error {
	return d.term.Close()
}

// read returns the next line. End of input counts as quitting.
func (d *Display) read() (string, error) {
	line, err := d.term.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", input.ErrQuit
	}
	if err != nil {
		return "", err
	}
	if input.IsQuit(line) {
		return "", input.ErrQuit
	}
	return line, nil
}

func (d *Display) Welcome() {
	d.term.Print(msgWelcome)
}

func (d *Display) RequestUsername() (string, error) {
	d.term.Print(fmt.Sprintf(msgRequestName, input.MinNameLength, input.MaxNameLength))
	for {
		d.term.Print(msgQuitHint)
		line, err := d.read()
		if err != nil {
			return "", err
		}
		name, err := input.ParseName(line)
		if err == nil {
			return name, nil
		}
		d.term.PrintError(err.Error())
	}
}

// Navigate asks for one command. Invalid input is reported and
// input.CommandUnknown returned so the caller repeats the prompt.
func (d *Display) Navigate(lvl *level.Level) (input.Command, error) {
	valid := lvl.ValidCommands()
	d.term.Print(msgHallway)
	d.term.Print(commandList(valid))
	d.term.Print(msgQuitHint)

	line, err := d.read()
	if err != nil {
		return input.CommandUnknown, err
	}
	cmd, err := input.ParseCommand(valid, strings.ToLower(line))
	if err != nil {
		d.term.PrintError(msgInvalidCommand)
		return input.CommandUnknown, nil
	}
	return cmd, nil
}

func (d *Display) ShowHouse(grid house.Grid) {
	d.term.ShowGrid(grid)
}

func (d *Display) EnterRoom(room level.Room) {
	d.term.Print(fmt.Sprintf(msgEnterRoom, room.Operation))
}

func (d *Display) AskQuestion(room level.Room, q question.Question) (string, error) {
	d.term.Print(fmt.Sprintf(msgSolve, q.Prompt))
	return d.read()
}

func (d *Display) ShowSolution(answer string) {
	d.term.Print(fmt.Sprintf(msgSolution, answer))
}

func (d *Display) Help() {
	d.term.Print(msgHelp)
}

func (d *Display) TimeIsUp() {
	d.term.Print(msgTimeIsUp)
}

func (d *Display) LevelFailed() {
	d.term.Print(msgLevelFailed)
}

func (d *Display) LevelAdvanced(lvl *level.Level) {
	d.term.Print(divider)
	d.term.Print(fmt.Sprintf(msgLevelAdvanced, lvl.Name(), lvl.MinPoints()))
}

func (d *Display) NewHighscore(highscore int) {
	d.term.Print(divider)
	d.term.Print(fmt.Sprintf(msgNewHighscore, highscore))
}

func (d *Display) GameEnded(success bool, score int) {
	d.term.Print(divider)
	if success {
		d.term.Print(fmt.Sprintf(msgGameWon, score))
		return
	}
	d.term.Print(fmt.Sprintf(msgGameLost, score))
}

// PlayAgain reports whether the player typed "y".
func (d *Display) PlayAgain() (bool, error) {
	d.term.Print(divider)
	d.term.Print(msgPlayAgain)
	line, err := d.read()
	if err != nil {
		return false, err
	}
	_, err = input.ParseCommand([]input.Command{input.CommandYes}, strings.ToLower(line))
	return err == nil, nil
}

func (d *Display) Goodbye() {
	d.term.Print(msgGoodbye)
}

func (d *Display) ReportError(err error) {
	d.term.PrintError(fmt.Sprintf(msgError, err))
}

// commandList renders the accepted commands as "LEFT: left" lines.
func commandList(cmds []input.Command) string {
	lines := make([]string, len(cmds))
	for i, c := range cmds {
		lines[i] = strings.ToUpper(c.String()) + ": " + c.String()
	}
	return strings.Join(lines, "\n")
}
