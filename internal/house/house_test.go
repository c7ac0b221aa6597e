package house

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/littleprofessor/internal/gamedata"
	"github.com/samdwyer/littleprofessor/internal/level"
	"github.com/samdwyer/littleprofessor/internal/question"
)

type fixedClock int

func (c fixedClock) Remaining() int { return int(c) }

type stubLayouts map[string][]string

func (s stubLayouts) Layout(name string) ([]string, error) {
	rows, ok := s[name]
	if !ok {
		return nil, errors.New("no such layout")
	}
	return rows, nil
}

var houseWithRoomsAndUserData = Grid{
	"###############################################################",
	"# Username:Cellestine             Highscore:%HIGHSCORE%       #",
	"###############################################################",
	"#                      ################                       #",
	"#                      #              #                       #",
	"#                      #     -        #                       #",
	"#                      #              #                       #",
	"#                      ################                       #",
	"#    ################  ################  ################     #",
	"#    #              #  #              #  #              #     #",
	"#    #     +        #  #     --       #  #     *        #     #",
	"#    #              #  #              #  #              #     #",
	"#    ################  ################  ################     #",
	"#                      ################                       #",
	"#                      #              #                       #",
	"#                      #     /        #                       #",
	"#                      #              #                       #",
	"#                      ################                       #",
	"###############################################################",
	"# Level:%LEVEL% | Time:2                  Score:1000/  1000     #",
	"###############################################################",
}

func allRoomsLevel(t *testing.T) *level.Level {
	t.Helper()
	lvl, err := level.New("6", level.Advanced, level.AllRooms(), question.FixedSource{})
	require.NoError(t, err)
	return lvl
}

func newHouse(t *testing.T) *House {
	t.Helper()
	h, err := New(gamedata.Layouts{}, fixedClock(2))
	require.NoError(t, err)
	return h
}

func TestNewStartsAtEntrance(t *testing.T) {
	h := newHouse(t)
	assert.Equal(t, Entrance, h.Layout())

	entrance, err := gamedata.Layouts{}.Layout("entrance")
	require.NoError(t, err)

	grid, err := h.Render(allRoomsLevel(t), level.NewProgress())
	require.NoError(t, err)
	assert.Equal(t, Grid(entrance), grid)
}

func TestChangeLayoutRoundTrip(t *testing.T) {
	h := newHouse(t)

	require.NoError(t, h.ChangeLayout(Hallway))
	require.NoError(t, h.ChangeLayout(Entrance))
	assert.Equal(t, Entrance, h.Layout())
}

func TestRenderHallwayWithUserData(t *testing.T) {
	h := newHouse(t)
	require.NoError(t, h.ChangeLayout(Hallway))

	h.SetUsername("Cellestine")
	h.SetScore(1000)
	h.SetTotalScore(1000)

	grid, err := h.Render(allRoomsLevel(t), level.NewProgress())
	require.NoError(t, err)
	assert.Equal(t, houseWithRoomsAndUserData, grid)
}

func TestRenderCompletedRoom(t *testing.T) {
	h := newHouse(t)
	require.NoError(t, h.ChangeLayout(Hallway))
	progress := level.NewProgress()
	progress.Complete(level.Left)

	grid, err := h.Render(allRoomsLevel(t), progress)
	require.NoError(t, err)

	assert.Equal(t, "#    ################  #              #  #              #     #", grid[9])
	assert.Equal(t, "#    ######+#########  #     --       #  #     *        #     #", grid[10])
}

func TestSetFieldPadsShortValues(t *testing.T) {
	h := newHouse(t)
	require.NoError(t, h.ChangeLayout(Hallway))
	before, err := h.Render(allRoomsLevel(t), level.NewProgress())
	require.NoError(t, err)

	require.NoError(t, h.ChangeLayout(Hallway))
	h.SetTime(7)
	h.SetLevel(allRoomsLevel(t))
	after, err := h.Render(allRoomsLevel(t), level.NewProgress())
	require.NoError(t, err)

	require.Len(t, after, len(before))
	for i := range after {
		assert.Len(t, after[i], len(before[i]), "row %d", i)
	}
	assert.True(t, strings.HasPrefix(after[19], "# Level:6       | Time:7     "), after[19])
}

func TestSetFieldKeepsSurroundingCells(t *testing.T) {
	h, err := New(stubLayouts{"entrance": {"ab%S%cd", "%S%%S%x"}}, nil)
	require.NoError(t, err)

	h.SetScore(5)
	grid, err := h.Render(allRoomsLevel(t), level.NewProgress())
	require.NoError(t, err)
	assert.Equal(t, Grid{"ab5  cd", "5  5  x"}, grid)
}

func TestOverlayOutOfBounds(t *testing.T) {
	narrow := make([]string, 21)
	for i := range narrow {
		narrow[i] = strings.Repeat(" ", 40)
	}
	h, err := New(stubLayouts{"entrance": narrow, "hallway": narrow}, fixedClock(0))
	require.NoError(t, err)
	require.NoError(t, h.ChangeLayout(Hallway))

	_, err = h.Render(allRoomsLevel(t), level.NewProgress())
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestOverlayOutOfBoundsRows(t *testing.T) {
	short := []string{strings.Repeat(" ", 63), strings.Repeat(" ", 63)}
	h, err := New(stubLayouts{"entrance": short, "hallway": short}, fixedClock(0))
	require.NoError(t, err)
	require.NoError(t, h.ChangeLayout(Hallway))

	_, err = h.Render(allRoomsLevel(t), level.NewProgress())
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestChangeLayoutRejectsMalformed(t *testing.T) {
	_, err := New(stubLayouts{"entrance": {"###", "##"}}, nil)
	assert.ErrorIs(t, err, ErrMalformedLayout)

	_, err = New(stubLayouts{"entrance": {}}, nil)
	assert.ErrorIs(t, err, ErrMalformedLayout)

	_, err = New(stubLayouts{}, nil)
	assert.Error(t, err)
}

func TestPanelLines(t *testing.T) {
	hallway, _ := level.RoomByID(level.Hallway)
	assert.Equal(t, "#     --       #", PanelLines(hallway, false)[2])

	down, _ := level.RoomByID(level.Down)
	assert.Equal(t, "######/#########", PanelLines(down, true)[2])
}
