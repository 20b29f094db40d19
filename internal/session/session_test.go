package session

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiyudev/Monster-Competition/internal/config"
	"github.com/weiyudev/Monster-Competition/internal/random"
)

const testConfig = `actions:
  - name: Tackle
    element: NORMAL
    effects:
      - kind: damage
        target: target
        strength: {kind: abs, value: 10}
        hit_rate: 100
monsters:
  - name: Flamander
    element: FIRE
    stats: {hp: 30, atk: 10, def: 10, spd: 12}
    actions: [Tackle]
  - name: Pebbles
    element: EARTH
    stats: {hp: 30, atk: 10, def: 10, spd: 8}
    actions: [Tackle]
`

func newTestSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	set, err := config.Parse([]byte(testConfig))
	require.NoError(t, err)
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(set, random.NewScripted(), nil, &out, log), &out
}

func TestAnnounce(t *testing.T) {
	s, out := newTestSession(t)
	s.Announce()
	assert.Equal(t, "\nLoaded 1 actions, 2 monsters.\n", out.String())
}

func TestCompetitionStartsAndPrompts(t *testing.T) {
	s, out := newTestSession(t)
	s.Handle("competition Flamander Pebbles")

	assert.Contains(t, out.String(), "The 2 monsters enter the competition!")
	assert.Contains(t, out.String(), "What should Flamander do?")
}

func TestCompetitionNumbersDuplicates(t *testing.T) {
	s, out := newTestSession(t)
	s.Handle("competition Flamander Flamander Pebbles")

	assert.Contains(t, out.String(), "The 3 monsters enter the competition!")
	assert.Contains(t, out.String(), "What should Flamander#1 do?")
	require.NotNil(t, s.comp)
	assert.NotNil(t, s.comp.ByName("Flamander#2"))
	// The unique entry keeps its plain name.
	assert.NotNil(t, s.comp.ByName("Pebbles"))
}

func TestCompetitionRejectsUnknownMonster(t *testing.T) {
	s, out := newTestSession(t)
	s.Handle("competition Flamander Ghost")
	assert.Contains(t, out.String(), "Error, unknown monster: Ghost")
	assert.Nil(t, s.comp)
}

func TestCompetitionUsage(t *testing.T) {
	s, out := newTestSession(t)
	s.Handle("competition Flamander")
	assert.Contains(t, out.String(), "Error, usage: competition <monster1> <monster2> ...")
}

func TestFullRoundThroughCommands(t *testing.T) {
	s, out := newTestSession(t)
	s.Handle("competition Flamander Pebbles")
	s.Handle("action Tackle")
	s.Handle("action Tackle")

	transcript := out.String()
	assert.Contains(t, transcript, "It's Flamander's turn.")
	assert.Contains(t, transcript, "Flamander uses Tackle!")
	assert.Contains(t, transcript, "Pebbles takes 10 damage!")
	assert.Contains(t, transcript, "It's Pebbles's turn.")
	// Round two collects again.
	assert.Equal(t, 2, strings.Count(transcript, "What should Flamander do?"))
}

func TestPassCommand(t *testing.T) {
	s, out := newTestSession(t)
	s.Handle("competition Flamander Pebbles")
	s.Handle("pass")
	s.Handle("pass")

	assert.Contains(t, out.String(), "Flamander passes!")
	assert.Contains(t, out.String(), "Pebbles passes!")
}

func TestPassRejectsArguments(t *testing.T) {
	s, out := newTestSession(t)
	s.Handle("competition Flamander Pebbles")
	s.Handle("pass now")
	assert.Contains(t, out.String(), "Error, the 'pass' command does not accept any arguments.")
	// Still Flamander's choice.
	assert.Contains(t, out.String(), "What should Flamander do?")
}

func TestActionErrors(t *testing.T) {
	s, out := newTestSession(t)

	s.Handle("action Tackle")
	assert.Contains(t, out.String(), "Error, no monster is currently selecting an action.")

	s.Handle("competition Flamander Pebbles")
	out.Reset()
	s.Handle("action")
	assert.Contains(t, out.String(), "Error, usage: action <actionName> [<targetMonsterName>]")

	out.Reset()
	s.Handle("action Splash")
	assert.Contains(t, out.String(), "Error, Flamander does not know the action Splash.")

	out.Reset()
	s.Handle("action Tackle Ghost")
	assert.Contains(t, out.String(), "Error, unknown target monster: Ghost")
}

func TestQuitWithArgumentsIsAnError(t *testing.T) {
	s, out := newTestSession(t)
	s.Handle("quit now")
	assert.Contains(t, out.String(), "Error, the 'quit' command does not accept any arguments.")
}

func TestUnknownCommandIsSilent(t *testing.T) {
	s, out := newTestSession(t)
	s.Handle("dance")
	assert.Empty(t, out.String())
}

func TestShowWithoutCompetition(t *testing.T) {
	s, out := newTestSession(t)
	s.Handle("show")
	assert.Contains(t, out.String(), "Error, no monster is currently selecting an action.")
}

func TestShowMonsters(t *testing.T) {
	s, out := newTestSession(t)
	s.Handle("show monsters")
	assert.Contains(t, out.String(), "Flamander: ELEMENT FIRE, HP 30, ATK 10, DEF 10, SPD 12")
	assert.Contains(t, out.String(), "Pebbles: ELEMENT EARTH, HP 30, ATK 10, DEF 10, SPD 8")
}

func TestShowBoardAndSubcommands(t *testing.T) {
	s, out := newTestSession(t)
	s.Handle("competition Flamander Pebbles")

	out.Reset()
	s.Handle("show")
	assert.Contains(t, out.String(), "*Flamander (OK)")
	assert.Contains(t, out.String(), "What should Flamander do?")

	out.Reset()
	s.Handle("show actions")
	assert.Contains(t, out.String(), "ACTIONS OF Flamander")

	out.Reset()
	s.Handle("show stats")
	assert.Contains(t, out.String(), "STATS OF Flamander")

	out.Reset()
	s.Handle("show nonsense")
	assert.Contains(t, out.String(), "Error, unknown show command: nonsense")

	out.Reset()
	s.Handle("show too many")
	assert.Contains(t, out.String(), "Error, unknown show command: too many")
}

func TestLoadCommand(t *testing.T) {
	s, out := newTestSession(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	s.Handle("load " + path)
	// The file echoes verbatim, then the summary.
	assert.Contains(t, out.String(), testConfig)
	assert.Contains(t, out.String(), "Loaded 1 actions, 2 monsters.")
}

func TestLoadDropsRunningCompetition(t *testing.T) {
	s, out := newTestSession(t)
	s.Handle("competition Flamander Pebbles")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	s.Handle("load " + path)
	out.Reset()
	s.Handle("show")
	assert.Contains(t, out.String(), "Error, no monster is currently selecting an action.")
}

func TestLoadErrors(t *testing.T) {
	s, out := newTestSession(t)

	s.Handle("load")
	assert.Contains(t, out.String(), "Error, usage: load <path> [<seed>|debug]")

	out.Reset()
	s.Handle("load missing.yaml nonsense")
	assert.Contains(t, out.String(), "Error, the second argument must be either 'debug' or a numeric seed value.")

	out.Reset()
	s.Handle("load missing.yaml 42")
	assert.Contains(t, out.String(), "Note: The seed/debug parameter is accepted but not applied in the current implementation.")
	assert.Contains(t, out.String(), "Error, failed to load file missing.yaml:")
}

func TestRunStopsOnQuit(t *testing.T) {
	s, out := newTestSession(t)
	in := bufio.NewScanner(strings.NewReader("show monsters\nquit\nshow monsters\n"))
	s.Run(in)
	// Only the first show ran.
	assert.Equal(t, 1, strings.Count(out.String(), "Flamander: ELEMENT FIRE"))
}

func TestStatusBoardForOracle(t *testing.T) {
	s, _ := newTestSession(t)
	assert.Empty(t, s.StatusBoard())

	s.Handle("competition Flamander Pebbles")
	board := s.StatusBoard()
	assert.Contains(t, board, "*Flamander (OK)")
	assert.Contains(t, board, "Pebbles (OK)")
}
