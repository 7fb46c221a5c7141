package communication

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"blokus/agent"
	"blokus/game"
	"blokus/searcher"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	t.Run("object form", func(t *testing.T) {
		var p Position
		require.NoError(t, json.Unmarshal([]byte(`{"x": 2, "y": -1}`), &p))
		require.Equal(t, Position{X: 2, Y: -1}, p)
	})

	t.Run("pair form", func(t *testing.T) {
		var p Position
		require.NoError(t, json.Unmarshal([]byte(` [3, 4]`), &p))
		require.Equal(t, Position{X: 3, Y: 4}, p)
	})

	t.Run("invalid", func(t *testing.T) {
		var p Position
		require.Error(t, json.Unmarshal([]byte(`[1]`), &p))
		require.Error(t, json.Unmarshal([]byte(`{"x": 1}`), &p))
		require.Error(t, json.Unmarshal([]byte(`"a"`), &p))
	})

	t.Run("marshals as an object", func(t *testing.T) {
		data, err := json.Marshal(Position{X: 1, Y: 2})
		require.NoError(t, err)
		require.JSONEq(t, `{"x": 1, "y": 2}`, string(data))
	})
}

func TestMessageSnapshot(t *testing.T) {
	var m Message
	err := json.Unmarshal([]byte(`{
		"number": 1,
		"turn": 1,
		"board": {"dimension": 2, "grid": [[-1, -1], [0, -1]], "bonus_squares": [[1, 1]]},
		"blocks": [[[{"x": 0, "y": 0}]], [[[0, 0], [1, 0]]]]
	}`), &m)
	require.NoError(t, err)
	require.Nil(t, m.Move)
	require.Nil(t, m.Error)

	snap, err := m.Snapshot()

	require.NoError(t, err)
	require.Equal(t, 1, snap.Number)
	require.Equal(t, 1, snap.Turn)
	require.Equal(t, []game.Point{{X: 1, Y: 1}}, snap.Bonus)
	require.Equal(t, [][]game.Shape{
		{{{X: 0, Y: 0}}},
		{{{X: 0, Y: 0}, {X: 1, Y: 0}}},
	}, snap.Blocks)

	m.Blocks = [][][]Position{{{{X: 0, Y: 0}, {X: 0, Y: 0}}}}
	_, err = m.Snapshot()
	require.Error(t, err, "Duplicate offsets are rejected")
}

const setup = `{"number": 0}`

func boardMessage(move int) string {
	return `{"turn": 0, "move": ` + strconv.Itoa(move) + `, "board": {"dimension": 4, ` +
		`"grid": [[-1,-1,-1,-1],[-1,-1,-1,-1],[-1,-1,-1,-1],[-1,-1,-1,-1]], "bonus_squares": []}, ` +
		`"blocks": [[[[0,0],[1,0]], [[0,0]]], [], [], []]}`
}

func run(t *testing.T, lines ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	stream := NewStream(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	client := NewClient(stream, agent.NewSelector(agent.NewSearchAgent(agent.WithDepth(searcher.Greedy))))
	err := client.Run(context.Background())
	return out.String(), err
}

func TestClientRun(t *testing.T) {
	t.Run("answers move requests only", func(t *testing.T) {
		out, err := run(t, setup, boardMessage(0), "", boardMessage(1))

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 1)
		fields := strings.Fields(lines[0])
		require.Len(t, fields, 4)
		require.Contains(t, []string{"0", "1"}, fields[0])
	})

	t.Run("error messages are not fatal", func(t *testing.T) {
		out, err := run(t, `{"error": "seat taken"}`, setup, boardMessage(1))

		require.NoError(t, err)
		require.NotEmpty(t, out)
	})

	t.Run("passes without a legal move", func(t *testing.T) {
		blocked := `{"number": 0, "turn": 0, "move": 1, "board": {"dimension": 2, "grid": [[1,-1],[-1,-1]], "bonus_squares": []}, "blocks": [[[[0,0]]]]}`

		out, err := run(t, blocked)

		require.NoError(t, err)
		require.Equal(t, Pass+"\n", out)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := run(t, setup, `{"number": `)
		require.ErrorContains(t, err, "decode message")
	})

	t.Run("invalid state", func(t *testing.T) {
		_, err := run(t, setup, `{"turn": 0, "board": {"dimension": 3, "grid": [[-1]], "bonus_squares": []}, "blocks": []}`)
		require.ErrorContains(t, err, "interpret state")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		client := NewClient(NewStream(strings.NewReader(setup), &bytes.Buffer{}), agent.NewSelector(agent.NewRandomAgent(1)))

		require.ErrorIs(t, client.Run(ctx), context.Canceled)
	})
}

func TestDebugWriter(t *testing.T) {
	var out bytes.Buffer
	stream := NewStream(strings.NewReader(""), &out)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stream.Debug(), NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}})

	logger.Info().Msg("thinking")
	_, err := stream.Debug().Write([]byte("a\nb\n"))
	require.NoError(t, err)
	require.NoError(t, stream.Send("1 0 2 3"))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "DEBUG "), "Log lines are prefixed: %q", lines[0])
	require.Contains(t, lines[0], "thinking")
	require.Equal(t, []string{"DEBUG a", "DEBUG b", "1 0 2 3"}, lines[1:])
}
