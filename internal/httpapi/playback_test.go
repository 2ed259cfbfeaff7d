package httpapi

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/viralquiz/internal/playback/playbacktest"
	"github.com/abhisek/viralquiz/internal/quizscript"
)

type frameEnvelope struct {
	Type    string `json:"type"`
	Payload struct {
		SessionID  string `json:"sessionId"`
		Stage      string `json:"stage"`
		Countdown  int    `json:"countdown"`
		ShowAnswer bool   `json:"showAnswer"`
		Heading    string `json:"heading"`
		Message    string `json:"message"`
		State      struct {
			QuestionIndex int `json:"questionIndex"`
		} `json:"state"`
	} `json:"payload"`
}

func dialPlayback(t *testing.T, clock *playbacktest.Scheduler) *websocket.Conn {
	t.Helper()
	srv := newTestServer(t, nil, Options{Scheduler: clock})
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/playback"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) frameEnvelope {
	t.Helper()
	var env frameEnvelope
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	require.NoError(t, conn.ReadJSON(&env))
	return env
}

// waitPending blocks until the server has scheduled the next timer.
func waitPending(t *testing.T, clock *playbacktest.Scheduler) {
	t.Helper()
	require.Eventually(t, func() bool { return clock.Pending() > 0 }, 5*time.Second, time.Millisecond)
}

func start(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	payload, err := json.Marshal(testScript("x"))
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "start", "payload": json.RawMessage(payload)}))
}

func TestPlayback_StreamsFrames(t *testing.T) {
	clock := playbacktest.New()
	conn := dialPlayback(t, clock)
	start(t, conn)

	intro := readEnvelope(t, conn)
	assert.Equal(t, "frame", intro.Type)
	assert.Equal(t, "intro", intro.Payload.Stage)
	assert.NotEmpty(t, intro.Payload.SessionID)

	waitPending(t, clock)
	clock.Advance(3 * time.Second)
	hook := readEnvelope(t, conn)
	assert.Equal(t, "hook", hook.Payload.Stage)
	assert.Equal(t, intro.Payload.SessionID, hook.Payload.SessionID)

	clock.Advance(4 * time.Second)
	quiz := readEnvelope(t, conn)
	assert.Equal(t, "quiz", quiz.Payload.Stage)
	assert.Equal(t, 5, quiz.Payload.Countdown)
	assert.False(t, quiz.Payload.ShowAnswer)

	for want := 4; want >= 0; want-- {
		clock.Advance(time.Second)
		f := readEnvelope(t, conn)
		assert.Equal(t, want, f.Payload.Countdown)
		assert.Equal(t, want == 0, f.Payload.ShowAnswer)
	}

	clock.Advance(3 * time.Second)
	assert.Equal(t, "twist", readEnvelope(t, conn).Payload.Stage)
	clock.Advance(7 * time.Second)
	assert.Equal(t, "cta", readEnvelope(t, conn).Payload.Stage)
	assert.Zero(t, clock.Pending())
}

func TestPlayback_RestartAndClose(t *testing.T) {
	clock := playbacktest.New()
	conn := dialPlayback(t, clock)
	start(t, conn)
	readEnvelope(t, conn)

	waitPending(t, clock)
	clock.Advance(3 * time.Second)
	assert.Equal(t, "hook", readEnvelope(t, conn).Payload.Stage)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "restart"}))
	assert.Equal(t, "intro", readEnvelope(t, conn).Payload.Stage)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "close"}))
	assert.Equal(t, "closed", readEnvelope(t, conn).Type)
	assert.Zero(t, clock.Pending())

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "restart"}))
	env := readEnvelope(t, conn)
	assert.Equal(t, "error", env.Type)
	assert.Equal(t, "no playback to restart", env.Payload.Message)
}

func TestPlayback_Errors(t *testing.T) {
	conn := dialPlayback(t, playbacktest.New())

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "dance"}))
	env := readEnvelope(t, conn)
	assert.Equal(t, "error", env.Type)
	assert.Equal(t, "unsupported message type", env.Payload.Message)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "start", "payload": "nope"}))
	env = readEnvelope(t, conn)
	assert.Equal(t, "error", env.Type)
	assert.Equal(t, "invalid script payload", env.Payload.Message)
}

func TestPlayback_DisconnectClosesSequencer(t *testing.T) {
	clock := playbacktest.New()
	conn := dialPlayback(t, clock)
	start(t, conn)
	readEnvelope(t, conn)
	waitPending(t, clock)

	conn.Close()
	require.Eventually(t, func() bool { return clock.Pending() == 0 }, 5*time.Second, time.Millisecond)
}

func TestPlayback_StalledClientDisconnect(t *testing.T) {
	clock := playbacktest.New()
	conn := dialPlayback(t, clock)

	// Frames large enough to fill the socket buffers and the send queue
	// while the client reads nothing.
	script := testScript("x")
	script.Questions = nil
	for i := 0; i < 10; i++ {
		script.Questions = append(script.Questions, quizscript.Question{
			Question: fmt.Sprintf("%d %s", i, strings.Repeat("x", 512<<10)),
			Options:  []string{"a", "b", "c", "d"},
			Answer:   "a",
			Fact:     "f",
		})
	}
	payload, err := json.Marshal(script)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(map[string]any{"type": "start", "payload": json.RawMessage(payload)}))
	waitPending(t, clock)

	played := make(chan struct{})
	go func() {
		defer close(played)
		clock.Advance(time.Hour)
	}()

	conn.Close()
	select {
	case <-played:
	case <-time.After(10 * time.Second):
		t.Fatal("frame delivery stayed blocked after the client went away")
	}
	require.Eventually(t, func() bool { return clock.Pending() == 0 }, 5*time.Second, time.Millisecond)
}
