package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/abhisek/viralquiz/internal/logging"
	"github.com/abhisek/viralquiz/internal/playback"
	"github.com/abhisek/viralquiz/internal/quizscript"
)

// Message types on the playback socket.
const (
	msgStart   = "start"
	msgRestart = "restart"
	msgClose   = "close"
	msgFrame   = "frame"
	msgClosed  = "closed"
	msgError   = "error"
)

// sendBuffer bounds frames queued for a slow client.
const sendBuffer = 16

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type framePayload struct {
	SessionID string         `json:"sessionId"`
	State     playback.State `json:"state"`
	playback.Frame
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServePlayback upgrades to a WebSocket and drives one sequencer at a time
// for the client, pushing a frame on every state change. Disconnecting
// closes the sequencer.
func (s *Server) ServePlayback(w http.ResponseWriter, r *http.Request) {
	log := logging.WithContext(r.Context())

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("ws upgrade failed")
		return
	}
	defer conn.Close()

	send := make(chan outboundMessage, sendBuffer)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for {
			select {
			case msg := <-send:
				if err := conn.WriteJSON(msg); err != nil {
					log.WithError(err).Debug("ws write failed")
					conn.Close()
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	push := func(msg outboundMessage) {
		select {
		case send <- msg:
		case <-closeSignals:
		case <-writerDone:
		}
	}

	var seq *playback.Sequencer
	stop := func() {
		if seq != nil {
			seq.Close()
		}
	}
	defer stop()

	for {
		var in inboundMessage
		if err := conn.ReadJSON(&in); err != nil {
			break
		}
		switch in.Type {
		case msgStart:
			var script quizscript.Script
			if err := json.Unmarshal(in.Payload, &script); err != nil {
				push(outboundMessage{Type: msgError, Payload: errorPayload{Message: "invalid script payload"}})
				continue
			}
			stop()
			seq = s.newSequencer(&script, push)
			log.WithField("session", seq.ID()).Info("playback started")
			seq.Start()
		case msgRestart:
			if seq == nil || seq.Closed() {
				push(outboundMessage{Type: msgError, Payload: errorPayload{Message: "no playback to restart"}})
				continue
			}
			seq.Restart()
		case msgClose:
			stop()
			push(outboundMessage{Type: msgClosed})
		default:
			push(outboundMessage{Type: msgError, Payload: errorPayload{Message: "unsupported message type"}})
		}
	}

	// Release observers parked in push before closing the sequencer, then
	// unblock a writer stuck on a stalled peer.
	close(closeSignals)
	stop()
	conn.Close()
	<-writerDone
}

func (s *Server) newSequencer(script *quizscript.Script, push func(outboundMessage)) *playback.Sequencer {
	var seq *playback.Sequencer
	opts := []playback.Option{
		playback.WithTimings(s.timings),
		playback.WithLogger(s.log),
		playback.WithObserver(func(st playback.State) {
			push(outboundMessage{Type: msgFrame, Payload: framePayload{
				SessionID: seq.ID(),
				State:     st,
				Frame:     playback.FrameFor(script, st),
			}})
		}),
	}
	if s.scheduler != nil {
		opts = append(opts, playback.WithScheduler(s.scheduler))
	}
	seq = playback.New(script, opts...)
	return seq
}
