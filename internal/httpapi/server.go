// Package httpapi serves script generation over HTTP and streams playback
// frames over a WebSocket.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/viralquiz/internal/playback"
	"github.com/abhisek/viralquiz/internal/quizscript"
)

// Options configures a Server.
type Options struct {
	Generator quizscript.Generator
	Timings   playback.Timings
	Scheduler playback.Scheduler // nil means wall clock
	Logger    logrus.FieldLogger
}

// Server holds the handlers' dependencies.
type Server struct {
	generator quizscript.Generator
	timings   playback.Timings
	scheduler playback.Scheduler
	log       logrus.FieldLogger
	upgrader  websocket.Upgrader
}

// NewServer creates a Server.
func NewServer(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{
		generator: opts.Generator,
		timings:   opts.Timings,
		scheduler: opts.Scheduler,
		log:       log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/scripts", s.CreateScript)
		r.Get("/playback", s.ServePlayback)
	})
	return r
}
