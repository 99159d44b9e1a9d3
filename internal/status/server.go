package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/vovakirdan/brickcanvas/internal/games/breakout"
)

// Response is the JSON envelope of every endpoint.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
}

// Summary is the compact view served by /status.
type Summary struct {
	Phase     string `json:"phase"`
	Score     int    `json:"score"`
	Lives     int    `json:"lives"`
	Level     int    `json:"level"`
	Remaining int    `json:"remaining"`
	Seq       uint64 `json:"seq"`
}

// NewRouter builds the read-only status API.
func NewRouter(b *Board) *mux.Router {
	h := &handlers{board: b}
	r := mux.NewRouter()

	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	r.HandleFunc("/api/status", h.summary).Methods(http.MethodGet)
	r.HandleFunc("/api/snapshot", h.snapshot).Methods(http.MethodGet)
	r.HandleFunc("/api/blocks", h.blocks).Methods(http.MethodGet)
	r.HandleFunc("/api/blocks/{index:[0-9]+}", h.block).Methods(http.MethodGet)
	return r
}

type handlers struct {
	board *Board
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: "ok"})
}

func (h *handlers) latest(w http.ResponseWriter) (Report, bool) {
	rep, ok := h.board.Latest()
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, Response{Error: "no snapshot published yet"})
	}
	return rep, ok
}

func (h *handlers) summary(w http.ResponseWriter, _ *http.Request) {
	rep, ok := h.latest(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Data: Summary{
		Phase:     rep.State.Phase.String(),
		Score:     rep.State.Score,
		Lives:     rep.State.Lives,
		Level:     rep.State.Level,
		Remaining: rep.Remaining,
		Seq:       rep.Seq,
	}})
}

func (h *handlers) snapshot(w http.ResponseWriter, _ *http.Request) {
	rep, ok := h.latest(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Data: rep})
}

// blocks lists the grid; ?live=true drops destroyed blocks.
func (h *handlers) blocks(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.latest(w)
	if !ok {
		return
	}
	blocks := rep.State.Blocks
	if r.URL.Query().Get("live") == "true" {
		live := make([]breakout.Block, 0, rep.Remaining)
		for _, b := range blocks {
			if !b.Destroyed {
				live = append(live, b)
			}
		}
		blocks = live
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Data: blocks})
}

func (h *handlers) block(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.latest(w)
	if !ok {
		return
	}
	var idx int
	if _, err := fmt.Sscan(mux.Vars(r)["index"], &idx); err != nil || idx >= len(rep.State.Blocks) {
		writeJSON(w, http.StatusNotFound, Response{Error: "block not found"})
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Data: rep.State.Blocks[idx]})
}

func writeJSON(w http.ResponseWriter, code int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// Server serves the status API until its context is cancelled.
type Server struct {
	addr   string
	board  *Board
	logger *log.Logger
}

// NewServer creates a status server listening on addr.
func NewServer(addr string, b *Board, logger *log.Logger) *Server {
	return &Server{addr: addr, board: b, logger: logger}
}

// Run listens and serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("status: listen %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on an existing listener until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           NewRouter(s.board),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Status endpoint listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("status: serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("Stopping status endpoint")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("status: shutdown: %w", err)
		}
		return nil
	}
}
