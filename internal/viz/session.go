package viz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mtxik/AStarGrid/internal/grid"
)

const writeTimeout = 10 * time.Second

// session is one websocket connection. Its fields are only touched by the
// read loop; a running search owns the editor until done is closed.
type session struct {
	id  string
	ws  *websocket.Conn
	srv *Server
	out chan any

	editor *grid.Editor
	cancel context.CancelFunc
	done   chan struct{}
}

func newSession(id string, ws *websocket.Conn, srv *Server) *session {
	return &session{id: id, ws: ws, srv: srv, out: make(chan any, 16)}
}

// serve runs the read loop until the client goes away.
func (s *session) serve(ctx context.Context) {
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeLoop()
	}()

	for {
		var cmd Command
		if err := s.ws.ReadJSON(&cmd); err != nil {
			break
		}
		s.handle(ctx, cmd)
	}

	s.stopSearch()
	close(s.out)
	<-writerDone
	_ = s.ws.Close()
}

// writeLoop is the only writer of the connection. It keeps draining out
// after a write error so senders never block.
func (s *session) writeLoop() {
	failed := false
	for msg := range s.out {
		if failed {
			continue
		}
		_ = s.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := s.ws.WriteJSON(msg); err != nil {
			s.srv.logger.Warn("failed to write websocket message", "session", s.id, "error", err)
			failed = true
		}
	}
}

func (s *session) fail(err error) {
	s.out <- Failure{Type: "error", Session: s.id, Error: err.Error()}
}

func (s *session) handle(ctx context.Context, cmd Command) {
	switch cmd.Action {
	case "init":
		s.stopSearch()
		rows := min(max(cmd.Rows, 2), s.srv.opts.MaxRows)
		seed := cmd.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e, err := generate(rows, s.srv.opts.Width, cmd.Density, seed)
		if err != nil {
			s.fail(err)
			return
		}
		s.editor = e
		s.out <- newFrame("grid", s.id, e.Grid().Snapshot())

	case "map":
		s.stopSearch()
		g, err := grid.Parse(strings.NewReader(cmd.Map), s.srv.opts.Width)
		if err != nil {
			s.fail(err)
			return
		}
		if g.Rows > s.srv.opts.MaxRows {
			s.fail(fmt.Errorf("map has %d rows, limit is %d", g.Rows, s.srv.opts.MaxRows))
			return
		}
		s.editor = grid.EditorFor(g)
		s.out <- newFrame("grid", s.id, g.Snapshot())

	case "run":
		switch {
		case s.editor == nil:
			s.fail(errors.New("no grid: send init or map first"))
			return
		case s.running():
			s.fail(errors.New("search already running"))
			return
		}
		s.stopSearch() // release the context of a finished run
		searchCtx, cancel := context.WithCancel(ctx)
		s.cancel = cancel
		s.done = make(chan struct{})
		go s.search(searchCtx, s.editor, s.done)

	case "stop":
		s.stopSearch()

	default:
		s.fail(fmt.Errorf("unknown action %q", cmd.Action))
	}
}

func (s *session) running() bool {
	if s.done == nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// stopSearch cancels a running search and waits until it has let go of the editor.
func (s *session) stopSearch() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel, s.done = nil, nil
}

func (s *session) search(ctx context.Context, e *grid.Editor, done chan struct{}) {
	defer close(done)
	g := e.Grid()
	delay := s.srv.opts.StepDelay

	step := 0
	onStep := func() {
		step++
		snap := g.Snapshot()
		snap.Step = step
		s.out <- newFrame("frame", s.id, snap)
		if delay > 0 {
			t := time.NewTimer(delay)
			select {
			case <-ctx.Done():
			case <-t.C:
			}
			t.Stop()
		}
	}

	res, err := s.srv.runner.RunEditor(ctx, e, onStep)
	if err != nil {
		s.fail(err)
		return
	}
	final := g.Snapshot()
	final.Step = step
	s.out <- newDone(s.id, res, final)
}
