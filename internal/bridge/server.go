package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/npratt/splitchance/internal/timing"
)

const (
	// maxMessageSize is the maximum size of a request (1MB).
	maxMessageSize = 1024 * 1024
	// readTimeout is the timeout for reading a request from a client.
	readTimeout = 30 * time.Second
	// socketPermissions are the file permissions for the Unix socket.
	socketPermissions = 0600
)

// Server serves a Registry over a Unix socket. Every component is refreshed
// against the snapshot of the server's timer.
type Server struct {
	registry *Registry
	timer    *timing.Timer
	sockPath string
	logger   *slog.Logger

	// mu serializes requests; the timer and the run it records into are
	// not safe for concurrent use.
	mu       sync.Mutex
	listener net.Listener
	running  bool

	// wg tracks the accept loop and in-flight connections.
	wg sync.WaitGroup
}

// NewServer creates a server for registry and timer listening on sockPath.
func NewServer(registry *Registry, timer *timing.Timer, sockPath string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		registry: registry,
		timer:    timer,
		sockPath: sockPath,
		logger:   logger,
	}
}

// Running reports whether the server is accepting connections.
func (s *Server) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Start listens on the socket and serves requests until ctx is cancelled.
// It returns once the listener is closed and every in-flight request has
// been answered.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("server already running")
	}
	s.mu.Unlock()

	// Clean up stale socket if it exists
	_ = os.Remove(s.sockPath)

	listener, err := net.Listen("unix", s.sockPath)
	if err != nil {
		return fmt.Errorf("listen on socket: %w", err)
	}
	if err := os.Chmod(s.sockPath, socketPermissions); err != nil {
		_ = listener.Close()
		return fmt.Errorf("set socket permissions: %w", err)
	}

	s.mu.Lock()
	s.listener = listener
	s.running = true
	s.mu.Unlock()

	s.logger.Info("bridge server started", "socket", s.sockPath)

	s.wg.Add(1)
	go s.serve(ctx, listener)

	<-ctx.Done()
	err = s.Stop()
	s.wg.Wait()
	return err
}

// Stop closes the listener and removes the socket.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false

	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			s.logger.Error("error closing listener", "error", err)
		}
		s.listener = nil
	}
	_ = os.Remove(s.sockPath)

	s.logger.Info("bridge server stopped")
	return nil
}

func (s *Server) serve(ctx context.Context, listener net.Listener) {
	defer s.wg.Done()
	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
				if !s.Running() {
					return
				}
				s.logger.Error("accept error", "error", err)
				continue
			}
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConnection(conn)
		}()
	}
}

// handleConnection reads a request, dispatches it, and writes the response.
func (s *Server) handleConnection(conn net.Conn) {
	defer func() { _ = conn.Close() }()

	if err := conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
		s.logger.Error("set read deadline error", "error", err)
		return
	}

	decoder := json.NewDecoder(io.LimitReader(conn, maxMessageSize))
	encoder := json.NewEncoder(conn)

	var req Request
	if err := decoder.Decode(&req); err != nil {
		_ = encoder.Encode(Response{Error: fmt.Sprintf("decode error: %v", err)})
		return
	}

	resp := s.handleRequest(&req)
	resp.ID = req.ID
	_ = encoder.Encode(resp)
}

// handleRequest dispatches the request to the matching handler.
func (s *Server) handleRequest(req *Request) Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("bridge request", "method", req.Method, "id", req.ID)

	var (
		result any
		err    error
	)
	switch req.Method {
	case MethodNew:
		result = HandleResult{Handle: s.registry.New()}
	case MethodDrop:
		result, err = withHandle(req, func(h Handle) (any, error) {
			return "dropped", s.registry.Drop(h)
		})
	case MethodState:
		result, err = withHandle(req, func(h Handle) (any, error) {
			return s.registry.State(h, s.timer.Snapshot())
		})
	case MethodStateJSON:
		result, err = withHandle(req, func(h Handle) (any, error) {
			data, err := s.registry.StateAsJSON(h, s.timer.Snapshot())
			return string(data), err
		})
	case MethodTimer:
		result, err = s.handleTimer(req)
	default:
		err = fmt.Errorf("unknown method: %s", req.Method)
	}
	if err != nil {
		return Response{Error: err.Error()}
	}

	data, err := json.Marshal(result)
	if err != nil {
		return Response{Error: fmt.Sprintf("encode result: %v", err)}
	}
	return Response{Result: data}
}

func (s *Server) handleTimer(req *Request) (any, error) {
	var params TimerParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}

	var err error
	switch params.Action {
	case "start":
		err = s.timer.Start()
	case "split":
		err = s.timer.Split()
	case "skip":
		err = s.timer.SkipSplit()
	case "undo":
		err = s.timer.UndoSplit()
	case "pause":
		err = s.timer.Pause()
	case "resume":
		err = s.timer.Resume()
	case "reset":
		err = s.timer.Reset()
	default:
		return nil, fmt.Errorf("unknown timer action: %s", params.Action)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", params.Action, err)
	}

	snap := s.timer.Snapshot()
	index, ok := snap.CurrentSplitIndex()
	if !ok {
		index = timing.NoSplit
	}
	return TimerResult{Phase: snap.CurrentPhase().String(), SplitIndex: index}, nil
}

func withHandle(req *Request, fn func(Handle) (any, error)) (any, error) {
	var params HandleParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	return fn(params.Handle)
}
