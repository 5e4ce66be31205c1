package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/npratt/splitchance/internal/component/keyvalue"
)

// DefaultClientTimeout is the default timeout for client operations.
const DefaultClientTimeout = 5 * time.Second

// Client talks to a bridge Server over its Unix socket.
type Client struct {
	sockPath string
	timeout  time.Duration
}

// NewClient creates a client for the server at sockPath.
func NewClient(sockPath string) *Client {
	return &Client{sockPath: sockPath, timeout: DefaultClientTimeout}
}

// SetTimeout sets the timeout for client operations.
func (c *Client) SetTimeout(d time.Duration) {
	c.timeout = d
}

// call sends a request and decodes the result into out, if out is non-nil.
func (c *Client) call(method string, params any, out any) error {
	conn, err := net.DialTimeout("unix", c.sockPath, c.timeout)
	if err != nil {
		return c.wrapConnError(err)
	}
	defer func() { _ = conn.Close() }()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return fmt.Errorf("set deadline: %w", err)
	}

	req := Request{Method: method}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("encode params: %w", err)
		}
		req.Params = raw
	}
	if err := json.NewEncoder(conn).Encode(req); err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	var resp Response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.Error != "" {
		return fmt.Errorf("bridge error: %s", resp.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

// wrapConnError converts connection errors to user-friendly messages.
func (c *Client) wrapConnError(err error) error {
	var sysErr syscall.Errno
	if errors.As(err, &sysErr) {
		switch sysErr {
		case syscall.ENOENT:
			return errors.New("bridge not running (socket not found)")
		case syscall.ECONNREFUSED:
			return errors.New("bridge not running (connection refused)")
		}
	}
	if os.IsNotExist(err) {
		return errors.New("bridge not running (socket not found)")
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return errors.New("bridge request timed out")
	}
	return fmt.Errorf("connect to bridge: %w", err)
}

// New creates a component on the server.
func (c *Client) New() (Handle, error) {
	var res HandleResult
	if err := c.call(MethodNew, nil, &res); err != nil {
		return 0, err
	}
	return res.Handle, nil
}

// Drop destroys a component on the server.
func (c *Client) Drop(h Handle) error {
	return c.call(MethodDrop, HandleParams{Handle: h}, nil)
}

// State refreshes a component and returns its state.
func (c *Client) State(h Handle) (*keyvalue.State, error) {
	var state keyvalue.State
	if err := c.call(MethodState, HandleParams{Handle: h}, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// StateJSON refreshes a component and returns its state as encoded by the
// server.
func (c *Client) StateJSON(h Handle) ([]byte, error) {
	var raw string
	if err := c.call(MethodStateJSON, HandleParams{Handle: h}, &raw); err != nil {
		return nil, err
	}
	return []byte(raw), nil
}

// Timer performs a timer action on the server.
func (c *Client) Timer(action string) (*TimerResult, error) {
	var res TimerResult
	if err := c.call(MethodTimer, TimerParams{Action: action}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
