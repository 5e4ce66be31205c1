package bridge

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npratt/splitchance/internal/testutil"
	"github.com/npratt/splitchance/internal/timing"
)

func startServer(t *testing.T) (*Server, *Client) {
	t.Helper()
	sock := testutil.ShortSocketPath(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := testutil.NewRun(10, 7, 4)
	server := NewServer(NewRegistry(), timing.NewTimer(r), sock, logger)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(ctx)
	}()
	testutil.WaitForSocket(t, sock, 2*time.Second)

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})
	return server, NewClient(sock)
}

func TestServerRoundTrip(t *testing.T) {
	server, client := startServer(t)
	assert.True(t, server.Running())

	h, err := client.New()
	require.NoError(t, err)

	state, err := client.State(h)
	require.NoError(t, err)
	assert.Equal(t, "Reset Chance", state.Key)
	assert.Equal(t, "60.0%", state.Value)

	res, err := client.Timer("start")
	require.NoError(t, err)
	assert.Equal(t, "running", res.Phase)
	assert.Equal(t, 0, res.SplitIndex)

	state, err = client.State(h)
	require.NoError(t, err)
	assert.Equal(t, "36.4%", state.Value)

	res, err = client.Timer("split")
	require.NoError(t, err)
	assert.Equal(t, 1, res.SplitIndex)

	data, err := client.StateJSON(h)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "42.9%", got["value"])

	res, err = client.Timer("reset")
	require.NoError(t, err)
	assert.Equal(t, "not-running", res.Phase)
	assert.Equal(t, timing.NoSplit, res.SplitIndex)

	require.NoError(t, client.Drop(h))
	_, err = client.State(h)
	assert.ErrorContains(t, err, "unknown component handle")
}

func TestServerTimerErrors(t *testing.T) {
	_, client := startServer(t)

	_, err := client.Timer("split")
	assert.ErrorContains(t, err, "invalid timer transition")

	_, err = client.Timer("teleport")
	assert.ErrorContains(t, err, "unknown timer action")
}

func TestServerUnknownMethod(t *testing.T) {
	_, client := startServer(t)

	err := client.call("explode", nil, nil)
	assert.ErrorContains(t, err, "unknown method: explode")
}

func TestServerMalformedRequest(t *testing.T) {
	server, _ := startServer(t)

	conn, err := net.Dial("unix", server.sockPath)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	_, err = conn.Write([]byte("not json\n"))
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.NewDecoder(conn).Decode(&resp))
	assert.Contains(t, resp.Error, "decode error")
}

func TestServerStopWaitsForConnections(t *testing.T) {
	sock := testutil.ShortSocketPath(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(NewRegistry(), timing.NewTimer(testutil.NewRun(3, 2)), sock, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(ctx)
	}()
	testutil.WaitForSocket(t, sock, 2*time.Second)

	conn, err := net.Dial("unix", sock)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()
	// Give the accept loop time to hand the connection off.
	time.Sleep(50 * time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		t.Fatalf("Start returned with a request in flight: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	_, err = conn.Write([]byte(`{"method":"new","id":7}` + "\n"))
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.NewDecoder(conn).Decode(&resp))
	assert.Empty(t, resp.Error)
	assert.Equal(t, 7, resp.ID)

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.False(t, server.Running())
}

func TestServerStartTwice(t *testing.T) {
	server, _ := startServer(t)
	assert.Error(t, server.Start(context.Background()))
}

func TestServerStopIdempotent(t *testing.T) {
	sock := testutil.ShortSocketPath(t)
	server := NewServer(NewRegistry(), timing.NewTimer(testutil.NewRun(1, 1)), sock, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NoError(t, server.Stop())
	assert.False(t, server.Running())
}

func TestClientNotRunning(t *testing.T) {
	client := NewClient(testutil.ShortSocketPath(t))
	client.SetTimeout(100 * time.Millisecond)

	_, err := client.New()
	assert.ErrorContains(t, err, "bridge not running")
}
