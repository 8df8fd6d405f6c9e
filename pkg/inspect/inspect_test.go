package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sourcegraph/jsonrpc2"

	"src.jubako.dev/pkg/render"
	"src.jubako.dev/pkg/session"
	"src.jubako.dev/pkg/testutil"
	"src.jubako.dev/pkg/vdom"
)

type fakeSource struct {
	infos []session.Info
	trees map[string]render.Snapshot
}

func (s fakeSource) Sessions() []session.Info { return s.infos }

func (s fakeSource) Tree(id string) (render.Snapshot, bool) {
	snap, ok := s.trees[id]
	return snap, ok
}

var started = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

var testSource = fakeSource{
	infos: []session.Info{
		{ID: "s1", Route: "counter", Remote: "127.0.0.1:1234", Started: started,
			Stats: render.Stats{Cycles: 3, Handles: 2, Styles: 1, MainNodes: 4}},
	},
	trees: map[string]render.Snapshot{
		"s1": {
			Main: []render.TreeNode{{
				Tag:      "div",
				Classes:  []string{"style-x"},
				HandleID: "h1",
				Events:   []vdom.EventKind{vdom.EventClick},
				Children: []render.TreeNode{{Text: "1"}},
			}},
			Portals: []render.TreeNode{{Text: "footer"}},
		},
	},
}

// serve starts the service on a socket in a temporary directory and returns
// the socket path. The service is stopped when the test ends.
func serve(t *testing.T, src Source) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sock")
	l, err := Listen(path)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, l, src) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Serve returned %v", err)
			}
		case <-time.After(testutil.Scaled(2 * time.Second)):
			t.Errorf("Serve did not return after cancel")
		}
	})
	return path
}

func dial(t *testing.T, path string) *Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testutil.Scaled(2*time.Second))
	defer cancel()
	c, err := Dial(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func callCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), testutil.Scaled(2*time.Second))
	t.Cleanup(cancel)
	return ctx
}

func TestSessions(t *testing.T) {
	c := dial(t, serve(t, testSource))
	infos, err := c.Sessions(callCtx(t))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(testSource.infos, infos); diff != "" {
		t.Errorf("Sessions (-want +got):\n%s", diff)
	}
}

func TestSessions_NoneIsEmptyList(t *testing.T) {
	c := dial(t, serve(t, fakeSource{}))
	var raw json.RawMessage
	if err := c.conn.Call(callCtx(t), "sessions", nil, &raw); err != nil {
		t.Fatal(err)
	}
	if string(raw) != "[]" {
		t.Errorf("got %s, want []", raw)
	}
}

func TestTree(t *testing.T) {
	c := dial(t, serve(t, testSource))
	snap, err := c.Tree(callCtx(t), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(testSource.trees["s1"], snap); diff != "" {
		t.Errorf("Tree (-want +got):\n%s", diff)
	}
}

func TestTree_NoSession(t *testing.T) {
	c := dial(t, serve(t, testSource))
	_, err := c.Tree(callCtx(t), "nope")
	if !errors.Is(err, ErrNoSession) {
		t.Errorf("got error %v, want ErrNoSession", err)
	}
}

var rpcErrorTests = []struct {
	name   string
	method string
	params any
	code   int64
}{
	{"unknown method", "shutdown", nil, jsonrpc2.CodeMethodNotFound},
	{"tree without params", "tree", nil, jsonrpc2.CodeInvalidParams},
	{"tree without id", "tree", map[string]string{}, jsonrpc2.CodeInvalidParams},
	{"tree with bad params", "tree", []int{1}, jsonrpc2.CodeInvalidParams},
}

func TestRPCErrors(t *testing.T) {
	c := dial(t, serve(t, testSource))
	for _, test := range rpcErrorTests {
		t.Run(test.name, func(t *testing.T) {
			err := c.conn.Call(callCtx(t), test.method, test.params, nil)
			var rpcErr *jsonrpc2.Error
			if !errors.As(err, &rpcErr) {
				t.Fatalf("got error %v, want *jsonrpc2.Error", err)
			}
			if rpcErr.Code != test.code {
				t.Errorf("got code %d, want %d", rpcErr.Code, test.code)
			}
		})
	}
}

func TestListen_InUse(t *testing.T) {
	path := serve(t, testSource)
	_, err := Listen(path)
	if !errors.Is(err, ErrInUse) {
		t.Errorf("got error %v, want ErrInUse", err)
	}
}

func TestListen_RemovesStaleSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sock")
	l, err := net.Listen("unix", path)
	if err != nil {
		t.Fatal(err)
	}
	// Keep the socket file around after closing the listener.
	l.(*net.UnixListener).SetUnlinkOnClose(false)
	l.Close()
	if _, err := os.Lstat(path); err != nil {
		t.Fatalf("stale socket was not left behind: %v", err)
	}

	l, err = Listen(path)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	l.Close()
}

func TestListen_Private(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sock")
	l, err := Listen(path)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := fi.Mode().Perm(); perm&0077 != 0 {
		t.Errorf("socket permission %v is accessible by others", perm)
	}
}

func TestServe_StopsClients(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sock")
	l, err := Listen(path)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, l, testSource) }()

	c := dial(t, path)
	if _, err := c.Sessions(callCtx(t)); err != nil {
		t.Fatal(err)
	}
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(testutil.Scaled(2 * time.Second)):
		t.Fatal("Serve did not return after cancel")
	}
	select {
	case <-c.conn.DisconnectNotify():
	case <-time.After(testutil.Scaled(2 * time.Second)):
		t.Error("client connection was not closed")
	}
}
