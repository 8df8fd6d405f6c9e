package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/net/websocket"

	"src.jubako.dev/pkg/session"
	"src.jubako.dev/pkg/testutil"
	"src.jubako.dev/pkg/vdom"
)

type greeter struct {
	disconnected *atomic.Int32
}

func (greeter) Update(vdom.Msg) session.DirtyFlag { return session.NoRender }

func (greeter) View() vdom.Node {
	return vdom.El("p", vdom.Text("hello")).WithStyle("color: green")
}

func (g greeter) Disconnected() { g.disconnected.Add(1) }

func setup(t *testing.T, opts Options) (*Server, *httptest.Server, *atomic.Int32) {
	t.Helper()
	disconnected := new(atomic.Int32)
	s := New(opts)
	err := s.Route("/greet/", session.CreatorFunc(func(*session.Context) session.App {
		return greeter{disconnected}
	}))
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts, disconnected
}

func dial(t *testing.T, ts *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + path
	conn, err := websocket.Dial(url, "", ts.URL)
	if err != nil {
		t.Fatal(err)
	}
	conn.SetDeadline(time.Now().Add(testutil.Scaled(5 * time.Second)))
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(testutil.Scaled(2 * time.Second))
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func TestServer_Websocket(t *testing.T) {
	s, ts, disconnected := setup(t, Options{})
	conn := dial(t, ts, "/greet/ws")

	if err := websocket.Message.Send(conn, `"DRAW"`); err != nil {
		t.Fatal(err)
	}
	var data string
	if err := websocket.Message.Receive(conn, &data); err != nil {
		t.Fatal(err)
	}
	var batch struct {
		Main []struct {
			Type string `json:"type"`
		} `json:"main"`
		Styles []struct {
			Type    string `json:"type"`
			Content struct {
				ClassName string `json:"class_name"`
				Value     string `json:"value"`
			} `json:"content"`
		} `json:"styles"`
	}
	if err := json.Unmarshal([]byte(data), &batch); err != nil {
		t.Fatalf("batch %q: %v", data, err)
	}
	if len(batch.Main) != 1 || batch.Main[0].Type != "InsertElement" {
		t.Errorf("main commands = %+v, want one InsertElement", batch.Main)
	}
	if len(batch.Styles) != 1 || batch.Styles[0].Type != "AddStyle" ||
		!strings.HasPrefix(batch.Styles[0].Content.ClassName, "style-") {
		t.Errorf("style commands = %+v, want one AddStyle", batch.Styles)
	}

	infos := s.Sessions()
	if len(infos) != 1 || infos[0].Route != "greet" || infos[0].Cycles != 1 || infos[0].Styles != 1 {
		t.Errorf("Sessions() = %+v", infos)
	}
	if _, ok := s.Session(infos[0].ID); !ok {
		t.Errorf("Session(%q) not found", infos[0].ID)
	}

	conn.Close()
	waitFor(t, "session to end", func() bool { return len(s.Sessions()) == 0 })
	if n := disconnected.Load(); n != 1 {
		t.Errorf("Disconnected called %d times, want 1", n)
	}
}

func TestServer_SessionsAreIsolated(t *testing.T) {
	s, ts, _ := setup(t, Options{})
	a := dial(t, ts, "/greet/ws")
	b := dial(t, ts, "/greet/ws")
	for _, conn := range []*websocket.Conn{a, b} {
		websocket.Message.Send(conn, `"DRAW"`)
		var data string
		if err := websocket.Message.Receive(conn, &data); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(data, "InsertElement") {
			t.Errorf("first batch of each session should insert the tree, got %s", data)
		}
	}
	if n := len(s.Sessions()); n != 2 {
		t.Errorf("%d sessions, want 2", n)
	}
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestServer_Assets(t *testing.T) {
	_, ts, _ := setup(t, Options{})
	for _, path := range []string{"/greet/", "/greet/index.html"} {
		resp, body := get(t, ts.URL+path)
		if resp.StatusCode != http.StatusOK || !strings.Contains(body, "jubako.js") {
			t.Errorf("GET %s -> %d %q", path, resp.StatusCode, body)
		}
		if resp.Request.URL.Path != path {
			t.Errorf("GET %s redirected to %s", path, resp.Request.URL.Path)
		}
	}
	resp, body := get(t, ts.URL+"/greet/jubako.js")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "WebSocket") {
		t.Errorf("GET /greet/jubako.js -> %d", resp.StatusCode)
	}
	if resp, _ := get(t, ts.URL+"/greet/missing.css"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET missing asset -> %d, want 404", resp.StatusCode)
	}
	if resp, _ := get(t, ts.URL+"/other/"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET unregistered route -> %d, want 404", resp.StatusCode)
	}
}

func TestServer_AssetsDir(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "index.html"), []byte("custom page"), 0644)
	os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0644)
	_, ts, _ := setup(t, Options{Assets: dir})

	if _, body := get(t, ts.URL+"/greet/"); body != "custom page" {
		t.Errorf("GET /greet/ -> %q, want custom page", body)
	}
	if _, body := get(t, ts.URL+"/greet/app.css"); body != "body{}" {
		t.Errorf("GET /greet/app.css -> %q", body)
	}
	if resp, _ := get(t, ts.URL+"/greet/jubako.js"); resp.StatusCode != http.StatusOK {
		t.Errorf("built-in script not served alongside assets dir: %d", resp.StatusCode)
	}
}

func TestServer_RouteRejectsEmptyPath(t *testing.T) {
	s := New(Options{})
	for _, path := range []string{"", "/", "//"} {
		err := s.Route(path, session.CreatorFunc(func(*session.Context) session.App { return nil }))
		if !errors.Is(err, ErrEmptyPath) {
			t.Errorf("Route(%q) -> %v, want ErrEmptyPath", path, err)
		}
	}
}

func TestServer_Shutdown(t *testing.T) {
	s, ts, disconnected := setup(t, Options{})
	conn := dial(t, ts, "/greet/ws")
	websocket.Message.Send(conn, `"DRAW"`)
	var data string
	if err := websocket.Message.Receive(conn, &data); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), testutil.Scaled(2*time.Second))
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown -> %v", err)
	}
	if n := disconnected.Load(); n != 1 {
		t.Errorf("Disconnected called %d times, want 1", n)
	}
	if err := websocket.Message.Receive(conn, &data); err == nil {
		t.Errorf("connection still open after Shutdown, got %q", data)
	}
	// New connections are refused a session, and the app created for it is
	// told that it has ended.
	late := dial(t, ts, "/greet/ws")
	if err := websocket.Message.Receive(late, &data); err == nil {
		t.Errorf("late connection got %q", data)
	}
	waitFor(t, "refused session to end", func() bool { return disconnected.Load() == 2 })
}

func TestRun(t *testing.T) {
	l, err := Listen(context.Background(), "127.0.0.1:0", true)
	if err != nil {
		t.Fatal(err)
	}
	s := New(Options{})
	ready := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(l, RunOpts{Ready: ready, Signals: sigCh}) }()
	<-ready

	resp, err := http.Get("http://" + l.Addr().String() + "/nothing")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET -> %d, want 404", resp.StatusCode)
	}

	sigCh <- os.Interrupt
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run -> %v", err)
		}
	case <-time.After(testutil.Scaled(2 * time.Second)):
		t.Fatal("Run did not return after a signal")
	}
}
