package session

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.jubako.dev/pkg/vdom"
)

func TestQueue_Order(t *testing.T) {
	q := newQueue()
	for i := 0; i < 3; i++ {
		if err := q.push(i); err != nil {
			t.Fatal(err)
		}
	}
	if n := q.len(); n != 3 {
		t.Errorf("len() = %d, want 3", n)
	}
	select {
	case <-q.notify:
	default:
		t.Error("no notification after push")
	}
	if diff := cmp.Diff([]vdom.Msg{0, 1, 2}, q.drain()); diff != "" {
		t.Errorf("drain (-want +got):\n%s", diff)
	}
	if got := q.drain(); len(got) != 0 {
		t.Errorf("second drain = %v, want empty", got)
	}
}

func TestQueue_ConcurrentPushes(t *testing.T) {
	q := newQueue()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.push(j)
			}
		}()
	}
	wg.Wait()
	if n := len(q.drain()); n != 800 {
		t.Errorf("drained %d messages, want 800", n)
	}
}

func TestQueue_Close(t *testing.T) {
	q := newQueue()
	q.push("dropped")
	q.close()
	if err := q.push("late"); !errors.Is(err, ErrClosed) {
		t.Errorf("push after close = %v, want ErrClosed", err)
	}
	if n := q.len(); n != 0 {
		t.Errorf("len() after close = %d, want 0", n)
	}
}
