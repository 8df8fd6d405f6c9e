// Package progtest contains utilities for testing [prog.Program]
// implementations.
package progtest

import (
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"src.jubako.dev/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitStatus int
	out, err   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + strconv.Quote(o.content)
	}
	return strconv.Quote(o.content)
}

// ThatJubako returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "jubako -bad-flag" exits with 2 would
// look like:
//
//	ThatJubako("-bad-flag").ExitsWith(2)
func ThatJubako(args ...string) Case {
	return Case{args: append([]string{"jubako"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin
// of the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations.
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit status.
func (c Case) ExitsWith(code int) Case {
	c.want.exitStatus = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to
// write exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.out = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program
// run to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.out = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to
// write exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.err = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program
// run to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.err = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(t, p, c.args, c.stdin)
			if r.exitStatus != c.want.exitStatus {
				t.Errorf("got exit status %v, want %v", r.exitStatus, c.want.exitStatus)
			}
			if !matchOutput(r.out, c.want.out) {
				t.Errorf("got stdout %q, want %v", r.out.content, c.want.out)
			}
			if !matchOutput(r.err, c.want.err) {
				t.Errorf("got stderr %q, want %v", r.err.content, c.want.err)
			}
		})
	}
}

// Run runs p with the given arguments and returns its exit status, stdout
// and stderr.
func Run(t *testing.T, p prog.Program, args ...string) (int, string, string) {
	t.Helper()
	r := run(t, p, append([]string{"jubako"}, args...), "")
	return r.exitStatus, r.out.content, r.err.content
}

func run(t *testing.T, p prog.Program, args []string, stdin string) result {
	t.Helper()
	inR, inW := pipe(t)
	outR, outW := pipe(t)
	errR, errW := pipe(t)

	go func() {
		inW.WriteString(stdin)
		inW.Close()
	}()
	outCh := readAllAsync(outR)
	errCh := readAllAsync(errR)

	exit := prog.Run([3]*os.File{inR, outW, errW}, args, p)
	outW.Close()
	errW.Close()
	inR.Close()
	return result{exit, output{content: <-outCh}, output{content: <-errCh}}
}

func pipe(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	return r, w
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(r)
		r.Close()
		ch <- string(b)
	}()
	return ch
}

func matchOutput(got, want output) bool {
	if want.partial {
		return strings.Contains(got.content, want.content)
	}
	return got.content == want.content
}
