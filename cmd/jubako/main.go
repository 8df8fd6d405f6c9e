// Jubako serves applications that render on the server and display in the
// browser. The browser runs a small renderer that applies the command batches
// sent over a websocket and reports events back.
package main

import (
	"os"

	"src.jubako.dev/pkg/buildinfo"
	"src.jubako.dev/pkg/examples/counter"
	"src.jubako.dev/pkg/inspect"
	"src.jubako.dev/pkg/prog"
	"src.jubako.dev/pkg/server"
	"src.jubako.dev/pkg/session"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			&buildinfo.Program{}, &inspect.Program{},
			&server.Program{Routes: map[string]session.Creator{
				counter.Route: counter.Creator,
			}})))
}
