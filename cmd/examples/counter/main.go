// Command counter serves the counter example at /test-window/.
package main

import (
	"fmt"
	"os"

	"src.jubako.dev/pkg/examples/counter"
	"src.jubako.dev/pkg/prog"
	"src.jubako.dev/pkg/server"
	"src.jubako.dev/pkg/session"
)

func main() {
	fmt.Println("Open http://localhost:8080/test-window/ in your browser.")
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		&server.Program{Routes: map[string]session.Creator{
			"test-window": counter.Creator,
		}}))
}
