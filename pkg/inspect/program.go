package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"src.jubako.dev/pkg/config"
	"src.jubako.dev/pkg/prog"
	"src.jubako.dev/pkg/render"
	"src.jubako.dev/pkg/session"
)

// Program is the -inspect subprogram. Without arguments it lists the live
// sessions of a running server; with a session id it shows the render trees
// of that session.
type Program struct {
	run    bool
	socket string
	json   *bool
	config *string
}

const dialTimeout = 5 * time.Second

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.run, "inspect", false,
		"List the sessions of a running server, or show the trees of the session given as argument")
	fs.StringVar(&p.socket, "inspect-socket", "",
		"Path of the inspection socket, overriding inspect.socket of the configuration")
	p.json = fs.JSON()
	p.config = fs.Config()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if !p.run {
		return prog.NextProgram()
	}
	if len(args) > 1 {
		return prog.BadUsage("at most one session id is allowed with -inspect")
	}
	socket := p.socket
	if socket == "" {
		cfg, err := config.Load(*p.config)
		if err != nil {
			return err
		}
		socket = cfg.Inspect.Socket
	}
	if socket == "" {
		return errors.New("no inspection socket; set inspect.socket or use -inspect-socket")
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	c, err := Dial(ctx, socket)
	if err != nil {
		return fmt.Errorf("cannot connect to inspection service: %w", err)
	}
	defer c.Close()

	if len(args) == 0 {
		infos, err := c.Sessions(ctx)
		if err != nil {
			return err
		}
		if *p.json {
			return writeJSON(fds[1], infos)
		}
		writeSessions(fds[1], infos)
		return nil
	}
	snap, err := c.Tree(ctx, args[0])
	if err != nil {
		return err
	}
	if *p.json {
		return writeJSON(fds[1], snap)
	}
	writeSnapshot(fds[1], snap)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSessions(w io.Writer, infos []session.Info) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tROUTE\tREMOTE\tSTARTED\tCYCLES\tHANDLES\tSTYLES\tDIRTY")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%v\n",
			info.ID, info.Route, info.Remote, info.Started.Format(time.RFC3339),
			info.Cycles, info.Handles, info.Styles, info.Dirty)
	}
	tw.Flush()
}

func writeSnapshot(w io.Writer, snap render.Snapshot) {
	fmt.Fprintln(w, "main:")
	writeNodes(w, snap.Main, 1)
	fmt.Fprintln(w, "portals:")
	writeNodes(w, snap.Portals, 1)
}

func writeNodes(w io.Writer, nodes []render.TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		if n.Tag == "" {
			fmt.Fprintf(w, "%s%q\n", indent, n.Text)
			continue
		}
		var sb strings.Builder
		sb.WriteString("<" + n.Tag)
		if len(n.Classes) > 0 {
			fmt.Fprintf(&sb, " class=%q", strings.Join(n.Classes, " "))
		}
		for _, prop := range n.Props {
			sb.WriteString(" " + prop)
		}
		if len(n.Events) > 0 {
			fmt.Fprintf(&sb, " on=%v", n.Events)
		}
		if len(n.PreventDefault) > 0 {
			fmt.Fprintf(&sb, " prevent=%v", n.PreventDefault)
		}
		sb.WriteString(">")
		fmt.Fprintln(w, indent+sb.String())
		writeNodes(w, n.Children, depth+1)
	}
}
