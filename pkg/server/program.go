package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"sort"

	"src.jubako.dev/pkg/config"
	"src.jubako.dev/pkg/css"
	"src.jubako.dev/pkg/inspect"
	"src.jubako.dev/pkg/logutil"
	"src.jubako.dev/pkg/prog"
	"src.jubako.dev/pkg/render"
	"src.jubako.dev/pkg/session"
)

// Program is the subprogram that runs the server. It always runs, so it
// should come last in a composite program.
type Program struct {
	// Routes maps route paths to the creators of their applications.
	Routes map[string]session.Creator

	listen string
	config *string

	// Used in tests.
	runOpts   RunOpts
	listening func(net.Addr)
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.StringVar(&p.listen, "listen", "",
		"Address to listen on, overriding listen of the configuration")
	p.config = fs.Config()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not allowed")
	}
	cfg, err := config.Load(*p.config)
	if err != nil {
		return err
	}
	if p.listen != "" {
		cfg.Listen = p.listen
	}
	if err := setupLogging(fds[2], cfg.Log); err != nil {
		return err
	}

	styles, closeStyles, err := openStyles(cfg.CSS.Cache)
	if err != nil {
		return err
	}
	defer closeStyles()

	opts := Options{Assets: cfg.Assets, Render: cfg.RenderOptions()}
	opts.Render.Styles = styles
	s := New(opts)
	paths := make([]string, 0, len(p.Routes))
	for path := range p.Routes {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		if err := s.Route(path, p.Routes[path]); err != nil {
			return fmt.Errorf("route %q: %w", path, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l, err := Listen(ctx, cfg.Listen, cfg.ReusePort)
	if err != nil {
		return err
	}
	if p.listening != nil {
		p.listening(l.Addr())
	}

	if cfg.Inspect.Socket != "" {
		il, err := inspect.Listen(cfg.Inspect.Socket)
		if err != nil {
			l.Close()
			return fmt.Errorf("inspection service: %w", err)
		}
		logger.Info("inspection service listening", "socket", cfg.Inspect.Socket)
		inspectDone := make(chan struct{})
		go func() {
			defer close(inspectDone)
			if err := inspect.Serve(ctx, il, s); err != nil {
				logger.Error("inspection service stopped", "error", err)
			}
		}()
		defer func() {
			cancel()
			<-inspectDone
		}()
	}

	runOpts := p.runOpts
	if runOpts.ShutdownTimeout == 0 {
		runOpts.ShutdownTimeout = cfg.ShutdownTimeout
	}
	return s.Run(l, runOpts)
}

// setupLogging applies the logging configuration. An output file given with
// the -log flag takes precedence over the file in the configuration.
func setupLogging(stderr *os.File, c config.Log) error {
	level, err := logutil.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	logutil.SetLevel(level)
	if logutil.HasOutputFile() {
		return nil
	}
	format, err := logutil.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	return logutil.ConfigureFile(c.File,
		logutil.Options{Output: stderr, Format: format, Journal: true})
}

// openStyles returns the style compiler: the minifier, behind the persistent
// cache if path is not empty.
func openStyles(path string) (render.StyleCompiler, func(), error) {
	if path == "" {
		return css.NewMinifier(), func() {}, nil
	}
	cache, err := css.OpenCache(path)
	if err != nil {
		return nil, nil, fmt.Errorf("css cache: %w", err)
	}
	logger.Info("css cache opened", "path", path, "rules", cache.Len())
	return cache, func() {
		if err := cache.Close(); err != nil {
			logger.Warn("cannot close css cache", "error", err)
		}
	}, nil
}
