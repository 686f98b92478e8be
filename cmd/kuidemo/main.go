// Command kuidemo drives the KUI manager against the real terminal: it puts
// stdin into raw mode, loads any saved user macros, and prints each
// resolved key token until EOF/Ctrl-C. It exists to exercise
// kui/source.TTYSource and golang.org/x/term end-to-end; it is not itself
// part of the matching core (spec.md §1 scope).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/forslund/cgdb-kui/internal/klog"
	"github.com/forslund/cgdb-kui/key"
	"github.com/forslund/cgdb-kui/kui"
	"github.com/forslund/cgdb-kui/kui/source"
	"github.com/forslund/cgdb-kui/kui/term"
	"github.com/forslund/cgdb-kui/macroconfig"
	"github.com/forslund/cgdb-kui/manager"
)

type options struct {
	Macros string `short:"m" long:"macros" description:"path to a YAML macro file to load/save" value-name:"path" default:"kui-macros.yaml"`
	Debug  bool   `long:"debug" description:"print resolved key names and enable debug logging"`
}

func parseOptions(args []string) (*options, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options]"
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return &opts, nil
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
	log := klog.New(opts.Debug)

	ttySrc, err := source.NewTTYSource(os.Stdin)
	if err != nil {
		log.WithError(err).Fatal("kuidemo: open terminal source")
	}

	mgr := manager.New(ttySrc, log)

	userMacros := kui.NewMapSet(term.Symbolize)
	if err := macroconfig.Load(opts.Macros, userMacros); err != nil {
		log.WithError(err).Fatal("kuidemo: load macros")
	}
	mgr.AddMapSet(userMacros)

	if err := run(mgr, opts, log); err != nil {
		log.WithError(err).Error("kuidemo: exiting")
	}

	if err := macroconfig.Save(opts.Macros, userMacros); err != nil {
		log.WithError(err).Warn("kuidemo: failed to save macros")
	}
	if err := mgr.Close(); err != nil {
		log.WithError(err).Warn("kuidemo: failed to close manager")
	}
}

// run drives the read loop and the signal watcher concurrently, joined
// through an errgroup so either one stopping (Ctrl-C, or the read loop
// hitting a real source error) cancels the other.
func run(mgr *manager.Manager, opts *options, log *logrus.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var g errgroup.Group
	g.Go(func() error {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
		return nil
	})
	g.Go(func() error {
		defer cancel()
		for {
			tok, err := mgr.GetKey(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
			if tok == key.Zero {
				continue
			}
			// Raw mode turns off the tty's signal keys, so Ctrl-C and
			// Ctrl-D arrive here as the bytes 0x03 and 0x04.
			if tok == 0x03 || tok == 0x04 {
				return nil
			}
			if opts.Debug {
				fmt.Println(term.Pretty(key.NewSequence(tok)))
			} else {
				fmt.Printf("%d\n", tok)
			}
		}
	})
	return g.Wait()
}
