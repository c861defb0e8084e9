// Command superhex builds a super-hex board and logs its shape.
//
//	superhex -config superhex.yaml -radius 5 -dump
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/superhex/board"
	"github.com/katalvlaran/superhex/internal/config"
	"github.com/katalvlaran/superhex/internal/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("superhex", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", "", "path to YAML config file")
	radius := fs.Int("radius", 0, "board radius (overrides config)")
	dump := fs.Bool("dump", false, "log every field at debug level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if *radius != 0 {
		cfg.Board.Radius = *radius
	}
	if *dump {
		cfg.Board.Dump = true
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(cfg.Log, out)

	var opts []board.Option
	if cfg.Board.Validate {
		opts = append(opts, board.WithValidation())
	}
	b, err := board.New(cfg.Board.Radius, opts...)
	if err != nil {
		log.WithError(err).Error("board construction failed")
		return err
	}

	log.WithFields(logrus.Fields{
		"radius":    b.Radius(),
		"fields":    b.Len(),
		"center":    b.Center().Value(),
		"validated": cfg.Board.Validate,
	}).Info("board built")

	for d := 0; d <= b.Radius(); d++ {
		ring := b.Ring(d)
		log.WithFields(logrus.Fields{
			"ring":   d,
			"fields": len(ring),
			"value":  ring[0].Value(),
		}).Info("ring")
	}

	if cfg.Board.Dump {
		for _, f := range b.Fields() {
			log.WithFields(logrus.Fields{
				"q":      f.Coords().Q,
				"r":      f.Coords().R,
				"value":  f.Value(),
				"degree": f.Degree(),
			}).Debug("field")
		}
	}
	return nil
}
