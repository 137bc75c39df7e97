// jlview is a terminal viewer for JSON-Lines log files, read from
// plain .json files or from .json entries inside .zip archives.
//
// Navigation: cursor keys, PageUp/PageDown, Home/End, Enter to drill
// into a line and again into a field, Esc to go back. Find text on
// the current screen with '/' or Ctrl-F, then cursor Down/Up for the
// next/previous match. Ctrl-S saves the current display settings.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"jlview/internal/settings"
	"jlview/internal/store"
	"jlview/internal/ui"
	"jlview/internal/util/logx"
	"jlview/internal/version"
)

func main() {
	logx.SetLevelFromEnv()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		fieldOrder  []string
		suppressed  []string
		showVersion bool
	)

	flags := pflag.NewFlagSet("jlview", pflag.ContinueOnError)
	flags.StringSliceVarP(&fieldOrder, "field-order", "f", nil, "fields displayed in front, separated by comma")
	flags.StringSliceVarP(&suppressed, "suppressed-fields", "s", nil, "suppressed fields, separated by comma")
	flags.BoolVar(&showVersion, "version", false, "print version and exit")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jlview [flags] FILE...\n\nFILE is a .json file in JSON-Lines format or a .zip archive containing such files.\n\nFlags:\n%s", flags.FlagUsages())
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	if showVersion {
		fmt.Println("jlview", version.String())
		return nil
	}

	cfg, err := settings.Load()
	if err != nil {
		return fmt.Errorf("failed to init settings: %w", err)
	}
	if fieldOrder != nil {
		cfg.FieldOrder = fieldOrder
	}
	if suppressed != nil {
		cfg.SuppressedFields = suppressed
	}

	st, err := store.Load(flags.Args())
	if err != nil {
		return err
	}

	logx.Infof("starting jlview %s", version.String())
	return ui.Run(st, cfg)
}
