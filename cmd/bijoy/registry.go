package main

import (
	"bytes"
	"flag"
	"fmt"
	"strings"

	"github.com/mitchellh/cli"
)

type factory func(cli.Ui, *Config) cli.Command

var registry = map[string]factory{
	"unicode": func(ui cli.Ui, conf *Config) cli.Command { return newConvertCmd(ui, conf, toUnicode) },
	"bijoy":   func(ui cli.Ui, conf *Config) cli.Command { return newConvertCmd(ui, conf, toBijoy) },
	"mixed":   func(ui cli.Ui, conf *Config) cli.Command { return newConvertCmd(ui, conf, mixedToUnicode) },
	"detect":  func(ui cli.Ui, conf *Config) cli.Command { return newDetectCmd(ui, conf) },
	"tokens":  func(ui cli.Ui, conf *Config) cli.Command { return newTokensCmd(ui, conf) },
	"serve":   func(ui cli.Ui, conf *Config) cli.Command { return newServeCmd(ui, conf) },
	"version": func(ui cli.Ui, conf *Config) cli.Command { return &versionCmd{UI: ui} },
}

func commandMap(ui cli.Ui, conf *Config) map[string]cli.CommandFactory {
	m := make(map[string]cli.CommandFactory, len(registry))
	for name, fn := range registry {
		thisFn := fn
		m[name] = func() (cli.Command, error) {
			return thisFn(ui, conf), nil
		}
	}
	return m
}

// usage appends the options of a flag set to a help text.
func usage(help string, fs *flag.FlagSet) string {
	var b bytes.Buffer
	b.WriteString(strings.TrimSpace(help))
	first := true
	fs.VisitAll(func(f *flag.Flag) {
		if first {
			b.WriteString("\n\nOptions:\n")
			first = false
		}
		fmt.Fprintf(&b, "\n  -%s", f.Name)
		if f.DefValue != "" && f.DefValue != "false" {
			fmt.Fprintf(&b, "=%s", f.DefValue)
		}
		fmt.Fprintf(&b, "\n     %s\n", f.Usage)
	})
	return b.String()
}

// commonFlags are understood by every converting command.
type commonFlags struct {
	trace string
}

func (cf *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&cf.trace, "trace", "error",
		"Trace level, one of error, info or debug.")
}
