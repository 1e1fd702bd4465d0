/*
Command bijoy converts Bengali text between Bijoy and Unicode.

Usage:

	bijoy <command> [options] [text ...]

Commands are

	unicode   convert Bijoy text to Unicode
	bijoy     convert Unicode text to Bijoy
	mixed     convert mixed Bijoy/Unicode text to Unicode
	detect    tell whether text contains Bengali Unicode characters
	tokens    list the runs mixed-text conversion works on
	serve     run the HTTP conversion service
	version   print the version

Text is taken from the command line arguments or, if there are none, from
standard input. Run "bijoy <command> -help" for the options of a command.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/cli"
)

// Version is the version of the bijoy command.
const Version = "0.1.0"

// Config holds the streams a command works on.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func main() {
	os.Exit(Cmd(&Config{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}, os.Args[1:]...))
}

// Cmd runs a bijoy sub-command and returns its exit code.
func Cmd(conf *Config, args ...string) int {
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "-v" || arg == "--version" {
			args = []string{"version"}
			break
		}
	}
	ui := &cli.BasicUi{Reader: conf.Stdin, Writer: conf.Stdout, ErrorWriter: conf.Stderr}
	cmds := commandMap(ui, conf)
	c := &cli.CLI{
		Args:     args,
		Commands: cmds,
		Name:     "bijoy",
		Version:  Version,
		HelpFunc: cli.BasicHelpFunc("bijoy"),
	}
	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(conf.Stderr, "Error executing CLI: %s\n", err.Error())
		return 1
	}
	return exitCode
}
