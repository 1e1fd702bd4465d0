package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mitchellh/cli"
	"github.com/npillmayer/bijoy"
	"github.com/npillmayer/bijoy/internal/server"
	"github.com/npillmayer/bijoy/internal/tracing"
	"github.com/ryanuber/columnize"
	"golang.org/x/text/transform"
)

// --- Conversion ------------------------------------------------------------

type direction int

const (
	toUnicode direction = iota
	toBijoy
	mixedToUnicode
)

type convertCmd struct {
	UI     cli.Ui
	conf   *Config
	flags  *flag.FlagSet
	common commonFlags
	help   string
	dir    direction

	legacy bool
}

func newConvertCmd(ui cli.Ui, conf *Config, dir direction) *convertCmd {
	c := &convertCmd{UI: ui, conf: conf, dir: dir}
	c.init()
	return c
}

func (c *convertCmd) init() {
	c.flags = flag.NewFlagSet("", flag.ContinueOnError)
	c.flags.SetOutput(ioutil.Discard)
	switch c.dir {
	case toUnicode:
		c.flags.BoolVar(&c.legacy, "legacy", false,
			"Read Bijoy input as Windows-1252 bytes.")
	case toBijoy:
		c.flags.BoolVar(&c.legacy, "legacy", false,
			"Write Bijoy output as Windows-1252 bytes.")
	}
	c.common.register(c.flags)
	c.help = usage(convertHelp[c.dir], c.flags)
}

func (c *convertCmd) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.UI.Error(c.Help())
		return 1
	}
	tracing.UseGoLog(c.common.trace)
	conv := bijoy.Default()
	if words := c.flags.Args(); len(words) > 0 {
		return c.convertArgs(conv, strings.Join(words, " "))
	}
	var r io.Reader
	var w io.Writer = c.conf.Stdout
	var closer io.Closer
	switch {
	case c.dir == toUnicode && c.legacy:
		r = conv.NewLegacyReader(c.conf.Stdin)
	case c.dir == toUnicode:
		r = transform.NewReader(c.conf.Stdin, conv.NewDecoder())
	case c.dir == toBijoy && c.legacy:
		lw := conv.NewLegacyWriter(c.conf.Stdout)
		r, w, closer = c.conf.Stdin, lw, lw
	case c.dir == toBijoy:
		r = transform.NewReader(c.conf.Stdin, conv.NewEncoder())
	default:
		return c.convertMixedStream(conv)
	}
	_, err := io.Copy(w, r)
	if closer != nil && err == nil {
		err = closer.Close()
	}
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error converting input: %s", err))
		return 1
	}
	return 0
}

func (c *convertCmd) convertArgs(conv *bijoy.Converter, text string) int {
	switch c.dir {
	case toUnicode:
		c.UI.Output(conv.ToUnicode(text))
	case toBijoy:
		if !c.legacy {
			c.UI.Output(conv.ToBijoy(text))
			return 0
		}
		b, err := conv.EncodeLegacy(text)
		if err != nil {
			c.UI.Error(fmt.Sprintf("Error encoding output: %s", err))
			return 1
		}
		c.conf.Stdout.Write(append(b, '\n'))
	default:
		c.UI.Output(conv.ConvertMixed(text))
	}
	return 0
}

// Mixed text is converted run by run, which needs the whole input.
func (c *convertCmd) convertMixedStream(conv *bijoy.Converter) int {
	in, err := ioutil.ReadAll(c.conf.Stdin)
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error reading input: %s", err))
		return 1
	}
	io.WriteString(c.conf.Stdout, conv.ConvertMixed(string(in)))
	return 0
}

func (c *convertCmd) Synopsis() string {
	return convertSynopsis[c.dir]
}

func (c *convertCmd) Help() string {
	return c.help
}

var convertSynopsis = [...]string{
	toUnicode:      "Converts Bijoy text to Unicode",
	toBijoy:        "Converts Unicode text to Bijoy",
	mixedToUnicode: "Converts mixed Bijoy/Unicode text to Unicode",
}

var convertHelp = [...]string{
	toUnicode: `
Usage: bijoy unicode [options] [text ...]

  Converts Bijoy text to Unicode. Text is taken from the arguments or, if
  there are none, read from standard input line by line. Lines which
  already contain Bengali Unicode characters are left unchanged.
`,
	toBijoy: `
Usage: bijoy bijoy [options] [text ...]

  Converts Unicode text to Bijoy. Text is taken from the arguments or, if
  there are none, read from standard input line by line.
`,
	mixedToUnicode: `
Usage: bijoy mixed [options] [text ...]

  Converts text in which Bijoy and Unicode are mixed to Unicode. Every run
  of non-whitespace which looks like Bijoy is converted, everything else is
  left as it is.
`,
}

// --- Detection -------------------------------------------------------------

type detectCmd struct {
	UI     cli.Ui
	conf   *Config
	flags  *flag.FlagSet
	common commonFlags
	help   string
}

func newDetectCmd(ui cli.Ui, conf *Config) *detectCmd {
	c := &detectCmd{UI: ui, conf: conf}
	c.flags = flag.NewFlagSet("", flag.ContinueOnError)
	c.flags.SetOutput(ioutil.Discard)
	c.common.register(c.flags)
	c.help = usage(detectHelp, c.flags)
	return c
}

func (c *detectCmd) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.UI.Error(c.Help())
		return 1
	}
	tracing.UseGoLog(c.common.trace)
	text, err := inputText(c.flags.Args(), c.conf.Stdin)
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error reading input: %s", err))
		return 1
	}
	if bijoy.IsUnicode(text) {
		c.UI.Output("unicode")
	} else {
		c.UI.Output("not unicode")
	}
	return 0
}

func (c *detectCmd) Synopsis() string {
	return "Tells whether text contains Bengali Unicode characters"
}

func (c *detectCmd) Help() string {
	return c.help
}

const detectHelp = `
Usage: bijoy detect [options] [text ...]

  Prints "unicode" if the text contains at least one character of the
  Bengali Unicode block, "not unicode" otherwise.
`

// --- Tokens ----------------------------------------------------------------

type tokensCmd struct {
	UI     cli.Ui
	conf   *Config
	flags  *flag.FlagSet
	common commonFlags
	help   string
	all    bool
}

func newTokensCmd(ui cli.Ui, conf *Config) *tokensCmd {
	c := &tokensCmd{UI: ui, conf: conf}
	c.flags = flag.NewFlagSet("", flag.ContinueOnError)
	c.flags.SetOutput(ioutil.Discard)
	c.flags.BoolVar(&c.all, "all", false, "List whitespace runs as well.")
	c.common.register(c.flags)
	c.help = usage(tokensHelp, c.flags)
	return c
}

func (c *tokensCmd) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.UI.Error(c.Help())
		return 1
	}
	tracing.UseGoLog(c.common.trace)
	text, err := inputText(c.flags.Args(), c.conf.Stdin)
	if err != nil {
		c.UI.Error(fmt.Sprintf("Error reading input: %s", err))
		return 1
	}
	conv := bijoy.Default()
	result := []string{"Run|Kind|Converted"}
	for _, run := range bijoy.Runs(text) {
		kind := bijoy.ClassifyRun(run)
		if kind == bijoy.SpaceRun && !c.all {
			continue
		}
		converted := run
		if kind == bijoy.BijoyRun {
			converted = conv.ToUnicode(run)
		}
		result = append(result, fmt.Sprintf("%s|%s|%s", cell(run), kind, cell(converted)))
	}
	c.UI.Output(columnize.SimpleFormat(result))
	return 0
}

// cell quotes whitespace and column separators for table output.
func cell(s string) string {
	if strings.TrimSpace(s) == "" || strings.Contains(s, "|") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

func (c *tokensCmd) Synopsis() string {
	return "Lists the runs of text mixed conversion works on"
}

func (c *tokensCmd) Help() string {
	return c.help
}

const tokensHelp = `
Usage: bijoy tokens [options] [text ...]

  Splits text into runs of whitespace and non-whitespace, as mixed-text
  conversion does, and prints every run with its kind and its conversion.
`

// --- Serve -----------------------------------------------------------------

type serveCmd struct {
	UI     cli.Ui
	conf   *Config
	flags  *flag.FlagSet
	common commonFlags
	help   string
	addr   string
}

func newServeCmd(ui cli.Ui, conf *Config) *serveCmd {
	c := &serveCmd{UI: ui, conf: conf}
	c.flags = flag.NewFlagSet("", flag.ContinueOnError)
	c.flags.SetOutput(ioutil.Discard)
	c.flags.StringVar(&c.addr, "addr", "",
		"Address to listen on. Defaults to the port in environment variable PORT, or 3000.")
	c.common.register(c.flags)
	c.help = usage(serveHelp, c.flags)
	return c
}

func (c *serveCmd) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.UI.Error(c.Help())
		return 1
	}
	tracing.UseGoLog(c.common.trace)
	addr := c.addr
	if addr == "" {
		addr = server.Addr(os.Getenv("PORT"))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	c.UI.Info(fmt.Sprintf("Server running on %s", addr))
	if err := server.New(nil).ListenAndServe(ctx, addr); err != nil {
		c.UI.Error(fmt.Sprintf("Error running server: %s", err))
		return 1
	}
	return 0
}

func (c *serveCmd) Synopsis() string {
	return "Runs the HTTP conversion service"
}

func (c *serveCmd) Help() string {
	return c.help
}

const serveHelp = `
Usage: bijoy serve [options]

  Runs an HTTP service offering conversion to web clients and spreadsheet
  web service calls. The service stops on SIGINT or SIGTERM.
`

// --- Version ---------------------------------------------------------------

type versionCmd struct {
	UI cli.Ui
}

func (c *versionCmd) Run(_ []string) int {
	c.UI.Output(fmt.Sprintf("bijoy v%s", Version))
	return 0
}

func (c *versionCmd) Synopsis() string {
	return "Prints the version"
}

func (c *versionCmd) Help() string {
	return "Usage: bijoy version"
}

// --- Helpers ---------------------------------------------------------------

func inputText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := ioutil.ReadAll(stdin)
	return string(b), err
}
