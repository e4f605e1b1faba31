package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/germanamz/evalbridge/pkg/mcpserver"
	"github.com/germanamz/evalbridge/pkg/modeladapter"
)

const version = "0.1.0"

// options collects the flags shared by every command.
type options struct {
	configPath string
	envFile    string
	model      string
	verbose    bool
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "path to configuration file (default: evalbridge.yaml if present)")
	fs.StringVar(&o.envFile, "env", ".env", "path to .env file (ignored if missing)")
	fs.StringVar(&o.model, "model", "", "model identifier (overrides config and OPENROUTER_MODEL)")
	fs.BoolVar(&o.verbose, "verbose", false, "log at debug level")
}

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		var opts options
		serveCmd := flag.NewFlagSet("serve", flag.ExitOnError)
		serveCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: evalbridge serve [flags]\n\nServe the model as MCP tools over stdio.\n\nFlags:\n")
			serveCmd.PrintDefaults()
		}
		opts.register(serveCmd)
		_ = serveCmd.Parse(os.Args[2:])

		if err := runServe(opts); err != nil {
			printError(err)
			os.Exit(1)
		}

		return
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: evalbridge [flags]\n       evalbridge serve [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  serve   Serve the model as MCP tools over stdio\n")
	}

	var opts options
	opts.register(flag.CommandLine)
	prompt := flag.String("prompt", "", "prompt to send (default: read stdin, or ask interactively); an empty prompt is rejected")
	async := flag.Bool("async", false, "generate asynchronously behind a progress spinner")
	render := flag.Bool("render", false, "render the reply as markdown")
	flag.Parse()

	if err := runGenerate(opts, *prompt, *async, *render); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func runGenerate(opts options, prompt string, async, render bool) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	model, err := setup(opts, os.Stderr)
	if err != nil {
		return err
	}

	prompt, err = resolvePrompt(prompt, os.Stdin, stdinIsTerminal())
	if err != nil {
		return err
	}

	var text string
	if async {
		text, err = awaitWithSpinner(ctx, model, prompt)
	} else {
		text, err = model.Generate(ctx, prompt)
	}
	if err != nil {
		return err
	}

	return printReply(os.Stdout, text, render)
}

func runServe(opts options) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	model, err := setup(opts, os.Stderr)
	if err != nil {
		return err
	}

	return serve(ctx, model, os.Stdin, os.Stdout)
}

func serve(ctx context.Context, model modeladapter.Generator, in io.Reader, out io.Writer) error {
	srv := mcpserver.New("evalbridge", version, model)

	return srv.Serve(ctx, in, out)
}
