// Command tabledb opens a schema file and serves the REPL loop that
// accepts INSERT, SELECT, UPDATE, DELETE, and .exit.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"tabledb/internal/cache"
	"tabledb/internal/catalog"
	"tabledb/internal/executor"
	"tabledb/internal/repl"
	"tabledb/internal/telemetry"
)

var cli struct {
	Schema    string `arg:"" name:"schema" help:"Path to the schema descriptor file." type:"existingfile"`
	DataDir   string `name:"data-dir" short:"d" default:"data" help:"Directory holding each table's backing file."`
	CacheSize int64  `name:"cache-size" default:"1024" help:"Maximum number of cached equality SELECT results."`
	Verbose   bool   `name:"verbose" short:"v" help:"Enable debug logging on stderr."`
}

// requireSchemaArg prints the fixed missing-argument message and exits
// before kong.Parse ever sees the argument list, since kong's own usage
// output does not say this.
func requireSchemaArg(args []string) {
	for _, a := range args {
		if a == "" || a[0] == '-' {
			continue
		}
		return
	}
	fmt.Println("Must supply a database filename.")
	os.Exit(1)
}

func main() {
	requireSchemaArg(os.Args[1:])

	ctx := kong.Parse(&cli,
		kong.Name("tabledb"),
		kong.Description("A minimal SQL-like relational database REPL."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := telemetry.New(level)
	slog.SetDefault(logger)

	cat, err := catalog.Open(cli.Schema, cli.DataDir)
	ctx.FatalIfErrorf(err)
	logger.Info("startup", "schema", cli.Schema, "tables", len(cat.Tables()))

	rowCache, err := cache.New(cli.CacheSize)
	ctx.FatalIfErrorf(err)
	defer rowCache.Close()

	exec := executor.New(rowCache)
	session := repl.New(cat, exec, os.Stdin, os.Stdout, logger, true)
	if err := session.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
