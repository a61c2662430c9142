// Copyright 2026 The SentServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the sentence search server and CLI [DBG] application.

Note: This is a BETA release. APIs and functionality may rapidly change.

SentServe indexes collections of sentences in memory and answers full-text
queries and word-prefix suggestions over them. It can operate as a MessagePack
IPC server for integration with editors and other host processes, or as a CLI
application for testing and debugging.

Each indexed sentence is tokenized into words; the engine keeps an inverted
dictionary from words to sentence positions along with occurrence counts.
Queries match sentences by exact word, word prefix, or substring depending on
the options, and results can be ranked by relevance score.

# Usage

Start the server with default settings:

	sentserve

Load a corpus file and enable debug mode:

	sentserve -data /path/to/sentences.txt -d

Run in CLI mode for interactive testing:

	sentserve -c -ranked -min 1

The corpus file is a plain text file with one sentence per line. Blank lines
and lines starting with '#' are skipped.

# Configuration

Runtime configuration is managed through a TOML file with engine, server and
CLI sections:

	[engine]
	min_match_count = 3
	case_sensitive = false
	strict_tokens = false

	[server]
	max_query_len = 256
	max_prefix_len = 60
	max_results = 64

	[cli]
	default_ranked = true
	default_min_match = 1

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests carry a
command name plus its arguments; responses echo the request id and include
microsecond timing information.

Send a search request:

	{"id": "req1", "cmd": "search", "q": "quick fox", "r": true}

Receive matching sentences in ranked order:

	{"id": "req1", "res": ["The quick brown fox"], "c": 1, "t": 145}

Suggestion requests return dictionary words for a prefix:

	{"id": "req2", "cmd": "suggest", "p": "qu"}

Collection management commands cover init, add, reset, stats and health.

# Server Mode

The default mode starts a MessagePack IPC server that processes requests from
stdin and writes responses to stdout. Logging goes to stderr so the transport
stream stays clean.

	srv := server.NewServer(ix, appConfig)
	err := srv.Start()

The server handles request parsing, length validation and response formatting,
and truncates result sets to the configured maximum.

# CLI Mode

CLI mode provides an interactive interface for testing and debugging. It reads
queries from stdin and prints matching sentences; lines starting with '/' are
treated as suggestion prefixes.

	inputHandler := cli.NewInputHandler(ix, ranked, partial, minMatch, limit)
	err := inputHandler.Start()

This mode is primarily intended for development and testing new features
before deploying to server mode.

# Engine

The core functionality is provided by the index package, which implements the
dictionary, search, suggestion and merge operations.

	ix := index.New(cfg)
	err := ix.Initialize(sentences)
	matches := ix.Search("quick fox", index.SearchOptions{Ranked: true})

Observers can subscribe to engine events (init, search, suggest, merge, reset)
to receive operation counts.

# Command Line Flags

The following flags control application behavior:

	-data string
	    Corpus file with one sentence per line
	-config string
	    Path to the TOML config file
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-ranked
	    Rank CLI results by relevance score
	-partial
	    Enable substring matching in CLI mode
	-min int
	    Minimum number of distinct matched words per sentence
	-limit int
	    Maximum results printed per CLI query
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/sentserve/sentserve/internal/cli"
	"github.com/sentserve/sentserve/pkg/config"
	"github.com/sentserve/sentserve/pkg/corpus"
	"github.com/sentserve/sentserve/pkg/index"
	"github.com/sentserve/sentserve/pkg/server"
)

const (
	Version = "0.3.0-beta"
	AppName = "sentserve"
	gh      = "https://github.com/sentserve/sentserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	dataFile := flag.String("data", "", "Corpus file with one sentence per line")
	configPath := flag.String("config", "sentserve-config.toml", "Path to the TOML config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	ranked := flag.Bool("ranked", defaultConfig.CLI.DefaultRanked, "Rank CLI results by relevance score")
	partial := flag.Bool("partial", defaultConfig.CLI.DefaultPartial, "Enable substring matching in CLI mode")
	minMatch := flag.Int("min", defaultConfig.CLI.DefaultMinMatch, "Minimum number of distinct matched words per sentence")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Maximum results printed per CLI query")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()

		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["version"] = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ SentServe ] Serves really fast sentence search!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig := config.Init(*configPath)
	log.Debugf("Using config file: (%s)", *configPath)

	ix := index.New(appConfig.Engine.IndexConfig())
	registerEventLogging(ix)

	if *dataFile != "" {
		sentences, err := corpus.LoadFile(*dataFile)
		if err != nil {
			log.Fatalf("Failed to load corpus: %v", err)
			os.Exit(1)
		}
		if err := ix.Initialize(sentences); err != nil {
			log.Fatalf("Failed to init index: %v", err)
			os.Exit(1)
		}
		log.Debugf("Indexed %d sentences from (%s)", ix.Len(), *dataFile)
	} else {
		log.Warn("No corpus file specified, starting with an empty index...")
	}

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"ranked", *ranked,
			"partial", *partial,
			"minMatch", *minMatch,
			"limit", *limit)

		inputHandler := cli.NewInputHandler(ix, *ranked, *partial, *minMatch, *limit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(ix, appConfig)

	showStartupInfo(*dataFile)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// registerEventLogging wires debug listeners for every engine event.
func registerEventLogging(ix *index.Index) {
	ix.On(index.EventInit, func(ev index.Event) {
		log.Debugf("event %s: %d sentences", ev.Kind, ev.Count)
	})
	ix.On(index.EventSearch, func(ev index.Event) {
		log.Debugf("event %s: %d matches", ev.Kind, ev.Count)
	})
	ix.On(index.EventSuggest, func(ev index.Event) {
		log.Debugf("event %s: %d words", ev.Kind, ev.Count)
	})
	ix.On(index.EventMerge, func(ev index.Event) {
		log.Debugf("event %s: %d source sentences", ev.Kind, ev.Count)
	})
	ix.On(index.EventReset, func(ev index.Event) {
		log.Debugf("event %s", ev.Kind)
	})
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataFile string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, " SentServe ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	if dataFile != "" {
		log.Infof("corpus: ( %s )", dataFile)
	}
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
