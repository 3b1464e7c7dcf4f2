// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Command radq is a demo for the radixheap library: it loads an edge-list
// graph and reports shortest paths computed with a radix-heap Dijkstra.
package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"radixheap/internal/config"
	"radixheap/pathfind"
)

func main() {
	setupFlagsAndEnvParser()

	cfg := mustParseConfig()

	log := setupLogger(cfg)

	graphPath := viper.GetString("graph")
	if graphPath == "" {
		graphPath = cfg.Run.GraphPath
	}
	if graphPath == "" {
		errExit("no graph file, set --graph or the 'graph' config key")
	}

	f, err := os.Open(graphPath)
	if err != nil {
		errExit("failed to open graph file:", err)
	}

	g := lo.Must(pathfind.LoadGraph(f))
	lo.Must0(f.Close())

	log.Info().
		Str("file", graphPath).
		Int("vertices", g.Order()).
		Int("edges", g.Size()).
		Msg("graph loaded")

	source := viper.GetUint32("source")
	if !pflag.CommandLine.Changed("source") && cfg.Run.Source != 0 {
		source = cfg.Run.Source
	}

	solver := pathfind.NewSolver(log)

	if pflag.CommandLine.Changed("target") {
		printPath(solver, g, source, viper.GetUint32("target"))
		return
	}

	printAllDistances(solver, g, source)
}

func printPath(solver *pathfind.Solver, g *pathfind.Graph, source, target uint32) {
	start := time.Now()

	path, dist, err := solver.Path(g, source, target)
	if err != nil {
		errExit(fmt.Sprintf("no path from %d to %d:", source, target), err)
	}

	elapsed := time.Since(start)

	hops := make([]string, len(path))
	for i, v := range path {
		hops[i] = fmt.Sprint(v)
	}

	fmt.Printf("path: %s\n", strings.Join(hops, " -> "))
	fmt.Printf("distance: %s\n", humanize.Comma(int64(dist)))
	fmt.Printf("elapsed: %s\n", elapsed)
}

func printAllDistances(solver *pathfind.Solver, g *pathfind.Graph, source uint32) {
	start := time.Now()

	dist, err := solver.ShortestPaths(g, source)
	if err != nil {
		errExit("shortest path search failed:", err)
	}

	elapsed := time.Since(start)

	reachable := 0
	var farthest uint32
	for _, d := range dist {
		if d == pathfind.Unreachable {
			continue
		}

		reachable++
		if d > farthest {
			farthest = d
		}
	}

	fmt.Printf("source: %d\n", source)
	fmt.Printf("reachable: %s of %s vertices\n",
		humanize.Comma(int64(reachable)), humanize.Comma(int64(g.Order())))
	fmt.Printf("farthest distance: %s\n", humanize.Comma(int64(farthest)))
	fmt.Printf("elapsed: %s\n", elapsed)
}

func setupFlagsAndEnvParser() {
	pflag.String("graph", "", "path to edge-list graph file")
	pflag.Uint32("source", 0, "source vertex")
	pflag.Uint32("target", 0, "target vertex (omit to report all distances)")
	pflag.String("config-file", "", "path to config file")

	pflag.Bool("log-json", false, "log as json format")
	pflag.String("log-level", "", "log level (trace/debug/info/warn/error)")

	// this avoids 'pflag: help requested' error when calling for help message.
	if slices.Contains(os.Args[1:], "--help") || slices.Contains(os.Args[1:], "-h") {
		pflag.Usage()
		_, _ = fmt.Fprintln(os.Stderr, "\nNote: command arguments will override config file, but won't change config file.")
		os.Exit(0)
		return
	}

	pflag.Parse()

	viper.SetEnvPrefix("RADQ")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	lo.Must0(viper.BindPFlags(pflag.CommandLine), "failed to parse combine argument with env")
}

func mustParseConfig() config.Config {
	cfg, err := config.LoadFromFile(viper.GetString("config-file"))
	if err != nil {
		errExit("failed to load config:", err)
	}

	return cfg
}

func setupLogger(cfg config.Config) zerolog.Logger {
	level := viper.GetString("log-level")
	if level == "" {
		level = cfg.Run.LogLevel
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if viper.GetBool("log-json") {
		w = os.Stderr
	}

	return zerolog.New(w).Level(parseLogLevel(level)).With().Timestamp().Logger()
}

func parseLogLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}

	errExit(fmt.Sprintf("unknown log level %q, only trace/debug/info/warn/error is allowed", s))

	return zerolog.NoLevel
}

func errExit(msg ...any) {
	_, _ = fmt.Fprintln(os.Stderr, msg...)
	os.Exit(1)
}
