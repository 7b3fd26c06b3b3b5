// Package main provides the news aggregator command-line tool: it
// crawls a feed list, builds an inverted index of every article, and
// serves an interactive query loop over the result.
package main

import (
	"flag"
	"fmt"
	"os"

	"newsagg/internal/aggregator"
	"newsagg/internal/config"
	"newsagg/internal/document"
	"newsagg/internal/feed"
	"newsagg/internal/fetch"
	"newsagg/internal/logger"
	"newsagg/internal/models"
	"newsagg/internal/query"
)

func main() {
	var (
		configFile  string
		feedListURL string
		verbose     bool
		quiet       bool
	)

	flag.StringVar(&configFile, "config", "", "Path to YAML configuration file")
	flag.StringVar(&feedListURL, "url", "", "Feed list location (URL or local file, overrides config)")
	flag.StringVar(&feedListURL, "u", "", "Shorthand for -url")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&verbose, "v", false, "Shorthand for -verbose")
	flag.BoolVar(&quiet, "quiet", false, "Suppress informational logging")
	flag.BoolVar(&quiet, "q", false, "Shorthand for -quiet")
	flag.Usage = printUsage

	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments: %v\n\n", flag.Args())
		printUsage()
		os.Exit(2)
	}

	cfg, err := loadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(2)
	}

	if feedListURL != "" {
		cfg.Aggregator.FeedList.URL = feedListURL
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}

	if quiet {
		cfg.Logging.Level = "error"
	}

	log := logger.NewLogger(cfg.Logging.Level)
	crawlog := logger.NewCrawlLog(log)

	fetcher := fetch.NewFetcher(&cfg.Aggregator.Fetch)

	agg := aggregator.NewAggregator(
		&cfg.Aggregator.Pools,
		crawlog,
		&feedSource{
			lists: feed.NewListParser(fetcher),
			feeds: feed.NewParser(fetcher),
		},
		document.NewParser(fetcher),
	)
	defer agg.Close()

	if err := agg.BuildIndex(cfg.Aggregator.FeedList.URL); err != nil {
		log.Error("aggregation failed", "error", err)
		os.Exit(1)
	}

	repl := query.NewREPL(agg.Index(), os.Stdin, os.Stdout, cfg.Aggregator.Query.MaxMatches)
	if err := repl.Run(); err != nil {
		log.Error("query loop failed", "error", err)
		os.Exit(1)
	}
}

// feedSource joins the list parser and the feed parser into the
// single FeedSource the aggregator consumes.
type feedSource struct {
	lists *feed.ListParser
	feeds *feed.Parser
}

func (s *feedSource) ParseList(location string) ([]models.FeedRef, error) {
	return s.lists.ParseList(location)
}

func (s *feedSource) ParseFeed(url string) ([]models.Article, error) {
	return s.feeds.ParseFeed(url)
}

// loadConfig reads the named config file, or falls back to the
// default configuration (and the default small-feed.xml feed list)
// when none was given.
func loadConfig(configFile string) (*config.Config, error) {
	if configFile != "" {
		return config.LoadConfig(configFile)
	}

	return config.DefaultConfig(), nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: aggregator [OPTIONS]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  aggregator -u https://example.com/feeds.xml")
	fmt.Fprintln(os.Stderr, "  aggregator -config configs/aggregator.yaml -v")
}
