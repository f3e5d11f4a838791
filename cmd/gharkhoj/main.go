// Copyright 2025 Gharkhoj Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/panjf2000/ants/v2"
	"github.com/urfave/cli/v2"

	"github.com/gharkhoj/gharkhoj"
	"github.com/gharkhoj/gharkhoj/core"
	"github.com/gharkhoj/gharkhoj/dataset"
	"github.com/gharkhoj/gharkhoj/present"
	"github.com/gharkhoj/gharkhoj/search"
)

func main() {
	app := &cli.App{
		Name:  "gharkhoj",
		Usage: "Natural language search over housing project listings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Aliases: []string{"d"},
				Usage:   "Directory holding the four listing CSV files",
			},
			&cli.StringFlag{
				Name:  "project-csv",
				Usage: "Path to the project export (overrides data-dir)",
			},
			&cli.StringFlag{
				Name:  "address-csv",
				Usage: "Path to the address export (overrides data-dir)",
			},
			&cli.StringFlag{
				Name:  "configuration-csv",
				Usage: "Path to the configuration export (overrides data-dir)",
			},
			&cli.StringFlag{
				Name:  "variant-csv",
				Usage: "Path to the configuration variant export (overrides data-dir)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "search",
				Usage:  "Run one natural language query and show the matching listings",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Query text, e.g. \"3BHK flat in Pune under ₹1.2 Cr\"",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   search.DefaultLimit,
					},
				},
			},
			{
				Name:   "info",
				Usage:  "Show statistics about the loaded listing table",
				Action: infoCommand,
			},
			{
				Name:   "batch",
				Usage:  "Run queries from a file, one per line",
				Action: batchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "File with one query per line",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent query workers",
						Value: 4,
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results per query",
						Value:   search.DefaultLimit,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	query := c.String("query")
	if err := core.ValidateQuery(query); err != nil {
		return err
	}

	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}

	fmt.Printf("\n🔍 Searching for: '%s'\n\n", query)

	result := catalog.Query(query, c.Int("limit"))

	fmt.Println("📋 Extracted Filters:")
	for _, line := range filterLines(result.Filters) {
		fmt.Printf("   • %s\n", line)
	}
	fmt.Println()

	fmt.Println("📊 Summary:")
	fmt.Printf("   %s\n\n", result.Summary)

	renderCards(os.Stdout, result.Cards)
	return nil
}

func infoCommand(c *cli.Context) error {
	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}

	table := catalog.Table()
	fmt.Printf("Listings: %d\n", table.Len())

	priced := 0
	var min, max float64
	for _, row := range table.Rows {
		price, ok := row.Float(core.ColPrice)
		if !ok {
			continue
		}
		if priced == 0 {
			min, max = price, price
		}
		priced++
		if price < min {
			min = price
		}
		if price > max {
			max = price
		}
	}
	fmt.Printf("Priced:   %d\n", priced)
	if priced > 0 {
		fmt.Printf("Prices:   %s - %s\n", present.FormatPrice(min), present.FormatPrice(max))
	}

	counts := make(map[string]int)
	for _, row := range table.Rows {
		counts[present.CityOf(row)]++
	}
	cities := make([]string, 0, len(counts))
	for city := range counts {
		cities = append(cities, city)
	}
	sort.Strings(cities)

	fmt.Println("\nListings by city:")
	for _, city := range cities {
		fmt.Printf("   %-24s %d\n", city, counts[city])
	}
	return nil
}

func batchCommand(c *cli.Context) error {
	catalog, err := openCatalog(c)
	if err != nil {
		return err
	}

	path := c.String("file")
	queries, err := readQueries(path)
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries found in %s", path)
	}

	workers := c.Int("workers")
	if workers <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	// Queries are pure reads over the shared table, so they can run
	// concurrently. Results land in their input slot to keep output
	// ordered.
	limit := c.Int("limit")
	results := make([]gharkhoj.Result, len(queries))

	var wg sync.WaitGroup
	for i, query := range queries {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results[i] = catalog.Query(query, limit)
		}); err != nil {
			wg.Done()
			return fmt.Errorf("failed to submit query: %w", err)
		}
	}
	wg.Wait()

	for i, query := range queries {
		fmt.Printf("🔍 %s\n", query)
		fmt.Printf("   %s\n", results[i].Summary)
		fmt.Printf("   Matches: %d\n\n", len(results[i].Rows))
	}
	return nil
}

// openCatalog loads the listing table using the global path flags. Any
// unreadable source file is fatal.
func openCatalog(c *cli.Context) (*gharkhoj.Catalog, error) {
	catalog, err := gharkhoj.Open(datasetConfig(c))
	if err != nil {
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}
	return catalog, nil
}

// datasetConfig resolves source paths: environment first, then the
// data-dir flag, then per-file flag overrides.
func datasetConfig(c *cli.Context) *dataset.Config {
	cfg := dataset.LoadEnv()
	if dir := c.String("data-dir"); dir != "" {
		dataset.WithDataDir(dir)(cfg)
	}
	if path := c.String("project-csv"); path != "" {
		cfg.ProjectPath = path
	}
	if path := c.String("address-csv"); path != "" {
		cfg.AddressPath = path
	}
	if path := c.String("configuration-csv"); path != "" {
		cfg.ConfigurationPath = path
	}
	if path := c.String("variant-csv"); path != "" {
		cfg.VariantPath = path
	}
	return cfg
}

// filterLines renders the extracted filters for the query echo, one
// line per constraint in parse order.
func filterLines(filters core.FilterSet) []string {
	var lines []string
	if filters.BHK != nil {
		lines = append(lines, fmt.Sprintf("Bhk: %d", *filters.BHK))
	}
	if filters.MaxBudget != nil {
		lines = append(lines, fmt.Sprintf("Max Budget: %.1f", *filters.MaxBudget))
	}
	if filters.City != "" {
		lines = append(lines, "City: "+filters.City)
	}
	if filters.Status != core.StatusUnset {
		lines = append(lines, "Status: "+string(filters.Status))
	}
	if filters.PropertyType != core.PropertyTypeUnset {
		lines = append(lines, "Property Type: "+string(filters.PropertyType))
	}
	if filters.Furnishing != "" {
		lines = append(lines, "Furnished: "+filters.Furnishing)
	}
	return lines
}

// renderCards draws the listing cards with box-drawing characters.
func renderCards(w io.Writer, cards []present.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No properties found.")
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, center("PROPERTY LISTINGS", 80))
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w)

	for i, card := range cards {
		fmt.Fprintf(w, "#%d\n", i+1)
		fmt.Fprintf(w, "┌%s┐\n", strings.Repeat("─", 78))
		fmt.Fprintf(w, "│ %s │\n", cell(card.ProjectName, 74))
		fmt.Fprintf(w, "├%s┤\n", strings.Repeat("─", 78))
		fmt.Fprintf(w, "│ 📍 %s │\n", cell(card.Location, 72))
		fmt.Fprintf(w, "│ 🏠 %s │ 💰 %s │ 📐 %s │\n",
			cell(card.BHK, 20), cell(card.Price, 20), cell(card.CarpetArea, 17))
		fmt.Fprintf(w, "│ 🔑 Status: %s │ 🛋️  %s │\n",
			cell(card.Status, 30), cell(card.Furnishing, 25))
		fmt.Fprintf(w, "│ ✨ %s │\n", cell(strings.Join(card.Amenities, ", "), 72))
		fmt.Fprintf(w, "│ 🔗 %s │\n", cell(card.CTAURL, 74))
		fmt.Fprintf(w, "└%s┘\n\n", strings.Repeat("─", 78))
	}
}

// cell clips and right-pads a value to a fixed column width, counting
// runes rather than bytes so rupee signs do not skew the box edges.
func cell(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		runes = runes[:width]
	}
	return string(runes) + strings.Repeat(" ", width-len(runes))
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// readQueries loads non-empty lines from a batch query file.
func readQueries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open query file: %w", err)
	}
	defer f.Close()

	var queries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read query file: %w", err)
	}
	return queries, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
