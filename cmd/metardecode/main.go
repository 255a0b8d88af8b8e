// Command metardecode reads a file of "="-terminated METAR/SPECI reports
// and emits one IWXXM or IWXXM-US XML document per report on stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/mdoberfield/metar-iwxxm/bulletin"
	"github.com/mdoberfield/metar-iwxxm/decode"
	"github.com/mdoberfield/metar-iwxxm/encode"
	"github.com/mdoberfield/metar-iwxxm/format"
	"github.com/mdoberfield/metar-iwxxm/station"
	"github.com/mdoberfield/metar-iwxxm/vocab"
)

var (
	warningColor = color.New(color.FgYellow)
	labelColor   = color.New(color.FgCyan)
)

func main() {
	allowUSExtensions := flag.Bool("allow-us-extensions", false, "Emit iwxxm-us elements for U.S. stations")
	namespaceDeclarations := flag.Bool("namespace-declarations", false, "Declare namespaces on the root element")
	debug := flag.Bool("debug", false, "Embed ORIG_TAC/UNPARSED_TAC debug comment")
	stationFile := flag.String("station-file", "", "Pipe-delimited station metadata file")
	vocabFile := flag.String("vocab-file", "", "SKOS/XML controlled-vocabulary file")
	pretty := flag.Bool("pretty", true, "Pretty-print the output XML")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if *stationFile == "" {
		fmt.Fprintln(os.Stderr, "metardecode: -station-file is required")
		os.Exit(2)
	}

	stations, err := station.LoadFileResolver(*stationFile)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load station metadata")
		os.Exit(1)
	}

	var table *vocab.Table
	if *vocabFile != "" {
		f, err := os.Open(*vocabFile)
		if err != nil {
			logger.Error().Err(err).Msg("failed to open vocabulary file")
			os.Exit(1)
		}
		table, err = vocab.Load(f)
		_ = f.Close()
		if err != nil {
			logger.Error().Err(err).Msg("failed to parse vocabulary file")
			os.Exit(1)
		}
	}

	var raw []byte
	if args := flag.Args(); len(args) > 0 {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to read input")
		os.Exit(1)
	}

	decoder := decode.NewDecoder()
	encoder := encode.NewEncoder(stations, table, encode.Options{
		AllowUSExtensions: *allowUSExtensions,
		DeclareNamespaces: *namespaceDeclarations,
	})

	scanner := bulletin.Scanner{}
	reports := scanner.Split(string(raw))
	if len(reports) == 0 {
		reports = []string{string(raw)}
	}

	ctx := context.Background()
	for _, report := range reports {
		rec, err := decoder.Decode(report)
		if err != nil {
			if *debug {
				warningColor.Fprintf(os.Stderr, "skipping: %v\n", err)
			}
			continue
		}

		doc, err := encoder.Encode(ctx, rec, strings.TrimSpace(report))
		if err != nil {
			logger.Warn().Err(err).Str("report", strings.TrimSpace(report)).Msg("failed to encode report")
			continue
		}

		if *debug {
			labelColor.Fprintln(os.Stderr, "decoded:", strings.TrimSpace(report))
		}

		fmt.Println(format.Render(doc, format.Options{Pretty: *pretty, Debug: *debug}))
	}
}
