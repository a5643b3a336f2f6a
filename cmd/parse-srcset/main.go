package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/prettier/parse-srcset/htmlscan"
	"github.com/prettier/parse-srcset/internal/utils"
	"github.com/prettier/parse-srcset/srcset"
)

const HELP = "Usage:\n" +
	"\tparse-srcset parse <attribute value>\n" +
	"\tparse-srcset parse < file\n" +
	"\tparse-srcset scan <document.html>\n\n" +
	"The parse command parses a single srcset attribute value (already entity-decoded)\n" +
	"and prints the image candidates as JSON.\n" +
	"The scan command extracts and parses every srcset attribute of an HTML document,\n" +
	"'-' reads the document from the standard input.\n"

func main() {
	_main(os.Args)
}

func _main(args []string) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(args) < 2 {
		fmt.Print(HELP)
		os.Exit(2)
	}

	switch args[1] {
	case "help", "-h", "--help":
		fmt.Print(HELP)
	case "parse":
		parseFlags := flag.NewFlagSet("parse", flag.ExitOnError)
		var compact bool
		parseFlags.BoolVar(&compact, "compact", false, "print compact JSON")

		parseFlags.Parse(args[2:])

		input := parseFlags.Arg(0)
		if input == "" {
			//read the attribute value from the standard input
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				logger.Fatal().Err(err).Msg("failed to read the standard input")
			}
			input = strings.TrimSuffix(string(data), "\n")
		}

		candidates, err := srcset.Parse(input)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to parse the attribute value")
		}

		printJSON(candidates, compact)
	case "scan":
		scanFlags := flag.NewFlagSet("scan", flag.ExitOnError)
		var compact bool
		scanFlags.BoolVar(&compact, "compact", false, "print compact JSON")

		scanFlags.Parse(args[2:])

		fpath := scanFlags.Arg(0)
		if fpath == "" {
			fmt.Println("missing document path")
			fmt.Print(HELP)
			os.Exit(2)
		}

		var doc io.Reader = os.Stdin
		if fpath != "-" {
			f, err := os.Open(fpath)
			if err != nil {
				logger.Fatal().Err(err).Msg("failed to open the document")
			}
			defer f.Close()
			doc = f
		}

		attributes, err := htmlscan.Scan(doc)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to parse the document")
		}

		for _, attribute := range attributes {
			if attribute.Err != nil {
				logger.Error().
					Str("element", attribute.Element).
					Str("attribute", attribute.Name).
					Err(attribute.Err).
					Msg("invalid srcset attribute")
			}
		}

		printJSON(attributes, compact)
	default:
		fmt.Println("unknown command: " + args[1])
		fmt.Print(HELP)
		os.Exit(2)
	}
}

func printJSON(v any, compact bool) {
	var output []byte
	if compact {
		output = utils.Must(json.Marshal(v))
	} else {
		output = utils.Must(json.MarshalIndent(v, "", "  "))
	}
	fmt.Println(string(output))
}
