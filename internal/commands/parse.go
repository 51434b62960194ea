package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quillbooks/statement-parser/internal/classifier"
	"github.com/quillbooks/statement-parser/internal/config"
	"github.com/quillbooks/statement-parser/internal/extractor"
	"github.com/quillbooks/statement-parser/internal/pipeline"
	"github.com/quillbooks/statement-parser/internal/writer"
)

func newParseCommand() *cobra.Command {
	var (
		year       int
		format     string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "parse [flags] <statement.pdf|statement.txt> ...",
		Short: "Parse one or more statements into classified transactions",
		Long: `Parse extracts transactions from Chase-layout bank statements.

Inputs may be PDFs (text is extracted first) or plain-text files holding
already-extracted statement text. Output goes to stdout, or to --output
when a single input is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			statementYear := cfg.StatementYear(year)

			if outputPath != "" && len(args) > 1 {
				return fmt.Errorf("--output only applies to a single input file")
			}

			p := pipeline.New(classifier.Default())
			for _, inputPath := range args {
				if err := processFile(cmd, p, inputPath, statementYear, format, outputPath); err != nil {
					return fmt.Errorf("processing %s: %w", inputPath, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "statement year (defaults to configured or current year)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or csv")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file path (stdout if omitted)")

	return cmd
}

func processFile(cmd *cobra.Command, p *pipeline.Pipeline, inputPath string, year int, format, outputPath string) error {
	rawText, err := readStatementText(inputPath)
	if err != nil {
		return err
	}

	res, err := p.Process(rawText, year)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d transaction(s), %d flagged for review\n",
		inputPath, len(res.Transactions), res.Summary.NeedsReview)

	switch strings.ToLower(format) {
	case "csv":
		w := &writer.CSVWriter{IncludeSummary: true}
		if outputPath != "" {
			return w.WriteToFile(outputPath, res)
		}
		return w.Write(cmd.OutOrStdout(), res)
	case "json":
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		if outputPath != "" {
			return os.WriteFile(outputPath, append(data, '\n'), 0o644)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	default:
		return fmt.Errorf("unknown format %q: use json or csv", format)
	}
}

// readStatementText loads statement text from a PDF (via extraction) or from
// a plain-text file of already-extracted text.
func readStatementText(inputPath string) (string, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return "", fmt.Errorf("input file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(inputPath), ".pdf") {
		return extractor.ExtractText(inputPath)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
