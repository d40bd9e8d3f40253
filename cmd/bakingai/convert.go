package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bakingai/bakingai/internal/ingredient"
)

func newConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [text...]",
		Short: "Convert cup, tablespoon, and teaspoon measures in ingredient text to grams",
		Long: `Convert cup, tablespoon, and teaspoon measures in ingredient text to grams.
Each argument is converted on its own. With no arguments, each non-empty line
of standard input is converted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			texts := args
			if len(texts) == 0 {
				var err error
				texts, err = readLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("readLines() > %w", err)
				}
			}

			for _, text := range texts {
				if err := printConversion(cmd.OutOrStdout(), text, ingredient.Convert(text)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func printConversion(w io.Writer, text string, result ingredient.ConversionResult) error {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	if _, err := bold.Fprintln(w, text); err != nil {
		return fmt.Errorf("bold.Fprintln() > %w", err)
	}
	if len(result.ConvertedValues) == 0 {
		if _, err := yellow.Fprintln(w, "  no cup, tablespoon, or teaspoon measures found"); err != nil {
			return fmt.Errorf("yellow.Fprintln() > %w", err)
		}
	}
	for _, value := range result.ConvertedValues {
		if _, err := green.Fprintf(w, "  %s\n", value); err != nil {
			return fmt.Errorf("green.Fprintf() > %w", err)
		}
	}

	total := ingredient.NotAvailable
	if result.TotalGrams.Available() {
		total = result.TotalGrams.String() + "g"
	}
	if _, err := fmt.Fprintf(w, "  Total: %s\n", total); err != nil {
		return fmt.Errorf("fmt.Fprintf() > %w", err)
	}
	return nil
}
