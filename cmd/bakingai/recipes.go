package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bakingai/bakingai/internal/export"
	"github.com/bakingai/bakingai/internal/recipe"
	"github.com/bakingai/bakingai/internal/source"
)

func newRecipesCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "recipes",
		Short: "Query, validate, and export the recipe table",
	}
	command.AddCommand(
		newRecipesListCommand(),
		newRecipesValidateCommand(),
		newRecipesExportCommand(),
	)
	return command
}

func newRecipesListCommand() *cobra.Command {
	var search string
	var page, limit int

	command := &cobra.Command{
		Use:   "list",
		Short: "List one page of recipes sorted by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 1 {
				return fmt.Errorf("--page must be 1 or greater, got %d", page)
			}
			if limit < 0 {
				return fmt.Errorf("--limit must be 1 or greater, got %d", limit)
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if limit == 0 {
				limit = cfg.Recipes.DefaultLimit
			}

			loader, closeLoader := newRecipeLoader(cfg)
			defer closeLoader() //nolint:errcheck

			table, err := loader.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load recipes: %w", err)
			}

			return printRecipePage(cmd.OutOrStdout(), recipe.Paginate(table.Records, recipe.Query{
				Search: search,
				Page:   page,
				Limit:  limit,
			}))
		},
	}

	command.Flags().StringVar(&search, "search", "", "Only list recipes whose name contains this text")
	command.Flags().IntVar(&page, "page", 1, "Page number, starting at 1")
	command.Flags().IntVar(&limit, "limit", 0, "Recipes per page (default from recipes.default_limit)")

	return command
}

func printRecipePage(w io.Writer, page recipe.Page) error {
	if len(page.Records) == 0 {
		_, err := fmt.Fprintf(w, "No recipes on page %d (%d matching recipes)\n", page.CurrentPage, page.TotalRecords)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPREP\tCOOK\tTOTAL\tGRAMS")
	for _, r := range page.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Name, r.PrepTime, r.CookTime, r.TotalTime, r.TotalGrams)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tw.Flush() > %w", err)
	}

	_, err := fmt.Fprintf(w, "\nPage %d of %d (%d recipes)\n", page.CurrentPage, page.TotalPages, page.TotalRecords)
	return err
}

func newRecipesValidateCommand() *cobra.Command {
	var strict bool

	command := &cobra.Command{
		Use:   "validate",
		Short: "Load the recipe source and report skipped and duplicate rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			loader, closeLoader := newRecipeLoader(cfg)
			defer closeLoader() //nolint:errcheck

			table, err := loader.Load(cmd.Context())
			displayLoadResults(cmd.OutOrStdout(), loader.Location(), table, err)
			if err != nil {
				return fmt.Errorf("validation failed: %s", describeLoadError(err))
			}
			if strict && len(table.Skipped) > 0 {
				return fmt.Errorf("validation failed with %d skipped row(s)", len(table.Skipped))
			}
			return nil
		},
	}

	command.Flags().BoolVar(&strict, "strict", false, "Fail when any row was skipped")

	return command
}

// describeLoadError names which of the load failure kinds err is.
func describeLoadError(err error) string {
	switch {
	case errors.Is(err, source.ErrSourceMissing):
		return "recipe source not found"
	case errors.Is(err, source.ErrSourceMalformed):
		return "recipe source is malformed"
	case errors.Is(err, recipe.ErrEmptyResult):
		return "recipe source has no recipes"
	default:
		return err.Error()
	}
}

func displayLoadResults(w io.Writer, location string, table *recipe.Table, loadErr error) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)

	bold.Fprintf(w, "Source: %s\n", location) //nolint:errcheck
	if table != nil {
		if len(table.Skipped) > 0 {
			yellow.Fprintf(w, "\nSkipped rows (%d):\n", len(table.Skipped)) //nolint:errcheck
			for _, skipped := range table.Skipped {
				fmt.Fprintf(w, "  %s\n", skipped)
			}
		}
		if len(table.Duplicates) > 0 {
			yellow.Fprintf(w, "\nDuplicate recipes dropped (%d):\n", len(table.Duplicates)) //nolint:errcheck
			for _, dup := range table.Duplicates {
				fmt.Fprintf(w, "  line %d: %q duplicates line %d\n", dup.Line, dup.Name, dup.FirstLine)
			}
		}
	}

	fmt.Fprintln(w)
	if loadErr != nil {
		red.Fprintf(w, "Failed: %s\n", describeLoadError(loadErr)) //nolint:errcheck
		fmt.Fprintf(w, "  %v\n", loadErr)
		return
	}
	green.Fprintf(w, "%d recipe(s) loaded, %d row(s) skipped, %d duplicate(s) dropped\n", //nolint:errcheck
		len(table.Records), len(table.Skipped), len(table.Duplicates))
}

// formatFlag is a pflag.Value for export formats.
type formatFlag struct {
	format export.Format
}

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string {
	return string(f.format)
}

func (f *formatFlag) Set(s string) error {
	format, err := export.ParseFormat(s)
	if err != nil {
		return err
	}
	f.format = format
	return nil
}

func (f *formatFlag) Type() string {
	return "format"
}

func newRecipesExportCommand() *cobra.Command {
	format := formatFlag{format: export.FormatJSON}
	var output, search string

	command := &cobra.Command{
		Use:   "export",
		Short: "Export the recipe table as JSON, YAML, markdown cards, or PDF",
		Long: `Export the recipe table as JSON, YAML, markdown cards, or PDF.
Without --output, the file is written to export.output_directory. Use
--output - to write to standard output (not available for pdf).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			loader, closeLoader := newRecipeLoader(cfg)
			defer closeLoader() //nolint:errcheck

			table, err := loader.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load recipes: %w", err)
			}
			records := recipe.Search(table.Records, search)

			exporter := export.NewExporter(cfg.Export.CardTemplate)
			if output == "-" {
				return exporter.Write(cmd.OutOrStdout(), format.format, records)
			}
			if output == "" {
				output = filepath.Join(cfg.Export.OutputDirectory, format.format.DefaultFileName())
			}
			path, err := exporter.WriteFile(output, format.format, records)
			if err != nil {
				return fmt.Errorf("exporter.WriteFile() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d recipe(s) to %s\n", len(records), path)
			return nil
		},
	}

	command.Flags().Var(&format, "format", "Export format: json, yaml, markdown, or pdf")
	command.Flags().StringVarP(&output, "output", "o", "", "Output file path, or - for standard output")
	command.Flags().StringVar(&search, "search", "", "Only export recipes whose name contains this text")

	return command
}
