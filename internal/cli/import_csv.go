package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/sebastiansb/reading-log/internal/config"
	"github.com/sebastiansb/reading-log/internal/controller"
	"github.com/sebastiansb/reading-log/internal/database"
)

// ImportCSVCommand handles importing reading entries from a CSV file
// produced by export-csv (or a compatible file).
type ImportCSVCommand struct {
	InputPath    string
	DatabasePath string
	Verbose      bool
}

func NewImportCSVCommand() *ImportCSVCommand {
	return &ImportCSVCommand{}
}

func (cmd *ImportCSVCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-csv", flag.ExitOnError)

	fs.StringVar(&cmd.InputPath, "file", "", "Path to the CSV file to import (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the reading log database file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print every skipped row")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-csv -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import reading entries from a CSV file. Columns are matched by\n")
		fmt.Fprintf(os.Stderr, "header name; only a title column is required. IDs in the file are\n")
		fmt.Fprintf(os.Stderr, "ignored and fresh ones are assigned.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.InputPath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *ImportCSVCommand) Run() error {
	file, err := os.Open(cmd.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	app := controller.NewFromDatabase(db)

	result, err := app.ImportCSV(file)
	if err != nil {
		return fmt.Errorf("failed to import CSV: %w", err)
	}

	fmt.Printf("Imported %d of %d rows\n", result.Imported, result.TotalRows)
	if len(result.Skipped) > 0 {
		fmt.Printf("Skipped %d rows\n", len(result.Skipped))
		if cmd.Verbose {
			for _, msg := range result.Skipped {
				fmt.Printf("  %s\n", msg)
			}
		}
	}

	return nil
}
