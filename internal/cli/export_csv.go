package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sebastiansb/reading-log/internal/config"
	"github.com/sebastiansb/reading-log/internal/controller"
	"github.com/sebastiansb/reading-log/internal/database"
	"github.com/sebastiansb/reading-log/internal/database/entries"
	"github.com/sebastiansb/reading-log/internal/utils"
)

// ExportCSVCommand handles exporting reading entries to a CSV file
// from the command line, without starting the server.
type ExportCSVCommand struct {
	DatabasePath string
	OutputPath   string
	Year         int
	Genre        string
	MinRating    float64
	MaxRating    float64
}

func NewExportCSVCommand() *ExportCSVCommand {
	return &ExportCSVCommand{}
}

func (cmd *ExportCSVCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export-csv", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the reading log database file")
	fs.StringVar(&cmd.OutputPath, "output", "", "Output CSV file path (default: readings_<date>.csv in the current directory)")
	fs.IntVar(&cmd.Year, "year", 0, "Only export entries read in this year")
	fs.StringVar(&cmd.Genre, "genre", "", "Only export entries of this genre")
	fs.Float64Var(&cmd.MinRating, "min-rating", -1, "Only export entries rated at least this")
	fs.Float64Var(&cmd.MaxRating, "max-rating", -1, "Only export entries rated at most this")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-csv [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export reading entries to a CSV file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Export everything:\n")
		fmt.Fprintf(os.Stderr, "  %s export-csv -output readings.csv\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Export one year's novels:\n")
		fmt.Fprintf(os.Stderr, "  %s export-csv -year 2025 -genre Novel\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.OutputPath == "" {
		cmd.OutputPath = filepath.Join(".", cmd.defaultOutputName())
	}

	return nil
}

// defaultOutputName builds a filename like "readings_Novel_20250102.csv",
// embedding the genre filter when one was given.
func (cmd *ExportCSVCommand) defaultOutputName() string {
	date := time.Now().Format("20060102")
	if cmd.Genre != "" {
		return fmt.Sprintf("readings_%s_%s.csv", utils.SanitizeFilename(cmd.Genre), date)
	}
	return fmt.Sprintf("readings_%s.csv", date)
}

func (cmd *ExportCSVCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	app := controller.NewFromDatabase(db)

	filter := entries.Filter{Genre: cmd.Genre}
	if cmd.Year != 0 {
		filter.Year = &cmd.Year
	}
	if cmd.MinRating >= 0 {
		filter.MinRating = &cmd.MinRating
	}
	if cmd.MaxRating >= 0 {
		filter.MaxRating = &cmd.MaxRating
	}

	count, err := app.ExportToCSV(cmd.OutputPath, filter)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d entries to %s\n", count, cmd.OutputPath)
	return nil
}
