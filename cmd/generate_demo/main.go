// Command generate_demo creates a demo database with sample reading
// entries drawn from public domain books.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/sebastiansb/reading-log/internal/database"
	"github.com/sebastiansb/reading-log/internal/database/entries"
	"github.com/sebastiansb/reading-log/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	repo := entries.NewRepository(db.DB)

	for _, entry := range demoEntries() {
		if err := repo.Create(&entry); err != nil {
			log.Printf("Failed to save entry %s: %v", entry.Title, err)
			continue
		}
		log.Printf("Saved: %s by %s (%s, %.1f/10)", entry.Title, entry.Author, entry.Genre, entry.Rating)
	}

	log.Println("Demo database generated successfully!")
}

func demoEntries() []entities.ReadingEntry {
	readAt := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}

	return []entities.ReadingEntry{
		{
			Title:     "Meditations",
			Author:    "Marcus Aurelius",
			Genre:     "Philosophy",
			Subgenre:  "Stoicism",
			Year:      2024,
			ReadAt:    readAt(2024, time.January, 12),
			Rating:    9,
			Pages:     256,
			Publisher: "Penguin Classics",
			Notes:     "Short sections, easy to revisit. The book that started the stoicism streak.",
		},
		{
			Title:    "Letters from a Stoic",
			Author:   "Seneca",
			Genre:    "Philosophy",
			Subgenre: "Stoicism",
			Year:     2024,
			ReadAt:   readAt(2024, time.February, 28),
			Rating:   8.5,
			Pages:    254,
			Notes:    "Paired well with Meditations.",
		},
		{
			Title:     "On the Origin of Species",
			Author:    "Charles Darwin",
			Genre:     "Science",
			Subgenre:  "Biology",
			Year:      2024,
			ReadAt:    readAt(2024, time.April, 3),
			Rating:    7.5,
			Pages:     502,
			Publisher: "John Murray",
		},
		{
			Title:     "Pride and Prejudice",
			Author:    "Jane Austen",
			Genre:     "Novel",
			Subgenre:  "Romance",
			Year:      2023,
			ReadAt:    readAt(2023, time.June, 18),
			Rating:    9,
			Pages:     432,
			Publisher: "Penguin Classics",
			Notes:     "Reread. Still holds up.",
		},
		{
			Title:    "War and Peace",
			Author:   "Leo Tolstoy",
			Genre:    "Novel",
			Subgenre: "Historical",
			Year:     2023,
			ReadAt:   readAt(2023, time.November, 30),
			Rating:   9.5,
			Pages:    1225,
			Notes:    "Took most of the autumn.",
		},
		{
			Title:    "Crime and Punishment",
			Author:   "Fyodor Dostoevsky",
			Genre:    "Novel",
			Subgenre: "Psychological",
			Year:     2023,
			ReadAt:   readAt(2023, time.March, 9),
			Rating:   9,
			Pages:    671,
		},
		{
			Title:    "The Republic",
			Author:   "Plato",
			Genre:    "Philosophy",
			Subgenre: "Political",
			Year:     2022,
			ReadAt:   readAt(2022, time.September, 14),
			Rating:   7,
			Pages:    416,
		},
		{
			Title:    "The Art of War",
			Author:   "Sun Tzu",
			Genre:    "Philosophy",
			Subgenre: "Strategy",
			Year:     2022,
			ReadAt:   readAt(2022, time.February, 2),
			Rating:   6.5,
			Pages:    112,
			Notes:    "Shorter than expected.",
		},
		{
			Title:    "Frankenstein",
			Author:   "Mary Shelley",
			Genre:    "Novel",
			Subgenre: "Gothic",
			Year:     2022,
			ReadAt:   readAt(2022, time.October, 31),
			Rating:   8,
			Pages:    280,
			Notes:    "October pick.",
		},
		{
			Title:     "The Picture of Dorian Gray",
			Author:    "Oscar Wilde",
			Genre:     "Novel",
			Subgenre:  "Gothic",
			Year:      2024,
			ReadAt:    readAt(2024, time.July, 21),
			Rating:    8.5,
			Pages:     254,
			Publisher: "Ward, Lock and Company",
		},
	}
}
