// Command export dumps all stored agreements to a CSV or XLSX file.
// Usage: go run ./cmd/export [csv|xlsx] [output-path]
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"leasedesk/internal/config"
	"leasedesk/internal/csvexport"
	"leasedesk/internal/repository/postgres"
	"leasedesk/internal/xlsxexport"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	format := "csv"
	if len(os.Args) > 1 {
		format = os.Args[1]
	}
	outPath := "agreements." + format
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	repo := postgres.NewAgreementRepo(db)
	agreements, err := repo.ListAll(context.Background())
	if err != nil {
		return fmt.Errorf("listing agreements: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer func() { _ = out.Close() }()

	switch format {
	case "csv":
		if _, err := out.Write(csvexport.BOM); err != nil {
			return fmt.Errorf("writing BOM: %w", err)
		}
		w := csvexport.NewWriter(out)
		if err := w.WriteHeader(); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		if err := w.WriteAgreements(agreements); err != nil {
			return fmt.Errorf("writing rows: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("flushing csv: %w", err)
		}

	case "xlsx":
		if err := xlsxexport.Write(out, agreements); err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}

	default:
		return fmt.Errorf("unknown format %q; allowed: csv, xlsx", format)
	}

	log.Printf("exported %d agreements to %s", len(agreements), outPath)
	return nil
}
