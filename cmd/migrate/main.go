// Command migrate applies database migrations.
//
// Flags:
//
//	--dir  migrations directory (default: migrations)
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	dirFlag := flag.String("dir", "migrations", "migrations directory")
	flag.Parse()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(*dirFlag))
	if err != nil {
		log.Fatalf("goose provider: %v", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	for _, r := range results {
		fmt.Printf("applied %s in %v\n", r.Source.Path, r.Duration)
	}
	if len(results) == 0 {
		fmt.Println("database is up to date")
	}
}
