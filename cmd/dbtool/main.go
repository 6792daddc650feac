package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/adapters/export"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/adapters/repositories"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	seedPath := flag.String("dataset", config.Get("SEED_PATH", config.Get("DATASET_PATH", "")), "dataset to load into the items table (.csv or .json)")
	show := flag.String("show", "", "print the stored plan with this run id and exit")
	flag.Parse()

	databaseURL := config.Get("DATABASE_URL", "")
	dbPath := config.Get("DB_PATH", "data/app.db")
	if strings.TrimSpace(databaseURL) != "" {
		dbPath = ""
	}

	ctx := context.Background()

	log.Println("Initializing database schema...")
	db, dialect, err := repositories.OpenStorage(ctx, databaseURL, dbPath)
	if err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	defer db.Close()
	log.Printf("Schema ready. storage=%s", dialect)

	if *show != "" {
		plan, err := repositories.NewSQLPlanStore(db, dialect).GetPlan(ctx, *show)
		if err != nil {
			log.Fatal(err)
		}
		if err := export.WriteReport(os.Stdout, plan); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *seedPath != "" {
		seed(ctx, db, dialect, *seedPath)
	}
}

func seed(ctx context.Context, db *sql.DB, dialect repositories.Dialect, path string) {
	log.Printf("Seeding database from %s...", path)

	items, err := repositories.NewFileItemRepository(path).ListItems(ctx)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	if err := repositories.SeedItems(ctx, db, dialect, items); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Printf("Seeding complete. items=%d", len(items))
}
