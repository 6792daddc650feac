package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/adapters/generator"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/adapters/repositories"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/config"
	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	outDir := flag.String("out", config.Get("DATA_DIR", "data"), "output directory")
	sizesFlag := flag.String("sizes", "100,1000,10000", "comma separated dataset sizes")
	seed := flag.Uint64("seed", 0, "random seed, 0 for time based")
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		log.Fatal(err)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed=%d", *seed)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create %q: %v", *outDir, err)
	}

	for i, n := range sizes {
		rng := rand.New(rand.NewPCG(*seed, uint64(i)))
		items := generator.Generate(n, rng)

		path := filepath.Join(*outDir, generator.FileName(n))
		if err := writeDataset(path, items); err != nil {
			log.Fatal(err)
		}

		st := generator.Describe(items)
		log.Printf("dataset saved rows=%d path=%s", n, path)
		log.Printf("rows=%d population %s", n, st.Population)
		log.Printf("rows=%d criticality %s", n, st.Criticality)
		log.Printf("rows=%d impact %s", n, st.Impact)
		log.Printf("rows=%d cost %s", n, st.Cost)
	}
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid size %q", part)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func writeDataset(path string, items []domain.Item) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write dataset: create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write dataset: close %q: %w", path, cerr)
		}
	}()

	if err := repositories.WriteItemsCSV(f, items); err != nil {
		return fmt.Errorf("write dataset %q: %w", path, err)
	}
	return nil
}
