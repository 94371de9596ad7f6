package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"culturis-route-service/internal/adapters/cache"
	"culturis-route-service/internal/adapters/repositories"
	"culturis-route-service/internal/adapters/venues"
	"culturis-route-service/internal/api"
	"culturis-route-service/internal/config"
	"culturis-route-service/internal/platform/db"
	"culturis-route-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite catalog, fallback generator, Redis or
// in-memory pool cache) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	redisAddr := config.Get("REDIS_ADDR", "")

	repo, closeDB, err := newVenueRepository()
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	// The venue catalog degrades to a generated demo pool when the
	// database cannot serve a request.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	source := venues.NewFallbackSource(repo, rng)

	poolCache, err := newPoolCache(redisAddr)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(source, poolCache)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// newVenueRepository picks the venue catalog backend: Postgres when
// DATABASE_URL is set (catalog managed by dbtool), otherwise an embedded
// SQLite file initialized and seeded on startup for local runs.
func newVenueRepository() (ports.VenueSource, func(), error) {
	if databaseURL := config.Get("DATABASE_URL", ""); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("new venue repository: %w", err)
		}

		log.Println("Using postgres venue catalog")
		return repositories.NewSQLVenueRepository(pg), func() { pg.Close() }, nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/venues.json")

	lite, err := openDB(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("new venue repository: %w", err)
	}

	if err := initAndSeed(lite, seedPath); err != nil {
		lite.Close()
		return nil, nil, fmt.Errorf("new venue repository: %w", err)
	}

	log.Printf("Using sqlite venue catalog path=%s", dbPath)
	return repositories.NewSqliteVenueRepository(lite), func() { lite.Close() }, nil
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// newPoolCache picks the venue-pool cache backend: Redis when REDIS_ADDR
// is set, otherwise an in-process map for single-node runs.
func newPoolCache(redisAddr string) (ports.VenuePoolCache, error) {
	if redisAddr == "" {
		log.Println("REDIS_ADDR not set, using in-memory venue pool cache")
		return cache.NewMemoryVenueCache(), nil
	}

	client := goredis.NewClient(&goredis.Options{Addr: redisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %q: %w", redisAddr, err)
	}

	log.Printf("Using redis venue pool cache addr=%s", redisAddr)
	return cache.NewRedisVenueCache(client, 15*time.Minute), nil
}
