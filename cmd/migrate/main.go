package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"edms/internal/config"
)

var migrationsPath = flag.String("path", "db/migrations", "directory holding the migration files")

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate [-path dir] <command>")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  up          apply all pending migrations")
	fmt.Fprintln(os.Stderr, "  down [n]    revert all migrations, or only the last n")
	fmt.Fprintln(os.Stderr, "  force v     mark version v as applied without running it")
	fmt.Fprintln(os.Stderr, "  version     print the current schema version")
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	m, err := migrate.New("file://"+*migrationsPath, cfg.DB.DSN())
	if err != nil {
		log.Fatalf("open migrations: %v", err)
	}
	defer m.Close()

	switch cmd := flag.Arg(0); cmd {
	case "up":
		report(m.Up(), "schema is up to date")

	case "down":
		if flag.NArg() > 1 {
			n := argInt(flag.Arg(1))
			report(m.Steps(-n), fmt.Sprintf("reverted %d migrations", n))
			return
		}
		report(m.Down(), "schema fully reverted")

	case "force":
		if flag.NArg() < 2 {
			usage()
		}
		v := argInt(flag.Arg(1))
		report(m.Force(v), fmt.Sprintf("forced schema version to %d", v))

	case "version":
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatalf("read version: %v", err)
		}
		fmt.Printf("schema version %d (dirty=%v)\n", v, dirty)

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
	}
}

func argInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("expected a number, got %q", s)
	}
	return n
}

// report treats ErrNoChange as a clean outcome rather than a failure.
func report(err error, ok string) {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Println("no pending migrations")
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Println(ok)
}
