package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"tracking/internal/pkg/config"
	"tracking/internal/pkg/dotenv"
	"tracking/internal/pkg/postgres"
	"tracking/migrations"
	"tracking/pkg/logger"
	"tracking/pkg/logger/zap_adapter"
)

const usage = `usage: migrate [flags] <command> [args]

commands: up, up-by-one, up-to VERSION, down, down-to VERSION, redo, reset, status, version
`

func main() {
	flags := flag.NewFlagSet("migrate", flag.ExitOnError)
	envFile := flags.String("env", dotenv.DefaultFile, "path to .env file")
	flags.Usage = func() {
		fmt.Fprint(flags.Output(), usage)
		flags.PrintDefaults()
	}
	_ = flags.Parse(os.Args[1:])

	if flags.NArg() < 1 {
		flags.Usage()
		os.Exit(2)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.Options{Level: os.Getenv("LOG_LEVEL")})
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()
	log := zapLogger.With(logger.NewField("command", flags.Arg(0)))

	if err := run(*envFile, flags.Arg(0), flags.Args()[1:]); err != nil {
		log.Error("migration failed", logger.NewField("error", err))
		os.Exit(1)
	}
	log.Info("migration finished")
}

func run(envFile, command string, args []string) error {
	if _, err := dotenv.Load(envFile); err != nil {
		return err
	}

	dbCfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := sql.Open("pgx", postgres.DSN(dbCfg))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	return migrations.Run(ctx, db, command, args...)
}
