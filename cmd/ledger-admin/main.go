package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	application "tracking/internal/app"
	"tracking/internal/pkg/auth"
	"tracking/internal/pkg/config"
	"tracking/internal/pkg/dotenv"
	"tracking/internal/pkg/postgres"
	"tracking/pkg/logger"
	"tracking/pkg/logger/zap_adapter"
)

type command struct {
	usage   string
	offline bool // команде не нужна база
	run     func(ctx context.Context, env *environment, args []string) error
}

var commands = map[string]command{
	"find":         {usage: "-id TRK... [-date D] [-time T] [-window 24h] [-location a,b] [-status S]", run: runFind},
	"replace":      {usage: "<find flags> -new-status S -new-date D [-new-time T] -new-location L [-coordinates C] [-note N]", run: runReplace},
	"record":       {usage: "-id TRK... -status S -date D [-time T] -location L [-coordinates C] [-note N]", run: runRecord},
	"fix-time":     {usage: "-id TRK... -status S -date D [-time T]", run: runFixTime},
	"remove-notes": {usage: "-contains TEXT [-id TRK...]", run: runRemoveNotes},
	"resync":       {usage: "-id TRK...", run: runResync},
	"audit":        {usage: "[-fix]", run: runAudit},
	"export":       {usage: "[-o FILE]", run: runExport},
	"import":       {usage: "-i FILE", run: runImport},
	"token":        {usage: "-subject S -email E [-role admin] [-ttl 12h]", offline: true, run: runToken},
}

func main() {
	flags := flag.NewFlagSet("ledger-admin", flag.ExitOnError)
	envFile := flags.String("env", dotenv.DefaultFile, "path to .env file")
	flags.Usage = func() { printUsage(flags) }
	_ = flags.Parse(os.Args[1:])

	if flags.NArg() < 1 {
		flags.Usage()
		os.Exit(2)
	}
	cmd, ok := commands[flags.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", flags.Arg(0))
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

	if err := run(log, *envFile, cmd, flags.Args()[1:]); err != nil {
		log.Error("command failed", logger.NewField("error", err))
		os.Exit(1)
	}
}

func run(log logger.Logger, envFile string, cmd command, args []string) error {
	if _, err := dotenv.Load(envFile); err != nil {
		return err
	}

	cfg, err := config.LoadAdmin()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if cmd.offline {
		return cmd.run(ctx, &environment{
			auth: auth.New(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
			cfg:  cfg,
			out:  os.Stdout,
		}, args)
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	adminApp, err := application.InitializeAdminApp(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	return cmd.run(ctx, &environment{
		correction: adminApp.Correction,
		archive:    adminApp.Archive,
		auth:       adminApp.Authenticator,
		cfg:        cfg,
		out:        os.Stdout,
	}, args)
}

func printUsage(flags *flag.FlagSet) {
	out := flags.Output()
	fmt.Fprintln(out, "usage: ledger-admin [-env FILE] <command> [flags]")
	fmt.Fprintln(out)

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-13s %s\n", name, commands[name].usage)
	}
	fmt.Fprintln(out)
	flags.PrintDefaults()
}
