package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"tracking/internal/entities"
	"tracking/internal/handlers/rest/converters"
	"tracking/internal/pkg/config"
	"tracking/internal/service/archive"
	"tracking/internal/service/correction"
)

type environment struct {
	correction ledgerCorrection
	archive    ledgerArchive
	auth       tokenIssuer
	cfg        *config.Config
	out        io.Writer
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

func requireIdentifier(id string) error {
	if strings.TrimSpace(id) == "" {
		return missingFlag("id")
	}
	return nil
}

func runFind(ctx context.Context, env *environment, args []string) error {
	flags := newFlagSet("find")
	id := flags.String("id", "", "shipment id or tracking number")
	var match criteriaFlags
	match.register(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := requireIdentifier(*id); err != nil {
		return err
	}

	criteria, err := match.criteria()
	if err != nil {
		return err
	}

	entry, err := env.correction.FindEntry(ctx, *id, criteria)
	if err != nil {
		return err
	}
	printEntry(env.out, "found", entry)
	return nil
}

func runReplace(ctx context.Context, env *environment, args []string) error {
	flags := newFlagSet("replace")
	id := flags.String("id", "", "shipment id or tracking number")
	var match criteriaFlags
	match.register(flags)
	var entry entryFlags
	entry.register(flags, "new-")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := requireIdentifier(*id); err != nil {
		return err
	}

	criteria, err := match.criteria()
	if err != nil {
		return err
	}
	replacement, err := entry.replacement()
	if err != nil {
		return err
	}

	old, err := env.correction.FindEntry(ctx, *id, criteria)
	if err != nil {
		return err
	}
	printEntry(env.out, "replacing", old)

	created, err := env.correction.ReplaceEntry(ctx, *id, old, replacement)
	if err != nil {
		return err
	}
	printEntry(env.out, "written", created)
	return nil
}

// runRecord дописывает запись задним числом без удаления старой.
func runRecord(ctx context.Context, env *environment, args []string) error {
	flags := newFlagSet("record")
	id := flags.String("id", "", "shipment id or tracking number")
	var entry entryFlags
	entry.register(flags, "")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := requireIdentifier(*id); err != nil {
		return err
	}

	replacement, err := entry.replacement()
	if err != nil {
		return err
	}

	created, err := env.correction.ReplaceEntry(ctx, *id, nil, replacement)
	if err != nil {
		return err
	}
	printEntry(env.out, "written", created)
	return nil
}

func runFixTime(ctx context.Context, env *environment, args []string) error {
	flags := newFlagSet("fix-time")
	id := flags.String("id", "", "shipment id or tracking number")
	status := flags.String("status", "", "status of the entry to move")
	date := flags.String("date", "", "new date")
	clock := flags.String("time", "", "new time, HH:MM[:SS]")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := requireIdentifier(*id); err != nil {
		return err
	}
	if *status == "" {
		return missingFlag("status")
	}
	if *date == "" {
		return missingFlag("date")
	}

	timestamp, err := correction.ParseLooseDate(*date, *clock)
	if err != nil {
		return err
	}

	updated, err := env.correction.FixTimestamp(ctx, *id, entities.ShipmentStatus(*status), timestamp)
	if err != nil {
		return err
	}
	printEntry(env.out, "updated", updated)
	return nil
}

func runRemoveNotes(ctx context.Context, env *environment, args []string) error {
	flags := newFlagSet("remove-notes")
	id := flags.String("id", "", "shipment id or tracking number, all shipments when empty")
	contains := flags.String("contains", "", "note substring")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cleared, err := env.correction.RemoveNotes(ctx, optional(*id), *contains)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.out, "cleared %d note(s)\n", cleared)
	return nil
}

func runResync(ctx context.Context, env *environment, args []string) error {
	flags := newFlagSet("resync")
	id := flags.String("id", "", "shipment id or tracking number")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := requireIdentifier(*id); err != nil {
		return err
	}

	synced, err := env.correction.Resync(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.out, "%s: %s at %s\n", synced.TrackingNumber, synced.Status, deref(synced.CurrentLocation))
	return nil
}

func runAudit(ctx context.Context, env *environment, args []string) error {
	flags := newFlagSet("audit")
	fix := flags.Bool("fix", false, "resync drifted shipments")
	if err := flags.Parse(args); err != nil {
		return err
	}

	report, err := env.correction.Audit(ctx, *fix)
	if err != nil {
		return err
	}

	for _, d := range report.Drifted {
		fmt.Fprintf(env.out, "%s: %s at %s, ledger says %s at %s (entry %d)\n",
			d.TrackingNumber, d.Status, deref(d.CurrentLocation), d.LatestStatus, d.LatestLocation, d.LatestEntryID)
	}
	fmt.Fprintf(env.out, "drifted %d, resynced %d\n", len(report.Drifted), report.Resynced)
	return nil
}

func runExport(ctx context.Context, env *environment, args []string) error {
	flags := newFlagSet("export")
	path := flags.String("o", "", "output file, stdout when empty")
	if err := flags.Parse(args); err != nil {
		return err
	}

	snapshot, err := env.archive.Export(ctx)
	if err != nil {
		return err
	}

	if *path == "" {
		return archive.WriteSnapshot(env.out, snapshot)
	}

	file, err := os.Create(*path)
	if err != nil {
		return fmt.Errorf("create %s: %w", *path, err)
	}
	if err := archive.WriteSnapshot(file, snapshot); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", *path, err)
	}

	fmt.Fprintf(env.out, "exported %d shipment(s), %d status log(s) to %s\n",
		len(snapshot.Shipments), len(snapshot.StatusLogs), *path)
	return nil
}

func runImport(ctx context.Context, env *environment, args []string) error {
	flags := newFlagSet("import")
	path := flags.String("i", "", "snapshot file")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return missingFlag("i")
	}

	file, err := os.Open(*path)
	if err != nil {
		return fmt.Errorf("open %s: %w", *path, err)
	}
	defer file.Close()

	snapshot, err := archive.ReadSnapshot(file)
	if err != nil {
		return err
	}

	report, err := env.archive.Import(ctx, snapshot)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.out, "shipments: %d created, %d skipped\n", report.ShipmentsCreated, report.ShipmentsSkipped)
	fmt.Fprintf(env.out, "status logs: %d created, %d skipped, %d without shipment\n",
		report.LogsCreated, report.LogsSkipped, report.LogsOrphaned)
	return nil
}

func runToken(_ context.Context, env *environment, args []string) error {
	flags := newFlagSet("token")
	subject := flags.String("subject", "", "token subject")
	email := flags.String("email", "", "principal email")
	role := flags.String("role", "admin", "principal role")
	ttl := flags.Duration("ttl", env.cfg.Auth.TokenTTL, "token lifetime")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *subject == "" {
		return missingFlag("subject")
	}

	token, err := env.auth.Issue(entities.Principal{
		Subject: *subject,
		Email:   *email,
		Role:    *role,
	}, *ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.out, token)
	return nil
}

func printEntry(w io.Writer, verb string, entry *entities.StatusLogEntry) {
	fmt.Fprintf(w, "%s entry %d: %s at %s, %s", verb, entry.ID, entry.Status, entry.Location,
		entry.Timestamp.UTC().Format(converters.HistoryTimestampLayout))
	if entry.Note != nil {
		fmt.Fprintf(w, " (%s)", *entry.Note)
	}
	fmt.Fprintln(w)
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
