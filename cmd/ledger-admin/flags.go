package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"tracking/internal/entities"
	"tracking/internal/service/correction"
)

var errMissingFlag = errors.New("missing required flag")

// stringList принимает и повтор флага, и значения через запятую.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

type criteriaFlags struct {
	date      string
	clock     string
	window    time.Duration
	locations stringList
	status    string
}

func (c *criteriaFlags) register(flags *flag.FlagSet) {
	flags.StringVar(&c.date, "date", "", "approximate date of the entry")
	flags.StringVar(&c.clock, "time", "", "approximate time of the entry, HH:MM[:SS]")
	flags.DurationVar(&c.window, "window", entities.DefaultMatchWindow, "match window around -date")
	flags.Var(&c.locations, "location", "location substring, repeatable or comma separated")
	flags.StringVar(&c.status, "status", "", "entry status")
}

func (c *criteriaFlags) criteria() (entities.LedgerMatchCriteria, error) {
	criteria := entities.LedgerMatchCriteria{
		Window:           c.window,
		LocationContains: c.locations,
	}
	if c.date != "" {
		around, err := correction.ParseLooseDate(c.date, c.clock)
		if err != nil {
			return entities.LedgerMatchCriteria{}, err
		}
		criteria.Around = &around
	}
	if c.status != "" {
		criteria.Status = pointer.To(entities.ShipmentStatus(c.status))
	}
	return criteria, nil
}

type entryFlags struct {
	prefix      string
	status      string
	date        string
	clock       string
	location    string
	coordinates string
	note        string
}

func (e *entryFlags) register(flags *flag.FlagSet, prefix string) {
	e.prefix = prefix
	flags.StringVar(&e.status, prefix+"status", "", "status of the written entry")
	flags.StringVar(&e.date, prefix+"date", "", "date of the written entry")
	flags.StringVar(&e.clock, prefix+"time", "", "time of the written entry, HH:MM[:SS]")
	flags.StringVar(&e.location, prefix+"location", "", "location of the written entry")
	flags.StringVar(&e.coordinates, "coordinates", "", "coordinates of the written entry")
	flags.StringVar(&e.note, "note", "", "note of the written entry")
}

func (e *entryFlags) replacement() (entities.LedgerReplacement, error) {
	required := []struct{ name, value string }{
		{"status", e.status},
		{"date", e.date},
		{"location", e.location},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return entities.LedgerReplacement{}, missingFlag(e.prefix + r.name)
		}
	}

	timestamp, err := correction.ParseLooseDate(e.date, e.clock)
	if err != nil {
		return entities.LedgerReplacement{}, err
	}

	return entities.LedgerReplacement{
		Status:      entities.ShipmentStatus(e.status),
		Timestamp:   timestamp,
		Location:    e.location,
		Coordinates: optional(e.coordinates),
		Note:        optional(e.note),
	}, nil
}

func missingFlag(name string) error {
	return fmt.Errorf("%w: -%s", errMissingFlag, name)
}

func optional(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
