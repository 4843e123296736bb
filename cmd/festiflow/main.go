package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/anubhavsingh-123/festiflow-zone/internal/domain"
	"github.com/anubhavsingh-123/festiflow-zone/internal/query"
	"github.com/anubhavsingh-123/festiflow-zone/internal/seed"
	"github.com/anubhavsingh-123/festiflow-zone/internal/store"
)

const defaultUser = "guest"
const defaultSort = string(query.SortDateAscending)

func main() {
	logger := log.Default()
	loadEnvFile(logger)

	user := os.Getenv("FESTIFLOW_USER")
	if user == "" {
		logger.Printf("WARN: FESTIFLOW_USER not set, using default %q", defaultUser)
		user = defaultUser
	}

	sortEnv := os.Getenv("FESTIFLOW_SORT")
	if sortEnv == "" {
		sortEnv = defaultSort
	}
	sortKey, err := query.ParseSortKey(sortEnv)
	if err != nil {
		logger.Printf("WARN: FESTIFLOW_SORT invalid (%v), using %s", err, defaultSort)
		sortKey = query.SortDateAscending
	}

	slogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	events := store.New(store.WithLogger(slogger))

	if os.Getenv("FESTIFLOW_SEED") != "false" {
		if err := seed.Apply(events); err != nil {
			log.Fatalf("seed catalog: %v", err)
		}
		logger.Printf("seeded %d demo events", events.Len())
	}

	sh := &shell{
		store: events,
		user:  user,
		spec:  query.Spec{Sort: sortKey, Category: query.AllCategories},
		out:   os.Stdout,
	}
	sh.run(os.Stdin)
}

type shell struct {
	store *store.EventStore
	user  string
	spec  query.Spec
	out   *os.File
}

func (sh *shell) run(in *os.File) {
	fmt.Fprintf(sh.out, "festiflow — %d events, signed in as %s (type 'help')\n", sh.store.Len(), sh.user)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)
		if cmd == "quit" || cmd == "exit" {
			return
		}
		sh.dispatch(cmd, rest)
	}
}

func (sh *shell) dispatch(cmd, rest string) {
	switch cmd {
	case "help":
		sh.printHelp()
	case "list":
		sh.list()
	case "json":
		sh.listJSON()
	case "search":
		sh.spec.Term = rest
		sh.list()
	case "category":
		if rest == "" || rest == "all" {
			sh.spec.Category = query.AllCategories
		} else {
			sh.spec.Category = rest
		}
		sh.list()
	case "sort":
		key, err := query.ParseSortKey(rest)
		if err != nil {
			fmt.Fprintf(sh.out, "%v (want date-asc, date-desc, popular or available)\n", err)
			return
		}
		sh.spec.Sort = key
		sh.list()
	case "show":
		sh.show(rest)
	case "create":
		sh.create(rest)
	case "setcap":
		sh.setCapacity(rest)
	case "rsvp":
		sh.rsvp(rest)
	case "cancel":
		sh.store.Cancel(rest, sh.user)
		fmt.Fprintln(sh.out, "reservation released")
	case "delete":
		if err := sh.store.Delete(rest); err != nil {
			fmt.Fprintln(sh.out, err)
			return
		}
		fmt.Fprintln(sh.out, "event deleted")
	case "mine":
		sh.printEvents(sh.store.ListByCreator(sh.user))
	case "going":
		sh.printEvents(sh.store.ListByAttendee(sh.user))
	case "user":
		if rest != "" {
			sh.user = rest
		}
		fmt.Fprintf(sh.out, "signed in as %s\n", sh.user)
	default:
		fmt.Fprintf(sh.out, "unknown command %q (type 'help')\n", cmd)
	}
}

func (sh *shell) printHelp() {
	fmt.Fprint(sh.out, `commands:
  list                         show the current view
  search <term>                filter by text (empty term clears)
  category <name|all>          filter by category
  sort <key>                   date-asc | date-desc | popular | available
  json                         print the current view as JSON
  show <id>                    event details
  create t|date|time|loc|cap|category|description
  setcap <id> <n>              change capacity
  rsvp <id>  cancel <id>       reserve / release a seat
  delete <id>                  remove an event you created
  mine  going                  events you created / reserved
  user <id>                    switch identity
  quit
`)
}

func (sh *shell) view() ([]domain.Event, bool) {
	result, err := query.Run(sh.store.Snapshot(), sh.spec)
	if err != nil {
		fmt.Fprintln(sh.out, err)
		return nil, false
	}
	return result, true
}

func (sh *shell) list() {
	result, ok := sh.view()
	if !ok {
		return
	}
	sh.printEvents(result)
}

func (sh *shell) listJSON() {
	result, ok := sh.view()
	if !ok {
		return
	}
	data, err := domain.EncodeEvents(result)
	if err != nil {
		fmt.Fprintln(sh.out, err)
		return
	}
	fmt.Fprintln(sh.out, string(data))
}

func (sh *shell) printEvents(events []domain.Event) {
	if len(events) == 0 {
		fmt.Fprintln(sh.out, "no events found")
		return
	}
	for _, e := range events {
		status := fmt.Sprintf("%d/%d", len(e.Attendees), e.Capacity)
		if e.IsFull() {
			status += " FULL"
		}
		fmt.Fprintf(sh.out, "%-14s %s %s  [%s] %s (%s)\n", e.ID, e.Date, e.Time, e.Category, e.Title, status)
	}
}

func (sh *shell) show(id string) {
	event, ok := sh.store.Get(id)
	if !ok {
		fmt.Fprintln(sh.out, "event not found")
		return
	}
	data, err := domain.EncodeEvent(event)
	if err != nil {
		fmt.Fprintln(sh.out, err)
		return
	}
	fmt.Fprintln(sh.out, string(data))
}

func (sh *shell) create(rest string) {
	parts := strings.Split(rest, "|")
	if len(parts) != 7 {
		fmt.Fprintln(sh.out, "usage: create title|date|time|location|capacity|category|description")
		return
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	capacity, err := strconv.Atoi(parts[4])
	if err != nil {
		fmt.Fprintln(sh.out, "capacity must be an integer")
		return
	}
	event, err := sh.store.Create(domain.Draft{
		Title:       parts[0],
		Date:        parts[1],
		Time:        parts[2],
		Location:    parts[3],
		Capacity:    capacity,
		Category:    domain.Category(parts[5]),
		Description: parts[6],
		CreatorID:   sh.user,
		CreatorName: sh.user,
	})
	if err != nil {
		fmt.Fprintln(sh.out, err)
		return
	}
	fmt.Fprintf(sh.out, "created %s\n", event.ID)
}

func (sh *shell) setCapacity(rest string) {
	id, raw, ok := strings.Cut(rest, " ")
	if !ok {
		fmt.Fprintln(sh.out, "usage: setcap <id> <capacity>")
		return
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintln(sh.out, "capacity must be an integer")
		return
	}
	event, err := sh.store.Update(id, domain.Patch{Capacity: &capacity})
	if err != nil {
		if errors.Is(err, domain.ErrCapacityConflict) {
			fmt.Fprintln(sh.out, "cannot lower capacity below current attendance")
			return
		}
		fmt.Fprintln(sh.out, err)
		return
	}
	fmt.Fprintf(sh.out, "capacity now %d (%d spots left)\n", event.Capacity, event.SpotsLeft())
}

func (sh *shell) rsvp(id string) {
	res := sh.store.Reserve(id, sh.user)
	switch {
	case res.Granted:
		fmt.Fprintf(sh.out, "seat reserved — %d spots left\n", res.Event.SpotsLeft())
	case res.Reason == store.ReasonAlreadyReserved:
		fmt.Fprintln(sh.out, "you already have a seat for this event")
	case res.Reason == store.ReasonEventFull:
		fmt.Fprintln(sh.out, "event is at full capacity")
	default:
		fmt.Fprintln(sh.out, "event not found")
	}
}

func loadEnvFile(logger *log.Logger) {
	path := findEnvFile()
	if path == "" {
		return
	}
	file, err := os.Open(path)
	if err != nil {
		logger.Printf("WARN: failed to open %s: %v", path, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			logger.Printf("WARN: failed to set %s from env file", key)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Printf("WARN: failed to read %s: %v", path, err)
		return
	}
	logger.Printf("loaded env from %s", path)
}

func findEnvFile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for i := 0; i < 6; i++ {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
