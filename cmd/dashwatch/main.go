// Command dashwatch keeps one dashboard list on screen, polling silently and
// reading simple commands from stdin:
//
//	n / p          next / previous page
//	/text          search (debounced)
//	s STATUS       status filter ("ALL" clears)
//	u ID STATUS    change status (applications, withdrawals)
//	d ID           delete, asks for confirmation (applications)
//	r              refresh
//	q              quit
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"

	"ucentric_backend/pkg/dashclient"
	"ucentric_backend/pkg/listcontroller"
)

var log = logrus.New()

var headers = map[string][]string{
	"applications": {"NAME", "EMAIL", "ROLE", "STATUS", "APPLIED"},
	"roles":        {"TITLE", "DEPARTMENT", "STATE", "APPLICATIONS"},
	"withdrawals":  {"EMAIL", "AMOUNT", "BANK", "STATUS", "CREATED"},
	"transactions": {"ORDER", "NAME", "EMAIL", "AMOUNT", "STATUS", "CREATED"},
	"mitra":        {"TOKEN", "NAME", "EMAIL", "STATUS", "REGISTERED"},
}

func main() {
	base := flag.String("base", envOr("DASH_BASE_URL", "http://localhost:3000"), "API base url")
	token := flag.String("token", os.Getenv("DASH_TOKEN"), "bearer token")
	email := flag.String("email", "", "login email (used when -token is empty)")
	password := flag.String("password", os.Getenv("DASH_PASSWORD"), "login password")
	screen := flag.String("screen", "applications", "applications|roles|withdrawals|transactions|mitra")
	poll := flag.Duration("poll", listcontroller.DefaultPollInterval, "silent refresh interval, 0 disables")
	flag.Parse()

	if _, ok := headers[*screen]; !ok {
		log.Fatalf("unknown screen %q", *screen)
	}

	client := dashclient.New(*base, *token)
	if client.Token == "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := client.Login(ctx, *email, *password)
		cancel()
		if err != nil {
			log.WithError(err).Fatal("login failed")
		}
	}

	opts := listcontroller.Options{PollInterval: *poll, Initial: listcontroller.Query{IncludeStats: true}}
	switch *screen {
	case "applications":
		run(dashclient.Fetcher[dashclient.Application](client, "/applications"), opts, *screen, mutations{
			update: client.UpdateApplicationStatus,
			remove: client.DeleteApplication,
		})
	case "roles":
		run(dashclient.Fetcher[dashclient.Role](client, "/roles"), opts, *screen, mutations{})
	case "withdrawals":
		run(dashclient.Fetcher[dashclient.Withdrawal](client, "/withdrawals"), opts, *screen, mutations{
			update: client.UpdateWithdrawalStatus,
		})
	case "transactions":
		run(dashclient.Fetcher[dashclient.Transaction](client, "/transactions"), opts, *screen, mutations{})
	case "mitra":
		run(dashclient.Fetcher[dashclient.Mitra](client, "/mitra"), opts, *screen, mutations{})
	}
}

// mutations: nil = tidak tersedia di layar ini.
type mutations struct {
	update func(ctx context.Context, id, status string) error
	remove func(ctx context.Context, id string) error
}

// session holds what the input loop needs between lines.
type session[T dashclient.Columns] struct {
	screen        string
	ctrl          *listcontroller.Controller[T]
	mut           mutations
	pendingDelete string

	mu     sync.Mutex // guards notice and the terminal
	notice string
}

func (s *session[T]) show(st listcontroller.State[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	render(s.screen, st, s.notice)
}

// say sets the notice line and redraws right away.
func (s *session[T]) say(msg string) {
	s.mu.Lock()
	s.notice = msg
	s.mu.Unlock()
	s.show(s.ctrl.Snapshot())
}

func run[T dashclient.Columns](fetch listcontroller.Fetcher[T], opts listcontroller.Options, screen string, mut mutations) {
	ctrl := listcontroller.New(fetch, opts)
	defer ctrl.Close()
	sess := &session[T]{screen: screen, ctrl: ctrl, mut: mut}

	states, _ := ctrl.Subscribe()
	go func() {
		for st := range states {
			sess.show(st)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	lines := make(chan string)
	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			lines <- strings.TrimSpace(sc.Text())
		}
		close(lines)
	}()

	for {
		select {
		case <-sig:
			return
		case line, ok := <-lines:
			if !ok || line == "q" {
				return
			}
			sess.handle(line)
		}
	}
}

func (s *session[T]) handle(line string) {
	// baris setelah "d ID" adalah jawaban konfirmasi
	if id := s.pendingDelete; id != "" {
		s.pendingDelete = ""
		if line != "y" {
			s.say("delete cancelled")
			return
		}
		s.mutate("deleted "+id, func(ctx context.Context) error { return s.mut.remove(ctx, id) })
		return
	}

	fields := strings.Fields(line)
	switch {
	case line == "n":
		s.ctrl.Next()
	case line == "p":
		s.ctrl.Prev()
	case line == "r":
		s.ctrl.Refresh()
	case strings.HasPrefix(line, "/"):
		s.ctrl.SetSearch(strings.TrimPrefix(line, "/"))
	case len(fields) >= 2 && fields[0] == "s":
		s.ctrl.SetStatus(fields[1])
	case len(fields) == 3 && fields[0] == "u":
		if s.mut.update == nil {
			s.say("status changes are not available on this screen")
			return
		}
		id, status := fields[1], fields[2]
		s.mutate(id+" -> "+status, func(ctx context.Context) error { return s.mut.update(ctx, id, status) })
	case len(fields) == 2 && fields[0] == "d":
		if s.mut.remove == nil {
			s.say("delete is not available on this screen")
			return
		}
		s.pendingDelete = fields[1]
		s.say(fmt.Sprintf("delete %s? this cannot be undone [y/N]", fields[1]))
	}
}

// mutate runs fn and waits for the list to refetch; a failed mutation leaves the list untouched.
func (s *session[T]) mutate(done string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*listcontroller.DefaultFetchTimeout)
	defer cancel()
	if err := s.ctrl.AfterMutation(ctx, fn); err != nil {
		log.WithError(err).Warn("mutation failed")
		s.say("error: " + err.Error())
		return
	}
	s.say(done)
}

func render[T dashclient.Columns](screen string, s listcontroller.State[T], notice string) {
	fmt.Print("\033[H\033[2J")
	mark := ""
	switch {
	case s.Loading:
		mark = " (loading...)"
	case s.Refreshing:
		mark = " (refreshing)"
	}
	fmt.Printf("%s  page %d/%d  total %d%s\n", screen, s.Query.Page, s.Meta.TotalPages, s.Meta.Total, mark)
	if s.Query.Search != "" || s.Query.Status != "" {
		fmt.Printf("search=%q status=%q\n", s.Query.Search, s.Query.Status)
	}
	if s.Err != nil {
		fmt.Printf("error: %v\n", s.Err)
	}
	if notice != "" {
		fmt.Println(notice)
	}
	if len(s.Stats) > 0 {
		keys := make([]string, 0, len(s.Stats))
		for k := range s.Stats {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%d", k, s.Stats[k])
		}
		fmt.Println(strings.Join(parts, "  "))
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers[screen], "\t"))
	for _, row := range s.Data {
		fmt.Fprintln(w, strings.Join(row.Columns(), "\t"))
	}
	if len(s.Data) == 0 && !s.Loading {
		fmt.Fprintln(w, "No results")
	}
	_ = w.Flush()

	nav := []string{}
	if s.CanPrev() {
		nav = append(nav, "[p]rev")
	}
	if s.CanNext() {
		nav = append(nav, "[n]ext")
	}
	fmt.Printf("\n%s  /search  s STATUS  u ID STATUS  d ID  [r]efresh  [q]uit\n", strings.Join(nav, " "))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
