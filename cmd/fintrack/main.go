package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fintrack/go-finance-client/api"
	"github.com/fintrack/go-finance-client/dashboard"
	"github.com/fintrack/go-finance-client/internal/config"
	"github.com/fintrack/go-finance-client/session"
	"github.com/fintrack/go-finance-client/session/credstore"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("fintrack failed")
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	displayAppname(c.GetAppName())

	client := api.New(c.GetBaseURL(), c.GetHTTPTimeout())
	creds := credstore.NewFileRepo(c.GetCredentialFile())

	sessions, err := session.NewManager(client, creds,
		session.WithRefreshInterval(c.GetTokenRefreshInterval()),
		session.WithNavigator(func(route session.Route) {
			log.Info().Str("route", string(route)).Msg("navigate")
		}),
	)
	if err != nil {
		return fmt.Errorf("session.NewManager: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if sessions.Current() == nil {
		username := config.GetEnv("FINTRACK_USERNAME", "")
		password := config.GetEnv("FINTRACK_PASSWORD", "")
		if username == "" || password == "" {
			return errors.New("no stored session: set FINTRACK_USERNAME and FINTRACK_PASSWORD")
		}
		if err := sessions.Login(ctx, username, password); err != nil {
			return fmt.Errorf("login: %w", err)
		}
	}

	board, err := dashboard.New(client, sessions, dashboard.WithConfirmer(confirmOnStdin))
	if err != nil {
		return fmt.Errorf("dashboard.New: %w", err)
	}

	if err := board.RefreshAll(ctx); err != nil {
		return fmt.Errorf("refresh dashboard: %w", err)
	}
	printSummary(board.Snapshot(), sessions.Current())
	return nil
}

func printSummary(snap dashboard.Snapshot, sess *session.Session) {
	fmt.Printf("Dashboard for %s (user %d), refreshed %s\n",
		sess.Identity.Username, sess.Identity.UserID, time.Now().Format(time.Kitchen))
	fmt.Printf("  transactions:        %d\n", len(snap.Transactions))
	fmt.Printf("  subscriptions:       %d\n", len(snap.Subscriptions))
	fmt.Printf("  goals:               %d\n", len(snap.Goals))
	fmt.Printf("  bills:               %d\n", len(snap.Bills))
	fmt.Printf("  reminders:           %d\n", len(snap.Reminders))
	fmt.Printf("  shopping reminders:  %d\n", len(snap.ShoppingReminders))
	fmt.Printf("  missing expenses:    %d\n", len(snap.MissingExpenses))
	fmt.Printf("  saving suggestions:  %d\n", len(snap.SavingSuggestions))
	if snap.SmartInsights.SavingTip != "" {
		fmt.Printf("  tip: %s\n", snap.SmartInsights.SavingTip)
	}
}

func confirmOnStdin(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
