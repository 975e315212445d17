// Package dashboard aggregates the finance tracker collections into a single
// snapshot and exposes the mutation helpers the UI submits through. The
// snapshot is all or nothing: a refresh either fills every slot or resets
// them all, so consumers never observe a partial aggregate.
package dashboard

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/fintrack/go-finance-client/api"
	"github.com/fintrack/go-finance-client/finance"
	errs "github.com/fintrack/go-finance-client/internal/errors"
	"github.com/fintrack/go-finance-client/session"
)

// Resource endpoints aggregated into the snapshot, plus the detail and
// insight endpoints used by mutations.
const (
	transactionsPath      = "/api/transactions/"
	monthlySummaryPath    = "/api/monthly-summary/"
	categoryAnalysisPath  = "/api/category-analysis/"
	smartInsightsPath     = "/api/smart-insights/"
	subscriptionsPath     = "/api/subscriptions/"
	goalsPath             = "/api/goals/"
	billsPath             = "/api/bills/"
	shoppingRemindersPath = "/api/smart-shopping-reminders/"
	missingExpensesPath   = "/api/missing-expenses/"
	remindersPath         = "/api/reminders/"
	savingSuggestionPath  = "/api/saving-suggestion/"
	predictExpensePath    = "/api/predict-expense/"
)

// Snapshot is the aggregate of all dashboard collections. The zero value is
// the empty default every slot resets to on failure.
type Snapshot struct {
	Transactions      []finance.Transaction
	MonthlySummary    finance.MonthlySummary
	CategoryBreakdown finance.CategoryBreakdown
	SmartInsights     finance.SmartInsights
	Subscriptions     []finance.Subscription
	Goals             []finance.Goal
	Bills             []finance.Bill
	ShoppingReminders []finance.ShoppingReminder
	MissingExpenses   []finance.MissingExpense
	Reminders         []finance.Reminder
	SavingSuggestions []finance.SavingSuggestion
}

// normalize substitutes empty defaults for slots the server returned as null,
// so consumers can range over every collection without nil checks.
func (s *Snapshot) normalize() {
	if s.Transactions == nil {
		s.Transactions = []finance.Transaction{}
	}
	if s.CategoryBreakdown == nil {
		s.CategoryBreakdown = finance.CategoryBreakdown{}
	}
	if s.Subscriptions == nil {
		s.Subscriptions = []finance.Subscription{}
	}
	if s.Goals == nil {
		s.Goals = []finance.Goal{}
	}
	if s.Bills == nil {
		s.Bills = []finance.Bill{}
	}
	if s.ShoppingReminders == nil {
		s.ShoppingReminders = []finance.ShoppingReminder{}
	}
	if s.MissingExpenses == nil {
		s.MissingExpenses = []finance.MissingExpense{}
	}
	if s.Reminders == nil {
		s.Reminders = []finance.Reminder{}
	}
	if s.SavingSuggestions == nil {
		s.SavingSuggestions = []finance.SavingSuggestion{}
	}
}

// Confirmer asks the user to confirm a destructive operation. Deletes are
// only sent after it returns true.
type Confirmer func(prompt string) bool

// Orchestrator owns the snapshot and mediates every dashboard read and write.
type Orchestrator struct {
	client   *api.Client
	sessions *session.Manager
	confirm  Confirmer

	lock     sync.RWMutex
	snapshot Snapshot
	err      error
}

// Option modifies an Orchestrator.
type Option func(*Orchestrator)

// WithConfirmer sets the confirmation callback for destructive operations.
// Without one, deletes are always refused.
func WithConfirmer(c Confirmer) Option {
	return func(o *Orchestrator) {
		o.confirm = c
	}
}

// New creates an Orchestrator bound to a session manager. The snapshot starts
// empty until the first successful RefreshAll.
func New(client *api.Client, sessions *session.Manager, options ...Option) (*Orchestrator, error) {
	if client == nil {
		return nil, errors.New("[dashboard.New] api client is required")
	}
	if sessions == nil {
		return nil, errors.New("[dashboard.New] session manager is required")
	}

	o := &Orchestrator{
		client:   client,
		sessions: sessions,
		confirm:  func(string) bool { return false },
	}
	for _, opt := range options {
		opt(o)
	}
	return o, nil
}

// RefreshAll fetches every dashboard collection concurrently and replaces the
// snapshot in one assignment once all requests have settled. A 401 from any
// endpoint forces a logout and leaves the snapshot untouched; any other
// failure resets every slot and surfaces one aggregated error.
func (o *Orchestrator) RefreshAll(ctx context.Context) error {
	sess := o.sessions.Current()
	if sess == nil {
		err := errs.ErrNotAuthenticated
		o.setError(err)
		return err
	}
	access := sess.AccessToken

	var next Snapshot
	fetches := []struct {
		path string
		dst  any
	}{
		{transactionsPath, &next.Transactions},
		{monthlySummaryPath, &next.MonthlySummary},
		{categoryAnalysisPath, &next.CategoryBreakdown},
		{smartInsightsPath, &next.SmartInsights},
		{subscriptionsPath, &next.Subscriptions},
		{goalsPath, &next.Goals},
		{billsPath, &next.Bills},
		{shoppingRemindersPath, &next.ShoppingReminders},
		{missingExpensesPath, &next.MissingExpenses},
		{remindersPath, &next.Reminders},
		{savingSuggestionPath, &next.SavingSuggestions},
	}

	// The group carries no shared context, so a failing request never cancels
	// the others: every request settles before the snapshot is touched.
	var g errgroup.Group
	var unauthorized atomic.Bool
	results := make([]error, len(fetches))
	for i, fetch := range fetches {
		g.Go(func() error {
			err := o.client.Get(ctx, access, fetch.path, fetch.dst)
			if errs.Is(err, errs.ErrUnauthorized) {
				unauthorized.Store(true)
			}
			results[i] = err
			return err
		})
	}
	_ = g.Wait()

	if unauthorized.Load() {
		// The logout and redirect are the user visible outcome; no data error
		// is surfaced and the previous snapshot is left as it was.
		log.Warn().Msg("dashboard fetch unauthorized, logging out")
		o.sessions.Logout()
		return errs.ErrUnauthorized
	}

	var firstErr error
	for _, err := range results {
		if err != nil {
			firstErr = err
			break
		}
	}
	if firstErr != nil {
		aggregated := errs.Wrapf(firstErr, "failed to fetch dashboard data")
		o.lock.Lock()
		o.snapshot = Snapshot{}
		o.err = aggregated
		o.lock.Unlock()
		return aggregated
	}

	next.normalize()
	o.lock.Lock()
	o.snapshot = next
	o.err = nil
	o.lock.Unlock()
	return nil
}

// Snapshot returns the current aggregate. The single assignment in RefreshAll
// guarantees it is never a mix of two refresh cycles.
func (o *Orchestrator) Snapshot() Snapshot {
	o.lock.RLock()
	defer o.lock.RUnlock()
	return o.snapshot
}

// Err returns the current banner error state, nil when the last refresh succeeded.
func (o *Orchestrator) Err() error {
	o.lock.RLock()
	defer o.lock.RUnlock()
	return o.err
}

func (o *Orchestrator) setError(err error) {
	o.lock.Lock()
	defer o.lock.Unlock()
	o.err = err
}

// access returns the current bearer token, or ErrNotAuthenticated.
func (o *Orchestrator) access() (string, error) {
	sess := o.sessions.Current()
	if sess == nil {
		return "", errs.ErrNotAuthenticated
	}
	return sess.AccessToken, nil
}
