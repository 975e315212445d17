package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fintrack/go-finance-client/finance"
	errs "github.com/fintrack/go-finance-client/internal/errors"
)

// Every mutation performs exactly one authenticated write and, on success,
// re-runs the full batch fetch so the snapshot reflects server state. No
// mutation patches the snapshot optimistically.

// AddTransaction submits a new transaction and clears the form on success.
func (o *Orchestrator) AddTransaction(ctx context.Context, form *TransactionForm) error {
	req, err := form.build()
	if err != nil {
		return err
	}
	return o.submit(ctx, form, func(access string) error {
		return o.client.Post(ctx, access, transactionsPath, req, nil)
	})
}

// DeleteTransaction removes a transaction after explicit user confirmation.
func (o *Orchestrator) DeleteTransaction(ctx context.Context, id int64) error {
	if !o.confirm("Are you sure you want to delete this transaction?") {
		return errs.ErrNotConfirmed
	}
	return o.submit(ctx, nil, func(access string) error {
		return o.client.Delete(ctx, access, fmt.Sprintf("%s%d/", transactionsPath, id))
	})
}

// AddReminder submits a new personal reminder.
func (o *Orchestrator) AddReminder(ctx context.Context, form *ReminderForm) error {
	req, err := form.build()
	if err != nil {
		return err
	}
	return o.submit(ctx, form, func(access string) error {
		return o.client.Post(ctx, access, remindersPath, req, nil)
	})
}

// UpdateReminder replaces an existing reminder's fields.
func (o *Orchestrator) UpdateReminder(ctx context.Context, id int64, form *ReminderForm) error {
	req, err := form.build()
	if err != nil {
		return err
	}
	return o.submit(ctx, form, func(access string) error {
		return o.client.Put(ctx, access, fmt.Sprintf("%s%d/", remindersPath, id), req, nil)
	})
}

// MarkReminderComplete flags a reminder as done.
func (o *Orchestrator) MarkReminderComplete(ctx context.Context, id int64) error {
	return o.submit(ctx, nil, func(access string) error {
		body := finance.ReminderCompletion{IsCompleted: true}
		return o.client.Patch(ctx, access, fmt.Sprintf("%s%d/", remindersPath, id), body, nil)
	})
}

// DeleteReminder removes a reminder after explicit user confirmation. Without
// confirmation no request is made.
func (o *Orchestrator) DeleteReminder(ctx context.Context, id int64) error {
	if !o.confirm("Are you sure you want to delete this reminder?") {
		return errs.ErrNotConfirmed
	}
	return o.submit(ctx, nil, func(access string) error {
		return o.client.Delete(ctx, access, fmt.Sprintf("%s%d/", remindersPath, id))
	})
}

// AddSubscription submits a new recurring payment.
func (o *Orchestrator) AddSubscription(ctx context.Context, form *SubscriptionForm) error {
	req, err := form.build()
	if err != nil {
		return err
	}
	return o.submit(ctx, form, func(access string) error {
		return o.client.Post(ctx, access, subscriptionsPath, req, nil)
	})
}

// AddGoal submits a new savings goal.
func (o *Orchestrator) AddGoal(ctx context.Context, form *GoalForm) error {
	req, err := form.build()
	if err != nil {
		return err
	}
	return o.submit(ctx, form, func(access string) error {
		return o.client.Post(ctx, access, goalsPath, req, nil)
	})
}

// AddBill submits a new bill.
func (o *Orchestrator) AddBill(ctx context.Context, form *BillForm) error {
	req, err := form.build()
	if err != nil {
		return err
	}
	return o.submit(ctx, form, func(access string) error {
		return o.client.Post(ctx, access, billsPath, req, nil)
	})
}

// PredictExpense asks the backend for next month's expense estimate. The
// prediction is returned to the caller and is not part of the snapshot.
func (o *Orchestrator) PredictExpense(ctx context.Context) (decimal.Decimal, error) {
	access, err := o.access()
	if err != nil {
		return decimal.Zero, err
	}
	var prediction finance.Prediction
	if err := o.client.Get(ctx, access, predictExpensePath, &prediction); err != nil {
		if errs.Is(err, errs.ErrUnauthorized) {
			o.sessions.Logout()
		}
		return decimal.Zero, err
	}
	return prediction.Prediction, nil
}

// resettable is the part of a form a successful submission clears.
type resettable interface {
	Reset()
}

// submit runs one authenticated write, forcing a logout on a 401 and leaving
// form state alone on any failure. On success the form is reset and the whole
// snapshot is re-fetched.
func (o *Orchestrator) submit(ctx context.Context, form resettable, write func(access string) error) error {
	access, err := o.access()
	if err != nil {
		o.setError(err)
		return err
	}

	if err := write(access); err != nil {
		if errs.Is(err, errs.ErrUnauthorized) {
			o.sessions.Logout()
		}
		return err
	}

	if form != nil {
		form.Reset()
	}
	return o.RefreshAll(ctx)
}
