package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack/go-finance-client/finance"
	errs "github.com/fintrack/go-finance-client/internal/errors"
	"github.com/fintrack/go-finance-client/internal/utils"
)

// Forms mirror the dashboard input fields. A successful submission resets the
// form; a failed one leaves it untouched so the user can correct and resubmit.

// TransactionForm captures a new income or expense entry.
type TransactionForm struct {
	Title    string `validate:"required,max=255"`
	Amount   string `validate:"required"`
	Type     string `validate:"required,oneof=income expense"`
	Category string `validate:"required,max=100"`
	Date     string `validate:"required"`
}

// Reset clears the form back to its initial state.
func (f *TransactionForm) Reset() {
	*f = TransactionForm{Type: finance.TypeExpense}
}

func (f *TransactionForm) build() (*finance.NewTransaction, error) {
	if err := validateStruct(f); err != nil {
		return nil, err
	}
	amount, err := parseAmount("amount", f.Amount)
	if err != nil {
		return nil, err
	}
	date, err := finance.NormalizeDate(f.Date)
	if err != nil {
		return nil, errs.Wrapf(errs.ErrInvalidDate, "transaction date: %v", err)
	}
	return &finance.NewTransaction{
		Title:           f.Title,
		Amount:          amount,
		TransactionType: f.Type,
		Category:        f.Category,
		Date:            date,
	}, nil
}

// ReminderForm captures a personal reminder, for both create and update.
type ReminderForm struct {
	Title       string `validate:"required,max=255"`
	Description string
	DueDate     string `validate:"required"`
}

func (f *ReminderForm) Reset() {
	*f = ReminderForm{}
}

func (f *ReminderForm) build() (*finance.NewReminder, error) {
	if err := validateStruct(f); err != nil {
		return nil, err
	}
	due, err := finance.NormalizeDate(f.DueDate)
	if err != nil {
		return nil, errs.Wrapf(errs.ErrInvalidDate, "reminder due date: %v", err)
	}
	req := &finance.NewReminder{
		Title:   f.Title,
		DueDate: due,
	}
	if f.Description != "" {
		req.Description = utils.Ptr(f.Description)
	}
	return req, nil
}

// SubscriptionForm captures a recurring payment. Category defaults to
// "Subscriptions" on reset, matching the dashboard's preselected option.
type SubscriptionForm struct {
	Name        string `validate:"required,max=255"`
	Amount      string `validate:"required"`
	BillingDate string `validate:"required"`
	Category    string `validate:"required,max=100"`
}

const defaultSubscriptionCategory = "Subscriptions"

func (f *SubscriptionForm) Reset() {
	*f = SubscriptionForm{Category: defaultSubscriptionCategory}
}

func (f *SubscriptionForm) build() (*finance.NewSubscription, error) {
	if err := validateStruct(f); err != nil {
		return nil, err
	}
	amount, err := parseAmount("amount", f.Amount)
	if err != nil {
		return nil, err
	}
	due, err := finance.NormalizeDate(f.BillingDate)
	if err != nil {
		return nil, errs.Wrapf(errs.ErrInvalidDate, "billing date: %v", err)
	}
	return &finance.NewSubscription{
		Title:    f.Name,
		Amount:   amount,
		Category: f.Category,
		DueDate:  due,
	}, nil
}

// GoalForm captures a savings goal. SavedAmount is optional and defaults to zero.
type GoalForm struct {
	Name         string `validate:"required,max=255"`
	TargetAmount string `validate:"required"`
	SavedAmount  string
	EndDate      string `validate:"required"`
}

func (f *GoalForm) Reset() {
	*f = GoalForm{}
}

func (f *GoalForm) build() (*finance.NewGoal, error) {
	if err := validateStruct(f); err != nil {
		return nil, err
	}
	target, err := parseAmount("target amount", f.TargetAmount)
	if err != nil {
		return nil, err
	}
	saved := decimal.Zero
	if f.SavedAmount != "" {
		if saved, err = parseAmount("saved amount", f.SavedAmount); err != nil {
			return nil, err
		}
	}
	end, err := finance.NormalizeDate(f.EndDate)
	if err != nil {
		return nil, errs.Wrapf(errs.ErrInvalidDate, "goal end date: %v", err)
	}
	return &finance.NewGoal{
		Name:         f.Name,
		TargetAmount: target,
		SavedAmount:  saved,
		EndDate:      end,
	}, nil
}

// BillForm captures an upcoming bill.
type BillForm struct {
	Name    string `validate:"required,max=255"`
	Amount  string `validate:"required"`
	DueDate string `validate:"required"`
}

func (f *BillForm) Reset() {
	*f = BillForm{}
}

func (f *BillForm) build() (*finance.NewBill, error) {
	if err := validateStruct(f); err != nil {
		return nil, err
	}
	amount, err := parseAmount("amount", f.Amount)
	if err != nil {
		return nil, err
	}
	due, err := finance.NormalizeDate(f.DueDate)
	if err != nil {
		return nil, errs.Wrapf(errs.ErrInvalidDate, "bill due date: %v", err)
	}
	return &finance.NewBill{
		Title:   f.Name,
		Amount:  amount,
		DueDate: due,
	}, nil
}
