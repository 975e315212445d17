package finance

import "github.com/shopspring/decimal"

// Write request payloads. Field names follow the backend's serializers, the
// authenticated user is attached server side.

type NewTransaction struct {
	Title           string          `json:"title"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transaction_type"`
	Category        string          `json:"category"`
	Date            string          `json:"date"`
}

type NewReminder struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	DueDate     string  `json:"due_date"`
}

type NewSubscription struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	DueDate  string          `json:"due_date"`
}

type NewGoal struct {
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	SavedAmount  decimal.Decimal `json:"saved_amount"`
	EndDate      string          `json:"end_date"`
}

type NewBill struct {
	Title   string          `json:"title"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"due_date"`
}

// ReminderCompletion is the PATCH body for marking a reminder done.
type ReminderCompletion struct {
	IsCompleted bool `json:"is_completed"`
}
