package finance

import (
	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense entry.
type Transaction struct {
	ID              int64           `json:"id"`
	User            string          `json:"user"`
	Title           string          `json:"title"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transaction_type"`
	Category        string          `json:"category"`
	Date            string          `json:"date"` // YYYY-MM-DD
	CreatedAt       string          `json:"created_at,omitempty"`
}

// Transaction types accepted by the backend.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// MonthlySummary is the six month income vs expense series used by the
// dashboard chart. The three slices are index-aligned.
type MonthlySummary struct {
	Labels  []string          `json:"labels"`
	Income  []decimal.Decimal `json:"income"`
	Expense []decimal.Decimal `json:"expense"`
}

// CategoryBreakdown maps a spending category to its total for the current month.
type CategoryBreakdown map[string]decimal.Decimal

// Anomaly flags an unusually large expense.
type Anomaly struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// SmartInsights carries the server generated saving tip and any spending anomalies.
type SmartInsights struct {
	SavingTip string    `json:"saving_tip"`
	Anomalies []Anomaly `json:"anomalies"`
}

// Subscription is a recurring payment the user tracks.
type Subscription struct {
	ID        int64           `json:"id"`
	User      string          `json:"user"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	DueDate   string          `json:"due_date"`
	CreatedAt string          `json:"created_at,omitempty"`
}

// Goal is a savings goal with an optional target date.
type Goal struct {
	ID           int64           `json:"id"`
	User         string          `json:"user"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	SavedAmount  decimal.Decimal `json:"saved_amount"`
	EndDate      *string         `json:"end_date"`
	CreatedAt    string          `json:"created_at,omitempty"`
}

// Bill is an upcoming one-off payment.
type Bill struct {
	ID        int64           `json:"id"`
	User      string          `json:"user"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   string          `json:"due_date"`
	CreatedAt string          `json:"created_at,omitempty"`
}

// ShoppingReminder is a server suggested purchase based on buying habits.
type ShoppingReminder struct {
	ID              int64            `json:"id"`
	Item            string           `json:"item"`
	SuggestedAmount *decimal.Decimal `json:"suggested_amount"`
	CreatedAt       string           `json:"created_at,omitempty"`
}

// MissingExpense flags a recurring expense that has not been recorded this
// month. The ID is server generated and not a database key.
type MissingExpense struct {
	ID       string          `json:"id"`
	Message  string          `json:"message"`
	Category string          `json:"category"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
}

// Reminder is a personal to-do style reminder.
type Reminder struct {
	ID          int64   `json:"id"`
	User        string  `json:"user"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     string  `json:"due_date"`
	IsCompleted bool    `json:"is_completed"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// SavingSuggestion is a per goal weekly saving recommendation.
type SavingSuggestion struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Prediction is the server's estimate of next month's total expense.
// The underlying model is opaque to the client.
type Prediction struct {
	Prediction decimal.Decimal `json:"prediction"`
}
