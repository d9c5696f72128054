package core

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	TransactionType string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Category is a named bucket transactions are classified into.
	// Budget is a monthly limit in cents; zero means no budget is set.
	Category struct {
		ID     string          `json:"id"`
		Name   string          `json:"name"`
		Type   TransactionType `json:"type"`
		Color  string          `json:"color"`
		Budget Money           `json:"budget"`
	}

	// Transaction is a single dated money movement. The ID is assigned by
	// the ledger at creation time, never by the caller.
	Transaction struct {
		ID         string          `json:"id"`
		Amount     Money           `json:"amount"`
		Type       TransactionType `json:"type"`
		CategoryID string          `json:"categoryId"`
		Date       Date            `json:"date"`
		Note       string          `json:"note"`
	}

	// User is the persisted session record.
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrMissingCategory = errors.New("missing category")
	ErrEmptyID         = errors.New("empty id")
	ErrEmptyName       = errors.New("empty name")
)

// DateLayout is the wire format for calendar dates ("local calendar day",
// no time-of-day semantics).
const DateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// String renders the date in wire format.
func (d Date) String() string {
	return d.Time.Format(DateLayout)
}

// InMonth reports whether the date falls within the given calendar month,
// inclusive of its first and last day.
func (d Date) InMonth(year, month int) bool {
	return d.Year() == year && int(d.Time.Month()) == month
}

// InRange reports whether the date lies within [start, end] inclusive.
func (d Date) InRange(start, end Date) bool {
	return !d.Before(start.Time) && !d.After(end.Time)
}

// MarshalJSON renders the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON renders money as a bare integer number of cents.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(m.Cents, 10)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	cents, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return ErrInvalidAmount
	}
	m.Cents = cents
	return nil
}

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if !c.Type.Valid() {
		return ErrInvalidType
	}
	if c.Budget.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(t.CategoryID) == "" {
		return ErrMissingCategory
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if len(t.Note) > 200 {
		return errors.New("note too long (max 200 characters)")
	}
	return nil
}
