package dashclient

import (
	"fmt"
	"time"
)

// Row types carry only what the terminal watcher prints.

type Application struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	Role      *struct {
		Title string `json:"title"`
	} `json:"role"`
}

type Role struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	Department       string `json:"department"`
	IsActive         bool   `json:"isActive"`
	ApplicationCount int64  `json:"applicationCount"`
}

type Withdrawal struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	Amount    float64   `json:"amount"`
	BankName  string    `json:"bank_name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Transaction struct {
	OrderID   string    `json:"order_id"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Amount    float64   `json:"amount"`
	Status    *string   `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Mitra struct {
	TokenNumber  string     `json:"token_number"`
	Name         *string    `json:"name"`
	Email        *string    `json:"email"`
	StatusActive *bool      `json:"status_active"`
	RegisterDate *time.Time `json:"register_date"`
}

// Columns renders a row for a tab-separated table.
type Columns interface {
	Columns() []string
}

func (a Application) Columns() []string {
	role := "-"
	if a.Role != nil {
		role = a.Role.Title
	}
	return []string{a.FirstName + " " + a.LastName, a.Email, role, a.Status, day(a.CreatedAt)}
}

func (r Role) Columns() []string {
	active := "inactive"
	if r.IsActive {
		active = "active"
	}
	return []string{r.Title, r.Department, active, fmt.Sprint(r.ApplicationCount)}
}

func (w Withdrawal) Columns() []string {
	return []string{w.UserEmail, fmt.Sprintf("%.2f", w.Amount), w.BankName, w.Status, day(w.CreatedAt)}
}

func (t Transaction) Columns() []string {
	return []string{t.OrderID, str(t.Name), str(t.Email), fmt.Sprintf("%.2f", t.Amount), str(t.Status), day(t.CreatedAt)}
}

func (m Mitra) Columns() []string {
	status := "unknown"
	if m.StatusActive != nil {
		status = "inactive"
		if *m.StatusActive {
			status = "active"
		}
	}
	reg := "-"
	if m.RegisterDate != nil {
		reg = day(*m.RegisterDate)
	}
	return []string{m.TokenNumber, str(m.Name), str(m.Email), status, reg}
}

func str(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}

func day(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}
