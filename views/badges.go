package views

import (
	"fmt"
	"time"

	"frontend-go/models"
)

// Tier is the severity of a badge, from none up to overdue
type Tier int

const (
	TierNone Tier = iota
	TierInfo
	TierWarning
	TierOverdue
)

// Badge is a rendered label plus its styling class
type Badge struct {
	Text  string
	Icon  string
	Tier  Tier
	Class string
}

// apiDateLayouts are the timestamp shapes the API is known to produce
var apiDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

func parseAPIDate(s string) (time.Time, bool) {
	for _, layout := range apiDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an API timestamp the id-ID way (dd/mm/yyyy)
func FormatDate(s string) string {
	t, ok := parseAPIDate(s)
	if !ok {
		return s
	}
	return t.Format("02/01/2006")
}

// DaysUntilDue counts whole calendar days from now to the due date;
// negative means overdue
func DaysUntilDue(due, now time.Time) int {
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(dueDay.Sub(today).Hours() / 24)
}

// DueBadge applies the due-date ladder, first match wins:
// returned → no badge; overdue → red; due today → yellow; due within
// three days → orange; further out → plain date, no severity.
func DueBadge(daysUntilDue int, dueDateText, status string) (Badge, bool) {
	if status == models.TrxReturned {
		return Badge{}, false
	}

	switch {
	case daysUntilDue < 0:
		return Badge{
			Text:  fmt.Sprintf("Terlambat %d hari", -daysUntilDue),
			Tier:  TierOverdue,
			Class: "bg-red-100 text-red-800",
		}, true
	case daysUntilDue == 0:
		return Badge{
			Text:  "Due hari ini",
			Tier:  TierInfo,
			Class: "bg-yellow-100 text-yellow-800",
		}, true
	case daysUntilDue <= 3:
		return Badge{
			Text:  fmt.Sprintf("Due %d hari lagi", daysUntilDue),
			Tier:  TierWarning,
			Class: "bg-orange-100 text-orange-800",
		}, true
	default:
		return Badge{
			Text:  "Due: " + dueDateText,
			Tier:  TierNone,
			Class: "bg-gray-100 text-gray-800",
		}, true
	}
}

// DueDateBadge is the template-facing wrapper over DueBadge
func DueDateBadge(dueDate, status string) *Badge {
	due, ok := parseAPIDate(dueDate)
	if !ok {
		return nil
	}
	badge, ok := DueBadge(DaysUntilDue(due, time.Now()), FormatDate(dueDate), status)
	if !ok {
		return nil
	}
	return &badge
}

// BookStatusBadge is a total mapping over the book status set
func BookStatusBadge(status string) Badge {
	switch status {
	case models.BookAvailable:
		return Badge{Text: "Tersedia", Icon: "✅", Class: "bg-green-100 text-green-800 border-green-200"}
	case models.BookBorrowed:
		return Badge{Text: "Dipinjam", Icon: "📚", Tier: TierWarning, Class: "bg-orange-100 text-orange-800 border-orange-200"}
	default:
		return Badge{Text: status, Class: "bg-gray-100 text-gray-800 border-gray-200"}
	}
}

// TrxStatusBadge is a total mapping over the transaction status set
func TrxStatusBadge(status string) Badge {
	switch status {
	case models.TrxBorrowed:
		return Badge{Text: "Dipinjam", Icon: "📚", Tier: TierWarning, Class: "bg-orange-100 text-orange-800 border-orange-200"}
	case models.TrxReturned:
		return Badge{Text: "Dikembalikan", Icon: "🔄", Class: "bg-green-100 text-green-800 border-green-200"}
	default:
		return Badge{Text: status, Class: "bg-gray-100 text-gray-800 border-gray-200"}
	}
}

// LevelBadgeClass colors the reading-level chip
func LevelBadgeClass(level string) string {
	switch level {
	case "A1":
		return "bg-blue-100 text-blue-800"
	case "A2":
		return "bg-green-100 text-green-800"
	case "B1":
		return "bg-yellow-100 text-yellow-800"
	case "B2":
		return "bg-orange-100 text-orange-800"
	case "C1":
		return "bg-red-100 text-red-800"
	case "C2":
		return "bg-purple-100 text-purple-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}
