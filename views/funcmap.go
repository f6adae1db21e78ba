package views

import "html/template"

// FuncMap exposes the presentation helpers to the templates
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate":   FormatDate,
		"dueDateBadge": DueDateBadge,
		"bookBadge":    BookStatusBadge,
		"trxBadge":     TrxStatusBadge,
		"levelClass":   LevelBadgeClass,
	}
}
