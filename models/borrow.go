package models

// Borrow transaction status values
const (
	TrxBorrowed = "borrowed"
	TrxReturned = "returned"
)

// BorrowTransaction represents one borrow/return record as the API
// returns it, with the book and user denormalized in
type BorrowTransaction struct {
	ID         string   `json:"_id"`
	Book       *Book    `json:"book"`
	User       *UserRef `json:"user"`
	Status     string   `json:"status"` // borrowed or returned
	BorrowedAt string   `json:"borrowedAt"`
	ReturnedAt string   `json:"returnedAt,omitempty"`
	DueDate    string   `json:"dueDate,omitempty"`
}

// BorrowStats backs the status filter pills above the transactions table
type BorrowStats struct {
	Total    int `json:"total"`
	Borrowed int `json:"borrowed"`
	Returned int `json:"returned"`
}

// BorrowListResponse is the GET /borrow/transactions envelope
type BorrowListResponse struct {
	Data       []BorrowTransaction `json:"data"`
	Stats      BorrowStats         `json:"stats"`
	Pagination Pagination          `json:"pagination"`
}

// Totals per axis on the dashboard cards
type UserCounts struct {
	Total int `json:"total"`
	Admin int `json:"admin"`
	User  int `json:"user"`
}

type BookCounts struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Borrowed  int `json:"borrowed"`
}

// TrendPoint is one day or month bucket on the dashboard charts
type TrendPoint struct {
	Date     string `json:"date"`
	Borrowed int    `json:"borrowed"`
	Returned int    `json:"returned"`
}

// PopularBook is one bar on the most-borrowed chart
type PopularBook struct {
	Title       string `json:"title"`
	BorrowCount int    `json:"borrowCount"`
}

// DashboardStats is the GET /borrow/stats payload, aggregated entirely
// by the API for the requested range
type DashboardStats struct {
	Users        UserCounts    `json:"users"`
	Books        BookCounts    `json:"books"`
	Borrowed     int           `json:"borrowed"`
	Returned     int           `json:"returned"`
	DailyData    []TrendPoint  `json:"dailyData"`
	MonthlyData  []TrendPoint  `json:"monthlyData"`
	PopularBooks []PopularBook `json:"popularBooks"`
}

// RangeOption is one entry of GET /borrow/getRange (the range picker)
type RangeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
