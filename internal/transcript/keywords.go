package transcript

import "time"

// Cue words that signal the direction of money movement in a spoken
// sentence. Membership is tested by substring, so a transcript like
// "i paid 200 for fuel" matches "paid" without any tokenization.
//
// Expense cues are tested before income cues; when a sentence contains
// cues from both sets the transaction is treated as an expense.
var (
	expenseCues = []string{"expenditure", "expense", "spent", "spending", "paid", "gave"}
	incomeCues  = []string{"income", "salary", "earned", "got", "received"}
)

// monthNames maps spoken month names, including the usual three-letter
// abbreviations, to calendar months. Longer names are listed in the
// matching regexp first so "january" is never consumed as "jan"+"uary".
var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}
