// Package transcript turns a free-text voice transcript into a partial
// transaction draft. It is deliberately a keyword and pattern extractor,
// not a language model: every rule is a substring test or a small regexp,
// and any field it cannot find is simply left absent.
package transcript

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"moneytrail/internal/dateutils"
	"moneytrail/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

var (
	amountPattern = regexp.MustCompile(`\d+`)
	dayPattern    = regexp.MustCompile(`\b([0-9]{1,2})(?:st|nd|rd|th)?\b`)
	customPattern = regexp.MustCompile(`\bfor\s+(.+?)(?:\s+(?:and|at|on)\b|$)`)

	monthPattern *regexp.Regexp
)

func init() {
	// Longest names first so full month names win over their abbreviations.
	names := make([]string, 0, len(monthNames))
	for name := range monthNames {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	monthPattern = regexp.MustCompile(`\b(` + strings.Join(names, "|") + `)\b`)
}

// Parse extracts draft transaction fields from a spoken sentence.
// categories is the current vocabulary; referenceDate anchors relative
// dates like "yesterday". Parse is pure: it never mutates its inputs and
// the same inputs always produce the same draft.
func Parse(text string, categories []string, referenceDate time.Time) models.Draft {
	text = strings.ToLower(text)

	var draft models.Draft

	if amount := extractAmount(text); amount != nil {
		draft.Amount = amount
	}
	if txType := extractType(text); txType != nil {
		draft.Type = txType
	}
	known, custom := extractCategory(text, categories)
	draft.Category = known
	draft.CustomCategory = custom

	if date := extractDate(text, referenceDate); date != nil {
		draft.Date = date
	}

	if !draft.IsEmpty() {
		log.WithFields(logrus.Fields{
			"has_amount":   draft.Amount != nil,
			"has_type":     draft.Type != nil,
			"has_category": draft.Category != nil || draft.CustomCategory != nil,
			"has_date":     draft.Date != nil,
		}).Debug("Extracted draft fields from transcript")
	}

	return draft
}

// extractAmount returns the first maximal run of decimal digits in the
// text. Decimal points and thousands separators are not supported; a
// spoken "twelve fifty" never was either.
func extractAmount(text string) *decimal.Decimal {
	match := amountPattern.FindString(text)
	if match == "" {
		return nil
	}
	amount, err := decimal.NewFromString(match)
	if err != nil {
		return nil
	}
	return &amount
}

// extractType tests the text against the expense cue set first, then the
// income cue set. Expense wins when both match.
func extractType(text string) *models.TransactionType {
	for _, cue := range expenseCues {
		if strings.Contains(text, cue) {
			t := models.TypeExpense
			return &t
		}
	}
	for _, cue := range incomeCues {
		if strings.Contains(text, cue) {
			t := models.TypeIncome
			return &t
		}
	}
	return nil
}

// extractCategory scans the vocabulary in alphabetical order and returns
// the first category whose name appears in the text. When none matches it
// falls back to the "for <phrase>" pattern and returns the phrase as a
// custom-category candidate instead.
func extractCategory(text string, categories []string) (known, custom *string) {
	sorted := make([]string, len(categories))
	copy(sorted, categories)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i]) < strings.ToLower(sorted[j])
	})

	for _, category := range sorted {
		if category != "" && strings.Contains(text, strings.ToLower(category)) {
			c := category
			return &c, nil
		}
	}

	if match := customPattern.FindStringSubmatch(text); match != nil {
		phrase := strings.TrimSpace(match[1])
		if phrase != "" {
			return nil, &phrase
		}
	}

	return nil, nil
}

// extractDate resolves "yesterday" and "tomorrow" against the reference
// date, then looks for a day-of-month plus a month name. A found
// day/month pair is placed in the reference date's year, so a date eleven
// months ahead still lands in the current year. Invalid combinations such
// as the 31st of a 30-day month normalize by calendar rollover.
func extractDate(text string, referenceDate time.Time) *string {
	if strings.Contains(text, "yesterday") {
		d := dateutils.ToISODate(referenceDate.AddDate(0, 0, -1))
		return &d
	}
	if strings.Contains(text, "tomorrow") {
		d := dateutils.ToISODate(referenceDate.AddDate(0, 0, 1))
		return &d
	}

	monthMatch := monthPattern.FindStringSubmatch(text)
	if monthMatch == nil {
		return nil
	}
	month := monthNames[monthMatch[1]]

	day := 0
	for _, m := range dayPattern.FindAllStringSubmatch(text, -1) {
		v, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if v >= 1 && v <= 31 {
			day = v
			break
		}
	}
	if day == 0 {
		return nil
	}

	date := time.Date(referenceDate.Year(), month, day, 0, 0, 0, 0, referenceDate.Location())
	d := dateutils.ToISODate(date)
	return &d
}
