package models

import "github.com/shopspring/decimal"

// Draft holds the fields extracted from a voice transcript. Every field is
// optional; a nil field means the transcript said nothing about it and the
// current form value must be left unchanged.
type Draft struct {
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Type     *TransactionType `json:"type,omitempty"`
	Category *string          `json:"category,omitempty"`
	// CustomCategory is a free-text candidate extracted from a
	// "for <phrase>" pattern when no known category matched. The caller
	// decides whether to add it to the vocabulary.
	CustomCategory *string `json:"custom_category,omitempty"`
	Date           *string `json:"date,omitempty"`
	Description    *string `json:"description,omitempty"`
}

// IsEmpty returns true if the parser extracted nothing at all.
func (d Draft) IsEmpty() bool {
	return d.Amount == nil && d.Type == nil && d.Category == nil &&
		d.CustomCategory == nil && d.Date == nil && d.Description == nil
}

// ApplyTo merges the draft into a transaction being built. Absent fields
// never overwrite values already present on the target.
func (d Draft) ApplyTo(t *Transaction) {
	if d.Amount != nil {
		t.Amount = *d.Amount
	}
	if d.Type != nil {
		t.Type = *d.Type
	}
	if d.Category != nil {
		t.Category = *d.Category
	} else if d.CustomCategory != nil {
		t.Category = *d.CustomCategory
	}
	if d.Date != nil {
		t.Date = *d.Date
	}
	if d.Description != nil {
		t.Description = *d.Description
	}
}
