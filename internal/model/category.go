package model

import "strings"

// Category is one of the fixed expense categories. The numeric value is the
// stable code shown in menus; the label is what gets persisted.
type Category int

// Expense categories, in menu order.
const (
	FoodGroceries Category = iota + 1
	HousingUtilities
	Transport
	HealthMedical
	Education
	FamilyKids
	PersonalCare
	EntertainmentDining
	SavingsInvestments
	Miscellaneous
)

var categoryLabels = [...]string{
	FoodGroceries:       "Food & Groceries",
	HousingUtilities:    "Housing & Utilities",
	Transport:           "Transport",
	HealthMedical:       "Health & Medical",
	Education:           "Education",
	FamilyKids:          "Family & Kids",
	PersonalCare:        "Personal Care",
	EntertainmentDining: "Entertainment & Dining",
	SavingsInvestments:  "Savings & Investments",
	Miscellaneous:       "Miscellaneous",
}

// All returns every category in code order.
func All() []Category {
	out := make([]Category, 0, int(Miscellaneous))
	for c := FoodGroceries; c <= Miscellaneous; c++ {
		out = append(out, c)
	}
	return out
}

// FromCode resolves a menu code. Anything outside 1-10 is Miscellaneous.
func FromCode(code int) Category {
	c := Category(code)
	if !c.Valid() {
		return Miscellaneous
	}
	return c
}

// FromLabel resolves a persisted label, case-insensitively. The second
// result is false when the label is unknown, in which case Miscellaneous is
// returned.
func FromLabel(label string) (Category, bool) {
	label = strings.TrimSpace(label)
	for _, c := range All() {
		if strings.EqualFold(categoryLabels[c], label) {
			return c, true
		}
	}
	return Miscellaneous, false
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	return c >= FoodGroceries && c <= Miscellaneous
}

// Code returns the stable numeric code.
func (c Category) Code() int {
	return int(FromCode(int(c)))
}

// Label returns the human-readable label.
func (c Category) Label() string {
	return categoryLabels[FromCode(int(c))]
}

func (c Category) String() string {
	return c.Label()
}
