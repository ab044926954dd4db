package models

// Polarity discriminates income from expense rows. Categories, transactions
// and recurring transactions all carry one; a transaction's polarity always
// matches its category's.
type Polarity string

const (
	PolarityIncome  Polarity = "income"
	PolarityExpense Polarity = "expense"
)

// Valid reports whether p is one of the two known polarities.
func (p Polarity) Valid() bool {
	return p == PolarityIncome || p == PolarityExpense
}
