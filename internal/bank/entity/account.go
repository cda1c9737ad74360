package entity

import "github.com/shopspring/decimal"

// Account is the single in-memory account of a session.
//
// Balance never goes negative. Transactions only grows; its order is the
// order transfers were recorded.
type Account struct {
	ID           string
	Password     string
	Balance      decimal.Decimal
	Transactions []Transaction
}

// NewAccount returns an empty account bound to an id/password pair.
func NewAccount(id, password string) Account {
	return Account{ID: id, Password: password, Balance: decimal.Zero}
}

// CheckPassword reports whether candidate equals the stored password.
func (a Account) CheckPassword(candidate string) bool {
	return a.Password == candidate
}

// Clone returns a copy that shares no slice memory with a.
func (a Account) Clone() Account {
	cp := a
	cp.Transactions = make([]Transaction, len(a.Transactions))
	copy(cp.Transactions, a.Transactions)
	return cp
}
