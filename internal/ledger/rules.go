// Package ledger holds the pure money-movement rules. No I/O, no storage:
// every function is a plain comparison over exact decimal values.
package ledger

import "github.com/shopspring/decimal"

// depositCapRatio caps a single deposit at 125% of the client's
// outstanding unpaid total. With zero outstanding jobs no positive
// deposit passes the cap.
var depositCapRatio = decimal.New(125, -2)

func HasSufficientBalance(balance, price decimal.Decimal) bool {
	return balance.GreaterThanOrEqual(price)
}

func CanDeposit(amount, totalOutstanding decimal.Decimal) bool {
	return amount.LessThanOrEqual(totalOutstanding.Mul(depositCapRatio))
}
