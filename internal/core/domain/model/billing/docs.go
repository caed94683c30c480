// Package billing holds the money side of an order: the coverage snapshot
// taken from the contract's policy and the total-cost calculator. Amounts are
// shopspring decimals rounded to CurrencyScale places.
package billing
