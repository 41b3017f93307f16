// Package models defines the core domain models for the billing service.
//
// # Models
//
//   - Product: a catalog entry with a price and a stock count in bags
//   - Bill: an issued bill with snapshotted line items and payment state
//   - BillItem: one line of a bill
//   - Payment: a supplier payment in the independent payment ledger
//
// # Money
//
// Monetary fields use decimal.Decimal and are kept at two decimal places
// (paise). Storage backends persist them as integer minor units.
//
// # Relationships
//
// Bills reference products by ID only. A bill line carries its own copy of
// the product name, price and bag weight, so later catalog edits or
// deletions do not change issued bills.
package models
