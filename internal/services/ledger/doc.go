/*
Package ledger is the single write path for wallet balances.

Every fund movement (income, expense, transfer) goes through this
service, which validates the request, mutates one or two wallet
balances and appends the matching immutable ledger row inside one
database transaction. Either all effects commit or none do, so for
any wallet:

	currentBalance == initialBalance
	                + Σ income − Σ expense
	                − Σ outgoing transfers + Σ incoming transfers

Debits use a conditional UPDATE keyed on the current balance instead of
relying on transaction isolation, so two concurrent expenses that
jointly exceed the balance cannot both succeed.
*/
package ledger
