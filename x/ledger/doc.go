/*
Package ledger implements a token ledger: a registry of tokens and the
accounts holding them.

Every token declares its precision and a mint authority. Accounts are kept
per token and holder, created on the first credit. All balance changes are
checked against the conditions present in the context, so an extension can
hold tokens at an address that has no private key and still move them by
granting its own condition.
*/
package ledger
