/*
Package stake implements a custodial staking escrow.

A staker deposits an amount of the base token into the vault and receives the
same amount of the synthetic token. On withdrawal the full deposit is
returned, while the synthetic token is burned by the deposited amount minus
the number of seconds the deposit was held, saturating at zero. A deposit
held for at least as many seconds as it is large keeps its synthetic tokens.

The vault and the synthetic mint are owned by addresses derived from fixed
labels. Nobody holds a private key for them; only this package can grant
their conditions while it moves tokens.

There is a single receipt per deployment, so only one position can be open
at a time.
*/
package stake
