package submission

import (
	"math/big"

	"github.com/jazzy1902/Monad-BlockHackers/internal/energylog"
)

// Outcome is the result of the chain leg of an energy event. It is either
// Submitted or ChainFailed.
type Outcome interface {
	isOutcome()
}

// Submitted means the node accepted the transaction into its mempool.
type Submitted struct {
	TxHash string
}

// ChainFailed means the transaction was never accepted. Detail holds the
// node's message.
type ChainFailed struct {
	Detail string
}

func (Submitted) isOutcome()   {}
func (ChainFailed) isOutcome() {}

// Receipt pairs the stored record of an energy event with the outcome of
// its chain submission.
type Receipt struct {
	Record     energylog.LogRecord
	TokenUnits *big.Int // token units requested from the contract; nil if no transaction was built
	Outcome    Outcome
}
