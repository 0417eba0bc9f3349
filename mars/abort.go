package mars

import (
	"github.com/ezrec/mars/translate"
)

var f = translate.From

// AbortCode is the reason a match stopped.
type AbortCode int

const (
	ABORT_NONE           = AbortCode(0) // No Message
	ABORT_ILLEGAL_MODE   = AbortCode(1) // Illegal Mode
	ABORT_DRAW           = AbortCode(2) // Draw, No Winner
	ABORT_DAT_EXECUTED   = AbortCode(3) // DAT Executed
	ABORT_ILLEGAL_OPCODE = AbortCode(4) // Illegal Opcode
)

// String returns the localized reason.
func (code AbortCode) String() string {
	switch code {
	case ABORT_NONE:
		return f("No Message")
	case ABORT_ILLEGAL_MODE:
		return f("Illegal Mode")
	case ABORT_DRAW:
		return f("Draw, No Winner")
	case ABORT_DAT_EXECUTED:
		return f("DAT Executed")
	case ABORT_ILLEGAL_OPCODE:
		return f("Illegal Opcode")
	default:
		return "??"
	}
}

// Fatal returns true if the abort was caused by a player, who loses.
func (code AbortCode) Fatal() bool {
	switch code {
	case ABORT_ILLEGAL_MODE, ABORT_DAT_EXECUTED, ABORT_ILLEGAL_OPCODE:
		return true
	}
	return false
}
