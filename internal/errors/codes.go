package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Reason narrows a Code to a game-level failure the caller can act on.
// Several reasons share a code; callers that care about the exact failure
// check the reason, transports only need the code.
type Reason string

// Game failure reasons
const (
	ReasonNone              Reason = ""
	ReasonUnknownEntity     Reason = "unknown_entity"
	ReasonInvalidSlot       Reason = "invalid_slot"
	ReasonRoleMismatch      Reason = "role_mismatch"
	ReasonNotOwned          Reason = "not_owned"
	ReasonInsufficientFunds Reason = "insufficient_funds"
	ReasonCooldownActive    Reason = "cooldown_active"
	ReasonInvalidAmount     Reason = "invalid_amount"
	ReasonItemEquipped      Reason = "item_equipped"
	ReasonTeamIncomplete    Reason = "team_incomplete"
)

// String returns the string representation of the reason
func (r Reason) String() string {
	return string(r)
}
