package errors

import (
	"errors"
	"time"
)

// Metadata keys attached to game errors
const (
	MetaQuery     = "query"
	MetaSlot      = "slot"
	MetaResource  = "resource"
	MetaRemaining = "remaining"
	MetaRequired  = "required"
	MetaAvailable = "available"
)

// UnknownEntity reports an alias or emoji that resolves to nothing in the catalog
func UnknownEntity(query string) *Error {
	return NotFoundf("no creature or item matches %q", query).
		WithReason(ReasonUnknownEntity).
		WithMeta(MetaQuery, query)
}

// InvalidSlot reports a slot number outside 1-3
func InvalidSlot(slot int) *Error {
	return InvalidArgumentf("slot %d does not exist, use 1 (tank), 2 (attack) or 3 (support)", slot).
		WithReason(ReasonInvalidSlot).
		WithMeta(MetaSlot, slot)
}

// RoleMismatch reports a creature whose role does not fit the slot
func RoleMismatch(slot int, required, actual string) *Error {
	return InvalidArgumentf("slot %d needs a %s, got a %s", slot, required, actual).
		WithReason(ReasonRoleMismatch).
		WithMeta(MetaSlot, slot)
}

// NotOwned reports an action on a creature or item the player does not have
func NotOwned(id string) *Error {
	return FailedPreconditionf("you do not own any free %s", id).
		WithReason(ReasonNotOwned).
		WithMeta(MetaQuery, id)
}

// InsufficientFunds reports a coin or energy shortfall
func InsufficientFunds(resource string, required, available int64) *Error {
	return FailedPreconditionf("not enough %s: need %d, have %d", resource, required, available).
		WithReason(ReasonInsufficientFunds).
		WithMeta(MetaResource, resource).
		WithMeta(MetaRequired, required).
		WithMeta(MetaAvailable, available)
}

// CooldownActive reports an action that is not available again yet
func CooldownActive(action string, remaining time.Duration) *Error {
	return Newf(CodeResourceExhausted, "%s is on cooldown for %s", action, remaining.Round(time.Second)).
		WithReason(ReasonCooldownActive).
		WithMeta(MetaRemaining, remaining)
}

// InvalidAmount reports a non-positive, non-quantum, or oversized amount
func InvalidAmount(message string) *Error {
	return InvalidArgument(message).WithReason(ReasonInvalidAmount)
}

// InvalidAmountf reports an invalid amount with a formatted message
func InvalidAmountf(format string, args ...interface{}) *Error {
	return InvalidArgumentf(format, args...).WithReason(ReasonInvalidAmount)
}

// ItemEquipped reports an attempt to sell an item that is equipped
func ItemEquipped(id string) *Error {
	return FailedPreconditionf("%s is equipped, unequip it before selling", id).
		WithReason(ReasonItemEquipped).
		WithMeta(MetaQuery, id)
}

// TeamIncomplete reports a battle attempted with an empty slot
func TeamIncomplete(slot int) *Error {
	return FailedPreconditionf("slot %d is empty, fill all three slots before battling", slot).
		WithReason(ReasonTeamIncomplete).
		WithMeta(MetaSlot, slot)
}

// GetReason extracts the game failure reason from an error
func GetReason(err error) Reason {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Reason
	}
	return ReasonNone
}

// HasReason checks if an error carries the given reason
func HasReason(err error, reason Reason) bool {
	return err != nil && GetReason(err) == reason
}

// Remaining extracts the cooldown remaining from a CooldownActive error
func Remaining(err error) (time.Duration, bool) {
	meta := GetMeta(err)
	if meta == nil {
		return 0, false
	}
	d, ok := meta[MetaRemaining].(time.Duration)
	return d, ok
}
