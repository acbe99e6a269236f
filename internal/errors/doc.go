// Package errors provides structured errors for critter-arena.
//
// Every error carries a Code (transport level, maps onto gRPC codes) and
// optionally a Reason (game level, e.g. cooldown_active or role_mismatch)
// plus metadata such as the remaining cooldown.
//
// Creating errors:
//
//	err := errors.NotFound("profile not found")
//	err := errors.CooldownActive("hunt", 4*time.Second)
//
// Checking errors:
//
//	if errors.HasReason(err, errors.ReasonRoleMismatch) {
//	    // tell the player which role the slot needs
//	}
//
// Game validation errors are always returned before any profile mutation,
// so a caller that receives one can drop the loaded profile unchanged.
//
// Handlers convert to gRPC with ToGRPCError; the reason and metadata travel
// as an errdetails.ErrorInfo and come back through FromGRPCError.
package errors
