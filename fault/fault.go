// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// contract call failure classes
type UnauthorisedError GenericError
type InvalidStateError GenericError
type MalformedError GenericError
type ValidationError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised       = InvalidStateError("already initialised")
	AlreadyRated             = InvalidStateError("project already rated by caller")
	CallerNotArbiter         = UnauthorisedError("only the arbiter can resolve disputes")
	CallerNotClient          = UnauthorisedError("only client can perform this action")
	CallerNotFreelancer      = UnauthorisedError("only freelancer can perform this action")
	CallerNotParticipant     = UnauthorisedError("not a project participant")
	ClientCannotApply        = UnauthorisedError("client cannot apply for own project")
	ContractNotInitialised   = NotFoundError("contract not initialised")
	DatabaseIsNotSet         = ProcessError("database is not set")
	DisputeNotFound          = NotFoundError("dispute not found")
	DisputeNotOpen           = InvalidStateError("dispute not open")
	EmptyDescription         = ValidationError("description is required")
	EmptyReason              = ValidationError("dispute reason is required")
	EmptyTitle               = ValidationError("title is required")
	FunctionNotFound         = NotFoundError("function not found")
	FunctionNotView          = InvalidError("function modifies state")
	IncompatibleDatabase     = InvalidError("incompatible database version")
	InvalidAddress           = ValidationError("invalid address")
	InvalidAddressChecksum   = ValidationError("address checksum mismatch")
	InvalidAddressKind       = ValidationError("address kind is not supported")
	InvalidAmount            = ValidationError("amount must be greater than zero")
	InvalidBudget            = ValidationError("budget must be greater than zero")
	InvalidCount             = InvalidError("invalid count")
	InvalidDeadline          = ValidationError("deadline must be in the future")
	InvalidIpAddress         = InvalidError("invalid IP address")
	InvalidRatingTarget      = ValidationError("rating target must be the other participant")
	InvalidScore             = ValidationError("rating must be 1-5")
	InvalidStatus            = ValidationError("status is not valid")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	MilestoneAlreadyComplete = InvalidStateError("milestone already completed")
	MilestoneNotCompleted    = InvalidStateError("milestone not completed")
	MilestoneNotFound        = NotFoundError("milestone not found")
	MilestonesExceedBudget   = ValidationError("milestone amounts exceed project budget")
	MilestonesOutstanding    = InvalidStateError("project has unpaid milestones")
	MissingParameters        = InvalidError("missing parameters")
	NotInitialised           = InvalidError("not initialised")
	ProjectHasFreelancer     = InvalidStateError("project already has freelancer")
	ProjectNotCompleted      = InvalidStateError("project not completed")
	ProjectNotDisputed       = InvalidStateError("project not disputed")
	ProjectNotFound          = NotFoundError("project not found")
	ProjectNotInProgress     = InvalidStateError("project not in progress")
	ProjectNotOpen           = InvalidStateError("project not open")
	RateLimiting             = InvalidError("rate limiting")
	TransactionInUse         = ProcessError("transaction already in use")
	TransactionNotActive     = ProcessError("transaction is not active")
	WrongNetworkForAddress   = ValidationError("wrong network for address")
)

// Malformed - decode failure naming the missing or invalid field
func Malformed(field string, reason string) error {
	return MalformedError(field + " " + reason)
}

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e UnauthorisedError) Error() string { return string(e) }
func (e InvalidStateError) Error() string { return string(e) }
func (e MalformedError) Error() string    { return string(e) }
func (e ValidationError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool       { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
func IsErrUnauthorised(e error) bool { _, ok := e.(UnauthorisedError); return ok }
func IsErrInvalidState(e error) bool { _, ok := e.(InvalidStateError); return ok }
func IsErrMalformed(e error) bool    { _, ok := e.(MalformedError); return ok }
func IsErrValidation(e error) bool   { _, ok := e.(ValidationError); return ok }

// Kind - the name of an error's class as shown to callers
func Kind(e error) string {
	switch e.(type) {
	case nil:
		return ""
	case NotFoundError:
		return "NotFound"
	case UnauthorisedError:
		return "Unauthorized"
	case InvalidStateError:
		return "InvalidState"
	case MalformedError:
		return "MalformedField"
	case ValidationError:
		return "ValidationError"
	case ExistsError:
		return "Exists"
	case InvalidError:
		return "Invalid"
	case ProcessError:
		return "Process"
	default:
		return "Error"
	}
}
