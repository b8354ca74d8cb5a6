package commands

import "slices"

// CommandResponseType is the synchronous answer of a CPO to a command request.
type CommandResponseType string

const (
	ResponseNotSupported   CommandResponseType = "NOT_SUPPORTED"
	ResponseRejected       CommandResponseType = "REJECTED"
	ResponseAccepted       CommandResponseType = "ACCEPTED"
	ResponseUnknownSession CommandResponseType = "UNKNOWN_SESSION"
)

var commandResponseTypeValues = []CommandResponseType{ResponseNotSupported, ResponseRejected, ResponseAccepted, ResponseUnknownSession}

func (v CommandResponseType) IsValid() bool { return slices.Contains(commandResponseTypeValues, v) }

// CommandResponseTypeValues returns all values in declaration order.
func CommandResponseTypeValues() []CommandResponseType { return slices.Clone(commandResponseTypeValues) }

// CommandResultType is the asynchronous outcome reported by the charge point.
type CommandResultType string

const (
	ResultAccepted            CommandResultType = "ACCEPTED"
	ResultCanceledReservation CommandResultType = "CANCELED_RESERVATION"
	ResultEVSEOccupied        CommandResultType = "EVSE_OCCUPIED"
	ResultEVSEInoperative     CommandResultType = "EVSE_INOPERATIVE"
	ResultFailed              CommandResultType = "FAILED"
	ResultNotSupported        CommandResultType = "NOT_SUPPORTED"
	ResultRejected            CommandResultType = "REJECTED"
	ResultTimeout             CommandResultType = "TIMEOUT"
	ResultUnknownReservation  CommandResultType = "UNKNOWN_RESERVATION"
)

var commandResultTypeValues = []CommandResultType{
	ResultAccepted,
	ResultCanceledReservation,
	ResultEVSEOccupied,
	ResultEVSEInoperative,
	ResultFailed,
	ResultNotSupported,
	ResultRejected,
	ResultTimeout,
	ResultUnknownReservation,
}

func (v CommandResultType) IsValid() bool { return slices.Contains(commandResultTypeValues, v) }

// CommandResultTypeValues returns all values in declaration order.
func CommandResultTypeValues() []CommandResultType { return slices.Clone(commandResultTypeValues) }

// CommandType names a command an eMSP can send to a CPO.
type CommandType string

const (
	CommandCancelReservation CommandType = "CANCEL_RESERVATION"
	CommandReserveNow        CommandType = "RESERVE_NOW"
	CommandStartSession      CommandType = "START_SESSION"
	CommandStopSession       CommandType = "STOP_SESSION"
	CommandUnlockConnector   CommandType = "UNLOCK_CONNECTOR"
)

var commandTypeValues = []CommandType{
	CommandCancelReservation,
	CommandReserveNow,
	CommandStartSession,
	CommandStopSession,
	CommandUnlockConnector,
}

func (v CommandType) IsValid() bool { return slices.Contains(commandTypeValues, v) }

// CommandTypeValues returns all values in declaration order.
func CommandTypeValues() []CommandType { return slices.Clone(commandTypeValues) }
