package hubclientinfo

import "slices"

// ConnectionStatus is the state of the connection between a hub and a party.
type ConnectionStatus string

const (
	Connected ConnectionStatus = "CONNECTED"
	Offline   ConnectionStatus = "OFFLINE"
	Planned   ConnectionStatus = "PLANNED"
	Suspended ConnectionStatus = "SUSPENDED"
)

var connectionStatusValues = []ConnectionStatus{Connected, Offline, Planned, Suspended}

func (v ConnectionStatus) IsValid() bool { return slices.Contains(connectionStatusValues, v) }

// ConnectionStatusValues returns all values in declaration order.
func ConnectionStatusValues() []ConnectionStatus { return slices.Clone(connectionStatusValues) }
