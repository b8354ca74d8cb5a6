package ocpi

import "slices"

// Role is the role a party plays in the OCPI network.
type Role string

const (
	RoleCPO   Role = "CPO"
	RoleEMSP  Role = "EMSP"
	RoleHub   Role = "HUB"
	RoleNAP   Role = "NAP"
	RoleNSP   Role = "NSP"
	RoleOther Role = "OTHER"
	RoleSCSP  Role = "SCSP"
)

var roleValues = []Role{RoleCPO, RoleEMSP, RoleHub, RoleNAP, RoleNSP, RoleOther, RoleSCSP}

func (r Role) IsValid() bool { return slices.Contains(roleValues, r) }

// RoleValues returns all roles in declaration order.
func RoleValues() []Role { return slices.Clone(roleValues) }
