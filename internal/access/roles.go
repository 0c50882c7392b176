package access

// Role is a user's position in the workspace hierarchy.
type Role string

const (
	RoleViewer  Role = "viewer"
	RoleAnalyst Role = "analyst"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// Capability is a UI action a role may request. The analytics core itself
// performs no authorization; these gate who may trigger uploads, exports,
// and deletions at the command boundary.
type Capability string

const (
	CapViewAnalytics Capability = "view-analytics"
	CapUploadData    Capability = "upload-data"
	CapExportData    Capability = "export-data"
	CapDeleteData    Capability = "delete-data"
)

// roleOrder is the total ordering used for at-least comparisons,
// weakest first.
var roleOrder = []Role{RoleViewer, RoleAnalyst, RoleManager, RoleAdmin}

// grants is a static data table, not an inheritance chain: each row lists
// the role's full capability set.
var grants = map[Role]map[Capability]bool{
	RoleViewer: {
		CapViewAnalytics: true,
	},
	RoleAnalyst: {
		CapViewAnalytics: true,
		CapExportData:    true,
	},
	RoleManager: {
		CapViewAnalytics: true,
		CapExportData:    true,
		CapUploadData:    true,
	},
	RoleAdmin: {
		CapViewAnalytics: true,
		CapExportData:    true,
		CapUploadData:    true,
		CapDeleteData:    true,
	},
}

// Valid reports whether r is a known role.
func Valid(r Role) bool {
	_, ok := grants[r]
	return ok
}

// Can reports whether role r holds capability c. Unknown roles hold
// nothing.
func Can(r Role, c Capability) bool {
	return grants[r][c]
}

// AtLeast reports whether r ranks at or above min in the role ordering.
// Unknown roles rank below every known role.
func AtLeast(r, min Role) bool {
	return rank(r) >= rank(min) && rank(r) >= 0
}

func rank(r Role) int {
	for i, candidate := range roleOrder {
		if candidate == r {
			return i
		}
	}
	return -1
}
