package session

import "strings"

// Role selects the fixed command set available to a session. The sets are
// disjoint; there is no runtime privilege escalation between them.
type Role int

const (
	// RoleGuest serves customers placing and tracking orders.
	RoleGuest Role = iota
	// RoleStaff serves the backoffice console.
	RoleStaff
)

// String names the role for logs.
func (r Role) String() string {
	if r == RoleStaff {
		return "staff"
	}
	return "guest"
}

// Prompt returns the command-loop prompt for the role.
func (r Role) Prompt() string {
	if r == RoleStaff {
		return "\nbknd> "
	}
	return "\ncmd> "
}

// guestCommand is the closed set of guest commands. Dispatch switches over
// it exhaustively instead of matching raw strings.
type guestCommand int

const (
	guestUnknown guestCommand = iota
	guestMenu
	guestAdd
	guestCart
	guestOrder
	guestStatus
	guestHelp
	guestExit
)

func parseGuestCommand(word string) guestCommand {
	switch strings.ToLower(word) {
	case "menu":
		return guestMenu
	case "add":
		return guestAdd
	case "cart":
		return guestCart
	case "order":
		return guestOrder
	case "status":
		return guestStatus
	case "help", "?":
		return guestHelp
	case "exit", "quit":
		return guestExit
	default:
		return guestUnknown
	}
}

// staffCommand is the closed set of staff commands.
type staffCommand int

const (
	staffUnknown staffCommand = iota
	staffList
	staffStatus
	staffReady
	staffMenuList
	staffMenuAdd
	staffMenuRemove
	staffHelp
	staffExit
)

func parseStaffCommand(word string) staffCommand {
	switch strings.ToLower(word) {
	case "list":
		return staffList
	case "status":
		return staffStatus
	case "ready":
		return staffReady
	case "menu-list":
		return staffMenuList
	case "menu-add":
		return staffMenuAdd
	case "menu-remove":
		return staffMenuRemove
	case "help", "?":
		return staffHelp
	case "exit", "quit":
		return staffExit
	default:
		return staffUnknown
	}
}
