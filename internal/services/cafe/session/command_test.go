package session

import "testing"

func TestParseGuestCommandIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want guestCommand
	}{
		{"menu", guestMenu},
		{"MENU", guestMenu},
		{"Add", guestAdd},
		{"cart", guestCart},
		{"order", guestOrder},
		{"status", guestStatus},
		{"help", guestHelp},
		{"?", guestHelp},
		{"exit", guestExit},
		{"QUIT", guestExit},
		{"list", guestUnknown},
		{"nonsense", guestUnknown},
	}
	for _, tt := range tests {
		if got := parseGuestCommand(tt.word); got != tt.want {
			t.Fatalf("parseGuestCommand(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestParseStaffCommandCoversStaffSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want staffCommand
	}{
		{"list", staffList},
		{"status", staffStatus},
		{"Ready", staffReady},
		{"menu-list", staffMenuList},
		{"MENU-ADD", staffMenuAdd},
		{"menu-remove", staffMenuRemove},
		{"help", staffHelp},
		{"?", staffHelp},
		{"quit", staffExit},
		{"menu", staffUnknown},
		{"add", staffUnknown},
	}
	for _, tt := range tests {
		if got := parseStaffCommand(tt.word); got != tt.want {
			t.Fatalf("parseStaffCommand(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestRolePrompts(t *testing.T) {
	t.Parallel()

	if RoleGuest.Prompt() != "\ncmd> " {
		t.Fatalf("guest prompt = %q", RoleGuest.Prompt())
	}
	if RoleStaff.Prompt() != "\nbknd> " {
		t.Fatalf("staff prompt = %q", RoleStaff.Prompt())
	}
}
