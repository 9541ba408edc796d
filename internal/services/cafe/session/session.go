// Package session interprets line-based commands for one connection at a
// time against the shared ordering system.
package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/cafecursor/internal/services/cafe/ordering"
)

// displayLayout renders timestamps in responses.
const displayLayout = "2006-01-02 15:04:05"

// LineIO is the transport contract a handler drives: one prompt-then-read
// per command, one or more written lines per response. Implementations own
// line-ending normalization.
type LineIO interface {
	// ReadLine writes the prompt when non-empty and blocks for the next
	// input line, stripped of its terminator. It returns an error when the
	// peer is gone.
	ReadLine(prompt string) (string, error)
	// WriteLine sends one response line.
	WriteLine(line string) error
}

// Handler runs the command loop for one connection. Each handler owns a
// private cart; the ordering system is shared across all sessions.
type Handler struct {
	role   Role
	system *ordering.System
	cart   *Cart
	io     LineIO
}

// NewHandler builds a handler for one connection.
func NewHandler(role Role, system *ordering.System, io LineIO) *Handler {
	return &Handler{role: role, system: system, cart: NewCart(), io: io}
}

// Run drives the session from greeting to termination. End-of-input and
// transport drops end the session with a farewell, never an error; command
// failures are reported as response lines and the loop continues.
func (h *Handler) Run(ctx context.Context) error {
	if err := h.greet(); err != nil {
		return err
	}

	for {
		line, err := h.io.ReadLine(h.role.Prompt())
		if err != nil {
			_ = h.io.WriteLine("\nGoodbye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		word, args := fields[0], fields[1:]

		var terminated bool
		switch h.role {
		case RoleStaff:
			terminated, err = h.dispatchStaff(ctx, word, args)
		default:
			terminated, err = h.dispatchGuest(ctx, word, args)
		}
		if err != nil {
			return err
		}
		if terminated {
			return nil
		}
	}
}

func (h *Handler) greet() error {
	if h.role == RoleStaff {
		if err := h.io.WriteLine("\nCafe Cursor Backend Console"); err != nil {
			return err
		}
		return h.writeStaffHelp()
	}
	if err := h.io.WriteLine("\nWelcome to Cafe Cursor!"); err != nil {
		return err
	}
	return h.writeGuestHelp()
}

func (h *Handler) writef(format string, args ...any) error {
	return h.io.WriteLine(fmt.Sprintf(format, args...))
}

func (h *Handler) writeLines(lines ...string) error {
	for _, line := range lines {
		if err := h.io.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

func joinName(args []string) string {
	return strings.Join(args, " ")
}

func itoa(value int64) string {
	return strconv.FormatInt(value, 10)
}

func parseInt64(value string) (int64, bool) {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
