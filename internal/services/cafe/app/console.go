package app

import (
	"context"
	"errors"
	"io"

	"github.com/louisbranch/cafecursor/internal/services/cafe/ordering"
	"github.com/louisbranch/cafecursor/internal/services/cafe/session"
)

// RunConsole drives a single interactive session over local streams.
// It returns nil when the user exits or the input stream ends.
func RunConsole(ctx context.Context, role session.Role, system *ordering.System, in io.Reader, out io.Writer) error {
	if system == nil {
		return errors.New("ordering system is required")
	}
	handler := session.NewHandler(role, system, newConsoleLineIO(in, out))
	return handler.Run(ctx)
}
