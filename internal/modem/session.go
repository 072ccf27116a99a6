package modem

import (
	"context"

	"modemctl/internal/sshc"
)

// Session is the minimal transport contract the reset operation needs,
// kept small so tests can substitute a double.
type Session interface {
	Connect(ctx context.Context) error
	Run(ctx context.Context, command string) (*sshc.Result, error)
	Close()
}
