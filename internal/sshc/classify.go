package sshc

import (
	"errors"
	"io"
	"net"
	"strings"
	"syscall"
)

// Kind labels a transport error once at the boundary so callers never
// match message text themselves.
type Kind int

const (
	KindOther Kind = iota
	KindAuthFailed
	KindRefused
	KindTimedOut
	KindDisconnected
)

func (k Kind) String() string {
	switch k {
	case KindAuthFailed:
		return "auth-failed"
	case KindRefused:
		return "refused"
	case KindTimedOut:
		return "timed-out"
	case KindDisconnected:
		return "disconnected"
	default:
		return "other"
	}
}

// Classify maps an error from dialing or running a command onto a Kind.
// Order matters: authentication and refusal are checked before the
// disconnect signatures because a modem that is already rebooting can
// produce text overlapping with all of them.
func Classify(err error) Kind {
	if err == nil {
		return KindOther
	}
	msg := strings.ToLower(err.Error())

	if strings.Contains(msg, "unable to authenticate") ||
		strings.Contains(msg, "authentication failed") {
		return KindAuthFailed
	}
	if errors.Is(err, syscall.ECONNREFUSED) ||
		strings.Contains(msg, "connection refused") {
		return KindRefused
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return KindTimedOut
	}
	if strings.Contains(msg, "i/o timeout") ||
		strings.Contains(msg, "timed out") {
		return KindTimedOut
	}
	if errors.Is(err, io.EOF) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) ||
		strings.Contains(msg, "ssh: disconnect") ||
		strings.Contains(msg, "disconnected") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "use of closed network connection") {
		return KindDisconnected
	}
	return KindOther
}
