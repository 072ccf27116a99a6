package sshc

import (
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{
			"auth rejected",
			errors.New("ssh: handshake failed: ssh: unable to authenticate, attempted methods [none password], no supported methods remain"),
			KindAuthFailed,
		},
		{
			"refused errno",
			fmt.Errorf("SSH dial failed: %w", syscall.ECONNREFUSED),
			KindRefused,
		},
		{
			"refused text",
			errors.New("dial tcp 192.168.100.1:22: connect: connection refused"),
			KindRefused,
		},
		{
			"io timeout",
			errors.New("dial tcp 192.168.100.1:22: i/o timeout"),
			KindTimedOut,
		},
		{
			"timed out text",
			errors.New("connect: operation timed out"),
			KindTimedOut,
		},
		{
			"ssh disconnect",
			errors.New("ssh: disconnect, reason 11: system going down"),
			KindDisconnected,
		},
		{
			"disconnected text",
			errors.New("remote host disconnected unexpectedly"),
			KindDisconnected,
		},
		{
			"reset errno",
			fmt.Errorf("read: %w", syscall.ECONNRESET),
			KindDisconnected,
		},
		{
			"reset text",
			errors.New("read tcp 10.0.0.2:51234->10.0.0.1:22: read: connection reset by peer"),
			KindDisconnected,
		},
		{
			"eof",
			io.EOF,
			KindDisconnected,
		},
		{
			"broken pipe",
			errors.New("write: broken pipe"),
			KindDisconnected,
		},
		{
			"unknown",
			errors.New("something odd happened"),
			KindOther,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.err))
		})
	}
}

func TestClassifyAuthWinsOverDisconnect(t *testing.T) {
	// Overlapping text must resolve in priority order.
	err := errors.New("ssh: unable to authenticate, connection reset by peer")
	assert.Equal(t, KindAuthFailed, Classify(err))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "auth-failed", KindAuthFailed.String())
	assert.Equal(t, "disconnected", KindDisconnected.String())
	assert.Equal(t, "other", KindOther.String())
}
