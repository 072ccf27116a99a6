// Package modem implements the reset operation: one reboot attempt per
// call, real or simulated, reported as a plain success/failure.
//
// A modem that reboots successfully usually drops the SSH session before
// the command can report status, so known disconnect signatures are
// reclassified as success instead of being propagated as errors.
package modem

import (
	"context"
	"fmt"
	"strings"
	"time"

	"modemctl/internal/config"
	"modemctl/internal/journal"
	"modemctl/internal/sshc"
)

const rebootCommand = "reboot"

// Resetter performs (or simulates) a single modem reboot.
type Resetter struct {
	cfg   config.Config
	rec   journal.Recorder
	dial  func(addr, user, password string, rec journal.Recorder) Session
	sleep func(time.Duration)
}

// New returns a Resetter using the real SSH transport.
func New(cfg config.Config, rec journal.Recorder) *Resetter {
	return &Resetter{
		cfg: cfg,
		rec: rec,
		dial: func(addr, user, password string, rec journal.Recorder) Session {
			return sshc.NewClient(addr, user, password, rec)
		},
		sleep: time.Sleep,
	}
}

// Reset performs at most one reboot attempt and reports whether the modem
// is (or is about to be) restarting.
func (r *Resetter) Reset(ctx context.Context) bool {
	if r.cfg.Simulate {
		return r.simulate()
	}
	return r.reset(ctx)
}

// simulate emits the fixed scripted transcript. The delays stand in for
// connection setup and the command round-trip so scheduled automation can
// be exercised without hardware.
func (r *Resetter) simulate() bool {
	r.rec.Record("MOCK_MODEM is set, simulating modem reset")
	r.rec.Record("connecting to modem...")
	r.sleep(time.Second)
	r.rec.Record("connected to modem")
	r.rec.Record("sending reboot command...")
	r.sleep(500 * time.Millisecond)
	r.rec.Record("reboot command sent, modem is restarting")
	r.rec.Record("modem reset complete")
	return true
}

func (r *Resetter) reset(ctx context.Context) bool {
	if missing := r.cfg.Missing(); len(missing) > 0 {
		r.rec.Record("missing configuration: " + strings.Join(missing, ", ") + " must be set")
		return false
	}

	sess := r.dial(r.cfg.Host, r.cfg.User, r.cfg.Password, r.rec)
	defer sess.Close()

	r.rec.Record(fmt.Sprintf("connecting to modem at %s as %s", r.cfg.Host, r.cfg.User))
	if err := sess.Connect(ctx); err != nil {
		return r.classifyConnectFailure(err)
	}
	r.rec.Record("connected, sending reboot command")

	res, err := sess.Run(ctx, rebootCommand)
	if err != nil {
		if sshc.Classify(err) == sshc.KindDisconnected {
			r.rec.Record("connection dropped mid-command, modem is rebooting")
			return true
		}
		r.rec.Record(fmt.Sprintf("reboot command failed: %v", err))
		return false
	}

	switch {
	case res.ExitCode == 0:
		r.rec.Record("reboot command accepted, modem is rebooting")
		return true
	case res.ExitCode < 0:
		r.rec.Record("session closed without an exit status, modem is rebooting")
		return true
	default:
		r.rec.Record(fmt.Sprintf("reboot command exited with code %d", res.ExitCode))
		if res.Stdout != "" {
			r.rec.Record("stdout: " + res.Stdout)
		}
		if res.Stderr != "" {
			r.rec.Record("stderr: " + res.Stderr)
		}
		return false
	}
}

// classifyConnectFailure maps a dial failure onto operator guidance. The
// checks run in priority order because a rebooting modem can produce
// error text that overlaps several categories.
func (r *Resetter) classifyConnectFailure(err error) bool {
	switch sshc.Classify(err) {
	case sshc.KindAuthFailed:
		r.rec.Record("authentication failed: check USERNAME and PASSWORD")
		return false
	case sshc.KindRefused:
		r.rec.Record("connection refused: SSH may not be enabled on the modem, or MODEM_IP is wrong")
		return false
	case sshc.KindTimedOut:
		r.rec.Record("connection timed out: check that the modem is accessible and MODEM_IP is correct")
		return false
	case sshc.KindDisconnected:
		r.rec.Record("connection dropped during setup, modem is likely already rebooting")
		return true
	default:
		r.rec.Record(fmt.Sprintf("connect failed: %v", err))
		return false
	}
}
