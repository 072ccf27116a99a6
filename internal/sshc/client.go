// Package sshc provides the SSH session used to reach the modem.
package sshc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"

	"modemctl/internal/journal"
)

const (
	connectTimeout    = 30 * time.Second
	keepaliveInterval = time.Second
)

// Result holds the outcome of one executed command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int // -1 when the remote reported no exit status
}

// Client is an SSH session to the modem.
type Client struct {
	Addr     string // host:port
	User     string // SSH username
	Password string // SSH password

	rec  journal.Recorder
	conn *ssh.Client
	stop chan struct{}
	once sync.Once
}

// NewClient returns a new initialized Client instance. Output produced by
// commands is streamed to rec as it arrives.
func NewClient(addr, user, password string, rec journal.Recorder) *Client {
	if !strings.Contains(addr, ":") {
		addr += ":22"
	}
	return &Client{
		Addr:     addr,
		User:     user,
		Password: password,
		rec:      rec,
		stop:     make(chan struct{}),
	}
}

// Connect dials the modem and starts keepalive probes. Authentication is
// password-based with a keyboard-interactive fallback for firmwares that
// only offer challenge prompts.
func (c *Client) Connect(ctx context.Context) error {
	cfg := &ssh.ClientConfig{
		User: c.User,
		Auth: []ssh.AuthMethod{
			ssh.Password(c.Password),
			ssh.KeyboardInteractive(c.answerChallenges),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         connectTimeout,
	}

	conn, err := ssh.Dial("tcp", c.Addr, cfg)
	if err != nil {
		return fmt.Errorf("SSH dial failed: %w", err)
	}
	c.conn = conn
	go c.keepalive()
	return nil
}

// answerChallenges responds to interactive authentication. Only prompts
// that ask for a password are answered; everything else is left blank.
func (c *Client) answerChallenges(name, instruction string, questions []string, echos []bool) ([]string, error) {
	answers := make([]string, len(questions))
	for i, q := range questions {
		if strings.Contains(strings.ToLower(q), "password") {
			answers[i] = c.Password
		}
	}
	return answers, nil
}

func (c *Client) keepalive() {
	t := time.NewTicker(keepaliveInterval)
	defer t.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-t.C:
			c.conn.SendRequest("keepalive@openssh.com", true, nil)
		}
	}
}

// Run executes one command and streams its output to the recorder as it
// arrives. The returned error is the raw transport error; callers decide
// what a dropped session means.
func (c *Client) Run(ctx context.Context, command string) (*Result, error) {
	sess, err := c.conn.NewSession()
	if err != nil {
		return nil, fmt.Errorf("SSH session failed: %w", err)
	}
	defer sess.Close()

	var outBuf, errBuf strings.Builder
	sess.Stdout = &streamWriter{rec: c.rec, label: "stdout", buf: &outBuf}
	sess.Stderr = &streamWriter{rec: c.rec, label: "stderr", buf: &errBuf}

	done := make(chan error, 1)
	go func() { done <- sess.Run(command) }()

	var runErr error
	select {
	case <-ctx.Done():
		sess.Close()
		return nil, ctx.Err()
	case runErr = <-done:
	}

	res := &Result{
		Stdout:   strings.TrimSpace(Sanitize(outBuf.String())),
		Stderr:   strings.TrimSpace(Sanitize(errBuf.String())),
		ExitCode: -1,
	}
	if runErr == nil {
		res.ExitCode = 0
		return res, nil
	}
	var exitErr *ssh.ExitError
	if errors.As(runErr, &exitErr) {
		res.ExitCode = exitErr.ExitStatus()
		return res, nil
	}
	var missing *ssh.ExitMissingError
	if errors.As(runErr, &missing) {
		// Session ended without reporting status, ExitCode stays -1.
		return res, nil
	}
	return res, runErr
}

// Close releases the connection. Safe to call on any path, any number of
// times.
func (c *Client) Close() {
	c.once.Do(func() {
		close(c.stop)
		if c.conn != nil {
			c.conn.Close()
		}
	})
}

// streamWriter forwards each output chunk to the transcript while also
// accumulating it for the final Result.
type streamWriter struct {
	rec   journal.Recorder
	label string
	buf   *strings.Builder
}

func (w *streamWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	if chunk := strings.TrimSpace(Sanitize(string(p))); chunk != "" {
		w.rec.Record(fmt.Sprintf("modem %s: %s", w.label, chunk))
	}
	return len(p), nil
}
