package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"modemctl/internal/config"
	"modemctl/internal/journal"
	"modemctl/internal/modem"
	"modemctl/internal/system"
)

var (
	flagSimulate bool
	flagEnvFile  string
	flagAskPass  bool
)

func init() {
	rootCmd.AddCommand(resetCmd)
	rootCmd.PersistentFlags().BoolVar(&flagSimulate, "simulate", false, "run the scripted simulation instead of contacting the modem")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "load KEY=VALUE settings from this file before reading the environment")
	rootCmd.PersistentFlags().BoolVar(&flagAskPass, "ask-pass", false, "prompt for the SSH password instead of reading PASSWORD")
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reboot the modem once and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReset(cmd.Context())
	},
}

func runReset(ctx context.Context) error {
	cfg, err := config.Load(flagEnvFile)
	if err != nil {
		system.Logger.Error("configuration failed", "err", err)
		return err
	}
	if flagSimulate {
		cfg.Simulate = true
	}
	if flagAskPass && !cfg.Simulate {
		pass, err := promptPassword()
		if err != nil {
			return err
		}
		cfg.Password = pass
	}

	logPath := cfg.LogFile
	if logPath == "" {
		logPath = journal.DefaultPath()
	}
	j, err := journal.Open(logPath)
	if err != nil {
		system.Logger.Error("could not open journal", "path", logPath, "err", err)
		return err
	}
	defer j.Close()

	if !modem.New(cfg, j).Reset(ctx) {
		return errors.New("modem reset failed")
	}
	return nil
}

func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("--ask-pass requires an interactive terminal")
	}
	fmt.Fprint(os.Stderr, "Password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
