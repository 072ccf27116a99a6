// Package config loads modem settings from the environment.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Config holds everything one reset run needs.
type Config struct {
	Host     string // modem address, port 22 assumed when none given
	User     string // SSH username
	Password string // SSH password, also answers interactive challenges
	Simulate bool   // run the scripted simulation instead of real SSH
	LogFile  string // journal path override, empty means the default
}

// Load reads configuration from the environment, optionally seeding it
// from a KEY=VALUE env file first.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := loadDotEnv(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	return Config{
		Host:     os.Getenv("MODEM_IP"),
		User:     os.Getenv("USERNAME"),
		Password: os.Getenv("PASSWORD"),
		Simulate: os.Getenv("MOCK_MODEM") == "true",
		LogFile:  os.Getenv("MODEM_LOG_FILE"),
	}, nil
}

// Missing names the required values that are absent for a real reset.
func (c Config) Missing() []string {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "MODEM_IP")
	}
	if c.User == "" {
		missing = append(missing, "USERNAME")
	}
	if c.Password == "" {
		missing = append(missing, "PASSWORD")
	}
	return missing
}

func loadDotEnv(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			os.Setenv(key, value)
		}
	}
	return scanner.Err()
}
