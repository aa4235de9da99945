package main

import (
	"context"
	"errors"
	"os"

	"hostel-portal/app/client"
	"hostel-portal/app/config"
	"hostel-portal/app/logger"
)

func credentials() (string, string, error) {
	user, pass := username, password
	if user == "" {
		user = os.Getenv("HOSTEL_ADMIN_USERNAME")
	}
	if pass == "" {
		pass = os.Getenv("HOSTEL_ADMIN_PASSWORD")
	}
	if user == "" || pass == "" {
		return "", "", errors.New("admin username and password are required")
	}
	return user, pass, nil
}

// adminClient loads the configuration and signs in as an admin.
func adminClient(ctx context.Context) (*client.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger.Configure(logger.Config{Level: cfg.Logging.Level, Pretty: true, Output: os.Stderr})

	user, pass, err := credentials()
	if err != nil {
		return nil, err
	}
	c := client.New(cfg.Backend.BaseURL, client.WithTimeout(cfg.Backend.Timeout))
	cred, err := c.LoginAdmin(ctx, user, pass)
	if err != nil {
		return nil, errors.New(client.UserMessage(err, "login failed"))
	}
	logger.Debug().Str("user", user).Msg("signed in")
	return c.As(cred), nil
}
