package main

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSetupLogger(t *testing.T) {
	defer slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := &cli.App{
		Name:   "saleslens",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
			},
		},
		Action: func(c *cli.Context) error { return nil },
	}

	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
			err := app.Run([]string{"saleslens", "--log-level", level})
			assert.NoError(t, err, "level %q should be accepted", level)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		err := app.Run([]string{"saleslens", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
