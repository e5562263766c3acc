package main

import (
	"fmt"
	"os"

	"apod/pkg/client"
	"apod/pkg/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	cfgFile  string
	logLevel string

	cfg        *config.Config
	logger     *logrus.Logger
	apodClient *client.Client
)

var rootCmd = &cobra.Command{
	Use:               "apod",
	Short:             "Astronomy Picture of the Day client",
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(getCmd)
}

func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	logger, err = setupLogger(cfg)
	if err != nil {
		return err
	}

	apodClient = client.NewWithConfig(cfg.BaseURL, cfg.APIKey,
		client.WithLogger(logger),
		client.WithUserAgent("apod/"+version),
	)

	return nil
}

func setupLogger(c *config.Config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)

	if c.LogFormat == "json" {
		l.SetFormatter(new(logrus.JSONFormatter))
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return l, nil
}
