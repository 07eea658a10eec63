package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/notasrust/notes-client/client"
	"github.com/notasrust/notes-client/internal/config"
)

const defaultRequestTimeout = 30 * time.Second

// app holds the flag values and the client shared by all sub-commands of one root.
type app struct {
	baseURL string
	timeout time.Duration
	headers map[string]string
	token   string
	debug   bool
	output  string

	client *client.Client
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "notesctl",
		Short:         "notesctl lists, creates, updates and deletes notes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.client != nil {
				return a.client.Close()
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.baseURL, "base-url", client.DefaultBaseURL, "Base URL of the notes service (env NOTES_BASE_URL)")
	flags.DurationVar(&a.timeout, "timeout", defaultRequestTimeout, "Request timeout (env NOTES_TIMEOUT)")
	flags.StringToStringVar(&a.headers, "header", nil, "Extra request header as key=value (repeatable)")
	flags.StringVar(&a.token, "token", "", "Bearer token sent as Authorization header (env NOTES_BEARER_TOKEN)")
	flags.BoolVarP(&a.debug, "debug", "d", false, "Enable verbose debug output")
	flags.StringVarP(&a.output, "output", "o", outputTable, "Output format: table|json|yaml")

	// Sub-commands
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newCreateCmd(a))
	rootCmd.AddCommand(newUpdateCmd(a))
	rootCmd.AddCommand(newDeleteCmd(a))

	return rootCmd
}

// init merges env configuration with explicitly set flags, sets up logging
// and builds the client.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = a.baseURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if flags.Changed("token") {
		cfg.BearerToken = a.token
	}
	if a.debug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}
	if len(a.headers) > 0 {
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string, len(a.headers))
		}
		for k, v := range a.headers {
			cfg.Headers[k] = v
		}
	}
	if err := validateOutput(a.output); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.timeout = cfg.Timeout

	config.InitLogger()
	config.SetLogLevel(cfg.Level())
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug logging enabled")
	}

	c, err := cfg.NewClient()
	if err != nil {
		return fmt.Errorf("build client: %w", err)
	}
	a.client = c
	log.Debug().Str("base_url", c.BaseURL()).Dur("timeout", cfg.Timeout).Msg("client ready")
	return nil
}
