// filepath: internal/cli/root.go
package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"reelhub/internal/config"
	"reelhub/internal/logging"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile        string
	password       string
	port           int
	logLevel       string
	resetPassword  bool
	usersFile      string
	importDir      string
	sessionTimeout string
	auditEnabled   bool
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "reelhub",
	Short: "ReelHub catalog API",
	Long:  `An in-memory movie and celebrity catalog with user accounts, search and a JSON API.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	// RunE executes the main server logic.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	StartTime = time.Now()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define flags.
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: RHB_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: RHB_LOG_LEVEL)")
	RootCmd.PersistentFlags().StringVar(&usersFile, "users-file", "", "Path of the persisted user file. (Env: RHB_USERS_FILE)")

	// Server-specific flags
	RootCmd.Flags().StringVar(&password, "password", "", "Password for the 'admin' user. (Env: RHB_PASSWORD)")
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: RHB_PORT)")
	RootCmd.Flags().BoolVar(&resetPassword, "reset_pw", false, "If true, reset admin password on startup. (Env: RHB_RESET_PW=true)")
	RootCmd.Flags().StringVar(&importDir, "import-dir", "", "Directory with sample data files to load at startup. (Env: RHB_IMPORT_DIR)")
	RootCmd.Flags().StringVar(&sessionTimeout, "session-timeout", "", "Idle session timeout (e.g. '30m', '1d'). (Env: RHB_SESSION_TIMEOUT)")
	RootCmd.Flags().BoolVar(&auditEnabled, "audit-enabled", false, "Enable detailed audit logging. (Env: RHB_AUDIT_ENABLED=true)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 0. Load a .env file if present; real env vars win over its values.
	if err := godotenv.Load(); err == nil {
		logging.Log.Debug("Loaded environment from .env")
	}

	// 1. Check environment variable for config path first
	if envPath := os.Getenv("RHB_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config if not found, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, cmd)

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	// --- 1. Environment Variables ---
	if v := os.Getenv("RHB_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	if v := os.Getenv("RHB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("RHB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("RHB_AUDIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.AuditEnabled = b
		}
	}
	if v := os.Getenv("RHB_RESET_PW"); v == "true" {
		c.ResetAdminPassword = true
	}
	if v := os.Getenv("RHB_USERS_FILE"); v != "" {
		c.Storage.UsersFile = v
	}
	if v := os.Getenv("RHB_IMPORT_DIR"); v != "" {
		c.Storage.ImportDir = v
	}
	if v := os.Getenv("RHB_SESSION_TIMEOUT"); v != "" {
		c.Auth.SessionTimeout = v
	}

	// --- 2. CLI Flags (Take precedence) ---
	if password != "" {
		c.AdminPassword = password
	}
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	// Check if flag was explicitly set
	if cmd.Flags().Changed("audit-enabled") {
		c.Logging.AuditEnabled = auditEnabled
	}
	if resetPassword {
		c.ResetAdminPassword = true
	}
	if usersFile != "" {
		c.Storage.UsersFile = usersFile
	}
	if importDir != "" {
		c.Storage.ImportDir = importDir
	}
	if sessionTimeout != "" {
		c.Auth.SessionTimeout = sessionTimeout
	}

	// --- 3. Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
