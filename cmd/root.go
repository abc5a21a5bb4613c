// Package cmd is the command-line entry point. Configuration is read, in
// order of precedence, from flags, PORTFOLIO_* environment variables (plus
// the legacy PORT, SMTP_* and ADMIN_* names), a .env file, and
// .portfolio.yml in the working directory.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Zachkp/portfolio/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Serve the portfolio site",
	Long: `portfolio serves a single-page portfolio site: hero, skills, projects
and an HTMX contact form, plus a small admin dashboard over a
privacy-conscious visitor log.

Run without a subcommand to start the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .portfolio.yml, can also use PORTFOLIO_CONFIG_FILE)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	addServeFlags(rootCmd)
	rootCmd.AddCommand(serveCmd)
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if env := os.Getenv("PORTFOLIO_CONFIG_FILE"); env != "" {
		viper.SetConfigFile(env)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".portfolio")
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
