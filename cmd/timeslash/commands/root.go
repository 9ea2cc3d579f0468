package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DrSkyle/timeslash/internal/app"
	"github.com/DrSkyle/timeslash/internal/config"
	"github.com/DrSkyle/timeslash/internal/version"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     app.Config
)

var rootCmd = &cobra.Command{
	Use:   "timeslash",
	Short: "Relative time expressions for humans",
	Long: `TimeSlash - Relative Time, Resolved

Type "now-1h/d", get a timestamp.`,
	Version: version.Current,
	Run: func(cmd *cobra.Command, args []string) {
		if err := app.Run(cfg); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent Flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.timeslash.yaml)")
	rootCmd.PersistentFlags().StringVar(&cfg.Timezone, "tz", "", "Timezone for results (IANA name, Local or UTC)")
	rootCmd.PersistentFlags().StringVar(&cfg.At, "at", "", "Pin the anchor instant (RFC 3339) instead of the clock")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderFutureGlassHelp(cmd)
	})
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".timeslash.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("TIMESLASH")
	viper.AutomaticEnv()
	viper.ReadInConfig()

	cfg.Settings = config.Default()
	viper.Unmarshal(&cfg.Settings)
}

func renderFutureGlassHelp(cmd *cobra.Command) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99")).
		MarginBottom(1)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("TIMESLASH %s [Future-Glass]", version.Current)))
	fmt.Println("Relative time expressions, resolved from your terminal.")

	fmt.Println(titleStyle.Render("USAGE"))
	fmt.Printf("  %s\n\n", cmd.UseLine())

	fmt.Println(titleStyle.Render("COMMANDS"))
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			fmt.Printf("  %-12s %s\n", c.Name(), c.Short)
		}
	}
	fmt.Println("")

	fmt.Println(titleStyle.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		output := fmt.Sprintf("  --%-15s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			output += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Println(flagStyle.Render(output))
	})
	fmt.Println("")
}
