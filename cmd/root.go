package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fsbench-sim/fsbench-sim/vars"
)

var (
	// CLI flags
	profilePath string // Path to the variable profile YAML
	logLevel    string // Log verbosity level
	samples     int    // Samples to draw per random attribute
	maxVars     int    // Variable table capacity
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "fsbench-sim",
	Short: "Delayed-binding variable engine for benchmark workload models",
}

// resolveCmd loads a variable profile, builds the model's variables and
// attribute references, and prints every attribute's resolved value.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a variable profile and print attribute values",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if profilePath == "" {
			logrus.Fatalf("No variable profile provided. Exiting.")
		}

		profile, err := LoadProfile(profilePath)
		if err != nil {
			logrus.Fatalf("unable to read variable profile: %v", err)
		}

		c := vars.NewContext(vars.Config{MaxVariables: maxVars})
		if err := profile.Apply(c); err != nil {
			logrus.Fatalf("unable to apply variable profile: %v", err)
		}

		randomNames := make(map[string]bool, len(profile.Randoms))
		for _, r := range profile.Randoms {
			randomNames[r.Name] = true
		}

		for _, attr := range profile.Attributes {
			avd, err := c.Reference(attr.Ref)
			if err != nil {
				// Unresolved attribute references are a model-authoring
				// defect; the run terminates here.
				logrus.Fatalf("unresolvable attribute %s: %v", attr.Name, err)
			}

			text, _ := c.ToString(attr.Ref)
			fmt.Printf("%s = %s\n", attr.Name, text)

			if len(attr.Ref) > 1 && randomNames[attr.Ref[1:]] {
				for i := 0; i < samples; i++ {
					fmt.Printf("  sample %d: %d\n", i+1, avd.Int())
				}
			}
		}

		logrus.Info("Resolution complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	resolveCmd.Flags().StringVar(&profilePath, "profile", "", "Path to the variable profile YAML")
	resolveCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	resolveCmd.Flags().IntVar(&samples, "samples", 5, "Samples to draw per random attribute")
	resolveCmd.Flags().IntVar(&maxVars, "max-vars", 4096, "Variable table capacity")

	rootCmd.AddCommand(resolveCmd)
}
