package cli

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the version number",
	Annotations: map[string]string{skipServices: "true"},
	Run: func(cmd *cobra.Command, _ []string) {
		revision, goVersion := buildInfo()
		if revision != "" {
			cmd.Printf("medreport version %s (%s)\n", version, revision)
		} else {
			cmd.Printf("medreport version %s\n", version)
		}
		cmd.Printf("built with %s\n", goVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// buildInfo returns the short VCS revision, if stamped, and the Go version.
func buildInfo() (revision, goVersion string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", runtime.Version()
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
			revision = setting.Value[:7]
		}
	}
	return revision, info.GoVersion
}
