package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Overridable at link time:
//
//	go build -ldflags "-X main.version=v0.2.0 -X main.commit=$(git rev-parse HEAD)"
//
// Fields left at their defaults are filled from the module and VCS data the
// Go toolchain embeds in the binary.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion resolves version, commit and date, preferring link-time values.
func buildVersion(info *debug.BuildInfo, ok bool) (v, c, d string) {
	v, c, d = version, commit, date
	if !ok || info == nil {
		return v, c, d
	}
	if v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && c == "none":
			c = s.Value
		case s.Key == "vcs.time" && d == "unknown":
			d = s.Value
		}
	}
	return v, c, d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		v, c, d := buildVersion(debug.ReadBuildInfo())
		fmt.Printf("growbench %s\n", v)
		fmt.Printf("  commit: %s\n", c)
		fmt.Printf("  built: %s\n", d)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version, _, _ = buildVersion(debug.ReadBuildInfo())
}
