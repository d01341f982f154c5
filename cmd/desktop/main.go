// Copyright (c) Toit contributors. All rights reserved.
// Licensed under the MIT License.

// Command desktop exposes the pkg-desktop library on the command line:
// opening URLs in the default browser, resolving XDG base directories, and
// sending desktop notifications.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/toitlang/pkg-desktop/cliout"
	"github.com/toitlang/pkg-desktop/logutil"
	"github.com/toitlang/pkg-desktop/version"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		cliout.Errorf("%v", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "desktop",
		Short:         "Cross-platform desktop helpers",
		Long:          "Cross-platform desktop helpers: open URLs in the default browser,\nresolve XDG base directories, and send desktop notifications.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logutil.SetupLogger(debug, false)
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().SetNormalizeFunc(normalizeFlags)

	root.AddCommand(
		newOpenCommand(),
		newPathsCommand(),
		newNotifyCommand(),
		version.NewCommand(version.New("desktop")),
	)

	return root
}

// normalizeFlags accepts snake_case spellings of flag names.
func normalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
