package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toitlang/pkg-desktop/browser"
	"github.com/toitlang/pkg-desktop/cliout"
)

func newOpenCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "open <url>",
		Short: "Open a URL in the default browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]

			// When output is piped there is likely no desktop session to
			// open a browser in; print the URL for the user instead.
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				fmt.Println(url)
				return nil
			}

			cliout.Info("Opening " + url)
			browser.OpenWithTimeout(url, timeout)
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", browser.DefaultTimeout, "How long the opener command may run before being terminated")
	return cmd
}
