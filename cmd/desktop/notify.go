package main

import (
	"github.com/spf13/cobra"

	"github.com/toitlang/pkg-desktop/cliout"
	"github.com/toitlang/pkg-desktop/notify"
)

func newNotifyCommand() *cobra.Command {
	var urgent bool
	var icon string

	cmd := &cobra.Command{
		Use:   "notify <title> <message>",
		Short: "Send a desktop notification",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := notify.Send(notify.Notification{
				Title:   args[0],
				Message: args[1],
				Urgent:  urgent,
				Icon:    icon,
			})
			if err != nil {
				return err
			}

			cliout.Success("Notification sent")
			return nil
		},
	}

	cmd.Flags().BoolVar(&urgent, "urgent", false, "Send as an alert instead of a plain notification")
	cmd.Flags().StringVar(&icon, "icon", "", "Path to an icon image")
	return cmd
}
