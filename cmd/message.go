package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMessageCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Chat in a consultation room",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "send <room-id> <text...>",
		Short: "Send a message and print the updated conversation",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := parseID("room", args[0])
			if err != nil {
				return err
			}
			if err := app.resume(cmd.Context()); err != nil {
				return err
			}

			if _, err := app.service.OpenRoom(cmd.Context(), roomID); err != nil {
				return err
			}
			message, err := app.service.SendMessage(cmd.Context(), strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "Sent message %d to room #%d.\n", message.ID, roomID)
			return err
		},
	})

	return cmd
}
