package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errAnswerRequired = errors.New("pass exactly one of --accept or --reject")

func newCallCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call",
		Short: "Start or answer video calls",
	}

	cmd.AddCommand(
		newCallStartCmd(app),
		newCallRespondCmd(app),
	)

	return cmd
}

func newCallStartCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "start <room-id>",
		Short: "Invite the room's patient to a video call (doctors)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := parseID("room", args[0])
			if err != nil {
				return err
			}
			if err := app.resume(cmd.Context()); err != nil {
				return err
			}

			if err := app.calls.StartCall(cmd.Context(), roomID); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Calling the patient of room #%d.\n", roomID)
			return err
		},
	}
}

func newCallRespondCmd(app *app) *cobra.Command {
	var accept bool
	var reject bool

	cmd := &cobra.Command{
		Use:   "respond --accept|--reject",
		Short: "Answer the pending call invitation (patients)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if accept == reject {
				return errAnswerRequired
			}
			if err := app.resume(cmd.Context()); err != nil {
				return err
			}

			// The room list is what reveals the invitation.
			if _, err := app.service.Rooms(cmd.Context()); err != nil {
				return err
			}
			if app.state.InvitedRoomID() == 0 {
				return domain.ErrNoInvitation
			}
			roomID := app.state.InvitedRoomID()

			if err := app.calls.Respond(cmd.Context(), accept); err != nil {
				return err
			}

			answer := "Declined"
			if accept {
				answer = "Accepted"
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s the call in room #%d.\n", answer, roomID)
			return err
		},
	}

	cmd.Flags().BoolVar(&accept, "accept", false, "join the call")
	cmd.Flags().BoolVar(&reject, "reject", false, "decline the call")
	cmd.MarkFlagsMutuallyExclusive("accept", "reject")

	return cmd
}
