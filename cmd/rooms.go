package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const watchHelp = `Type a line to send it. Commands:
  /open <id>  switch to another room
  /call       start a video call (doctors)
  /accept     join the video call you were invited to
  /reject     decline the invitation
  /hangup     close the video call
  /quit       stop watching`

func newRoomsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List consultation rooms and follow their chat",
	}

	cmd.AddCommand(
		newRoomsListCmd(app),
		newRoomsMessagesCmd(app),
		newRoomsWatchCmd(app),
	)

	return cmd
}

func newRoomsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your rooms with their status and call state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.resume(cmd.Context()); err != nil {
				return err
			}
			if asJSON {
				app.renderer.Mute()
			}

			overview, err := app.service.Rooms(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), overview)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON output")

	return cmd
}

func newRoomsMessagesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "messages <room-id>",
		Short: "Print the conversation of a room",
		Args:  cobra.ExactArgs(1),
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
			if len(app.state.Messages()) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No messages yet.")
			}
			return err
		},
	}
}

func newRoomsWatchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:         "watch <room-id>",
		Short:       "Follow a room live: chat, call invitations and status changes",
		Long:        "Open a room and keep it in sync until /quit, end of input or Ctrl-C.\n\n" + watchHelp,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{liveAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := parseID("room", args[0])
			if err != nil {
				return err
			}
			if err := app.resume(cmd.Context()); err != nil {
				return err
			}

			room, err := app.service.OpenRoom(cmd.Context(), roomID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Watching room #%d with %s. /help lists commands.\n", room.ID, room.PartnerName(currentRole(app)))

			return runWatch(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runWatch(ctx context.Context, app *app, in io.Reader, out io.Writer) error {
	lines := scanLines(ctx, in)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := handleWatchLine(ctx, app, out, line); quit {
				return nil
			}
		}
	}
}

// handleWatchLine runs one line typed while watching. Failures have
// already been alerted by the service, so they are only logged here.
func handleWatchLine(ctx context.Context, app *app, out io.Writer, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	command, argument, _ := strings.Cut(line, " ")
	var err error
	switch command {
	case "/quit", "/exit":
		return true
	case "/help":
		_, _ = fmt.Fprintln(out, watchHelp)
	case "/open":
		var roomID int
		if roomID, err = parseID("room", argument); err == nil {
			_, err = app.service.OpenRoom(ctx, roomID)
		}
	case "/call":
		room, ok := app.state.CurrentRoom()
		if !ok {
			err = domain.ErrRoomNotFound
			break
		}
		err = app.calls.StartCall(ctx, room.ID)
	case "/accept", "/reject":
		err = app.calls.Respond(ctx, command == "/accept")
	case "/hangup":
		err = app.surface.Close(ctx)
	default:
		if strings.HasPrefix(command, "/") {
			app.renderer.Alert(fmt.Sprintf("Unknown command %s. /help lists commands.", command))
			return false
		}
		_, err = app.service.SendMessage(ctx, line)
	}

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNoInvitation), errors.Is(err, domain.ErrRoomNotFound):
		app.renderer.Alert(err.Error())
	default:
		app.logger.Debug("watch command failed", zap.String("command", command), zap.Error(err))
		if command == "/open" {
			app.renderer.Alert(err.Error())
		}
	}

	return false
}

// scanLines feeds input lines to the returned channel until EOF or ctx ends.
func scanLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func currentRole(app *app) domain.Role {
	if user, ok := app.state.User(); ok {
		return user.Role
	}
	return domain.RolePatient
}
