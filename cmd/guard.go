package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/medicapp-cli/internal/application"
	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newGuardCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guard",
		Short: "Ask an on-duty doctor for attention",
	}

	cmd.AddCommand(
		newGuardRequestCmd(app),
		newGuardJoinCmd(app),
	)

	return cmd
}

func newGuardRequestCmd(app *app) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "request <doctor-id>",
		Short: "Open a chat room with an on-duty doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doctorID, err := parseID("doctor", args[0])
			if err != nil {
				return err
			}
			if err := app.resume(cmd.Context()); err != nil {
				return err
			}

			room, err := app.service.RequestGuard(cmd.Context(), application.RequestGuardCommand{DoctorID: doctorID, Note: note})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Room #%d opened with %s (%s). Follow it with: medicapp rooms watch %d\n",
				room.ID, room.PartnerName(domain.RolePatient), room.Status, room.ID)
			return err
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "what the consultation is about")

	return cmd
}

func newGuardJoinCmd(app *app) *cobra.Command {
	var assumeYes bool
	var assumeNo bool
	var rating int
	var comment string

	cmd := &cobra.Command{
		Use:         "join <doctor-id>",
		Short:       "Queue in a doctor's waiting room until the video call",
		Long:        "Join the doctor's waiting room and wait for approval, then for the call. After the call you are asked for a 1-5 rating.",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{liveAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			doctorID, err := parseID("doctor", args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rating") && (rating < domain.MinRating || rating > domain.MaxRating) {
				return domain.ErrInvalidRating
			}
			if err := app.resume(cmd.Context()); err != nil {
				return err
			}

			prompter := newLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout(), app.cfg.CallDuration)
			switch {
			case assumeYes:
				prompter.answer = &assumeYes
			case assumeNo:
				decline := false
				prompter.answer = &decline
			}

			var result application.AdmissionResult
			err = runWaitSpinner(cmd.Context(), cmd.ErrOrStderr(), "Joining the waiting room...", func(ctx context.Context, label *spinnerLabel) error {
				prompter.beforeAsk = func() { label.Set("") }
				flow := app.admission(prompter, func(phase domain.AdmissionPhase, room domain.Room) {
					label.Set(admissionLabel(phase, room))
				})

				var runErr error
				result, runErr = flow.Run(ctx, doctorID)
				return runErr
			})
			if err != nil {
				return err
			}
			if result.Phase != domain.AdmissionRating {
				return nil
			}

			flow := app.admission(prompter, nil)
			doctor := result.Room.PartnerName(domain.RolePatient)
			if !cmd.Flags().Changed("rating") {
				var ok bool
				rating, comment, ok, err = prompter.askRating(cmd.Context(), doctor)
				if err != nil {
					return err
				}
				if !ok {
					return writeRateLater(cmd.OutOrStdout(), doctorID)
				}
			}

			saved, err := flow.SubmitRating(cmd.Context(), doctorID, rating, comment)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Thanks! You rated %s %d/%d.\n", doctor, saved.Rating, domain.MaxRating)
			return err
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "join the call without asking")
	cmd.Flags().BoolVar(&assumeNo, "no", false, "decline the call without asking")
	cmd.Flags().IntVar(&rating, "rating", 0, "rating to send after the call (1-5)")
	cmd.Flags().StringVar(&comment, "comment", "", "comment sent with --rating")
	cmd.MarkFlagsMutuallyExclusive("yes", "no")

	return cmd
}

func admissionLabel(phase domain.AdmissionPhase, room domain.Room) string {
	switch phase {
	case domain.AdmissionWaitingApproval:
		if room.QueuePosition != nil {
			return fmt.Sprintf("Waiting for the doctor to accept you (position %d)...", *room.QueuePosition)
		}
		return "Waiting for the doctor to accept you..."
	case domain.AdmissionWaitingCall:
		return "Accepted. Waiting for the doctor to start the call..."
	default:
		return ""
	}
}

func writeRateLater(out io.Writer, doctorID int) error {
	_, err := fmt.Fprintf(out, "Rate later with: medicapp rate %d <1-5> [comment]\n", doctorID)
	return err
}
