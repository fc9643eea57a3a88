package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/medicapp-cli/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// liveAnnotation marks commands that keep polling, which switches the
// renderer to view and thread updates.
const liveAnnotation = "medicapp/live"

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "medicapp",
		Short:         "MedicApp terminal client: consultations, chat and video calls",
		Long:          "medicapp signs you in to a MedicApp backend, keeps your consultation rooms and messages in sync, and takes patients through the waiting room, video call and rating.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := wireApp(v, wireOptions{
				Out:  cmd.OutOrStdout(),
				Err:  cmd.ErrOrStderr(),
				Live: cmd.Annotations[liveAnnotation] == "true",
			})
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("base-url", "", "MedicApp API base URL (default "+config.DefaultBaseURL+")")
	flags.String("profile", "", "session profile name (default "+config.DefaultProfile+")")
	flags.BoolP("verbose", "v", false, "log to stderr as well as the log file")
	_ = v.BindPFlag(config.KeyBaseURL, flags.Lookup("base-url"))
	_ = v.BindPFlag(config.KeyProfile, flags.Lookup("profile"))
	_ = v.BindPFlag(config.KeyLogVerbose, flags.Lookup("verbose"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newSessionCmd(app),
		newDoctorsCmd(app),
		newAvailabilityCmd(app),
		newRoomsCmd(app),
		newMessageCmd(app),
		newCallCmd(app),
		newGuardCmd(app),
		newRateCmd(app),
		newProfileCmd(app),
	)

	return rootCmd
}
