package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/medicapp-cli/internal/adapters/render/console"
	"github.com/bnema/medicapp-cli/internal/application"
	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errEmptyPassword = errors.New("password is empty")

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session for later commands",
		Long:  "Sign in with email and password. Without --password the password is read from the first line of stdin.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				read, err := readSecretLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				password = read
			}

			user, err := app.service.Login(cmd.Context(), application.LoginCommand{Email: email, Password: password})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s).\n", user.Name, user.Role)
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newRegisterCmd(app *app) *cobra.Command {
	var name string
	var email string
	var password string
	var role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a patient or doctor account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				read, err := readSecretLine(cmd.InOrStdin())
				if err != nil {
					return err
				}
				password = read
			}

			user, err := app.service.Register(cmd.Context(), application.RegisterCommand{
				Name:     name,
				Email:    email,
				Password: password,
				Role:     domain.Role(role),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s <%s> as %s. Sign in with: medicapp login --email %s\n", user.Name, user.Email, user.Role, user.Email)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (read from stdin when omitted)")
	cmd.Flags().StringVar(&role, "role", string(domain.RolePatient), "patient or doctor")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.service.Logout(cmd.Context())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return err
		},
	}
}

func newSessionCmd(app *app) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect the stored session",
	}

	var asJSON bool
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show who is signed in and which tokens are stored",
		Long:  "Show the stored session without calling the server.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.session.Restore(cmd.Context())
			status := app.service.Status(cmd.Context())

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), status)
			}

			rendered, err := app.statusRenderer(status, console.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
	statusCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON output")

	sessionCmd.AddCommand(statusCmd)
	return sessionCmd
}

func readSecretLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errEmptyPassword
	}
	return line, nil
}

func writeJSON(out io.Writer, value any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
