package commands

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"github.com/tgienger/vcli/internal/api"
	"github.com/tgienger/vcli/internal/config"
	"github.com/tgienger/vcli/internal/ui"
	"github.com/tgienger/vcli/internal/ui/views"
)

// tokenExpiry reads the exp claim without verifying the signature
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func newLoginCommand(app *App) *cobra.Command {
	var host string
	var creds api.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to a Vikunja instance and store the token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host = strings.TrimSpace(host)
			if host == "" {
				return errors.New("--host is required")
			}
			if creds.Password == "" {
				password, err := ui.PromptSecret("Password:", app.env.In, app.env.Err)
				if err != nil {
					return err
				}
				creds.Password = password
			}

			client := api.NewClient(&config.Config{Host: host}, app.clientOptions()...)
			token, err := client.Login(cmd.Context(), creds)
			if err != nil {
				return err
			}

			path, err := app.configPath()
			if err != nil {
				return err
			}
			if err := config.Save(path, &config.Config{Host: client.Host(), Token: token}); err != nil {
				return err
			}
			app.log.WithField("path", path).Debug("saved credentials")

			r := app.renderer()
			r.Success("Logged in to %s as %s", client.Host(), creds.Username)
			if exp, ok := tokenExpiry(token); ok {
				r.Success("Token expires %s (%s)", views.RelativeTime(exp, app.env.Now()), exp.Local().Format(time.DateTime))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&host, "host", "", "Base URL of the Vikunja instance")
	f.StringVarP(&creds.Username, "username", "u", "", "Username")
	f.StringVarP(&creds.Password, "password", "p", "", "Password (prompted when omitted)")
	f.StringVar(&creds.TOTP, "totp", "", "TOTP passcode when two factor auth is enabled")
	_ = cmd.MarkFlagRequired("host")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}
