package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var username, password string
	var save bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange a username and password for an API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Fprint(os.Stderr, "Password: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			body, err := getClient().Post("/auth/token", TokenRequest{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}

			var resp TokenResponse
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			if !save {
				if flagJSON {
					printJSON(resp)
				} else {
					printMessage(resp.Token)
				}
				return nil
			}

			path, err := saveToken(resp.Token)
			if err != nil {
				return err
			}
			printMessage("Logged in as " + username + "; token saved to " + path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	cmd.Flags().BoolVar(&save, "save", true, "Save the token to the config file")
	cmd.MarkFlagRequired("username")
	return cmd
}
