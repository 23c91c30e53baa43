package main

import (
	"context"
	"fmt"

	"github.com/hairizuan-noorazman/jobly/logger"
	"github.com/hairizuan-noorazman/jobly/user"
	"github.com/spf13/cobra"
)

var newUser struct {
	username  string
	password  string
	firstName string
	lastName  string
	email     string
	admin     bool
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User account commands",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account, optionally with admin rights",
	Long: `Create a user account directly in the database.

Registration through the API never grants admin rights, so the first admin
is created with this command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		db, sqlDB, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		u := &user.User{
			Username:  newUser.username,
			FirstName: newUser.firstName,
			LastName:  newUser.lastName,
			Email:     newUser.email,
			IsAdmin:   newUser.admin,
		}
		if err := u.SetPassword(newUser.password); err != nil {
			return err
		}

		log := logger.NewLogrusLogger(cfg.Log.Level)
		if err := user.NewPostgresStore(db, log).Create(context.Background(), u); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (admin: %t)\n", u.Username, u.IsAdmin)
		return nil
	},
}

func init() {
	f := userCreateCmd.Flags()
	f.StringVar(&newUser.username, "username", "", "username (required)")
	f.StringVar(&newUser.password, "password", "", "password (required)")
	f.StringVar(&newUser.firstName, "first-name", "", "first name (required)")
	f.StringVar(&newUser.lastName, "last-name", "", "last name (required)")
	f.StringVar(&newUser.email, "email", "", "email address (required)")
	f.BoolVar(&newUser.admin, "admin", false, "grant admin rights")
	for _, name := range []string{"username", "password", "first-name", "last-name", "email"} {
		userCreateCmd.MarkFlagRequired(name)
	}

	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(userCmd)
}
