package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/estudia-app/estudia/internal/api"
	"github.com/estudia-app/estudia/internal/cli"
	"github.com/estudia-app/estudia/internal/session"
)

func newLoginCommand() *cobra.Command {
	var google bool
	command := &cobra.Command{
		Use:   "login",
		Short: "Log in to the backend and store the session cookie",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			client, err := newAPIClient(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			auth := session.NewAuth(client)
			if google {
				fmt.Println("Open this URL in your browser to log in with Google:")
				fmt.Println(auth.GoogleLoginURL())
				return nil
			}

			reader := bufio.NewReader(os.Stdin)
			email, err := cli.GetSimpleText(reader, "Email", os.Stdout)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			password, err := cli.GetPassword("Password", os.Stdout)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			if err := auth.Login(cmd.Context(), email, password); err != nil {
				if message, ok := api.PermissionErrorMessage(err); ok {
					return fmt.Errorf("login failed: %s", message)
				}
				return fmt.Errorf("auth.Login > %w", err)
			}

			user, _ := auth.CurrentUser()
			fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Email)
			return nil
		},
	}
	command.Flags().BoolVar(&google, "google", false, "Print the Google OAuth login URL instead of prompting for credentials")
	return command
}

func newRegisterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			client, err := newAPIClient(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			reader := bufio.NewReader(os.Stdin)
			email, err := cli.GetSimpleText(reader, "Email", os.Stdout)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			name, err := cli.GetSimpleText(reader, "First name", os.Stdout)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			lastname, err := cli.GetSimpleText(reader, "Last name", os.Stdout)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			password, err := cli.GetPassword("Password", os.Stdout)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			auth := session.NewAuth(client)
			if err := auth.Register(cmd.Context(), api.RegisterParams{
				Username: email,
				Name:     name,
				Lastname: lastname,
				Password: password,
			}); err != nil {
				return fmt.Errorf("auth.Register > %w", err)
			}

			user, _ := auth.CurrentUser()
			fmt.Printf("Welcome, %s. You are logged in.\n", user.Name)
			return nil
		},
	}
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Destroy the backend session and forget the cookie",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			client, err := newAPIClient(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			auth := session.NewAuth(client)
			if err := auth.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("auth.Logout > %w", err)
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently logged in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			client, err := newAPIClient(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			user, err := requireLogin(cmd.Context(), client)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s <%s> (id %d)\n", user.Name, user.Lastname, user.Email, user.ID)
			return nil
		},
	}
}
