package cli

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newBrawlerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brawler",
		Short: "Brawler account commands",
	}

	cmd.AddCommand(newBrawlerRegisterCmd())
	cmd.AddCommand(newBrawlerLoginCmd())
	cmd.AddCommand(newBrawlerAvatarCmd())
	cmd.AddCommand(newBrawlerMissionsCmd())

	return cmd
}

func newBrawlerRegisterCmd() *cobra.Command {
	var user, pass, name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new brawler account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"username": user,
				"password": pass,
			}
			if name != "" {
				req["display_name"] = name
			}
			var result Passport

			if err := client.Post("/api/v1/brawlers/register", req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.AccessToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to username)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newBrawlerLoginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"username": user,
				"password": pass,
			}
			var result Passport

			if err := client.Post("/api/v1/brawlers/login", req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.AccessToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newBrawlerAvatarCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "avatar",
		Short: "Upload an avatar image",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}

			req := map[string]string{
				"image_base64": base64.StdEncoding.EncodeToString(data),
			}
			var result Avatar

			if err := client.Post("/api/v1/brawlers/avatar", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to image file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newBrawlerMissionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "my-missions",
		Short: "List missions you lead or crew for",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []MissionView

			if err := client.Get("/api/v1/brawlers/my-missions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
