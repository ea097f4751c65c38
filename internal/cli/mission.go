package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newMissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Mission lifecycle commands",
	}

	cmd.AddCommand(newMissionCreateCmd())
	cmd.AddCommand(newMissionGetCmd())
	cmd.AddCommand(newMissionListCmd())
	cmd.AddCommand(newMissionTransitionCmd("start", "in-progress", "Move a pending mission to in progress"))
	cmd.AddCommand(newMissionTransitionCmd("complete", "complete", "Mark an in-progress mission completed"))
	cmd.AddCommand(newMissionTransitionCmd("fail", "fail", "Mark an in-progress mission failed"))
	cmd.AddCommand(newMissionDeleteCmd())
	cmd.AddCommand(newMissionJoinCmd())
	cmd.AddCommand(newMissionLeaveCmd())

	return cmd
}

func newMissionCreateCmd() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new mission (you become its chief)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"name":        name,
				"description": description,
			}
			var result Mission

			if err := client.Post("/api/v1/missions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Mission name (required)")
	cmd.Flags().StringVar(&description, "description", "", "Mission description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newMissionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <mission-id>",
		Short: "Show a mission with its crew count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MissionView

			if err := client.Get("/api/v1/missions/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMissionListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visible missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/missions"
			if status != "" {
				path += "?status=" + url.QueryEscape(status)
			}

			var result []Mission
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending, in_progress, completed, failed)")

	return cmd
}

func newMissionTransitionCmd(use, action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <mission-id>", use),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TransitionResult

			path := fmt.Sprintf("/api/v1/missions/%s/%s", args[0], action)
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMissionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <mission-id>",
		Short: "Delete a mission you lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/missions/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Mission deleted")
			return nil
		},
	}
}

func newMissionJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <mission-id>",
		Short: "Join a mission's crew",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/missions/"+args[0]+"/join", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Joined crew")
			return nil
		},
	}
}

func newMissionLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave <mission-id>",
		Short: "Leave a mission's crew",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/missions/"+args[0]+"/leave", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Left crew")
			return nil
		},
	}
}
