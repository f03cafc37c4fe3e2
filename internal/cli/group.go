package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Player group commands",
	}

	cmd.AddCommand(newGroupListCmd())
	cmd.AddCommand(newGroupCreateCmd())

	return cmd
}

func newGroupListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Group

			if err := client.Get("/api/v1/groups", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGroupCreateCmd() *cobra.Command {
	var players string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a group of players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerIDs := []string{}
			if players != "" {
				playerIDs = strings.Split(players, ",")
			}

			req := map[string]any{
				"name":      args[0],
				"playerIds": playerIDs,
			}
			var result Group

			if err := client.Post("/api/v1/groups", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&players, "players", "", "Comma-separated player ids")

	return cmd
}
