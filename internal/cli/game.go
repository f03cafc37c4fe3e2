package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game lifecycle commands",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameActiveCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameJoinCmd())
	cmd.AddCommand(newGameBuyInCmd())
	cmd.AddCommand(newGameCashOutCmd())
	cmd.AddCommand(newGameEndCmd())

	return cmd
}

// parseSeat parses a "<playerId>:<buyIn>" seat argument
func parseSeat(arg string) (map[string]any, error) {
	id, amount, ok := strings.Cut(arg, ":")
	if !ok || id == "" {
		return nil, fmt.Errorf("invalid seat %q: expected <playerId>:<buyIn>", arg)
	}
	buyIn, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid buy-in in seat %q: %w", arg, err)
	}
	return map[string]any{"playerId": id, "buyIn": buyIn}, nil
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <playerId>:<buyIn> <playerId>:<buyIn> [...]",
		Short: "Start a new game with the given seats",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seats := make([]map[string]any, 0, len(args))
			for _, arg := range args {
				seat, err := parseSeat(arg)
				if err != nil {
					return err
				}
				seats = append(seats, seat)
			}

			req := map[string]any{"players": seats}
			var result Game

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameActiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "Show the current game",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get("/api/v1/games/active", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List past games, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <playerId> <buyIn>",
		Short: "Seat a player in the current game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			buyIn, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid buy-in: %w", err)
			}

			req := map[string]any{"playerId": args[0], "buyIn": buyIn}

			if err := client.Post("/api/v1/games/active/players", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Player seated")
			return nil
		},
	}
}

func newGameBuyInCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buyin <playerId> <amount>",
		Short: "Record an additional buy-in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			req := map[string]any{"amount": amount}

			if err := client.Post(fmt.Sprintf("/api/v1/games/active/players/%s/buyin", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Buy-in recorded")
			return nil
		},
	}
}

func newGameCashOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cashout <playerId> <amount>",
		Short: "Cash a player out of the current game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			req := map[string]any{"amount": amount}

			if err := client.Post(fmt.Sprintf("/api/v1/games/active/players/%s/cashout", args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Cash-out recorded")
			return nil
		},
	}
}

func newGameEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the current game and settle the books",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post("/api/v1/games/active/end", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
