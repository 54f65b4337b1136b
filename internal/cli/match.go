package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match commands",
	}

	cmd.AddCommand(newMatchCreateCmd())
	cmd.AddCommand(newMatchGetCmd())
	cmd.AddCommand(newMatchJoinCmd())
	cmd.AddCommand(newMatchMoveCmd())
	cmd.AddCommand(newMatchLegalCmd())
	cmd.AddCommand(newMatchResetCmd())
	cmd.AddCommand(newMatchResignCmd())

	return cmd
}

func newMatchCreateCmd() *cobra.Command {
	var opponent, strategy, mark string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new match",
		RunE: func(cmd *cobra.Command, args []string) error {
			mark = strings.ToUpper(mark)
			if mark != "" && mark != "X" && mark != "O" {
				return fmt.Errorf("mark must be X or O")
			}

			req := map[string]string{}
			if opponent != "" {
				req["opponent"] = opponent
			}
			if strategy != "" {
				req["cpu_strategy"] = strategy
			}
			if mark != "" {
				req["mark"] = mark
			}

			var result MatchResult

			if err := client.Post("/api/v1/matches", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&opponent, "opponent", "", "Opponent kind: cpu (default) or human")
	cmd.Flags().StringVar(&strategy, "strategy", "", "CPU strategy: minimax (default) or random")
	cmd.Flags().StringVar(&mark, "mark", "", "Your seat: X (default) or O")

	return cmd
}

func newMatchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a match and its board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Get(fmt.Sprintf("/api/v1/matches/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <id>",
		Short: "Join a waiting match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Post(fmt.Sprintf("/api/v1/matches/%s/join", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <board-x> <board-y> <cell-x> <cell-y>",
		Short: "Play a move",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			coords := make([]int, 4)
			for i, name := range []string{"board-x", "board-y", "cell-x", "cell-y"} {
				v, err := strconv.Atoi(args[i+1])
				if err != nil {
					return fmt.Errorf("invalid %s: %w", name, err)
				}
				if v < 0 || v > 2 {
					return fmt.Errorf("%s must be 0-2", name)
				}
				coords[i] = v
			}

			req := map[string]int{
				"board_x": coords[0],
				"board_y": coords[1],
				"cell_x":  coords[2],
				"cell_y":  coords[3],
			}
			var result MoveSubmitResult

			if err := client.Post(fmt.Sprintf("/api/v1/matches/%s/moves", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchLegalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "legal <id>",
		Short: "List the legal moves in a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result LegalMovesResult

			if err := client.Get(fmt.Sprintf("/api/v1/matches/%s/moves/legal", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <id>",
		Short: "Reset a match to a fresh board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MatchResult

			if err := client.Post(fmt.Sprintf("/api/v1/matches/%s/reset", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchResignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resign <id>",
		Short: "Resign the match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Post(fmt.Sprintf("/api/v1/matches/%s/resign", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
