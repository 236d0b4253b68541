package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player roster commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerFilterCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerDeleteCmd())

	return cmd
}

type playerFlags struct {
	coachID   int64
	firstname string
	lastname  string
	country   string
	dob       string
	height    float64
	weight    float64
}

func (f *playerFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.coachID, "coach", 0, "Coach id")
	cmd.Flags().StringVar(&f.firstname, "firstname", "", "First name")
	cmd.Flags().StringVar(&f.lastname, "lastname", "", "Last name")
	cmd.Flags().StringVar(&f.country, "country", "", "Country")
	cmd.Flags().StringVar(&f.dob, "dob", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "Height in cm")
	cmd.Flags().Float64Var(&f.weight, "weight", 0, "Weight in kg")
}

func (f *playerFlags) body() map[string]any {
	return map[string]any{
		"coachId":     f.coachID,
		"firstname":   f.firstname,
		"lastname":    f.lastname,
		"country":     f.country,
		"dateOfBirth": f.dob,
		"height":      f.height,
		"weight":      f.weight,
	}
}

func newPlayerCreateCmd() *cobra.Command {
	var flags playerFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a player to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Post("/api/v1/players", flags.body(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("firstname")
	_ = cmd.MarkFlagRequired("lastname")
	_ = cmd.MarkFlagRequired("country")
	_ = cmd.MarkFlagRequired("dob")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a player by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerFilterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter <country>",
		Short: "List players from a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/v1/players/filter/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerUpdateCmd() *cobra.Command {
	var flags playerFlags
	var id int64

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace a player record",
		Long: `Replace a player record in full. Every field is overwritten with the
given values, so pass all of them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == 0 {
				return fmt.Errorf("--id is required")
			}

			body := flags.body()
			body["id"] = id

			var result Player
			if err := client.Put("/api/v1/players", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Player id (required)")
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a player from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/" + args[0]); err != nil {
				return err
			}

			fmt.Printf("Deleted player %s\n", args[0])
			return nil
		},
	}
}
