package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/foodcart/restorank/internal/dispatch"
	"github.com/foodcart/restorank/internal/geocoder"
	"github.com/foodcart/restorank/internal/models"
	"github.com/foodcart/restorank/internal/output"
	"github.com/foodcart/restorank/internal/placecache"
	"github.com/foodcart/restorank/internal/repositories/postgres"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank eligible restaurants for every unprocessed order",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()
		pool, err := pgxpool.New(ctx, cfg.Database.ConnString())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()

		resolver := placecache.NewResolver(
			postgres.NewPlaceRepository(pool),
			geocoder.NewClient(cfg.Geocoder),
		)

		service := dispatch.NewService(
			postgres.NewRestaurantRepository(pool),
			postgres.NewMenuItemRepository(pool),
			postgres.NewOrderRepository(pool),
			resolver,
		)

		destination, err := output.NewDestination(cfg.KafkaEnabled, cfg.KafkaBrokerList)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output destination: %v\n", err)
			os.Exit(1)
		}
		defer destination.Close()
		service = service.WithOutput(destination, cfg.RankedTopic)

		assignments, err := service.AssignAll(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error ranking orders: %v\n", err)
			os.Exit(1)
		}

		printAssignments(assignments)
	},
}

func printAssignments(assignments []dispatch.OrderAssignment) {
	for _, a := range assignments {
		fmt.Printf("order %s  %s %s  %s  %.2f\n",
			a.Order.ID, a.Order.FirstName, a.Order.LastName, a.Order.Address, a.TotalPrice)
		switch {
		case a.Err != nil:
			fmt.Printf("  cannot rank: %v\n", a.Err)
		case len(a.Ranked) == 0:
			fmt.Println("  no restaurant can fulfill this order")
		default:
			for _, r := range a.Ranked {
				fmt.Printf("  %-30s %8.3f km\n", r.Name, r.DistanceKm)
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(rankCmd)
}
