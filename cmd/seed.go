package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/foodcart/restorank/internal/factories"
	"github.com/foodcart/restorank/internal/models"
	"github.com/foodcart/restorank/internal/repositories/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with generated restaurants, menus and orders",
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

		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating schema: %v\n", err)
			os.Exit(1)
		}

		if err := seed(ctx, pool, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding: %v\n", err)
			os.Exit(1)
		}
	},
}

func seed(ctx context.Context, pool *pgxpool.Pool, cfg *models.Config) error {
	restaurantRepo := postgres.NewRestaurantRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	menuItemRepo := postgres.NewMenuItemRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)

	restaurantFactory := &factories.RestaurantFactory{}
	productFactory := &factories.ProductFactory{}
	orderFactory := &factories.OrderFactory{}

	// Re-seeding starts from a clean slate; the place cache survives,
	// resolved coordinates stay valid across data sets.
	if err := orderRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing orders: %w", err)
	}
	if err := menuItemRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing menu items: %w", err)
	}
	if err := restaurantRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing restaurants: %w", err)
	}
	if err := productRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing products: %w", err)
	}

	bar := progressbar.Default(int64(cfg.SeedRestaurants+cfg.SeedProducts+cfg.SeedOrders), "seeding")

	restaurants := make([]*models.Restaurant, cfg.SeedRestaurants)
	for i := range restaurants {
		restaurants[i] = restaurantFactory.CreateRestaurant(cfg)
		bar.Add(1)
	}
	if err := restaurantRepo.BulkCreate(ctx, restaurants); err != nil {
		return fmt.Errorf("seeding restaurants: %w", err)
	}

	products := make([]*models.Product, cfg.SeedProducts)
	for i := range products {
		products[i] = productFactory.CreateProduct()
		bar.Add(1)
	}
	if err := productRepo.BulkCreate(ctx, products); err != nil {
		return fmt.Errorf("seeding products: %w", err)
	}

	var menuItems []*models.MenuItem
	for _, restaurant := range restaurants {
		menuItems = append(menuItems, productFactory.CreateMenuItems(restaurant, products, cfg.SeedAvailability)...)
	}
	if err := menuItemRepo.BulkCreate(ctx, menuItems); err != nil {
		return fmt.Errorf("seeding menu items: %w", err)
	}

	orders := make([]*models.Order, cfg.SeedOrders)
	for i := range orders {
		orders[i] = orderFactory.CreateOrder(cfg, products)
		bar.Add(1)
	}
	if err := orderRepo.BulkCreate(ctx, orders); err != nil {
		return fmt.Errorf("seeding orders: %w", err)
	}

	restaurantCount, err := restaurantRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting restaurants: %w", err)
	}
	productCount, err := productRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting products: %w", err)
	}
	menuItemCount, err := menuItemRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting menu items: %w", err)
	}
	orderCount, err := orderRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting orders: %w", err)
	}

	fmt.Printf("seeded %d restaurants, %d products, %d menu items, %d orders\n",
		restaurantCount, productCount, menuItemCount, orderCount)
	return nil
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().Int("seed-restaurants", 10, "Number of restaurants to generate")
	seedCmd.Flags().Int("seed-products", 30, "Number of products to generate")
	seedCmd.Flags().Int("seed-orders", 20, "Number of unprocessed orders to generate")
	seedCmd.Flags().Float64("seed-availability", 0.6, "Probability a restaurant stocks a product")

	viper.BindPFlag("seed_restaurants", seedCmd.Flags().Lookup("seed-restaurants"))
	viper.BindPFlag("seed_products", seedCmd.Flags().Lookup("seed-products"))
	viper.BindPFlag("seed_orders", seedCmd.Flags().Lookup("seed-orders"))
	viper.BindPFlag("seed_availability", seedCmd.Flags().Lookup("seed-availability"))
}
