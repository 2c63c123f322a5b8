// storectl is a small operator CLI for the store's admin operations. It
// talks to the running gRPC server, so repricing and seeding go through the
// same use cases as any other caller.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/garasindo/sparepart-service/proto/store/v1"
)

var serverAddr string

func main() {
	root := &cobra.Command{
		Use:   "storectl",
		Short: "Operator CLI for the spare-part store service",
	}
	root.PersistentFlags().StringVar(&serverAddr, "addr", "localhost:9090", "gRPC server address")

	root.AddCommand(repriceCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func dial() (pb.StoreServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", serverAddr, err)
	}
	return pb.NewStoreServiceClient(conn), func() { conn.Close() }, nil
}

func repriceCmd() *cobra.Command {
	var percentage float64

	cmd := &cobra.Command{
		Use:   "reprice",
		Short: "Apply a percentage price change to the whole catalog",
		Long: `Reprice every product by the given percentage. The new price is
rounded up to the nearest 100 rupiah. The update is atomic: either every
product is repriced or none are.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeConn, err := dial()
			if err != nil {
				return err
			}
			defer closeConn()

			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			reply, err := client.BulkUpdatePrices(ctx, &pb.BulkUpdatePricesRequest{
				Percentage: percentage,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Repriced %d products by %+.2f%%\n", reply.ProductsUpdated, percentage)
			return nil
		},
	}

	cmd.Flags().Float64Var(&percentage, "percentage", 0, "percentage change, e.g. 5 for +5%")
	_ = cmd.MarkFlagRequired("percentage")
	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create a handful of sample products for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeConn, err := dial()
			if err != nil {
				return err
			}
			defer closeConn()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			tier3 := func(v int64) *int64 { return &v }

			samples := []*pb.CreateProductRequest{
				{Name: "Kampas Rem Depan Vario 125", Category: "brake", Price: 85000, Price_3Items: tier3(80000), Price_5Items: tier3(76000), Stock: 40},
				{Name: "Busi NGK CPR9EA", Category: "ignition", Price: 25000, Price_3Items: tier3(23000), Stock: 120},
				{Name: "Oli Mesin 10W-30 1L", Category: "lubricant", Price: 55000, Stock: 80},
				{Name: "Filter Udara Beat FI", Category: "filter", Price: 42000, Price_5Items: tier3(38000), Stock: 25},
			}

			for _, sample := range samples {
				reply, err := client.CreateProduct(ctx, sample)
				if err != nil {
					return fmt.Errorf("failed to create %q: %w", sample.Name, err)
				}
				fmt.Printf("Created %s (%s)\n", sample.Name, reply.ProductId)
			}
			return nil
		},
	}
}
