package main

import (
	"context"
	"log"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"kpi_platform/internal/database"
	"kpi_platform/internal/seed"
)

func main() {
	cfg := seed.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset the KPI database schema and fill it with randomized sample data",
		Long: `Drops every application table, recreates the schema and inserts a fresh
randomized dataset. All existing data is lost on every run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.IntVar(&cfg.Companies, "companies", cfg.Companies, "number of companies to generate")
	flags.IntVar(&cfg.ClientsPerCompany, "clients-per-company", cfg.ClientsPerCompany, "clients generated per company")
	flags.IntVar(&cfg.Projects, "projects", cfg.Projects, "number of projects to generate")
	flags.IntVar(&cfg.Employees, "employees", cfg.Employees, "number of employees to generate")
	flags.IntVar(&cfg.RevenueMonths, "revenue-months", cfg.RevenueMonths, "months of revenue history per company")
	flags.IntVar(&cfg.TimeEntries, "time-entries", cfg.TimeEntries, "number of time entries to generate")
	flags.IntVar(&cfg.HiringRows, "hiring-rows", cfg.HiringRows, "number of hiring pipeline rows to generate")
	flags.Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 picks a random one)")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg seed.Config) error {
	if err := database.EnsureDatabaseExists(); err != nil {
		return err
	}

	pool, err := database.Connect()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Println("resetting schema, all existing data will be dropped")
	if err := database.ResetSchema(ctx, pool); err != nil {
		return err
	}

	start := time.Now()
	ds := seed.Generate(cfg)
	log.Printf("generated %d rows in %s", ds.RowCount(), time.Since(start).Round(time.Millisecond))

	start = time.Now()
	if err := seed.Insert(ctx, pool, ds); err != nil {
		return err
	}
	log.Printf("inserted %d rows across %d tables in %s",
		ds.RowCount(), len(database.TableNames), time.Since(start).Round(time.Millisecond))

	log.Printf("seed complete: %d companies, %d clients, %d projects, %d employees",
		len(ds.Companies), len(ds.Clients), len(ds.Projects), len(ds.Employees))
	return nil
}
