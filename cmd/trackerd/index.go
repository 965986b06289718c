package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	ontology "github.com/tinysparql/go-ontology"
)

var (
	indexForce    bool
	indexFiles    []string
	indexDatabase string
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "load or reload the ontology and report registry statistics",
	RunE:  runIndex,
}

func init() {
	flags := pflag.NewFlagSet("index", pflag.ContinueOnError)
	flags.BoolVar(&indexForce, "force", false, "reload every ontology file (every listed file is loaded on each run, with or without this flag)")
	flags.StringSliceVar(&indexFiles, "file", nil, "ontology file to load (repeatable)")
	flags.StringVar(&indexDatabase, "database", "", "postgres DSN to introspect instead of loading --file ontology files")
	indexCmd.Flags().AddFlagSet(flags)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if indexDatabase != "" {
		return runIndexFromDatabase()
	}
	if len(indexFiles) == 0 {
		return fmt.Errorf("index: at least one --file or --database is required")
	}

	reg, err := ontology.LoadRDFFiles(indexFiles)
	if err != nil {
		log.WithError(err).Warn("index: ontology loaded with errors")
	}
	if reg == nil {
		return err
	}

	printRegistryStats(reg)
	return nil
}

func runIndexFromDatabase() error {
	db, err := gorm.Open(postgres.Open(indexDatabase), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("index: connecting to database: %w", err)
	}

	reg, err := ontology.LoadFromDatabase(db)
	if err != nil {
		log.WithError(err).Warn("index: ontology loaded from database with errors")
	}
	if reg == nil {
		return err
	}

	printRegistryStats(reg)
	return nil
}

func printRegistryStats(reg *ontology.Registry) {
	stats := reg.Stats()
	fmt.Printf("classes=%d properties=%d namespaces=%d ontologies=%d\n",
		stats.Classes, stats.Properties, stats.Namespaces, stats.Ontologies)
}
