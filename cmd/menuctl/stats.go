package main

import (
	"context"
	"fmt"

	"menubuilder/internal/domain/entity"
	"menubuilder/internal/usecase/impl"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print record counts per kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		store, closeStore, err := openStore(context.Background(), logger)
		if err != nil {
			return err
		}
		defer closeStore()

		stats := impl.NewCatalogService(store, nil, logger).Stats()
		for _, kind := range entity.Kinds() {
			fmt.Printf("%-17s %d\n", kind, stats[kind])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
