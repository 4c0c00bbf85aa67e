package main

import (
	"context"

	"menubuilder/internal/usecase/impl"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the item collection as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		store, closeStore, err := openStore(context.Background(), logger)
		if err != nil {
			return err
		}
		defer closeStore()

		return impl.NewExportService(store, logger).ExportItems(exportOut)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportOut, "out", "items.csv", "output CSV path")
}
