package main

import (
	"context"
	"fmt"

	"menubuilder/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every saved record against the save rules",
	Long: `Loading a data file trusts its contents; validate reruns the editor's
save rules over every record and reports each violation. Exits non-zero
when any record fails, so it can gate a pipeline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		store, closeStore, err := openStore(context.Background(), logger)
		if err != nil {
			return err
		}
		defer closeStore()

		violations := impl.NewCatalogService(store, nil, logger).Audit()
		if len(violations) == 0 {
			fmt.Println("ok: no violations")

			return nil
		}

		for _, v := range violations {
			fmt.Printf("%s %d: %v\n", v.Kind, v.ID, v.Err)
		}

		return errors.Errorf("%d violation(s)", len(violations))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
