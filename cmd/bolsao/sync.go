package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inteligencia-matriz/gestor-bolsao/internal/cli"
)

func syncCmd() *cobra.Command {
	var statusOnly bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Flush the offline queue to the shared sheet",
		Long: `Append every record waiting in the local queue to the shared sheet in one
batched request. Either the whole batch lands and the queue is cleared, or
the queue is left untouched for the next attempt.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			// newApp already attempted a flush; report what remains.
			count, err := a.reg.PendingCount(ctx)
			if err != nil {
				return err
			}

			if statusOnly {
				if count == 0 {
					fmt.Println(cli.FormatSuccess("fila offline vazia"))
				} else {
					fmt.Println(cli.FormatQueued(fmt.Sprintf(
						"%d registro(s) pendente(s) de sincronização", count)))
				}
				return nil
			}

			if count == 0 {
				fmt.Println(cli.FormatSuccess("fila offline vazia, nada a sincronizar"))
				return nil
			}

			flushed, err := a.reg.SyncPending(ctx)
			if err != nil {
				fmt.Println(cli.FormatError(fmt.Sprintf(
					"sincronização falhou, %d registro(s) mantido(s) na fila", count)))
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"%d registro(s) sincronizado(s)", flushed)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&statusOnly, "status", false, "only show how many records are pending")
	return cmd
}
