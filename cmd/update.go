package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/joaovmb/trilha/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Atualizar o trilha para a versão mais recente",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: version,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})

		if err == nil {
			return nil
		}

		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Não é possível atualizar uma build de desenvolvimento. Instale uma versão de release primeiro.")
			return nil
		}
		if errors.Is(err, selfupdate.ErrAlreadyLatest) {
			fmt.Println("Você já está na versão mais recente.")
			return nil
		}
		if os.IsPermission(err) {
			return fmt.Errorf("%w\n\nTente rodar: sudo trilha update", err)
		}

		return err
	},
}
