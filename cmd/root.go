package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/joaovmb/trilha/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "trilha",
	Short: "Preparação gamificada para o ENEM no terminal",
	Long:  "Trilha — sessões de estudo gamificadas para o ENEM: leitura guiada, atividades, quiz com vidas e desafios com medalhas, direto no terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A .env in the working directory may carry TRILHA_DB and friends.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Caminho do banco SQLite (sobrepõe a variável TRILHA_DB)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TRILHA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
