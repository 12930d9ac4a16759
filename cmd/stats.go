package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joaovmb/trilha/internal/catalog"
	"github.com/joaovmb/trilha/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Mostrar estatísticas de estudo",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		learner := st.LearnerRepo()

		xp, err := st.SessionRepo().TotalXP(ctx)
		if err != nil {
			return err
		}
		badges, err := learner.AllBadges(ctx)
		if err != nil {
			return err
		}
		rows, err := learner.AllProgress(ctx)
		if err != nil {
			return err
		}
		completed := 0
		for _, row := range rows {
			if row.Completed {
				completed++
			}
		}

		fmt.Printf("XP total:             %d\n", xp)
		fmt.Printf("Medalhas:             %d\n", len(badges))
		fmt.Printf("Trilhas concluídas:   %d (de %d iniciadas)\n\n", completed, len(rows))

		totals, err := learner.TotalsBySubject(ctx)
		if err != nil {
			return err
		}
		if len(totals) == 0 {
			fmt.Println("Nenhum quiz respondido ainda.")
			return nil
		}
		fmt.Println("Quizzes por área:")
		for _, t := range totals {
			fmt.Printf("  %-22s %3d quizzes  ·  %d pontos em %d questões\n",
				catalog.SubjectDisplayName(t.Subject), t.Quizzes, t.TotalScore, t.TotalQuestions)
		}

		affinities, err := learner.AllAffinities(ctx)
		if err != nil {
			return err
		}
		if len(affinities) > 0 {
			fmt.Println("\nAfinidade com mentores:")
			for _, a := range affinities {
				fmt.Printf("  %-22s %d pontos\n", catalog.MentorByID(a.MentorID).Name, a.Points)
			}
		}
		return nil
	},
}
