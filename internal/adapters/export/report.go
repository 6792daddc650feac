package export

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

// WriteReport prints the selected items as an aligned table followed by totals.
func WriteReport(w io.Writer, plan *domain.InvestmentPlan) error {
	if plan.Empty() {
		_, err := fmt.Fprintln(w, "No feasible solution found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Neighborhood\tPopulation\tCriticality\tImpact (m2)\tCost (R$ k)\tEquipment\tPriority\t\n")
	for _, it := range plan.Items {
		fmt.Fprintf(tw, "%s\t%d\t%g\t%g\t%g\t%d\t%.2f\t\n",
			it.Neighborhood, it.Population, it.Criticality, it.ImpactArea, it.Cost, it.EquipmentCount, it.Priority)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	_, err := fmt.Fprintf(w,
		"\nTotal equipment to install: %d\nTotal cost: R$ %.2f k\nObjective value: %.2f\nStrategy: %s  alpha=%.2f  budget=%.2f  seed=%d\nIterations: %d  truncated=%t\nElapsed: %s\n",
		plan.TotalEquipment, plan.TotalCost, plan.TotalPriority,
		plan.Strategy, plan.Alpha, plan.Budget, plan.Seed,
		plan.Iterations, plan.Truncated, plan.Elapsed.Round(time.Millisecond),
	)
	return err
}
