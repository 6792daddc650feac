package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

// Result file columns. The first five match the dataset header.
var PlanHeader = []string{
	"ID", "Bairro", "População", "Criticidade", "Impacto (m2)", "Custo (R$ mil)", "Qtd_Bueiros", "Prioridade",
}

// WritePlanCSV writes one row per selected item. An empty plan yields only the header.
func WritePlanCSV(w io.Writer, plan *domain.InvestmentPlan) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(PlanHeader); err != nil {
		return fmt.Errorf("write plan csv: header: %w", err)
	}
	for _, it := range plan.Items {
		rec := []string{
			strconv.Itoa(it.ItemID),
			it.Neighborhood,
			strconv.Itoa(it.Population),
			strconv.FormatFloat(it.Criticality, 'f', -1, 64),
			strconv.FormatFloat(it.ImpactArea, 'f', -1, 64),
			strconv.FormatFloat(it.Cost, 'f', -1, 64),
			strconv.Itoa(it.EquipmentCount),
			strconv.FormatFloat(it.Priority, 'f', 6, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write plan csv: item_id=%d: %w", it.ItemID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write plan csv: flush: %w", err)
	}
	return nil
}

// WritePlanCSVFile creates or truncates path and writes the plan to it.
func WritePlanCSVFile(path string, plan *domain.InvestmentPlan) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write plan csv: create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write plan csv: close %q: %w", path, cerr)
		}
	}()

	return WritePlanCSV(f, plan)
}
