package export

import (
	"fmt"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"
)

const parquetGoRoutines = 2

// PlanRow is one selected item of a plan, flattened with its run metadata.
type PlanRow struct {
	RunID          string  `parquet:"name=run_id, type=UTF8"`
	Strategy       string  `parquet:"name=strategy, type=UTF8"`
	Position       int32   `parquet:"name=position, type=INT32"`
	ItemID         int64   `parquet:"name=item_id, type=INT64"`
	Neighborhood   string  `parquet:"name=neighborhood, type=UTF8"`
	Population     int64   `parquet:"name=population, type=INT64"`
	Criticality    float64 `parquet:"name=criticality, type=DOUBLE"`
	ImpactArea     float64 `parquet:"name=impact_area, type=DOUBLE"`
	Cost           float64 `parquet:"name=cost, type=DOUBLE"`
	Priority       float64 `parquet:"name=priority, type=DOUBLE"`
	EquipmentCount int32   `parquet:"name=equipment_count, type=INT32"`
}

func planRows(plan *domain.InvestmentPlan) []PlanRow {
	rows := make([]PlanRow, 0, len(plan.Items))
	for pos, it := range plan.Items {
		rows = append(rows, PlanRow{
			RunID:          plan.RunID,
			Strategy:       plan.Strategy,
			Position:       int32(pos),
			ItemID:         int64(it.ItemID),
			Neighborhood:   it.Neighborhood,
			Population:     int64(it.Population),
			Criticality:    it.Criticality,
			ImpactArea:     it.ImpactArea,
			Cost:           it.Cost,
			Priority:       it.Priority,
			EquipmentCount: int32(it.EquipmentCount),
		})
	}
	return rows
}

// WritePlanParquet writes the plan's selected items to a Parquet file at path.
func WritePlanParquet(path string, plan *domain.InvestmentPlan) (err error) {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("write plan parquet: create %q: %w", path, err)
	}
	defer func() {
		if cerr := fw.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write plan parquet: close %q: %w", path, cerr)
		}
	}()

	pw, err := writer.NewParquetWriter(fw, new(PlanRow), parquetGoRoutines)
	if err != nil {
		return fmt.Errorf("write plan parquet: new writer: %w", err)
	}

	for _, row := range planRows(plan) {
		if err := pw.Write(row); err != nil {
			return fmt.Errorf("write plan parquet: item_id=%d: %w", row.ItemID, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("write plan parquet: write stop: %w", err)
	}
	return nil
}
