package dto

import "github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"

type PlannedItemResponse struct {
	ItemID         int     `json:"item_id"`
	Neighborhood   string  `json:"neighborhood"`
	Population     int     `json:"population"`
	Criticality    float64 `json:"criticality"`
	ImpactArea     float64 `json:"impact_area"`
	Cost           float64 `json:"cost"`
	Priority       float64 `json:"priority"`
	EquipmentCount int     `json:"equipment_count"`
}

func FromPlannedItem(it domain.PlannedItem) PlannedItemResponse {
	return PlannedItemResponse{
		ItemID:         it.ItemID,
		Neighborhood:   it.Neighborhood,
		Population:     it.Population,
		Criticality:    it.Criticality,
		ImpactArea:     it.ImpactArea,
		Cost:           it.Cost,
		Priority:       it.Priority,
		EquipmentCount: it.EquipmentCount,
	}
}

func (r PlannedItemResponse) ToDomain() domain.PlannedItem {
	return domain.PlannedItem{
		Item: domain.Item{
			ItemID:       r.ItemID,
			Neighborhood: r.Neighborhood,
			Population:   r.Population,
			Criticality:  r.Criticality,
			ImpactArea:   r.ImpactArea,
			Cost:         r.Cost,
			Priority:     r.Priority,
		},
		EquipmentCount: r.EquipmentCount,
	}
}
