package services

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"

	"github.com/GuilhermeMacedo01/Heuristic-Construct-For-Mapping-Floads/internal/domain"
)

// PlanCacheKey fingerprints a dataset together with every knob that changes the
// outcome of a seeded run. Worker count and time limit are excluded: they do not
// change a completed result.
func PlanCacheKey(items []domain.Item, cfg Config, equipmentUnitCost float64) string {
	h := sha256.New()

	writeFloat(h, cfg.Budget)
	writeFloat(h, cfg.Alpha)
	writeUint(h, uint64(cfg.MaxIterations))
	h.Write([]byte(cfg.Strategy))
	writeUint(h, cfg.Seed)
	writeUint(h, uint64(cfg.TwoSwapMaxRounds))
	writeFloat(h, equipmentUnitCost)

	for _, it := range items {
		writeUint(h, uint64(it.ItemID))
		writeFloat(h, it.Cost)
		writeFloat(h, it.Criticality)
		writeFloat(h, it.ImpactArea)
		writeUint(h, uint64(it.Population))
		h.Write([]byte(it.Neighborhood))
		h.Write([]byte{0})
	}

	return "plan:" + hex.EncodeToString(h.Sum(nil))
}

func writeFloat(h hash.Hash, f float64) { writeUint(h, math.Float64bits(f)) }

func writeUint(h hash.Hash, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
}
