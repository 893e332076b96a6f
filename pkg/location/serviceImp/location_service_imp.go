package serviceImp

import (
	"encoding/json"
	"fmt"
	"strconv"

	"garden/entities"
	"garden/pkg/location/repository"
	"garden/pkg/location/service"
	plantingRepo "garden/pkg/planting/repository"
)

type locationSvc struct {
	locations repository.LocationRepository
	plantings plantingRepo.PlantingRepository
}

func New(l repository.LocationRepository, p plantingRepo.PlantingRepository) service.LocationService {
	return &locationSvc{locations: l, plantings: p}
}

// canvasLayout is the thin slice of the layout the reconciler reads. Shape
// geometry stays opaque; only the planting references matter here.
type canvasLayout struct {
	Objects []canvasObject `json:"objects"`
}

type canvasObject struct {
	PlantingID any `json:"plantingId"`
}

func (s *locationSvc) SaveCanvas(locationID uint, raw []byte) error {
	var layout canvasLayout
	if err := json.Unmarshal(raw, &layout); err != nil {
		return fmt.Errorf("%w: canvas data is not valid JSON: %v", entities.ErrValidation, err)
	}

	// Persist the blob verbatim before touching positions; the layout the
	// user drew is the source of truth even if reconciliation fails.
	if err := s.locations.SaveCanvasData(locationID, string(raw)); err != nil {
		return err
	}

	referenced := map[uint]bool{}
	for _, obj := range layout.Objects {
		if id, ok := coerceID(obj.PlantingID); ok {
			referenced[id] = true
		}
	}
	return s.plantings.ClearPositionsExcept(locationID, referenced)
}

func (s *locationSvc) Canvas(locationID uint) (map[string]any, error) {
	raw, err := s.locations.CanvasData(locationID)
	if err != nil {
		return nil, err
	}
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(*raw), &out); err != nil {
		return nil, nil
	}
	return out, nil
}

func (s *locationSvc) Delete(id uint) error {
	all, err := s.plantings.ByLocation(id, "")
	if err != nil {
		return err
	}
	for _, p := range all {
		if p.Status == entities.PlantingActive {
			return fmt.Errorf("%w: location %d still has active plantings", entities.ErrValidation, id)
		}
	}
	for _, p := range all {
		if err := s.plantings.Delete(p.ID); err != nil {
			return err
		}
	}
	return s.locations.Delete(id)
}

func (s *locationSvc) PlantingsWithPositions(locationID uint) ([]entities.PlantingDetail, error) {
	return s.plantings.WithPositions(locationID)
}

// coerceID accepts shape references serialized as a JSON number or a
// numeric string; anything else means the shape references no planting.
func coerceID(v any) (uint, bool) {
	switch t := v.(type) {
	case float64:
		if t > 0 && t == float64(uint(t)) {
			return uint(t), true
		}
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil && n > 0 {
			return uint(n), true
		}
	}
	return 0, false
}
