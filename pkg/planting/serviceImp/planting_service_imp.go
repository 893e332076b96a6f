package serviceImp

import (
	"fmt"
	"strconv"

	"garden/entities"
	cropRepo "garden/pkg/crop/repository"
	locRepo "garden/pkg/location/repository"
	"garden/pkg/planting/repository"
	"garden/pkg/planting/service"
)

type plantingSvc struct {
	plantings repository.PlantingRepository
	crops     cropRepo.CropRepository
	locations locRepo.LocationRepository
}

func New(p repository.PlantingRepository, c cropRepo.CropRepository, l locRepo.LocationRepository) service.PlantingService {
	return &plantingSvc{plantings: p, crops: c, locations: l}
}

func (s *plantingSvc) Plant(in service.PlantInput) (uint, error) {
	locationID, err := parseID("location_id", in.LocationID)
	if err != nil {
		return 0, err
	}
	cropID, err := parseID("crop_id", in.CropID)
	if err != nil {
		return 0, err
	}
	qty, err := parseOptionalInt("quantity", in.Quantity)
	if err != nil {
		return 0, err
	}

	// Dangling foreign ids are a validation failure, not a storage one.
	if _, err := s.locations.FindByID(locationID); err != nil {
		return 0, fmt.Errorf("%w: location %d does not exist", entities.ErrValidation, locationID)
	}
	if _, err := s.crops.FindByID(cropID); err != nil {
		return 0, fmt.Errorf("%w: crop %d does not exist", entities.ErrValidation, cropID)
	}

	p := &entities.Planting{
		LocationID:  locationID,
		CropID:      cropID,
		PlantedDate: optStr(in.PlantedDate),
		Quantity:    qty,
		Notes:       optStr(in.Notes),
	}
	if err := s.plantings.Plant(p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *plantingSvc) Get(id uint) (*entities.PlantingDetail, error) {
	return s.plantings.FindByID(id)
}

func (s *plantingSvc) Update(id uint, in service.UpdateInput) error {
	cur, err := s.plantings.FindByID(id)
	if err != nil {
		return err
	}
	qty, err := parseOptionalInt("quantity", in.Quantity)
	if err != nil {
		return err
	}
	status := in.Status
	if status == "" {
		status = entities.PlantingActive
	}
	if status != entities.PlantingActive && status != entities.PlantingHarvested && status != entities.PlantingRemoved {
		return fmt.Errorf("%w: unknown planting status %q", entities.ErrValidation, status)
	}

	p := cur.Planting
	p.PlantedDate = optStr(in.PlantedDate)
	p.Quantity = qty
	p.Notes = optStr(in.Notes)
	p.Status = status
	return s.plantings.Update(&p)
}

func (s *plantingSvc) MarkHarvested(id uint) error { return s.plantings.Harvest(id) }
func (s *plantingSvc) Remove(id uint) error        { return s.plantings.Remove(id) }
func (s *plantingSvc) Delete(id uint) error        { return s.plantings.Delete(id) }

func (s *plantingSvc) ActiveForLocation(locationID uint) ([]entities.PlantingDetail, error) {
	return s.plantings.ByLocation(locationID, entities.PlantingActive)
}

func (s *plantingSvc) ActiveForCrop(cropID uint) ([]entities.PlantingDetail, error) {
	return s.plantings.ByCrop(cropID, entities.PlantingActive)
}

func (s *plantingSvc) AllActive() ([]entities.PlantingDetail, error) {
	return s.plantings.AllActive()
}

func (s *plantingSvc) CountActive() (int64, error) { return s.plantings.CountActive() }

func (s *plantingSvc) UpdatePosition(id uint, x, y float64) error {
	return s.plantings.UpdatePosition(id, x, y)
}

func parseID(field, raw string) (uint, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", entities.ErrValidation, field)
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not numeric", entities.ErrValidation, field, raw)
	}
	return uint(n), nil
}

func parseOptionalInt(field, raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q is not numeric", entities.ErrValidation, field, raw)
	}
	return &n, nil
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
