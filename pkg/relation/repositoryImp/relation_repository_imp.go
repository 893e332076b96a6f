package repositoryImp

import (
	"fmt"

	"gorm.io/gorm"

	"garden/entities"
	"garden/pkg/relation"
	"garden/pkg/relation/repository"
)

type relationRepo struct {
	db    *gorm.DB
	owner relation.Owner
}

// New builds an index over one owner table. The owner's table and column
// names come from the fixed relation.Owner values, never from input, so
// interpolating them into SQL is safe.
func New(db *gorm.DB, owner relation.Owner) repository.RelationRepository {
	return &relationRepo{db: db, owner: owner}
}

func (r *relationRepo) Get(ownerID uint) (*relation.Bundle, error) {
	b := &relation.Bundle{
		Crops:     []relation.CropRef{},
		Locations: []relation.LocationRef{},
		Plantings: []relation.PlantingRef{},
		Harvests:  []relation.HarvestRef{},
	}
	t, col := r.owner.Table, r.owner.Column

	err := r.db.Raw(fmt.Sprintf(`SELECT rel.id, rel.crop_id,
			c.name AS crop_name, c.crop_type, c.variety
		FROM %s rel
		JOIN crops c ON rel.crop_id = c.id
		WHERE rel.%s = ? AND rel.relation_type = ?`, t, col),
		ownerID, entities.RelationCrop).Scan(&b.Crops).Error
	if err != nil {
		return nil, fmt.Errorf("%w: crop relations: %v", entities.ErrStorage, err)
	}

	err = r.db.Raw(fmt.Sprintf(`SELECT rel.id, rel.location_id,
			l.name AS location_name, l.location_type
		FROM %s rel
		JOIN locations l ON rel.location_id = l.id
		WHERE rel.%s = ? AND rel.relation_type = ?`, t, col),
		ownerID, entities.RelationLocation).Scan(&b.Locations).Error
	if err != nil {
		return nil, fmt.Errorf("%w: location relations: %v", entities.ErrStorage, err)
	}

	err = r.db.Raw(fmt.Sprintf(`SELECT rel.id, rel.location_crop_id,
			c.name AS crop_name, l.name AS location_name,
			lc.planted_date, lc.status
		FROM %s rel
		JOIN plantings lc ON rel.location_crop_id = lc.id
		JOIN crops c ON lc.crop_id = c.id
		JOIN locations l ON lc.location_id = l.id
		WHERE rel.%s = ? AND rel.relation_type = ?`, t, col),
		ownerID, entities.RelationPlanting).Scan(&b.Plantings).Error
	if err != nil {
		return nil, fmt.Errorf("%w: planting relations: %v", entities.ErrStorage, err)
	}

	err = r.db.Raw(fmt.Sprintf(`SELECT rel.id, rel.harvest_id,
			h.harvest_date, h.quantity, h.unit,
			c.name AS crop_name, l.name AS location_name
		FROM %s rel
		JOIN harvests h ON rel.harvest_id = h.id
		JOIN plantings lc ON h.planting_id = lc.id
		JOIN crops c ON lc.crop_id = c.id
		JOIN locations l ON lc.location_id = l.id
		WHERE rel.%s = ? AND rel.relation_type = ?`, t, col),
		ownerID, entities.RelationHarvest).Scan(&b.Harvests).Error
	if err != nil {
		return nil, fmt.Errorf("%w: harvest relations: %v", entities.ErrStorage, err)
	}

	return b, nil
}

// fkColumn is the single place a relation row's foreign key column is
// chosen, which is what keeps "exactly one column populated" true for every
// row this package writes.
var fkColumn = map[string]string{
	entities.RelationCrop:     "crop_id",
	entities.RelationLocation: "location_id",
	entities.RelationPlanting: "location_crop_id",
	entities.RelationHarvest:  "harvest_id",
}

func (r *relationRepo) Save(ownerID uint, in relation.Input) error {
	categories := []struct {
		relationType string
		ids          relation.IDList
	}{
		{entities.RelationCrop, relation.Dedup(in.CropIDs)},
		{entities.RelationLocation, relation.Dedup(in.LocationIDs)},
		{entities.RelationPlanting, relation.Dedup(in.PlantingIDs)},
		{entities.RelationHarvest, relation.Dedup(in.HarvestIDs)},
	}

	t, col := r.owner.Table, r.owner.Column
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, t, col), ownerID).Error; err != nil {
			return err
		}
		for _, cat := range categories {
			stmt := fmt.Sprintf(`INSERT INTO %s (%s, relation_type, %s) VALUES (?, ?, ?)`,
				t, col, fkColumn[cat.relationType])
			for _, id := range cat.ids {
				if err := tx.Exec(stmt, ownerID, cat.relationType, id).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: save relations: %v", entities.ErrStorage, err)
	}
	return nil
}
