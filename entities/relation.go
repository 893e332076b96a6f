package entities

// Relation types. Each row populates exactly the foreign key column that
// matches its type; rows are only ever built through pkg/relation, which is
// the single place that invariant lives.
const (
	RelationCrop     = "crop"
	RelationLocation = "location"
	RelationPlanting = "location_crop"
	RelationHarvest  = "harvest"
)

// DiaryRelation links a diary entry to one target record.
type DiaryRelation struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	DiaryID      uint   `gorm:"index" json:"diary_id"`
	RelationType string `json:"relation_type"` // crop|location|location_crop|harvest
	CropID       *uint  `json:"crop_id"`
	LocationID   *uint  `json:"location_id"`
	PlantingID   *uint  `gorm:"column:location_crop_id" json:"location_crop_id"`
	HarvestID    *uint  `json:"harvest_id"`
}

// TaskRelation links a task to one target record. Structurally identical to
// DiaryRelation; kept as a separate table.
type TaskRelation struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	TaskID       uint   `gorm:"index" json:"task_id"`
	RelationType string `json:"relation_type"`
	CropID       *uint  `json:"crop_id"`
	LocationID   *uint  `json:"location_id"`
	PlantingID   *uint  `gorm:"column:location_crop_id" json:"location_crop_id"`
	HarvestID    *uint  `json:"harvest_id"`
}
