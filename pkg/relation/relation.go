// Package relation implements the polymorphic association index that lets
// diary entries and tasks reference any mix of crops, locations, plantings
// and harvests. One implementation serves both owner kinds; the owner table
// is a parameter, not a fork.
package relation

import (
	"encoding/json"
	"fmt"
	"strconv"

	"garden/entities"
)

// IDList accepts both JSON numbers and numeric strings, since HTML forms
// and API clients disagree about which they send.
type IDList []uint

func (l *IDList) UnmarshalJSON(b []byte) error {
	var raw []any
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: id list: %v", entities.ErrValidation, err)
	}
	out := make(IDList, 0, len(raw))
	for _, v := range raw {
		switch t := v.(type) {
		case float64:
			if t < 0 || t != float64(uint(t)) {
				return fmt.Errorf("%w: id %v is not a positive integer", entities.ErrValidation, v)
			}
			out = append(out, uint(t))
		case string:
			n, err := strconv.ParseUint(t, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: id %q is not numeric", entities.ErrValidation, t)
			}
			out = append(out, uint(n))
		default:
			return fmt.Errorf("%w: id %v has unsupported type", entities.ErrValidation, v)
		}
	}
	*l = out
	return nil
}

// Input is the full relation set for one owner. Saving replaces everything:
// an omitted or empty category means "no relations of that kind", never
// "leave unchanged".
type Input struct {
	CropIDs     IDList `json:"crop_ids"`
	LocationIDs IDList `json:"location_ids"`
	PlantingIDs IDList `json:"location_crop_ids"`
	HarvestIDs  IDList `json:"harvest_ids"`
}

// ParseIDs normalizes repeated form values into an IDList. Empty strings
// are skipped; anything non-numeric is a validation failure.
func ParseIDs(raw []string) (IDList, error) {
	out := make(IDList, 0, len(raw))
	for _, v := range raw {
		if v == "" {
			continue
		}
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: id %q is not numeric", entities.ErrValidation, v)
		}
		out = append(out, uint(n))
	}
	return out, nil
}

// Dedup returns the list with duplicates dropped, first occurrence wins.
func Dedup(ids IDList) IDList {
	seen := make(map[uint]bool, len(ids))
	out := make(IDList, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Enriched references returned by Get. Each carries the display fields of
// its target joined in.

type CropRef struct {
	ID       uint    `json:"id"` // relation row id
	CropID   uint    `json:"crop_id"`
	CropName string  `json:"crop_name"`
	CropType string  `json:"crop_type"`
	Variety  *string `json:"variety"`
}

type LocationRef struct {
	ID           uint   `json:"id"`
	LocationID   uint   `json:"location_id"`
	LocationName string `json:"location_name"`
	LocationType string `json:"location_type"`
}

type PlantingRef struct {
	ID           uint    `json:"id"`
	PlantingID   uint    `gorm:"column:location_crop_id" json:"location_crop_id"`
	CropName     string  `json:"crop_name"`
	LocationName string  `json:"location_name"`
	PlantedDate  *string `json:"planted_date"`
	Status       string  `json:"status"`
}

type HarvestRef struct {
	ID           uint     `json:"id"`
	HarvestID    uint     `json:"harvest_id"`
	HarvestDate  string   `json:"harvest_date"`
	Quantity     *float64 `json:"quantity"`
	Unit         *string  `json:"unit"`
	CropName     string   `json:"crop_name"`
	LocationName string   `json:"location_name"`
}

// Bundle is the owner's complete relation set, grouped by category.
type Bundle struct {
	Crops     []CropRef     `json:"crops"`
	Locations []LocationRef `json:"locations"`
	Plantings []PlantingRef `json:"location_crops"`
	Harvests  []HarvestRef  `json:"harvests"`
}

// Owner selects which relation table an index instance works against. Both
// tables are structurally identical; only the name of the table and of the
// owning foreign key differ.
type Owner struct {
	Table  string
	Column string
}

var (
	DiaryOwner = Owner{Table: "diary_relations", Column: "diary_id"}
	TaskOwner  = Owner{Table: "task_relations", Column: "task_id"}
)
