package serviceImp

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"garden/entities"
	"garden/pkg/calendar/service"
	"garden/pkg/clock"
)

type calendarSvc struct {
	db *gorm.DB
}

func New(db *gorm.DB) service.CalendarService { return &calendarSvc{db} }

func (s *calendarSvc) MonthData(year, month int) (map[string]service.DayBucket, error) {
	start := fmt.Sprintf("%04d-%02d-01", year, month)
	// Day zero of the next month is the last day of this one.
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	end := last.Format(entities.DateLayout)

	result := map[string]service.DayBucket{}
	bucket := func(date string) service.DayBucket {
		if b, ok := result[date]; ok {
			return b
		}
		return service.DayBucket{
			Crops:     []service.CropItem{},
			Locations: []service.LocationItem{},
			Diaries:   []service.DiaryItem{},
			Plantings: []service.PlantingItem{},
			Harvests:  []service.HarvestItem{},
		}
	}

	// Crops and locations are dated by creation day. SQLite's DATE()
	// truncates offset-bearing timestamps in UTC, which shifts early
	// mornings onto the previous day, so derive the day in Go instead.
	var crops []struct {
		service.CropItem
		CreatedAt time.Time
	}
	err := s.db.Raw(`SELECT id, name, variety, created_at
		FROM crops
		ORDER BY created_at`).Scan(&crops).Error
	if err != nil {
		return nil, fmt.Errorf("%w: calendar crops: %v", entities.ErrStorage, err)
	}
	for _, c := range crops {
		date := c.CreatedAt.In(clock.JST).Format(entities.DateLayout)
		if date < start || date > end {
			continue
		}
		b := bucket(date)
		b.Crops = append(b.Crops, c.CropItem)
		result[date] = b
	}

	var locations []struct {
		service.LocationItem
		CreatedAt time.Time
	}
	err = s.db.Raw(`SELECT id, name, created_at
		FROM locations
		ORDER BY created_at`).Scan(&locations).Error
	if err != nil {
		return nil, fmt.Errorf("%w: calendar locations: %v", entities.ErrStorage, err)
	}
	for _, l := range locations {
		date := l.CreatedAt.In(clock.JST).Format(entities.DateLayout)
		if date < start || date > end {
			continue
		}
		b := bucket(date)
		b.Locations = append(b.Locations, l.LocationItem)
		result[date] = b
	}

	// Diary entries are dated by the day they are about.
	var diaries []struct {
		service.DiaryItem
		Date string
	}
	err = s.db.Raw(`SELECT id, title, DATE(entry_date) AS date
		FROM diary_entries
		WHERE DATE(entry_date) BETWEEN ? AND ?
		ORDER BY entry_date`, start, end).Scan(&diaries).Error
	if err != nil {
		return nil, fmt.Errorf("%w: calendar diaries: %v", entities.ErrStorage, err)
	}
	for _, d := range diaries {
		b := bucket(d.Date)
		b.Diaries = append(b.Diaries, d.DiaryItem)
		result[d.Date] = b
	}

	var plantings []struct {
		service.PlantingItem
		Date string
	}
	err = s.db.Raw(`SELECT lc.id, lc.location_id, DATE(lc.planted_date) AS date,
			c.name AS crop_name, c.variety, l.name AS location_name
		FROM plantings lc
		JOIN crops c ON lc.crop_id = c.id
		JOIN locations l ON lc.location_id = l.id
		WHERE DATE(lc.planted_date) BETWEEN ? AND ?
		ORDER BY lc.planted_date`, start, end).Scan(&plantings).Error
	if err != nil {
		return nil, fmt.Errorf("%w: calendar plantings: %v", entities.ErrStorage, err)
	}
	for _, p := range plantings {
		b := bucket(p.Date)
		b.Plantings = append(b.Plantings, p.PlantingItem)
		result[p.Date] = b
	}

	var harvests []struct {
		service.HarvestItem
		Date        string
		PlantedDate *string
	}
	err = s.db.Raw(`SELECT h.id, h.quantity, h.unit, DATE(h.harvest_date) AS date,
			c.name AS crop_name, c.variety, lc.planted_date
		FROM harvests h
		JOIN plantings lc ON h.planting_id = lc.id
		JOIN crops c ON lc.crop_id = c.id
		WHERE DATE(h.harvest_date) BETWEEN ? AND ?
		ORDER BY h.harvest_date`, start, end).Scan(&harvests).Error
	if err != nil {
		return nil, fmt.Errorf("%w: calendar harvests: %v", entities.ErrStorage, err)
	}
	for _, h := range harvests {
		h.HarvestItem.DaysFromPlanting = entities.DaysFromPlanting(h.PlantedDate, h.Date)
		b := bucket(h.Date)
		b.Harvests = append(b.Harvests, h.HarvestItem)
		result[h.Date] = b
	}

	return result, nil
}

func (s *calendarSvc) Weeks(year, month int) [][]*time.Time {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, clock.JST)
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, clock.JST).Day()

	var weeks [][]*time.Time
	week := make([]*time.Time, 0, 7)

	// Leading cells before the 1st; Weekday() is already Sunday-based.
	for i := 0; i < int(first.Weekday()); i++ {
		week = append(week, nil)
	}
	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, clock.JST)
		week = append(week, &d)
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]*time.Time, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, nil)
		}
		weeks = append(weeks, week)
	}
	return weeks
}
