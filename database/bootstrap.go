// database/bootstrap.go
package database

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"garden/entities"
)

// OpenSQLite opens (or creates) the database and brings the schema up to
// date. AutoMigrate is idempotent, so re-running on an existing file is safe.
func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Crop{},
		&entities.Location{},
		&entities.Planting{},
		&entities.Harvest{},
		&entities.DiaryEntry{},
		&entities.Task{},
		&entities.DiaryRelation{},
		&entities.TaskRelation{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// RunMigrations applies every .sql file under dir in filename-sort order,
// each committed on its own. Files that fail because the schema change is
// already in place ("already exists", duplicate column) are skipped; any
// other failure is logged and the remaining files still run, so one bad
// migration never blocks startup of already-applied ones.
func RunMigrations(db *gorm.DB, dir string) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[db] migrations dir %s: %v", dir, err)
		}
		return
	}

	var files []string
	for _, e := range ents {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Printf("[db] migration %s: %v", name, err)
			continue
		}
		if err := applyScript(db, string(raw)); err != nil {
			if alreadyApplied(err) {
				continue
			}
			log.Printf("[db] migration warning for %s: %v", name, err)
			continue
		}
		log.Printf("[db] migration applied: %s", name)
	}
}

func applyScript(db *gorm.DB, script string) error {
	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func alreadyApplied(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate column")
}
