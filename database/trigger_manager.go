package database

import (
	"os"
	"strings"

	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/utils"
)

// ExecuteTriggers installs the guard triggers: billing rows are immutable and
// a checked-out booking can never reopen. sqlite only; on other engines the
// conditional update in the checkout service carries the guarantee.
func ExecuteTriggers(db *gorm.DB) error {
	if db.Dialector.Name() != "sqlite" {
		return nil
	}

	triggerSQL, err := os.ReadFile("database/migrations/triggers.sql")
	if err != nil {
		return err
	}

	// sqlite triggers contain semicolons inside BEGIN...END, so statements
	// are separated on the END; terminator rather than plain semicolons.
	for _, stmt := range strings.Split(string(triggerSQL), "END;") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		stmt += "\nEND;"

		if err := db.Exec(stmt).Error; err != nil {
			utils.ErrorLogger.Printf("Error executing trigger: %v\nStatement: %s", err, stmt)
			continue
		}
	}

	var names []string
	db.Raw(`SELECT name FROM sqlite_master WHERE type = 'trigger'`).Scan(&names)
	for _, name := range names {
		utils.InfoLogger.Printf("Trigger verified: %s", name)
	}

	return nil
}
