package sqlstore

import (
	"strings"

	"gorm.io/gorm"
)

const likeEscapeChar = `\`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching values that contain fragment
// literally. The fragment keeps its case; folding is left to the operator
// returned by containsClause.
func containsPattern(fragment string) string {
	return "%" + likeEscaper.Replace(fragment) + "%"
}

// containsClause returns a case-insensitive "column contains ?" condition for the
// dialect of db. SQLite LIKE folds ASCII letters only and compares other runes
// verbatim; Postgres needs ILIKE.
func containsClause(db *gorm.DB, column string) string {
	operator := "LIKE"
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		operator = "ILIKE"
	}

	return column + " " + operator + " ? ESCAPE ?"
}
