package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-journal/models"
)

const (
	entriesTable = "journal_entries"
	dateKeyDesc  = "entry_date_key DESC"
)

const (
	createEntriesTable = `CREATE TABLE IF NOT EXISTS journal_entries (
		entry_date_key      TEXT PRIMARY KEY NOT NULL,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL,
		title               TEXT NOT NULL DEFAULT '',
		content_html        TEXT NOT NULL DEFAULT '',
		primary_mood        TEXT NOT NULL DEFAULT '',
		secondary_moods_csv TEXT NOT NULL DEFAULT '',
		tags_csv            TEXT NOT NULL DEFAULT ''
	);`

	createPinTable = `CREATE TABLE IF NOT EXISTS pin (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		pin_hash TEXT NOT NULL
	);`
)

var schemaStatements = []string{createEntriesTable, createPinTable}

// entryColumns lists the selected entry columns in [entryRow] order.
var entryColumns = []string{
	"rowid AS record_id",
	"entry_date_key",
	"created_at",
	"updated_at",
	"title",
	"content_html",
	"primary_mood",
	"secondary_moods_csv",
	"tags_csv",
}

const (
	selectEntries = `SELECT
			rowid AS record_id,
			entry_date_key,
			created_at,
			updated_at,
			title,
			content_html,
			primary_mood,
			secondary_moods_csv,
			tags_csv
		FROM journal_entries`

	getEntryRowID = `SELECT rowid FROM journal_entries WHERE entry_date_key = ?;`

	insertEntry = `INSERT INTO journal_entries (
			entry_date_key,
			created_at,
			updated_at,
			title,
			content_html,
			primary_mood,
			secondary_moods_csv,
			tags_csv
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	updateEntry = `UPDATE journal_entries SET
			updated_at          = ?,
			title               = ?,
			content_html        = ?,
			primary_mood        = ?,
			secondary_moods_csv = ?,
			tags_csv            = ?
		WHERE entry_date_key = ?;`

	getEntryByDate = selectEntries + `
		WHERE entry_date_key = ?;`

	getLatestEntries = selectEntries + `
		ORDER BY entry_date_key DESC
		LIMIT ?;`

	// Date keys sort lexicographically in date order.
	getEntriesInRange = selectEntries + `
		WHERE entry_date_key >= ? AND entry_date_key <= ?
		ORDER BY entry_date_key ASC;`

	getAllEntryDateKeys = `SELECT entry_date_key FROM journal_entries ORDER BY entry_date_key ASC;`

	countEntries = `SELECT COUNT(*) FROM journal_entries;`

	deleteEntryByDate = `DELETE FROM journal_entries WHERE entry_date_key = ?;`

	countSecrets = `SELECT COUNT(*) FROM pin;`

	getSecretHash = `SELECT pin_hash FROM pin ORDER BY id DESC LIMIT 1;`

	deleteAllSecrets = `DELETE FROM pin;`

	insertSecret = `INSERT INTO pin (pin_hash) VALUES (?);`
)

// likeEscape is the escape character declared in LIKE clauses.
const likeEscape = `\`

var likeEscaper = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// buildGetPagedQuery selects the window [offset, offset+limit) of all entries,
// newest first.
func buildGetPagedQuery(offset, limit int) (string, []any, error) {
	return psql().
		Select(entryColumns...).
		From(entriesTable).
		OrderBy(dateKeyDesc).
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
}

// buildSearchPagedQuery selects the window [offset, offset+limit) of the
// entries matching filter, newest first.
func buildSearchPagedQuery(filter models.SearchFilter, offset, limit int) (string, []any, error) {
	query := psql().
		Select(entryColumns...).
		From(entriesTable)

	return applySearchFilter(query, filter).
		OrderBy(dateKeyDesc).
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
}

// buildSearchCountQuery counts the entries matching filter.
func buildSearchCountQuery(filter models.SearchFilter) (string, []any, error) {
	query := psql().
		Select("COUNT(*)").
		From(entriesTable)

	return applySearchFilter(query, filter).ToSql()
}

// applySearchFilter adds one AND-ed condition per non-blank criterion:
//   - Search: case-insensitive (ASCII) substring of title or content;
//   - Mood: exact primary mood;
//   - Tag: substring of the comma-joined tag list.
//
// LIKE wildcards in the criteria match literally.
func applySearchFilter(query sq.SelectBuilder, filter models.SearchFilter) sq.SelectBuilder {
	if filter.HasSearch() {
		pattern := containsPattern(filter.Search)
		query = query.Where(sq.Expr(
			`(title LIKE ? ESCAPE '\' OR content_html LIKE ? ESCAPE '\')`,
			pattern, pattern,
		))
	}

	if filter.HasMood() {
		query = query.Where(sq.Eq{"primary_mood": filter.Mood})
	}

	if filter.HasTag() {
		query = query.Where(sq.Expr(`tags_csv LIKE ? ESCAPE '\'`, containsPattern(filter.Tag)))
	}

	return query
}

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
