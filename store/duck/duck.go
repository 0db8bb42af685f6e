// Package duck archives fetched snapshots in DuckDB so the dashboard has a
// supply history and something to show when the registry is unreachable.
package duck

import (
	"database/sql"

	"github.com/pkg/errors"

	nt "carbonboard/entity"
)

type Duck struct {
	db     *sql.DB
	logger nt.Logger
}

// New opens the archive at path, creating tables as needed.  An empty path
// opens an in-memory archive that lives for the session only.
func New(path string, lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open archive at %q", path)
		return
	}

	err = createTables(db)
	if err != nil {
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}
	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Save archives one snapshot with its per-project rows.
func (dk *Duck) Save(snap nt.Snapshot) (err error) {

	tx, err := dk.db.Begin()
	if err != nil {
		err = errors.Wrapf(err, "failed to begin archive tx")
		return
	}
	defer tx.Rollback()

	var snapID int
	err = tx.QueryRow("SELECT COALESCE(MAX(id), 0) + 1 FROM snapshots").Scan(&snapID)
	if err != nil {
		err = errors.Wrapf(err, "failed to allocate snapshot id")
		return
	}

	totals := nt.Total(snap.Projects)
	_, err = tx.Exec(`
		INSERT INTO snapshots (id, fetched_at, project_count, total_supply, total_retired)
		VALUES (?, ?, ?, ?, ?)
	`, snapID, snap.FetchedAt, totals.Count, totals.Supply, totals.Retired)
	if err != nil {
		err = errors.Wrapf(err, "failed to insert snapshot")
		return
	}

	for _, prj := range snap.Projects {
		_, err = tx.Exec(`
			INSERT INTO projects
				(snapshot_id, id, name, location, ptype, registry, methodology, supply, retired, price_usd, vintage)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, snapID, prj.ID, prj.Name, prj.Location, prj.Type, prj.Registry,
			prj.Methodology, prj.Supply, prj.Retired, prj.PriceUSD, prj.Vintage)
		if err != nil {
			err = errors.Wrapf(err, "failed to insert project %s", prj.ID)
			return
		}
	}

	err = tx.Commit()
	err = errors.Wrapf(err, "failed to commit archive tx")
	return
}

// Last returns the most recently archived snapshot; ok is false when the
// archive is empty.
func (dk *Duck) Last() (snap nt.Snapshot, ok bool, err error) {

	var snapID int
	err = dk.db.QueryRow(`
		SELECT id, fetched_at FROM snapshots ORDER BY id DESC LIMIT 1
	`).Scan(&snapID, &snap.FetchedAt)
	if err == sql.ErrNoRows {
		err = nil
		return
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to query last snapshot")
		return
	}

	rows, err := dk.db.Query(`
		SELECT id, name, location, ptype, registry, methodology, supply, retired, price_usd, vintage
		FROM projects WHERE snapshot_id = ? ORDER BY name
	`, snapID)
	if err != nil {
		err = errors.Wrapf(err, "failed to query archived projects")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var prj nt.Project
		err = rows.Scan(&prj.ID, &prj.Name, &prj.Location, &prj.Type, &prj.Registry,
			&prj.Methodology, &prj.Supply, &prj.Retired, &prj.PriceUSD, &prj.Vintage)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan archived project")
			return
		}
		snap.Projects = append(snap.Projects, prj)
	}

	err = rows.Err()
	if err != nil {
		err = errors.Wrapf(err, "error iterating archived projects")
		return
	}

	ok = true
	return
}

// History returns up to limit supply points, oldest first.
func (dk *Duck) History(limit int) (points []nt.SupplyPoint, err error) {

	rows, err := dk.db.Query(`
		SELECT fetched_at, total_supply, total_retired
		FROM (
			SELECT id, fetched_at, total_supply, total_retired
			FROM snapshots ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC
	`, limit)
	if err != nil {
		err = errors.Wrapf(err, "failed to query history")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var point nt.SupplyPoint
		err = rows.Scan(&point.FetchedAt, &point.Supply, &point.Retired)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan history point")
			return
		}
		points = append(points, point)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating history")
	return
}

// unexported

func createTables(db *sql.DB) (err error) {

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY,
			fetched_at TIMESTAMP NOT NULL,
			project_count INTEGER NOT NULL,
			total_supply DOUBLE NOT NULL,
			total_retired DOUBLE NOT NULL
		)
	`)
	if err != nil {
		err = errors.Wrapf(err, "failed to create snapshots table")
		return
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS projects (
			snapshot_id INTEGER NOT NULL,
			id VARCHAR NOT NULL,
			name VARCHAR NOT NULL,
			location VARCHAR,
			ptype VARCHAR,
			registry VARCHAR,
			methodology VARCHAR,
			supply DOUBLE,
			retired DOUBLE,
			price_usd DOUBLE,
			vintage INTEGER
		)
	`)
	err = errors.Wrapf(err, "failed to create projects table")
	return
}
