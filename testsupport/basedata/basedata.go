package basedata

import (
	"database/sql"
	"testing"
)

// Fixture identifiers.
const (
	Season2024ID = "6f1c2a4e-8b0d-4c55-9a7e-2d3f4b5c6d7e"
	Season2025ID = "0b7f3c1d-2e4a-4f6b-8c9d-1a2b3c4d5e6f"

	WorldFinals2024ID = "ev-wf-2024"
	StateFinalsTXID   = "ev-sf-tx-2024"
	StateFinalsOKID   = "ev-sf-ok-2024"
	StateFinalsNoneID = "ev-sf-none-2024"
	StateFinalsFLID   = "ev-sf-fl-2024"

	Archive2024ID = "arch-2024"
	Archive2023ID = "arch-2023"
)

const seedSQL = `
INSERT INTO seasons (id, year, name, is_current) VALUES
	('6f1c2a4e-8b0d-4c55-9a7e-2d3f4b5c6d7e', 2024, '2024 Season', 0),
	('0b7f3c1d-2e4a-4f6b-8c9d-1a2b3c4d5e6f', 2025, '2025 Season', 1),
	('season-2023', 2023, '2023 Season', 0);

INSERT INTO profiles (id, first_name, last_name) VALUES
	('p-ann', 'Ann', 'Lee'),
	('p-bob', 'Bob', 'Ray'),
	('p-cid', 'Cid', 'Moe'),
	('p-dee', 'Dee', NULL);

INSERT INTO competition_classes (id, class_name, format) VALUES
	('c-street1', 'Street 1', 'SPL'),
	('c-trunk1', 'Trunk 1', 'SPL'),
	('c-stock', 'Stock', 'SQL');

INSERT INTO events (id, season_id, name, event_type, venue_state, event_date) VALUES
	('ev-wf-2024', '6f1c2a4e-8b0d-4c55-9a7e-2d3f4b5c6d7e', 'World Finals 2024', 'world_finals', 'TN', '2024-10-12'),
	('ev-sf-tx-2024', '6f1c2a4e-8b0d-4c55-9a7e-2d3f4b5c6d7e', 'Texas State Finals', 'state_finals', 'TX', '2024-08-03'),
	('ev-sf-ok-2024', '6f1c2a4e-8b0d-4c55-9a7e-2d3f4b5c6d7e', 'Oklahoma State Finals', 'state_finals', 'OK', '2024-08-10'),
	('ev-sf-none-2024', '6f1c2a4e-8b0d-4c55-9a7e-2d3f4b5c6d7e', 'Online State Finals', 'state_finals', NULL, '2024-08-17'),
	('ev-sf-fl-2024', '6f1c2a4e-8b0d-4c55-9a7e-2d3f4b5c6d7e', 'Florida State Finals', 'state_finals', 'FL', '2024-08-24'),
	('ev-std-2024', '6f1c2a4e-8b0d-4c55-9a7e-2d3f4b5c6d7e', 'Spring Sound Off', 'standard', 'TX', '2024-04-06');

INSERT INTO championship_archives (id, season_id, year, title, world_finals_event_id, published) VALUES
	('arch-2024', '6f1c2a4e-8b0d-4c55-9a7e-2d3f4b5c6d7e', 2024, '2024 World Finals', 'ev-wf-2024', 1),
	('arch-2023', 'season-2023', 2023, '2023 World Finals', NULL, 0);

INSERT INTO competition_results (id, event_id, competitor_id, class_id, format, team_name, state_code, score, placement) VALUES
	('r-wf-3', 'ev-wf-2024', 'p-cid', 'c-street1', 'SPL', NULL, 'OK', 148.1, 2),
	('r-wf-1', 'ev-wf-2024', 'p-ann', 'c-street1', 'SPL', 'Bass Kings', 'TX', 151.2, 1),
	('r-wf-2', 'ev-wf-2024', 'p-bob', 'c-stock', 'SQL', NULL, NULL, 88.0, 1),
	('r-wf-4', 'ev-wf-2024', 'p-dee', NULL, NULL, NULL, NULL, 70.5, 1),
	('r-tx-1', 'ev-sf-tx-2024', 'p-ann', 'c-street1', 'SPL', NULL, 'TX', 140.0, 1),
	('r-tx-2', 'ev-sf-tx-2024', 'p-bob', 'c-street1', 'SPL', 'Loud Crew', 'TX', 140.0, 1),
	('r-tx-3', 'ev-sf-tx-2024', 'p-cid', 'c-street1', 'SPL', NULL, 'TX', 139.0, 2),
	('r-ok-1', 'ev-sf-ok-2024', 'p-cid', 'c-trunk1', 'SPL', NULL, 'OK', 150.0, 1),
	('r-none-1', 'ev-sf-none-2024', 'p-dee', NULL, NULL, NULL, NULL, 99.0, 1),
	('r-std-1', 'ev-std-2024', 'p-bob', 'c-stock', 'SQL', NULL, 'TX', 80.0, 1);
`

// Seed loads the sample championship data: a 2024 season with a world
// finals event, four state finals events and a standard event, a current
// 2025 season with no events, and an unpublished 2023 archive.
func Seed(tb testing.TB, db *sql.DB) {
	tb.Helper()
	if _, err := db.Exec(seedSQL); err != nil {
		tb.Fatalf("seed: %v", err)
	}
}
