package journal

const Schema = `
CREATE TABLE IF NOT EXISTS decisions (
	decision_id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	player TEXT NOT NULL,
	strategy TEXT NOT NULL,
	pmin REAL NOT NULL,
	pmax REAL NOT NULL,
	price REAL NOT NULL,
	opponent_price REAL NOT NULL,
	own_profit REAL NOT NULL,
	opponent_profit REAL NOT NULL,
	err TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_decisions_time ON decisions(time);
`
