package postgres

import "time"

type divisionTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Level     int       `db:"level"`
	LeagueID  int64     `db:"league_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type divisionInsertModel struct {
	Name     string `db:"name"`
	Level    int    `db:"level"`
	LeagueID int64  `db:"league_id"`
}
