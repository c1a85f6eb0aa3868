package postgres

import "time"

type leagueTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type leagueInsertModel struct {
	Name   string `db:"name"`
	Active bool   `db:"active"`
}
