package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/league-ingest/internal/domain/match"
)

type matchTableModel struct {
	ID              int64          `db:"id"`
	HomeTeamID      int64          `db:"home_team_id"`
	AwayTeamID      int64          `db:"away_team_id"`
	HomeScore       sql.NullInt64  `db:"home_score"`
	AwayScore       sql.NullInt64  `db:"away_score"`
	MatchDate       time.Time      `db:"match_date"`
	MatchTime       sql.NullString `db:"match_time"`
	Location        sql.NullString `db:"location"`
	SeasonID        int64          `db:"season_id"`
	AgeGroupID      int64          `db:"age_group_id"`
	MatchTypeID     int64          `db:"match_type_id"`
	DivisionID      int64          `db:"division_id"`
	Notes           sql.NullString `db:"notes"`
	Status          string         `db:"status"`
	ExternalMatchID string         `db:"match_id"`
	ExternalRef     sql.NullString `db:"external_ref"`
	Source          string         `db:"source"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type matchInsertModel struct {
	HomeTeamID      int64          `db:"home_team_id"`
	AwayTeamID      int64          `db:"away_team_id"`
	HomeScore       sql.NullInt64  `db:"home_score"`
	AwayScore       sql.NullInt64  `db:"away_score"`
	MatchDate       time.Time      `db:"match_date"`
	MatchTime       sql.NullString `db:"match_time"`
	Location        sql.NullString `db:"location"`
	SeasonID        int64          `db:"season_id"`
	AgeGroupID      int64          `db:"age_group_id"`
	MatchTypeID     int64          `db:"match_type_id"`
	DivisionID      int64          `db:"division_id"`
	Notes           sql.NullString `db:"notes"`
	Status          string         `db:"status"`
	ExternalMatchID string         `db:"match_id"`
	ExternalRef     sql.NullString `db:"external_ref"`
	Source          string         `db:"source"`
}

func matchToInsertModel(item match.Match) matchInsertModel {
	return matchInsertModel{
		HomeTeamID:      item.HomeTeamID,
		AwayTeamID:      item.AwayTeamID,
		HomeScore:       nullInt(item.HomeScore),
		AwayScore:       nullInt(item.AwayScore),
		MatchDate:       item.MatchDate,
		MatchTime:       nullString(item.MatchTime),
		Location:        nullString(item.Location),
		SeasonID:        item.SeasonID,
		AgeGroupID:      item.AgeGroupID,
		MatchTypeID:     item.MatchTypeID,
		DivisionID:      item.DivisionID,
		Notes:           nullString(item.Notes),
		Status:          item.Status,
		ExternalMatchID: item.ExternalMatchID,
		ExternalRef:     nullString(item.ExternalRef),
		Source:          item.Source,
	}
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:              m.ID,
		HomeTeamID:      m.HomeTeamID,
		AwayTeamID:      m.AwayTeamID,
		HomeScore:       nullIntPtr(m.HomeScore),
		AwayScore:       nullIntPtr(m.AwayScore),
		MatchDate:       m.MatchDate,
		MatchTime:       nullStringPtr(m.MatchTime),
		Location:        nullStringPtr(m.Location),
		SeasonID:        m.SeasonID,
		AgeGroupID:      m.AgeGroupID,
		MatchTypeID:     m.MatchTypeID,
		DivisionID:      m.DivisionID,
		Notes:           nullStringPtr(m.Notes),
		Status:          m.Status,
		ExternalMatchID: m.ExternalMatchID,
		ExternalRef:     nullStringPtr(m.ExternalRef),
		Source:          m.Source,
	}
}
