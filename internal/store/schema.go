package store

import (
	"context"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const savedGamesTable = "saved_games"

// Column names of the saved_games table.
const (
	colID           = "id"
	colPlayerName   = "player_name"
	colScore        = "score"
	colGameOver     = "game_over"
	colCreatedAt    = "created_at"
	colLastPlayedAt = "last_played_at"
	colData         = "data"
)

var savedGameColumns = []string{
	colID, colPlayerName, colScore, colGameOver, colCreatedAt, colLastPlayedAt, colData,
}

var (
	savedGamesColumns = []*schema.Column{
		{Name: colID, Type: field.TypeString},
		{Name: colPlayerName, Type: field.TypeString},
		{Name: colScore, Type: field.TypeInt, Default: 0},
		{Name: colGameOver, Type: field.TypeBool, Default: false},
		{Name: colCreatedAt, Type: field.TypeTime},
		{Name: colLastPlayedAt, Type: field.TypeTime},
		{Name: colData, Type: field.TypeJSON},
	}
	savedGamesSchema = &schema.Table{
		Name:       savedGamesTable,
		Columns:    savedGamesColumns,
		PrimaryKey: []*schema.Column{savedGamesColumns[0]},
		Indexes: []*schema.Index{
			{Name: "savedgame_last_played_at", Columns: []*schema.Column{savedGamesColumns[5]}},
			{Name: "savedgame_player_name_score", Columns: []*schema.Column{savedGamesColumns[1], savedGamesColumns[2]}},
		},
	}
	tables = []*schema.Table{savedGamesSchema}
)

// migrate creates or updates the tables owned by the store.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}
