package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SavedGame is one game session. Listing and ranking read the scalar
// columns; the full game state lives in data.
type SavedGame struct {
	ent.Schema
}

func (SavedGame) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("UUID assigned on first save"),
		field.String("player_name").
			NotEmpty(),
		field.Int("score").
			Default(0),
		field.Bool("game_over").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_played_at").
			Default(time.Now),
		field.JSON("data", map[string]any{}).
			Comment("Questions, phase statistics and timer state as JSON"),
	}
}

func (SavedGame) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_played_at").
			StorageKey("savedgame_last_played_at"),
		index.Fields("player_name", "score").
			StorageKey("savedgame_player_name_score"),
	}
}
