package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// gameDataVersion is bumped when GameData changes incompatibly.
const gameDataVersion = 1

// gameRepo implements GameRepo on top of the ent SQL driver.
type gameRepo struct {
	drv    *entsql.Driver
	logger *slog.Logger
}

func (r *gameRepo) SaveSession(ctx context.Context, game *SavedGame) (string, error) {
	if game.ID == "" {
		game.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if game.CreatedAt.IsZero() {
		game.CreatedAt = now
	}
	if game.LastPlayedAt.IsZero() {
		game.LastPlayedAt = now
	}
	game.Data.Version = gameDataVersion

	data, err := json.Marshal(game.Data)
	if err != nil {
		return "", fmt.Errorf("marshal game data: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(savedGamesTable).
		Columns(savedGameColumns...).
		Values(game.ID, game.PlayerName, game.Score, game.GameOver,
			game.CreatedAt.UTC(), game.LastPlayedAt.UTC(), data).
		OnConflict(
			entsql.ConflictColumns(colID),
			entsql.ResolveWithNewValues(),
		).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return "", fmt.Errorf("save game %s: %w", game.ID, err)
	}
	r.logger.Debug("game saved", "id", game.ID, "player", game.PlayerName, "score", game.Score)
	return game.ID, nil
}

func (r *gameRepo) LoadSession(ctx context.Context, id string) (*SavedGame, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(savedGameColumns...).
		From(entsql.Table(savedGamesTable)).
		Where(entsql.EQ(colID, id)).
		Query()

	games, err := r.query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("load game %s: %w", id, ErrNotFound)
	}
	return games[0], nil
}

func (r *gameRepo) DeleteSession(ctx context.Context, id string) (bool, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(savedGamesTable).
		Where(entsql.EQ(colID, id)).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return false, fmt.Errorf("delete game %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete game %s: %w", id, err)
	}
	return n > 0, nil
}

func (r *gameRepo) ListSessions(ctx context.Context) ([]*SavedGame, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(savedGameColumns...).
		From(entsql.Table(savedGamesTable)).
		OrderBy(entsql.Desc(colLastPlayedAt)).
		Query()

	games, err := r.query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	// Stored timestamps are text; order on the parsed values.
	slices.SortStableFunc(games, func(a, b *SavedGame) int {
		return b.LastPlayedAt.Compare(a.LastPlayedAt)
	})
	return games, nil
}

func (r *gameRepo) DeleteAll(ctx context.Context) (int, error) {
	query, args := entsql.Dialect(dialect.SQLite).Delete(savedGamesTable).Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return 0, fmt.Errorf("delete all games: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete all games: %w", err)
	}
	return int(n), nil
}

func (r *gameRepo) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	games, err := r.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeLeaderboard(games, limit), nil
}

// query runs a select over savedGameColumns and decodes every row.
func (r *gameRepo) query(ctx context.Context, query string, args []any) ([]*SavedGame, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []*SavedGame
	for rows.Next() {
		var (
			g    SavedGame
			data []byte
		)
		if err := rows.Scan(&g.ID, &g.PlayerName, &g.Score, &g.GameOver,
			&g.CreatedAt, &g.LastPlayedAt, &data); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		if err := json.Unmarshal(data, &g.Data); err != nil {
			return nil, fmt.Errorf("unmarshal game data %s: %w", g.ID, err)
		}
		games = append(games, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return games, nil
}
