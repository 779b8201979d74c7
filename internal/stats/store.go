package stats

import (
	"context"
	"database/sql"
	"errors"
)

// Store persists Stats in the player_stats table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Get loads a player's stats; unknown players get a fresh record.
func (s *Store) Get(ctx context.Context, player string) (Stats, error) {
	return get(ctx, s.db, player)
}

// Record applies a finished game inside a transaction.
func (s *Store) Record(ctx context.Context, player string, won bool, guesses int) (Stats, error) {
	var out Stats
	err := s.update(ctx, player, func(st *Stats) error {
		if err := st.Record(won, guesses); err != nil {
			return err
		}
		out = *st
		return nil
	})
	return out, err
}

// CompleteLevel applies a level completion inside a transaction.
func (s *Store) CompleteLevel(ctx context.Context, player string, level int) (Stats, bool, error) {
	var (
		out      Stats
		unlocked bool
	)
	err := s.update(ctx, player, func(st *Stats) error {
		var err error
		if unlocked, err = st.CompleteLevel(level); err != nil {
			return err
		}
		out = *st
		return nil
	})
	return out, unlocked, err
}

// update reads, mutates and writes back a player's row within one tx.
func (s *Store) update(ctx context.Context, player string, fn func(*Stats) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	st, err := get(ctx, tx, player)
	if err != nil {
		return err
	}
	if err := fn(&st); err != nil {
		return err
	}
	d := st.GuessDistribution
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO player_stats
			(player, games_played, win_streak, max_streak,
			 dist_1, dist_2, dist_3, dist_4, dist_5, dist_6, unlocked_level)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT(player) DO UPDATE SET
			games_played=excluded.games_played,
			win_streak=excluded.win_streak,
			max_streak=excluded.max_streak,
			dist_1=excluded.dist_1, dist_2=excluded.dist_2, dist_3=excluded.dist_3,
			dist_4=excluded.dist_4, dist_5=excluded.dist_5, dist_6=excluded.dist_6,
			unlocked_level=excluded.unlocked_level,
			updated_at=strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`,
		st.Player, st.GamesPlayed, st.WinStreak, st.MaxStreak,
		d[0], d[1], d[2], d[3], d[4], d[5], st.UnlockedLevel,
	); err != nil {
		return err
	}
	return tx.Commit()
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func get(ctx context.Context, q queryer, player string) (Stats, error) {
	st := New(player)
	d := &st.GuessDistribution
	err := q.QueryRowContext(ctx, `
		SELECT games_played, win_streak, max_streak,
		       dist_1, dist_2, dist_3, dist_4, dist_5, dist_6, unlocked_level
		FROM player_stats WHERE player=?`, player,
	).Scan(&st.GamesPlayed, &st.WinStreak, &st.MaxStreak,
		&d[0], &d[1], &d[2], &d[3], &d[4], &d[5], &st.UnlockedLevel)
	if errors.Is(err, sql.ErrNoRows) {
		return New(player), nil
	}
	if err != nil {
		return Stats{}, err
	}
	return st, nil
}
