package main

import (
	"sort"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gameStore persists game sessions. Lookups of unknown sessions fail with
// gorm.ErrRecordNotFound whatever the backend.
type gameStore interface {
	createGame(game *Game) error
	getGame(id uuid.UUID) (*Game, error)
	getGames() ([]Game, error)
	// updateGame runs fn on the session with exclusive access and saves the
	// result only if fn succeeds.
	updateGame(id uuid.UUID, fn func(game *Game) error) (*Game, error)
	deleteIdle(before time.Time) (int64, error)
	close() error
}

type gormStore struct {
	db *gorm.DB
}

func (s gormStore) createGame(game *Game) error {
	return s.db.Create(game).Error
}

func (s gormStore) getGame(id uuid.UUID) (*Game, error) {
	var game Game
	if err := s.db.First(&game, Game{GameID: id}).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (s gormStore) getGames() ([]Game, error) {
	var games []Game
	if err := s.db.Order("id").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s gormStore) updateGame(id uuid.UUID, fn func(game *Game) error) (*Game, error) {
	var game Game
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&game, Game{GameID: id}).Error; err != nil {
			return err
		}
		if err := fn(&game); err != nil {
			return err
		}
		return tx.Save(&game).Error
	})
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (s gormStore) deleteIdle(before time.Time) (int64, error) {
	result := s.db.Where("updated_at < ?", before).Delete(&Game{})
	return result.RowsAffected, result.Error
}

func (s gormStore) close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type memoryStore struct {
	mu     sync.Mutex
	nextID uint
	games  map[uuid.UUID]Game
}

func newMemoryStore() *memoryStore {
	return &memoryStore{games: make(map[uuid.UUID]Game)}
}

func (s *memoryStore) createGame(game *Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID = s.nextID + 1
	now := time.Now()
	game.ID = s.nextID
	game.CreatedAt = now
	game.UpdatedAt = now
	s.games[game.GameID] = *game
	return nil
}

func (s *memoryStore) getGame(id uuid.UUID) (*Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &game, nil
}

func (s *memoryStore) getGames() ([]Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	games := make([]Game, 0, len(s.games))
	for _, game := range s.games {
		games = append(games, game)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

func (s *memoryStore) updateGame(id uuid.UUID, fn func(game *Game) error) (*Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if err := fn(&game); err != nil {
		return nil, err
	}
	game.UpdatedAt = time.Now()
	s.games[id] = game
	return &game, nil
}

func (s *memoryStore) deleteIdle(before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted int64
	for id, game := range s.games {
		if game.UpdatedAt.Before(before) {
			delete(s.games, id)
			deleted = deleted + 1
		}
	}
	return deleted, nil
}

func (s *memoryStore) close() error {
	return nil
}
