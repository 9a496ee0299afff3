package db

import (
	"context"
	"sync"

	"github.com/Oppro-net-Development/ManagerX/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SettingsStore abstracts per-guild module settings so handlers can be tested
// against an in-memory store. Getters return (nil, nil) when the guild has
// never saved the module; callers serve the documented defaults.
type SettingsStore interface {
	GetTempVC(ctx context.Context, guildID string) (*models.TempVCSettings, error)
	SetTempVC(ctx context.Context, s models.TempVCSettings) error
	GetWelcome(ctx context.Context, guildID string) (*models.WelcomeSettings, error)
	SetWelcome(ctx context.Context, s models.WelcomeSettings) error
	GetLevel(ctx context.Context, guildID string) (*models.LevelSettings, error)
	SetLevel(ctx context.Context, s models.LevelSettings) error
}

const (
	tempvcCollection  = "tempvc_settings"
	welcomeCollection = "welcome_settings"
	levelCollection   = "level_settings"
)

// MongoSettingsStore stores one document per guild per module, keyed by
// guild_id, upserted on save.
type MongoSettingsStore struct{}

func NewMongoSettingsStore() *MongoSettingsStore {
	return &MongoSettingsStore{}
}

func findOne[T any](ctx context.Context, collection, guildID string) (*T, error) {
	var out T
	err := GetCollection(collection).FindOne(ctx, bson.M{"guild_id": guildID}).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func upsertOne(ctx context.Context, collection, guildID string, doc interface{}) error {
	_, err := GetCollection(collection).UpdateOne(
		ctx,
		bson.M{"guild_id": guildID},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *MongoSettingsStore) GetTempVC(ctx context.Context, guildID string) (*models.TempVCSettings, error) {
	return findOne[models.TempVCSettings](ctx, tempvcCollection, guildID)
}

func (s *MongoSettingsStore) SetTempVC(ctx context.Context, settings models.TempVCSettings) error {
	return upsertOne(ctx, tempvcCollection, settings.GuildID, settings)
}

func (s *MongoSettingsStore) GetWelcome(ctx context.Context, guildID string) (*models.WelcomeSettings, error) {
	return findOne[models.WelcomeSettings](ctx, welcomeCollection, guildID)
}

func (s *MongoSettingsStore) SetWelcome(ctx context.Context, settings models.WelcomeSettings) error {
	return upsertOne(ctx, welcomeCollection, settings.GuildID, settings)
}

func (s *MongoSettingsStore) GetLevel(ctx context.Context, guildID string) (*models.LevelSettings, error) {
	return findOne[models.LevelSettings](ctx, levelCollection, guildID)
}

func (s *MongoSettingsStore) SetLevel(ctx context.Context, settings models.LevelSettings) error {
	return upsertOne(ctx, levelCollection, settings.GuildID, settings)
}

// MemorySettingsStore holds settings in process, used by handler tests.
type MemorySettingsStore struct {
	mu      sync.RWMutex
	tempvc  map[string]models.TempVCSettings
	welcome map[string]models.WelcomeSettings
	level   map[string]models.LevelSettings
}

func NewMemorySettingsStore() *MemorySettingsStore {
	return &MemorySettingsStore{
		tempvc:  make(map[string]models.TempVCSettings),
		welcome: make(map[string]models.WelcomeSettings),
		level:   make(map[string]models.LevelSettings),
	}
}

func (s *MemorySettingsStore) GetTempVC(_ context.Context, guildID string) (*models.TempVCSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.tempvc[guildID]; ok {
		return &v, nil
	}
	return nil, nil
}

func (s *MemorySettingsStore) SetTempVC(_ context.Context, settings models.TempVCSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tempvc[settings.GuildID] = settings
	return nil
}

func (s *MemorySettingsStore) GetWelcome(_ context.Context, guildID string) (*models.WelcomeSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.welcome[guildID]; ok {
		return &v, nil
	}
	return nil, nil
}

func (s *MemorySettingsStore) SetWelcome(_ context.Context, settings models.WelcomeSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.welcome[settings.GuildID] = settings
	return nil
}

func (s *MemorySettingsStore) GetLevel(_ context.Context, guildID string) (*models.LevelSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.level[guildID]; ok {
		return &v, nil
	}
	return nil, nil
}

func (s *MemorySettingsStore) SetLevel(_ context.Context, settings models.LevelSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level[settings.GuildID] = settings
	return nil
}
