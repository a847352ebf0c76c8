// api/util/cache_service.go

package util

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/lotr/api/cache"
	logger "github.com/dev-mohitbeniwal/lotr/api/logging"
	"github.com/dev-mohitbeniwal/lotr/api/model"
)

// CacheService stores rendered list and detail responses in the shared
// cache. A nil result with a nil error means "not cached"; connectivity
// problems are logged and treated as misses so a cache outage never
// breaks a read.
type CacheService struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewCacheService(c cache.Cache, ttl time.Duration) *CacheService {
	return &CacheService{cache: c, ttl: ttl}
}

func characterKey(id int) string {
	return fmt.Sprintf("characters:%d", id)
}

func characterListKey(page, perPage int, searchTerm string) string {
	return fmt.Sprintf("characters:list:page_%d_per_%d_search_%s", page, perPage, searchTerm)
}

func equipmentKey(id int) string {
	return fmt.Sprintf("equipments:%d", id)
}

func equipmentListKey(page, perPage int, searchTerm string) string {
	return fmt.Sprintf("equipments:list:page_%d_per_%d_search_%s", page, perPage, searchTerm)
}

func factionKey(id int) string {
	return fmt.Sprintf("factions:%d", id)
}

func factionListKey(page, perPage int, searchTerm string) string {
	return fmt.Sprintf("factions:list:page_%d_per_%d_search_%s", page, perPage, searchTerm)
}

func (c *CacheService) get(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := c.cache.Get(ctx, key)
	if errors.Is(err, cache.ErrCacheMiss) {
		return false, nil
	}
	if err != nil {
		logger.Warn("Cache read failed, treating as miss", zap.Error(err), zap.String("key", key))
		return false, nil
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		logger.Warn("Dropping undecodable cache entry", zap.String("key", key))
		if delErr := c.cache.Delete(ctx, key); delErr != nil {
			logger.Warn("Failed to drop cache entry", zap.Error(delErr), zap.String("key", key))
		}
		return false, nil
	}
	return true, nil
}

func (c *CacheService) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	if err := c.cache.Set(ctx, key, string(data), c.ttl); err != nil {
		logger.Warn("Cache write failed", zap.Error(err), zap.String("key", key))
		return err
	}
	logger.Debug("Cached response", zap.String("key", key))
	return nil
}

func (c *CacheService) delete(ctx context.Context, key string) {
	if err := c.cache.Delete(ctx, key); err != nil {
		logger.Warn("Cache invalidation failed", zap.Error(err), zap.String("key", key))
	}
}

func (c *CacheService) GetCharacter(ctx context.Context, id int) (*model.Character, error) {
	var character model.Character
	found, err := c.get(ctx, characterKey(id), &character)
	if err != nil || !found {
		return nil, err
	}
	return &character, nil
}

func (c *CacheService) SetCharacter(ctx context.Context, character model.Character) error {
	return c.set(ctx, characterKey(character.ID), character)
}

func (c *CacheService) DeleteCharacter(ctx context.Context, id int) {
	c.delete(ctx, characterKey(id))
}

func (c *CacheService) GetCharacterList(ctx context.Context, page, perPage int, searchTerm string) (*model.CharacterList, error) {
	var list model.CharacterList
	found, err := c.get(ctx, characterListKey(page, perPage, searchTerm), &list)
	if err != nil || !found {
		return nil, err
	}
	return &list, nil
}

func (c *CacheService) SetCharacterList(ctx context.Context, page, perPage int, searchTerm string, list model.CharacterList) error {
	return c.set(ctx, characterListKey(page, perPage, searchTerm), list)
}

func (c *CacheService) GetEquipment(ctx context.Context, id int) (*model.Equipment, error) {
	var equipment model.Equipment
	found, err := c.get(ctx, equipmentKey(id), &equipment)
	if err != nil || !found {
		return nil, err
	}
	return &equipment, nil
}

func (c *CacheService) SetEquipment(ctx context.Context, equipment model.Equipment) error {
	return c.set(ctx, equipmentKey(equipment.ID), equipment)
}

func (c *CacheService) DeleteEquipment(ctx context.Context, id int) {
	c.delete(ctx, equipmentKey(id))
}

func (c *CacheService) GetEquipmentList(ctx context.Context, page, perPage int, searchTerm string) (*model.EquipmentList, error) {
	var list model.EquipmentList
	found, err := c.get(ctx, equipmentListKey(page, perPage, searchTerm), &list)
	if err != nil || !found {
		return nil, err
	}
	return &list, nil
}

func (c *CacheService) SetEquipmentList(ctx context.Context, page, perPage int, searchTerm string, list model.EquipmentList) error {
	return c.set(ctx, equipmentListKey(page, perPage, searchTerm), list)
}

func (c *CacheService) GetFaction(ctx context.Context, id int) (*model.Faction, error) {
	var faction model.Faction
	found, err := c.get(ctx, factionKey(id), &faction)
	if err != nil || !found {
		return nil, err
	}
	return &faction, nil
}

func (c *CacheService) SetFaction(ctx context.Context, faction model.Faction) error {
	return c.set(ctx, factionKey(faction.ID), faction)
}

func (c *CacheService) DeleteFaction(ctx context.Context, id int) {
	c.delete(ctx, factionKey(id))
}

func (c *CacheService) GetFactionList(ctx context.Context, page, perPage int, searchTerm string) (*model.FactionList, error) {
	var list model.FactionList
	found, err := c.get(ctx, factionListKey(page, perPage, searchTerm), &list)
	if err != nil || !found {
		return nil, err
	}
	return &list, nil
}

func (c *CacheService) SetFactionList(ctx context.Context, page, perPage int, searchTerm string, list model.FactionList) error {
	return c.set(ctx, factionListKey(page, perPage, searchTerm), list)
}
