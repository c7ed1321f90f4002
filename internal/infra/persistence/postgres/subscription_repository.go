// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"strings"

	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/repository"
	"geowatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// speciesProbe builds a jsonb containment probe matching filter entries
// that list the given species, e.g. [{"species_ids":[25]}].
func speciesProbe(id entity.SpeciesID) string {
	probe, _ := json.Marshal([]map[string][]entity.SpeciesID{
		{"species_ids": {id}},
	})

	return string(probe)
}

func (repo *subscriptionRepository) findWhere(ctx context.Context, query string, args ...any) ([]*entity.Subscriber, error) {
	var rows []*model.SubscriberModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query subscriber shortlist")
	}

	subscribers := make([]*entity.Subscriber, 0, len(rows))
	for _, row := range rows {
		subscribers = append(subscribers, toSubscriberDomain(row))
	}

	return subscribers, nil
}

// FindByCreature shortlists subscribers with a creature entry listing
// the species. Form, stat and location predicates are re-checked by the
// dispatcher.
func (repo *subscriptionRepository) FindByCreature(ctx context.Context, speciesID entity.SpeciesID) ([]*entity.Subscriber, error) {
	return repo.findWhere(ctx, "creatures @> ?", speciesProbe(speciesID))
}

// FindByRankedBattle shortlists subscribers with a ranked-battle entry
// listing the species.
func (repo *subscriptionRepository) FindByRankedBattle(ctx context.Context, speciesID entity.SpeciesID) ([]*entity.Subscriber, error) {
	return repo.findWhere(ctx, "battles @> ?", speciesProbe(speciesID))
}

// FindByRaidBoss shortlists subscribers with a raid entry listing the
// boss species.
func (repo *subscriptionRepository) FindByRaidBoss(ctx context.Context, speciesID entity.SpeciesID) ([]*entity.Subscriber, error) {
	return repo.findWhere(ctx, "raids @> ?", speciesProbe(speciesID))
}

// FindByQuest shortlists every subscriber holding quest entries. The
// keyword containment test is substring-based and cannot be pushed into
// a jsonb operator, so the shortlist over-approximates by design of the
// containment contract.
func (repo *subscriptionRepository) FindByQuest(ctx context.Context, _ string) ([]*entity.Subscriber, error) {
	return repo.findWhere(ctx, "jsonb_array_length(quests) > 0")
}

// FindByInvasion shortlists subscribers whose invasion entries list any
// of the encounter-reward species.
func (repo *subscriptionRepository) FindByInvasion(ctx context.Context, rewards []entity.SpeciesID) ([]*entity.Subscriber, error) {
	if len(rewards) == 0 {
		return []*entity.Subscriber{}, nil
	}

	conds := make([]string, 0, len(rewards))
	args := make([]any, 0, len(rewards))
	for _, id := range rewards {
		conds = append(conds, "invasions @> ?")
		probe, _ := json.Marshal([]map[string][]entity.SpeciesID{
			{"reward_species_ids": {id}},
		})
		args = append(args, string(probe))
	}

	return repo.findWhere(ctx, strings.Join(conds, " OR "), args...)
}

// FindByLure shortlists subscribers with a lure entry of the exact type.
func (repo *subscriptionRepository) FindByLure(ctx context.Context, lureType entity.LureType) ([]*entity.Subscriber, error) {
	probe, _ := json.Marshal([]map[string]entity.LureType{
		{"lure_type": lureType},
	})

	return repo.findWhere(ctx, "lures @> ?", string(probe))
}

// FindByGym shortlists every subscriber holding gym entries. Gym names
// match case-insensitively, which jsonb containment cannot express.
func (repo *subscriptionRepository) FindByGym(ctx context.Context, _ string) ([]*entity.Subscriber, error) {
	return repo.findWhere(ctx, "jsonb_array_length(gyms) > 0")
}

// UpsertSubscriber inserts or fully replaces a subscriber record.
func (repo *subscriptionRepository) UpsertSubscriber(ctx context.Context, sub *entity.Subscriber) error {
	subscriberM := fromSubscriberDomain(sub)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "guild_id"}, {Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(subscriberM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert subscriber")
	}

	return nil
}

// DeleteSubscriber removes a subscriber and all its filter entries.
func (repo *subscriptionRepository) DeleteSubscriber(ctx context.Context, guildID, userID uint64) error {
	result := repo.db.WithContext(ctx).
		Where("guild_id = ? AND user_id = ?", guildID, userID).
		Delete(&model.SubscriberModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscriber")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriberNotFound
	}

	return nil
}

// FindSubscriber retrieves a single subscriber by its composite key.
func (repo *subscriptionRepository) FindSubscriber(ctx context.Context, guildID, userID uint64) (*entity.Subscriber, error) {
	var subscriberM model.SubscriberModel

	if err := repo.db.WithContext(ctx).
		Where("guild_id = ? AND user_id = ?", guildID, userID).
		First(&subscriberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriberNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscriber")
	}

	return toSubscriberDomain(&subscriberM), nil
}

// --- Mapper Functions ---

// toSubscriberDomain converts a GORM SubscriberModel to a domain Subscriber entity.
func toSubscriberDomain(data *model.SubscriberModel) *entity.Subscriber {
	if data == nil {
		return nil
	}

	return &entity.Subscriber{
		GuildID:   data.GuildID,
		UserID:    data.UserID,
		Location:  data.Location,
		Locations: data.Locations.V,
		Creatures: data.Creatures.V,
		Battles:   data.Battles.V,
		Raids:     data.Raids.V,
		Quests:    data.Quests.V,
		Invasions: data.Invasions.V,
		Lures:     data.Lures.V,
		Gyms:      data.Gyms.V,
	}
}

// fromSubscriberDomain converts a domain Subscriber entity to a GORM SubscriberModel.
func fromSubscriberDomain(data *entity.Subscriber) *model.SubscriberModel {
	if data == nil {
		return nil
	}

	return &model.SubscriberModel{
		GuildID:   data.GuildID,
		UserID:    data.UserID,
		Location:  data.Location,
		Locations: model.JSONB[[]entity.NamedLocation]{V: data.Locations},
		Creatures: model.JSONB[[]entity.CreatureFilter]{V: data.Creatures},
		Battles:   model.JSONB[[]entity.RankedBattleFilter]{V: data.Battles},
		Raids:     model.JSONB[[]entity.RaidFilter]{V: data.Raids},
		Quests:    model.JSONB[[]entity.QuestFilter]{V: data.Quests},
		Invasions: model.JSONB[[]entity.InvasionFilter]{V: data.Invasions},
		Lures:     model.JSONB[[]entity.LureFilter]{V: data.Lures},
		Gyms:      model.JSONB[[]entity.GymFilter]{V: data.Gyms},
	}
}
