package handler

import (
	"net/http"
	"strconv"

	"geowatch/internal/delivery/http/response"
	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/repository"
	"geowatch/internal/errors"

	"github.com/labstack/echo/v4"
)

// SubscriberHandler serves the subscriber management surface backing
// the chat-side configuration commands.
type SubscriberHandler struct {
	subscriptionRepo repository.SubscriptionRepository
}

// NewSubscriberHandler creates a new SubscriberHandler instance
func NewSubscriberHandler(subscriptionRepo repository.SubscriptionRepository) *SubscriberHandler {
	return &SubscriberHandler{
		subscriptionRepo: subscriptionRepo,
	}
}

type namedLocationDTO struct {
	Name string `json:"name" validate:"required"`
	coordinateDTO
	RadiusM float64 `json:"radius_m" validate:"gte=0"`
}

type subscriberDTO struct {
	Location  string                      `json:"location"`
	Locations []namedLocationDTO          `json:"locations" validate:"dive"`
	Creatures []entity.CreatureFilter     `json:"creatures"`
	Battles   []entity.RankedBattleFilter `json:"battles"`
	Raids     []entity.RaidFilter         `json:"raids"`
	Quests    []entity.QuestFilter        `json:"quests"`
	Invasions []entity.InvasionFilter     `json:"invasions"`
	Lures     []entity.LureFilter         `json:"lures"`
	Gyms      []entity.GymFilter          `json:"gyms"`
}

func pathIDs(c echo.Context) (guildID, userID uint64, err error) {
	guildID, err = strconv.ParseUint(c.Param("guild_id"), 10, 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "invalid guild id")
	}
	userID, err = strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "invalid user id")
	}

	return guildID, userID, nil
}

// Upsert fully replaces one subscriber's filter configuration.
func (h *SubscriberHandler) Upsert(c echo.Context) error {
	guildID, userID, err := pathIDs(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SUBSCRIBER_KEY", err.Error())
	}

	var dto subscriberDTO
	if err := c.Bind(&dto); err != nil {
		return response.BadRequest(c, "INVALID_SUBSCRIBER_BODY", err.Error())
	}
	if err := c.Validate(&dto); err != nil {
		return response.UnprocessableEntity(c, "INVALID_SUBSCRIBER_BODY", err.Error())
	}

	locations := make([]entity.NamedLocation, 0, len(dto.Locations))
	for _, loc := range dto.Locations {
		locations = append(locations, entity.NamedLocation{
			Name:       loc.Name,
			Coordinate: loc.toEntity(),
			RadiusM:    loc.RadiusM,
		})
	}

	sub := &entity.Subscriber{
		GuildID:   guildID,
		UserID:    userID,
		Location:  dto.Location,
		Locations: locations,
		Creatures: dto.Creatures,
		Battles:   dto.Battles,
		Raids:     dto.Raids,
		Quests:    dto.Quests,
		Invasions: dto.Invasions,
		Lures:     dto.Lures,
		Gyms:      dto.Gyms,
	}

	if err := h.subscriptionRepo.UpsertSubscriber(c.Request().Context(), sub); err != nil {
		return response.InternalServerError(c, "SUBSCRIBER_UPSERT_FAILED", err.Error())
	}

	return response.Success(c, http.StatusOK, sub, "Subscriber saved")
}

// Get returns one subscriber's configuration.
func (h *SubscriberHandler) Get(c echo.Context) error {
	guildID, userID, err := pathIDs(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SUBSCRIBER_KEY", err.Error())
	}

	sub, err := h.subscriptionRepo.FindSubscriber(c.Request().Context(), guildID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriberNotFound) {
			return response.NotFound(c, "SUBSCRIBER_NOT_FOUND", "subscriber not found")
		}

		return response.InternalServerError(c, "SUBSCRIBER_FETCH_FAILED", err.Error())
	}

	return response.Success(c, http.StatusOK, sub, "")
}

// Delete removes one subscriber entirely.
func (h *SubscriberHandler) Delete(c echo.Context) error {
	guildID, userID, err := pathIDs(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_SUBSCRIBER_KEY", err.Error())
	}

	if err := h.subscriptionRepo.DeleteSubscriber(c.Request().Context(), guildID, userID); err != nil {
		if errors.Is(err, repository.ErrSubscriberNotFound) {
			return response.NotFound(c, "SUBSCRIBER_NOT_FOUND", "subscriber not found")
		}

		return response.InternalServerError(c, "SUBSCRIBER_DELETE_FAILED", err.Error())
	}

	return response.Success(c, http.StatusOK, nil, "Subscriber deleted")
}
