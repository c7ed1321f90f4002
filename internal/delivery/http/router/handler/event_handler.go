package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	deliverycontext "geowatch/internal/delivery/context"
	"geowatch/internal/delivery/http/response"
	"geowatch/internal/domain/entity"
	"geowatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler ingests game-state events from the scanner feed and
// hands them to the dispatch usecase, one pass per event.
type EventHandler struct {
	dispatcher usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewEventHandler creates a new EventHandler instance
func NewEventHandler(dispatcher usecase.DispatchUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// eventEnvelope is one feed entry: a type tag plus the category-specific
// payload.
type eventEnvelope struct {
	Type    string          `json:"type"`
	Message json.RawMessage `json:"message"`
}

type coordinateDTO struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

func (d coordinateDTO) toEntity() entity.Coordinate {
	return entity.Coordinate{Latitude: d.Latitude, Longitude: d.Longitude}
}

type creatureDTO struct {
	SpeciesID uint32 `json:"species_id" validate:"required"`
	Form      string `json:"form"`
	coordinateDTO
	IVPercent float64 `json:"iv_percent" validate:"gte=0,lte=100"`
	Level     uint    `json:"level" validate:"required"`
	Gender    string  `json:"gender" validate:"omitempty,oneof=m f"`
	Attack    uint    `json:"attack" validate:"lte=15"`
	Defense   uint    `json:"defense" validate:"lte=15"`
	Stamina   uint    `json:"stamina" validate:"lte=15"`
}

type rankingDTO struct {
	League     string  `json:"league" validate:"required,oneof=great ultra"`
	CP         int     `json:"cp" validate:"required,gt=0"`
	Rank       int     `json:"rank"`
	Percentile float64 `json:"percentile" validate:"gte=0,lte=1"`
}

type rankedBattleDTO struct {
	SpeciesID uint32 `json:"species_id" validate:"required"`
	Form      string `json:"form"`
	coordinateDTO
	Rankings []rankingDTO `json:"rankings" validate:"required,min=1,dive"`
}

type raidDTO struct {
	BossID  uint32 `json:"boss_id" validate:"required"`
	Form    string `json:"form"`
	GymName string `json:"gym_name" validate:"required"`
	coordinateDTO
	LimitedAccess bool `json:"limited_access"`
}

type questDTO struct {
	PokestopID    string `json:"pokestop_id" validate:"required"`
	PokestopName  string `json:"pokestop_name"`
	RewardKeyword string `json:"reward_keyword" validate:"required"`
	coordinateDTO
}

type invasionDTO struct {
	PokestopName string `json:"pokestop_name"`
	GruntType    uint32 `json:"grunt_type" validate:"required"`
	coordinateDTO
}

type lureDTO struct {
	PokestopName string `json:"pokestop_name"`
	LureType     string `json:"lure_type" validate:"required,oneof=normal glacial mossy magnetic rainy"`
	coordinateDTO
}

type gymDTO struct {
	GymName    string `json:"gym_name" validate:"required"`
	OccupantID uint32 `json:"occupant_id" validate:"required"`
	Form       string `json:"form"`
	coordinateDTO
	LimitedAccess bool `json:"limited_access"`
}

// ingestResult summarizes one feed batch.
type ingestResult struct {
	Accepted int      `json:"accepted"`
	Rejected int      `json:"rejected"`
	Errors   []string `json:"errors,omitempty"`
}

// HandleEvents accepts a batch (JSON array) or a single envelope and
// runs one dispatch pass per entry. Entry failures are reported in the
// result body; they never fail the whole batch.
func (h *EventHandler) HandleEvents(c echo.Context) error {
	body, err := readEnvelopes(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FEED_BODY", err.Error())
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	result := ingestResult{}
	for i, env := range body {
		if err := h.processEnvelope(c, env); err != nil {
			result.Rejected++
			result.Errors = append(result.Errors, err.Error())
			logger.Warn("feed entry rejected",
				slog.Int("index", i),
				slog.String("type", env.Type),
				slog.String("error", err.Error()),
			)

			continue
		}
		result.Accepted++
	}

	return response.Success(c, http.StatusOK, result, "")
}

func readEnvelopes(c echo.Context) ([]eventEnvelope, error) {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, errors.Wrap(err, "read feed body")
	}

	trimmed := trimLeftSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty feed body")
	}

	if trimmed[0] == '[' {
		var batch []eventEnvelope
		if err := json.Unmarshal(raw, &batch); err != nil {
			return nil, errors.Wrap(err, "decode feed batch")
		}

		return batch, nil
	}

	var single eventEnvelope
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, errors.Wrap(err, "decode feed entry")
	}

	return []eventEnvelope{single}, nil
}

func trimLeftSpace(raw []byte) []byte {
	for len(raw) > 0 {
		switch raw[0] {
		case ' ', '\t', '\n', '\r':
			raw = raw[1:]
		default:
			return raw
		}
	}

	return raw
}

func (h *EventHandler) processEnvelope(c echo.Context, env eventEnvelope) error {
	if env.Type == "" || len(env.Message) == 0 {
		return errors.New("envelope missing type or message")
	}

	ctx := c.Request().Context()

	switch entity.Category(env.Type) {
	case entity.CategoryCreature:
		var dto creatureDTO
		if err := decode(c, env.Message, &dto); err != nil {
			return err
		}

		return h.dispatcher.ProcessCreature(ctx, &entity.CreatureSighting{
			SpeciesID:  entity.SpeciesID(dto.SpeciesID),
			Form:       dto.Form,
			Coordinate: dto.toEntity(),
			IVPercent:  dto.IVPercent,
			Level:      dto.Level,
			Gender:     dto.Gender,
			Attack:     dto.Attack,
			Defense:    dto.Defense,
			Stamina:    dto.Stamina,
		})

	case entity.CategoryRankedBattle:
		var dto rankedBattleDTO
		if err := decode(c, env.Message, &dto); err != nil {
			return err
		}

		rankings := make([]entity.LeagueRanking, 0, len(dto.Rankings))
		for _, r := range dto.Rankings {
			rankings = append(rankings, entity.LeagueRanking{
				League:     entity.League(r.League),
				CP:         r.CP,
				Rank:       r.Rank,
				Percentile: r.Percentile,
			})
		}

		return h.dispatcher.ProcessRankedBattle(ctx, &entity.RankedBattleCandidate{
			SpeciesID:  entity.SpeciesID(dto.SpeciesID),
			Form:       dto.Form,
			Coordinate: dto.toEntity(),
			Rankings:   rankings,
		})

	case entity.CategoryRaid:
		var dto raidDTO
		if err := decode(c, env.Message, &dto); err != nil {
			return err
		}

		return h.dispatcher.ProcessRaid(ctx, &entity.RaidEvent{
			BossID:        entity.SpeciesID(dto.BossID),
			Form:          dto.Form,
			GymName:       dto.GymName,
			Coordinate:    dto.toEntity(),
			LimitedAccess: dto.LimitedAccess,
		})

	case entity.CategoryQuest:
		var dto questDTO
		if err := decode(c, env.Message, &dto); err != nil {
			return err
		}

		return h.dispatcher.ProcessQuest(ctx, &entity.QuestEvent{
			PokestopID:    dto.PokestopID,
			PokestopName:  dto.PokestopName,
			RewardKeyword: dto.RewardKeyword,
			Coordinate:    dto.toEntity(),
		})

	case entity.CategoryInvasion:
		var dto invasionDTO
		if err := decode(c, env.Message, &dto); err != nil {
			return err
		}

		return h.dispatcher.ProcessInvasion(ctx, &entity.InvasionEvent{
			PokestopName: dto.PokestopName,
			GruntType:    entity.GruntType(dto.GruntType),
			Coordinate:   dto.toEntity(),
		})

	case entity.CategoryLure:
		var dto lureDTO
		if err := decode(c, env.Message, &dto); err != nil {
			return err
		}

		return h.dispatcher.ProcessLure(ctx, &entity.LureEvent{
			PokestopName: dto.PokestopName,
			LureType:     entity.LureType(dto.LureType),
			Coordinate:   dto.toEntity(),
		})

	case entity.CategoryGym:
		var dto gymDTO
		if err := decode(c, env.Message, &dto); err != nil {
			return err
		}

		return h.dispatcher.ProcessGym(ctx, &entity.GymStateEvent{
			GymName:       dto.GymName,
			OccupantID:    entity.SpeciesID(dto.OccupantID),
			Form:          dto.Form,
			Coordinate:    dto.toEntity(),
			LimitedAccess: dto.LimitedAccess,
		})

	default:
		return errors.Errorf("unknown event type %q", env.Type)
	}
}

func decode(c echo.Context, raw json.RawMessage, dto any) error {
	if err := json.Unmarshal(raw, dto); err != nil {
		return errors.Wrap(err, "decode event message")
	}

	return errors.WithStack(c.Validate(dto))
}
