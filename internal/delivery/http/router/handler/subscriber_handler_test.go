package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"geowatch/internal/delivery/http/validator"
	"geowatch/internal/domain/entity"
	"geowatch/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriberStore struct {
	saved *entity.Subscriber
	sub   *entity.Subscriber
}

func (f *fakeSubscriberStore) FindByCreature(context.Context, entity.SpeciesID) ([]*entity.Subscriber, error) {
	return nil, nil
}

func (f *fakeSubscriberStore) FindByRankedBattle(context.Context, entity.SpeciesID) ([]*entity.Subscriber, error) {
	return nil, nil
}

func (f *fakeSubscriberStore) FindByRaidBoss(context.Context, entity.SpeciesID) ([]*entity.Subscriber, error) {
	return nil, nil
}

func (f *fakeSubscriberStore) FindByQuest(context.Context, string) ([]*entity.Subscriber, error) {
	return nil, nil
}

func (f *fakeSubscriberStore) FindByInvasion(context.Context, []entity.SpeciesID) ([]*entity.Subscriber, error) {
	return nil, nil
}

func (f *fakeSubscriberStore) FindByLure(context.Context, entity.LureType) ([]*entity.Subscriber, error) {
	return nil, nil
}

func (f *fakeSubscriberStore) FindByGym(context.Context, string) ([]*entity.Subscriber, error) {
	return nil, nil
}

func (f *fakeSubscriberStore) UpsertSubscriber(_ context.Context, sub *entity.Subscriber) error {
	f.saved = sub

	return nil
}

func (f *fakeSubscriberStore) DeleteSubscriber(context.Context, uint64, uint64) error {
	if f.sub == nil {
		return repository.ErrSubscriberNotFound
	}
	f.sub = nil

	return nil
}

func (f *fakeSubscriberStore) FindSubscriber(context.Context, uint64, uint64) (*entity.Subscriber, error) {
	if f.sub == nil {
		return nil, repository.ErrSubscriberNotFound
	}

	return f.sub, nil
}

var _ repository.SubscriptionRepository = (*fakeSubscriberStore)(nil)

func subscriberRequest(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, "/guilds/1000/subscribers/42", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("guild_id", "user_id")
	c.SetParamValues("1000", "42")

	return c, rec
}

func TestSubscriberUpsert(t *testing.T) {
	store := &fakeSubscriberStore{}
	h := NewSubscriberHandler(store)

	body := `{
		"location": "home",
		"locations": [{"name": "home", "latitude": 10, "longitude": 20, "radius_m": 500}],
		"creatures": [{"species_ids": [25], "min_iv": 90}]
	}`

	c, rec := subscriberRequest(t, http.MethodPut, body)
	require.NoError(t, h.Upsert(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, store.saved)
	assert.Equal(t, uint64(1000), store.saved.GuildID)
	assert.Equal(t, uint64(42), store.saved.UserID)
	require.Len(t, store.saved.Locations, 1)
	assert.Equal(t, "home", store.saved.Locations[0].Name)
	assert.Equal(t, 500.0, store.saved.Locations[0].RadiusM)
	require.Len(t, store.saved.Creatures, 1)
	assert.Equal(t, entity.SpeciesID(25), store.saved.Creatures[0].SpeciesIDs[0])
}

func TestSubscriberUpsert_InvalidBodyRejected(t *testing.T) {
	store := &fakeSubscriberStore{}
	h := NewSubscriberHandler(store)

	cases := []struct {
		name string
		body string
	}{
		{"unnamed location", `{"locations": [{"latitude": 10, "longitude": 20, "radius_m": 500}]}`},
		{"latitude out of range", `{"locations": [{"name": "home", "latitude": 200, "longitude": 20}]}`},
		{"negative radius", `{"locations": [{"name": "home", "latitude": 10, "longitude": 20, "radius_m": -1}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := subscriberRequest(t, http.MethodPut, tc.body)
			require.NoError(t, h.Upsert(c))

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Nil(t, store.saved)
		})
	}
}

func TestSubscriberGet_NotFound(t *testing.T) {
	h := NewSubscriberHandler(&fakeSubscriberStore{})

	c, rec := subscriberRequest(t, http.MethodGet, "")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubscriberDelete(t *testing.T) {
	store := &fakeSubscriberStore{sub: &entity.Subscriber{GuildID: 1000, UserID: 42}}
	h := NewSubscriberHandler(store)

	c, rec := subscriberRequest(t, http.MethodDelete, "")
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = subscriberRequest(t, http.MethodDelete, "")
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
