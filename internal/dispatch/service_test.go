package dispatch

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodcart/restorank/internal/models"
)

type fakeRestaurantRepo struct {
	restaurants map[string]*models.Restaurant
}

func (f *fakeRestaurantRepo) BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error {
	return nil
}
func (f *fakeRestaurantRepo) Create(ctx context.Context, restaurant *models.Restaurant) error {
	return nil
}
func (f *fakeRestaurantRepo) GetAll(ctx context.Context) (map[string]*models.Restaurant, error) {
	return f.restaurants, nil
}
func (f *fakeRestaurantRepo) Count(ctx context.Context) (int, error) { return len(f.restaurants), nil }
func (f *fakeRestaurantRepo) DeleteAll(ctx context.Context) error    { return nil }

type fakeMenuItemRepo struct {
	snapshot map[string][]string
}

func (f *fakeMenuItemRepo) BulkCreate(ctx context.Context, items []*models.MenuItem) error {
	return nil
}
func (f *fakeMenuItemRepo) Create(ctx context.Context, item *models.MenuItem) error { return nil }
func (f *fakeMenuItemRepo) AvailabilitySnapshot(ctx context.Context) (map[string][]string, error) {
	return f.snapshot, nil
}
func (f *fakeMenuItemRepo) Count(ctx context.Context) (int, error) { return 0, nil }
func (f *fakeMenuItemRepo) DeleteAll(ctx context.Context) error    { return nil }

type fakeOrderRepo struct {
	orders []*models.Order
}

func (f *fakeOrderRepo) BulkCreate(ctx context.Context, orders []*models.Order) error { return nil }
func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error        { return nil }
func (f *fakeOrderRepo) GetUnprocessed(ctx context.Context) ([]*models.Order, error) {
	return f.orders, nil
}
func (f *fakeOrderRepo) Count(ctx context.Context) (int, error) { return len(f.orders), nil }
func (f *fakeOrderRepo) DeleteAll(ctx context.Context) error    { return nil }

type capturingOutput struct {
	topics   []string
	messages [][]byte
}

func (c *capturingOutput) WriteMessage(topic string, msg []byte) error {
	c.topics = append(c.topics, topic)
	c.messages = append(c.messages, msg)
	return nil
}

func serviceFixture() (*Service, *stubResolver, *fakeOrderRepo) {
	resolver, restaurants := rankingFixture()
	orderRepo := &fakeOrderRepo{}
	service := NewService(
		&fakeRestaurantRepo{restaurants: restaurants},
		&fakeMenuItemRepo{snapshot: map[string][]string{
			"pizza": {"r-near", "r-mid", "r-far"},
			"cola":  {"r-near", "r-far"},
			"sushi": {},
		}},
		orderRepo,
		resolver,
	)
	return service, resolver, orderRepo
}

func TestAssignRanksEachOrderIndependently(t *testing.T) {
	service, resolver, orderRepo := serviceFixture()
	resolver.failing = map[string]error{"bad address": assert.AnError}

	orderRepo.orders = []*models.Order{
		{
			ID: "o-ok", Address: "customer",
			Items: []models.OrderItem{{ProductID: "pizza", Quantity: 2, Price: 12.5}},
		},
		{
			ID: "o-unresolvable", Address: "bad address",
			Items: []models.OrderItem{{ProductID: "pizza", Quantity: 1, Price: 12.5}},
		},
		{
			ID: "o-empty", Address: "customer",
		},
		{
			ID: "o-no-candidates", Address: "customer",
			Items: []models.OrderItem{{ProductID: "sushi", Quantity: 1, Price: 20}},
		},
	}

	assignments, err := service.AssignAll(context.Background())
	require.NoError(t, err)
	require.Len(t, assignments, 4)

	ok := assignments[0]
	require.NoError(t, ok.Err)
	assert.Equal(t, 25.0, ok.TotalPrice)
	require.Len(t, ok.Ranked, 3)
	assert.Equal(t, "r-near", ok.Ranked[0].RestaurantID)

	unresolvable := assignments[1]
	assert.ErrorIs(t, unresolvable.Err, assert.AnError)
	assert.Empty(t, unresolvable.Ranked)

	empty := assignments[2]
	assert.ErrorIs(t, empty.Err, ErrEmptyOrder)

	// No common stocking restaurant is a reportable outcome, not a failure.
	noCandidates := assignments[3]
	require.NoError(t, noCandidates.Err)
	assert.Empty(t, noCandidates.Ranked)
}

func TestAssignUsesIntersectionAcrossProducts(t *testing.T) {
	service, _, _ := serviceFixture()

	orders := []*models.Order{{
		ID: "o1", Address: "customer",
		Items: []models.OrderItem{
			{ProductID: "pizza", Quantity: 1, Price: 10},
			{ProductID: "cola", Quantity: 1, Price: 2},
		},
	}}

	assignments, err := service.Assign(context.Background(), orders)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	require.NoError(t, assignments[0].Err)

	ids := make([]string, 0, len(assignments[0].Ranked))
	for _, r := range assignments[0].Ranked {
		ids = append(ids, r.RestaurantID)
	}
	// r-mid stocks pizza but not cola.
	assert.Equal(t, []string{"r-near", "r-far"}, ids)
}

func TestAssignPublishesRankedEvents(t *testing.T) {
	service, _, orderRepo := serviceFixture()
	sink := &capturingOutput{}
	service = service.WithOutput(sink, "order_ranked")

	orderRepo.orders = []*models.Order{
		{
			ID: "o1", Address: "customer",
			Items: []models.OrderItem{{ProductID: "pizza", Quantity: 1, Price: 10}},
		},
		{ID: "o-empty", Address: "customer"}, // fails, must not publish
	}

	_, err := service.AssignAll(context.Background())
	require.NoError(t, err)

	require.Len(t, sink.messages, 1)
	assert.Equal(t, []string{"order_ranked"}, sink.topics)

	var event struct {
		Order struct {
			ID string `json:"id"`
		} `json:"order"`
		Ranked []RankedRestaurant `json:"ranked_restaurants"`
	}
	require.NoError(t, json.Unmarshal(sink.messages[0], &event))
	assert.Equal(t, "o1", event.Order.ID)
	assert.Len(t, event.Ranked, 3)
}
