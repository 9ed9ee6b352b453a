package http

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/anuragdev/moviebuff/internal/gateway"
	"github.com/anuragdev/moviebuff/pkg/model"
	"github.com/anuragdev/moviebuff/pkg/testutil"
)

func newTestGateway(t *testing.T, token string) (*Gateway, *testutil.Backend) {
	t.Helper()
	backend := testutil.NewBackend(model.Movie{ID: "m1", Title: "Arrival"})
	backend.AddUser("u1", "alice")
	backend.AddUser("u2", "bob")
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)
	return New(srv.URL, token, srv.Client(), zap.NewNop()), backend
}

func TestCreateListUpdateDeleteRoundTrip(t *testing.T) {
	g, _ := newTestGateway(t, "u1")
	ctx := context.Background()

	created, err := g.Create(ctx, model.CreateReviewRequest{
		UserID: "u1", MovieID: "m1", Rating: 7, ReviewText: "Great",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.User.Username)

	reviews, err := g.List(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 7, reviews[0].Rating)

	updated, err := g.Update(ctx, created.ID, model.UpdateReviewRequest{Rating: 8, ReviewText: "Even better"})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Rating)

	reviews, err = g.List(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, reviews, 1, "updating must not create a second entry")
	assert.Equal(t, 8, reviews[0].Rating)

	require.NoError(t, g.Delete(ctx, created.ID))
	reviews, err = g.List(ctx, "m1")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestCreateDuplicateReview(t *testing.T) {
	g, _ := newTestGateway(t, "u1")
	ctx := context.Background()

	_, err := g.Create(ctx, model.CreateReviewRequest{UserID: "u1", MovieID: "m1", Rating: 7, ReviewText: "Great"})
	require.NoError(t, err)

	_, err = g.Create(ctx, model.CreateReviewRequest{UserID: "u1", MovieID: "m1", Rating: 9, ReviewText: "Changed my mind"})
	assert.ErrorIs(t, err, gateway.ErrDuplicateReview)

	reviews, err := g.List(ctx, "m1")
	require.NoError(t, err)
	assert.Len(t, reviews, 1, "the duplicate attempt must not create a record")
}

func TestValidationRunsBeforeNetwork(t *testing.T) {
	// No backend at all: validation failures must never reach the wire.
	g := New("http://127.0.0.1:1", "u1", nil, zap.NewNop())
	ctx := context.Background()

	_, err := g.Create(ctx, model.CreateReviewRequest{UserID: "u1", MovieID: "m1", Rating: 11, ReviewText: "x"})
	assert.ErrorIs(t, err, gateway.ErrInvalidInput)

	_, err = g.Create(ctx, model.CreateReviewRequest{UserID: "u1", MovieID: "m1", Rating: 5, ReviewText: ""})
	assert.ErrorIs(t, err, gateway.ErrInvalidInput)

	_, err = g.Update(ctx, "r1", model.UpdateReviewRequest{Rating: 0, ReviewText: "x"})
	assert.ErrorIs(t, err, gateway.ErrInvalidInput)
}

func TestUpdateForeignReviewNotPermitted(t *testing.T) {
	owner, _ := newTestGateway(t, "u1")
	ctx := context.Background()
	created, err := owner.Create(ctx, model.CreateReviewRequest{UserID: "u1", MovieID: "m1", Rating: 7, ReviewText: "Great"})
	require.NoError(t, err)

	// Same backend, different session.
	intruder := New(owner.baseURL, "u2", owner.client, zap.NewNop())
	_, err = intruder.Update(ctx, created.ID, model.UpdateReviewRequest{Rating: 1, ReviewText: "hijacked"})
	assert.ErrorIs(t, err, gateway.ErrNotPermitted)

	err = intruder.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, gateway.ErrNotPermitted)
}

func TestDeleteMissingReviewIsAnError(t *testing.T) {
	g, _ := newTestGateway(t, "u1")
	err := g.Delete(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestListByUserEmbedsMovie(t *testing.T) {
	g, _ := newTestGateway(t, "u1")
	ctx := context.Background()
	_, err := g.Create(ctx, model.CreateReviewRequest{UserID: "u1", MovieID: "m1", Rating: 7, ReviewText: "Great"})
	require.NoError(t, err)

	reviews, err := g.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.NotNil(t, reviews[0].Movie)
	assert.Equal(t, "Arrival", reviews[0].Movie.Title)
}
