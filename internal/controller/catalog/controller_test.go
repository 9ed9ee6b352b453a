package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mockcatalog "github.com/anuragdev/moviebuff/gen/mock/catalog"
	"github.com/anuragdev/moviebuff/internal/auth"
	"github.com/anuragdev/moviebuff/internal/gateway"
	"github.com/anuragdev/moviebuff/pkg/model"
)

func ratingPtr(v float64) *float64 { return &v }

func mustBand(t *testing.T, s string) *model.RatingBand {
	t.Helper()
	band, err := model.ParseRatingBand(s)
	require.NoError(t, err)
	return band
}

var (
	movieA = model.Movie{ID: "a", Title: "Arrival", Genres: []string{"Sci-Fi", "Drama"}}
	movieB = model.Movie{ID: "b", Title: "Beau Travail", Genres: []string{"Drama"}}
	movieC = model.Movie{ID: "c", Title: "Coherence", Genres: []string{"Sci-Fi"}}
)

func newTestController(t *testing.T) (*Controller, *mockcatalog.MockmovieGateway, *mockcatalog.MockratingGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	movies := mockcatalog.NewMockmovieGateway(ctrl)
	ratings := mockcatalog.NewMockratingGateway(ctrl)
	return New(movies, ratings, 4, nil, zap.NewNop()), movies, ratings
}

func TestQueryBandFiltering(t *testing.T) {
	// Catalog: A rated 9, B unrated, C rated 6.
	tests := []struct {
		name string
		band string
		want []string
	}{
		{name: "no filter keeps original order", band: "", want: []string{"a", "b", "c"}},
		{name: "high band", band: "8-10", want: []string{"a"}},
		{name: "mid band", band: "5-7.9", want: []string{"c"}},
		{name: "unrated band", band: "unrated", want: []string{"b"}},
		{name: "zero-covering band never matches unrated", band: "0-10", want: []string{"a", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, movies, ratings := newTestController(t)
			band := mustBand(t, tt.band)
			movies.EXPECT().Search(gomock.Any(), "", "", band).
				Return([]model.Movie{movieA, movieB, movieC}, nil)
			ratings.EXPECT().GetAggregate(gomock.Any(), "a").Return(ratingPtr(9), nil)
			ratings.EXPECT().GetAggregate(gomock.Any(), "b").Return(nil, nil)
			ratings.EXPECT().GetAggregate(gomock.Any(), "c").Return(ratingPtr(6), nil)

			got, err := c.Query(context.Background(), Params{Band: band})
			require.NoError(t, err)

			var ids []string
			for _, m := range got {
				ids = append(ids, m.Movie.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestQueryNoCandidatesSkipsFanOut(t *testing.T) {
	c, movies, _ := newTestController(t)
	movies.EXPECT().Search(gomock.Any(), "nope", "", nil).Return(nil, nil)

	got, err := c.Query(context.Background(), Params{Query: "nope"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQueryRatingFetchFailureDegradesToUnrated(t *testing.T) {
	c, movies, ratings := newTestController(t)
	movies.EXPECT().Search(gomock.Any(), "", "", nil).
		Return([]model.Movie{movieA, movieB}, nil)
	ratings.EXPECT().GetAggregate(gomock.Any(), "a").Return(nil, errors.New("connection reset"))
	ratings.EXPECT().GetAggregate(gomock.Any(), "b").Return(ratingPtr(7.5), nil)

	got, err := c.Query(context.Background(), Params{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].Rating)
	require.NotNil(t, got[1].Rating)
	assert.Equal(t, 7.5, *got[1].Rating)
}

func TestQuerySearchFailurePropagates(t *testing.T) {
	c, movies, _ := newTestController(t)
	movies.EXPECT().Search(gomock.Any(), "", "", nil).Return(nil, errors.New("backend down"))

	_, err := c.Query(context.Background(), Params{})
	assert.Error(t, err)
}

func TestQueryDeterministicAcrossRuns(t *testing.T) {
	c, movies, ratings := newTestController(t)
	movies.EXPECT().Search(gomock.Any(), "co", "Sci-Fi", nil).
		Return([]model.Movie{movieA, movieC}, nil).Times(2)
	ratings.EXPECT().GetAggregate(gomock.Any(), "a").Return(ratingPtr(9), nil).Times(2)
	ratings.EXPECT().GetAggregate(gomock.Any(), "c").Return(ratingPtr(6), nil).Times(2)

	first, err := c.Query(context.Background(), Params{Query: "co", Genre: "Sci-Fi"})
	require.NoError(t, err)
	second, err := c.Query(context.Background(), Params{Query: "co", Genre: "Sci-Fi"})
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("query runs differ (-first +second):\n%s", diff)
	}
}

func TestStaleRunNeverOverwritesNewerResult(t *testing.T) {
	c, movies, ratings := newTestController(t)

	oldStarted := make(chan struct{})
	oldRelease := make(chan struct{})
	movies.EXPECT().Search(gomock.Any(), "old", "", nil).
		DoAndReturn(func(context.Context, string, string, *model.RatingBand) ([]model.Movie, error) {
			close(oldStarted)
			<-oldRelease
			return []model.Movie{movieA}, nil
		})
	movies.EXPECT().Search(gomock.Any(), "new", "", nil).Return([]model.Movie{movieB}, nil)
	ratings.EXPECT().GetAggregate(gomock.Any(), "a").Return(ratingPtr(9), nil)
	ratings.EXPECT().GetAggregate(gomock.Any(), "b").Return(nil, nil)

	oldDone := make(chan struct{})
	go func() {
		defer close(oldDone)
		_, _ = c.Query(context.Background(), Params{Query: "old"})
	}()
	<-oldStarted

	newer, err := c.Query(context.Background(), Params{Query: "new"})
	require.NoError(t, err)

	close(oldRelease)
	<-oldDone

	if diff := cmp.Diff(newer, c.Movies()); diff != "" {
		t.Errorf("stale run overwrote the newer view (-newer +installed):\n%s", diff)
	}
}

func TestGenresUnionPreservesFirstSeenOrder(t *testing.T) {
	c, movies, _ := newTestController(t)
	movies.EXPECT().All(gomock.Any()).Return([]model.Movie{movieA, movieB, movieC}, nil)

	genres, err := c.Genres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Sci-Fi", "Drama"}, genres)
}

func TestRemoveRequiresAdmin(t *testing.T) {
	c, movies, _ := newTestController(t)

	err := c.Remove(context.Background(), auth.Identity{UserID: "u1", Role: "user"}, "a")
	assert.ErrorIs(t, err, gateway.ErrNotPermitted)

	movies.EXPECT().Delete(gomock.Any(), "a").Return(nil)
	err = c.Remove(context.Background(), auth.Identity{UserID: "u2", Role: auth.RoleAdmin}, "a")
	assert.NoError(t, err)
}
