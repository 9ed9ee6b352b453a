// Package catalog implements the movie discovery query engine: one
// server-side search, a concurrent per-movie rating fan-out, and a
// client-side rating band predicate.
package catalog

//go:generate mockgen -source=controller.go -destination=../../../gen/mock/catalog/catalog.go -package=catalog

import (
	"context"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/anuragdev/moviebuff/internal/auth"
	"github.com/anuragdev/moviebuff/internal/gateway"
	"github.com/anuragdev/moviebuff/pkg/model"
)

const tracerID = "catalog-controller"

type movieGateway interface {
	All(ctx context.Context) ([]model.Movie, error)
	Search(ctx context.Context, query, genre string, band *model.RatingBand) ([]model.Movie, error)
	Delete(ctx context.Context, id string) error
}

type ratingGateway interface {
	GetAggregate(ctx context.Context, movieID string) (*float64, error)
}

// Params are the discovery query parameters. Empty Query matches all
// movies; a nil Band disables rating filtering.
type Params struct {
	Query string
	Genre string
	Band  *model.RatingBand
}

// Controller runs discovery queries. Each run is tagged with a sequence
// number so that a superseded query finishing late can never overwrite a
// newer result.
type Controller struct {
	movies        movieGateway
	ratings       ratingGateway
	limiter       *rate.Limiter
	maxConcurrent int
	logger        *zap.Logger

	seq atomic.Uint64

	mu      sync.Mutex
	applied uint64
	view    []model.EnrichedMovie
}

// New creates a catalog controller. maxConcurrent bounds the rating
// fan-out; limiter paces the individual fetches and may be nil.
func New(movies movieGateway, ratings ratingGateway, maxConcurrent int, limiter *rate.Limiter, logger *zap.Logger) *Controller {
	if maxConcurrent <= 0 {
		maxConcurrent = 8
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Controller{
		movies:        movies,
		ratings:       ratings,
		limiter:       limiter,
		maxConcurrent: maxConcurrent,
		logger:        logger,
	}
}

// Query produces the filtered, enriched movie list for the given
// parameters and, if this run is still the newest, installs it as the
// current view. Server order is preserved; no re-sort by rating.
func (c *Controller) Query(ctx context.Context, p Params) ([]model.EnrichedMovie, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Controller/Query")
	defer span.End()

	run := c.seq.Add(1)

	movies, err := c.movies.Search(ctx, p.Query, p.Genre, p.Band)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		c.install(run, []model.EnrichedMovie{})
		return []model.EnrichedMovie{}, nil
	}

	enriched, err := c.enrich(ctx, movies)
	if err != nil {
		return nil, err
	}

	if p.Band != nil {
		filtered := make([]model.EnrichedMovie, 0, len(enriched))
		for _, m := range enriched {
			if p.Band.Matches(m.Rating) {
				filtered = append(filtered, m)
			}
		}
		enriched = filtered
	}

	c.install(run, enriched)
	return enriched, nil
}

// enrich joins each movie with its aggregate rating. Fetches run
// concurrently, bounded by maxConcurrent and paced by the limiter.
// A failed fetch degrades that movie to unrated instead of aborting the
// others; only context cancellation stops the fan-out.
func (c *Controller) enrich(ctx context.Context, movies []model.Movie) ([]model.EnrichedMovie, error) {
	enriched := make([]model.EnrichedMovie, len(movies))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrent)
	for i, m := range movies {
		i, m := i, m
		g.Go(func() error {
			if err := c.limiter.Wait(ctx); err != nil {
				return err
			}
			rating, err := c.ratings.GetAggregate(ctx, m.ID)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.logger.Warn("rating fetch failed, showing movie as unrated",
					zap.String("movieId", m.ID), zap.Error(err))
				rating = nil
			}
			enriched[i] = model.EnrichedMovie{Rating: rating, Movie: m}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}

// Movies returns the result of the newest completed query run.
func (c *Controller) Movies() []model.EnrichedMovie {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Genres derives the selectable genre set as the union of genres across
// the full catalog, preserving first-seen order.
func (c *Controller) Genres(ctx context.Context) ([]string, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Controller/Genres")
	defer span.End()

	movies, err := c.movies.All(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	var genres []string
	for _, m := range movies {
		for _, genre := range m.Genres {
			if _, ok := seen[genre]; ok {
				continue
			}
			seen[genre] = struct{}{}
			genres = append(genres, genre)
		}
	}
	return genres, nil
}

// Remove deletes a movie from the catalog. Only administrators may
// remove movies; the check runs locally before the round trip and the
// backend enforces it again.
func (c *Controller) Remove(ctx context.Context, user auth.Identity, movieID string) error {
	if !user.IsAdmin() {
		return gateway.ErrNotPermitted
	}
	return c.movies.Delete(ctx, movieID)
}

func (c *Controller) install(run uint64, view []model.EnrichedMovie) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if run <= c.applied {
		return
	}
	c.applied = run
	c.view = view
}
