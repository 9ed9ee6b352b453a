package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/anuragdev/moviebuff/internal/auth"
	catalogctrl "github.com/anuragdev/moviebuff/internal/controller/catalog"
	reviewctrl "github.com/anuragdev/moviebuff/internal/controller/review"
	moviegateway "github.com/anuragdev/moviebuff/internal/gateway/movie/http"
	ratinggateway "github.com/anuragdev/moviebuff/internal/gateway/rating/http"
	reviewgateway "github.com/anuragdev/moviebuff/internal/gateway/review/http"
	"github.com/anuragdev/moviebuff/pkg/model"
)

func main() {
	var (
		configPath = flag.String("config", "configs/default.yaml", "configuration file")
		search     = flag.String("search", "", "search text")
		genre      = flag.String("genre", "", "genre filter")
		band       = flag.String("rating", "", `rating band, e.g. "8-10" or "unrated"`)
		movieID    = flag.String("movie", "", "list reviews for a movie id")
		mine       = flag.Bool("mine", false, "list your own reviews (requires MOVIEBUFF_TOKEN)")
		genres     = flag.Bool("genres", false, "list available genres")
	)
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	token := os.Getenv("MOVIEBUFF_TOKEN")
	client := &http.Client{Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second}

	var limiter *rate.Limiter
	if cfg.Ratings.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Ratings.RequestsPerSecond), cfg.Ratings.MaxConcurrent)
	}

	movies := moviegateway.New(cfg.API.BaseURL, token, client, logger)
	ratings := ratinggateway.New(cfg.API.BaseURL, client, logger)
	reviews := reviewgateway.New(cfg.API.BaseURL, token, client, logger)
	catalog := catalogctrl.New(movies, ratings, cfg.Ratings.MaxConcurrent, limiter, logger)

	ctx := context.Background()

	switch {
	case *genres:
		all, err := catalog.Genres(ctx)
		if err != nil {
			logger.Fatal("Failed to list genres", zap.Error(err))
		}
		for _, g := range all {
			fmt.Println(g)
		}
	case *movieID != "":
		ctrl := reviewctrl.New(reviews, *movieID, logger)
		if err := ctrl.Refresh(ctx); err != nil {
			logger.Fatal("Failed to list reviews", zap.Error(err))
		}
		user := identityFromToken(token, cfg.Auth.Secret, logger)
		for _, entry := range ctrl.Entries(user) {
			marker := " "
			if entry.Owned {
				marker = "*"
			}
			fmt.Printf("%s %s  %d/10  %q\n", marker, entry.User.Username, entry.Rating, entry.ReviewText)
		}
	case *mine:
		user := identityFromToken(token, cfg.Auth.Secret, logger)
		if user.UserID == "" {
			logger.Fatal("MOVIEBUFF_TOKEN is required for -mine")
		}
		ctrl := reviewctrl.New(reviews, "", logger)
		myReviews, err := ctrl.MyReviews(ctx, user)
		if err != nil {
			logger.Fatal("Failed to list your reviews", zap.Error(err))
		}
		for _, r := range myReviews {
			title := r.MovieID
			if r.Movie != nil {
				title = r.Movie.Title
			}
			fmt.Printf("%s  %d/10  %q  (%s)\n", title, r.Rating, r.ReviewText, r.CreatedAt.Format("2006-01-02"))
		}
	default:
		parsed, err := model.ParseRatingBand(*band)
		if err != nil {
			logger.Fatal("Invalid rating band", zap.Error(err))
		}
		result, err := catalog.Query(ctx, catalogctrl.Params{Query: *search, Genre: *genre, Band: parsed})
		if err != nil {
			logger.Fatal("Query failed", zap.Error(err))
		}
		for _, m := range result {
			rating := "Unrated"
			if m.Rating != nil {
				rating = fmt.Sprintf("%.1f", *m.Rating)
			}
			fmt.Printf("%-40s  %s\n", m.Movie.Title, rating)
		}
	}
}

func identityFromToken(token, secret string, logger *zap.Logger) auth.Identity {
	if token == "" || secret == "" {
		return auth.Identity{}
	}
	user, err := auth.ParseToken(token, []byte(secret))
	if err != nil {
		logger.Warn("Ignoring invalid session token", zap.Error(err))
		return auth.Identity{}
	}
	return user
}
