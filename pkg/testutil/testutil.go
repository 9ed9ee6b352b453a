// Package testutil provides an in-memory fake of the movie-review
// backend to be used in tests. It implements the same routes and status
// conventions as the real API, including the single-review-per-user
// rejection and ownership checks on mutations.
package testutil

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/anuragdev/moviebuff/pkg/model"
)

// Backend is an in-memory movie-review API. Test tokens are the bare
// user id sent as a bearer token.
type Backend struct {
	mu      sync.Mutex
	movies  []model.Movie
	reviews map[string]*model.Review // by review id
	users   map[string]string        // user id -> username
}

// NewBackend creates a fake backend seeded with the given movies.
func NewBackend(movies ...model.Movie) *Backend {
	return &Backend{
		movies:  movies,
		reviews: map[string]*model.Review{},
		users:   map[string]string{},
	}
}

// AddUser registers a username for a user id so created reviews embed it.
func (b *Backend) AddUser(id, username string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users[id] = username
}

// Handler returns the backend's HTTP handler.
func (b *Backend) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/movies", b.listMovies).Methods(http.MethodGet)
	r.HandleFunc("/movies/search", b.searchMovies).Methods(http.MethodGet)
	r.HandleFunc("/movies/{movieId}", b.deleteMovie).Methods(http.MethodDelete)
	r.HandleFunc("/reviews", b.createReview).Methods(http.MethodPost)
	r.HandleFunc("/reviews/by-user/{userId}", b.listReviewsByUser).Methods(http.MethodGet)
	r.HandleFunc("/reviews/{movieId}", b.listReviews).Methods(http.MethodGet)
	r.HandleFunc("/reviews/{reviewId}", b.updateReview).Methods(http.MethodPut)
	r.HandleFunc("/reviews/{reviewId}", b.deleteReview).Methods(http.MethodDelete)
	return r
}

func (b *Backend) listMovies(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, b.movies)
}

func (b *Backend) searchMovies(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(r.URL.Query().Get("query"))
	genre := r.URL.Query().Get("genres")

	b.mu.Lock()
	defer b.mu.Unlock()
	matched := []model.Movie{}
	for _, m := range b.movies {
		if query != "" && !strings.Contains(strings.ToLower(m.Title), query) {
			continue
		}
		if genre != "" && !contains(m.Genres, genre) {
			continue
		}
		matched = append(matched, m)
	}
	writeJSON(w, http.StatusOK, matched)
}

func (b *Backend) deleteMovie(w http.ResponseWriter, r *http.Request) {
	if bearerUser(r) == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	id := mux.Vars(r)["movieId"]
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, m := range b.movies {
		if m.ID == id {
			b.movies = append(b.movies[:i], b.movies[i+1:]...)
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (b *Backend) listReviews(w http.ResponseWriter, r *http.Request) {
	movieID := mux.Vars(r)["movieId"]
	b.mu.Lock()
	defer b.mu.Unlock()

	reviews := []model.Review{}
	var sum int
	for _, rv := range b.reviews {
		if rv.MovieID == movieID {
			reviews = append(reviews, *rv)
			sum += rv.Rating
		}
	}
	payload := map[string]any{"reviews": reviews}
	if len(reviews) > 0 {
		payload["averageRating"] = float64(sum) / float64(len(reviews))
	}
	writeJSON(w, http.StatusOK, payload)
}

func (b *Backend) listReviewsByUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	b.mu.Lock()
	defer b.mu.Unlock()

	reviews := []model.Review{}
	for _, rv := range b.reviews {
		if rv.User.ID != userID {
			continue
		}
		out := *rv
		for i := range b.movies {
			if b.movies[i].ID == rv.MovieID {
				movie := b.movies[i]
				out.Movie = &movie
				break
			}
		}
		reviews = append(reviews, out)
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (b *Backend) createReview(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, rv := range b.reviews {
		if rv.User.ID == req.UserID && rv.MovieID == req.MovieID {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"message": "You have already reviewed this movie",
			})
			return
		}
	}
	review := &model.Review{
		ID:         uuid.NewString(),
		MovieID:    req.MovieID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		User:       model.ReviewUser{ID: req.UserID, Username: b.users[req.UserID]},
		CreatedAt:  time.Now().UTC(),
	}
	b.reviews[review.ID] = review
	writeJSON(w, http.StatusCreated, review)
}

func (b *Backend) updateReview(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["reviewId"]
	var req model.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	review, ok := b.reviews[reviewID]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if user := bearerUser(r); user != "" && user != review.User.ID {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	review.Rating = req.Rating
	review.ReviewText = req.ReviewText
	writeJSON(w, http.StatusOK, review)
}

func (b *Backend) deleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := mux.Vars(r)["reviewId"]
	b.mu.Lock()
	defer b.mu.Unlock()

	review, ok := b.reviews[reviewID]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if user := bearerUser(r); user != "" && user != review.User.ID {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	delete(b.reviews, reviewID)
	w.WriteHeader(http.StatusOK)
}

func bearerUser(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return token
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
