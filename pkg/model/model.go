package model

import "time"

// Movie is a catalog record as served by the backend. It is owned by the
// backing store and read-only to this client.
type Movie struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ReleaseDate time.Time `json:"releaseDate"`
	Genres      []string  `json:"genres"`
	TopCast     []string  `json:"topCast"`
	Image       string    `json:"image"`
}

// EnrichedMovie is a movie joined with its current aggregate rating.
// A nil Rating means the movie is unrated.
type EnrichedMovie struct {
	Rating *float64 `json:"rating,omitempty"`
	Movie  Movie    `json:"movie"`
}

// ReviewUser is the author identity embedded in each review.
type ReviewUser struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// Review is a single user's review of a movie. The backend enforces at
// most one review per (user, movie) pair.
type Review struct {
	ID         string     `json:"_id"`
	MovieID    string     `json:"movieId"`
	Rating     int        `json:"rating"`
	ReviewText string     `json:"reviewText"`
	User       ReviewUser `json:"user"`
	// Movie is populated only on by-user listings.
	Movie     *Movie    `json:"movie,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateReviewRequest is the POST /reviews payload.
type CreateReviewRequest struct {
	UserID     string `json:"userId" validate:"required"`
	MovieID    string `json:"movieId" validate:"required"`
	Rating     int    `json:"rating" validate:"required,gte=1,lte=10"`
	ReviewText string `json:"reviewText" validate:"required"`
}

// UpdateReviewRequest is the PUT /reviews/{reviewId} payload.
type UpdateReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,gte=1,lte=10"`
	ReviewText string `json:"reviewText" validate:"required"`
}
