// Package review implements the review lifecycle workflow for a single
// movie: create-or-edit-or-delete with duplicate-submission protection
// and transient user feedback.
package review

//go:generate mockgen -source=controller.go -destination=../../../gen/mock/review/review.go -package=review

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/anuragdev/moviebuff/internal/auth"
	"github.com/anuragdev/moviebuff/internal/gateway"
	"github.com/anuragdev/moviebuff/pkg/model"
)

// ErrSubmissionInFlight is returned when a mutation is attempted while
// another one is still outstanding for the same form.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// ErrNotOwner is returned when a user tries to edit a review they do not
// own.
var ErrNotOwner = errors.New("not the review owner")

// NoticeTTL is how long timed notices stay visible before the
// presentation layer should stop rendering them.
const NoticeTTL = 4 * time.Second

// NoticeKind classifies user feedback.
type NoticeKind string

const (
	NoticeSuccess    NoticeKind = "success"
	NoticeGuidance   NoticeKind = "guidance"
	NoticeValidation NoticeKind = "validation"
	NoticeError      NoticeKind = "error"
)

// Notice is a feedback value. A zero ExpiresAt marks a sticky notice
// that stays until replaced; otherwise the presentation layer drops it
// once Expired reports true.
type Notice struct {
	Kind      NoticeKind
	Message   string
	ExpiresAt time.Time
}

// Expired reports whether a timed notice has run out.
func (n Notice) Expired(now time.Time) bool {
	return !n.ExpiresAt.IsZero() && now.After(n.ExpiresAt)
}

// FormState is the transient draft held by the review form. A non-empty
// EditingReviewID means the form edits that review instead of creating a
// new one.
type FormState struct {
	Rating          int
	Body            string
	EditingReviewID string
}

// Entry is a review annotated with whether the current user may edit or
// delete it.
type Entry struct {
	model.Review
	Owned bool
}

type reviewRepository interface {
	List(ctx context.Context, movieID string) ([]model.Review, error)
	Create(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error)
	Update(ctx context.Context, reviewID string, req model.UpdateReviewRequest) (*model.Review, error)
	Delete(ctx context.Context, reviewID string) error
	ListByUser(ctx context.Context, userID string) ([]model.Review, error)
}

// Controller drives the review workflow for one movie. Only one
// create/update/delete may be in flight at a time.
type Controller struct {
	repo    reviewRepository
	movieID string
	logger  *zap.Logger
	now     func() time.Time

	submitting atomic.Bool

	mu      sync.Mutex
	form    FormState
	reviews []model.Review
	notice  *Notice
}

// New creates a review workflow controller for a movie.
func New(repo reviewRepository, movieID string, logger *zap.Logger) *Controller {
	return &Controller{repo: repo, movieID: movieID, logger: logger, now: time.Now}
}

// Refresh re-fetches the review list from the backend.
func (c *Controller) Refresh(ctx context.Context) error {
	reviews, err := c.repo.List(ctx, c.movieID)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.reviews = reviews
	c.mu.Unlock()
	return nil
}

// Entries returns the current review list with ownership marks for the
// given user. Exactly the user's own reviews are marked editable.
func (c *Controller) Entries(user auth.Identity) []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries := make([]Entry, len(c.reviews))
	for i, r := range c.reviews {
		entries[i] = Entry{Review: r, Owned: r.User.ID == user.UserID}
	}
	return entries
}

// Form returns the current draft.
func (c *Controller) Form() FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Notice returns the current feedback notice, or nil if none is set or
// a timed notice has expired.
func (c *Controller) Notice() *Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.notice == nil || c.notice.Expired(c.now()) {
		return nil
	}
	n := *c.notice
	return &n
}

// SetDraft updates the draft rating and body without touching the
// editing state.
func (c *Controller) SetDraft(rating int, body string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Rating = rating
	c.form.Body = body
}

// StartEdit populates the form from an existing review and enters the
// editing state. Only the review's owner may edit it.
func (c *Controller) StartEdit(user auth.Identity, review model.Review) error {
	if review.User.ID != user.UserID {
		return ErrNotOwner
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = FormState{
		Rating:          review.Rating,
		Body:            review.ReviewText,
		EditingReviewID: review.ID,
	}
	return nil
}

// CancelEdit discards the draft and leaves the editing state.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = FormState{}
}

// Submit sends the draft to the backend: an update when editing, a
// create otherwise. Handled outcomes (empty body, duplicate review) set
// a notice and return nil; unexpected failures set a sticky error notice
// and return the error. A second call while one is outstanding returns
// ErrSubmissionInFlight without touching the network.
func (c *Controller) Submit(ctx context.Context, user auth.Identity) error {
	if !c.submitting.CompareAndSwap(false, true) {
		return ErrSubmissionInFlight
	}
	defer c.submitting.Store(false)

	c.mu.Lock()
	form := c.form
	c.mu.Unlock()

	if strings.TrimSpace(form.Body) == "" {
		c.setNotice(NoticeValidation, "Review text cannot be empty.", true)
		return nil
	}

	if form.EditingReviewID != "" {
		return c.submitUpdate(ctx, form)
	}
	return c.submitCreate(ctx, user, form)
}

func (c *Controller) submitCreate(ctx context.Context, user auth.Identity, form FormState) error {
	_, err := c.repo.Create(ctx, model.CreateReviewRequest{
		UserID:     user.UserID,
		MovieID:    c.movieID,
		Rating:     form.Rating,
		ReviewText: form.Body,
	})
	switch {
	case err == nil:
	case errors.Is(err, gateway.ErrDuplicateReview):
		// Keep the draft so no work is lost.
		c.setNotice(NoticeGuidance, "You have already reviewed this movie. Edit or delete your existing review instead.", true)
		return nil
	default:
		c.setNotice(NoticeError, "Could not submit your review. Please try again.", false)
		return err
	}

	c.mu.Lock()
	c.form = FormState{}
	c.mu.Unlock()
	return c.finishMutation(ctx, "Review submitted.")
}

func (c *Controller) submitUpdate(ctx context.Context, form FormState) error {
	_, err := c.repo.Update(ctx, form.EditingReviewID, model.UpdateReviewRequest{
		Rating:     form.Rating,
		ReviewText: form.Body,
	})
	if err != nil {
		c.setNotice(NoticeError, "Could not update your review. Please try again.", false)
		return err
	}

	c.mu.Lock()
	c.form = FormState{}
	c.mu.Unlock()
	return c.finishMutation(ctx, "Review updated.")
}

// Delete removes a review and reconciles the local list. Deleting the
// review currently being edited also clears the draft. A NotFound from
// the backend means the local view was stale, so the list is re-fetched
// before the error is surfaced.
func (c *Controller) Delete(ctx context.Context, reviewID string) error {
	if !c.submitting.CompareAndSwap(false, true) {
		return ErrSubmissionInFlight
	}
	defer c.submitting.Store(false)

	if err := c.repo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			if refreshErr := c.Refresh(ctx); refreshErr != nil {
				c.logger.Warn("reconciling refresh failed", zap.Error(refreshErr))
			}
		}
		c.setNotice(NoticeError, "Could not delete the review. Please try again.", false)
		return err
	}

	c.mu.Lock()
	if c.form.EditingReviewID == reviewID {
		c.form = FormState{}
	}
	c.mu.Unlock()
	return c.finishMutation(ctx, "Review deleted.")
}

func (c *Controller) finishMutation(ctx context.Context, message string) error {
	if err := c.Refresh(ctx); err != nil {
		c.setNotice(NoticeError, "Saved, but the review list could not be reloaded.", false)
		return err
	}
	c.setNotice(NoticeSuccess, message, true)
	return nil
}

func (c *Controller) setNotice(kind NoticeKind, message string, timed bool) {
	n := Notice{Kind: kind, Message: message}
	if timed {
		n.ExpiresAt = c.now().Add(NoticeTTL)
	}
	c.mu.Lock()
	c.notice = &n
	c.mu.Unlock()
}

// MyReviews lists every review the user has authored, each embedding the
// reviewed movie. Used by the profile view.
func (c *Controller) MyReviews(ctx context.Context, user auth.Identity) ([]model.Review, error) {
	return c.repo.ListByUser(ctx, user.UserID)
}
