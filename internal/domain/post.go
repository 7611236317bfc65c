package domain

import (
	"context"
	"time"

	"credinta/internal/lifecycle"
)

// Post categories. Projects feed the project pages, news feeds the news feed.
const (
	CategoryProject = "project"
	CategoryNews    = "news"
)

// Post is a site post: a club/church project, event, or news entry.
// The lifecycle state (past/ongoing/future) is never stored; it is derived
// on every read so listings stay consistent with "now" without backfills.
// swagger:model Post
type Post struct {
	ID            int64               `json:"id"`
	Title         string              `json:"title"`
	Content       string              `json:"content"`
	Category      string              `json:"category"`
	PostType      string              `json:"post_type"`
	EventType     lifecycle.EventType `json:"event_type,omitempty"`
	StartDate     *time.Time          `json:"start_date,omitempty"`
	EndDate       *time.Time          `json:"end_date,omitempty"`
	Duration      string              `json:"duration,omitempty"`
	IsActive      bool                `json:"is_active"`
	IsPublished   bool                `json:"is_published"`
	CloudinaryIDs []string            `json:"cloudinary_ids"`
	GalleryFlag   bool                `json:"gallery_flag"`
	GalleryIDs    []string            `json:"gallery_image_ids"`
	URL           string              `json:"url,omitempty"`
	ReadButton    bool                `json:"read_button"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// LifecycleItem maps the post's date fields to a classifier item.
func (p *Post) LifecycleItem() lifecycle.Item {
	return lifecycle.Item{
		CreatedAt: p.CreatedAt,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		EventType: p.EventType,
		Duration:  p.Duration,
	}
}

// CategorizedPost is a post annotated with its derived lifecycle fields.
// swagger:model CategorizedPost
type CategorizedPost struct {
	*Post
	ProjectType lifecycle.State `json:"project_type"`
	Status      string          `json:"status"`
	DisplayDate time.Time       `json:"display_date"`
	DurationLbl string          `json:"duration_label"`
}

// PostFilter narrows post listings. Zero values mean "no filter".
type PostFilter struct {
	Category      string
	PostType      string
	PublishedOnly bool
	Limit         int
	Offset        int
}

// PostRepository defines the interface for post storage
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter PostFilter) ([]*Post, error)
	Search(ctx context.Context, query string, params PaginationParams) ([]*Post, int, error)
}

// PostService defines post CRUD and the categorized public listing.
type PostService interface {
	Create(ctx context.Context, post *Post) error
	// GetByID serves the public single-post read: unpublished posts are
	// reported as ErrNotFound.
	GetByID(ctx context.Context, id int64) (*CategorizedPost, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id int64) error
	// ListCategorized classifies every matching post against a single
	// sampled "now", optionally keeps only one lifecycle state, and sorts
	// by display date descending.
	ListCategorized(ctx context.Context, filter PostFilter, state lifecycle.State) ([]*CategorizedPost, error)
	Search(ctx context.Context, query string, params PaginationParams) ([]*Post, int, error)
}
