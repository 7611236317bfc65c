package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"credinta/internal/domain"
	"credinta/internal/lifecycle"
)

type postService struct {
	postRepo   domain.PostRepository
	classifier lifecycle.Classifier
}

// NewPostService creates a PostService with the given repository and classifier.
func NewPostService(postRepo domain.PostRepository, classifier lifecycle.Classifier) domain.PostService {
	return &postService{postRepo: postRepo, classifier: classifier}
}

func (s *postService) Create(ctx context.Context, post *domain.Post) error {
	if err := s.validate(post); err != nil {
		return err
	}
	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now
	if err := s.postRepo.Create(ctx, post); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (s *postService) GetByID(ctx context.Context, id int64) (*domain.CategorizedPost, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Drafts are indistinguishable from missing posts on the public read.
	// Admins reach unpublished posts through the listing and search.
	if !post.IsPublished {
		return nil, domain.ErrNotFound
	}
	return s.categorize(post, time.Now()), nil
}

func (s *postService) Update(ctx context.Context, post *domain.Post) error {
	if err := s.validate(post); err != nil {
		return err
	}
	post.UpdatedAt = time.Now()
	if err := s.postRepo.Update(ctx, post); err != nil {
		return err
	}
	return nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	return s.postRepo.Delete(ctx, id)
}

func (s *postService) ListCategorized(ctx context.Context, filter domain.PostFilter, state lifecycle.State) ([]*domain.CategorizedPost, error) {
	posts, err := s.postRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	// One now-sample for the whole pass, so no item flips categories
	// mid-render.
	now := time.Now()
	result := make([]*domain.CategorizedPost, 0, len(posts))
	for _, post := range posts {
		cp := s.categorize(post, now)
		if state != "" && cp.ProjectType != state {
			continue
		}
		result = append(result, cp)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DisplayDate.After(result[j].DisplayDate)
	})
	return result, nil
}

func (s *postService) Search(ctx context.Context, query string, params domain.PaginationParams) ([]*domain.Post, int, error) {
	return s.postRepo.Search(ctx, query, params)
}

func (s *postService) categorize(post *domain.Post, now time.Time) *domain.CategorizedPost {
	item := post.LifecycleItem()
	c := s.classifier
	c.Now = func() time.Time { return now }
	return &domain.CategorizedPost{
		Post:        post,
		ProjectType: lifecycle.ClassifyAt(item, now),
		Status:      c.StatusLabel(item),
		DisplayDate: lifecycle.SortKey(item),
		DurationLbl: lifecycle.DurationLabel(item),
	}
}

// validate rejects bad payloads at the ingestion boundary, before anything
// reaches storage and later flows into date comparisons.
func (s *postService) validate(post *domain.Post) error {
	if post.Title == "" || post.Content == "" {
		return fmt.Errorf("title and content are required")
	}
	if post.Category != domain.CategoryProject && post.Category != domain.CategoryNews {
		return fmt.Errorf("category must be %q or %q", domain.CategoryProject, domain.CategoryNews)
	}
	switch post.EventType {
	case "", lifecycle.EventSingleDay, lifecycle.EventMultiDay, lifecycle.EventOngoing:
	default:
		return fmt.Errorf("%w: unknown event type %q", domain.ErrInvalidDate, post.EventType)
	}
	if err := lifecycle.Validate(post.LifecycleItem()); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDate, err)
	}
	return nil
}
