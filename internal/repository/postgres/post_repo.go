package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"credinta/internal/domain"
	"credinta/internal/lifecycle"
)

type postRepository struct {
	DB *sql.DB
}

// NewPostRepository returns a domain.PostRepository implemented with Postgres.
func NewPostRepository(db *sql.DB) domain.PostRepository {
	return &postRepository{DB: db}
}

const postColumns = `
	id, title, content, category, post_type, event_type, start_date, end_date,
	duration, is_active, is_published, cloudinary_ids, gallery_flag,
	gallery_image_ids, url, read_button, created_at, updated_at
`

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	cloudinaryIDs, galleryIDs, err := marshalImageIDs(post)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO posts (title, content, category, post_type, event_type,
			start_date, end_date, duration, is_active, is_published,
			cloudinary_ids, gallery_flag, gallery_image_ids, url, read_button,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		post.Title, post.Content, post.Category, post.PostType, nullString(string(post.EventType)),
		post.StartDate, post.EndDate, nullString(post.Duration), post.IsActive, post.IsPublished,
		cloudinaryIDs, post.GalleryFlag, galleryIDs, nullString(post.URL), post.ReadButton,
		post.CreatedAt, post.UpdatedAt,
	).Scan(&post.ID)
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	post, err := scanPost(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	cloudinaryIDs, galleryIDs, err := marshalImageIDs(post)
	if err != nil {
		return err
	}
	query := `
		UPDATE posts
		SET title = $2, content = $3, category = $4, post_type = $5,
			event_type = $6, start_date = $7, end_date = $8, duration = $9,
			is_active = $10, is_published = $11, cloudinary_ids = $12,
			gallery_flag = $13, gallery_image_ids = $14, url = $15,
			read_button = $16, updated_at = $17
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, post.Category, post.PostType,
		nullString(string(post.EventType)), post.StartDate, post.EndDate, nullString(post.Duration),
		post.IsActive, post.IsPublished, cloudinaryIDs, post.GalleryFlag, galleryIDs,
		nullString(post.URL), post.ReadButton, post.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postRepository) List(ctx context.Context, filter domain.PostFilter) ([]*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE 1=1`
	args := []any{}
	if filter.PublishedOnly {
		query += ` AND is_published = TRUE`
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	if filter.PostType != "" {
		args = append(args, filter.PostType)
		query += fmt.Sprintf(` AND post_type = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	return posts, nil
}

func (r *postRepository) Search(ctx context.Context, q string, params domain.PaginationParams) ([]*domain.Post, int, error) {
	pattern := "%" + q + "%"

	var total int
	countQuery := `SELECT COUNT(*) FROM posts WHERE title ILIKE $1 OR content ILIKE $1`
	if err := r.DB.QueryRowContext(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + postColumns + `
		FROM posts
		WHERE title ILIKE $1 OR content ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, pattern, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	return posts, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	post := &domain.Post{}
	var eventType, duration, url sql.NullString
	var cloudinaryIDs, galleryIDs []byte
	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &post.Category, &post.PostType,
		&eventType, &post.StartDate, &post.EndDate, &duration, &post.IsActive,
		&post.IsPublished, &cloudinaryIDs, &post.GalleryFlag, &galleryIDs,
		&url, &post.ReadButton, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	post.EventType = lifecycle.EventType(eventType.String)
	post.Duration = duration.String
	post.URL = url.String
	if err := unmarshalIDs(cloudinaryIDs, &post.CloudinaryIDs); err != nil {
		return nil, fmt.Errorf("parse cloudinary_ids: %w", err)
	}
	if err := unmarshalIDs(galleryIDs, &post.GalleryIDs); err != nil {
		return nil, fmt.Errorf("parse gallery_image_ids: %w", err)
	}
	return post, nil
}

func marshalImageIDs(post *domain.Post) (cloudinaryIDs, galleryIDs []byte, err error) {
	cloudinaryIDs, err = json.Marshal(orEmpty(post.CloudinaryIDs))
	if err != nil {
		return nil, nil, fmt.Errorf("marshal cloudinary_ids: %w", err)
	}
	galleryIDs, err = json.Marshal(orEmpty(post.GalleryIDs))
	if err != nil {
		return nil, nil, fmt.Errorf("marshal gallery_image_ids: %w", err)
	}
	return cloudinaryIDs, galleryIDs, nil
}

func unmarshalIDs(raw []byte, dest *[]string) error {
	if len(raw) == 0 {
		*dest = []string{}
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return err
	}
	if *dest == nil {
		*dest = []string{}
	}
	return nil
}

func orEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
