package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"credinta/internal/domain"
	"credinta/internal/lifecycle"

	"github.com/stretchr/testify/require"
)

var postCols = []string{
	"id", "title", "content", "category", "post_type", "event_type", "start_date",
	"end_date", "duration", "is_active", "is_published", "cloudinary_ids",
	"gallery_flag", "gallery_image_ids", "url", "read_button", "created_at", "updated_at",
}

func addPostRow(rows *sqlmock.Rows, id int64, title string, created time.Time) *sqlmock.Rows {
	return rows.AddRow(id, title, "conținut", "project", "TABARA", "single-day",
		created, nil, nil, true, true, []byte(`["img-1"]`), false, []byte(`[]`),
		nil, true, created, created)
}

func TestPostRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM posts`).
					WithArgs(int64(7)).
					WillReturnRows(addPostRow(sqlmock.NewRows(postCols), 7, "Tabăra", created))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM posts`).
					WithArgs(int64(7)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewPostRepository(db)
			post, err := repo.GetByID(ctx, 7)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
				require.Equal(t, "Tabăra", post.Title)
				require.Equal(t, lifecycle.EventSingleDay, post.EventType)
				require.Equal(t, []string{"img-1"}, post.CloudinaryIDs)
				require.Equal(t, []string{}, post.GalleryIDs)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO posts`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	repo := NewPostRepository(db)
	post := &domain.Post{
		Title:     "Titlu",
		Content:   "Conținut",
		Category:  domain.CategoryNews,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), post))
	require.Equal(t, int64(11), post.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_UpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE posts`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostRepository(db)
	err = repo.Update(context.Background(), &domain.Post{
		ID:       99,
		Title:    "t",
		Content:  "c",
		Category: domain.CategoryNews,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM posts`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM posts`).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewPostRepository(db)
	require.NoError(t, repo.Delete(context.Background(), 7))
	require.ErrorIs(t, repo.Delete(context.Background(), 8), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(postCols)
	addPostRow(rows, 1, "Primul", created)
	addPostRow(rows, 2, "Al doilea", created.Add(time.Hour))
	mock.ExpectQuery(`FROM posts`).
		WithArgs("project").
		WillReturnRows(rows)

	repo := NewPostRepository(db)
	posts, err := repo.List(context.Background(), domain.PostFilter{
		PublishedOnly: true,
		Category:      domain.CategoryProject,
	})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "Primul", posts[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Search(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT COUNT`).
		WithArgs("%tabara%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM posts`).
		WithArgs("%tabara%", 10, 0).
		WillReturnRows(addPostRow(sqlmock.NewRows(postCols), 1, "Tabăra", created))

	repo := NewPostRepository(db)
	posts, total, err := repo.Search(context.Background(), "tabara", domain.PaginationParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, posts, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
