package services

import (
	"context"
	"sync"
	"time"

	"credinta/internal/domain"
)

// fakePostRepo implements domain.PostRepository for tests.
type fakePostRepo struct {
	byID      map[int64]*domain.Post
	nextID    int64
	listErr   error
	createErr error
	updateErr error
	deleteErr error
	searchRes []*domain.Post
	searchTot int
	lastQuery string
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{byID: make(map[int64]*domain.Post), nextID: 1}
}

func (f *fakePostRepo) Create(ctx context.Context, post *domain.Post) error {
	if f.createErr != nil {
		return f.createErr
	}
	post.ID = f.nextID
	f.nextID++
	f.byID[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if p, ok := f.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakePostRepo) Update(ctx context.Context, post *domain.Post) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[post.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[post.ID] = post
	return nil
}

func (f *fakePostRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakePostRepo) List(ctx context.Context, filter domain.PostFilter) ([]*domain.Post, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var posts []*domain.Post
	for _, p := range f.byID {
		if filter.PublishedOnly && !p.IsPublished {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.PostType != "" && p.PostType != filter.PostType {
			continue
		}
		cp := *p
		posts = append(posts, &cp)
	}
	return posts, nil
}

func (f *fakePostRepo) Search(ctx context.Context, query string, params domain.PaginationParams) ([]*domain.Post, int, error) {
	f.lastQuery = query
	return f.searchRes, f.searchTot, nil
}

// fakeParticipantRepo implements domain.EventParticipantRepository with a
// mutex so confirm races can be exercised.
type fakeParticipantRepo struct {
	mu        sync.Mutex
	byID      map[int64]*domain.EventParticipant
	nextID    int64
	createErr error
	deleteErr error
	deleted   []int64
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{byID: make(map[int64]*domain.EventParticipant), nextID: 1}
}

func (f *fakeParticipantRepo) Create(ctx context.Context, p *domain.EventParticipant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeParticipantRepo) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.EventParticipant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.byID {
		if p.EventID == eventID && p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeParticipantRepo) GetByToken(ctx context.Context, token string) (*domain.EventParticipant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.byID {
		if p.ConfirmationToken == token {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeParticipantRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeParticipantRepo) ConfirmByToken(ctx context.Context, token string, now time.Time) (*domain.EventParticipant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.byID {
		if p.ConfirmationToken == token && !p.EmailConfirmed && p.ExpiresAt != nil && p.ExpiresAt.After(now) {
			p.EmailConfirmed = true
			confirmedAt := now
			p.ConfirmedAt = &confirmedAt
			p.UpdatedAt = now
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeParticipantRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.EventParticipant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.EventParticipant
	for _, p := range f.byID {
		if p.EventID == eventID {
			cp := *p
			out = append(out, &cp)
		}
	}
	if out == nil {
		out = []*domain.EventParticipant{}
	}
	return out, nil
}

func (f *fakeParticipantRepo) CountByEventID(ctx context.Context, eventID string) (total, confirmed int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.byID {
		if p.EventID == eventID {
			total++
			if p.EmailConfirmed {
				confirmed++
			}
		}
	}
	return total, confirmed, nil
}

// fakeContactRepo implements domain.ContactRepository for tests.
type fakeContactRepo struct {
	mu         sync.Mutex
	pending    map[string]*domain.ContactConfirmation
	messages   []*domain.ContactMessage
	createErr  error
	deleted    []string
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{pending: make(map[string]*domain.ContactConfirmation)}
}

func (f *fakeContactRepo) CreatePending(ctx context.Context, c *domain.ContactConfirmation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	cp := *c
	f.pending[c.Token] = &cp
	return nil
}

func (f *fakeContactRepo) DeletePending(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pending, token)
	f.deleted = append(f.deleted, token)
	return nil
}

func (f *fakeContactRepo) Confirm(ctx context.Context, token string, now time.Time) (*domain.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pending, ok := f.pending[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(f.pending, token)
	if now.After(pending.ExpiresAt) {
		return nil, domain.ErrExpired
	}
	msg := &domain.ContactMessage{
		ID:        int64(len(f.messages) + 1),
		FirstName: pending.FirstName,
		LastName:  pending.LastName,
		Email:     pending.Email,
		Phone:     pending.Phone,
		TextArea:  pending.Details,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.messages = append(f.messages, msg)
	return msg, nil
}

// fakeEmailService implements domain.EmailService and records every send.
type fakeEmailService struct {
	mu sync.Mutex

	contactConfirmErr error
	contactNoticeErr  error
	partConfirmErr    error
	partNoticeErr     error
	confirmedErr      error

	contactConfirms  []*domain.ContactConfirmEmailData
	contactNotices   []*domain.ContactNoticeEmailData
	partConfirms     []*domain.ParticipationEmailData
	partNotices      []*domain.ParticipationEmailData
	confirmed        []*domain.ParticipationEmailData
	confirmedNotices []*domain.ParticipationEmailData
}

func (f *fakeEmailService) SendContactConfirmation(ctx context.Context, data *domain.ContactConfirmEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.contactConfirmErr != nil {
		return f.contactConfirmErr
	}
	f.contactConfirms = append(f.contactConfirms, data)
	return nil
}

func (f *fakeEmailService) SendContactNotice(ctx context.Context, data *domain.ContactNoticeEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.contactNoticeErr != nil {
		return f.contactNoticeErr
	}
	f.contactNotices = append(f.contactNotices, data)
	return nil
}

func (f *fakeEmailService) SendParticipationConfirmation(ctx context.Context, data *domain.ParticipationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.partConfirmErr != nil {
		return f.partConfirmErr
	}
	f.partConfirms = append(f.partConfirms, data)
	return nil
}

func (f *fakeEmailService) SendParticipationNotice(ctx context.Context, data *domain.ParticipationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.partNoticeErr != nil {
		return f.partNoticeErr
	}
	f.partNotices = append(f.partNotices, data)
	return nil
}

func (f *fakeEmailService) SendParticipationConfirmed(ctx context.Context, data *domain.ParticipationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.confirmedErr != nil {
		return f.confirmedErr
	}
	f.confirmed = append(f.confirmed, data)
	return nil
}

func (f *fakeEmailService) SendParticipationConfirmedNotice(ctx context.Context, data *domain.ParticipationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmedNotices = append(f.confirmedNotices, data)
	return nil
}
