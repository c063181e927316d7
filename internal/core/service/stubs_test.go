package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// Shared in-memory stubs for the service tests. Each stub clones on the way
// in and out so tests cannot mutate repository state through returned
// pointers.

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func clonePost(p *domain.Post) *domain.Post {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Tags = append([]domain.Tag(nil), p.Tags...)
	return &clone
}

// authedCtx returns a context carrying a principal for username, the way the
// identity middleware establishes one.
func authedCtx(username, role string) context.Context {
	return domain.WithPrincipal(context.Background(), &domain.Principal{
		Username: username,
		Role:     role,
	})
}

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	copy := cloneUser(u)
	if copy.ID == "" {
		r.seq++
		copy.ID = "u" + strconv.Itoa(r.seq)
	}
	r.users[copy.ID] = copy
	return cloneUser(copy)
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrDuplicateUser
		}
	}
	return r.add(user), nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

type stubPostRepo struct {
	posts map[string]*domain.Post
	seq   int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) add(p *domain.Post) *domain.Post {
	copy := clonePost(p)
	if copy.ID == "" {
		r.seq++
		copy.ID = "p" + strconv.Itoa(r.seq)
	}
	r.posts[copy.ID] = copy
	return clonePost(copy)
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	if p, ok := r.posts[id]; ok {
		return clonePost(p), nil
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) FindAll(_ context.Context) ([]domain.Post, error) {
	out := make([]domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *clonePost(p))
	}
	return out, nil
}

func (r *stubPostRepo) FindByAuthorID(_ context.Context, authorID string) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range r.posts {
		if p.AuthorID == authorID {
			out = append(out, *clonePost(p))
		}
	}
	return out, nil
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	return r.add(post), nil
}

func (r *stubPostRepo) Update(_ context.Context, post *domain.Post) (*domain.Post, error) {
	if _, ok := r.posts[post.ID]; !ok {
		return nil, domain.ErrPostNotFound
	}
	r.posts[post.ID] = clonePost(post)
	return clonePost(post), nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

type stubTagRepo struct {
	tags map[string]*domain.Tag
	seq  int
}

func newStubTagRepo() *stubTagRepo {
	return &stubTagRepo{tags: make(map[string]*domain.Tag)}
}

func (r *stubTagRepo) add(name string) *domain.Tag {
	r.seq++
	tag := &domain.Tag{ID: "t" + strconv.Itoa(r.seq), Name: name}
	r.tags[tag.ID] = tag
	clone := *tag
	return &clone
}

func (r *stubTagRepo) FindByID(_ context.Context, id string) (*domain.Tag, error) {
	if t, ok := r.tags[id]; ok {
		clone := *t
		return &clone, nil
	}
	return nil, domain.ErrTagNotFound
}

func (r *stubTagRepo) FindByIDs(ctx context.Context, ids []string) ([]domain.Tag, error) {
	out := make([]domain.Tag, 0, len(ids))
	for _, id := range ids {
		t, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTagRepo) FindAll(_ context.Context) ([]domain.Tag, error) {
	out := make([]domain.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTagRepo) Create(_ context.Context, tag *domain.Tag) (*domain.Tag, error) {
	return r.add(tag.Name), nil
}

func (r *stubTagRepo) Update(_ context.Context, tag *domain.Tag) (*domain.Tag, error) {
	if _, ok := r.tags[tag.ID]; !ok {
		return nil, domain.ErrTagNotFound
	}
	clone := *tag
	r.tags[tag.ID] = &clone
	return tag, nil
}

func (r *stubTagRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tags[id]; !ok {
		return domain.ErrTagNotFound
	}
	delete(r.tags, id)
	return nil
}

type stubMessageRepo struct {
	messages map[string]*domain.Message // keyed by id
	seq      int
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{messages: make(map[string]*domain.Message)}
}

func (r *stubMessageRepo) add(key, locale, value string) *domain.Message {
	r.seq++
	msg := &domain.Message{ID: "m" + strconv.Itoa(r.seq), Key: key, Locale: locale, Value: value}
	r.messages[msg.ID] = msg
	clone := *msg
	return &clone
}

func (r *stubMessageRepo) FindByID(_ context.Context, id string) (*domain.Message, error) {
	if m, ok := r.messages[id]; ok {
		clone := *m
		return &clone, nil
	}
	return nil, domain.ErrMessageNotFound
}

func (r *stubMessageRepo) FindByKeyAndLocale(_ context.Context, key, locale string) (*domain.Message, error) {
	for _, m := range r.messages {
		if m.Key == key && m.Locale == locale {
			clone := *m
			return &clone, nil
		}
	}
	return nil, domain.ErrMessageNotFound
}

func (r *stubMessageRepo) FindByLocale(_ context.Context, locale string) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range r.messages {
		if m.Locale == locale {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMessageRepo) ExistsByKeyAndLocale(ctx context.Context, key, locale string) (bool, error) {
	_, err := r.FindByKeyAndLocale(ctx, key, locale)
	return err == nil, nil
}

func (r *stubMessageRepo) Save(_ context.Context, msg *domain.Message) (*domain.Message, error) {
	if msg.ID == "" {
		return r.add(msg.Key, msg.Locale, msg.Value), nil
	}
	clone := *msg
	r.messages[msg.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubMessageRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.messages[id]; !ok {
		return domain.ErrMessageNotFound
	}
	delete(r.messages, id)
	return nil
}

// recordingAudit captures audit events synchronously for assertions.
type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (a *recordingAudit) Record(event domain.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
}

func (a *recordingAudit) last() (domain.AuditEvent, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.events) == 0 {
		return domain.AuditEvent{}, false
	}
	return a.events[len(a.events)-1], true
}
