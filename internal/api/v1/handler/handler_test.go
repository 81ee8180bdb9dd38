package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"app/internal/api/v1/handler"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/security"
)

// In-memory fakes behind the repository interfaces.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int
	users  map[int]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]*model.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.EmailAddress == u.EmailAddress {
			return fmt.Errorf("creating user: %w", &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "users_email_address_key",
			})
		}
	}
	f.nextID++
	u.ID = f.nextID
	stored := *u
	f.users[u.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.EmailAddress == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

type fakeCourseRepo struct {
	mu     sync.Mutex
	nextID int
	users  *fakeUserRepo
	rows   map[int]*model.Course
}

func newFakeCourseRepo(users *fakeUserRepo) *fakeCourseRepo {
	return &fakeCourseRepo{users: users, rows: make(map[int]*model.Course)}
}

func (f *fakeCourseRepo) withOwner(c model.Course) *model.Course {
	owner, _ := f.users.GetUserByID(context.Background(), c.UserID)
	c.Owner = owner
	return &c
}

func (f *fakeCourseRepo) ListCourses(context.Context) ([]model.Course, error) {
	f.mu.Lock()
	ids := make([]int, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	rows := make([]model.Course, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, *f.rows[id])
	}
	f.mu.Unlock()

	courses := make([]model.Course, 0, len(rows))
	for _, c := range rows {
		courses = append(courses, *f.withOwner(c))
	}
	return courses, nil
}

func (f *fakeCourseRepo) GetCourseByID(_ context.Context, id int) (*model.Course, error) {
	f.mu.Lock()
	c, ok := f.rows[id]
	if !ok {
		f.mu.Unlock()
		return nil, nil
	}
	copied := *c
	f.mu.Unlock()
	return f.withOwner(copied), nil
}

func (f *fakeCourseRepo) CreateCourse(_ context.Context, c *model.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	c.ID = f.nextID
	stored := *c
	stored.Owner = nil
	f.rows[c.ID] = &stored
	return nil
}

func (f *fakeCourseRepo) UpdateCourse(_ context.Context, c *model.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *c
	stored.Owner = nil
	f.rows[c.ID] = &stored
	return nil
}

func (f *fakeCourseRepo) DeleteCourse(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

// testAPI mirrors the production route table over the fakes.
type testAPI struct {
	users         *fakeUserRepo
	courses       *fakeCourseRepo
	courseHandler *handler.CourseHandler
	mux           http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	users := newFakeUserRepo()
	courses := newFakeCourseRepo(users)

	validate := validator.New()
	respond := handler.NewResponder(zerolog.Nop(), false)
	userHandler := handler.NewUserHandler(users, validate, respond, zerolog.Nop())
	courseHandler := handler.NewCourseHandler(courses, users, validate, respond, zerolog.Nop())

	auth := middleware.BasicAuth(users, zerolog.Nop())

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/users", userHandler.CreateUser)
		r.With(auth).Get("/users", userHandler.GetUser)
		r.Get("/courses", courseHandler.ListCourses)
		r.Get("/courses/{id}", courseHandler.GetCourse)
		r.With(auth).Post("/courses", courseHandler.CreateCourse)
		r.With(auth).Put("/courses/{id}", courseHandler.UpdateCourse)
		r.With(auth).Delete("/courses/{id}", courseHandler.DeleteCourse)
	})

	return &testAPI{users: users, courses: courses, courseHandler: courseHandler, mux: r}
}

// seedUser registers an account directly through the repository with a real
// bcrypt hash so Basic auth works against it.
func (a *testAPI) seedUser(t *testing.T, email, password string) *model.User {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	u := &model.User{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: email,
		PasswordHash: hash,
	}
	require.NoError(t, a.users.CreateUser(context.Background(), u))
	return u
}

func (a *testAPI) seedCourse(t *testing.T, owner *model.User, title string) *model.Course {
	t.Helper()
	c := &model.Course{
		Title:       title,
		Description: "A description",
		UserID:      owner.ID,
	}
	require.NoError(t, a.courses.CreateCourse(context.Background(), c))
	return c
}
