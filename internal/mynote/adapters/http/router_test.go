package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	mynotehttp "mynote/internal/mynote/adapters/http"
	"mynote/internal/mynote/adapters/http/handlers"
	"mynote/internal/mynote/adapters/http/middleware"
	redisstore "mynote/internal/mynote/adapters/redis"
	"mynote/internal/mynote/adapters/services"
	usecases "mynote/internal/mynote/app"
	"mynote/internal/mynote/domain/entities"
	"mynote/internal/mynote/domain/session"
)

const (
	cookieName   = "myNote"
	testSecret   = "0FuzRKhuS8gCMEDhJE8BYOvIi7yRNK6vSYgR8JYzSms"
	testUsername = "alice1"
	testPassword = "Passw0rd"
)

var errStoreDown = errors.New("store is down")

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*entities.User
	err   error
}

func (m *memoryUsers) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[username]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (m *memoryUsers) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if _, ok := m.users[user.Username]; ok {
		return nil, entities.ErrUsernameTaken
	}
	created := *user
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()
	m.users[created.Username] = &created

	result := created
	return &result, nil
}

func (m *memoryUsers) get(username string) *entities.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[username]
}

type memoryNotes struct {
	mu    sync.Mutex
	notes []*entities.Note
	err   error
}

func (m *memoryNotes) Create(_ context.Context, note *entities.Note) (*entities.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	created := *note
	created.ID = uuid.NewString()
	m.notes = append(m.notes, &created)
	return &created, nil
}

func (m *memoryNotes) FindByID(_ context.Context, id string) (*entities.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	for _, note := range m.notes {
		if note.ID == id {
			return note, nil
		}
	}
	return nil, nil
}

func (m *memoryNotes) ListByAuthor(_ context.Context, author string) ([]*entities.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	notes := make([]*entities.Note, 0)
	for _, note := range m.notes {
		if note.Author == author {
			notes = append(notes, note)
		}
	}
	return notes, nil
}

type testEnv struct {
	t     *testing.T
	app   *fiber.App
	users *memoryUsers
	notes *memoryNotes
	redis *miniredis.Miniredis
	jar   map[string]*http.Cookie
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	users := &memoryUsers{users: map[string]*entities.User{}}
	notes := &memoryNotes{}
	factory := services.NewServiceFactory(testSecret, bcrypt.MinCost)

	app := fiber.New()
	mynotehttp.SetupRouter(app, mynotehttp.Dependencies{
		Auth:     usecases.NewAuthUseCase(users, factory.PasswordService()),
		Notes:    usecases.NewNoteUseCase(notes),
		Sessions: redisstore.NewSessionStore(rdb),
		Signer:   factory.CookieSigner(),
		Session: middleware.SessionOptions{
			CookieName: cookieName,
			TTL:        session.DefaultTTL,
		},
	})

	return &testEnv{
		t:     t,
		app:   app,
		users: users,
		notes: notes,
		redis: mr,
		jar:   map[string]*http.Cookie{},
	}
}

// do выполняет запрос с cookie предыдущих ответов.
func (e *testEnv) do(method, path string, form url.Values) (*http.Response, string) {
	e.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}
	for _, cookie := range e.jar {
		req.AddCookie(cookie)
	}

	resp, err := e.app.Test(req)
	require.NoError(e.t, err)
	defer resp.Body.Close()

	for _, cookie := range resp.Cookies() {
		e.jar[cookie.Name] = cookie
	}

	raw, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)

	return resp, string(raw)
}

func (e *testEnv) get(path string) (*http.Response, string) {
	e.t.Helper()
	return e.do(http.MethodGet, path, nil)
}

func (e *testEnv) post(path string, form url.Values) (*http.Response, string) {
	e.t.Helper()
	return e.do(http.MethodPost, path, form)
}

func (e *testEnv) register(username, password, repeat string) *http.Response {
	e.t.Helper()
	resp, _ := e.post(handlers.PathRegister, url.Values{
		"username":       {username},
		"password":       {password},
		"passwordRepeat": {repeat},
	})
	return resp
}

func (e *testEnv) login(username, password string) *http.Response {
	e.t.Helper()
	resp, _ := e.post(handlers.PathLogin, url.Values{
		"username": {username},
		"password": {password},
	})
	return resp
}

// signUp регистрирует пользователя и проходит на страницу входа,
// где показывается сообщение об успешной регистрации.
func (e *testEnv) signUp(username, password string) {
	e.t.Helper()

	assertRedirect(e.t, e.register(username, password, password), handlers.PathHome)

	resp, _ := e.get(handlers.PathHome)
	assertRedirect(e.t, resp, handlers.PathLogin)

	_, body := e.get(handlers.PathLogin)
	assert.Contains(e.t, body, flashHTML(handlers.FlashRegistered))
}

// signIn регистрирует пользователя, входит и открывает главную страницу.
func (e *testEnv) signIn(username, password string) {
	e.t.Helper()

	e.signUp(username, password)
	assertRedirect(e.t, e.login(username, password), handlers.PathHome)

	resp, body := e.get(handlers.PathHome)
	require.Equal(e.t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(e.t, body, flashHTML(handlers.FlashLoggedIn))
}

func assertRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, location, resp.Header.Get(fiber.HeaderLocation))
}

// flashHTML повторяет разбиение сообщения на строки при выводе.
func flashHTML(message string) string {
	runes := []rune(message)
	var lines []string
	for len(runes) > session.FlashLineWidth {
		lines = append(lines, string(runes[:session.FlashLineWidth]))
		runes = runes[session.FlashLineWidth:]
	}
	lines = append(lines, string(runes))
	return strings.Join(lines, "<br>")
}

func TestUnauthenticatedHomeRedirectsToLogin(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.get(handlers.PathHome)
	assertRedirect(t, resp, handlers.PathLogin)

	resp, body := env.get(handlers.PathLogin)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `class="flash flash-info"`)
	assert.Contains(t, body, flashHTML(middleware.FlashNotLoggedIn))
}

func TestEndToEnd_RegisterLoginPostList(t *testing.T) {
	env := newTestEnv(t)

	assertRedirect(t, env.register(testUsername, testPassword, testPassword), handlers.PathHome)
	require.NotNil(t, env.users.get(testUsername))

	assertRedirect(t, env.login(testUsername, testPassword), handlers.PathHome)

	resp, _ := env.post(handlers.PathPost, url.Values{
		"title":   {"t"},
		"tag":     {"x"},
		"content": {"hello"},
	})
	assertRedirect(t, resp, handlers.PathHome)

	resp, body := env.get(handlers.PathHome)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, strings.Count(body, `<li class="note">`))
	assert.Contains(t, body, `<span class="author">alice1</span>`)

	listed, err := env.notes.ListByAuthor(context.Background(), testUsername)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, testUsername, listed[0].Author)
	assert.Equal(t, "t", listed[0].Title)
	assert.Equal(t, "x", listed[0].Tag)
	assert.Equal(t, "hello", listed[0].Content)

	resp, body = env.get("/detail/" + listed[0].ID)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<h1>t</h1>")
	assert.Contains(t, body, "hello")
}

func TestRegister_SuccessFlashSurvivesGuard(t *testing.T) {
	env := newTestEnv(t)

	assertRedirect(t, env.register(testUsername, testPassword, testPassword), handlers.PathHome)

	resp, _ := env.get(handlers.PathHome)
	assertRedirect(t, resp, handlers.PathLogin)

	_, body := env.get(handlers.PathLogin)
	assert.Contains(t, body, `class="flash flash-success"`)
	assert.Contains(t, body, flashHTML(handlers.FlashRegistered))
	assert.NotContains(t, body, flashHTML(middleware.FlashNotLoggedIn))
}

func TestRegister_LongPassword(t *testing.T) {
	env := newTestEnv(t)
	password := testPassword + strings.Repeat("x", 70) + "пароль"

	env.signUp(testUsername, password)
	require.NotNil(t, env.users.get(testUsername))

	assertRedirect(t, env.login(testUsername, password), handlers.PathHome)
	resp, _ := env.get(handlers.PathHome)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRegister_MismatchedRepeat(t *testing.T) {
	env := newTestEnv(t)

	assertRedirect(t, env.register(testUsername, testPassword, "Passw0rd2"), handlers.PathRegister)
	assert.Nil(t, env.users.get(testUsername))

	_, body := env.get(handlers.PathRegister)
	assert.Contains(t, body, `class="flash flash-error"`)
	assert.Contains(t, body, flashHTML(handlers.FlashPasswordMismatch))
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		flash    string
	}{
		{"short username", "ab", testPassword, handlers.FlashInvalidUsername},
		{"username with space", "name with space", testPassword, handlers.FlashInvalidUsername},
		{"no uppercase", testUsername, "abcdef1", handlers.FlashInvalidPassword},
		{"no lowercase", testUsername, "ABCDEF1", handlers.FlashInvalidPassword},
		{"too short", testUsername, "Ab1", handlers.FlashInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			assertRedirect(t, env.register(tt.username, tt.password, tt.password), handlers.PathRegister)
			assert.Empty(t, env.users.users)

			_, body := env.get(handlers.PathRegister)
			assert.Contains(t, body, flashHTML(tt.flash))
		})
	}
}

func TestRegister_Twice(t *testing.T) {
	env := newTestEnv(t)

	env.signUp(testUsername, testPassword)
	firstHash := env.users.get(testUsername).PasswordHash

	assertRedirect(t, env.register(testUsername, "Other0ne", "Other0ne"), handlers.PathRegister)
	assert.Equal(t, firstHash, env.users.get(testUsername).PasswordHash)

	_, body := env.get(handlers.PathRegister)
	assert.Contains(t, body, flashHTML(handlers.FlashUsernameTaken))
}

func TestRegister_StoreFailure(t *testing.T) {
	env := newTestEnv(t)
	env.users.err = errStoreDown

	assertRedirect(t, env.register(testUsername, testPassword, testPassword), handlers.PathRegister)

	env.users.err = nil
	_, body := env.get(handlers.PathRegister)
	assert.Contains(t, body, flashHTML(handlers.FlashUnknownError))
}

func TestLogin_SessionHoldsUserWithoutPassword(t *testing.T) {
	env := newTestEnv(t)
	env.signUp(testUsername, testPassword)

	assertRedirect(t, env.login(testUsername, testPassword), handlers.PathHome)

	keys := env.redis.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], redisstore.KeyPrefix))

	raw, err := env.redis.Get(keys[0])
	require.NoError(t, err)
	assert.Contains(t, raw, `"username":"alice1"`)
	assert.NotContains(t, raw, "password_hash")
	assert.NotContains(t, raw, env.users.get(testUsername).PasswordHash)

	resp, body := env.get(handlers.PathHome)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `class="flash flash-success"`)
	assert.Contains(t, body, flashHTML(handlers.FlashLoggedIn))
	assert.Contains(t, body, `<span class="user">alice1</span>`)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.signUp(testUsername, testPassword)

	assertRedirect(t, env.login(testUsername, "Passw0rD"), handlers.PathLogin)

	resp, body := env.get(handlers.PathLogin)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, flashHTML(handlers.FlashWrongPassword))
	assert.NotContains(t, body, `<span class="user">`)

	resp, _ = env.get(handlers.PathHome)
	assertRedirect(t, resp, handlers.PathLogin)
}

func TestLogin_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	assertRedirect(t, env.login("nobody", testPassword), handlers.PathLogin)

	_, body := env.get(handlers.PathLogin)
	assert.Contains(t, body, flashHTML(handlers.FlashUserNotFound))
}

func TestFlashIsReadOnce(t *testing.T) {
	env := newTestEnv(t)
	env.signUp(testUsername, testPassword)
	env.login(testUsername, testPassword)

	_, body := env.get(handlers.PathHome)
	assert.Contains(t, body, flashHTML(handlers.FlashLoggedIn))

	_, body = env.get(handlers.PathHome)
	assert.NotContains(t, body, `class="flash`)
}

func TestRequireNotLogin(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(testUsername, testPassword)

	for _, path := range []string{handlers.PathLogin, handlers.PathRegister} {
		resp, _ := env.get(path)
		assertRedirect(t, resp, handlers.PathHome)
	}

	_, body := env.get(handlers.PathHome)
	assert.Contains(t, body, flashHTML(middleware.FlashAlreadyLoggedIn))
}

func TestQuit(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(testUsername, testPassword)

	resp, _ := env.get(handlers.PathQuit)
	assertRedirect(t, resp, handlers.PathLogin)

	resp, body := env.get(handlers.PathLogin)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, flashHTML(handlers.FlashLoggedOut))

	resp, _ = env.get(handlers.PathHome)
	assertRedirect(t, resp, handlers.PathLogin)
}

func TestGuardedRoutesRequireLogin(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{handlers.PathQuit, handlers.PathPost, "/detail/" + uuid.NewString()} {
		resp, _ := env.get(path)
		assertRedirect(t, resp, handlers.PathLogin)
	}

	resp, _ := env.post(handlers.PathPost, url.Values{"title": {"t"}, "tag": {"x"}, "content": {"hello"}})
	assertRedirect(t, resp, handlers.PathLogin)
	assert.Empty(t, env.notes.notes)
}

func TestPost_Failures(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(testUsername, testPassword)

	resp, _ := env.post(handlers.PathPost, url.Values{"title": {"t"}, "tag": {""}, "content": {"hello"}})
	assertRedirect(t, resp, handlers.PathPost)
	_, body := env.get(handlers.PathPost)
	assert.Contains(t, body, flashHTML(handlers.FlashEmptyNoteField))

	env.notes.err = errStoreDown
	resp, _ = env.post(handlers.PathPost, url.Values{"title": {"t"}, "tag": {"x"}, "content": {"hello"}})
	assertRedirect(t, resp, handlers.PathPost)
	env.notes.err = nil

	_, body = env.get(handlers.PathPost)
	assert.Contains(t, body, flashHTML(handlers.FlashUnknownError))
	assert.Empty(t, env.notes.notes)
}

func TestDetail(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(testUsername, testPassword)

	foreign, err := env.notes.Create(context.Background(), entities.NewNote("bob", "foreign", "y", "secret"))
	require.NoError(t, err)

	t.Run("any logged-in user can view by id", func(t *testing.T) {
		resp, body := env.get("/detail/" + foreign.ID)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "foreign")
	})

	t.Run("unknown id", func(t *testing.T) {
		resp, body := env.get("/detail/" + uuid.NewString())
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, "404")
	})

	t.Run("store failure", func(t *testing.T) {
		env.notes.err = errStoreDown
		defer func() { env.notes.err = nil }()

		resp, _ := env.get("/detail/" + foreign.ID)
		assertRedirect(t, resp, handlers.PathHome)
	})
}

func TestHome_StoreFailure(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(testUsername, testPassword)

	env.notes.err = errStoreDown
	resp, body := env.get(handlers.PathHome)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, flashHTML(handlers.FlashUnknownError))
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.get("/no/such/page")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "404")
}

func TestSessionCookie(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.get(handlers.PathLogin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie, ok := env.jar[cookieName]
	require.True(t, ok, "session cookie should be issued on first visit")
	assert.True(t, cookie.HttpOnly)
	assert.WithinDuration(t, time.Now().Add(session.DefaultTTL), cookie.Expires, time.Minute)
	assert.Len(t, env.redis.Keys(), 1)
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))

	t.Run("known session keeps cookie", func(t *testing.T) {
		resp, _ := env.get(handlers.PathLogin)
		assert.Empty(t, resp.Cookies())
		assert.Len(t, env.redis.Keys(), 1)
	})

	t.Run("tampered cookie starts new session", func(t *testing.T) {
		env.jar[cookieName] = &http.Cookie{Name: cookieName, Value: cookie.Value + "x"}

		resp, _ := env.get(handlers.PathLogin)
		require.Len(t, resp.Cookies(), 1)
		assert.NotEqual(t, cookie.Value, resp.Cookies()[0].Value)
		assert.Len(t, env.redis.Keys(), 2)
	})
}
