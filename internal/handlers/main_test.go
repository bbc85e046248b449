package handlers_test

import (
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mateusfonseca/dorsetMusicCollection/internal/db"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/handlers"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/middleware"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/models"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/router"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/services"
	"github.com/mateusfonseca/dorsetMusicCollection/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// stubCatalog is the test double standing in for the Discogs client.
type stubCatalog struct {
	releases []services.Release
	err      error
	calls    int
}

func (s *stubCatalog) Search(style string, year int) ([]services.Release, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.releases, nil
}

// newTestRouter builds the full route table against a fresh in-memory
// database, with stripped-down templates so assertions can read the body.
func newTestRouter(t *testing.T, catalog services.Catalog) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Question{}, &models.Choice{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	db.DB = gdb

	// Render data cached by a previous test must not leak into this one.
	utils.GetCache().Purge()

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	r.SetHTMLTemplate(testTemplates(t))
	r.Use(middleware.LoadUser())

	router.RegisterRoutes(r,
		handlers.NewPollHandler(catalog, handlers.NewPollParams()),
		handlers.NewAccountHandler(),
		handlers.NewAuthHandler(),
	)
	return r
}

func testTemplates(t *testing.T) *template.Template {
	t.Helper()
	tmpl := template.New("test")
	for name, body := range map[string]string{
		"polls/index.html":                  `{{range .Questions}}[{{.ID}}:{{.Text}}]{{end}}`,
		"polls/detail.html":                 `{{.Question.Text}}{{if .ErrorMessage}} {{.ErrorMessage}}{{end}}`,
		"polls/results.html":                `{{range .Question.Choices}}{{.Artist}}={{.Votes}};{{end}}`,
		"polls/create.html":                 `create genres={{len .Genres}} years={{len .Years}}{{if .Error}} {{.Error}}{{end}}`,
		"polls/no_matches.html":             `no matches for {{.Genre}} {{.Year}}`,
		"accounts/signup.html":              `signup{{if .Error}} {{.Error}}{{end}}`,
		"accounts/detail.html":              `detail {{.User.Username}} {{.User.Email}}`,
		"accounts/delete.html":              `confirm delete{{if .Fail}} wrong password{{end}}`,
		"accounts/delete_confirmation.html": `account deleted`,
		"accounts/change_email.html":        `change email`,
		"auth/login.html":                   `login{{if .Error}} {{.Error}}{{end}}`,
		"error.html":                        `error: {{.Error}}`,
	} {
		template.Must(tmpl.New(name).Parse(body))
	}
	return tmpl
}

func createUser(t *testing.T, username, password string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{Username: username, Email: username + "@example.com", Password: hash}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return &user
}

// login posts the credentials and returns the session cookies.
func login(t *testing.T, r *gin.Engine, username, password string) []*http.Cookie {
	t.Helper()
	w := postForm(r, "/login", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("login failed with status %d", w.Code)
	}
	return w.Result().Cookies()
}

func getPage(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

func createQuestion(t *testing.T, genre string, year int, choices ...models.Choice) *models.Question {
	t.Helper()
	question := models.Question{
		Genre:   genre,
		Year:    year,
		Text:    fmt.Sprintf("What is the best %s album of %d?", genre, year),
		PubDate: time.Now(),
		Choices: choices,
	}
	if err := db.DB.Create(&question).Error; err != nil {
		t.Fatalf("failed to create question: %v", err)
	}
	return &question
}
