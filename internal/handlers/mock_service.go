package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"aaronblog/internal/models"
	"aaronblog/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpErr      error
	signInToken    string
	signInErr      error
	signOutErr     error
	currentSession *models.Session
	currentErr     error

	lastSignUp       service.SignUpInput
	lastSignInUserID string
	lastSignInPass   string
	lastSignOutToken string
	lastCurrentToken string
}

func (m *mockAuth) SignUp(ctx context.Context, in service.SignUpInput) error {
	m.lastSignUp = in
	return m.signUpErr
}

func (m *mockAuth) SignIn(ctx context.Context, userID, password string) (string, error) {
	m.lastSignInUserID = userID
	m.lastSignInPass = password
	return m.signInToken, m.signInErr
}

func (m *mockAuth) SignOut(ctx context.Context, token string) error {
	m.lastSignOutToken = token
	return m.signOutErr
}

func (m *mockAuth) CurrentUser(ctx context.Context, token string) (*models.Session, error) {
	m.lastCurrentToken = token
	return m.currentSession, m.currentErr
}

type mockBlogs struct {
	listResp  []models.Blog
	listErr   error
	getResp   *models.Blog
	getErr    error
	catResp   []string
	catErr    error
	createdID int64
	createErr error
	editErr   error
	deleteErr error

	lastCreate      service.CreateBlogInput
	lastEdit        service.EditBlogInput
	lastDeleteID    int64
	lastDeleteUser  string
	deleteCallCount int
}

func (m *mockBlogs) List(ctx context.Context) ([]models.Blog, error) {
	return m.listResp, m.listErr
}

func (m *mockBlogs) Get(ctx context.Context, id int64) (*models.Blog, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.getResp, nil
}

func (m *mockBlogs) CategoryNames(ctx context.Context) ([]string, error) {
	return m.catResp, m.catErr
}

func (m *mockBlogs) Create(ctx context.Context, in service.CreateBlogInput) (*models.Blog, error) {
	m.lastCreate = in
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &models.Blog{
		ID:           m.createdID,
		CreatorID:    in.CreatorID,
		CreatorName:  in.CreatorName,
		Title:        in.Title,
		Content:      in.Content,
		CategoryName: in.CategoryName,
	}, nil
}

func (m *mockBlogs) Edit(ctx context.Context, in service.EditBlogInput) error {
	m.lastEdit = in
	return m.editErr
}

func (m *mockBlogs) Delete(ctx context.Context, id int64, requesterID string) error {
	m.deleteCallCount++
	m.lastDeleteID = id
	m.lastDeleteUser = requesterID
	return m.deleteErr
}

// ---- Shared Test Helpers ----

// Templates live two levels up from this package; go test runs in the
// package directory.
const testTemplateGlob = "../../web/templates/*.html"

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes(testTemplateGlob)
}

// postForm performs a form POST, optionally with a session cookie.
func postForm(r *gin.Engine, path string, form url.Values, cookie string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie})
	}
	r.ServeHTTP(w, req)
	return w
}

func getPage(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie})
	}
	r.ServeHTTP(w, req)
	return w
}

func aliceSession() *models.Session {
	return &models.Session{ID: "sid-1", UserID: "alice", UserName: "Alice"}
}
