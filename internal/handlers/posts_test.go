package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"aaronblog/internal/models"
	"aaronblog/internal/service"
)

var errTest = errors.New("storage unavailable")

func TestHomeHandler_ListsPostsAndCategories(t *testing.T) {
	blogs := &mockBlogs{
		listResp: []models.Blog{
			{ID: 2, Title: "Newest", CreatorName: "Alice", CategoryName: "Technology", DateCreated: time.Now()},
			{ID: 1, Title: "Oldest", CreatorName: "Bob", CategoryName: "Food", DateCreated: time.Now().Add(-time.Hour)},
		},
		catResp: []string{"Food", "Technology"},
	}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}, Blogs: blogs})

	w := getPage(r, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Newest", "Oldest", "Technology", "Food"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in home page body", want)
		}
	}
}

func TestHomeHandler_StorageFailureRendersErrorPage(t *testing.T) {
	blogs := &mockBlogs{listErr: errTest}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}, Blogs: blogs})

	w := getPage(r, "/", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "OOPS") {
		t.Fatalf("expected generic error page")
	}
}

func TestCreatePostHandler_UsesSessionIdentity(t *testing.T) {
	auth := &mockAuth{currentSession: aliceSession()}
	blogs := &mockBlogs{createdID: 1}
	r := newTestRouter(&service.Service{Authorization: auth, Blogs: blogs})

	w := postForm(r, "/create-post", url.Values{
		"title":    {"Hello"},
		"content":  {"World"},
		"category": {"Technology"},
	}, "tok")

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d (body=%s)", w.Code, w.Body.String())
	}
	if blogs.lastCreate.CreatorID != "alice" || blogs.lastCreate.CreatorName != "Alice" {
		t.Fatalf("creator must come from the session, got %+v", blogs.lastCreate)
	}
	if blogs.lastCreate.CategoryName != "Technology" {
		t.Fatalf("expected category %q, got %q", "Technology", blogs.lastCreate.CategoryName)
	}
}

func TestCreatePostHandler_NewCategoryField(t *testing.T) {
	auth := &mockAuth{currentSession: aliceSession()}
	blogs := &mockBlogs{createdID: 1}
	r := newTestRouter(&service.Service{Authorization: auth, Blogs: blogs})

	w := postForm(r, "/create-post", url.Values{
		"title":       {"Hello"},
		"content":     {"World"},
		"category":    {"new"},
		"newCategory": {"Gardening"},
	}, "tok")

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if blogs.lastCreate.CategoryName != "Gardening" {
		t.Fatalf("picking 'new' must use the newCategory field, got %q", blogs.lastCreate.CategoryName)
	}
}

func TestEditPageHandler_NotOwnerGets403(t *testing.T) {
	auth := &mockAuth{currentSession: &models.Session{ID: "sid-2", UserID: "bob", UserName: "Bob"}}
	blogs := &mockBlogs{
		getResp: &models.Blog{ID: 1, CreatorID: "alice", CreatorName: "Alice", Title: "Hers"},
		catResp: []string{"Technology"},
	}
	r := newTestRouter(&service.Service{Authorization: auth, Blogs: blogs})

	w := getPage(r, "/edit/1", "tok")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), msgNotPostOwner) {
		t.Fatalf("expected ownership message in body")
	}
}

func TestEditPageHandler_MissingPostGets404(t *testing.T) {
	auth := &mockAuth{currentSession: aliceSession()}
	blogs := &mockBlogs{getErr: service.ErrPostNotFound}
	r := newTestRouter(&service.Service{Authorization: auth, Blogs: blogs})

	w := getPage(r, "/edit/99", "tok")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestEditPageHandler_BadIDGets404(t *testing.T) {
	auth := &mockAuth{currentSession: aliceSession()}
	r := newTestRouter(&service.Service{Authorization: auth, Blogs: &mockBlogs{}})

	w := getPage(r, "/edit/not-a-number", "tok")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for garbage id, got %d", w.Code)
	}
}

func TestEditPostHandler_ForbiddenMapsTo403(t *testing.T) {
	auth := &mockAuth{currentSession: &models.Session{ID: "sid-2", UserID: "bob", UserName: "Bob"}}
	blogs := &mockBlogs{editErr: service.ErrNotOwner}
	r := newTestRouter(&service.Service{Authorization: auth, Blogs: blogs})

	w := postForm(r, "/edit/1", url.Values{
		"title":    {"Hijacked"},
		"content":  {"Hijacked"},
		"category": {"Technology"},
	}, "tok")

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if blogs.lastEdit.RequesterID != "bob" {
		t.Fatalf("requester must come from the session, got %q", blogs.lastEdit.RequesterID)
	}
}

func TestDeletePostHandler_MissingMapsTo404(t *testing.T) {
	auth := &mockAuth{currentSession: aliceSession()}
	blogs := &mockBlogs{deleteErr: service.ErrPostNotFound}
	r := newTestRouter(&service.Service{Authorization: auth, Blogs: blogs})

	w := postForm(r, "/delete/99", nil, "tok")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if blogs.lastDeleteID != 99 || blogs.lastDeleteUser != "alice" {
		t.Fatalf("unexpected delete call: id=%d user=%q", blogs.lastDeleteID, blogs.lastDeleteUser)
	}
}

func TestDeletePostHandler_SuccessRedirectsHome(t *testing.T) {
	auth := &mockAuth{currentSession: aliceSession()}
	blogs := &mockBlogs{}
	r := newTestRouter(&service.Service{Authorization: auth, Blogs: blogs})

	w := postForm(r, "/delete/5", nil, "tok")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if blogs.deleteCallCount != 1 {
		t.Fatalf("expected exactly one delete call, got %d", blogs.deleteCallCount)
	}
}
