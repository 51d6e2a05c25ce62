package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/vcli/internal/api"
	"github.com/tgienger/vcli/internal/config"
	"github.com/tgienger/vcli/internal/logging"
	"github.com/tgienger/vcli/internal/models"
	"github.com/tgienger/vcli/internal/ui/styles"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type request struct {
	method string
	uri    string
	body   string
}

// vikunja is a canned API keyed by "METHOD /uri"; unknown keys answer "[]"
type vikunja struct {
	mu        sync.Mutex
	responses map[string]string
	requests  []request
}

func (v *vikunja) on(method, uri, body string) {
	v.responses[method+" "+uri] = body
}

func (v *vikunja) called(method, uri string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, r := range v.requests {
		if r.method == method && r.uri == uri {
			return true
		}
	}
	return false
}

func (v *vikunja) bodyOf(method, uri string) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, r := range v.requests {
		if r.method == method && r.uri == uri {
			return r.body
		}
	}
	return ""
}

func (v *vikunja) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	uri := strings.TrimPrefix(r.URL.RequestURI(), "/api/v1")

	v.mu.Lock()
	v.requests = append(v.requests, request{method: r.Method, uri: uri, body: string(body)})
	resp, ok := v.responses[r.Method+" "+uri]
	v.mu.Unlock()

	if !ok {
		resp = "[]"
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, resp)
}

type harness struct {
	api        *vikunja
	url        string
	configPath string
}

// newHarness starts a fake instance and writes credentials for it
func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv(config.EnvHost, "")
	t.Setenv(config.EnvToken, "")

	v := &vikunja{responses: map[string]string{}}
	srv := httptest.NewServer(v)
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.Save(path, &config.Config{Host: srv.URL, Token: "secret"}))

	return &harness{api: v, url: srv.URL, configPath: path}
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	env := Env{
		In:     strings.NewReader(""),
		Out:    &out,
		Err:    &errOut,
		Width:  80,
		Now:    func() time.Time { return fixedNow },
		Logger: logging.Discard(),
	}
	root := NewRootCommand(env, "test")
	root.SetArgs(append([]string{"--config", h.configPath, "--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

const fixtureTasks = `[
	{"id": 1, "title": "Old done", "done": true, "project_id": 1},
	{"id": 2, "title": "Done favorite", "done": true, "is_favorite": true, "project_id": 1},
	{"id": 3, "title": "Open plain", "project_id": 1, "labels": [{"id": 4, "title": "home"}]},
	{"id": 4, "title": "Open favorite", "is_favorite": true, "project_id": 2},
	{"id": 5, "title": "Open other", "project_id": 2, "labels": [{"id": 5, "title": "work "}]}
]`

const fixtureProjects = `[
	{"id": 1, "title": "Inbox"},
	{"id": 2, "title": "Work"}
]`

const latestURI = "/tasks/all?per_page=60&sort_by=created&order_by=desc"

func (h *harness) withFixtures() {
	h.api.on("GET", latestURI, fixtureTasks)
	h.api.on("GET", "/tasks/all?page=1", fixtureTasks)
	h.api.on("GET", "/projects?page=1", fixtureProjects)
}

func lines(out string) []string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestFilterTasks(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Done: true},
		{ID: 2, Done: true, IsFavorite: true},
		{ID: 3, ProjectID: 1, Labels: []models.Label{{Title: " home"}}},
		{ID: 4, IsFavorite: true, ProjectID: 2},
	}

	ids := func(ts []models.Task) []int64 {
		var out []int64
		for _, t := range ts {
			out = append(out, t.ID)
		}
		return out
	}

	assert.Equal(t, []int64{3, 4}, ids(FilterTasks(tasks, TaskFilter{})))
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(FilterTasks(tasks, TaskFilter{IncludeDone: true})))
	assert.Equal(t, []int64{4}, ids(FilterTasks(tasks, TaskFilter{FavoritesOnly: true})))
	assert.Equal(t, []int64{2, 4}, ids(FilterTasks(tasks, TaskFilter{FavoritesOnly: true, IncludeDone: true})))
	assert.Equal(t, []int64{3}, ids(FilterTasks(tasks, TaskFilter{ProjectID: 1})))
	assert.Equal(t, []int64{3}, ids(FilterTasks(tasks, TaskFilter{Label: "home"})))
	assert.Empty(t, FilterTasks(nil, TaskFilter{}))
}

func TestList_DefaultShowsOpenLatestTasks(t *testing.T) {
	h := newHarness(t)
	h.withFixtures()

	out, err := h.run(t)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"(3) Open plain [Inbox]  home ",
		"(4) ⭐ Open favorite [Work]",
		"(5) Open other [Work]  work ",
	}, lines(out))
	assert.True(t, h.api.called("GET", latestURI))
	assert.False(t, h.api.called("GET", "/tasks/all?page=1"))
}

func TestList_FavoriteOnlyOpen(t *testing.T) {
	h := newHarness(t)
	h.withFixtures()

	out, err := h.run(t, "--favorite")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 1)
	assert.Equal(t, "(4) ⭐ Open favorite [Work]", got[0])
}

func TestList_DoneIncludesFinishedTasks(t *testing.T) {
	h := newHarness(t)
	h.withFixtures()

	out, err := h.run(t, "-d", "-f")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 2)
	assert.Equal(t, "(2) ⭐ Done favorite [Inbox] [✓]", got[0])
}

func TestList_FromProjectUsesAllTasks(t *testing.T) {
	h := newHarness(t)
	h.withFixtures()

	out, err := h.run(t, "--from", "wor")
	require.NoError(t, err)

	assert.Len(t, lines(out), 2)
	assert.Contains(t, out, "(4)")
	assert.Contains(t, out, "(5)")
	assert.True(t, h.api.called("GET", "/tasks/all?page=1"))
	assert.True(t, h.api.called("GET", "/tasks/all?page=2"))
	assert.False(t, h.api.called("GET", latestURI))
}

func TestList_LabelMatchesTrimmedTitle(t *testing.T) {
	h := newHarness(t)
	h.withFixtures()

	out, err := h.run(t, "--label", "work")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0], "(5) Open other"))
}

func TestList_UnknownProject(t *testing.T) {
	h := newHarness(t)
	h.withFixtures()

	_, err := h.run(t, "--from", "nowhere")
	var notFound *api.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "project", notFound.Kind)
}

func TestList_MissingCredentials(t *testing.T) {
	h := newHarness(t)
	h.configPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := h.run(t)
	var unreadable *config.UnreadableError
	require.ErrorAs(t, err, &unreadable)
	assert.Contains(t, err.Error(), "vcli login")
}

func TestInfo(t *testing.T) {
	h := newHarness(t)
	h.withFixtures()
	h.api.on("GET", "/tasks/4", `{"id": 4, "title": "Open favorite", "is_favorite": true, "project_id": 2,
		"description": "<p>Call <b>Bob</b></p>", "priority": 2}`)

	out, err := h.run(t, "info", "#4")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"⭐ Open favorite (4) [Work]",
		"Priority: 2",
		"---",
		"Call Bob",
	}, lines(out))
}

func TestInfo_ProjectNotListed(t *testing.T) {
	h := newHarness(t)
	h.api.on("GET", "/tasks/9", `{"id": 9, "title": "Lost", "project_id": 77}`)

	out, err := h.run(t, "info", "9")
	require.NoError(t, err)
	assert.Equal(t, "Lost (9) [#77]\n", out)
}

func TestInfo_InvalidID(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "info", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid task id")
}

func TestComments(t *testing.T) {
	h := newHarness(t)
	h.api.on("GET", "/tasks/3/comments", `[{"id": 1, "author": {"username": "ann"},
		"comment": "<p>hi</p>", "created": "2024-05-10T11:00:00Z"}]`)

	out, err := h.run(t, "comments", "3")
	require.NoError(t, err)
	assert.Equal(t, "ann (1h ago):\nhi\n", out)
}

func TestComment_JoinsWords(t *testing.T) {
	h := newHarness(t)
	h.api.on("PUT", "/tasks/3/comments", `{"id": 12, "comment": "looks good"}`)

	out, err := h.run(t, "comment", "3", "looks", "good")
	require.NoError(t, err)
	assert.Equal(t, "✓ Added comment 12 to task 3\n", out)
	assert.JSONEq(t, `{"comment": "looks good"}`, h.api.bodyOf("PUT", "/tasks/3/comments"))
}

func TestProjectList(t *testing.T) {
	h := newHarness(t)
	h.api.on("GET", "/projects?page=1", `[
		{"id": 1, "title": "Inbox"},
		{"id": 2, "title": "Home", "parent_project_id": 1},
		{"id": 3, "title": "Work"}
	]`)

	out, err := h.run(t, "prj", "ls")
	require.NoError(t, err)
	assert.Equal(t, "Inbox [1]\n  - Home [2]\nWork [3]\n", out)
}

func TestProjectAdd(t *testing.T) {
	h := newHarness(t)
	h.withFixtures()
	h.api.on("PUT", "/projects", `{"id": 8, "title": "Garden"}`)

	out, err := h.run(t, "prj", "add", "Garden", "-c", "#A0B1C2", "-d", "outside", "-p", "inbox")
	require.NoError(t, err)
	assert.Equal(t, "✓ Created project Garden [8]\n", out)
	assert.JSONEq(t, `{"title": "Garden", "description": "outside", "hex_color": "a0b1c2", "parent_project_id": 1}`,
		h.api.bodyOf("PUT", "/projects"))
}

func TestProjectAdd_InvalidColor(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "prj", "add", "Garden", "-c", "#zz0000")
	var invalid *styles.InvalidColorError
	require.ErrorAs(t, err, &invalid)
	assert.False(t, h.api.called("PUT", "/projects"))
}

func TestProjectRemove(t *testing.T) {
	h := newHarness(t)
	h.withFixtures()

	out, err := h.run(t, "prj", "rm", "Work")
	require.NoError(t, err)
	assert.Equal(t, "✓ Deleted project 2\n", out)
	assert.True(t, h.api.called("DELETE", "/projects/2"))
}

func TestLabels(t *testing.T) {
	h := newHarness(t)
	h.api.on("GET", "/labels?page=1", `[{"id": 4, "title": "home", "description": "chores"}]`)
	h.api.on("PUT", "/labels", `{"id": 6, "title": "errands"}`)

	out, err := h.run(t, "labels", "ls")
	require.NoError(t, err)
	assert.Equal(t, " home  [4] chores\n", out)

	out, err = h.run(t, "labels", "new", "errands", "-c", "00ff00")
	require.NoError(t, err)
	assert.Equal(t, "✓ Created label errands [6]\n", out)
	assert.JSONEq(t, `{"title": "errands", "hex_color": "00ff00"}`, h.api.bodyOf("PUT", "/labels"))

	out, err = h.run(t, "labels", "rm", "home")
	require.NoError(t, err)
	assert.Equal(t, "✓ Deleted label 4\n", out)
	assert.True(t, h.api.called("DELETE", "/labels/4"))
}

func TestLabel_AttachAndDetach(t *testing.T) {
	h := newHarness(t)
	h.api.on("GET", "/labels?page=1", `[{"id": 4, "title": "home"}]`)

	_, err := h.run(t, "label", "home", "3")
	require.NoError(t, err)
	assert.JSONEq(t, `{"label_id": 4}`, h.api.bodyOf("PUT", "/tasks/3/labels"))

	_, err = h.run(t, "label", "-u", "home", "3")
	require.NoError(t, err)
	assert.True(t, h.api.called("DELETE", "/tasks/3/labels/4"))
}

func TestNewTask(t *testing.T) {
	h := newHarness(t)
	h.withFixtures()
	h.api.on("PUT", "/projects/1/tasks", `{"id": 21, "title": "Water plants", "project_id": 1}`)

	out, err := h.run(t, "new", "Water plants", "--due", "2024-05-12", "--priority", "3", "--favorite")
	require.NoError(t, err)
	assert.Equal(t, "✓ Created task (21) Water plants\n", out)
	assert.JSONEq(t, `{"title": "Water plants", "due_date": "2024-05-12T00:00:00Z", "is_favorite": true, "priority": 3}`,
		h.api.bodyOf("PUT", "/projects/1/tasks"))
}

func TestNewTask_InvalidDue(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "new", "x", "--due", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid due date")
}

func TestParseDue(t *testing.T) {
	got, err := parseDue("2024-06-01T08:30:00+02:00", time.UTC)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 6, 1, 6, 30, 0, 0, time.UTC)))

	got, err = parseDue("2024-06-01", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestDone(t *testing.T) {
	h := newHarness(t)
	h.api.on("POST", "/tasks/3", `{"id": 3, "title": "Open plain", "done": true}`)

	out, err := h.run(t, "done", "3")
	require.NoError(t, err)
	assert.Equal(t, "✓ Done: (3) Open plain\n", out)
	assert.JSONEq(t, `{"done": true, "done_at": "2024-05-10T12:00:00Z"}`, h.api.bodyOf("POST", "/tasks/3"))
}

func TestDone_Undo(t *testing.T) {
	h := newHarness(t)
	h.api.on("POST", "/tasks/3", `{"id": 3, "title": "Open plain"}`)

	_, err := h.run(t, "done", "-u", "3")
	require.NoError(t, err)
	assert.JSONEq(t, `{"done": false, "done_at": null}`, h.api.bodyOf("POST", "/tasks/3"))
}

func TestFavorite(t *testing.T) {
	h := newHarness(t)
	h.api.on("POST", "/tasks/3", `{"id": 3, "title": "Open plain", "is_favorite": true}`)

	out, err := h.run(t, "fav", "3")
	require.NoError(t, err)
	assert.Equal(t, "✓ Favorited (3) Open plain\n", out)
	assert.JSONEq(t, `{"is_favorite": true}`, h.api.bodyOf("POST", "/tasks/3"))
}

func TestRemoveTask(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "rm", "3")
	require.NoError(t, err)
	assert.Equal(t, "✓ Deleted task 3\n", out)
	assert.True(t, h.api.called("DELETE", "/tasks/3"))
}

func TestAssign(t *testing.T) {
	h := newHarness(t)
	h.api.on("GET", "/users?s=bob", `[{"id": 7, "username": "bob"}]`)

	out, err := h.run(t, "assign", "bob", "3")
	require.NoError(t, err)
	assert.Equal(t, "✓ Assigned bob to task 3\n", out)
	assert.JSONEq(t, `{"user_id": 7}`, h.api.bodyOf("PUT", "/tasks/3/assignees"))

	_, err = h.run(t, "assign", "-u", "bob", "3")
	require.NoError(t, err)
	assert.True(t, h.api.called("DELETE", "/tasks/3/assignees/7"))
}

func TestAssign_UnknownUser(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "assign", "nobody", "3")
	var notFound *api.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "user", notFound.Kind)
}

func TestRelate(t *testing.T) {
	h := newHarness(t)
	h.api.on("PUT", "/tasks/3/relations", `{"task_id": 3, "other_task_id": 5, "relation_kind": "blocked"}`)

	out, err := h.run(t, "relate", "3", "Blocked-By", "5")
	require.NoError(t, err)
	assert.Equal(t, "✓ Related: 3 blocked 5\n", out)
	assert.JSONEq(t, `{"task_id": 3, "other_task_id": 5, "relation_kind": "blocked"}`,
		h.api.bodyOf("PUT", "/tasks/3/relations"))

	_, err = h.run(t, "relate", "-u", "3", "blocked", "5")
	require.NoError(t, err)
	assert.True(t, h.api.called("DELETE", "/tasks/3/relations/blocked/5"))
}

func TestRelate_UnknownKind(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "relate", "3", "sibling", "5")
	var unknown *models.UnknownRelationKindError
	require.ErrorAs(t, err, &unknown)
	assert.False(t, h.api.called("PUT", "/tasks/3/relations"))
}

func TestLogin(t *testing.T) {
	h := newHarness(t)
	exp := fixedNow.Add(48 * time.Hour)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("k"))
	require.NoError(t, err)
	h.api.on("POST", "/login", fmt.Sprintf(`{"token": %q}`, token))

	path := filepath.Join(t.TempDir(), "vcli", "config.yaml")
	h.configPath = path

	out, err := h.run(t, "login", "--host", h.url+"/", "-u", "ann", "-p", "pw", "--totp", "123456")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Logged in to "+h.url+" as ann\n")
	assert.Contains(t, out, "✓ Token expires in 2d")
	assert.JSONEq(t, `{"username": "ann", "password": "pw", "totp_passcode": "123456"}`, h.api.bodyOf("POST", "/login"))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, h.url, cfg.Host)
	assert.Equal(t, token, cfg.Token)
}

func TestLogin_RejectedCredentials(t *testing.T) {
	h := newHarness(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"wrong username or password"}`, http.StatusPreconditionFailed)
	}))
	t.Cleanup(srv.Close)

	_, err := h.run(t, "login", "--host", srv.URL, "-u", "ann", "-p", "bad")
	var transport *api.TransportError
	require.True(t, errors.As(err, &transport))
	assert.Equal(t, http.StatusPreconditionFailed, transport.StatusCode)
}

func TestTokenExpiry(t *testing.T) {
	_, ok := tokenExpiry("not-a-jwt")
	assert.False(t, ok)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, ok = tokenExpiry(token)
	assert.False(t, ok)
}
