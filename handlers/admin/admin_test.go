package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/database/dbtest"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/sahilchouksey/pixel-portfolio/services/storage"
	authutil "github.com/sahilchouksey/pixel-portfolio/utils/auth"
	"github.com/sahilchouksey/pixel-portfolio/utils/middleware"
	"github.com/sahilchouksey/pixel-portfolio/utils/pdfvalidation/pdftest"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testPassword = "correct horse"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Pagination response.PaginationMeta `json:"pagination"`
}

type upload struct {
	key         string
	contentType string
	size        int
}

type fakeStore struct {
	uploads []upload
	err     error
}

func (f *fakeStore) UploadBytes(_ context.Context, key string, data []byte, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, upload{key: key, contentType: contentType, size: len(data)})
	return "https://cdn.example.com/" + key, nil
}

type testServer struct {
	app         *fiber.App
	db          *gorm.DB
	auth        *AuthHandler
	token       string
	themeEvents int
}

func newTestServer(t *testing.T, store storage.ObjectStore) *testServer {
	t.Helper()
	authutil.HashCost = 4

	db := dbtest.NewDB(t)
	jwtManager := authutil.NewJWTManager(authutil.JWTConfig{Secret: "test-secret", Issuer: "pixel-portfolio"})

	ts := &testServer{db: db, auth: NewAuthHandler(db, jwtManager, nil)}
	console := &Console{
		Auth:      ts.auth,
		Resources: NewPortfolioRegistry(db, func(context.Context) { ts.themeEvents++ }),
		Uploads:   NewUploadHandler(db, store),
		Audit:     NewAuditHandler(db),
	}

	ts.app = fiber.New(fiber.Config{BodyLimit: MaxRequestBody})
	console.Mount(ts.app, middleware.NewAuthMiddleware(jwtManager, db), nil)

	createUser(t, db, "admin", true)
	ts.token = ts.login(t, "admin", testPassword)
	return ts
}

func createUser(t *testing.T, db *gorm.DB, username string, superuser bool) model.User {
	t.Helper()
	hash, err := authutil.HashPassword(testPassword)
	require.NoError(t, err)
	user := model.User{Username: username, PasswordHash: hash, IsSuperuser: superuser}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func (ts *testServer) login(t *testing.T, username, password string) string {
	t.Helper()
	body, _ := json.Marshal(LoginRequest{Username: username, Password: password})
	var env envelope
	status := ts.do(t, http.MethodPost, "/admin/api/login", "", string(body), &env)
	require.Equal(t, http.StatusOK, status)

	var login LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.AccessToken)
	return login.AccessToken
}

func (ts *testServer) do(t *testing.T, method, path, token, body string, out interface{}) int {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return ts.send(t, req, out)
}

func (ts *testServer) send(t *testing.T, req *http.Request, out interface{}) int {
	t.Helper()
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (ts *testServer) admin(t *testing.T, method, path, body string, out interface{}) int {
	t.Helper()
	return ts.do(t, method, path, ts.token, body, out)
}

func multipartFile(t *testing.T, path, token, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t, nil)

	var env envelope
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodPost, "/admin/api/login", "", `{"username":"admin","password":"nope"}`, &env))
	assert.Equal(t, "Invalid username or password", env.Error.Message)

	env = envelope{}
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodPost, "/admin/api/login", "", `{"username":"ghost","password":"nope"}`, &env))
	assert.Equal(t, "Invalid username or password", env.Error.Message)

	env = envelope{}
	assert.Equal(t, http.StatusUnprocessableEntity, ts.do(t, http.MethodPost, "/admin/api/login", "", `{"username":"admin"}`, &env))
	assert.Contains(t, env.Error.Details, "password")

	var user model.User
	require.NoError(t, ts.db.Where("username = ?", "admin").First(&user).Error)
	assert.NotNil(t, user.LastLoginAt)

	var logins int64
	ts.db.Model(&model.AdminAuditLog{}).Where("action = ?", middleware.AuditLogin).Count(&logins)
	assert.Equal(t, int64(1), logins)
}

func TestUnknownUserStillComparesPassword(t *testing.T) {
	ts := newTestServer(t, nil)
	require.NotEmpty(t, ts.auth.unknownUserHash)

	var hashes []string
	verify := ts.auth.verifyPassword
	ts.auth.verifyPassword = func(hashedPassword, password string) error {
		hashes = append(hashes, hashedPassword)
		return verify(hashedPassword, password)
	}

	var env envelope
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodPost, "/admin/api/login", "", `{"username":"ghost","password":"nope"}`, &env))
	assert.Equal(t, "Invalid username or password", env.Error.Message)
	assert.Equal(t, []string{ts.auth.unknownUserHash}, hashes)

	hashes = nil
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodPost, "/admin/api/login", "", `{"username":"admin","password":"nope"}`, &env))
	require.Len(t, hashes, 1)
	assert.NotEqual(t, ts.auth.unknownUserHash, hashes[0])
}

func TestLoginRequiresSuperuser(t *testing.T) {
	ts := newTestServer(t, nil)
	createUser(t, ts.db, "staff", false)

	var env envelope
	assert.Equal(t, http.StatusForbidden, ts.do(t, http.MethodPost, "/admin/api/login", "", `{"username":"staff","password":"`+testPassword+`"}`, &env))
}

func TestLoginMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/login", nil)
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "POST", resp.Header.Get("Allow"))
}

func TestSessionRoutesRejectOtherMethods(t *testing.T) {
	ts := newTestServer(t, nil)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/admin/api/me"},
		{http.MethodDelete, "/admin/api/me"},
		{http.MethodPut, "/admin/api/audit/1"},
		{http.MethodDelete, "/admin/api/audit/1"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		req.Header.Set("Authorization", "Bearer "+ts.token)
		resp, err := ts.app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, tc.method+" "+tc.path)
		assert.Equal(t, "GET", resp.Header.Get("Allow"), tc.method+" "+tc.path)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	ts := newTestServer(t, nil)

	assert.Equal(t, http.StatusOK, ts.admin(t, http.MethodGet, "/admin/api/me", "", nil))
	assert.Equal(t, http.StatusOK, ts.admin(t, http.MethodPost, "/admin/api/logout", "", nil))

	var env envelope
	assert.Equal(t, http.StatusUnauthorized, ts.admin(t, http.MethodGet, "/admin/api/themes", "", &env))
	assert.Equal(t, "Token has been revoked", env.Error.Message)
}

func TestResourcesRequireToken(t *testing.T) {
	ts := newTestServer(t, nil)

	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/admin/api/projects", "", "", nil))
	assert.Equal(t, http.StatusUnauthorized, ts.do(t, http.MethodGet, "/admin/api/projects", "not-a-token", "", nil))
}

func TestUnknownResource(t *testing.T) {
	ts := newTestServer(t, nil)

	var env envelope
	assert.Equal(t, http.StatusNotFound, ts.admin(t, http.MethodGet, "/admin/api/users", "", &env))
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestProjectCRUD(t *testing.T) {
	ts := newTestServer(t, nil)

	var env envelope
	status := ts.admin(t, http.MethodPost, "/admin/api/projects", `{"id":99,"title":"Ferry","objective":"Book tickets","description":"Booking site","reward":"Happy travellers","status":"in_progress"}`, &env)
	require.Equal(t, http.StatusCreated, status)

	var created model.Project
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEqual(t, uint(99), created.ID)
	assert.Equal(t, "Ferry", created.Title)

	path := "/admin/api/projects/" + itoa(created.ID)

	env = envelope{}
	require.Equal(t, http.StatusOK, ts.admin(t, http.MethodPut, path, `{"title":"Ferry v2","status":"completed"}`, &env))
	var updated model.Project
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Ferry v2", updated.Title)
	assert.Equal(t, "completed", updated.Status)
	assert.Equal(t, "Book tickets", updated.Objective)

	env = envelope{}
	require.Equal(t, http.StatusOK, ts.admin(t, http.MethodGet, path, "", &env))
	var fetched model.Project
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "Ferry v2", fetched.Title)

	require.Equal(t, http.StatusOK, ts.admin(t, http.MethodDelete, path, "", nil))
	assert.Equal(t, http.StatusNotFound, ts.admin(t, http.MethodGet, path, "", nil))
	assert.Equal(t, http.StatusNotFound, ts.admin(t, http.MethodDelete, path, "", nil))

	var actions []string
	ts.db.Model(&model.AdminAuditLog{}).Where("resource = ?", "projects").Order("id").Pluck("action", &actions)
	assert.Equal(t, []string{middleware.AuditCreate, middleware.AuditUpdate, middleware.AuditDelete}, actions)
}

func TestCreateValidation(t *testing.T) {
	ts := newTestServer(t, nil)

	var env envelope
	require.Equal(t, http.StatusUnprocessableEntity, ts.admin(t, http.MethodPost, "/admin/api/projects", `{"title":"x","status":"abandoned"}`, &env))
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "objective")
	assert.Contains(t, env.Error.Details, "status")

	assert.Equal(t, http.StatusBadRequest, ts.admin(t, http.MethodPost, "/admin/api/projects", `[1,2]`, nil))
	assert.Equal(t, http.StatusBadRequest, ts.admin(t, http.MethodGet, "/admin/api/projects/abc", "", nil))
}

func TestUpdateValidation(t *testing.T) {
	ts := newTestServer(t, nil)
	skill := model.Skill{Name: "Go", Category: model.SkillProgramming, Proficiency: 80}
	require.NoError(t, ts.db.Create(&skill).Error)

	var env envelope
	require.Equal(t, http.StatusUnprocessableEntity, ts.admin(t, http.MethodPut, "/admin/api/skills/"+itoa(skill.ID), `{"proficiency":150}`, &env))
	assert.Contains(t, env.Error.Details, "proficiency")

	var stored model.Skill
	require.NoError(t, ts.db.First(&stored, skill.ID).Error)
	assert.Equal(t, 80, stored.Proficiency)
}

func TestListSearchFilterAndPaging(t *testing.T) {
	ts := newTestServer(t, nil)
	for _, s := range []model.Skill{
		{Name: "Golang", Category: model.SkillProgramming, Proficiency: 90},
		{Name: "Python", Category: model.SkillProgramming, Proficiency: 70},
		{Name: "PostgreSQL", Category: model.SkillDatabase, Proficiency: 60},
		{Name: "Docker", Category: model.SkillTools, Proficiency: 50},
	} {
		require.NoError(t, ts.db.Create(&s).Error)
	}

	var env envelope
	require.Equal(t, http.StatusOK, ts.admin(t, http.MethodGet, "/admin/api/skills?search=GRES", "", &env))
	var skills []model.Skill
	require.NoError(t, json.Unmarshal(env.Data, &skills))
	require.Len(t, skills, 1)
	assert.Equal(t, "PostgreSQL", skills[0].Name)

	env = envelope{}
	require.Equal(t, http.StatusOK, ts.admin(t, http.MethodGet, "/admin/api/skills?category=programming", "", &env))
	skills = nil
	require.NoError(t, json.Unmarshal(env.Data, &skills))
	require.Len(t, skills, 2)
	assert.Equal(t, "Golang", skills[0].Name)

	env = envelope{}
	require.Equal(t, http.StatusOK, ts.admin(t, http.MethodGet, "/admin/api/skills?limit=3&page=2", "", &env))
	skills = nil
	require.NoError(t, json.Unmarshal(env.Data, &skills))
	assert.Len(t, skills, 1)
	assert.Equal(t, int64(4), env.Pagination.Total)
	assert.Equal(t, 2, env.Pagination.TotalPages)
	assert.Equal(t, 2, env.Pagination.CurrentPage)
}

func TestBooleanFilter(t *testing.T) {
	ts := newTestServer(t, nil)
	require.NoError(t, ts.db.Create(&model.SocialLink{Name: "GitHub", URL: "https://github.com/x", Order: 1, IsVisible: true}).Error)
	require.NoError(t, ts.db.Create(&model.SocialLink{Name: "Twitter", URL: "https://twitter.com/x", Order: 2, IsVisible: false}).Error)

	var env envelope
	require.Equal(t, http.StatusOK, ts.admin(t, http.MethodGet, "/admin/api/social-links?is_visible=false", "", &env))
	var links []model.SocialLink
	require.NoError(t, json.Unmarshal(env.Data, &links))
	require.Len(t, links, 1)
	assert.Equal(t, "Twitter", links[0].Name)
}

func TestPreferencesCannotBeCreatedOrDeleted(t *testing.T) {
	ts := newTestServer(t, nil)
	pref := model.DefaultPreference()
	require.NoError(t, ts.db.Create(&pref).Error)

	req := httptest.NewRequest(http.MethodPost, "/admin/api/preferences", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer "+ts.token)
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "GET", resp.Header.Get("Allow"))

	req = httptest.NewRequest(http.MethodDelete, "/admin/api/preferences/1", nil)
	req.Header.Set("Authorization", "Bearer "+ts.token)
	resp, err = ts.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "GET, PUT", resp.Header.Get("Allow"))

	var env envelope
	require.Equal(t, http.StatusOK, ts.admin(t, http.MethodPut, "/admin/api/preferences/1", `{"theme":"matrix"}`, &env))
	var stored model.UserPreference
	require.NoError(t, ts.db.First(&stored, model.PreferenceID).Error)
	assert.Equal(t, "matrix", stored.Theme)
	assert.Equal(t, model.DefaultVolume, stored.Volume)
}

func TestThemeChangesNotify(t *testing.T) {
	ts := newTestServer(t, nil)

	body := `{"key":"matrix","name":"Matrix","variables":{"--bg":"#000"}}`
	require.Equal(t, http.StatusCreated, ts.admin(t, http.MethodPost, "/admin/api/themes", body, nil))
	assert.Equal(t, 1, ts.themeEvents)

	var env envelope
	assert.Equal(t, http.StatusConflict, ts.admin(t, http.MethodPost, "/admin/api/themes", body, &env))
	assert.Equal(t, "CONFLICT", env.Error.Code)
	assert.Equal(t, 1, ts.themeEvents)

	var theme model.Theme
	require.NoError(t, ts.db.Where("key = ?", "matrix").First(&theme).Error)
	require.Equal(t, http.StatusOK, ts.admin(t, http.MethodPut, "/admin/api/themes/"+itoa(theme.ID), `{"variables":{"--fg":"#0f0"}}`, nil))
	assert.Equal(t, 2, ts.themeEvents)

	require.NoError(t, ts.db.First(&theme, theme.ID).Error)
	assert.Equal(t, "Matrix", theme.Name)
	assert.NotContains(t, theme.Variables, "--bg")
	assert.Equal(t, "#0f0", theme.Variables["--fg"])
}

func TestAuditLog(t *testing.T) {
	ts := newTestServer(t, nil)
	require.Equal(t, http.StatusCreated, ts.admin(t, http.MethodPost, "/admin/api/education", `{"degree":"B.Tech","institution":"State University","start_year":2019,"end_year":2023,"percentage":82}`, nil))

	var env envelope
	require.Equal(t, http.StatusOK, ts.admin(t, http.MethodGet, "/admin/api/audit?resource=education", "", &env))
	var logs []model.AdminAuditLog
	require.NoError(t, json.Unmarshal(env.Data, &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, middleware.AuditCreate, logs[0].Action)
	assert.NotZero(t, logs[0].AdminID)

	env = envelope{}
	require.Equal(t, http.StatusOK, ts.admin(t, http.MethodGet, "/admin/api/audit", "", &env))
	logs = nil
	require.NoError(t, json.Unmarshal(env.Data, &logs))
	require.Len(t, logs, 2)
	assert.Equal(t, "education", logs[0].Resource)
	assert.Equal(t, middleware.AuditLogin, logs[1].Action)

	assert.Equal(t, http.StatusOK, ts.admin(t, http.MethodGet, "/admin/api/audit/"+itoa(logs[0].ID), "", nil))
	assert.Equal(t, http.StatusNotFound, ts.admin(t, http.MethodGet, "/admin/api/audit/9999", "", nil))
}

func TestUploadsWithoutStorage(t *testing.T) {
	ts := newTestServer(t, nil)

	var env envelope
	req := multipartFile(t, "/admin/api/projects/1/image", ts.token, "shot.png", []byte("x"))
	assert.Equal(t, http.StatusServiceUnavailable, ts.send(t, req, &env))
	assert.Equal(t, "SERVICE_UNAVAILABLE", env.Error.Code)

	req = multipartFile(t, "/admin/api/profiles/1/resume", ts.token, "cv.pdf", pdftest.Minimal(1))
	assert.Equal(t, http.StatusServiceUnavailable, ts.send(t, req, nil))
}

func TestUploadProjectImage(t *testing.T) {
	store := &fakeStore{}
	ts := newTestServer(t, store)
	project := model.Project{Title: "Ferry", Objective: "o", Description: "d", Reward: "r"}
	require.NoError(t, ts.db.Create(&project).Error)
	path := "/admin/api/projects/" + itoa(project.ID) + "/image"

	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)

	var env envelope
	require.Equal(t, http.StatusOK, ts.send(t, multipartFile(t, path, ts.token, "Screen Shot.png", png), &env))
	require.Len(t, store.uploads, 1)
	assert.Equal(t, "image/png", store.uploads[0].contentType)
	assert.True(t, strings.HasPrefix(store.uploads[0].key, "projects/"+itoa(project.ID)+"/"))

	var stored model.Project
	require.NoError(t, ts.db.First(&stored, project.ID).Error)
	assert.Equal(t, "https://cdn.example.com/"+store.uploads[0].key, stored.ImageURL)

	assert.Equal(t, http.StatusBadRequest, ts.send(t, multipartFile(t, path, ts.token, "notes.txt", []byte("plain text")), nil))
	assert.Equal(t, http.StatusNotFound, ts.send(t, multipartFile(t, "/admin/api/projects/9999/image", ts.token, "a.png", png), nil))

	big := append(append([]byte{}, png...), bytes.Repeat([]byte{0}, MaxImageSize)...)
	assert.Equal(t, http.StatusBadRequest, ts.send(t, multipartFile(t, path, ts.token, "big.png", big), nil))
	assert.Len(t, store.uploads, 1)
}

func TestUploadResume(t *testing.T) {
	store := &fakeStore{}
	ts := newTestServer(t, store)
	profile := model.Profile{Name: "Player One"}
	require.NoError(t, ts.db.Create(&profile).Error)
	path := "/admin/api/profiles/" + itoa(profile.ID) + "/resume"

	require.Equal(t, http.StatusOK, ts.send(t, multipartFile(t, path, ts.token, "cv.pdf", pdftest.Minimal(2)), nil))
	require.Len(t, store.uploads, 1)
	assert.Equal(t, "application/pdf", store.uploads[0].contentType)

	var stored model.Profile
	require.NoError(t, ts.db.First(&stored, profile.ID).Error)
	assert.Equal(t, 2, stored.ResumePages)
	assert.NotEmpty(t, stored.ResumeURL)

	assert.Equal(t, http.StatusBadRequest, ts.send(t, multipartFile(t, path, ts.token, "cv.pdf", []byte("not a pdf")), nil))
	assert.Equal(t, http.StatusBadRequest, ts.send(t, multipartFile(t, path, ts.token, "cv.docx", pdftest.Minimal(1)), nil))
	assert.Equal(t, http.StatusBadRequest, ts.send(t, multipartFile(t, path, ts.token, "cv.pdf", pdftest.Minimal(21)), nil))

	var uploads int64
	ts.db.Model(&model.AdminAuditLog{}).Where("action = ?", middleware.AuditUpload).Count(&uploads)
	assert.Equal(t, int64(1), uploads)
}

func TestUploadStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("bucket unreachable")}
	ts := newTestServer(t, store)
	profile := model.Profile{Name: "Player One"}
	require.NoError(t, ts.db.Create(&profile).Error)

	req := multipartFile(t, "/admin/api/profiles/"+itoa(profile.ID)+"/resume", ts.token, "cv.pdf", pdftest.Minimal(1))
	assert.Equal(t, http.StatusInternalServerError, ts.send(t, req, nil))
}

func TestCronLogsAreReadOnly(t *testing.T) {
	ts := newTestServer(t, nil)
	entry := model.CronJobLog{JobName: "optimize_database", Status: model.CronStatusFailed, StartedAt: time.Now(), ErrorMsg: "disk full"}
	require.NoError(t, ts.db.Create(&entry).Error)

	var env envelope
	require.Equal(t, http.StatusOK, ts.admin(t, http.MethodGet, "/admin/api/cron-logs?status=failed&search=disk", "", &env))
	var logs []model.CronJobLog
	require.NoError(t, json.Unmarshal(env.Data, &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "optimize_database", logs[0].JobName)

	path := "/admin/api/cron-logs/" + itoa(entry.ID)
	assert.Equal(t, http.StatusOK, ts.admin(t, http.MethodGet, path, "", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, ts.admin(t, http.MethodPut, path, `{"status":"completed"}`, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, ts.admin(t, http.MethodDelete, path, "", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, ts.admin(t, http.MethodPost, "/admin/api/cron-logs", `{}`, nil))
}
