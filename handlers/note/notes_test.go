package note

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/database/dbtest"
	"github.com/sahilchouksey/pixel-portfolio/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type listResponse struct {
	Results []model.Note `json:"results"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := dbtest.NewDB(t)
	h := NewNoteHandler(db)

	app := fiber.New()
	app.Get("/api/notes/recycle", h.ListRecycled)
	app.Delete("/api/notes/recycle", h.EmptyRecycled)
	app.Get("/api/notes", h.ListNotes)
	app.Post("/api/notes", h.CreateNote)
	app.Patch("/api/notes", h.UpdateNote)
	app.Delete("/api/notes", h.DeleteNote)
	return app, db
}

func call(t *testing.T, app *fiber.App, method, path, body string, out interface{}) int {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func createNote(t *testing.T, app *fiber.App, body string) model.Note {
	t.Helper()
	var n model.Note
	require.Equal(t, http.StatusOK, call(t, app, http.MethodPost, "/api/notes/", body, &n))
	return n
}

func TestCreateDefaults(t *testing.T) {
	app, _ := setupApp(t)

	n := createNote(t, app, `{}`)
	assert.Equal(t, "Untitled", n.Title)
	assert.Equal(t, "", n.Content)
	assert.False(t, n.IsDeleted)

	n = createNote(t, app, `{"title":"  Shopping  ","content":"eggs"}`)
	assert.Equal(t, "Shopping", n.Title)
	assert.Equal(t, "eggs", n.Content)
}

func TestUpdate(t *testing.T) {
	app, _ := setupApp(t)
	n := createNote(t, app, `{"title":"Draft"}`)

	var updated model.Note
	status := call(t, app, http.MethodPatch, "/api/notes/", fmt.Sprintf(`{"id":%d,"content":"hello"}`, n.ID), &updated)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Draft", updated.Title)
	assert.Equal(t, "hello", updated.Content)

	var out map[string]interface{}
	status = call(t, app, http.MethodPatch, "/api/notes/", `{"id":999,"title":"x"}`, &out)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Note not found", out["error"])
}

func TestListExcludesDeleted(t *testing.T) {
	app, _ := setupApp(t)
	keep := createNote(t, app, `{"title":"keep"}`)
	gone := createNote(t, app, `{"title":"gone"}`)

	var patched model.Note
	call(t, app, http.MethodPatch, "/api/notes/", fmt.Sprintf(`{"id":%d,"is_deleted":true}`, gone.ID), &patched)
	assert.True(t, patched.IsDeleted)
	require.NotNil(t, patched.DeletedOn)

	var list listResponse
	call(t, app, http.MethodGet, "/api/notes/", "", &list)
	require.Len(t, list.Results, 1)
	assert.Equal(t, keep.ID, list.Results[0].ID)
	for _, n := range list.Results {
		assert.False(t, n.IsDeleted)
	}
}

func TestListNewestUpdatedFirst(t *testing.T) {
	app, db := setupApp(t)
	older := createNote(t, app, `{"title":"older"}`)
	newer := createNote(t, app, `{"title":"newer"}`)
	require.NoError(t, db.Model(&model.Note{}).Where("id = ?", older.ID).
		UpdateColumn("updated_at", time.Now().Add(time.Hour)).Error)

	var list listResponse
	call(t, app, http.MethodGet, "/api/notes/", "", &list)
	require.Len(t, list.Results, 2)
	assert.Equal(t, older.ID, list.Results[0].ID)
	assert.Equal(t, newer.ID, list.Results[1].ID)
}

func TestDeleteSoftDeletesIntoRecycleBin(t *testing.T) {
	app, db := setupApp(t)
	n := createNote(t, app, `{"title":"trash me"}`)

	var out map[string]interface{}
	status := call(t, app, http.MethodDelete, "/api/notes/", fmt.Sprintf(`{"id":%d}`, n.ID), &out)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, out["ok"])

	var stored model.Note
	require.NoError(t, db.First(&stored, n.ID).Error)
	assert.True(t, stored.IsDeleted)
	assert.NotNil(t, stored.DeletedOn)

	var bin listResponse
	call(t, app, http.MethodGet, "/api/notes/recycle/", "", &bin)
	require.Len(t, bin.Results, 1)
	assert.Equal(t, n.ID, bin.Results[0].ID)

	// restore
	var restored model.Note
	call(t, app, http.MethodPatch, "/api/notes/", fmt.Sprintf(`{"id":%d,"is_deleted":false}`, n.ID), &restored)
	assert.False(t, restored.IsDeleted)
	assert.Nil(t, restored.DeletedOn)
}

func TestDeletePurge(t *testing.T) {
	app, db := setupApp(t)
	n := createNote(t, app, `{}`)

	call(t, app, http.MethodDelete, "/api/notes/", fmt.Sprintf(`{"id":%d,"purge":true}`, n.ID), nil)

	var count int64
	require.NoError(t, db.Model(&model.Note{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteUnknownAndInvalid(t *testing.T) {
	app, _ := setupApp(t)

	var out map[string]interface{}
	assert.Equal(t, http.StatusOK, call(t, app, http.MethodDelete, "/api/notes/", `{"id":4242}`, &out))
	assert.Equal(t, true, out["ok"])

	out = nil
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodDelete, "/api/notes/", `{"id":"nope"}`, &out))
	assert.Equal(t, "Invalid request", out["error"])
}

func TestEmptyRecycleBin(t *testing.T) {
	app, db := setupApp(t)
	live := createNote(t, app, `{"title":"live"}`)
	for i := 0; i < 3; i++ {
		n := createNote(t, app, `{}`)
		call(t, app, http.MethodDelete, "/api/notes/", fmt.Sprintf(`{"id":%d}`, n.ID), nil)
	}

	var bin listResponse
	call(t, app, http.MethodGet, "/api/notes/recycle/", "", &bin)
	require.Len(t, bin.Results, 3)

	// purging one
	var out map[string]interface{}
	call(t, app, http.MethodDelete, "/api/notes/recycle/", fmt.Sprintf(`{"id":%d}`, bin.Results[0].ID), &out)
	assert.Equal(t, float64(1), out["purged"])

	// live notes are never purged from the bin endpoint
	out = nil
	call(t, app, http.MethodDelete, "/api/notes/recycle/", fmt.Sprintf(`{"id":%d}`, live.ID), &out)
	assert.Equal(t, float64(0), out["purged"])

	out = nil
	call(t, app, http.MethodDelete, "/api/notes/recycle/", "", &out)
	assert.Equal(t, true, out["ok"])
	assert.Equal(t, float64(2), out["purged"])

	var remaining []model.Note
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, live.ID, remaining[0].ID)
}
