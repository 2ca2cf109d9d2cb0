package admin

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/utils/middleware"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
	"github.com/sahilchouksey/pixel-portfolio/utils/validation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Fields a client may never overwrite through PUT.
var immutableFields = []string{"id", "created_at", "updated_at", "created_date"}

// TableConfig describes how a model is exposed in the admin console
type TableConfig struct {
	Name     string   // URL segment, e.g. "social-links"
	Search   []string // columns matched case-insensitively by ?search=
	Filters  []string // columns usable as ?column=value equality filters
	Order    string   // default ORDER BY
	NoCreate bool
	NoUpdate bool
	NoDelete bool
	OnChange func(ctx context.Context) // called after every successful mutation
}

// Resource is one admin-managed table
type Resource interface {
	Name() string
	Allowed(item bool) []string
	List(c *fiber.Ctx) error
	Get(c *fiber.Ctx, id uint) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx, id uint) error
	Delete(c *fiber.Ctx, id uint) error
}

// Table exposes CRUD over a GORM model T
type Table[T any] struct {
	db        *gorm.DB
	validator *validation.Validator
	cfg       TableConfig
}

// NewTable creates an admin resource for model T
func NewTable[T any](db *gorm.DB, cfg TableConfig) *Table[T] {
	return &Table[T]{
		db:        db,
		validator: validation.NewValidator(),
		cfg:       cfg,
	}
}

// Name returns the URL segment of the resource
func (t *Table[T]) Name() string {
	return t.cfg.Name
}

// Allowed lists the methods accepted on the collection or on a single row
func (t *Table[T]) Allowed(item bool) []string {
	if item {
		methods := []string{fiber.MethodGet}
		if !t.cfg.NoUpdate {
			methods = append(methods, fiber.MethodPut)
		}
		if !t.cfg.NoDelete {
			methods = append(methods, fiber.MethodDelete)
		}
		return methods
	}
	methods := []string{fiber.MethodGet}
	if !t.cfg.NoCreate {
		methods = append(methods, fiber.MethodPost)
	}
	return methods
}

// List handles GET /admin/api/:resource
func (t *Table[T]) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	meta := response.CalculatePagination(c.QueryInt("page", 1), c.QueryInt("limit", 10), 0)

	query := t.db.WithContext(ctx).Model(new(T))

	if search := strings.TrimSpace(c.Query("search")); search != "" && len(t.cfg.Search) > 0 {
		pattern := "%" + strings.ToLower(search) + "%"
		group := t.db.Session(&gorm.Session{NewDB: true})
		for i, col := range t.cfg.Search {
			if i == 0 {
				group = group.Where("LOWER(?) LIKE ?", clause.Column{Name: col}, pattern)
			} else {
				group = group.Or("LOWER(?) LIKE ?", clause.Column{Name: col}, pattern)
			}
		}
		query = query.Where(group)
	}

	for _, col := range t.cfg.Filters {
		raw := c.Query(col)
		if raw == "" {
			continue
		}
		var value interface{} = raw
		switch raw {
		case "true":
			value = true
		case "false":
			value = false
		}
		query = query.Where(clause.Eq{Column: clause.Column{Name: col}, Value: value})
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count "+t.cfg.Name)
	}

	items := make([]T, 0)
	if t.cfg.Order != "" {
		query = query.Order(t.cfg.Order)
	}
	if err := query.Offset((meta.CurrentPage - 1) * meta.PerPage).Limit(meta.PerPage).Find(&items).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch "+t.cfg.Name)
	}

	return response.Paginated(c, items, response.CalculatePagination(meta.CurrentPage, meta.PerPage, total))
}

// Get handles GET /admin/api/:resource/:id
func (t *Table[T]) Get(c *fiber.Ctx, id uint) error {
	item, err := t.find(c.UserContext(), id)
	if err != nil {
		return t.lookupError(c, err)
	}
	return response.Success(c, item)
}

// Create handles POST /admin/api/:resource
func (t *Table[T]) Create(c *fiber.Ctx) error {
	var item T
	if err := json.Unmarshal(c.Body(), &item); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	setPrimaryKey(&item, 0)

	if err := t.validator.ValidateStruct(item); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	if err := t.db.WithContext(c.UserContext()).Create(&item).Error; err != nil {
		return t.writeError(c, err, "create")
	}

	t.audit(c, middleware.AuditEntry{
		Action:     middleware.AuditCreate,
		ResourceID: primaryKey(&item),
		NewValue:   item,
	})
	t.changed(c)

	return response.Created(c, item)
}

// Update handles PUT /admin/api/:resource/:id. Fields missing from the
// body keep their stored value.
func (t *Table[T]) Update(c *fiber.Ctx, id uint) error {
	existing, err := t.find(c.UserContext(), id)
	if err != nil {
		return t.lookupError(c, err)
	}

	var patch map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	for _, field := range immutableFields {
		delete(patch, field)
	}

	before, err := json.Marshal(existing)
	if err != nil {
		return response.InternalServerError(c, "Failed to update "+t.cfg.Name)
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(before, &merged); err != nil {
		return response.InternalServerError(c, "Failed to update "+t.cfg.Name)
	}
	for k, v := range patch {
		merged[k] = v
	}

	body, err := json.Marshal(merged)
	if err != nil {
		return response.InternalServerError(c, "Failed to update "+t.cfg.Name)
	}
	var updated T
	if err := json.Unmarshal(body, &updated); err != nil {
		return response.BadRequest(c, "Invalid field value")
	}
	setPrimaryKey(&updated, id)

	if err := t.validator.ValidateStruct(updated); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	if err := t.db.WithContext(c.UserContext()).Save(&updated).Error; err != nil {
		return t.writeError(c, err, "update")
	}

	t.audit(c, middleware.AuditEntry{
		Action:     middleware.AuditUpdate,
		ResourceID: id,
		OldValue:   json.RawMessage(before),
		NewValue:   updated,
	})
	t.changed(c)

	return response.Success(c, updated)
}

// Delete handles DELETE /admin/api/:resource/:id
func (t *Table[T]) Delete(c *fiber.Ctx, id uint) error {
	existing, err := t.find(c.UserContext(), id)
	if err != nil {
		return t.lookupError(c, err)
	}

	if err := t.db.WithContext(c.UserContext()).Delete(existing).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete "+t.cfg.Name)
	}

	t.audit(c, middleware.AuditEntry{
		Action:     middleware.AuditDelete,
		ResourceID: id,
		OldValue:   existing,
	})
	t.changed(c)

	return response.SuccessWithMessage(c, "Deleted successfully", nil)
}

func (t *Table[T]) find(ctx context.Context, id uint) (*T, error) {
	var item T
	if err := t.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (t *Table[T]) lookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NotFound(c, "Record not found")
	}
	return response.InternalServerError(c, "Failed to fetch "+t.cfg.Name)
}

func (t *Table[T]) writeError(c *fiber.Ctx, err error, op string) error {
	if isDuplicateKey(err) {
		return response.Conflict(c, "A record with the same unique value already exists")
	}
	return response.InternalServerError(c, "Failed to "+op+" "+t.cfg.Name)
}

func (t *Table[T]) audit(c *fiber.Ctx, entry middleware.AuditEntry) {
	entry.Resource = t.cfg.Name
	if err := middleware.RecordAudit(t.db, c, entry); err != nil {
		logAuditFailure(entry, err)
	}
}

func (t *Table[T]) changed(c *fiber.Ctx) {
	if t.cfg.OnChange != nil {
		t.cfg.OnChange(c.UserContext())
	}
}

// isDuplicateKey recognizes unique violations. PostgreSQL errors are
// translated by GORM; the pure Go SQLite driver is matched by message.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

func primaryKey(v interface{}) uint {
	field := reflect.Indirect(reflect.ValueOf(v)).FieldByName("ID")
	if !field.IsValid() || field.Kind() != reflect.Uint {
		return 0
	}
	return uint(field.Uint())
}

func setPrimaryKey(v interface{}, id uint) {
	field := reflect.Indirect(reflect.ValueOf(v)).FieldByName("ID")
	if field.IsValid() && field.CanSet() && field.Kind() == reflect.Uint {
		field.SetUint(uint64(id))
	}
}

// Registry routes /admin/api/:resource requests to the matching table
type Registry struct {
	resources map[string]Resource
}

// NewRegistry creates a registry holding the given resources
func NewRegistry(resources ...Resource) *Registry {
	r := &Registry{resources: make(map[string]Resource, len(resources))}
	for _, res := range resources {
		r.resources[res.Name()] = res
	}
	return r
}

// Names lists the registered resource names
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	return names
}

// Collection handles /admin/api/:resource
func (r *Registry) Collection(c *fiber.Ctx) error {
	res, ok := r.resources[c.Params("resource")]
	if !ok {
		return response.NotFound(c, "Unknown resource")
	}

	switch c.Method() {
	case fiber.MethodGet:
		return res.List(c)
	case fiber.MethodPost:
		if slices.Contains(res.Allowed(false), fiber.MethodPost) {
			return res.Create(c)
		}
	}
	return methodNotAllowed(c, res.Allowed(false))
}

// Item handles /admin/api/:resource/:id
func (r *Registry) Item(c *fiber.Ctx) error {
	res, ok := r.resources[c.Params("resource")]
	if !ok {
		return response.NotFound(c, "Unknown resource")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return response.BadRequest(c, "Invalid ID")
	}

	switch c.Method() {
	case fiber.MethodGet:
		return res.Get(c, uint(id))
	case fiber.MethodPut:
		if slices.Contains(res.Allowed(true), fiber.MethodPut) {
			return res.Update(c, uint(id))
		}
	case fiber.MethodDelete:
		if slices.Contains(res.Allowed(true), fiber.MethodDelete) {
			return res.Delete(c, uint(id))
		}
	}
	return methodNotAllowed(c, res.Allowed(true))
}

func methodNotAllowed(c *fiber.Ctx, allowed []string) error {
	c.Set(fiber.HeaderAllow, strings.Join(allowed, ", "))
	return response.MethodNotSupported(c, "Method not allowed")
}
