package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/seed"
	"study_tracker_backend/internal/service"
	"study_tracker_backend/pkg/database"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := testDB(t)
	router := gin.New()

	csharp := service.NewResourceService(
		repository.NewRepository[model.CSharpTopic](db, repository.Columns{}),
		service.TopicPolicy[model.CSharpTopic]("csharp", seed.CSharpTopics),
	)
	NewResourceController(csharp, "/api/csharp").Register(router.Group("/api/csharp"))

	systemDesign := service.NewSystemDesignService(
		repository.NewRepository[model.SystemDesignTopic](db, repository.Columns{}),
		service.SystemDesignPolicy(seed.SystemDesignTopics),
	)
	NewSystemDesignController(systemDesign, "/api/systemdesign").Register(router.Group("/api/systemdesign"))

	sessionPolicy := service.StudySessionPolicy()
	sessions := service.NewResourceService(
		repository.NewRepository[model.StudySession](db, sessionPolicy.Columns),
		sessionPolicy,
	)
	NewResourceController(sessions, "/api/studysessions").Register(router.Group("/api/studysessions"))

	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestCreate_ReturnsLocation(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, http.MethodPost, "/api/csharp", gin.H{
		"title":    "Boxing",
		"category": "Fundamentals",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decode[model.CSharpTopic](t, w)
	assert.NotZero(t, created.ID)
	assert.Equal(t, fmt.Sprintf("/api/csharp/%d", created.ID), w.Header().Get("Location"))
	assert.Equal(t, "Learning", created.Status)
	assert.False(t, created.IsFavorite)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreate_InvalidBody(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, http.MethodPost, "/api/csharp", gin.H{"category": "no title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/csharp", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGet(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, http.MethodPost, "/api/csharp", gin.H{"title": "Boxing"})
	created := decode[model.CSharpTopic](t, w)

	w = do(t, router, http.MethodGet, fmt.Sprintf("/api/csharp/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Boxing", decode[model.CSharpTopic](t, w).Title)

	w = do(t, router, http.MethodGet, "/api/csharp/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodGet, "/api/csharp/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdate(t *testing.T) {
	router := setupRouter(t)

	created := decode[model.CSharpTopic](t, do(t, router, http.MethodPost, "/api/csharp", gin.H{"title": "Boxing"}))
	path := fmt.Sprintf("/api/csharp/%d", created.ID)

	w := do(t, router, http.MethodPut, path, gin.H{"id": created.ID + 1, "title": "Changed"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPut, "/api/csharp/999", gin.H{"id": 999, "title": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodPut, path, gin.H{"id": created.ID, "title": "Changed", "version": 1})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// 同一版本号再次提交
	w = do(t, router, http.MethodPut, path, gin.H{"id": created.ID, "title": "Again", "version": 1})
	assert.Equal(t, http.StatusConflict, w.Code)

	got := decode[model.CSharpTopic](t, do(t, router, http.MethodGet, path, nil))
	assert.Equal(t, "Changed", got.Title)
	assert.NotNil(t, got.LastReviewedAt)
}

func TestDelete(t *testing.T) {
	router := setupRouter(t)

	created := decode[model.CSharpTopic](t, do(t, router, http.MethodPost, "/api/csharp", gin.H{"title": "Boxing"}))
	path := fmt.Sprintf("/api/csharp/%d", created.ID)

	assert.Equal(t, http.StatusNoContent, do(t, router, http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, path, nil).Code)
}

func TestToggleFavorite(t *testing.T) {
	router := setupRouter(t)

	created := decode[model.CSharpTopic](t, do(t, router, http.MethodPost, "/api/csharp", gin.H{"title": "Boxing"}))
	path := fmt.Sprintf("/api/csharp/%d/favorite", created.ID)

	w := do(t, router, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[model.CSharpTopic](t, w).IsFavorite)

	w = do(t, router, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[model.CSharpTopic](t, w).IsFavorite)

	w = do(t, router, http.MethodPost, "/api/csharp/999/favorite", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListFiltersAndCategories(t *testing.T) {
	router := setupRouter(t)

	for _, body := range []gin.H{
		{"title": "Generics", "category": "Types"},
		{"title": "Boxing", "category": "Fundamentals"},
		{"title": "Records", "category": "Types", "status": "Mastered"},
	} {
		require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/csharp", body).Code)
	}

	w := do(t, router, http.MethodGet, "/api/csharp?category=Types", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]model.CSharpTopic](t, w)
	require.Len(t, items, 2)
	assert.Equal(t, "Generics", items[0].Title)
	assert.Equal(t, "Records", items[1].Title)

	w = do(t, router, http.MethodGet, "/api/csharp?category=Types&status=Mastered", nil)
	assert.Len(t, decode[[]model.CSharpTopic](t, w), 1)

	w = do(t, router, http.MethodGet, "/api/csharp?category=Nope", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]model.CSharpTopic](t, w))

	w = do(t, router, http.MethodGet, "/api/csharp/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Fundamentals", "Types"}, decode[[]string](t, w))
}

func TestClearAndSeed(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, http.MethodPost, "/api/csharp/seed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	seeded := decode[map[string]int](t, w)
	assert.Equal(t, len(seed.CSharpTopics()), seeded["inserted"])

	w = do(t, router, http.MethodDelete, "/api/csharp/clear", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, seeded["inserted"], decode[map[string]int](t, w)["deleted"])

	w = do(t, router, http.MethodGet, "/api/csharp", nil)
	assert.Empty(t, decode[[]model.CSharpTopic](t, w))
}

func TestSystemDesignRoutes(t *testing.T) {
	router := setupRouter(t)

	// 系统设计不提供清空接口
	w := do(t, router, http.MethodDelete, "/api/systemdesign/clear", nil)
	assert.NotEqual(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodPost, "/api/systemdesign/seed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, router, http.MethodPost, "/api/systemdesign/seed", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	all := decode[[]model.SystemDesignTopic](t, do(t, router, http.MethodGet, "/api/systemdesign", nil))
	require.NotEmpty(t, all)
	target := all[len(all)-1]

	w = do(t, router, http.MethodPost, fmt.Sprintf("/api/systemdesign/%d/favorite", target.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/api/systemdesign?favorite=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	favorites := decode[[]model.SystemDesignTopic](t, w)
	require.Len(t, favorites, 1)
	assert.Equal(t, target.ID, favorites[0].ID)
	assert.True(t, favorites[0].IsFavorite)

	w = do(t, router, http.MethodGet, "/api/systemdesign?favorite=false", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.SystemDesignTopic](t, w), len(all)-1)

	w = do(t, router, http.MethodGet, "/api/systemdesign?favorite=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodGet, "/api/systemdesign/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.SystemDesignTopic](t, w), 1)

	w = do(t, router, http.MethodPost, fmt.Sprintf("/api/systemdesign/%d/review", target.ID), gin.H{
		"confidenceLevel": 4,
		"status":          "Reviewing",
	})
	require.Equal(t, http.StatusOK, w.Code)
	reviewed := decode[model.SystemDesignTopic](t, w)
	require.NotNil(t, reviewed.ConfidenceLevel)
	assert.Equal(t, 4, *reviewed.ConfidenceLevel)
	assert.Equal(t, target.Notes, reviewed.Notes)

	// 缺少 status 时拒绝，原状态保持不变
	w = do(t, router, http.MethodPost, fmt.Sprintf("/api/systemdesign/%d/review", target.ID), gin.H{"confidenceLevel": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	got := decode[model.SystemDesignTopic](t, do(t, router, http.MethodGet, fmt.Sprintf("/api/systemdesign/%d", target.ID), nil))
	assert.Equal(t, "Reviewing", got.Status)
	require.NotNil(t, got.ConfidenceLevel)
	assert.Equal(t, 4, *got.ConfidenceLevel)

	w = do(t, router, http.MethodPost, "/api/systemdesign/999/review", gin.H{"confidenceLevel": 1, "status": "Learning"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudySessionRoutes(t *testing.T) {
	router := setupRouter(t)

	for _, body := range []gin.H{
		{"title": "Read chapter 3", "type": "Reading", "sessionDate": "2024-03-01T10:00:00Z"},
		{"title": "Kata", "type": "Coding", "sessionDate": "2024-03-05T10:00:00Z"},
		{"title": "Read chapter 4", "type": "Reading", "sessionDate": "2024-03-09T10:00:00Z"},
	} {
		require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/studysessions", body).Code)
	}

	w := do(t, router, http.MethodGet, "/api/studysessions?from=2024-03-02&to=2024-03-10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]model.StudySession](t, w)
	require.Len(t, items, 2)
	assert.Equal(t, "Read chapter 4", items[0].Title)
	assert.Equal(t, "Kata", items[1].Title)

	w = do(t, router, http.MethodGet, "/api/studysessions?type=Reading", nil)
	assert.Len(t, decode[[]model.StudySession](t, w), 2)

	// 非 UTC 时间按实际时刻比较
	require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/api/studysessions", gin.H{
		"title": "Early review", "type": "Review", "sessionDate": "2024-03-20T10:00:00+08:00",
	}).Code)
	w = do(t, router, http.MethodGet, "/api/studysessions?from=2024-03-20T03:00:00Z", nil)
	assert.Empty(t, decode[[]model.StudySession](t, w))
	w = do(t, router, http.MethodGet, "/api/studysessions?from=2024-03-20T02:00:00Z&to=2024-03-20T05:00:00Z", nil)
	require.Len(t, decode[[]model.StudySession](t, w), 1)

	w = do(t, router, http.MethodGet, "/api/studysessions?from=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPost, fmt.Sprintf("/api/studysessions/%d/favorite", items[0].ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "sessions have no favorite route")

	w = do(t, router, http.MethodGet, "/api/studysessions/categories", nil)
	assert.Equal(t, []string{"Coding", "Reading", "Review"}, decode[[]string](t, w))

	w = do(t, router, http.MethodDelete, "/api/studysessions/clear", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, decode[map[string]int](t, w)["deleted"])
}
