package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/config"
	"github.com/d60-Lab/microblog/internal/api/handler"
	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/internal/service"
)

type apiEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupAPI(t *testing.T) *apiEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Tweet{},
		&model.Media{},
		&model.Like{},
		&model.Follow{},
	))

	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.Feed.DefaultLimit = 10
	cfg.Feed.MaxLimit = 100
	cfg.Media.UploadDir = t.TempDir()
	cfg.Media.MaxSize = 10 << 20

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	mediaRepo := repository.NewMediaRepository(db)

	h := handler.New(
		service.NewTweetService(tweetRepo, mediaRepo, likeRepo),
		service.NewFeedService(tweetRepo, followRepo, cfg.Feed.DefaultLimit, cfg.Feed.MaxLimit),
		service.NewRelationshipService(followRepo, userRepo, nil),
		service.NewProfileService(userRepo, followRepo, nil),
		service.NewUserService(userRepo),
		service.NewMediaService(mediaRepo, cfg.Media.UploadDir, cfg.Media.MaxSize),
	)
	return &apiEnv{db: db, router: NewRouter(cfg, h, service.NewAuthService(userRepo))}
}

func (e *apiEnv) user(t *testing.T, name, key string) *model.User {
	t.Helper()
	u := &model.User{Name: name, APIKey: key}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *apiEnv) do(t *testing.T, method, path, apiKey string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if apiKey != "" {
		req.Header.Set("api-key", apiKey)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *apiEnv) doJSON(t *testing.T, method, path, apiKey string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	return e.do(t, method, path, apiKey, body, "application/json")
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m), "body: %s", w.Body.String())
	return m
}

func TestHealthNoAuth(t *testing.T) {
	env := setupAPI(t)
	w := env.do(t, http.MethodGet, "/api/health", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "healthy", decode(t, w)["status"])
}

func TestAuthRequired(t *testing.T) {
	env := setupAPI(t)
	env.user(t, "A", "a")

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/tweets"},
		{http.MethodPost, "/api/tweets"},
		{http.MethodGet, "/api/users/me"},
		{http.MethodPost, "/api/medias"},
	} {
		w := env.do(t, tc.method, tc.path, "", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
		body := decode(t, w)
		require.Equal(t, false, body["result"])
		require.Equal(t, "Authentication", body["error_type"])
	}

	w := env.do(t, http.MethodGet, "/api/tweets", "nope", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTweetLifecycle(t *testing.T) {
	env := setupAPI(t)
	a := env.user(t, "A", "a")
	b := env.user(t, "B", "b")

	// A 关注 B，B 发推
	w := env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", b.ID), "a", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/tweets", "b", gin.H{"tweet_data": "hello"})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode(t, w)
	require.Equal(t, true, created["result"])
	tweetID := uint(created["tweet_id"].(float64))

	// A 的 feed 包含该推文，作者与空点赞列表
	w = env.do(t, http.MethodGet, "/api/tweets", "a", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	feed := decode(t, w)
	require.EqualValues(t, 1, feed["total"])
	tweets := feed["tweets"].([]any)
	require.Len(t, tweets, 1)
	first := tweets[0].(map[string]any)
	require.Equal(t, "hello", first["content"])
	author := first["author"].(map[string]any)
	require.EqualValues(t, b.ID, author["id"])
	require.Equal(t, "B", author["name"])
	require.Empty(t, first["likes"])

	// A 点赞后 likes 列表正好一条
	w = env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/tweets/%d/likes", tweetID), "a", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodGet, "/api/tweets", "a", nil, "")
	first = decode(t, w)["tweets"].([]any)[0].(map[string]any)
	likes := first["likes"].([]any)
	require.Len(t, likes, 1)
	like := likes[0].(map[string]any)
	require.EqualValues(t, a.ID, like["user_id"])
	require.Equal(t, "A", like["name"])

	// 非作者删除：403 且推文保留
	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/tweets/%d", tweetID), "a", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "Authorization", decode(t, w)["error_type"])

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/tweets/%d", tweetID), "b", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// 删除后从 feed 消失
	w = env.do(t, http.MethodGet, "/api/tweets", "a", nil, "")
	require.EqualValues(t, 0, decode(t, w)["total"])

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/tweets/%d", tweetID), "b", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTweetValidation(t *testing.T) {
	env := setupAPI(t)
	env.user(t, "A", "a")

	w := env.doJSON(t, http.MethodPost, "/api/tweets", "a", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Validation", decode(t, w)["error_type"])

	w = env.doJSON(t, http.MethodPost, "/api/tweets", "a", gin.H{"tweet_data": strings.Repeat("x", 281)})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFollowEndpoints(t *testing.T) {
	env := setupAPI(t)
	a := env.user(t, "A", "a")
	b := env.user(t, "B", "b")

	w := env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", a.ID), "a", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodPost, "/api/users/999/follow", "a", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", b.ID), "a", nil)
	require.Equal(t, http.StatusOK, w.Code)
	// 重复关注、重复取关都幂等成功
	w = env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", b.ID), "a", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/users/%d/follow", b.ID), "a", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/users/%d/follow", b.ID), "a", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestProfileEndpoints(t *testing.T) {
	env := setupAPI(t)
	a := env.user(t, "A", "a")
	b := env.user(t, "B", "b")

	w := env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", b.ID), "a", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/users/me", "a", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	me := decode(t, w)["user"].(map[string]any)
	require.EqualValues(t, a.ID, me["id"])
	require.Len(t, me["following"].([]any), 1)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d", b.ID), "a", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	other := decode(t, w)["user"].(map[string]any)
	require.Equal(t, "B", other["name"])
	require.Len(t, other["followers"].([]any), 1)

	w = env.do(t, http.MethodGet, "/api/users/999", "a", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMediaUploadAndFetch(t *testing.T) {
	env := setupAPI(t)
	env.user(t, "A", "a")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "cat.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := env.do(t, http.MethodPost, "/api/medias", "a", &buf, mw.FormDataContentType())
	require.Equal(t, http.StatusOK, w.Code)
	mediaID := uint(decode(t, w)["media_id"].(float64))

	// 读取无需鉴权
	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/media/%d", mediaID), "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "png-bytes", w.Body.String())

	w = env.do(t, http.MethodGet, "/api/media/999", "", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	// 缺 file 字段
	w = env.do(t, http.MethodPost, "/api/medias", "a", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRotateAPIKeyEndpoint(t *testing.T) {
	env := setupAPI(t)
	a := env.user(t, "A", "a_key")
	env.user(t, "B", "b_key")

	w := env.doJSON(t, http.MethodPut, "/api/users/me/api-key", "a_key", gin.H{"new_api_key": "b_key"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "Conflict", decode(t, w)["error_type"])
	var fresh model.User
	require.NoError(t, env.db.First(&fresh, a.ID).Error)
	require.Equal(t, "a_key", fresh.APIKey)

	w = env.doJSON(t, http.MethodPut, "/api/users/me/api-key", "a_key", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.doJSON(t, http.MethodPut, "/api/users/me/api-key", "a_key", gin.H{"new_api_key": "rotated"})
	require.Equal(t, http.StatusOK, w.Code)
	// 旧 key 失效，新 key 生效
	w = env.do(t, http.MethodGet, "/api/users/me", "a_key", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	w = env.do(t, http.MethodGet, "/api/users/me", "rotated", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestFeedPaginationStable(t *testing.T) {
	env := setupAPI(t)
	env.user(t, "A", "a")

	for i := 0; i < 12; i++ {
		w := env.doJSON(t, http.MethodPost, "/api/tweets", "a", gin.H{"tweet_data": fmt.Sprintf("tweet %d", i)})
		require.Equal(t, http.StatusOK, w.Code)
	}

	seen := map[float64]bool{}
	for _, offset := range []int{0, 5, 10} {
		w := env.do(t, http.MethodGet, fmt.Sprintf("/api/tweets?limit=5&offset=%d", offset), "a", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		require.EqualValues(t, 12, body["total"])
		require.EqualValues(t, 5, body["limit"])
		require.EqualValues(t, offset, body["offset"])
		for _, item := range body["tweets"].([]any) {
			id := item.(map[string]any)["id"].(float64)
			require.False(t, seen[id], "tweet %v returned twice", id)
			seen[id] = true
		}
	}
	require.Len(t, seen, 12)
}
