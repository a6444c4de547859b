package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/config"
	"github.com/d60-Lab/microblog/internal/recommend"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/database"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	retweetRepo := repository.NewRetweetRepository(db)
	followRepo := repository.NewFollowRepository(db)

	corpusCache := recommend.NewCorpusCache(rdb, time.Minute)
	recommender := recommend.NewRecommender(userRepo, likeRepo, corpusCache)
	resolver := service.NewVisibilityResolver(profileRepo, followRepo)
	tokens := service.NewTokenService(config.JWTConfig{
		Secret: "test-secret", AccessTTL: time.Minute, RefreshTTL: time.Hour,
	}, rdb)

	h := New(
		service.NewAuthService(db, userRepo, tokens),
		service.NewProfileService(profileRepo, resolver),
		service.NewTweetService(tweetRepo, followRepo, userRepo, recommender),
		service.NewCommentService(commentRepo, tweetRepo),
		service.NewEngagementService(tweetRepo, likeRepo, retweetRepo, corpusCache),
		service.NewFollowService(followRepo, userRepo, profileRepo),
		service.NewTweetPresenter(userRepo, profileRepo, likeRepo, retweetRepo, commentRepo, resolver),
		tokens,
	)

	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/register", "", gin.H{
		"username":         username,
		"email":            username + "@example.com",
		"password":         "hunter2hunter2",
		"confirm_password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/v1/login", "", gin.H{
		"username": username,
		"password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Access string `json:"access"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Access)
	return resp.Data.Access
}

func TestAuthRequired(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/tweets", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterPasswordMismatchHTTP(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/register", "", gin.H{
		"username":         "alice",
		"email":            "alice@example.com",
		"password":         "hunter2hunter2",
		"confirm_password": "something-else",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTweetLifecycleOverHTTP(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/api/v1/tweets/create", token, gin.H{"content": "hello world"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, "/api/v1/tweets/"+created.Data.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// like toggle on then off
	w = doJSON(t, r, http.MethodPost, "/api/v1/like/"+created.Data.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"liked":true`)
	w = doJSON(t, r, http.MethodPost, "/api/v1/like/"+created.Data.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"liked":false`)

	// duplicate retweet conflicts
	w = doJSON(t, r, http.MethodPost, "/api/v1/retweet", token, gin.H{"tweet_id": created.Data.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/v1/retweet", token, gin.H{"tweet_id": created.Data.ID})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/tweets/"+created.Data.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestOwnerOnlyMutationHTTP(t *testing.T) {
	r := setupRouter(t)
	alice := registerAndLogin(t, r, "alice")
	bob := registerAndLogin(t, r, "bob")

	w := doJSON(t, r, http.MethodPost, "/api/v1/tweets/create", alice, gin.H{"content": "mine"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPut, "/api/v1/tweets/"+created.Data.ID, bob, gin.H{"content": "stolen"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/v1/tweets/"+created.Data.ID, bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSelfFollowRejectedHTTP(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "alice")

	// resolve own id via profile
	w := doJSON(t, r, http.MethodGet, "/api/v1/my-profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var prof struct {
		Data struct {
			UserID string `json:"user_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prof))

	w = doJSON(t, r, http.MethodPost, "/api/v1/follow/"+prof.Data.UserID, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPageSizeClamp(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "alice")

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/v1/tweets/create", token, gin.H{"content": fmt.Sprintf("tweet %d", i)})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/tweets?page_size=150", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Count    int64 `json:"count"`
			PageSize int   `json:"page_size"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 100, resp.Data.PageSize)
	assert.EqualValues(t, 3, resp.Data.Count)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/api/v1/logout", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/tweets", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHiddenTweetSerializesEmpty(t *testing.T) {
	r := setupRouter(t)
	alice := registerAndLogin(t, r, "alice")
	bob := registerAndLogin(t, r, "bob")

	// alice goes private, then tweets
	w := doJSON(t, r, http.MethodPut, "/api/v1/my-profile", alice, gin.H{"is_public": false})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/v1/tweets/create", alice, gin.H{"content": "secret"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, "/api/v1/tweets/"+created.Data.ID, bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.JSONEq(t, "{}", string(resp.Data))
}
