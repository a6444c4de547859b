package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/config"
	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/recommend"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/pkg/database"
)

// fixture wires the whole service layer over an in-memory database and
// a miniredis instance.
type fixture struct {
	db    *gorm.DB
	rdb   *redis.Client
	mr    *miniredis.Miniredis
	users repository.UserRepository

	tokens      *TokenService
	auth        AuthService
	profiles    ProfileService
	tweets      TweetService
	comments    CommentService
	engagement  EngagementService
	follows     FollowService
	resolver    *VisibilityResolver
	presenter   *TweetPresenter
	corpusCache *recommend.CorpusCache
}

func setup(t *testing.T) *fixture {
	t.Helper()
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
	resolver := NewVisibilityResolver(profileRepo, followRepo)
	tokens := NewTokenService(config.JWTConfig{
		Secret:     "test-secret",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}, rdb)

	return &fixture{
		db:          db,
		rdb:         rdb,
		mr:          mr,
		users:       userRepo,
		tokens:      tokens,
		auth:        NewAuthService(db, userRepo, tokens),
		profiles:    NewProfileService(profileRepo, resolver),
		tweets:      NewTweetService(tweetRepo, followRepo, userRepo, recommender),
		comments:    NewCommentService(commentRepo, tweetRepo),
		engagement:  NewEngagementService(tweetRepo, likeRepo, retweetRepo, corpusCache),
		follows:     NewFollowService(followRepo, userRepo, profileRepo),
		resolver:    resolver,
		presenter:   NewTweetPresenter(userRepo, profileRepo, likeRepo, retweetRepo, commentRepo, resolver),
		corpusCache: corpusCache,
	}
}

// addUser creates a user plus profile with the given visibility.
func (f *fixture) addUser(t *testing.T, username string, public bool) string {
	t.Helper()
	u := &model.User{ID: uuid.New().String(), Username: username, Email: username + "@example.com", Password: "p"}
	require.NoError(t, f.db.Create(u).Error)
	p := &model.Profile{ID: uuid.New().String(), UserID: u.ID, IsPublic: public}
	require.NoError(t, f.db.Create(p).Error)
	return u.ID
}

func (f *fixture) addTweet(t *testing.T, authorID, content string) *model.Tweet {
	t.Helper()
	tw, err := f.tweets.Create(context.Background(), authorID, content)
	require.NoError(t, err)
	return tw
}
