package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/microblog/config"
	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/pkg/database"
)

// Seeds a demo dataset: N users (one in five private), a sparse follow
// graph, a handful of tweets per user and random likes/comments. Knobs
// via env: USERS, TWEETS_PER_USER, FOLLOWS_PER_USER.

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

var topics = []string{
	"cats are wonderful",
	"dogs are great",
	"I love cats",
	"going for a run this morning",
	"coffee first, everything else later",
	"reading a great book about distributed systems",
	"the weather is perfect today",
	"just shipped a new release",
}

func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	check(database.Migrate(db))

	users := envInt("USERS", 50)
	tweetsPer := envInt("TWEETS_PER_USER", 5)
	followsPer := envInt("FOLLOWS_PER_USER", 3)

	followRepo := repository.NewFollowRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	ctx := context.Background()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	hash := must(bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost))

	t0 := time.Now()

	ids := make([]string, users)
	batchUsers := make([]model.User, 0, users)
	batchProfiles := make([]model.Profile, 0, users)
	for i := 0; i < users; i++ {
		id := uuid.New().String()
		ids[i] = id
		name := fmt.Sprintf("user_%04d", i)
		batchUsers = append(batchUsers, model.User{
			ID:       id,
			Username: name,
			Email:    name + "@example.com",
			Password: string(hash),
		})
		batchProfiles = append(batchProfiles, model.Profile{
			ID:       uuid.New().String(),
			UserID:   id,
			Bio:      "seeded account " + name,
			IsPublic: i%5 != 0,
		})
	}
	check(db.CreateInBatches(&batchUsers, 500).Error)
	check(db.CreateInBatches(&batchProfiles, 500).Error)

	tweets := make([]model.Tweet, 0, users*tweetsPer)
	for _, authorID := range ids {
		for j := 0; j < tweetsPer; j++ {
			tweets = append(tweets, model.Tweet{
				ID:       uuid.New().String(),
				AuthorID: authorID,
				Content:  topics[rng.Intn(len(topics))],
			})
		}
	}
	check(db.CreateInBatches(&tweets, 500).Error)

	follows := 0
	for i, followerID := range ids {
		for j := 1; j <= followsPer; j++ {
			target := ids[(i+j)%users]
			if target == followerID {
				continue
			}
			// public targets accepted immediately, private ones stay pending
			accepted := (i+j)%users%5 != 0
			if _, err := followRepo.Toggle(ctx, followerID, target, accepted); err == nil {
				follows++
			}
		}
	}

	likes, comments := 0, 0
	for _, userID := range ids {
		for k := 0; k < 3; k++ {
			tw := tweets[rng.Intn(len(tweets))]
			if tw.AuthorID == userID {
				continue
			}
			if _, err := likeRepo.Toggle(ctx, userID, tw.ID); err == nil {
				likes++
			}
			if rng.Intn(4) == 0 {
				if _, err := commentRepo.Create(ctx, userID, tw.ID, "nice one"); err == nil {
					comments++
				}
			}
		}
	}

	fmt.Printf("seeded %d users, %d tweets, %d follows, %d likes, %d comments in %v\n",
		users, len(tweets), follows, likes, comments, time.Since(t0))
	fmt.Println("every account's password is \"password\"")
}
