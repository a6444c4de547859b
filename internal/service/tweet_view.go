package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

// latestCommentCount is how many comments ride along on a tweet view.
const latestCommentCount = 3

type UserView struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	ProfilePic string `json:"profile_pic,omitempty"`
}

type CommentView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type TweetView struct {
	ID            string        `json:"id"`
	Content       string        `json:"content"`
	CreatedAt     time.Time     `json:"created_at"`
	User          UserView      `json:"user"`
	LikesCount    int64         `json:"likes_count"`
	RetweetsCount int64         `json:"retweets_count"`
	Comments      []CommentView `json:"comments"`
}

// TweetPresenter assembles the serialized form of a tweet and applies
// the visibility resolver. A hidden tweet serializes as an empty
// object, never an error.
type TweetPresenter struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	likes    repository.LikeRepository
	retweets repository.RetweetRepository
	comments repository.CommentRepository
	resolver *VisibilityResolver
}

func NewTweetPresenter(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	likes repository.LikeRepository,
	retweets repository.RetweetRepository,
	comments repository.CommentRepository,
	resolver *VisibilityResolver,
) *TweetPresenter {
	return &TweetPresenter{users: users, profiles: profiles, likes: likes, retweets: retweets, comments: comments, resolver: resolver}
}

// Render builds the view for one tweet. view is nil when the viewer
// may not see the tweet.
func (p *TweetPresenter) Render(ctx context.Context, tweet *model.Tweet, viewerID string) (*TweetView, error) {
	visible, err := p.resolver.Visible(ctx, tweet, viewerID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, nil
	}

	author, err := p.users.GetByID(ctx, tweet.AuthorID)
	if err != nil {
		return nil, err
	}
	userView := UserView{ID: author.ID, Username: author.Username}
	if prof, err := p.profiles.GetByUserID(ctx, author.ID); err == nil {
		userView.ProfilePic = prof.ProfilePic
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	likeCount, err := p.likes.CountByTweet(ctx, tweet.ID)
	if err != nil {
		return nil, err
	}
	retweetCount, err := p.retweets.CountByTweet(ctx, tweet.ID)
	if err != nil {
		return nil, err
	}
	latest, err := p.comments.LatestByTweet(ctx, tweet.ID, latestCommentCount)
	if err != nil {
		return nil, err
	}
	commentViews := make([]CommentView, len(latest))
	for i, c := range latest {
		commentViews[i] = CommentView{ID: c.ID, UserID: c.AuthorID, Content: c.Content, CreatedAt: c.CreatedAt}
	}

	return &TweetView{
		ID:            tweet.ID,
		Content:       tweet.Content,
		CreatedAt:     tweet.CreatedAt,
		User:          userView,
		LikesCount:    likeCount,
		RetweetsCount: retweetCount,
		Comments:      commentViews,
	}, nil
}

// RenderList maps tweets to views, substituting an empty object for
// every tweet the viewer may not see.
func (p *TweetPresenter) RenderList(ctx context.Context, tweets []*model.Tweet, viewerID string) ([]interface{}, error) {
	out := make([]interface{}, 0, len(tweets))
	for _, t := range tweets {
		view, err := p.Render(ctx, t, viewerID)
		if err != nil {
			return nil, err
		}
		if view == nil {
			out = append(out, struct{}{})
			continue
		}
		out = append(out, view)
	}
	return out, nil
}
