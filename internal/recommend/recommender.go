package recommend

import (
	"context"

	"go.uber.org/zap"

	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/pkg/logger"
)

// Recommender picks, for a viewer, the other user whose liked-tweet
// corpus is lexically closest to the viewer's own. The caller surfaces
// that user's liked tweets as the recommendation feed.
type Recommender struct {
	users repository.UserRepository
	likes repository.LikeRepository
	cache *CorpusCache // optional
}

func NewRecommender(users repository.UserRepository, likes repository.LikeRepository, cache *CorpusCache) *Recommender {
	return &Recommender{users: users, likes: likes, cache: cache}
}

// MostSimilarUser returns the id of the most similar other user.
// ok is false when no recommendation is possible: the viewer has no
// likes, no other user has likes, or vectorization degenerates.
func (r *Recommender) MostSimilarUser(ctx context.Context, viewerID string) (id string, ok bool, err error) {
	viewerCorpus, err := r.corpus(ctx, viewerID)
	if err != nil {
		return "", false, err
	}
	if len(viewerCorpus) == 0 {
		return "", false, nil
	}

	otherIDs, err := r.users.ListOtherIDs(ctx, viewerID)
	if err != nil {
		return "", false, err
	}
	candidateIDs := make([]string, 0, len(otherIDs))
	corpora := make([][]string, 0, len(otherIDs))
	for _, uid := range otherIDs {
		c, err := r.corpus(ctx, uid)
		if err != nil {
			return "", false, err
		}
		if len(c) == 0 {
			continue
		}
		candidateIDs = append(candidateIDs, uid)
		corpora = append(corpora, c)
	}
	if len(candidateIDs) == 0 {
		return "", false, nil
	}

	// Vocabulary comes from the viewer's likes alone; candidates are
	// projected into it. A degenerate vocabulary means no
	// recommendation, not an error.
	var vec Vectorizer
	if err := vec.Fit(viewerCorpus); err != nil {
		logger.Debug("recommendation vectorization failed",
			zap.String("viewer", viewerID), zap.Error(err))
		return "", false, nil
	}
	viewerVec := vec.CorpusVector(viewerCorpus)

	best, bestScore := -1, 0.0
	for i, corpus := range corpora {
		// one aggregate vector per candidate corpus; first maximum
		// wins on ties
		score := Cosine(viewerVec, vec.CorpusVector(corpus))
		if best == -1 || score > bestScore {
			best, bestScore = i, score
		}
	}
	return candidateIDs[best], true, nil
}

func (r *Recommender) corpus(ctx context.Context, userID string) ([]string, error) {
	if r.cache != nil {
		if c, ok := r.cache.Get(ctx, userID); ok {
			return c, nil
		}
	}
	c, err := r.likes.ListLikedContents(ctx, userID)
	if err != nil {
		return nil, err
	}
	if r.cache != nil {
		r.cache.Set(ctx, userID, c)
	}
	return c, nil
}
