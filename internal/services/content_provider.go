package services

import (
	"context"
	"log"
	"math"
	"strings"

	"github.com/phoebe497/Travel-Recommendation/internal/models/db_models"
	"github.com/phoebe497/Travel-Recommendation/internal/planner"
	"github.com/phoebe497/Travel-Recommendation/internal/repositories"
	"github.com/phoebe497/Travel-Recommendation/pkg/utils"
)

type contentScoreProvider struct {
	embeddings repositories.EmbeddingRepository
	client     utils.EmbeddingClientInterface
}

func NewContentScoreProvider(
	embeddings repositories.EmbeddingRepository,
	client utils.EmbeddingClientInterface,
) ContentScoreProvider {
	return &contentScoreProvider{
		embeddings: embeddings,
		client:     client,
	}
}

// Scores builds a taste profile from the traveler's liked places (or, for
// new users, their interest keywords) and ranks every candidate by cosine
// similarity, rescaled to [0, 1]. A nil map means no content signal.
func (p *contentScoreProvider) Scores(ctx context.Context, pref planner.UserPreference, places []planner.Place) (planner.ScoreMap, error) {
	if len(places) == 0 {
		return nil, nil
	}

	vectors, err := p.loadOrComputeVectors(ctx, places)
	if err != nil {
		return nil, err
	}

	profile := p.buildProfile(ctx, pref, vectors)
	if profile == nil {
		return nil, nil
	}

	scores := make(planner.ScoreMap, len(places))
	for _, place := range places {
		vec, ok := vectors[place.ID]
		if !ok {
			continue
		}
		scores[place.ID] = (1 + cosineSimilarity(profile, vec)) / 2
	}
	return scores, nil
}

func (p *contentScoreProvider) loadOrComputeVectors(ctx context.Context, places []planner.Place) (map[string][]float32, error) {
	ids := make([]string, 0, len(places))
	for _, place := range places {
		ids = append(ids, place.ID)
	}

	stored, err := p.embeddings.GetByPlaceIDs(ctx, ids)
	if err != nil {
		log.Printf("Error loading place embeddings: %v", err)
		return nil, utils.ErrDatabaseError
	}

	vectors := make(map[string][]float32, len(places))
	for _, e := range stored {
		vectors[e.PlaceID] = e.Embedding.Slice()
	}

	var missing []planner.Place
	for _, place := range places {
		if _, ok := vectors[place.ID]; !ok {
			missing = append(missing, place)
		}
	}
	if len(missing) == 0 {
		return vectors, nil
	}

	texts := make([]string, len(missing))
	for i, place := range missing {
		texts[i] = placeText(place)
	}

	computed, err := p.client.GetEmbeddings(ctx, texts)
	if err != nil {
		// Stored vectors still give a partial signal.
		log.Printf("Error computing embeddings for %d places: %v", len(missing), err)
		return vectors, nil
	}

	for i, place := range missing {
		vectors[place.ID] = computed[i].Slice()
		err := p.embeddings.Upsert(ctx, &db_models.PlaceEmbedding{
			PlaceID:   place.ID,
			Embedding: computed[i],
		})
		if err != nil {
			log.Printf("Error persisting embedding for place %s: %v", place.ID, err)
		}
	}
	return vectors, nil
}

// buildProfile averages the liked places' vectors. With no usable likes it
// embeds the interest keywords instead, and with neither it returns nil.
func (p *contentScoreProvider) buildProfile(ctx context.Context, pref planner.UserPreference, vectors map[string][]float32) []float32 {
	var liked [][]float32
	for _, id := range pref.LikedPlaceIDs {
		if vec, ok := vectors[id]; ok {
			liked = append(liked, vec)
		}
	}
	if len(liked) > 0 {
		return meanVector(liked)
	}

	if len(pref.Interests) == 0 {
		return nil
	}
	vec, err := p.client.GetEmbedding(ctx, strings.Join(pref.Interests, ", "))
	if err != nil {
		log.Printf("Error embedding interests: %v", err)
		return nil
	}
	return vec.Slice()
}

func placeText(p planner.Place) string {
	return p.Name + ". " + strings.Join(p.Types, ", ")
}

func meanVector(vectors [][]float32) []float32 {
	out := make([]float32, len(vectors[0]))
	for _, vec := range vectors {
		for i := range out {
			if i < len(vec) {
				out[i] += vec[i]
			}
		}
	}
	n := float32(len(vectors))
	for i := range out {
		out[i] /= n
	}
	return out
}

func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
