package pinecone

import (
	"context"
	"errors"
	"testing"

	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/datasources/mocks"
	"github.com/nairobell/feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInterestQuery(t *testing.T) {
	cases := []struct {
		name    string
		profile domain.UserProfile
		want    string
	}{
		{name: "no_history", profile: domain.DefaultUserProfile(), want: ""},
		{
			name: "categories_and_countries",
			profile: domain.UserProfile{
				TopCategories: []domain.CountEntry{{Key: "politics"}, {Key: "business"}, {Key: "sports"}, {Key: "health"}},
				TopCountries:  []domain.CountEntry{{Key: "kenya"}},
			},
			want: "African news about politics, business, sports in kenya",
		},
		{
			name:    "countries_only",
			profile: domain.UserProfile{TopCountries: []domain.CountEntry{{Key: "ghana"}, {Key: "nigeria"}}},
			want:    "African news in ghana, nigeria",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, interestQuery(tc.profile))
		})
	}
}

func TestHintProvider_SuggestOrder(t *testing.T) {
	profile := domain.UserProfile{TopCategories: []domain.CountEntry{{Key: "politics", Count: 2}}}
	items := []domain.Item{{ID: "a"}, {ID: ""}, {ID: "b"}, {ID: "c"}}
	vector := []float32{0.1, 0.2}

	cases := []struct {
		name       string
		profile    domain.UserProfile
		vector     []float32
		embedErr   error
		similar    []datasources.SimilarItem
		listErr    error
		skipEmbed  bool
		skipList   bool
		want       []string
		wantErrStr string
	}{
		{
			name:    "orders_by_similarity",
			profile: profile,
			vector:  vector,
			similar: []datasources.SimilarItem{{ID: "c", Score: 0.9}, {ID: "a", Score: 0.5}},
			want:    []string{"c", "a"},
		},
		{
			name:      "no_history_no_hint",
			profile:   domain.DefaultUserProfile(),
			skipEmbed: true,
			skipList:  true,
			want:      nil,
		},
		{
			name:     "empty_vector_no_hint",
			profile:  profile,
			vector:   nil,
			skipList: true,
			want:     nil,
		},
		{
			name:       "embed_error",
			profile:    profile,
			embedErr:   errors.New("voyage down"),
			skipList:   true,
			wantErrStr: "embedding reader interests",
		},
		{
			name:       "list_error",
			profile:    profile,
			vector:     vector,
			listErr:    errors.New("pinecone down"),
			wantErrStr: "listing similar items",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			embedder := mocks.NewMockEmbedder(t)
			lister := mocks.NewMockSimilarItemsByVectorLister(t)

			if !tc.skipEmbed {
				embedder.EXPECT().
					EmbedText(mock.Anything, "African news about politics").
					Return(tc.vector, tc.embedErr)
			}
			if !tc.skipList {
				lister.EXPECT().
					ListSimilarItemsByVector(mock.Anything, tc.vector, []string{"a", "b", "c"}, 3).
					Return(tc.similar, tc.listErr)
			}

			provider := NewHintProvider(embedder, lister)
			got, err := provider.SuggestOrder(context.Background(), tc.profile, items)

			if tc.wantErrStr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErrStr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
