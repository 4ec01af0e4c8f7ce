package command

import (
	"errors"
	"testing"

	"github.com/nairobell/feed/internal/datasources/mocks"
	"github.com/nairobell/feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetUserLevel_Execute(t *testing.T) {
	cases := []struct {
		name    string
		total   int64
		err     error
		want    GetUserLevelResponse
		wantErr bool
	}{
		{
			name: "new_user",
			want: GetUserLevelResponse{TotalPoints: 0, Level: domain.LevelFor(0)},
		},
		{
			name:  "third_level",
			total: 300,
			want:  GetUserLevelResponse{TotalPoints: 300, Level: domain.Level{Level: 3, PointsIntoLevel: 50, PointsToNext: 150, ProgressPercent: 25, LevelRequirement: 200}},
		},
		{
			name:    "storage_error",
			err:     errors.New("database error"),
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			points := mocks.NewMockPointsGetter(t)
			points.EXPECT().GetPoints(mock.Anything, "user-1").Return(tc.total, tc.err)

			got, err := NewGetUserLevel(points).Execute(testContext(), GetUserLevelRequest{UserID: "user-1"})
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
