package datasync

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/wordloop/internal/apperr"
	mock_vocabulary "github.com/at-ishikawa/wordloop/internal/mocks/vocabulary"
	"github.com/at-ishikawa/wordloop/internal/srs"
	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

func TestImporter_ImportItems(t *testing.T) {
	nextReview := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		items      []vocabulary.Item
		opts       ImportOptions
		setup      func(repo *mock_vocabulary.MockRepository)
		want       *ImportResult
		wantOutput string
	}{
		{
			name: "new item is created unscheduled",
			items: []vocabulary.Item{
				{Word: " happy ", Definition: "feeling pleasure", EaseFactor: 1.8, Repetitions: 3, NextReview: &nextReview},
			},
			opts: ImportOptions{Origin: vocabulary.OriginManual},
			setup: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().FindByWord(gomock.Any(), "learner-1", "happy").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, item *vocabulary.Item) error {
						assert.Equal(t, "learner-1", item.LearnerID)
						assert.Equal(t, "happy", item.Word)
						assert.Equal(t, vocabulary.OriginManual, item.Origin)
						assert.Equal(t, srs.DefaultEaseFactor, item.EaseFactor)
						assert.Zero(t, item.Repetitions)
						assert.Nil(t, item.NextReview)
						item.ID = 1
						return nil
					})
			},
			want:       &ImportResult{ItemsNew: 1},
			wantOutput: "  [NEW]  \"happy\"\n",
		},
		{
			name: "learning state is kept when requested",
			items: []vocabulary.Item{
				{Word: "happy", EaseFactor: 1.8, Repetitions: 3, NextReview: &nextReview, MasteryLevel: srs.MasteryLearning},
			},
			opts: ImportOptions{KeepLearningState: true},
			setup: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().FindByWord(gomock.Any(), "learner-1", "happy").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, item *vocabulary.Item) error {
						assert.Equal(t, 1.8, item.EaseFactor)
						assert.Equal(t, 3, item.Repetitions)
						assert.Equal(t, &nextReview, item.NextReview)
						assert.Equal(t, srs.MasteryLearning, item.MasteryLevel)
						return nil
					})
			},
			want:       &ImportResult{ItemsNew: 1},
			wantOutput: "  [NEW]  \"happy\"\n",
		},
		{
			name:  "existing item is skipped when UpdateExisting is false",
			items: []vocabulary.Item{{Word: "happy", Definition: "new definition"}},
			setup: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().FindByWord(gomock.Any(), "learner-1", "happy").
					Return(&vocabulary.Item{ID: 1, LearnerID: "learner-1", Word: "happy"}, nil)
			},
			want:       &ImportResult{ItemsSkipped: 1},
			wantOutput: "  [SKIP]  \"happy\"\n",
		},
		{
			name:  "existing item content is merged when UpdateExisting is true",
			items: []vocabulary.Item{{Word: "happy", Definition: "new definition", Synonyms: vocabulary.StringList{"glad"}}},
			opts:  ImportOptions{UpdateExisting: true},
			setup: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().FindByWord(gomock.Any(), "learner-1", "happy").
					Return(&vocabulary.Item{ID: 1, LearnerID: "learner-1", Word: "happy", Example: "kept", EaseFactor: 2.1}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, item *vocabulary.Item) error {
						assert.Equal(t, int64(1), item.ID)
						assert.Equal(t, "new definition", item.Definition)
						assert.Equal(t, "kept", item.Example)
						assert.Equal(t, vocabulary.StringList{"glad"}, item.Synonyms)
						assert.Equal(t, 2.1, item.EaseFactor)
						return nil
					})
			},
			want:       &ImportResult{ItemsUpdated: 1},
			wantOutput: "  [UPDATE]  \"happy\"\n",
		},
		{
			name:  "dry run writes nothing",
			items: []vocabulary.Item{{Word: "happy"}, {Word: "glad"}},
			opts:  ImportOptions{DryRun: true, UpdateExisting: true},
			setup: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().FindByWord(gomock.Any(), "learner-1", "happy").Return(nil, nil)
				repo.EXPECT().FindByWord(gomock.Any(), "learner-1", "glad").
					Return(&vocabulary.Item{ID: 2, LearnerID: "learner-1", Word: "glad"}, nil)
			},
			want:       &ImportResult{ItemsNew: 1, ItemsUpdated: 1},
			wantOutput: "  [NEW]  \"happy\"\n  [UPDATE]  \"glad\"\n",
		},
		{
			name:       "item without word is rejected",
			items:      []vocabulary.Item{{Word: "  ", Definition: "nothing"}},
			setup:      func(repo *mock_vocabulary.MockRepository) {},
			want:       &ImportResult{ItemsRejected: 1},
			wantOutput: "  [REJECT]  \"\": [VALIDATION] word is required\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_vocabulary.NewMockRepository(ctrl)
			tt.setup(repo)

			var out bytes.Buffer
			got, err := NewImporter(repo, &out).ImportItems(context.Background(), "learner-1", tt.items, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOutput, out.String())
		})
	}
}

func TestImporter_ImportItems_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_vocabulary.NewMockRepository(ctrl)
	importer := NewImporter(repo, &bytes.Buffer{})

	_, err := importer.ImportItems(context.Background(), " ", []vocabulary.Item{{Word: "happy"}}, ImportOptions{})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	repo.EXPECT().FindByWord(gomock.Any(), "learner-1", "happy").Return(nil, errors.New("connection refused"))
	_, err = importer.ImportItems(context.Background(), "learner-1", []vocabulary.Item{{Word: "happy"}}, ImportOptions{})
	assert.ErrorContains(t, err, "connection refused")
}

func TestExporter_Export(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(repo *mock_vocabulary.MockRepository)
		want    []vocabulary.Item
		wantErr bool
	}{
		{
			name: "items are returned",
			setup: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().FindAll(gomock.Any(), "learner-1").Return([]vocabulary.Item{{ID: 1, Word: "happy"}}, nil)
			},
			want: []vocabulary.Item{{ID: 1, Word: "happy"}},
		},
		{
			name: "no items",
			setup: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().FindAll(gomock.Any(), "learner-1").Return(nil, nil)
			},
			want: []vocabulary.Item{},
		},
		{
			name: "store error",
			setup: func(repo *mock_vocabulary.MockRepository) {
				repo.EXPECT().FindAll(gomock.Any(), "learner-1").Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_vocabulary.NewMockRepository(ctrl)
			tt.setup(repo)

			got, err := NewExporter(repo).Export(context.Background(), "learner-1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
