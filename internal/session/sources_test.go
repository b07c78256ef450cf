package session

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/estudia-app/estudia/internal/api"
	mock_api "github.com/estudia-app/estudia/internal/mocks/api"
	"github.com/estudia-app/estudia/internal/testutil"
)

func newTestSourceManager(t *testing.T, ctrl *gomock.Controller, notebook api.Notebook) (*SourceManager, *Chat, *mock_api.MockNotebookAPI, *mock_api.MockSourceAPI) {
	t.Helper()

	notebooks := mock_api.NewMockNotebookAPI(ctrl)
	messenger := mock_api.NewMockMessageAPI(ctrl)
	sources := mock_api.NewMockSourceAPI(ctrl)
	notebooks.EXPECT().GetNotebook(gomock.Any(), notebook.ID).Return(notebook, nil)

	chat, err := NewChat(context.Background(), notebooks, messenger, nil, notebook.ID)
	require.NoError(t, err)
	t.Cleanup(chat.Close)

	return NewSourceManager(chat, notebooks, sources, nil), chat, notebooks, sources
}

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name  string
		files []api.UploadFile

		wantError error
	}{
		{
			name:      "no files",
			files:     nil,
			wantError: ErrNoFilesSelected,
		},
		{
			name: "single file at the limit",
			files: []api.UploadFile{
				{Name: "a.pdf", Contents: bytes.Repeat([]byte{1}, MaxUploadBytes)},
			},
		},
		{
			name: "single file over the limit",
			files: []api.UploadFile{
				{Name: "a.pdf", Contents: bytes.Repeat([]byte{1}, MaxUploadBytes+1)},
			},
			wantError: ErrUploadTooLarge,
		},
		{
			name: "batch sums over the limit",
			files: []api.UploadFile{
				{Name: "a.pdf", Contents: bytes.Repeat([]byte{1}, MaxUploadBytes/2+1)},
				{Name: "b.pdf", Contents: bytes.Repeat([]byte{1}, MaxUploadBytes/2+1)},
			},
			wantError: ErrUploadTooLarge,
		},
		{
			name: "batch under the limit",
			files: []api.UploadFile{
				{Name: "a.pdf", Contents: []byte("one")},
				{Name: "b.pdf", Contents: []byte("two")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr := ValidateUpload(tt.files)
			if tt.wantError != nil {
				assert.ErrorIs(t, gotErr, tt.wantError)
				return
			}
			assert.NoError(t, gotErr)
		})
	}
}

// An oversized batch is rejected locally: no AddSources expectation is set, so
// any network call would fail the test.
func TestSourceManager_AddSources_TooLargeMakesNoCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager, chat, _, _ := newTestSourceManager(t, ctrl, testutil.NewNotebook(1))

	files := []api.UploadFile{{Name: "big.pdf", Contents: bytes.Repeat([]byte{1}, MaxUploadBytes+1)}}
	err := manager.AddSources(context.Background(), files)
	assert.ErrorIs(t, err, ErrUploadTooLarge)
	assert.Empty(t, chat.Sources())
}

func TestSourceManager_AddSources_ReplacesWithConfirmedList(t *testing.T) {
	ctrl := gomock.NewController(t)
	existing := api.Source{ID: 10, Name: "old.pdf", NotebookID: 1}
	manager, chat, notebooks, _ := newTestSourceManager(t, ctrl, testutil.NewNotebook(1, testutil.WithSources(existing)))

	confirmed := []api.Source{
		{ID: 10, Name: "old.pdf", NotebookID: 1},
		{ID: 11, Name: "new.pdf", NotebookID: 1},
	}
	notebooks.EXPECT().
		AddSources(gomock.Any(), int64(1), gomock.Any()).
		Return(confirmed, nil)

	err := manager.AddSources(context.Background(), []api.UploadFile{{Name: "new.pdf", Contents: []byte("pdf")}})
	require.NoError(t, err)
	assert.Equal(t, confirmed, chat.Sources())
}

func TestSourceManager_DeleteSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	notebook := testutil.NewNotebook(1, testutil.WithSources(
		api.Source{ID: 10, Name: "keep.pdf", NotebookID: 1},
		api.Source{ID: 11, Name: "drop.pdf", NotebookID: 1},
	))
	manager, chat, _, sources := newTestSourceManager(t, ctrl, notebook)

	sources.EXPECT().
		DeleteSource(gomock.Any(), int64(11)).
		Return(api.Source{ID: 11, Name: "drop.pdf", NotebookID: 1}, nil)

	require.NoError(t, manager.DeleteSource(context.Background(), 11))

	remaining := chat.Sources()
	require.Len(t, remaining, 1)
	assert.Equal(t, int64(10), remaining[0].ID)
}

func TestSourceManager_Selection(t *testing.T) {
	ctrl := gomock.NewController(t)
	notebook := testutil.NewNotebook(1, testutil.WithSources(
		api.Source{ID: 10, NotebookID: 1},
		api.Source{ID: 11, NotebookID: 1},
	))
	manager, _, _, _ := newTestSourceManager(t, ctrl, notebook)

	manager.ToggleSelect(11)
	manager.ToggleSelect(10)
	assert.Equal(t, []int64{10, 11}, manager.SelectedIDs())

	manager.ToggleSelect(11)
	assert.Equal(t, []int64{10}, manager.SelectedIDs())

	// Any selection present: SelectAll clears instead.
	manager.SelectAll()
	assert.Empty(t, manager.SelectedIDs())

	manager.SelectAll()
	assert.Equal(t, []int64{10, 11}, manager.SelectedIDs())
}

func TestSourceManager_DeleteSelected_DeclinedMakesNoCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	notebook := testutil.NewNotebook(1, testutil.WithSources(api.Source{ID: 10, NotebookID: 1}))
	manager, chat, _, _ := newTestSourceManager(t, ctrl, notebook)

	manager.ToggleSelect(10)
	err := manager.DeleteSelected(context.Background(), func(ids []int64) bool { return false })
	require.NoError(t, err)

	// Declined: nothing deleted, selection kept.
	assert.Len(t, chat.Sources(), 1)
	assert.Equal(t, []int64{10}, manager.SelectedIDs())
}

func TestSourceManager_DeleteSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	notebook := testutil.NewNotebook(1, testutil.WithSources(
		api.Source{ID: 10, NotebookID: 1},
		api.Source{ID: 11, NotebookID: 1},
		api.Source{ID: 12, NotebookID: 1},
	))
	manager, chat, _, sources := newTestSourceManager(t, ctrl, notebook)

	manager.ToggleSelect(10)
	manager.ToggleSelect(12)
	sources.EXPECT().
		DeleteSources(gomock.Any(), []int64{10, 12}).
		Return([]api.Source{}, nil)

	var confirmedIDs []int64
	err := manager.DeleteSelected(context.Background(), func(ids []int64) bool {
		confirmedIDs = ids
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 12}, confirmedIDs)

	remaining := chat.Sources()
	require.Len(t, remaining, 1)
	assert.Equal(t, int64(11), remaining[0].ID)
	assert.Empty(t, manager.SelectedIDs())
}

func TestSourceManager_DeleteSelected_EmptySelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager, _, _, _ := newTestSourceManager(t, ctrl, testutil.NewNotebook(1))

	err := manager.DeleteSelected(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoSourcesSelected)
}
