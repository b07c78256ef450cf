package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/estudia-app/estudia/internal/api"
)

// MaxUploadBytes caps the summed size of one upload batch. Oversized batches
// are rejected locally before any network call.
const MaxUploadBytes = 2 * 1024 * 1024

var (
	ErrNoFilesSelected   = errors.New("no files selected")
	ErrUploadTooLarge    = fmt.Errorf("upload batch exceeds the %d byte limit", MaxUploadBytes)
	ErrNoSourcesSelected = errors.New("no sources selected")
)

// ValidateUpload applies the client-side upload gates shared by notebook
// creation and add-sources: a non-empty selection whose summed size stays
// under MaxUploadBytes.
func ValidateUpload(files []api.UploadFile) error {
	if len(files) == 0 {
		return ErrNoFilesSelected
	}
	var total int
	for _, file := range files {
		total += len(file.Contents)
	}
	if total > MaxUploadBytes {
		return ErrUploadTooLarge
	}
	return nil
}

// SourceManager adds and removes the documents bound to the chat container's
// notebook, with a multi-select set for batch deletion. List state is updated
// only after the server confirms; source mutations are never optimistic.
type SourceManager struct {
	chat     *Chat
	notebook api.NotebookAPI
	sources  api.SourceAPI
	notifier *NotificationCenter

	mu       sync.Mutex
	selected map[int64]bool
}

func NewSourceManager(chat *Chat, notebook api.NotebookAPI, sources api.SourceAPI, notifier *NotificationCenter) *SourceManager {
	return &SourceManager{
		chat:     chat,
		notebook: notebook,
		sources:  sources,
		notifier: notifier,
		selected: map[int64]bool{},
	}
}

// AddSources validates the batch locally, uploads it and replaces the source
// list with the server's confirmed one.
func (manager *SourceManager) AddSources(ctx context.Context, files []api.UploadFile) error {
	if err := ValidateUpload(files); err != nil {
		manager.notifyError("Files not uploaded", err)
		return err
	}

	confirmed, err := manager.notebook.AddSources(ctx, manager.chat.NotebookID(), files)
	if err != nil {
		manager.notifyError("Files not uploaded", err)
		return fmt.Errorf("notebook.AddSources > %w", err)
	}

	manager.chat.SetSources(confirmed)
	if manager.notifier != nil {
		manager.notifier.Add("Sources added", fmt.Sprintf("%d file(s) uploaded.", len(files)), SeveritySuccess)
	}
	return nil
}

// ToggleSelect flips a source in or out of the batch-delete selection.
func (manager *SourceManager) ToggleSelect(sourceID int64) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	if manager.selected[sourceID] {
		delete(manager.selected, sourceID)
	} else {
		manager.selected[sourceID] = true
	}
}

// SelectAll selects every current source; if any are selected it clears the
// selection instead, mirroring a select-all checkbox.
func (manager *SourceManager) SelectAll() {
	sources := manager.chat.Sources()
	manager.mu.Lock()
	defer manager.mu.Unlock()
	if len(manager.selected) > 0 {
		manager.selected = map[int64]bool{}
		return
	}
	for _, source := range sources {
		manager.selected[source.ID] = true
	}
}

// SelectedIDs returns the selection in ascending id order.
func (manager *SourceManager) SelectedIDs() []int64 {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	ids := make([]int64, 0, len(manager.selected))
	for id := range manager.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DeleteSource removes one source. The local list shrinks only after the
// server confirmed the delete.
func (manager *SourceManager) DeleteSource(ctx context.Context, sourceID int64) error {
	if _, err := manager.sources.DeleteSource(ctx, sourceID); err != nil {
		manager.notifyError("Source not deleted", err)
		return fmt.Errorf("sources.DeleteSource > %w", err)
	}

	manager.removeLocal([]int64{sourceID})
	return nil
}

// DeleteSelected batch-deletes the current selection after the confirm
// callback approves it (the CLI supplies a yes/no prompt). A declined confirm
// aborts with no network call and keeps the selection.
func (manager *SourceManager) DeleteSelected(ctx context.Context, confirm func(ids []int64) bool) error {
	ids := manager.SelectedIDs()
	if len(ids) == 0 {
		return ErrNoSourcesSelected
	}
	if confirm != nil && !confirm(ids) {
		return nil
	}

	if _, err := manager.sources.DeleteSources(ctx, ids); err != nil {
		manager.notifyError("Sources not deleted", err)
		return fmt.Errorf("sources.DeleteSources > %w", err)
	}

	manager.removeLocal(ids)
	return nil
}

func (manager *SourceManager) removeLocal(ids []int64) {
	removed := map[int64]bool{}
	for _, id := range ids {
		removed[id] = true
	}

	remaining := make([]api.Source, 0)
	for _, source := range manager.chat.Sources() {
		if !removed[source.ID] {
			remaining = append(remaining, source)
		}
	}
	manager.chat.SetSources(remaining)

	manager.mu.Lock()
	defer manager.mu.Unlock()
	for _, id := range ids {
		delete(manager.selected, id)
	}
}

func (manager *SourceManager) notifyError(title string, err error) {
	if manager.notifier == nil {
		return
	}
	message, ok := api.PermissionErrorMessage(err)
	if !ok {
		message = err.Error()
	}
	manager.notifier.Add(title, message, SeverityError)
}
