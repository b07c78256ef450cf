package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/estudia-app/estudia/internal/api"
	"github.com/estudia-app/estudia/internal/testutil"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		value string

		want      Format
		wantError bool
	}{
		{value: "md", want: FormatMarkdown},
		{value: "yaml", want: FormatYAML},
		{value: "pdf", want: FormatPDF},
		{value: "MD", want: FormatMarkdown},
		{value: "docx", wantError: true},
		{value: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, gotErr := ParseFormat(tt.value)
			if tt.wantError {
				require.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlashcards_Markdown(t *testing.T) {
	dir := t.TempDir()
	notebook := api.Notebook{ID: 7, Title: "Cell Biology"}
	cards := []api.Flashcard{
		testutil.NewFlashcard(1, 7),
		testutil.NewFlashcard(2, 7),
	}

	path, err := Flashcards(dir, notebook, cards, FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "notebook-7-cell-biology-flashcards.md"), path)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "# Flashcards: Cell Biology")
	assert.Contains(t, string(contents), cards[0].Question)
	assert.Contains(t, string(contents), cards[1].Answer)
}

func TestFlashcards_YAML(t *testing.T) {
	dir := t.TempDir()
	notebook := api.Notebook{ID: 7, Title: "Cell Biology"}
	cards := []api.Flashcard{testutil.NewFlashcard(1, 7)}

	path, err := Flashcards(dir, notebook, cards, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, ".yml", filepath.Ext(path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)

	var deck deckFile
	require.NoError(t, yaml.Unmarshal(contents, &deck))
	assert.Equal(t, "Cell Biology", deck.Notebook)
	require.Len(t, deck.Cards, 1)
	assert.Equal(t, cards[0].Question, deck.Cards[0].Question)
	assert.Equal(t, cards[0].Answer, deck.Cards[0].Answer)
}

func TestFlashcards_PDF(t *testing.T) {
	dir := t.TempDir()
	notebook := api.Notebook{ID: 7, Title: "Cell Biology"}
	cards := []api.Flashcard{testutil.NewFlashcard(1, 7)}

	path, err := Flashcards(dir, notebook, cards, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, ".pdf", filepath.Ext(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	// The intermediate markdown stays behind alongside the PDF.
	_, err = os.Stat(filepath.Join(dir, "notebook-7-cell-biology-flashcards.md"))
	require.NoError(t, err)
}

func TestFlashcards_EmptyDeck(t *testing.T) {
	_, err := Flashcards(t.TempDir(), api.Notebook{ID: 7}, nil, FormatMarkdown)
	require.Error(t, err)
}

func TestSummary_Markdown(t *testing.T) {
	dir := t.TempDir()
	notebook := api.Notebook{ID: 7, Title: "Cell Biology"}
	summary := api.Summary{ID: 3, Title: "Key Ideas", Text: "Cells divide.", NotebookID: 7}

	path, err := Summary(dir, notebook, summary, FormatMarkdown)
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "# Key Ideas")
	assert.Contains(t, string(contents), "Cells divide.")
}

func TestSummary_UntitledFallsBackToNotebookTitle(t *testing.T) {
	dir := t.TempDir()
	notebook := api.Notebook{ID: 7, Title: "Cell Biology"}
	summary := api.Summary{ID: 3, Text: "Cells divide.", NotebookID: 7}

	path, err := Summary(dir, notebook, summary, FormatMarkdown)
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "# Summary: Cell Biology")
}

func TestSummary_RejectsYAML(t *testing.T) {
	_, err := Summary(t.TempDir(), api.Notebook{ID: 7}, api.Summary{Text: "x"}, FormatYAML)
	require.Error(t, err)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		notebook api.Notebook
		want     string
	}{
		{
			name:     "title with spaces and case",
			notebook: api.Notebook{ID: 7, Title: "Cell Biology 101"},
			want:     "notebook-7-cell-biology-101",
		},
		{
			name:     "title with unsafe characters",
			notebook: api.Notebook{ID: 7, Title: "What? Cells/Organs!"},
			want:     "notebook-7-what-cellsorgans",
		},
		{
			name:     "empty title",
			notebook: api.Notebook{ID: 7},
			want:     "notebook-7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug(tt.notebook))
		})
	}
}
