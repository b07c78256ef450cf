// Package export writes study material to files: flashcard decks as
// markdown, YAML or PDF, and summaries as markdown or PDF.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
	"gopkg.in/yaml.v3"

	"github.com/estudia-app/estudia/internal/api"
)

type Format string

const (
	FormatMarkdown Format = "md"
	FormatYAML     Format = "yaml"
	FormatPDF      Format = "pdf"
)

// ParseFormat validates a user-supplied format flag.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(value)) {
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unsupported export format %q (expected md, yaml or pdf)", value)
}

// deckFile is the YAML layout for an exported flashcard deck.
type deckFile struct {
	Notebook string     `yaml:"notebook"`
	Cards    []deckCard `yaml:"cards"`
}

type deckCard struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Flashcards writes the deck into dir and returns the written file's path.
// PDF export renders a markdown file first and converts it in place.
func Flashcards(dir string, notebook api.Notebook, cards []api.Flashcard, format Format) (string, error) {
	if len(cards) == 0 {
		return "", fmt.Errorf("no flashcards to export")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	base := filepath.Join(dir, fmt.Sprintf("%s-flashcards", slug(notebook)))
	switch format {
	case FormatYAML:
		deck := deckFile{Notebook: notebook.Title, Cards: make([]deckCard, 0, len(cards))}
		for _, card := range cards {
			deck.Cards = append(deck.Cards, deckCard{Question: card.Question, Answer: card.Answer})
		}
		contents, err := yaml.Marshal(deck)
		if err != nil {
			return "", fmt.Errorf("yaml.Marshal > %w", err)
		}
		path := base + ".yml"
		if err := os.WriteFile(path, contents, 0644); err != nil {
			return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
		}
		return path, nil
	case FormatMarkdown, FormatPDF:
		contents := []byte(flashcardsMarkdown(notebook, cards))
		path := base + ".md"
		if err := os.WriteFile(path, contents, 0644); err != nil {
			return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
		}
		if format == FormatMarkdown {
			return path, nil
		}
		return renderPDF(path, contents)
	}
	return "", fmt.Errorf("unsupported export format %q", format)
}

// Summary writes one summary into dir and returns the written file's path.
func Summary(dir string, notebook api.Notebook, summary api.Summary, format Format) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-summary.md", slug(notebook)))
	contents := []byte(summaryMarkdown(notebook, summary))
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}

	switch format {
	case FormatMarkdown:
		return path, nil
	case FormatPDF:
		return renderPDF(path, contents)
	}
	return "", fmt.Errorf("unsupported export format %q for summaries", format)
}

// renderPDF renders the markdown next to its source file and returns the
// PDF's absolute path. The markdown on disk stays behind alongside it.
func renderPDF(markdownPath string, contents []byte) (string, error) {
	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(contents); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", pdfPath, err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

func flashcardsMarkdown(notebook api.Notebook, cards []api.Flashcard) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "# Flashcards: %s\n", title(notebook))
	for i, card := range cards {
		fmt.Fprintf(&builder, "\n## Card %d\n\n**Q:** %s\n\n**A:** %s\n", i+1, card.Question, card.Answer)
	}
	return builder.String()
}

func summaryMarkdown(notebook api.Notebook, summary api.Summary) string {
	heading := summary.Title
	if heading == "" {
		heading = fmt.Sprintf("Summary: %s", title(notebook))
	}
	return fmt.Sprintf("# %s\n\n%s\n", heading, summary.Text)
}

func title(notebook api.Notebook) string {
	if notebook.Title != "" {
		return notebook.Title
	}
	return fmt.Sprintf("Notebook %d", notebook.ID)
}

// slug derives a filesystem-safe base name from the notebook.
func slug(notebook api.Notebook) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_':
			return '-'
		}
		return -1
	}, notebook.Title)
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		return fmt.Sprintf("notebook-%d", notebook.ID)
	}
	return fmt.Sprintf("notebook-%d-%s", notebook.ID, cleaned)
}
