// package formatter renders album lists as table, CSV, Markdown, JSON or YAML
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/desertthunder/sounds-of-canada/internal/models"
	"github.com/desertthunder/sounds-of-canada/internal/shared"
	"gopkg.in/yaml.v3"
)

// Format names an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatTable, FormatCSV, FormatMarkdown, FormatJSON, FormatYAML}

// ParseFormat accepts a format name, plus "md" and "yml" as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", shared.ErrUnknownFormat, s)
}

// Render writes albums to w in format.
func Render(w io.Writer, albums []models.Album, format Format) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatTable:
		data = []byte(ExportToTable(albums) + "\n")
	case FormatCSV:
		data, err = ExportToCSV(albums)
	case FormatMarkdown:
		data, err = ExportToMarkdown("Albums", albums, nil)
	case FormatJSON:
		data, err = ExportToJSON(albums)
	case FormatYAML:
		data, err = ExportToYAML(albums)
	default:
		return fmt.Errorf("%w: %q", shared.ErrUnknownFormat, format)
	}
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// ExportToTable renders albums as a bordered terminal table with columns: ID, Artist, Title
func ExportToTable(albums []models.Album) string {
	rows := make([][]string, 0, len(albums))
	for _, a := range albums {
		rows = append(rows, []string{strconv.FormatInt(a.ID, 10), a.Artist, a.Title})
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Artist", "Title").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	return t.String()
}

// ExportToCSV converts albums to CSV format with columns: ID, Title, Artist, Image
func ExportToCSV(albums []models.Album) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Image"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, a := range albums {
		record := []string{strconv.FormatInt(a.ID, 10), a.Title, a.Artist, a.Image}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts albums to a Markdown list under a heading.
//
// covers maps album ids to local image filenames; albums without one are listed without an image.
func ExportToMarkdown(title string, albums []models.Album, covers map[int64]string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Albums**: %d\n\n", len(albums)))

	for i, a := range albums {
		artist := a.Artist
		if artist == "" {
			artist = "Unknown Artist"
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, artist, a.Title))
		if cover, ok := covers[a.ID]; ok {
			buf.WriteString(fmt.Sprintf("\n   ![%s](%s)\n\n", a.Title, cover))
		}
	}

	return buf.Bytes(), nil
}

// ExportToJSON renders albums as indented JSON
func ExportToJSON(albums []models.Album) ([]byte, error) {
	if albums == nil {
		albums = []models.Album{}
	}
	data, err := shared.MarshalJSON(albums, true)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// ExportToYAML renders albums as a YAML sequence
func ExportToYAML(albums []models.Album) ([]byte, error) {
	if albums == nil {
		albums = []models.Album{}
	}
	data, err := yaml.Marshal(albums)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return data, nil
}

// DownloadImage downloads an image from the given URL and returns the raw bytes
func DownloadImage(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("empty URL provided")
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return imageData, nil
}

// WriteExport writes albums in format to path, creating parent directories.
func WriteExport(albums []models.Album, format Format, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	return Render(f, albums, format)
}

// MarkdownExportResult contains information about files created by WriteMarkdownExport
type MarkdownExportResult struct {
	Directory string
	Files     []string
	Covers    int
}

// WriteMarkdownExport exports albums to Markdown in a dedicated directory.
//
// With downloadCovers set, each album image is saved as covers/{id}.jpg and linked from README.md.
// A cover that cannot be downloaded is reported on stderr and skipped.
func WriteMarkdownExport(title string, albums []models.Album, outputDir string, downloadCovers bool) (*MarkdownExportResult, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	result := &MarkdownExportResult{Directory: outputDir, Files: []string{}}
	covers := map[int64]string{}

	if downloadCovers {
		coverDir := filepath.Join(outputDir, "covers")
		if err := os.MkdirAll(coverDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cover directory: %w", err)
		}

		for _, a := range albums {
			if a.Image == "" {
				continue
			}
			imageData, err := DownloadImage(a.Image)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to download cover for %d: %v\n", a.ID, err)
				continue
			}

			name := fmt.Sprintf("%d.jpg", a.ID)
			coverPath := filepath.Join(coverDir, name)
			if err := os.WriteFile(coverPath, imageData, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to save cover for %d: %v\n", a.ID, err)
				continue
			}
			covers[a.ID] = "covers/" + name
			result.Files = append(result.Files, coverPath)
			result.Covers++
		}
	}

	mdData, err := ExportToMarkdown(title, albums, covers)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := filepath.Join(outputDir, "README.md")
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}

	result.Files = append(result.Files, mdFile)

	return result, nil
}
