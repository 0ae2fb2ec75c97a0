package datasync

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/wordloop/internal/vocabulary"
)

// Format is a vocabulary file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// SheetName is the worksheet items are read from and written to.
const SheetName = "Sheet1"

var xlsxHeader = []string{
	"word", "definition", "translation", "phonetic", "part_of_speech",
	"example", "synonyms", "antonyms", "difficulty", "usage_notes",
}

// ParseFormat parses a format name. "yml" is accepted as yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "xlsx":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unknown format %q, expected yaml or xlsx", s)
}

// FormatFromPath detects the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// String implements pflag.Value.
func (f *Format) String() string {
	return string(*f)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// ReadFile reads vocabulary items from a file of the given format.
func ReadFile(path string, format Format) ([]vocabulary.Item, error) {
	switch format {
	case FormatYAML:
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
		}
		defer func() {
			_ = file.Close()
		}()
		return ReadYAML(file)
	case FormatXLSX:
		return ReadXLSX(path)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// WriteFile writes vocabulary items to a file of the given format.
func WriteFile(path string, format Format, items []vocabulary.Item) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	switch format {
	case FormatYAML:
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("os.Create(%s) > %w", path, err)
		}
		defer func() {
			_ = file.Close()
		}()
		return WriteYAML(file, items)
	case FormatXLSX:
		return WriteXLSX(path, items)
	}
	return fmt.Errorf("unknown format %q", format)
}

// ReadYAML decodes a YAML list of items.
func ReadYAML(r io.Reader) ([]vocabulary.Item, error) {
	var items []vocabulary.Item
	if err := yaml.NewDecoder(r).Decode(&items); err != nil {
		if err == io.EOF {
			return []vocabulary.Item{}, nil
		}
		return nil, fmt.Errorf("yaml.Decode() > %w", err)
	}
	return items, nil
}

// WriteYAML encodes items as a YAML list.
func WriteYAML(w io.Writer, items []vocabulary.Item) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(items); err != nil {
		return fmt.Errorf("yaml.Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoder.Close() > %w", err)
	}
	return nil
}

// ReadXLSX reads items from the first worksheet. The first row is a header and
// columns follow the order word, definition, translation, phonetic, part of speech,
// example, synonyms, antonyms, difficulty and usage notes. Rows without a word are skipped.
func ReadXLSX(path string) ([]vocabulary.Item, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenFile(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []vocabulary.Item{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("f.GetRows(%s) > %w", sheets[0], err)
	}

	items := make([]vocabulary.Item, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		cell := func(column int) string {
			if column < len(row) {
				return strings.TrimSpace(row[column])
			}
			return ""
		}
		if cell(0) == "" {
			continue
		}
		items = append(items, vocabulary.Item{
			Word:         cell(0),
			Definition:   cell(1),
			Translation:  cell(2),
			Phonetic:     cell(3),
			PartOfSpeech: cell(4),
			Example:      cell(5),
			Synonyms:     vocabulary.ParseStringList(cell(6)),
			Antonyms:     vocabulary.ParseStringList(cell(7)),
			Difficulty:   vocabulary.Difficulty(strings.ToLower(cell(8))),
			UsageNotes:   cell(9),
		})
	}
	return items, nil
}

// WriteXLSX writes items to a workbook with the layout ReadXLSX expects.
func WriteXLSX(path string, items []vocabulary.Item) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetRow(SheetName, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("f.SetSheetRow(header) > %w", err)
	}
	for i, item := range items {
		row := []string{
			item.Word, item.Definition, item.Translation, item.Phonetic, item.PartOfSpeech,
			item.Example, strings.Join(item.Synonyms, ", "), strings.Join(item.Antonyms, ", "),
			string(item.Difficulty), item.UsageNotes,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("excelize.CoordinatesToCellName() > %w", err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("f.SetSheetRow(%s) > %w", cell, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("f.SaveAs(%s) > %w", path, err)
	}
	return nil
}
