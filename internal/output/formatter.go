package output

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/weijiayao/finance-tracker/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	// Name returns a short identifier for dispatch and logging.
	Name() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"table":       "console",
	"term":        "console",
	"json-pretty": "json",
	"csv-table":   "csv",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// GetFormatterByName fetches a registered formatter, or nil when the name is
// unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// WriteFormatted runs a formatter and writes its output to a timestamped
// file, returning the filename. Names that already exist get a numeric
// suffix instead of being overwritten.
func WriteFormatted(f Formatter, report *domain.Report) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	ext := f.Name()
	if ext == "console" {
		ext = "txt"
	}
	stamp := time.Now().Format("20060102_150405")
	for n := 1; ; n++ {
		filename := fmt.Sprintf("finance_report_%s.%s", stamp, ext)
		if n > 1 {
			filename = fmt.Sprintf("finance_report_%s_%d.%s", stamp, n, ext)
		}
		file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		if _, err := file.Write(data); err != nil {
			_ = file.Close()
			return "", err
		}
		return filename, file.Close()
	}
}
