package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\s]`)
	countPrinter         = message.NewPrinter(language.English)
)

func EnsureDirectory(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("directory path cannot be empty")
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("cannot resolve absolute path for %s: %w", dirPath, err)
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", absPath, err)
	}

	return nil
}

func FormatDuration(duration time.Duration) string {
	if duration < time.Millisecond {
		return fmt.Sprintf("%d µs", duration.Microseconds())
	}

	if duration < time.Second {
		return fmt.Sprintf("%d ms", duration.Milliseconds())
	}

	return fmt.Sprintf("%.1f sec", duration.Seconds())
}

// FormatNumber abbreviates large counts for narrow UI slots (1.2K, 4.3B).
func FormatNumber(num uint64) string {
	if num < 1000 {
		return strconv.FormatUint(num, 10)
	}

	if num < 1000000 {
		return fmt.Sprintf("%.1fK", float64(num)/1000.0)
	}

	if num < 1000000000 {
		return fmt.Sprintf("%.1fM", float64(num)/1000000.0)
	}

	return fmt.Sprintf("%.1fB", float64(num)/1000000000.0)
}

// FormatCount renders an exact count with thousands separators (16,777,214).
func FormatCount(num uint64) string {
	return countPrinter.Sprintf("%d", num)
}

// Plural picks the singular or plural noun for n.
func Plural(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

func SanitizeFilename(filename string) string {
	filename = strings.TrimSpace(filename)
	filename = invalidFilenameChars.ReplaceAllString(filename, "_")

	if len(filename) > 255 {
		ext := filepath.Ext(filename)
		base := filename[:255-len(ext)]
		filename = base + ext
	}

	if filename == "" {
		filename = "unnamed"
	}

	return filename
}

func GenerateTimestamp(t time.Time) string {
	return t.Format("2006-01-02_15-04-05")
}

func GenerateOutputFilename(baseName string, extension string, t time.Time) string {
	sanitizedName := SanitizeFilename(baseName)

	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	return fmt.Sprintf("%s_%s%s", sanitizedName, GenerateTimestamp(t), extension)
}

func TruncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}

	if maxLength <= 3 {
		return s[:maxLength]
	}

	return s[:maxLength-3] + "..."
}
