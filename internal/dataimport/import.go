// filepath: internal/dataimport/import.go
// Package dataimport loads sample catalog data from comma-separated
// text files. Lines starting with '#' are comments. Malformed lines
// are logged, counted and skipped so one bad line never aborts an
// import.
package dataimport

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"reelhub/internal/logging"
	"reelhub/internal/models"
)

// ContentSaver and CelebritySaver are the registry operations the
// importer needs; satisfied by registry.Registry.
type ContentSaver interface {
	Save(item *models.ContentItem) (int64, error)
}

type CelebritySaver interface {
	Save(person *models.Person) (int64, error)
}

// Importer bulk-loads sample data files into the registries.
type Importer struct {
	Content     ContentSaver
	Celebrities CelebritySaver

	// Workers sizes the parse/save pool. 0 means runtime.NumCPU().
	Workers int
}

// NewImporter creates an importer with a pool sized to the CPU count.
func NewImporter(content ContentSaver, celebrities CelebritySaver) *Importer {
	return &Importer{Content: content, Celebrities: celebrities}
}

// ImportCelebrities reads a celebrity file:
//
//	first,last,birth date (yyyy-MM-dd),gender code,nationality,work;work;...
//
// Birth date and notable works may be empty.
func (imp *Importer) ImportCelebrities(path string) (*models.ImportReport, error) {
	return imp.run(path, func(line string) error {
		person, err := parseCelebrityLine(line)
		if err != nil {
			return err
		}
		_, err = imp.Celebrities.Save(person)
		return err
	})
}

// ImportContent reads a content file:
//
//	title,year,rating,genre|genre,director,summary
func (imp *Importer) ImportContent(path string) (*models.ImportReport, error) {
	return imp.run(path, func(line string) error {
		item, err := parseContentLine(line)
		if err != nil {
			return err
		}
		_, err = imp.Content.Save(item)
		return err
	})
}

// run streams the file through a fixed-size worker pool. Workers parse
// and save independently, so identity assignment order across lines is
// not guaranteed (the registry guarantees uniqueness).
func (imp *Importer) run(path string, handle func(line string) error) (*models.ImportReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	report := &models.ImportReport{File: path}
	workers := imp.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	lines := make(chan string, workers)
	var mu sync.Mutex // guards the report counters
	skip := func(line string, err error) {
		mu.Lock()
		logging.Log.Warnf("Import: skipping line %q: %v", truncate(line, 80), err)
		report.Skipped++
		mu.Unlock()
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for line := range lines {
				if err := handle(line); err != nil {
					skip(line, err)
					continue
				}
				mu.Lock()
				report.Imported++
				mu.Unlock()
			}
		}()
	}

	readErr := feedLines(f, lines, skip)
	close(lines)
	wg.Wait()

	if readErr != nil {
		return nil, fmt.Errorf("reading import file: %w", readErr)
	}
	logging.Log.Infof("Import of %s finished: %d imported, %d skipped", path, report.Imported, report.Skipped)
	return report, nil
}

// maxLineLen bounds a single record. Longer lines are skipped like any
// other malformed record instead of aborting the import.
const maxLineLen = 64 * 1024

// feedLines sends non-empty, non-comment lines to the pool. Oversized
// lines are reported through skip and the read continues.
func feedLines(r io.Reader, lines chan<- string, skip func(line string, err error)) error {
	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}

		line := strings.TrimSpace(raw)
		switch {
		case len(raw) > maxLineLen:
			skip(line, fmt.Errorf("line exceeds %d bytes", maxLineLen))
		case line == "" || strings.HasPrefix(line, "#"):
		default:
			lines <- line
		}

		if err == io.EOF {
			return nil
		}
	}
}

// truncate shortens a line for log output.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func parseCelebrityLine(line string) (*models.Person, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 5 {
		return nil, fmt.Errorf("expected at least 5 fields, got %d", len(fields))
	}

	person := &models.Person{
		Kind:        models.KindActor,
		FirstName:   strings.TrimSpace(fields[0]),
		LastName:    strings.TrimSpace(fields[1]),
		Gender:      strings.TrimSpace(fields[3]),
		Nationality: strings.TrimSpace(fields[4]),
	}
	if person.FirstName == "" && person.LastName == "" {
		return nil, fmt.Errorf("missing name")
	}

	if birth := strings.TrimSpace(fields[2]); birth != "" {
		date, err := time.Parse("2006-01-02", birth)
		if err != nil {
			return nil, fmt.Errorf("bad birth date %q: %w", birth, err)
		}
		person.BirthDate = &date
	}

	if len(fields) > 5 {
		for _, work := range strings.Split(fields[5], ";") {
			if work = strings.TrimSpace(work); work != "" {
				person.NotableWorks = append(person.NotableWorks, work)
			}
		}
	}
	return person, nil
}

func parseContentLine(line string) (*models.ContentItem, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 5 {
		return nil, fmt.Errorf("expected at least 5 fields, got %d", len(fields))
	}

	item := &models.ContentItem{
		Title:    strings.TrimSpace(fields[0]),
		Director: strings.TrimSpace(fields[4]),
	}
	if item.Title == "" {
		return nil, fmt.Errorf("missing title")
	}

	if yearStr := strings.TrimSpace(fields[1]); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("bad year %q: %w", yearStr, err)
		}
		item.Year = year
	}

	if ratingStr := strings.TrimSpace(fields[2]); ratingStr != "" {
		rating, err := strconv.ParseFloat(ratingStr, 64)
		if err != nil {
			return nil, fmt.Errorf("bad rating %q: %w", ratingStr, err)
		}
		if rating < 0 || rating > 10 {
			return nil, fmt.Errorf("rating %v out of range", rating)
		}
		item.Rating = rating
	}

	for _, genre := range strings.Split(fields[3], "|") {
		if genre = strings.TrimSpace(genre); genre != "" {
			item.Genres = append(item.Genres, genre)
		}
	}

	if len(fields) > 5 {
		// The summary is free text and may itself contain commas.
		item.Summary = strings.TrimSpace(strings.Join(fields[5:], ","))
	}
	return item, nil
}
