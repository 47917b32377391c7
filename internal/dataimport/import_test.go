// filepath: internal/dataimport/import_test.go
package dataimport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"reelhub/internal/models"
	"reelhub/internal/registry"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func newImporter() (*Importer, *registry.Registry[*models.ContentItem], *registry.Registry[*models.Person]) {
	content := registry.New[*models.ContentItem]("content")
	celebrities := registry.New[*models.Person]("celebrities")
	return NewImporter(content, celebrities), content, celebrities
}

func TestImportCelebrities(t *testing.T) {
	path := writeFile(t, "celebrities.txt", `# sample celebrities
# first,last,birth,gender,nationality,notable works
Sigourney,Weaver,1949-10-08,F,American,Alien;Aliens;Avatar
Ridley,Scott,1937-11-30,M,British,Alien;Blade Runner
`)
	imp, _, celebrities := newImporter()

	report, err := imp.ImportCelebrities(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 2, celebrities.Len())

	// Worker pool order is not deterministic; look the entry up.
	var weaver *models.Person
	for _, p := range celebrities.All() {
		if p.LastName == "Weaver" {
			weaver = p
		}
	}
	if assert.NotNil(t, weaver) {
		assert.Equal(t, "Sigourney", weaver.FirstName)
		assert.Equal(t, "F", weaver.Gender)
		assert.Equal(t, []string{"Alien", "Aliens", "Avatar"}, weaver.NotableWorks)
		if assert.NotNil(t, weaver.BirthDate) {
			assert.Equal(t, 1949, weaver.BirthDate.Year())
		}
	}
}

func TestImportSkipsMalformedLines(t *testing.T) {
	path := writeFile(t, "celebrities.txt", `# one good, three bad
Sigourney,Weaver,1949-10-08,F,American
,,1949-10-08,F,American
Bad,Date,not-a-date,M,British
only,three,fields
`)
	imp, _, celebrities := newImporter()

	report, err := imp.ImportCelebrities(path)
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 3, report.Skipped)
	assert.Equal(t, 1, celebrities.Len())
}

func TestImportContent(t *testing.T) {
	path := writeFile(t, "content.txt", `# title,year,rating,genres,director,summary
Alien,1979,8.5,Horror|Sci-Fi,Ridley Scott,A commercial crew encounters a deadly lifeform
Heat,1995,8.3,Crime|Thriller,Michael Mann,A thief plans one last score, then gets out
Bad Rating,1990,eleven,Drama,Nobody
`)
	imp, content, _ := newImporter()

	report, err := imp.ImportContent(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 1, report.Skipped)

	var heat *models.ContentItem
	for _, item := range content.All() {
		if item.Title == "Heat" {
			heat = item
		}
	}
	if assert.NotNil(t, heat) {
		assert.Equal(t, 1995, heat.Year)
		assert.Equal(t, []string{"Crime", "Thriller"}, heat.Genres)
		// Commas inside the trailing summary field are preserved.
		assert.Equal(t, "A thief plans one last score, then gets out", heat.Summary)
	}
}

func TestImportSkipsOverlongLines(t *testing.T) {
	// A single oversized record must not abort the import.
	long := "Bloated,2001,5.0,Drama,Someone," + strings.Repeat("x", 70*1024)
	path := writeFile(t, "content.txt", `# one oversized line between two good ones
Alien,1979,8.5,Horror|Sci-Fi,Ridley Scott,A commercial crew encounters a deadly lifeform
`+long+`
Heat,1995,8.3,Crime|Thriller,Michael Mann
`)
	imp, content, _ := newImporter()

	report, err := imp.ImportContent(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 2, content.Len())
}

func TestImportAssignsUniqueIdentities(t *testing.T) {
	lines := "# generated\n"
	for i := 0; i < 200; i++ {
		lines += "Title,2000,5.0,Drama,Someone\n"
	}
	path := writeFile(t, "content.txt", lines)

	imp, content, _ := newImporter()
	imp.Workers = 8

	report, err := imp.ImportContent(path)
	assert.NoError(t, err)
	assert.Equal(t, 200, report.Imported)

	seen := make(map[int64]bool)
	for _, item := range content.All() {
		assert.False(t, seen[item.ID])
		seen[item.ID] = true
	}
	assert.Len(t, seen, 200)
}

func TestImportMissingFile(t *testing.T) {
	imp, _, _ := newImporter()
	_, err := imp.ImportCelebrities(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
