package taxonomy

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tax := Default()

	names := tax.Names()
	require.Len(t, names, 10)
	assert.Equal(t, "Software Engineer", names[0])
	assert.Equal(t, "Business Analyst", names[9])

	se, ok := tax.Role("Software Engineer")
	require.True(t, ok)
	assert.Equal(t,
		[]string{"python", "java", "c++", "sql", "git", "algorithms", "data structures", "flask", "react"},
		se.Skills)

	_, ok = tax.Role("Astronaut")
	assert.False(t, ok)
}

func TestResourceFor(t *testing.T) {
	tax := Default()
	assert.Equal(t, "https://www.w3schools.com/sql/", tax.ResourceFor("sql"))
	assert.Equal(t, "https://www.coursera.org/learn/machine-learning", tax.ResourceFor("machine learning"))
	assert.Equal(t, "https://www.google.com/search?q=learn+flask+tutorial", tax.ResourceFor("flask"))
	assert.Equal(t, "https://www.google.com/search?q=learn+data+structures+tutorial", tax.ResourceFor("data structures"))
	assert.Equal(t, "https://www.google.com/search?q=learn+c%2B%2B+tutorial", tax.ResourceFor("c++"))
}

func TestNewNormalizesSkills(t *testing.T) {
	tax := New([]Role{
		{Name: "Gopher", Skills: []string{" Go ", "go", "Docker", "", "REST  API"}},
		{Name: "Gopher", Skills: []string{"ignored"}},
		{Name: "Empty"},
	}, map[string]string{"Go": "https://go.dev/learn"})

	assert.Equal(t, []string{"Gopher", "Empty"}, tax.Names())
	r, _ := tax.Role("Gopher")
	assert.Equal(t, []string{"go", "docker", "rest api"}, r.Skills)
	assert.Equal(t, "https://go.dev/learn", tax.ResourceFor("go"))
}

func TestRolesReturnsCopy(t *testing.T) {
	tax := Default()
	roles := tax.Roles()
	want := slices.Clone(roles[0].Skills)
	roles[0].Name = "changed"
	roles[0].Skills[0] = "cobol"
	assert.Equal(t, "Software Engineer", tax.Roles()[0].Name)

	role, ok := tax.Role("Software Engineer")
	require.True(t, ok)
	assert.Equal(t, want, role.Skills)
	role.Skills[0] = "cobol"

	again, _ := tax.Role("Software Engineer")
	assert.Equal(t, want, again.Skills)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
roles:
  - name: SRE
    skills: [linux, prometheus]
resources:
  linux: https://example.com/linux
`), 0o644))

	tax, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"SRE"}, tax.Names())
	assert.Equal(t, "https://example.com/linux", tax.ResourceFor("linux"))

	def, err := Load("")
	require.NoError(t, err)
	assert.Len(t, def.Names(), 10)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"no roles":       "roles: []\n",
		"missing name":   "roles:\n  - skills: [go]\n",
		"duplicate name": "roles:\n  - name: A\n  - name: A\n",
		"bad url":        "roles:\n  - name: A\nresources:\n  go: not a url\n",
		"not yaml":       "roles: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
