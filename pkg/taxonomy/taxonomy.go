// Package taxonomy holds the role → required-skills mapping and the skill → learning-resource links.
// A Taxonomy is built once at startup and never mutated, so it is safe to share across requests.
package taxonomy

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"go.yaml.in/yaml/v4"

	"github.com/artem13815/resume-analyzer/pkg/nlp"
)

//go:embed default.yaml
var defaultYAML []byte

// Role is a job role with its required skills (lowercase, de-duplicated, in declaration order).
type Role struct {
	Name   string
	Skills []string
}

// Taxonomy is the immutable role and resource configuration.
type Taxonomy struct {
	roles     []Role
	index     map[string]int
	resources map[string]string
}

type fileRole struct {
	Name   string   `yaml:"name" validate:"required"`
	Skills []string `yaml:"skills" validate:"dive,required"`
}

type file struct {
	Roles     []fileRole        `yaml:"roles" validate:"required,min=1,unique=Name,dive"`
	Resources map[string]string `yaml:"resources" validate:"dive,keys,required,endkeys,url"`
}

var validate = validator.New()

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	t, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("taxonomy: embedded default is invalid: %v", err))
	}
	return t
}

// Load reads a taxonomy from a YAML file. An empty path yields the built-in default.
func Load(path string) (*Taxonomy, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a YAML taxonomy document.
func Parse(data []byte) (*Taxonomy, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	roles := make([]Role, 0, len(f.Roles))
	for _, r := range f.Roles {
		roles = append(roles, Role{Name: r.Name, Skills: r.Skills})
	}
	return New(roles, f.Resources), nil
}

// New builds a taxonomy from roles and resource links. Skill names are normalized
// and de-duplicated; the inputs are copied.
func New(roles []Role, resources map[string]string) *Taxonomy {
	t := &Taxonomy{
		roles:     make([]Role, 0, len(roles)),
		index:     make(map[string]int, len(roles)),
		resources: make(map[string]string, len(resources)),
	}
	for _, r := range roles {
		if _, dup := t.index[r.Name]; dup {
			continue
		}
		seen := make(map[string]struct{}, len(r.Skills))
		skills := make([]string, 0, len(r.Skills))
		for _, s := range r.Skills {
			s = nlp.NormalizeSkill(s)
			if _, ok := seen[s]; ok || s == "" {
				continue
			}
			seen[s] = struct{}{}
			skills = append(skills, s)
		}
		t.index[r.Name] = len(t.roles)
		t.roles = append(t.roles, Role{Name: r.Name, Skills: skills})
	}
	for skill, link := range resources {
		t.resources[nlp.NormalizeSkill(skill)] = link
	}
	return t
}

// Roles returns copies of all roles in declaration order.
func (t *Taxonomy) Roles() []Role {
	out := make([]Role, len(t.roles))
	for i, r := range t.roles {
		out[i] = r.clone()
	}
	return out
}

// Names returns role names in declaration order.
func (t *Taxonomy) Names() []string {
	out := make([]string, len(t.roles))
	for i, r := range t.roles {
		out[i] = r.Name
	}
	return out
}

// Role looks a role up by its exact name.
func (t *Taxonomy) Role(name string) (Role, bool) {
	i, ok := t.index[name]
	if !ok {
		return Role{}, false
	}
	return t.roles[i].clone(), true
}

func (r Role) clone() Role {
	r.Skills = slices.Clone(r.Skills)
	return r
}

// ResourceFor returns the learning link for a skill, or a search query URL when none is configured.
func (t *Taxonomy) ResourceFor(skill string) string {
	if link, ok := t.resources[skill]; ok {
		return link
	}
	return "https://www.google.com/search?q=learn+" + url.QueryEscape(skill) + "+tutorial"
}
