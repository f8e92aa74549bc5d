package seeder

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

const maxTitleLen = 200

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// groupsFile is the layout of the groups seed file:
//
//	groups:
//	  - slug: books
//	    title: Books
//	    description: Everything about reading.
type groupsFile struct {
	Groups []groupEntry `yaml:"groups"`
}

type groupEntry struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ParseGroups decodes and validates a groups seed file. Every entry is
// checked; the returned error lists all problems found.
func ParseGroups(r io.Reader) ([]domain.Group, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file groupsFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode groups: %w", err)
	}

	var (
		groups = make([]domain.Group, 0, len(file.Groups))
		seen   = make(map[string]int, len(file.Groups))
		errs   []error
	)
	for i, e := range file.Groups {
		g := domain.Group{
			Slug:        strings.TrimSpace(e.Slug),
			Title:       strings.TrimSpace(e.Title),
			Description: strings.TrimSpace(e.Description),
		}
		switch {
		case !slugPattern.MatchString(g.Slug):
			errs = append(errs, fmt.Errorf("group %d: invalid slug %q", i+1, e.Slug))
			continue
		case g.Title == "":
			errs = append(errs, fmt.Errorf("group %q: title is required", g.Slug))
			continue
		case utf8.RuneCountInString(g.Title) > maxTitleLen:
			errs = append(errs, fmt.Errorf("group %q: title longer than %d characters", g.Slug, maxTitleLen))
			continue
		}
		if first, dup := seen[g.Slug]; dup {
			errs = append(errs, fmt.Errorf("group %d: slug %q already used by group %d", i+1, g.Slug, first))
			continue
		}
		seen[g.Slug] = i + 1
		groups = append(groups, g)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return groups, nil
}
