// Package content holds the static copy of the landing page sections.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultDocument []byte

var (
	ErrInvalidContent = errors.New("content: invalid document")
	ErrMissingTitle   = errors.New("section title is required")
	ErrIncompleteFAQ  = errors.New("faq entry needs question and answer")
)

type Home struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	CTA      string `yaml:"cta"`
}

type About struct {
	Title      string   `yaml:"title"`
	Paragraphs []string `yaml:"paragraphs"`
}

type Milestone struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Roadmap struct {
	Title      string      `yaml:"title"`
	Milestones []Milestone `yaml:"milestones"`
}

type Item struct {
	Name  string  `yaml:"name"`
	Image string  `yaml:"image"`
	Price float64 `yaml:"price"`
}

type Showcase struct {
	Title string `yaml:"title"`
	Items []Item `yaml:"items"`
}

type Member struct {
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
	Image    string `yaml:"image"`
}

type Team struct {
	Title   string   `yaml:"title"`
	Members []Member `yaml:"members"`
}

type Question struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type FAQ struct {
	Title   string     `yaml:"title"`
	Entries []Question `yaml:"entries"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Footer struct {
	Links     []Link `yaml:"links"`
	Copyright string `yaml:"copyright"`
}

// Content is the whole landing page copy in page order.
type Content struct {
	Home     Home     `yaml:"home"`
	About    About    `yaml:"about"`
	Roadmap  Roadmap  `yaml:"roadmap"`
	Showcase Showcase `yaml:"showcase"`
	Team     Team     `yaml:"team"`
	FAQ      FAQ      `yaml:"faq"`
	Footer   Footer   `yaml:"footer"`
}

// Load parses the embedded document.
func Load() (*Content, error) {
	return Parse(defaultDocument)
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Content
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, errors.Join(ErrInvalidContent, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports every section without a title and every incomplete FAQ entry.
func (c *Content) Validate() error {
	var errs []error

	sections := []struct{ name, title string }{
		{"home", c.Home.Title},
		{"about", c.About.Title},
		{"roadmap", c.Roadmap.Title},
		{"showcase", c.Showcase.Title},
		{"team", c.Team.Title},
		{"faq", c.FAQ.Title},
	}
	for _, s := range sections {
		if s.title == "" {
			errs = append(errs, fmt.Errorf("%s: %w", s.name, ErrMissingTitle))
		}
	}

	for i, q := range c.FAQ.Entries {
		if q.Question == "" || q.Answer == "" {
			errs = append(errs, fmt.Errorf("faq entry %d: %w", i, ErrIncompleteFAQ))
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidContent}, errs...)...)
	}
	return nil
}
