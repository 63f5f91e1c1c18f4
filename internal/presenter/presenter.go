// Package presenter renders contacts to a text sink.
package presenter

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Header is printed before every text listing.
const Header = "Contact list:"

// Presenter writes contact listings to w in one of the supported formats.
type Presenter struct {
	w      io.Writer
	format string

	yamlDocs int // YAML documents written so far
}

// New returns a Presenter for format. An empty format means text.
// Returns ErrUnknownFormat for anything else that is not supported.
func New(w io.Writer, format string) (*Presenter, error) {
	if format == "" {
		format = types.FormatText
	}
	if !types.IsKnownFormat(format) {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownFormat, format)
	}
	return &Presenter{w: w, format: format}, nil
}

// Display renders contacts in order.
func (p *Presenter) Display(contacts []*types.Contact) error {
	switch p.format {
	case types.FormatJSON:
		return p.displayJSON(contacts)
	case types.FormatYAML:
		return p.displayYAML(contacts)
	default:
		return p.displayText(contacts)
	}
}

// Println writes a free-form line, used for banners between listings.
func (p *Presenter) Println(line string) error {
	if p.format != types.FormatText {
		return nil
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}

func (p *Presenter) displayText(contacts []*types.Contact) error {
	if _, err := fmt.Fprintln(p.w, Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, c := range contacts {
		if _, err := fmt.Fprintln(p.w, FormatLine(c)); err != nil {
			return fmt.Errorf("writing contact %d: %w", c.ID, err)
		}
	}
	return nil
}

func (p *Presenter) displayJSON(contacts []*types.Contact) error {
	out, err := json.MarshalIndent(values(contacts), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal contacts: %w", err)
	}
	if _, err := fmt.Fprintln(p.w, string(out)); err != nil {
		return fmt.Errorf("writing contacts: %w", err)
	}
	return nil
}

// displayYAML writes each listing as its own YAML document, separated by
// "---" so consecutive listings do not merge into one sequence.
func (p *Presenter) displayYAML(contacts []*types.Contact) error {
	if p.yamlDocs > 0 {
		if _, err := io.WriteString(p.w, "---\n"); err != nil {
			return fmt.Errorf("writing document separator: %w", err)
		}
	}
	p.yamlDocs++
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(values(contacts)); err != nil {
		return fmt.Errorf("encoding contacts: %w", err)
	}
	return enc.Close()
}

// FormatLine renders one contact as "{id}: {name}, {phone}, {email}".
func FormatLine(c *types.Contact) string {
	return fmt.Sprintf("%d: %s, %s, %s", c.ID, c.Name, c.Phone, c.Email)
}

// values copies contacts into a non-nil slice so an empty listing encodes
// as an empty sequence rather than null.
func values(contacts []*types.Contact) []types.Contact {
	out := make([]types.Contact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, *c)
	}
	return out
}
