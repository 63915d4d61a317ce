package deck

import (
	"path/filepath"
	"strings"
)

// delimiter opens and closes the frontmatter block and splits the body into
// question and answer.
const delimiter = "---"

// field is one ordered key/value pair of a card's frontmatter.
type field struct {
	key   string
	value string
}

// Card is one reviewable entry backed by a markdown file. It implements
// swot.Entry. Field writes mutate memory only; Deck.Sync persists them.
type Card struct {
	path     string
	fields   []field
	question string
	answer   string
}

// ID returns the card's identifier, the filename without extension.
func (c *Card) ID() string {
	return strings.TrimSuffix(filepath.Base(c.path), cardSuffix)
}

// Path returns the card's backing file path.
func (c *Card) Path() string {
	return c.path
}

// Field returns the named frontmatter value and whether it is present.
func (c *Card) Field(name string) (string, bool) {
	for _, f := range c.fields {
		if f.key == name {
			return f.value, true
		}
	}
	return "", false
}

// SetField updates the named frontmatter value in place, preserving field
// order; unknown names are appended at the end of the block.
func (c *Card) SetField(name, value string) {
	for i := range c.fields {
		if c.fields[i].key == name {
			c.fields[i].value = value
			return
		}
	}
	c.fields = append(c.fields, field{key: name, value: value})
}

// Body returns the card's question and answer text.
func (c *Card) Body() (question, answer string) {
	return c.question, c.answer
}

// parseCard decodes a card file. Parsing is lenient: content without a
// well-formed frontmatter block becomes an all-body card with no fields,
// which the repository simply never selects as due.
func parseCard(path, data string) *Card {
	c := &Card{path: path}
	lines := strings.Split(strings.TrimSuffix(data, "\n"), "\n")

	body := lines
	if len(lines) > 0 && lines[0] == delimiter {
		if end := indexOf(lines[1:], delimiter); end >= 0 {
			c.fields = parseFields(lines[1 : 1+end])
			body = lines[2+end:]
		}
	}

	if split := indexOf(body, delimiter); split >= 0 {
		c.question = strings.Join(body[:split], "\n")
		c.answer = strings.Join(body[split+1:], "\n")
	} else {
		c.question = strings.Join(body, "\n")
	}
	return c
}

func parseFields(lines []string) []field {
	var fields []field
	for _, line := range lines {
		key, value, ok := strings.Cut(line, ":")
		if !ok || key == "" {
			continue
		}
		fields = append(fields, field{key: key, value: strings.TrimSpace(value)})
	}
	return fields
}

func indexOf(lines []string, want string) int {
	for i, line := range lines {
		if line == want {
			return i
		}
	}
	return -1
}

// format encodes the card back into its file form: frontmatter block, then
// the question, then the answer behind a delimiter line. The result always
// ends in exactly one newline, so parse and format round-trip.
func (c *Card) format() string {
	var b strings.Builder
	b.WriteString(delimiter + "\n")
	for _, f := range c.fields {
		if f.value == "" {
			b.WriteString(f.key + ":\n")
		} else {
			b.WriteString(f.key + ": " + f.value + "\n")
		}
	}
	b.WriteString(delimiter + "\n")
	b.WriteString(c.question)
	if c.answer != "" {
		b.WriteString("\n" + delimiter + "\n" + c.answer)
	}
	b.WriteString("\n")
	return b.String()
}
