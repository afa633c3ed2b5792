package summary

import (
	"fmt"
	"strings"

	"github.com/leadbrief/internal/prompts"
)

// ParseSections splits the single-call variant's free-text output into
// the fixed section map. The grammar is line-oriented: a line equal to
// "## <Section name>" (or "<Section name>:") opens that section, and
// every following line is appended to it until the next header. Text
// before the first header is ignored.
//
// All four summary sections must be present, each exactly once;
// anything else is a KindUnparseable error rather than silently lost
// content.
func ParseSections(text string) (map[prompts.Section]string, error) {
	sections := make(map[prompts.Section]string, len(prompts.SummarySections))

	var current prompts.Section
	var body strings.Builder

	flush := func() error {
		if current == "" {
			return nil
		}
		if _, dup := sections[current]; dup {
			return newError(KindUnparseable,
				fmt.Sprintf("section %q appears more than once", current), nil)
		}
		sections[current] = strings.TrimSpace(body.String())
		body.Reset()
		return nil
	}

	for _, line := range strings.Split(text, "\n") {
		if section, ok := matchHeader(line); ok {
			if err := flush(); err != nil {
				return nil, err
			}
			current = section
			continue
		}
		if current != "" {
			body.WriteString(line)
			body.WriteString("\n")
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	for _, section := range prompts.SummarySections {
		if _, ok := sections[section]; !ok {
			return nil, newError(KindUnparseable,
				fmt.Sprintf("section %q missing from generated output", section), nil)
		}
	}

	return sections, nil
}

// matchHeader reports whether a line is a recognized section header.
func matchHeader(line string) (prompts.Section, bool) {
	trimmed := strings.TrimSpace(line)
	for _, section := range prompts.SummarySections {
		if trimmed == prompts.SectionHeaderPrefix+string(section) ||
			trimmed == string(section)+":" {
			return section, true
		}
	}
	return "", false
}
