package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadbrief/internal/prompts"
)

func TestParseSections_HeaderGrammar(t *testing.T) {
	text := "## Product Interest\n- phone system fit\n- advanced plan\n" +
		"## Where and Why\nwebinar signup\n" +
		"## Historical Relationship\nconsistent CC interest\n" +
		"## Sales Enablement Hook\nlead with the outage story\n"

	sections, err := ParseSections(text)
	require.NoError(t, err)

	assert.Equal(t, "- phone system fit\n- advanced plan", sections[prompts.SectionProductInterest])
	assert.Equal(t, "webinar signup", sections[prompts.SectionWhereAndWhy])
	assert.Equal(t, "consistent CC interest", sections[prompts.SectionHistorical])
	assert.Equal(t, "lead with the outage story", sections[prompts.SectionEnablementHook])
}

func TestParseSections_ColonHeadersAccepted(t *testing.T) {
	text := "Product Interest:\na\nWhere and Why:\nb\n" +
		"Historical Relationship:\nc\nSales Enablement Hook:\nd"

	sections, err := ParseSections(text)
	require.NoError(t, err)
	assert.Equal(t, "d", sections[prompts.SectionEnablementHook])
}

func TestParseSections_PreambleIgnored(t *testing.T) {
	text := "Sure, here is the summary you asked for.\n\n" +
		"## Product Interest\na\n## Where and Why\nb\n" +
		"## Historical Relationship\nc\n## Sales Enablement Hook\nd"

	sections, err := ParseSections(text)
	require.NoError(t, err)
	assert.Equal(t, "a", sections[prompts.SectionProductInterest])
}

func TestParseSections_MultilineBodiesPreserved(t *testing.T) {
	text := "## Product Interest\nline one\nline two\n\nline four\n" +
		"## Where and Why\nb\n## Historical Relationship\nc\n## Sales Enablement Hook\nd"

	sections, err := ParseSections(text)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n\nline four", sections[prompts.SectionProductInterest])
}

func TestParseSections_MissingSectionIsError(t *testing.T) {
	text := "## Product Interest\na\n## Where and Why\nb"

	_, err := ParseSections(text)
	require.Error(t, err)
	assert.Equal(t, KindUnparseable, KindOf(err))
	assert.Contains(t, err.Error(), "Historical Relationship")
}

func TestParseSections_DuplicateHeaderIsError(t *testing.T) {
	text := "## Product Interest\na\n## Product Interest\nb\n" +
		"## Where and Why\nc\n## Historical Relationship\nd\n## Sales Enablement Hook\ne"

	_, err := ParseSections(text)
	require.Error(t, err)
	assert.Equal(t, KindUnparseable, KindOf(err))
}

func TestParseSections_EmptyInput(t *testing.T) {
	_, err := ParseSections("")
	require.Error(t, err)
	assert.Equal(t, KindUnparseable, KindOf(err))
}
