package admin

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gujjar-pranav/portfolio/internal/domain"
	"github.com/gujjar-pranav/portfolio/internal/knowledge"
)

func TestKBListText(t *testing.T) {
	kb := knowledge.Default()
	var buf bytes.Buffer

	require.NoError(t, runKBList(kb, "text", &buf))

	out := buf.String()
	assert.Contains(t, out, "projects")
	assert.Contains(t, out, "contact")
	for _, entry := range kb.Entries() {
		assert.Contains(t, out, entry.ID)
	}
}

func TestKBListJSON(t *testing.T) {
	kb := knowledge.Default()
	var buf bytes.Buffer

	require.NoError(t, runKBList(kb, "json", &buf))

	var data []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Len(t, data, kb.Len())
}

func TestKBShowText(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, runKBShow(knowledge.Default(), "education", "text", &buf))

	out := buf.String()
	assert.Contains(t, out, "ID: education")
	assert.Contains(t, out, "Keywords:")
}

func TestKBShowJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, runKBShow(knowledge.Default(), "contact", "json", &buf))

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "contact", data["id"])
	assert.NotEmpty(t, data["answer"])
}

func TestKBShowUnknownID(t *testing.T) {
	var buf bytes.Buffer

	err := runKBShow(knowledge.Default(), "no-such-entry", "text", &buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
	assert.Empty(t, buf.String())
}
