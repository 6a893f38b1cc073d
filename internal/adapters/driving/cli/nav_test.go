package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsindex/internal/core/domain"
)

func TestNavCmd_PrintsJSON(t *testing.T) {
	desc := "Install it"
	docs := &fakeDocumentation{nav: []domain.NavigationSection{{
		Title: "Getting Started",
		Links: []domain.NavigationLink{{Title: "Installation", Href: "/docs/v1/installation", Description: &desc}},
	}}}
	env := setupCLITest(t, &Services{Documentation: docs})

	require.NoError(t, env.run("nav", "v1"))
	assert.Equal(t, "v1", docs.navVersion)

	var got []domain.NavigationSection
	require.NoError(t, json.Unmarshal(env.out.Bytes(), &got))
	assert.Equal(t, docs.nav, got)
}

func TestNavCmd_RequiresVersion(t *testing.T) {
	env := setupCLITest(t, &Services{Documentation: &fakeDocumentation{}})

	assert.Error(t, env.run("nav"))
}
