package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveTitle_ExtractsTitleAcrossLines(t *testing.T) {
	content := "<html><head><Title>\n  Foo Bar\n</title></head></html>"
	require.Equal(t, "Foo Bar", ResolveTitle(content, "foo-bar"))
}

func TestResolveTitle_CaseInsensitiveMarkers(t *testing.T) {
	require.Equal(t, "Upper", ResolveTitle("<TITLE>Upper</TITLE>", "x"))
}

func TestResolveTitle_NoMarker_FallsBackToSlug(t *testing.T) {
	require.Equal(t, "Json Formatter", ResolveTitle("<html><body>no title</body></html>", "json-formatter"))
}

func TestResolveTitle_EmptyTitleElement_FallsBackToSlug(t *testing.T) {
	require.Equal(t, "My Tool", ResolveTitle("<title>   </title>", "my-tool"))
}

func TestResolveTitle_MalformedHTMLNeverFails(t *testing.T) {
	require.Equal(t, "Broken Page", ResolveTitle("<<<>>><title", "broken-page"))
}

func TestTitleFromSlug_CapitalizesEachWord(t *testing.T) {
	require.Equal(t, "Color Picker Pro", TitleFromSlug("color-picker-pro"))
}
