package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMetaDescriptionPrefersStandardTag(t *testing.T) {
	page := `<head>
<meta property="og:description" content="og version">
<meta name="description" content="standard version">
</head>`

	assert.Equal(t, "standard version", ExtractMetaDescription(page))
}

func TestExtractMetaDescriptionFallsBackToOG(t *testing.T) {
	page := `<head><meta property="og:description" content="og version"></head>`

	assert.Equal(t, "og version", ExtractMetaDescription(page))
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, "Jane Smith, CEO & Founder",
		flatten("  Jane <strong>Smith</strong>,\n CEO &amp; Founder "))
}

func TestExtractHeadings(t *testing.T) {
	page := `<h1>One</h1><h2 class="x">Two</h2><h3>Three</h3><h4>Four</h4><h2></h2>`

	assert.Equal(t, []string{"One", "Two", "Three"}, extractHeadings(page))
}

func TestExtractAnchors(t *testing.T) {
	page := `<a href="/team" class="nav">Our <b>Team</b></a><a href="https://x.example">X</a>`

	anchors := extractAnchors(page)
	assert.Equal(t, []anchor{
		{href: "/team", text: "Our Team"},
		{href: "https://x.example", text: "X"},
	}, anchors)
}

func TestPageText(t *testing.T) {
	page := `<html><body><div>First block</div><p>Second   block</p><br>Third</body></html>`

	text := PageText(page)
	assert.Contains(t, text, "First block\n")
	assert.Contains(t, text, "Second block")
	assert.Contains(t, text, "Third")
}
