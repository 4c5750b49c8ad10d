package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextFromHTML(t *testing.T) {
	html := `<html><body>
		<header>Site chrome</header>
		<div class="job-description">
			<h1>Senior DevOps Engineer</h1>
			<ul><li>Kubernetes</li><li>Terraform</li></ul>
		</div>
		<aside class="sidebar">Related jobs</aside>
	</body></html>`

	text, err := ExtractTextFromHTML(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior DevOps Engineer")
	assert.Contains(t, text, "Kubernetes")
	assert.Contains(t, text, "Terraform")
	assert.NotContains(t, text, "Site chrome")
	assert.NotContains(t, text, "Related jobs")
}

func TestExtractTextFromHTMLBlockSeparation(t *testing.T) {
	html := `<article><p>First paragraph</p><p>Second paragraph</p></article>`

	text, err := ExtractTextFromHTML(html)
	require.NoError(t, err)

	assert.NotContains(t, text, "First paragraphSecond",
		"block elements must not run together")
}

func TestExtractTextFromHTMLFallsBackToBody(t *testing.T) {
	html := `<html><body><span>Plain posting text</span></body></html>`

	text, err := ExtractTextFromHTML(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Plain posting text")
}
