package verso

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHighlightCodeBlocks_KnownLanguage(t *testing.T) {
	in := `<p>intro</p><pre lang="go"><code>fmt.Println(&quot;hi&quot;)</code></pre>`

	out := highlightCodeBlocks(in)
	require.Contains(t, out, `<p>intro</p>`)
	require.Contains(t, out, `<div class="code"><div>`)
	require.Contains(t, out, "</div></div>")
	require.Contains(t, out, "<table")
	require.Contains(t, out, "Println")
	require.NotContains(t, out, `<pre lang="go">`)
}

func TestHighlightCodeBlocks_UnknownLanguageFallsBackToPlainText(t *testing.T) {
	in := `<pre lang="nosuchlanguage"><code>plain words here</code></pre>`

	out := highlightCodeBlocks(in)
	require.Contains(t, out, `<div class="code"><div>`)
	require.Contains(t, out, "<table")
	require.Contains(t, out, "plain words here")
}

func TestHighlightCodeBlocks_MultiLineContent(t *testing.T) {
	in := "<pre lang=\"go\"><code>package main\n\nfunc main() {}\n</code></pre>"

	out := highlightCodeBlocks(in)
	require.Contains(t, out, `<div class="code"><div>`)
	require.Contains(t, out, "main")
}

func TestHighlightCodeBlocks_ReplacesEveryBlock(t *testing.T) {
	in := `<pre lang="go"><code>a := 1</code></pre><p>between</p><pre lang="go"><code>b := 2</code></pre>`

	out := highlightCodeBlocks(in)
	require.Equal(t, 2, strings.Count(out, `<div class="code"><div>`))
	require.Contains(t, out, "<p>between</p>")
}

func TestHighlightCodeBlocks_NonMatchingHTMLUntouched(t *testing.T) {
	in := `<p>no code here</p><pre><code>no lang attribute</code></pre>`
	require.Equal(t, in, highlightCodeBlocks(in))
}

func TestUnescapeCode_FourEntities(t *testing.T) {
	require.Equal(t, `a < b && c > "d"`, unescapeCode("a &lt; b &amp;&amp; c &gt; &quot;d&quot;"))
}
