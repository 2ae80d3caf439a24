package verso

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// codeBlockPattern matches the <pre lang="..."><code>...</code></pre>
// convention both markup backends emit. The body match is non-greedy so
// adjacent blocks stay separate, and (?s) lets it span lines. The pattern
// is scoped strictly to this convention; it is not an HTML parser.
var codeBlockPattern = regexp.MustCompile(`(?s)<pre[^>]*\blang="([^">]+)"[^>]*><code>(.*?)</code></pre>`)

// highlightCodeBlocks rewrites every matching code block in the document
// with highlighted markup and a line-number table. An unknown language
// falls back to the plain-text lexer; highlighting never fails the run.
// Non-matching HTML passes through unchanged.
func highlightCodeBlocks(html string) string {
	return codeBlockPattern.ReplaceAllStringFunc(html, func(block string) string {
		groups := codeBlockPattern.FindStringSubmatch(block)
		lang, code := groups[1], unescapeCode(groups[2])

		lexer := lexers.Get(lang)
		if lexer == nil {
			lexer = lexers.Fallback
		}
		lexer = chroma.Coalesce(lexer)

		iterator, err := lexer.Tokenise(nil, code)
		if err != nil {
			return block
		}

		formatter := chromahtml.New(
			chromahtml.WithLineNumbers(true),
			chromahtml.LineNumbersInTable(true),
		)

		var b bytes.Buffer
		if err := formatter.Format(&b, styles.Fallback, iterator); err != nil {
			return block
		}

		return `<div class="code"><div>` + b.String() + `</div></div>`
	})
}

// unescapeCode undoes the entity escaping applied when the block was
// embedded in HTML. Sequential replacement, &amp; first.
func unescapeCode(code string) string {
	for _, sub := range [...][2]string{
		{"&amp;", "&"},
		{"&gt;", ">"},
		{"&lt;", "<"},
		{"&quot;", `"`},
	} {
		code = strings.ReplaceAll(code, sub[0], sub[1])
	}
	return code
}
