package verso

import (
	"fmt"
	"io"
	"strings"

	"github.com/russross/blackfriday/v2"
)

// MarkupConverter turns a raw post body into HTML. The concrete
// implementation is selected through the parser option.
type MarkupConverter interface {
	Convert(text string) (string, error)
}

// The registry is keyed by markup family and parser implementation, so a
// parser identifier only resolves within its configured family.
var markupConverters = map[string]func() MarkupConverter{
	"markdown/markdown":    newMarkdownConverter,
	"markdown/blackfriday": newMarkdownConverter,
	"markdown/goldmark":    newGoldmarkConverter,
}

func newMarkupConverter(markup, parser string) (MarkupConverter, error) {
	construct, ok := markupConverters[markup+"/"+parser]
	if !ok {
		return nil, fmt.Errorf("no %s parser %q", markup, parser)
	}
	return construct(), nil
}

// escapeCode escapes exactly the four entities the highlight pass undoes,
// so code blocks round-trip through the rendered HTML.
var escapeCode = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

type markdownConverter struct {
	renderer   blackfriday.Renderer
	extensions blackfriday.Extensions
}

func newMarkdownConverter() MarkupConverter {
	inner := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML |
			blackfriday.Smartypants |
			blackfriday.SmartypantsFractions |
			blackfriday.SmartypantsLatexDashes,
	})

	return &markdownConverter{
		renderer: &codeBlockRenderer{inner},
		extensions: blackfriday.NoIntraEmphasis |
			blackfriday.Tables |
			blackfriday.FencedCode |
			blackfriday.Autolink |
			blackfriday.Strikethrough,
	}
}

func (c *markdownConverter) Convert(text string) (string, error) {
	out := blackfriday.Run([]byte(text),
		blackfriday.WithRenderer(c.renderer),
		blackfriday.WithExtensions(c.extensions))
	return string(out), nil
}

// codeBlockRenderer overrides fenced code block output with the
// <pre lang="..."><code> convention the highlight pass matches.
type codeBlockRenderer struct {
	*blackfriday.HTMLRenderer
}

func (r *codeBlockRenderer) RenderNode(w io.Writer, node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
	if node.Type == blackfriday.CodeBlock {
		writeCodeBlock(w, string(node.CodeBlockData.Info), string(node.Literal))
		return blackfriday.GoToNext
	}
	return r.HTMLRenderer.RenderNode(w, node, entering)
}

func writeCodeBlock(w io.Writer, info, code string) {
	lang := ""
	if fields := strings.Fields(info); len(fields) > 0 {
		lang = fields[0]
	}

	if lang == "" {
		fmt.Fprintf(w, "<pre><code>%s</code></pre>\n", escapeCode.Replace(code))
		return
	}
	fmt.Fprintf(w, "<pre lang=%q><code>%s</code></pre>\n", lang, escapeCode.Replace(code))
}
