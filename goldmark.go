package verso

import (
	"bytes"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// goldmarkConverter is the alternate markup backend, selected with
// parser: goldmark.
type goldmarkConverter struct {
	md goldmark.Markdown
}

func newGoldmarkConverter() MarkupConverter {
	return &goldmarkConverter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				goldmarkhtml.WithUnsafe(),
				renderer.WithNodeRenderers(
					util.Prioritized(&fencedCodeRenderer{}, 100),
				),
			),
		),
	}
}

func (c *goldmarkConverter) Convert(text string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// fencedCodeRenderer emits fenced code blocks with the same
// <pre lang="..."><code> convention as the blackfriday backend.
type fencedCodeRenderer struct{}

func (r *fencedCodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(gmast.KindFencedCodeBlock, r.renderFencedCode)
}

func (r *fencedCodeRenderer) renderFencedCode(w util.BufWriter, source []byte, node gmast.Node, entering bool) (gmast.WalkStatus, error) {
	if !entering {
		return gmast.WalkContinue, nil
	}

	n := node.(*gmast.FencedCodeBlock)

	info := ""
	if l := n.Language(source); l != nil {
		info = string(l)
	}

	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		code.Write(segment.Value(source))
	}

	writeCodeBlock(w, info, code.String())
	return gmast.WalkSkipChildren, nil
}
