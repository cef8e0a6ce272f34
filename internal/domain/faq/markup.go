package faq

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/sync/errgroup"
)

type translateFunc func(ctx context.Context, text string) (string, error)

// translateMarkup translates every non-blank text node of an HTML fragment
// and renders the fragment back. Elements and attributes pass through
// untouched, so the translator never sees markup.
func translateMarkup(ctx context.Context, markup string, concurrency int, translate translateFunc) (string, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return "", fmt.Errorf("parse answer markup: %w", err)
	}

	var texts []*html.Node
	for _, n := range nodes {
		collectTextNodes(n, &texts)
	}

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for _, n := range texts {
		g.Go(func() error {
			lead, core, trail := splitSpace(n.Data)
			out, err := translate(gctx, core)
			if err != nil {
				return err
			}
			n.Data = lead + out + trail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("render answer markup: %w", err)
		}
	}
	return buf.String(), nil
}

func collectTextNodes(n *html.Node, out *[]*html.Node) {
	if n.Type == html.TextNode {
		if strings.TrimSpace(n.Data) != "" {
			*out = append(*out, n)
		}
		return
	}
	if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectTextNodes(c, out)
	}
}

func splitSpace(s string) (lead, core, trail string) {
	start := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
	if start < 0 {
		return s, "", ""
	}
	end := strings.LastIndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
	// end indexes the first byte of the last non-space rune.
	_, size := utf8.DecodeRuneInString(s[end:])
	end += size
	return s[:start], s[start:end], s[end:]
}
