package urlsource

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// linkAttrs lists the URL-carrying attribute per element.
var linkAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
}

// extractHTML returns absolute http(s) links in document order, without
// duplicates. Relative links are dropped: a local file has no base URL.
func extractHTML(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var out []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if key, ok := linkAttrs[n.Data]; ok {
				for _, a := range n.Attr {
					if !strings.EqualFold(a.Key, key) {
						continue
					}
					if s, ok := absoluteHTTP(a.Val); ok {
						if _, dup := seen[s]; !dup {
							seen[s] = struct{}{}
							out = append(out, s)
						}
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return out, nil
}

func absoluteHTTP(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.String(), true
	default:
		return "", false
	}
}
