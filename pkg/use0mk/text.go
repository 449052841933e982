package use0mk

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// urlPattern finds URL-shaped tokens in free text.
var urlPattern = regexp.MustCompile(`https?://\S+`)

// trailingPunct is sentence punctuation that may stick to a URL token.
const trailingPunct = ".,;:!?)"

// ShortenText shortens every URL in text that does not already point at
// 0.mk and substitutes the short URIs in place. The produced links are
// returned in the order their URLs first appear. A URL occurring several
// times is shortened once and replaced everywhere.
//
// On failure the original text is returned together with the links created
// before the error, so that the caller can delete them.
func (c *Client) ShortenText(ctx context.Context, text string) (string, []*Link, error) {
	var (
		links   []*Link
		shorter = make(map[string]string)
	)

	for _, match := range urlPattern.FindAllString(text, -1) {
		if _, seen := shorter[match]; seen || c.IsServiceURI(strings.TrimRight(match, trailingPunct)) {
			continue
		}

		link, err := c.Shorten(ctx, match, "")
		if err != nil {
			return text, links, fmt.Errorf("shorten %q: %w", match, err)
		}
		links = append(links, link)

		short, ok := link.ShortURI()
		if !ok {
			c.logger.Warn("no short URI in response, leaving URL as is", zap.String("url", match))
			short = match
		}
		shorter[match] = short
	}

	if len(shorter) == 0 {
		return text, links, nil
	}

	rewritten := urlPattern.ReplaceAllStringFunc(text, func(m string) string {
		if s, ok := shorter[m]; ok {
			return s
		}
		return m
	})
	return rewritten, links, nil
}
