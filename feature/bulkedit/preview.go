package bulkedit

import (
	"html"
	"strings"

	"bulk-editor/feature/listings"
)

// textPreview highlights the changed middle part of before and after.
func textPreview(before, after string) listings.Preview {
	b, a := []rune(before), []rune(after)

	prefix := 0
	for prefix < len(b) && prefix < len(a) && b[prefix] == a[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(b)-prefix && suffix < len(a)-prefix && b[len(b)-1-suffix] == a[len(a)-1-suffix] {
		suffix++
	}

	var sb strings.Builder
	sb.WriteString(html.EscapeString(string(b[:prefix])))
	if removed := string(b[prefix : len(b)-suffix]); removed != "" {
		sb.WriteString("<del>" + html.EscapeString(removed) + "</del>")
	}
	if added := string(a[prefix : len(a)-suffix]); added != "" {
		sb.WriteString("<ins>" + html.EscapeString(added) + "</ins>")
	}
	sb.WriteString(html.EscapeString(string(b[len(b)-suffix:])))

	return listings.Preview{Before: before, After: after, Markup: sb.String()}
}

// listPreview marks removed and added items; kept items are plain.
func listPreview(before, after []string) listings.Preview {
	kept := make(map[string]struct{}, len(after))
	for _, v := range after {
		kept[v] = struct{}{}
	}
	existing := make(map[string]struct{}, len(before))

	parts := make([]string, 0, len(before)+len(after))
	for _, v := range before {
		existing[v] = struct{}{}
		if _, ok := kept[v]; ok {
			parts = append(parts, html.EscapeString(v))
		} else {
			parts = append(parts, "<del>"+html.EscapeString(v)+"</del>")
		}
	}
	for _, v := range after {
		if _, ok := existing[v]; !ok {
			parts = append(parts, "<ins>"+html.EscapeString(v)+"</ins>")
		}
	}

	return listings.Preview{
		Before: strings.Join(before, ", "),
		After:  strings.Join(after, ", "),
		Markup: strings.Join(parts, ", "),
	}
}
