// Package format turns stored summary text into the HTML shown on the pages.
package format

import (
	"html"
	"html/template"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nrmattar-dev/boletin-no-oficial/internal/model"
)

const (
	DefaultCutLimit  = 500
	SectionDelimiter = "|||"
)

var (
	boldPattern      = regexp.MustCompile(`\*\*(.*?)\*\*`)
	avisoLinkPattern = regexp.MustCompile(`(?i)\[aviso[: ](\d+)\]`)
	urlPattern       = regexp.MustCompile(`https?://[^\s<>"']+[^\s<>"'.,;:!?)\]*]`)
)

// Bold converts **text** markers into <b> elements.
func Bold(text string) string {
	return boldPattern.ReplaceAllString(text, "<b>$1</b>")
}

// Cut splits text at the last space before limit runes. The two parts always
// concatenate back to text; rest is empty when text already fits.
func Cut(text string, limit int) (string, string) {
	if utf8.RuneCountInString(text) <= limit {
		return text, ""
	}

	runes := []rune(text)
	head := string(runes[:limit])
	if i := strings.LastIndex(head, " "); i >= 0 {
		head = head[:i]
	}

	return head, text[len(head):]
}

// ResumenOrTexto returns the stored summary, or the raw text behind the
// "not generated yet" prefix for avisos that were not summarized.
func ResumenOrTexto(a model.Aviso) string {
	if a.Resumido() {
		return a.TextoResumido
	}
	return model.ResumenPendiente + a.Texto
}

// Sections splits stored text on the delimiter line and drops empty parts.
func Sections(text string) []string {
	var sections []string
	for _, part := range strings.Split(text, SectionDelimiter) {
		part = strings.TrimSpace(part)
		if part != "" {
			sections = append(sections, part)
		}
	}
	return sections
}

// Inline escapes text and applies bold markers and links. Newlines become <br>.
func Inline(text string) string {
	out := linkURLs(text)
	out = Bold(out)
	out = avisoLinkPattern.ReplaceAllString(out, `<a href="/aviso/$1">aviso $1</a>`)
	out = strings.ReplaceAll(out, "\r\n", "\n")
	return strings.ReplaceAll(out, "\n", "<br>")
}

// linkURLs finds URLs in the raw text and escapes them and the text around
// them separately, so quotes next to a URL stay outside the link.
func linkURLs(text string) string {
	var sb strings.Builder
	last := 0
	for _, loc := range urlPattern.FindAllStringIndex(text, -1) {
		sb.WriteString(html.EscapeString(text[last:loc[0]]))
		u := html.EscapeString(text[loc[0]:loc[1]])
		sb.WriteString(`<a href="` + u + `">` + u + `</a>`)
		last = loc[1]
	}
	sb.WriteString(html.EscapeString(text[last:]))
	return sb.String()
}

// Paragraphs renders every section of text as its own <p>.
func Paragraphs(text string) string {
	var sb strings.Builder
	for _, s := range Sections(text) {
		sb.WriteString("<p>")
		sb.WriteString(Inline(s))
		sb.WriteString("</p>")
	}
	return sb.String()
}

type Formatter struct {
	sanitizer *Sanitizer
	limit     int
}

func NewFormatter(limit int) *Formatter {
	if limit <= 0 {
		limit = DefaultCutLimit
	}
	return &Formatter{sanitizer: NewSanitizer(), limit: limit}
}

// Preview returns the visible head and the collapsible tail of an aviso summary.
func (f *Formatter) Preview(a model.Aviso) (template.HTML, template.HTML) {
	text := strings.ReplaceAll(ResumenOrTexto(a), SectionDelimiter, "\n")
	corto, largo := Cut(text, f.limit)
	return f.sanitizer.HTML(Inline(corto)), f.sanitizer.HTML(Inline(largo))
}

// Full renders a complete stored text, one paragraph per section.
func (f *Formatter) Full(text string) template.HTML {
	return f.sanitizer.HTML(Paragraphs(text))
}
