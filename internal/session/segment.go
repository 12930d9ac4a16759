package session

import "strings"

// charsPerMinute is the reading-speed heuristic used to estimate section time.
const charsPerMinute = 200

// paragraphsPerSection is how many consecutive paragraphs form one section.
const paragraphsPerSection = 2

// Section is a paced, ordered slice of a content item's explanatory text.
// Index is 1-based for display.
type Section struct {
	Index            int
	Text             string
	EstimatedMinutes int
}

// SplitSections splits raw explanatory text into paced reading sections.
// Paragraphs are separated by blank lines and grouped two per section.
// Text with no blank-line boundaries yields exactly one section.
func SplitSections(text string) []Section {
	paragraphs := splitParagraphs(text)
	if len(paragraphs) == 0 {
		paragraphs = []string{strings.TrimSpace(text)}
	}

	var sections []Section
	for i := 0; i < len(paragraphs); i += paragraphsPerSection {
		end := i + paragraphsPerSection
		if end > len(paragraphs) {
			end = len(paragraphs)
		}
		body := strings.Join(paragraphs[i:end], "\n\n")
		sections = append(sections, Section{
			Index:            len(sections) + 1,
			Text:             body,
			EstimatedMinutes: estimateMinutes(body),
		})
	}
	return sections
}

// splitParagraphs splits on blank-line boundaries, dropping empty chunks.
func splitParagraphs(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	chunks := strings.Split(normalized, "\n\n")

	var paragraphs []string
	for _, c := range chunks {
		c = strings.TrimSpace(c)
		if c != "" {
			paragraphs = append(paragraphs, c)
		}
	}
	return paragraphs
}

// estimateMinutes converts character count to reading minutes, minimum 1.
func estimateMinutes(text string) int {
	chars := len([]rune(text))
	mins := (chars + charsPerMinute - 1) / charsPerMinute
	if mins < 1 {
		mins = 1
	}
	return mins
}
