package session

import (
	"strings"
	"testing"
)

func TestSplitSections_GroupsTwoParagraphs(t *testing.T) {
	text := "Para 1.\n\nPara 2.\n\nPara 3.\n\nPara 4.\n\nPara 5."
	sections := SplitSections(text)

	if len(sections) != 3 {
		t.Fatalf("len(sections) = %d, want 3", len(sections))
	}
	if sections[0].Text != "Para 1.\n\nPara 2." {
		t.Errorf("section 1 text = %q", sections[0].Text)
	}
	if sections[2].Text != "Para 5." {
		t.Errorf("section 3 text = %q", sections[2].Text)
	}
	for i, sec := range sections {
		if sec.Index != i+1 {
			t.Errorf("section %d has Index %d", i, sec.Index)
		}
	}
}

func TestSplitSections_NoBlankLines_SingleSection(t *testing.T) {
	text := "One paragraph only.\nStill the same paragraph."
	sections := SplitSections(text)

	if len(sections) != 1 {
		t.Fatalf("len(sections) = %d, want 1", len(sections))
	}
}

func TestSplitSections_EstimatedMinutes_Floor(t *testing.T) {
	sections := SplitSections("short")
	if sections[0].EstimatedMinutes != 1 {
		t.Errorf("EstimatedMinutes = %d, want 1", sections[0].EstimatedMinutes)
	}
}

func TestSplitSections_EstimatedMinutes_CeilOfChars(t *testing.T) {
	// 450 chars in one section -> ceil(450/200) = 3 minutes.
	text := strings.Repeat("a", 450)
	sections := SplitSections(text)
	if got := sections[0].EstimatedMinutes; got != 3 {
		t.Errorf("EstimatedMinutes = %d, want 3", got)
	}
}

func TestSplitSections_AllEstimatesAtLeastOneMinute(t *testing.T) {
	texts := []string{
		"x",
		"a\n\nb\n\nc",
		strings.Repeat("palavra ", 100),
		"  \n\n  trimmed  \n\n ",
	}
	for _, text := range texts {
		for _, sec := range SplitSections(text) {
			if sec.EstimatedMinutes < 1 {
				t.Errorf("EstimatedMinutes = %d for text %q, want >= 1", sec.EstimatedMinutes, text)
			}
		}
	}
}

func TestSplitSections_Deterministic(t *testing.T) {
	text := "a\n\nb\n\nc\n\nd"
	first := SplitSections(text)
	second := SplitSections(text)
	if len(first) != len(second) {
		t.Fatalf("non-deterministic section count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("section %d differs between runs", i)
		}
	}
}

func TestSplitSections_CRLFNormalized(t *testing.T) {
	sections := SplitSections("a\r\n\r\nb\r\n\r\nc")
	if len(sections) != 2 {
		t.Errorf("len(sections) = %d, want 2", len(sections))
	}
}
