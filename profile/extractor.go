package profile

import (
	"strings"

	"github.com/saleslens/saleslens/core"
)

// blobMarkers lists every marker that can start a line of the structured
// content blob, in wire order. Section boundaries are computed by position
// lookups against this list; no regex scanning is involved.
//
// "COMPANY NAME:" and "MAIN HEADINGS:" never map to an embeddable section
// themselves, but they still terminate neighboring sections.
var blobMarkers = []string{
	"COMPANY NAME:",
	"COMPANY DESCRIPTION:",
	"MAIN HEADINGS:",
	"ABOUT/MISSION:",
	"LEADERSHIP INFORMATION:",
	"JOB POSTINGS",
	"FINANCIAL INFORMATION:",
	"MAIN CONTENT:",
}

// ExtractSection returns the substring of text belonging to the section
// started by marker.
//
// The scan rule: content begins at the first line break after the first
// occurrence of marker and ends at whichever other known marker occurs
// earliest after that point, or at the end of text. The result is trimmed
// of surrounding whitespace. A missing marker, or a marker with no line
// break after it, yields an empty string; absence is a legitimate
// "section missing" signal, never an error.
//
// Extraction is idempotent: identical inputs always yield identical output.
//
// Overlapping or out-of-order markers in malformed input yield whatever
// substring the scan rule produces; marker ordering is deliberately not
// validated.
func ExtractSection(text, marker string) string {
	if text == "" || marker == "" {
		return ""
	}

	start := strings.Index(text, marker)
	if start == -1 {
		return ""
	}

	contentStart := strings.Index(text[start:], "\n")
	if contentStart == -1 {
		return ""
	}
	contentStart += start

	// Section runs until the earliest occurrence of any other marker.
	end := len(text)
	for _, m := range blobMarkers {
		if m == marker {
			continue
		}
		if idx := strings.Index(text[contentStart:], m); idx != -1 && contentStart+idx < end {
			end = contentStart + idx
		}
	}

	return strings.TrimSpace(text[contentStart:end])
}

// SectionText returns the display text for one section of a profile.
// Press content lives outside the structured blob and is returned directly;
// every other section is extracted from the raw content blob.
func SectionText(profile *core.CompanyProfile, section core.SectionName) string {
	if profile == nil {
		return ""
	}
	if section == core.SectionPress {
		return profile.PressContent
	}
	return ExtractSection(profile.RawContent, section.Marker())
}
