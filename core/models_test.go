package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "same content produces same ID", content: "https://example.com"},
		{name: "empty string", content: ""},
		{name: "long content", content: "This is a much longer piece of content that should still hash consistently"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("https://example.com")
	id2 := IDFromContent("https://example.org")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestSectionName_String(t *testing.T) {
	tests := []struct {
		section SectionName
		want    string
	}{
		{SectionCompanyDescription, "company_description"},
		{SectionAbout, "about"},
		{SectionLeadership, "leadership"},
		{SectionJobs, "jobs"},
		{SectionFinancial, "financial"},
		{SectionMainContent, "main_content"},
		{SectionPress, "press"},
		{SectionName(0), "unknown"},
		{SectionName(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.section.String(); got != tt.want {
				t.Errorf("SectionName.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSectionName_Marker(t *testing.T) {
	tests := []struct {
		section SectionName
		want    string
	}{
		{SectionCompanyDescription, "COMPANY DESCRIPTION:"},
		{SectionAbout, "ABOUT/MISSION:"},
		{SectionLeadership, "LEADERSHIP INFORMATION:"},
		{SectionJobs, "JOB POSTINGS"},
		{SectionFinancial, "FINANCIAL INFORMATION:"},
		{SectionMainContent, "MAIN CONTENT:"},
		{SectionPress, ""},
	}

	for _, tt := range tests {
		t.Run(tt.section.String(), func(t *testing.T) {
			if got := tt.section.Marker(); got != tt.want {
				t.Errorf("SectionName.Marker() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSections_Order(t *testing.T) {
	sections := Sections()
	if len(sections) != 7 {
		t.Fatalf("Sections() returned %d sections, want 7", len(sections))
	}
	if sections[0] != SectionCompanyDescription {
		t.Errorf("first section = %v, want company_description", sections[0])
	}
	if sections[len(sections)-1] != SectionPress {
		t.Errorf("last section = %v, want press", sections[len(sections)-1])
	}
}
