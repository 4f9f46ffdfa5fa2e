package analysis

import (
	"reflect"
	"testing"
)

func TestDetectSectionsPreservesCatalogOrder(t *testing.T) {
	text := `Awards
Education
Work Experience`

	signals := DetectSections(text)

	wantFound := []string{"Work Experience", "Education", "Awards"}
	if !reflect.DeepEqual(signals.SectionsFound, wantFound) {
		t.Fatalf("expected found sections %v, got %v", wantFound, signals.SectionsFound)
	}

	wantMissing := []string{"Professional Summary", "Skills", "Projects", "Certifications"}
	if !reflect.DeepEqual(signals.SectionsMissing, wantMissing) {
		t.Fatalf("expected missing sections %v, got %v", wantMissing, signals.SectionsMissing)
	}
}

func TestDetectSectionsMatchesAnyKeywordAsSubstring(t *testing.T) {
	// "employment" anywhere in the text is enough for Work Experience.
	signals := DetectSections("Ten years of full-time employment.")

	if !contains(signals.SectionsFound, "Work Experience") {
		t.Fatalf("expected Work Experience, got %v", signals.SectionsFound)
	}
}

func TestDetectSectionsEmptyText(t *testing.T) {
	signals := DetectSections("")

	if len(signals.SectionsFound) != 0 {
		t.Fatalf("expected no sections, got %v", signals.SectionsFound)
	}
	if len(signals.SectionsMissing) != len(sectionCatalog) {
		t.Fatalf("expected all %d sections missing, got %d", len(sectionCatalog), len(signals.SectionsMissing))
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
