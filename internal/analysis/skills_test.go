package analysis

import "testing"

func TestDetectSkillsSplitsVocabularies(t *testing.T) {
	signals := DetectSkills("Kubernetes and Docker with strong leadership and teamwork")

	if !contains(signals.TechnicalSkills, "kubernetes") || !contains(signals.TechnicalSkills, "docker") {
		t.Fatalf("expected technical skills, got %v", signals.TechnicalSkills)
	}
	if !contains(signals.SoftSkills, "leadership") || !contains(signals.SoftSkills, "teamwork") {
		t.Fatalf("expected soft skills, got %v", signals.SoftSkills)
	}
	if len(signals.SkillsFound) != len(signals.TechnicalSkills)+len(signals.SoftSkills) {
		t.Fatalf("expected union of both subsets, got %v", signals.SkillsFound)
	}
}

func TestDetectSkillsIsCaseInsensitiveSubstring(t *testing.T) {
	signals := DetectSkills("POSTGRESQL tuning")

	// "postgresql" matches, and so does "sql" as a substring of it.
	if !contains(signals.TechnicalSkills, "postgresql") {
		t.Fatalf("expected postgresql, got %v", signals.TechnicalSkills)
	}
	if !contains(signals.TechnicalSkills, "sql") {
		t.Fatalf("expected sql substring match, got %v", signals.TechnicalSkills)
	}
}

func TestDetectSkillsEmptyText(t *testing.T) {
	signals := DetectSkills("")

	if len(signals.SkillsFound) != 0 {
		t.Fatalf("expected no skills, got %v", signals.SkillsFound)
	}
}
