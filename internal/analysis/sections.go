package analysis

import "strings"

// DetectSections scans for the fixed section catalog. A section counts as
// found when any of its keywords appears anywhere in the text (substring
// match). Both result lists preserve the catalog's declaration order.
func DetectSections(text string) SectionSignals {
	lower := strings.ToLower(text)

	signals := SectionSignals{
		SectionsFound:   []string{},
		SectionsMissing: []string{},
	}

	for _, section := range sectionCatalog {
		found := false
		for _, keyword := range section.Keywords {
			if strings.Contains(lower, keyword) {
				found = true
				break
			}
		}

		if found {
			signals.SectionsFound = append(signals.SectionsFound, section.Name)
		} else {
			signals.SectionsMissing = append(signals.SectionsMissing, section.Name)
		}
	}

	return signals
}
