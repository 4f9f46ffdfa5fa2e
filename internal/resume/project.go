package resume

import (
	"fmt"
	"strings"
)

// ProjectToText flattens a structured document into the canonical plain text
// consumed by the analyzer. The section order and line templates are fixed so
// the projection is deterministic for a given document.
func ProjectToText(doc *Document) string {
	if doc == nil {
		return ""
	}

	var b strings.Builder
	data := doc.Data

	if p := data.PersonalInfo; p != nil {
		writeLine(&b, p.FullName)
		writeLine(&b, p.Email)
		writeLine(&b, p.Phone)
		writeLine(&b, p.Address)
		writeLine(&b, p.LinkedIn)
		writeLine(&b, p.GitHub)
		writeLine(&b, p.Portfolio)
	}

	if data.Summary != "" {
		writeHeader(&b, "Professional Summary")
		writeLine(&b, data.Summary)
	}

	if len(data.Education) > 0 {
		writeHeader(&b, "Education")
		for _, e := range data.Education {
			if e.Degree != "" || e.Field != "" {
				writeLine(&b, strings.TrimSpace(fmt.Sprintf("%s in %s", e.Degree, e.Field)))
			}
			writeLine(&b, formatTenure(e.Institution, e.StartDate, e.EndDate))
			if e.GPA != "" {
				writeLine(&b, "GPA: "+e.GPA)
			}
		}
	}

	if len(data.Experience) > 0 {
		writeHeader(&b, "Work Experience")
		for _, e := range data.Experience {
			writeLine(&b, e.Title)
			writeLine(&b, formatTenure(e.Company, e.StartDate, e.EndDate))
			writeLine(&b, e.Location)
			writeBullets(&b, e.Description)
		}
	}

	if len(data.Projects) > 0 {
		writeHeader(&b, "Projects")
		for _, p := range data.Projects {
			writeLine(&b, p.Name)
			writeBullets(&b, p.Description)
			if len(p.Technologies) > 0 {
				writeLine(&b, "Technologies: "+strings.Join(p.Technologies, ", "))
			}
			writeLine(&b, p.Link)
		}
	}

	if len(data.Skills) > 0 {
		writeHeader(&b, "Skills")
		for _, group := range groupSkills(data.Skills) {
			writeLine(&b, fmt.Sprintf("%s: %s", group.category, strings.Join(group.names, ", ")))
		}
	}

	if len(data.Certifications) > 0 {
		writeHeader(&b, "Certifications")
		for _, c := range data.Certifications {
			writeLine(&b, formatCredential(c.Name, c.Issuer, c.Year))
		}
	}

	if len(data.Awards) > 0 {
		writeHeader(&b, "Awards")
		for _, a := range data.Awards {
			writeLine(&b, formatCredential(a.Title, a.Issuer, a.Year))
		}
	}

	if len(data.Extracurriculars) > 0 {
		writeHeader(&b, "Extracurricular Activities")
		writeBullets(&b, data.Extracurriculars)
	}

	return strings.TrimRight(b.String(), "\n")
}

type skillGroup struct {
	category string
	names    []string
}

// groupSkills buckets skills by category preserving first-seen category order.
// Uncategorized skills fall into a trailing "General" bucket.
func groupSkills(skills []Skill) []skillGroup {
	index := make(map[string]int)
	groups := []skillGroup{}

	for _, skill := range skills {
		category := skill.Category
		if category == "" {
			category = "General"
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, skillGroup{category: category})
		}
		groups[i].names = append(groups[i].names, skill.Name)
	}

	return groups
}

func formatTenure(name, start, end string) string {
	if name == "" {
		return ""
	}
	if start == "" {
		return name
	}
	if end == "" {
		end = "Present"
	}
	return fmt.Sprintf("%s | %s - %s", name, start, end)
}

func formatCredential(name, issuer, year string) string {
	if name == "" {
		return ""
	}
	line := name
	if issuer != "" {
		line += " - " + issuer
	}
	if year != "" {
		line += fmt.Sprintf(" (%s)", year)
	}
	return line
}

func writeHeader(b *strings.Builder, name string) {
	b.WriteString("\n")
	b.WriteString(name)
	b.WriteString("\n")
}

func writeLine(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	b.WriteString(s)
	b.WriteString("\n")
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		if item == "" {
			continue
		}
		b.WriteString("• ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}
