package eligibility

import "github.com/vidyasetu/scholarrank/core"

// MissingDocuments returns the documents an applicant would likely need to
// produce for the entry. The entry's own required-document list comes first,
// followed by hints derived from its restrictions. Purely informational; the
// verdict does not depend on it.
func MissingDocuments(profile *core.ApplicantProfile, entry *core.CatalogEntry) []string {
	var docs []string
	seen := make(map[string]bool)
	add := func(doc string) {
		if doc != "" && !seen[doc] {
			seen[doc] = true
			docs = append(docs, doc)
		}
	}

	for _, doc := range entry.RequiredDocs {
		add(doc)
	}

	if len(entry.Categories) > 0 && profile.Category != core.CategoryGeneral {
		add("caste/category certificate")
	}
	if entry.MaxIncome > 0 {
		add("income certificate")
	}
	if len(entry.Regions) > 0 {
		add("domicile certificate")
	}
	if len(entry.EducationLevels) > 0 {
		add("latest marksheet")
	}

	return docs
}
