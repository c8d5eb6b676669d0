package normalize

import (
	"sort"
	"strings"
)

// skillTerms maps lowercase technology/competency markers to canonical skill
// names. Variants collapse onto one canonical form so dedup and matching see
// a single skill.
var skillTerms = map[string]string{
	"golang":      "Go",
	"javascript":  "JavaScript",
	"typescript":  "TypeScript",
	"python":      "Python",
	"java ":       "Java",
	"c#":          "C#",
	".net":        ".NET",
	"php":         "PHP",
	"sql":         "SQL",
	"postgresql":  "PostgreSQL",
	"mysql":       "MySQL",
	"mongodb":     "MongoDB",
	"react":       "React",
	"angular":     "Angular",
	"vue":         "Vue",
	"node.js":     "Node.js",
	"nodejs":      "Node.js",
	"docker":      "Docker",
	"kubernetes":  "Kubernetes",
	"k8s":         "Kubernetes",
	"aws":         "AWS",
	"azure":       "Azure",
	"excel":       "Excel",
	"sage":        "Sage",
	"pastel":      "Pastel",
	"syspro":      "Syspro",
	"bookkeeping": "Bookkeeping",
	"payroll":     "Payroll",
	"crm":         "CRM",
	"salesforce":  "Salesforce",
	"seo":         "SEO",
	"autocad":     "AutoCAD",
	"solidworks":  "SolidWorks",
	"project management": "Project Management",
	"customer service":   "Customer Service",
	"data analysis":      "Data Analysis",
}

// skillKeys fixes the scan order so output never depends on map iteration.
var skillKeys = func() []string {
	keys := make([]string, 0, len(skillTerms))
	for k := range skillTerms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

// Skills scans a description for known skill terms and returns a
// deduplicated canonical list. Order follows first appearance in the text so
// repeated runs over the same listing stay stable.
func Skills(description string) []string {
	lower := strings.ToLower(description)
	if lower == "" {
		return nil
	}

	type hit struct {
		pos  int
		name string
	}
	seen := make(map[string]bool)
	var hits []hit
	for _, term := range skillKeys {
		canonical := skillTerms[term]
		if idx := strings.Index(lower, term); idx >= 0 && !seen[canonical] {
			seen[canonical] = true
			hits = append(hits, hit{pos: idx, name: canonical})
		}
	}

	// First appearance in the text; position ties keep the scan order.
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}
