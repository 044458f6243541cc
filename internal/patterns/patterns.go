// Package patterns holds the static lookup tables and compiled regexes the
// field extractors share. Everything here is immutable after init and safe to
// use from concurrent processing calls.
package patterns

import (
	"regexp"
	"strings"
)

// TechSkills is the skill vocabulary. Lowercase; matched against lowercased
// text with word-boundary patterns (see SkillPatterns).
var TechSkills = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node.js", "django", "flask",
	"html", "css", "html5", "css3", "sql", "nosql", "mongodb", "postgresql", "mysql", "mariadb",
	"aws", "azure", "gcp", "docker", "kubernetes", "ci/cd", "git", "jenkins", "terraform",
	"machine learning", "deep learning", "nlp", "data science", "data analysis", "powerbi",
	"r", "golang", "c++", "c#", "php", "ruby", "scala", "swift", "kotlin", "typescript",
	"hadoop", "spark", "tableau", "excel", "powerpoint", "linux", "unix", "windows", "macos",
	"rest api", "graphql", "oauth", "json", "xml", "soap", "jquery", "bootstrap", "redux",
	"spring", "hibernate", "servlet", "jsp", "asp.net", "mvc", "mvvm", "oop", "tdd", "agile",
	"scrum", "kanban", "jira", "confluence", "project management", "team management",
	"leadership", "communication", "problem-solving", "critical thinking", "cooperation",
	"mobile development", "android", "ios", "react native", "flutter", "xamarin", "tensorflow",
	"pytorch", "keras", "scikit-learn", "pandas", "numpy", "matplotlib", "seaborn", "d3.js",
	"blockchain", "cryptocurrency", "smart contracts", "solidity", "web3", "ethereum",
	"devops", "sre", "system design", "microservices", "restful", "cybersecurity", "pentesting",
}

// TechSkillSet is TechSkills as a lookup set, for exact-equality checks
// against lowercased entity text.
var TechSkillSet = buildSkillSet()

func buildSkillSet() map[string]struct{} {
	set := make(map[string]struct{}, len(TechSkills))
	for _, term := range TechSkills {
		set[term] = struct{}{}
	}
	return set
}

// SkillPattern pairs a vocabulary term with its compiled word-boundary regex.
type SkillPattern struct {
	Term string
	Re   *regexp.Regexp
}

// SkillPatterns is built once from TechSkills. A trailing/leading \b is only
// emitted when the term edge is a word character; a literal `\bc\+\+\b` can
// never match because '+' is not a word character.
var SkillPatterns = buildSkillPatterns()

func buildSkillPatterns() []SkillPattern {
	out := make([]SkillPattern, 0, len(TechSkills))
	for _, term := range TechSkills {
		out = append(out, SkillPattern{Term: term, Re: regexp.MustCompile(WordPattern(term))})
	}
	return out
}

// WordPattern escapes term and anchors it on word boundaries where the edge
// characters allow one.
func WordPattern(term string) string {
	p := regexp.QuoteMeta(term)
	if isWordChar(rune(term[0])) {
		p = `\b` + p
	}
	if isWordChar(rune(term[len(term)-1])) {
		p = p + `\b`
	}
	return p
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Email and phone shapes. Phone tolerates an optional +country-code and any of
// the common 10-digit groupings; capture groups are concatenated by the caller.
var (
	Email = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	Phone = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?(\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}|\d{10})`)
)

// Languages catches capitalization variants of programming-language names that
// the lowercase vocabulary pass misses.
var Languages = regexp.MustCompile(`(?i)\b(?:Python|Java(?:Script)?|C\+\+|C#|PHP|Ruby|Go(?:lang)?|Swift|Kotlin|R|Scala|Perl|Rust|TypeScript|Dart|Objective-C|Shell|Bash|PowerShell|SQL|NoSQL)\b`)

// Education patterns and vocabulary.
var (
	// EducationOrgWords classifies an ORG entity as educational.
	EducationOrgWords = []string{"university", "college", "institute", "school"}

	Degree = regexp.MustCompile(`\b(?:Bachelor|Master|MBA|PhD|BSc|MSc|B\.Tech|M\.Tech|B\.E|M\.E|B\.A|M\.A|B\.Com|M\.Com|Bachelor's|Master's|Doctorate|Diploma)(?:\sof\s(?:Science|Arts|Engineering|Technology|Commerce|Business Administration))?\b`)
	Major  = regexp.MustCompile(`\bin\s(?:Computer Science|Information Technology|CSE| Business|Economics|Engineering|Mathematics|Physics|Chemistry|Biology|Psychology|Marketing|Finance|Accounting|Management|Law|Medicine|Communications|Media|Design|Architecture)\b`)
)

// Experience patterns. The four explicit-phrase shapes are tried against
// lowercased text; DateRange runs only when none of them matched.
var (
	ExperiencePhrases = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*(?:years|yrs)(?:\s*of)?\s*experience`),
		regexp.MustCompile(`experience\s*(?:of|for)?\s*(\d+)\+?\s*(?:years|yrs)`),
		regexp.MustCompile(`worked\s*(?:for)?\s*(\d+)\+?\s*(?:years|yrs)`),
		regexp.MustCompile(`(\d+)\+?\s*(?:years|yrs)(?:\s*in)`),
	}

	DateRange = regexp.MustCompile(`(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?,?\s*'?(\d{2,4})\s*-\s*(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|Present)[a-z]*\.?,?\s*'?(\d{0,4})`)
)

// MonthNum maps three-letter month abbreviations to calendar numbers.
var MonthNum = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

// Company generation and filtering vocabulary.
var (
	CompanySuffixes = []string{
		"Ltd", "Limited", "LLC", "Corp", "Corporation", "Inc", "Incorporated",
		"Pvt", "Private", "Pvt. Ltd", "Systems", "Technologies", "Solutions",
		"Software", "Services", "Group", "Holdings", "International", "Global",
	}

	// NonCompanyIndicators disqualify a candidate at generation time.
	NonCompanyIndicators = []string{
		"Certificate", "Certification", "Course", "Courses", "Stack", "Full Stack",
		"Data Science", "Data Scientist", "Engineer", "Developer", "Intern",
		"Machine Learning", "AI", "Artificial Intelligence", "NLP", "Deep Learning",
		"CSE", "Computer Science", "Education", "University", "College", "School",
		"Institute", "Fundamentals", "Analysis", "Analytics",
	}

	// OrgTechTerms mark an ORG entity as a pure technology term.
	OrgTechTerms = []string{"python", "java", "javascript", "ml", "ai", "nlp"}

	// Final-filter vocabularies.
	JobTitleWords = []string{"engineer", "developer", "scientist", "intern"}
	CourseWords   = []string{"certificate", "course", "fundamentals", "full stack"}
	TechTermWords = []string{"data science", "machine learning", "ai", "ml", "analytics"}

	// FallbackExcludeWords is the (deliberately shorter) disqualifier list for
	// the raw-entity fallback path. Kept distinct from NonCompanyIndicators;
	// unifying the two would silently change recall.
	FallbackExcludeWords = []string{
		"university", "college", "school", "data science", "python",
		"certificate", "machine learning", "fundamentals",
	}

	suffixPatterns     = buildSuffixPatterns()
	employmentPatterns = buildEmploymentPatterns()
)

// SuffixPatterns returns, per corporate suffix, the compiled pattern capturing
// the capitalized name preceding it. Index-aligned with CompanySuffixes.
func SuffixPatterns() []*regexp.Regexp { return suffixPatterns }

// EmploymentPatterns returns the "worked at <Company Suffix>" and
// "position at <Company Suffix>" patterns.
func EmploymentPatterns() []*regexp.Regexp { return employmentPatterns }

func buildSuffixPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(CompanySuffixes))
	for _, suffix := range CompanySuffixes {
		out = append(out, regexp.MustCompile(`([A-Z][A-Za-z\s]+)\s+`+regexp.QuoteMeta(suffix)+`\b`))
	}
	return out
}

func buildEmploymentPatterns() []*regexp.Regexp {
	quoted := make([]string, 0, len(CompanySuffixes))
	for _, suffix := range CompanySuffixes {
		quoted = append(quoted, regexp.QuoteMeta(suffix))
	}
	alt := strings.Join(quoted, "|")
	return []*regexp.Regexp{
		regexp.MustCompile(`(?:worked|employed)\s+(?:at|by|with|for)\s+([A-Z][A-Za-z\s]+(?:\s+(?:` + alt + `)))`),
		regexp.MustCompile(`(?:position|role|job)\s+at\s+([A-Z][A-Za-z\s]+(?:\s+(?:` + alt + `)))`),
	}
}

// ContainsAny reports whether s contains any of the indicators,
// case-insensitively. This is the shared disqualifier predicate; each caller
// keeps its own indicator vocabulary.
func ContainsAny(s string, indicators []string) bool {
	lower := strings.ToLower(s)
	for _, ind := range indicators {
		if strings.Contains(lower, strings.ToLower(ind)) {
			return true
		}
	}
	return false
}
