package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordPattern(t *testing.T) {
	assert.Equal(t, `\bpython\b`, WordPattern("python"))
	// '+' is not a word character, so no trailing boundary is emitted.
	assert.Equal(t, `\bc\+\+`, WordPattern("c++"))
	assert.Equal(t, `\bc#`, WordPattern("c#"))
	assert.Equal(t, `\bnode\.js\b`, WordPattern("node.js"))
}

func TestSkillPatternsMatchSymbolTerms(t *testing.T) {
	var cpp, csharp *SkillPattern
	for i := range SkillPatterns {
		switch SkillPatterns[i].Term {
		case "c++":
			cpp = &SkillPatterns[i]
		case "c#":
			csharp = &SkillPatterns[i]
		}
	}
	if assert.NotNil(t, cpp) {
		assert.True(t, cpp.Re.MatchString("proficient in c++ and go"))
		assert.False(t, cpp.Re.MatchString("objc++ bindings"), "no match mid-word")
	}
	if assert.NotNil(t, csharp) {
		assert.True(t, csharp.Re.MatchString("c# backend services"))
	}
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("Stanford University", EducationOrgWords))
	assert.True(t, ContainsAny("STANFORD UNIVERSITY", EducationOrgWords))
	assert.False(t, ContainsAny("Initech Solutions", EducationOrgWords))
	assert.False(t, ContainsAny("", EducationOrgWords))
}

func TestEmailPattern(t *testing.T) {
	assert.Equal(t, "jane.doe+hr@example.co.uk",
		Email.FindString("contact: jane.doe+hr@example.co.uk (preferred)"))
	assert.Equal(t, "", Email.FindString("no address here"))
}

func TestDateRangePattern(t *testing.T) {
	m := DateRange.FindStringSubmatch("Jan 2019 - Present")
	if assert.NotNil(t, m) {
		assert.Equal(t, "Jan", m[1])
		assert.Equal(t, "2019", m[2])
		assert.Equal(t, "Present", m[3])
		assert.Equal(t, "", m[4])
	}

	m = DateRange.FindStringSubmatch("June '15 - Dec '17")
	if assert.NotNil(t, m) {
		assert.Equal(t, "Jun", m[1])
		assert.Equal(t, "15", m[2])
		assert.Equal(t, "Dec", m[3])
		assert.Equal(t, "17", m[4])
	}
}
