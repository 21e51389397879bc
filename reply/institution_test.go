package reply

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstitutionReply_SubKeywordGroups(t *testing.T) {
	req := require.New(t)
	g := newTestGenerator()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"location", "where is the university located", "📍 Takshashila University is located at:"},
		{"founding", "when was takshashila established", "was established in 2023"},
		{"vision", "what is the vision of the university", "🔹 Vision of Takshashila University:"},
		{"mission", "tell me the mission", "1. Provide world-class education"},
		{"programs", "which courses are offered", "School of Engineering and Technology"},
		{"facilities", "what facilities does the campus have", "• Smart classrooms"},
		{"research", "research and innovation", "Innovation & Incubation Centers"},
		{"accreditation", "is the university ugc recognized", "Tamil Nadu Act No. 19 of 2023"},
		{"website", "what is the website", "🌐 Official Website: https://www.takshashilauniv.edu.in"},
		{"promoting body", "who is the founder", "Sri Manakula Vinayagar Group of Educational Institutions"},
		{"etymology", "why the name taxila", "ancient world's first learning hub"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Contains(g.institutionReply(tt.input), tt.expected)
		})
	}
}

func TestInstitutionReply_GeneralSummaryFallback(t *testing.T) {
	req := require.New(t)
	g := newTestGenerator()

	got := g.institutionReply("takshashila")
	req.Contains(got, "🔹 About Takshashila University:")
	req.Contains(got, "Transforming Education for Tomorrow")
}

func TestInstitutionReply_ClubSubBranch(t *testing.T) {
	req := require.New(t)
	g := newTestGenerator()

	got := g.institutionReply("where does the robotics club meet")
	req.Contains(got, "🎯 Robotics Club")
	req.Contains(got, "B-112")
	req.Contains(got, "Every Wednesday and Friday")
}

func TestClubReply_Resolution(t *testing.T) {
	req := require.New(t)
	g := newTestGenerator()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"by name keyword", "tell me about the coding club room", "🎯 Coding Club"},
		{"by lab alias", "where is the ai lab club", "🎯 Coding Club"},
		{"by room token", "which club is in room c-301", "🎯 Literary Club"},
		{"by compact room token", "what club meets in c301", "🎯 Literary Club"},
		{"schedule question", "when do clubs meet", "🕒 All clubs meet at the same time"},
		{"enumeration", "list all clubs", "🎯 Student clubs:"},
		{"directory fallback", "clubs", "🎯 Student clubs:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Contains(g.clubReply(tt.input), tt.expected)
		})
	}
}
