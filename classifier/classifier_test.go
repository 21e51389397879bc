package classifier

import (
	"campus-chat/domain"
	"campus-chat/knowledge"
	"testing"

	"github.com/stretchr/testify/require"
)

func newClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := New(knowledge.Load())
	require.NoError(t, err)
	return c
}

func TestClassify_Categories(t *testing.T) {
	req := require.New(t)
	c := newClassifier(t)

	tests := []struct {
		name     string
		input    string
		expected domain.Category
	}{
		{"bus keyword", "when does the bus leave", domain.CategoryBus},
		{"shuttle keyword", "is there a shuttle on sunday", domain.CategoryBus},
		{"stop proper noun", "what about the chennai corridor", domain.CategoryBus},
		{"driver proper noun", "is murugan on duty", domain.CategoryBus},
		{"institution keyword", "tell me about the university", domain.CategoryInstitution},
		{"club noun", "where does the robotics club meet", domain.CategoryInstitution},
		{"greeting prefix", "hello there", domain.CategoryGreeting},
		{"identity", "what is your name", domain.CategoryIdentity},
		{"wellbeing", "how are you", domain.CategoryWellbeing},
		{"capabilities", "what can you do", domain.CategoryCapabilities},
		{"datetime", "what time is it", domain.CategoryDateTime},
		{"weather", "will it rain", domain.CategoryWeather},
		{"club noun with room context", "where is the music room", domain.CategoryInstitution},
		{"bare club topic word", "i love music", domain.CategoryContextual},
		{"bare book topic word", "reading a new book tonight", domain.CategoryContextual},
		{"arithmetic operator", "12 + 5", domain.CategoryArithmetic},
		{"arithmetic word", "solve this for me", domain.CategoryArithmetic},
		{"bare operator without numbers", "a + b", domain.CategoryArithmetic},
		{"gratitude", "thanks a lot", domain.CategoryGratitude},
		{"farewell", "bye for now", domain.CategoryFarewell},
		{"compliment", "you are brilliant", domain.CategoryCompliment},
		{"contextual topic", "i love cricket", domain.CategoryContextual},
		{"contextual fallback", "zzz qqq", domain.CategoryContextual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, c.Classify(Normalize(tt.input)), "input=%q", tt.input)
		})
	}
}

// An input satisfying several predicates must always land on the one
// tested earliest, no matter how many later keywords it contains.
func TestClassify_PriorityOrder(t *testing.T) {
	req := require.New(t)
	c := newClassifier(t)

	tests := []struct {
		name     string
		input    string
		expected domain.Category
	}{
		{"bus beats institution", "does the university bus stop at guindy", domain.CategoryBus},
		{"institution beats greeting words", "hostel and library facilities please", domain.CategoryInstitution},
		{"greeting beats wellbeing", "hello, how are you doing", domain.CategoryGreeting},
		{"wellbeing beats capabilities", "how are you, can you help", domain.CategoryWellbeing},
		{"arithmetic beats gratitude", "calculate 2 + 2 thanks", domain.CategoryArithmetic},
		{"gratitude beats farewell", "thanks, bye", domain.CategoryGratitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, c.Classify(Normalize(tt.input)))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	req := require.New(t)
	c := newClassifier(t)

	input := Normalize("Tell me about the University")
	first := c.Classify(input)
	for i := 0; i < 100; i++ {
		req.Equal(first, c.Classify(input))
	}
}

// The final rule is total: every string lands on a category.
func TestClassify_Total(t *testing.T) {
	req := require.New(t)
	c := newClassifier(t)

	for _, input := range []string{"", "?", "ñ é 漢", ". . .", "qwxz"} {
		req.NotEmpty(c.Classify(Normalize(input)))
	}
}

func TestRules_OrderIsVisible(t *testing.T) {
	req := require.New(t)
	c := newClassifier(t)

	var got []domain.Category
	for _, rule := range c.Rules() {
		got = append(got, rule.Category)
	}
	req.Equal([]domain.Category{
		domain.CategoryBus,
		domain.CategoryInstitution,
		domain.CategoryGreeting,
		domain.CategoryIdentity,
		domain.CategoryWellbeing,
		domain.CategoryCapabilities,
		domain.CategoryDateTime,
		domain.CategoryWeather,
		domain.CategoryArithmetic,
		domain.CategoryGratitude,
		domain.CategoryFarewell,
		domain.CategoryCompliment,
		domain.CategoryContextual,
	}, got)
}
