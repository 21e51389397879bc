package reply

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmeticReply(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"addition", "12 + 5", "The answer is 17! Great addition!"},
		{"subtraction", "what is 9 - 4", "The answer is 5! Subtraction done!"},
		{"multiplication", "10 * 4", "The answer is 40! Multiplication complete!"},
		{"division", "10 / 4", "The answer is 2.50! Division calculated!"},
		{"whole division", "10 / 2", "The answer is 5! Division calculated!"},
		{"division by zero", "10 / 0", "The answer is undefined (division by zero)! Division calculated!"},
		{"percentage", "20 percent of 50", "20% of 50 is 10!"},
		{"percentage symbol", "what is 25% of 80", "25% of 80 is 20!"},
		{"fractional percentage", "33 percent of 10", "33% of 10 is 3.30!"},
		{"only first pattern evaluated", "1 + 2 and 3 + 4", "The answer is 3! Great addition!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, arithmeticReply(tt.input))
		})
	}
}

func TestArithmeticReply_UsageHint(t *testing.T) {
	req := require.New(t)
	got := arithmeticReply("please solve my homework")
	req.Contains(got, "basic math operations")
}
