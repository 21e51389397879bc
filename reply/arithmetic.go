package reply

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	binaryPattern  = regexp.MustCompile(`(\d+)\s*([-+*/])\s*(\d+)`)
	percentPattern = regexp.MustCompile(`(\d+)\s*(?:percent|%)\s*(?:of|from)\s*(\d+)`)
)

// arithmeticReply evaluates the first <int> <op> <int> pattern found,
// else the first <int> percent of <int> pattern, else returns a usage
// hint. Single binary operation only; no precedence, no expression
// trees. Division by zero is a defined textual result, not an error.
func arithmeticReply(input string) string {
	if m := binaryPattern.FindStringSubmatch(input); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[3])
		return binaryResult(a, m[2], b)
	}

	if m := percentPattern.FindStringSubmatch(input); m != nil {
		percent, _ := strconv.Atoi(m[1])
		total, _ := strconv.Atoi(m[2])
		result := float64(percent) / 100 * float64(total)
		return fmt.Sprintf("%d%% of %d is %s!", percent, total, formatNumber(result))
	}

	return "I can help with basic math operations like addition (+), subtraction (-), multiplication (*), and division (/). Try asking something like \"5 + 3\" or \"10 * 4\"!"
}

func binaryResult(a int, op string, b int) string {
	switch op {
	case "+":
		return fmt.Sprintf("The answer is %d! Great addition!", a+b)
	case "-":
		return fmt.Sprintf("The answer is %d! Subtraction done!", a-b)
	case "*":
		return fmt.Sprintf("The answer is %d! Multiplication complete!", a*b)
	default:
		if b == 0 {
			return "The answer is undefined (division by zero)! Division calculated!"
		}
		return fmt.Sprintf("The answer is %s! Division calculated!", formatNumber(float64(a)/float64(b)))
	}
}

// formatNumber drops the decimals when the value is whole, else keeps
// two.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
