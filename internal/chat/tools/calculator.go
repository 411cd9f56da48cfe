package tools

import (
	"context"
	"fmt"
	"strconv"

	"outlet-assistant/internal/chat"
)

// calculatorTool evaluates a single binary arithmetic expression.
type calculatorTool struct{}

// NewCalculator creates the calculator tool.
func NewCalculator() chat.Tool {
	return &calculatorTool{}
}

func (t *calculatorTool) Name() string { return "calculator" }

func (t *calculatorTool) Description() string {
	return "Evaluates a simple arithmetic expression with two integer operands"
}

func (t *calculatorTool) Execute(_ context.Context, params map[string]any) string {
	operand1, ok1 := intParam(params, "operand1")
	operand2, ok2 := intParam(params, "operand2")
	operator, _ := params["operator"].(string)
	if !ok1 || !ok2 {
		return "Error: Missing operands"
	}

	var result float64
	switch operator {
	case "+":
		result = float64(operand1 + operand2)
	case "-":
		result = float64(operand1 - operand2)
	case "*":
		result = float64(operand1 * operand2)
	case "/":
		if operand2 == 0 {
			return "Error: Cannot divide by zero"
		}
		result = float64(operand1) / float64(operand2)
	default:
		return "Error: Unsupported operator"
	}

	return fmt.Sprintf("%d %s %d = %s", operand1, operator, operand2,
		strconv.FormatFloat(result, 'f', -1, 64))
}

// intParam reads an integer parameter, tolerating the float64 that
// JSON-decoded payloads carry.
func intParam(params map[string]any, key string) (int, bool) {
	switch v := params[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}
