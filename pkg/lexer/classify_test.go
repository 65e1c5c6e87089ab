package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"boolean true", "true", "true"},
		{"boolean false", "false", "false"},
		{"integer", "4", "4"},
		{"negative float", "-2.5", "-2.5"},
		{"single quoted", "'primary'", "primary"},
		{"double quoted", `"ghost"`, "ghost"},
		{"array", "[1, 2, 3]", CategoryArray},
		{"object", "{color: 'red'}", CategoryObject},
		{"arrow function", "() => doSomething()", CategoryFunction},
		{"function keyword", "function fn() { return 1 }", CategoryFunction},
		{"handler name", "handleClick", CategoryHandler},
		{"on handler name", "onSubmit", CategoryHandler},
		{"handler named arrow is function", "handleClick => handleClick()", CategoryFunction},
		{"ternary", "isOpen ? 'open' : 'closed'", CategoryTernary},
		{"template", "`value-${x}`", CategoryTemplate},
		{"variable", "theme", "<variable:theme>"},
		{"dotted variable", "props.tone.value", "<variable:props.tone.value>"},
		{"expression fallback", "a + b", CategoryExpression},
		{"empty is empty string literal", "", ""},
		{"empty quoted", "''", ""},
		{"lone quote", "'", CategoryExpression},
		{"numeric with text", "4px", CategoryExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.raw))
		})
	}
}

func TestClassify_Pure(t *testing.T) {
	inputs := []string{"", "true", "4", "'primary'", "a + b", "() => x", "handleX", "`t`", "obj.key"}
	for _, raw := range inputs {
		assert.Equal(t, Classify(raw), Classify(raw), "classify(%q) must be deterministic", raw)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		classified string
		want       string
	}{
		{"boolean passes through", "true", "true"},
		{"number passes through", "4", "4"},
		{"short string requoted", "primary", `"primary"`},
		{"empty string requoted", "", `""`},
		{"boundary length string", "abcdefghijklmnopqrstuvwxyz1234", `"abcdefghijklmnopqrstuvwxyz1234"`},
		{"long string collapses", "this string is far too long to be a countable literal", CategoryExpression},
		{"variable collapses", "<variable:props.tone>", CategoryVariable},
		{"array passes through", CategoryArray, CategoryArray},
		{"object passes through", CategoryObject, CategoryObject},
		{"function passes through", CategoryFunction, CategoryFunction},
		{"handler passes through", CategoryHandler, CategoryHandler},
		{"ternary passes through", CategoryTernary, CategoryTernary},
		{"template passes through", CategoryTemplate, CategoryTemplate},
		{"expression passes through", CategoryExpression, CategoryExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.classified))
		})
	}
}

func TestNormalizeClassify_Scenarios(t *testing.T) {
	// End-to-end over raw attribute values as the parser emits them.
	assert.Equal(t, CategoryFunction, Normalize(Classify("() => doSomething()")))
	assert.Equal(t, CategoryHandler, Normalize(Classify("handleClick")))
	assert.Equal(t, "4", Normalize(Classify("4")))
	assert.Equal(t, `"primary"`, Normalize(Classify("'primary'")))
	assert.Equal(t, CategoryVariable, Normalize(Classify("someIdentifier")))
}
