package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAttrs(t *testing.T) {
	tests := []struct {
		name string
		span string
		want []Prop
	}{
		{
			name: "mixed literal expression shorthand",
			span: ` padding={4} tone="primary" border`,
			want: []Prop{
				{Name: "padding", Value: "4"},
				{Name: "tone", Value: "'primary'"},
				{Name: "border", Value: "true"},
			},
		},
		{
			name: "empty input",
			span: "",
			want: nil,
		},
		{
			name: "whitespace only",
			span: "   \n\t  ",
			want: nil,
		},
		{
			name: "trailing self close produces no prop",
			span: ` disabled /`,
			want: []Prop{{Name: "disabled", Value: "true"}},
		},
		{
			name: "single quotes rewrapped",
			span: ` tone='caution'`,
			want: []Prop{{Name: "tone", Value: "'caution'"}},
		},
		{
			name: "spread excluded",
			span: ` {...rest} tone="default"`,
			want: []Prop{{Name: "tone", Value: "'default'"}},
		},
		{
			name: "spread with nested braces excluded",
			span: ` {...{a: {b: 1}}} padding={2}`,
			want: []Prop{{Name: "padding", Value: "2"}},
		},
		{
			name: "expression value trimmed verbatim",
			span: " onClick={ () => doThing() }",
			want: []Prop{{Name: "onClick", Value: "() => doThing()"}},
		},
		{
			name: "nested object expression",
			span: " style={{color: 'red', margin: {top: 1}}}",
			want: []Prop{{Name: "style", Value: "{color: 'red', margin: {top: 1}}"}},
		},
		{
			name: "hyphen and dollar names",
			span: ` data-testid="btn" aria-label='Close' $gap={2}`,
			want: []Prop{
				{Name: "data-testid", Value: "'btn'"},
				{Name: "aria-label", Value: "'Close'"},
				{Name: "$gap", Value: "2"},
			},
		},
		{
			name: "multiline attributes",
			span: "\n  padding={4}\n  tone=\"primary\"\n",
			want: []Prop{
				{Name: "padding", Value: "4"},
				{Name: "tone", Value: "'primary'"},
			},
		},
		{
			name: "bare token value",
			span: ` value=yes tone="ok"`,
			want: []Prop{
				{Name: "value", Value: "yes"},
				{Name: "tone", Value: "'ok'"},
			},
		},
		{
			name: "empty quoted value",
			span: ` id=""`,
			want: []Prop{{Name: "id", Value: "''"}},
		},
		{
			name: "boolean shorthand before expression",
			span: ` border radius={3}`,
			want: []Prop{
				{Name: "border", Value: "true"},
				{Name: "radius", Value: "3"},
			},
		},
		{
			name: "template literal in expression",
			span: " label={`count: ${n}`}",
			want: []Prop{{Name: "label", Value: "`count: ${n}`"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAttrs(tt.span))
		})
	}
}

func TestParseAttrs_OrderPreserved(t *testing.T) {
	span := ` z="1" a="2" m="3"`
	props := ParseAttrs(span)
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"z", "a", "m"}, names)
}

func TestParseAttrs_RoundTripLiteral(t *testing.T) {
	// For quoted-string props, normalize(classify(value)) reproduces the
	// literal wrapped in double quotes when it is short enough.
	props := ParseAttrs(` tone="primary" mode='ghost'`)
	for _, p := range props {
		got := Normalize(Classify(p.Value))
		assert.Equal(t, `"`+p.Value[1:len(p.Value)-1]+`"`, got)
	}
}
