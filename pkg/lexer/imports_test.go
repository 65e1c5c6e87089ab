package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitySet() *TrackedSet {
	return NewTrackedSet(
		[]string{"Button", "Card", "Stack", "Text", "Dialog"},
		[]string{"@sanity/ui"},
		[]string{"@sanity/ui/theme"},
	)
}

func TestImportStatements(t *testing.T) {
	text := `import React from 'react'
import { Button, Card } from '@sanity/ui'
import Default, { Stack as VStack } from "@sanity/ui"
import './styles.css'
`
	stmts := ImportStatements(text)
	require.Len(t, stmts, 3)

	assert.Equal(t, "react", stmts[0].Source)
	assert.Equal(t, "React", stmts[0].DefaultImport)
	assert.Empty(t, stmts[0].NamedImports)

	assert.Equal(t, "@sanity/ui", stmts[1].Source)
	assert.Equal(t, " Button, Card ", stmts[1].NamedImports)
	assert.Empty(t, stmts[1].DefaultImport)

	assert.Equal(t, "Default", stmts[2].DefaultImport)
	assert.Equal(t, " Stack as VStack ", stmts[2].NamedImports)

	// Offsets point at the statement start and map to the right lines.
	assert.Equal(t, 1, LineNumberAt(text, stmts[0].Offset))
	assert.Equal(t, 2, LineNumberAt(text, stmts[1].Offset))
	assert.Equal(t, 3, LineNumberAt(text, stmts[2].Offset))
}

func TestNamedBindings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []NamedBinding
	}{
		{"single", "Button", []NamedBinding{{Original: "Button", Local: "Button"}}},
		{"multiple", "Button, Card", []NamedBinding{
			{Original: "Button", Local: "Button"},
			{Original: "Card", Local: "Card"},
		}},
		{"alias", "Button as Btn", []NamedBinding{{Original: "Button", Local: "Btn"}}},
		{"lowercase dropped", "useToast, rem, Button", []NamedBinding{
			{Original: "Button", Local: "Button"},
		}},
		{"type entries", "type ButtonProps, Button", []NamedBinding{
			{Original: "ButtonProps", Local: "ButtonProps"},
			{Original: "Button", Local: "Button"},
		}},
		{"empty", "   ", nil},
		{"garbage skipped", "Button, a.b, Card", []NamedBinding{
			{Original: "Button", Local: "Button"},
			{Original: "Card", Local: "Card"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NamedBindings(tt.input))
		})
	}
}

func TestResolveTrackedImports(t *testing.T) {
	set := sanitySet()

	t.Run("single named import", func(t *testing.T) {
		m := ResolveTrackedImports(`import { Button } from '@sanity/ui'`, set)
		assert.Equal(t, ImportMap{"Button": "Button"}, m)
	})

	t.Run("alias resolves local to original", func(t *testing.T) {
		m := ResolveTrackedImports(`import { Button as Btn, Card } from '@sanity/ui'`, set)
		assert.Equal(t, ImportMap{"Btn": "Button", "Card": "Card"}, m)
	})

	t.Run("untracked source ignored", func(t *testing.T) {
		m := ResolveTrackedImports(`import { Button } from './local/Button'`, set)
		assert.Empty(t, m)
	})

	t.Run("excluded subpath ignored", func(t *testing.T) {
		m := ResolveTrackedImports(`import { Card } from '@sanity/ui/theme'`, set)
		assert.Empty(t, m)
	})

	t.Run("untracked component dropped", func(t *testing.T) {
		m := ResolveTrackedImports(`import { Button, Autocomplete } from '@sanity/ui'`, set)
		assert.Equal(t, ImportMap{"Button": "Button"}, m)
	})

	t.Run("never returns lowercase originals", func(t *testing.T) {
		m := ResolveTrackedImports(`import { useToast, rem, Button } from '@sanity/ui'`, set)
		for _, original := range m {
			require.NotEmpty(t, original)
			assert.True(t, original[0] >= 'A' && original[0] <= 'Z',
				"binding original %q must be PascalCase", original)
		}
	})

	t.Run("multiple statements same source all honored", func(t *testing.T) {
		text := "import { Button } from '@sanity/ui'\nimport { Card } from '@sanity/ui'\n"
		m := ResolveTrackedImports(text, set)
		assert.Equal(t, ImportMap{"Button": "Button", "Card": "Card"}, m)
	})

	t.Run("malformed import silently ignored", func(t *testing.T) {
		m := ResolveTrackedImports(`import * as UI from '@sanity/ui'`, set)
		assert.Empty(t, m)
	})
}

func TestTrackedSetStyledWrappers(t *testing.T) {
	set := sanitySet()
	text := "const Big = styled(Button)`font-size: 2rem;`\nconst Wrap = styled( Card )``\nconst Plain = styled.div``\n"
	assert.Equal(t, map[string]int{"Button": 1, "Card": 1}, set.StyledWrappers(text))
	assert.Nil(t, set.StyledWrappers("no wrappers here"))
}
