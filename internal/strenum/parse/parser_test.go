package parse

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasGoBuildStrenum(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"//go:build strenum\n\npackage a\n", true},
		{"//go:build strenum && linux\n\npackage a\n", true},
		{"// Copyright\n\n//go:build strenum\n\npackage a\n", true},
		{"//go:build !strenum\n\n// Code generated by strenum. DO NOT EDIT.\n\npackage a\n", false},
		{"//go:build strenum || linux\n\npackage a\n", false},
		{"//go:build linux\n\npackage a\n", false},
		{"package a\n", false},
		{"package a\n\n//go:build strenum\n", false},
	}
	for _, tt := range tests {
		file, err := parser.ParseFile(token.NewFileSet(), "a.go", tt.src, parser.ParseComments)
		require.NoError(t, err)
		assert.Equal(t, tt.want, hasGoBuildStrenum(file), tt.src)
	}
}

func TestIsStrenumImport(t *testing.T) {
	assert.True(t, IsStrenumImport("github.com/sublee/strenum"))
	assert.True(t, IsStrenumImport("example.com/app/vendor/github.com/sublee/strenum"))
	assert.False(t, IsStrenumImport("github.com/sublee/strenum/pkg/strenumerrors"))
	assert.False(t, IsStrenumImport("example.com/strenum"))
}
