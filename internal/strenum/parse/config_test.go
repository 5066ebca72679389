package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/strenum/internal/casing"
)

func applyFunc(fn func(string) string) ValueRule {
	return ValueRule{Apply: func(s, _ string) string { return fn(s) }}
}

func TestDeriveNoRules(t *testing.T) {
	var cfg Config
	assert.Equal(t, []string{"Todo", "InProgress"}, cfg.Derive([]string{"Todo", "InProgress"}))
}

func TestDeriveOrder(t *testing.T) {
	cfg := Config{Rules: []ValueRule{applyFunc(casing.Snake), applyFunc(strings.ToLower)}}
	assert.Equal(t, []string{"todo", "in_progress"}, cfg.Derive([]string{"Todo", "InProgress"}))

	cfg = Config{Rules: []ValueRule{applyFunc(strings.ToLower), applyFunc(casing.Snake)}}
	assert.Equal(t, []string{"todo", "inprogress"}, cfg.Derive([]string{"Todo", "InProgress"}))
}

func TestDeriveCommon(t *testing.T) {
	cfg := Config{Rules: []ValueRule{{Apply: strings.TrimPrefix, Common: casing.CommonWordPrefix}}}
	assert.Equal(t, []string{"Start", "Stop"}, cfg.Derive([]string{"StatusStart", "StatusStop"}))

	// A single string has nothing in common with others.
	assert.Equal(t, []string{"StatusStart"}, cfg.Derive([]string{"StatusStart"}))
}

func TestDeriveDoesNotMutate(t *testing.T) {
	cfg := Config{Rules: []ValueRule{applyFunc(strings.ToUpper)}}
	names := []string{"a", "b"}
	assert.Equal(t, []string{"A", "B"}, cfg.Derive(names))
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestFork(t *testing.T) {
	mod := Config{
		Rules:                  make([]ValueRule, 1, 8),
		AllowDuplicatesEnabled: true,
		AllowDuplicates:        true,
		ConstPrefixEnabled:     true,
		ConstPrefix:            "X",
		Variants:               []Variant{{Name: "A"}},
	}
	mod.Rules[0] = applyFunc(strings.ToLower)

	enum := mod.Fork()
	enum.Rules = append(enum.Rules, applyFunc(strings.ToUpper))

	assert.Len(t, mod.Rules, 1)
	assert.Len(t, enum.Rules, 2)
	assert.True(t, enum.AllowDuplicates)
	assert.False(t, enum.ConstPrefixEnabled)
	assert.Empty(t, enum.ConstPrefix)
	assert.Empty(t, enum.Variants)

	// The module rules stay intact even if the fork shares the capacity.
	assert.Equal(t, []string{"a"}, mod.Derive([]string{"A"}))
}
