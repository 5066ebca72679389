package testdata

import "github.com/sublee/strenum" // want `file must have "//go:build strenum" constraint when importing strenum`

var Lower = strenum.ValueToLower
