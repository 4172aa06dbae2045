package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rlink/internal/core/domain"
)

func TestExtractLinkFlags(t *testing.T) {
	tests := []struct {
		name      string
		values    []string
		wantPaths []string
		wantLibs  []string
	}{
		{
			name:      "paths and libraries",
			values:    []string{"-L/usr/lib/blas -lblas"},
			wantPaths: []string{"/usr/lib/blas"},
			wantLibs:  []string{"blas"},
		},
		{
			name:      "other flags discarded",
			values:    []string{"-O2 -fpic -lgfortran -Wall -lm"},
			wantPaths: nil,
			wantLibs:  []string{"gfortran", "m"},
		},
		{
			name:      "scan order preserved across values",
			values:    []string{"-lblas", "-L/opt/lapack -llapack", "-lgfortran"},
			wantPaths: []string{"/opt/lapack"},
			wantLibs:  []string{"blas", "lapack", "gfortran"},
		},
		{
			name:      "empty and whitespace-only values",
			values:    []string{"", "   ", "\t"},
			wantPaths: nil,
			wantLibs:  nil,
		},
		{
			name:      "duplicate libraries kept",
			values:    []string{"-lm", "-lm"},
			wantPaths: nil,
			wantLibs:  []string{"m", "m"},
		},
		{
			name:      "bare prefix yields empty entry",
			values:    []string{"-L -lblas"},
			wantPaths: []string{""},
			wantLibs:  []string{"blas"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := domain.ExtractLinkFlags(tt.values)
			assert.Equal(t, tt.wantPaths, flags.SearchPaths)
			assert.Equal(t, tt.wantLibs, flags.Libraries)
		})
	}
}

func TestExtractLinkFlags_Deterministic(t *testing.T) {
	values := []string{"-L/a -la", "-L/b -lb"}

	first := domain.ExtractLinkFlags(values)
	second := domain.ExtractLinkFlags(values)

	assert.Equal(t, first, second)
}
