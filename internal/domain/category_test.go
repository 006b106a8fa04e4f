package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edms/internal/domain"
)

func TestResolveCategoryLabel_Catalogue(t *testing.T) {
	label, err := domain.ResolveCategoryLabel("OFD", "")
	require.NoError(t, err)
	assert.Equal(t, "Offer Document", label)

	// otherType is ignored for catalogue codes.
	label, err = domain.ResolveCategoryLabel("JOR", "anything")
	require.NoError(t, err)
	assert.Equal(t, "Joining Report", label)
}

func TestResolveCategoryLabel_Others(t *testing.T) {
	label, err := domain.ResolveCategoryLabel(domain.CategoryCodeOthers, "Transfer Request")
	require.NoError(t, err)
	assert.Equal(t, "Transfer Request", label)
}

func TestResolveCategoryLabel_Invalid(t *testing.T) {
	cases := []struct {
		name      string
		code      string
		otherType string
	}{
		{"unknown code", "XYZ", ""},
		{"empty code", "", ""},
		{"lowercase catalogue code", "ofd", ""},
		{"others without label", domain.CategoryCodeOthers, ""},
		{"others label too long", domain.CategoryCodeOthers, strings.Repeat("a", 31)},
		{"others label with markup", domain.CategoryCodeOthers, "<b>bold</b>"},
		{"others label with slash", domain.CategoryCodeOthers, "PF/Gratuity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.ResolveCategoryLabel(tc.code, tc.otherType)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestResolveCategoryLabel_OthersBoundaryLength(t *testing.T) {
	label, err := domain.ResolveCategoryLabel(domain.CategoryCodeOthers, strings.Repeat("a", 30))
	require.NoError(t, err)
	assert.Len(t, label, 30)
}

func TestValidFileLocation(t *testing.T) {
	assert.True(t, domain.ValidFileLocation(domain.LocationHRDepartment))
	assert.True(t, domain.ValidFileLocation(domain.LocationAuditRoom))
	assert.True(t, domain.ValidFileLocation(domain.LocationVigilance))
	assert.True(t, domain.ValidFileLocation(domain.LocationOthers))
	assert.False(t, domain.ValidFileLocation(domain.FileLocation("Warehouse")))
	assert.False(t, domain.ValidFileLocation(domain.FileLocation("")))
}
