package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_LegalTokens(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		token    string
		dialect  Dialect
		fileName string
	}{
		{token: "C", dialect: C, fileName: "build_no.h"},
		{token: "C++", dialect: CPlusPlus, fileName: "build_no.hpp"},
		{token: "C#", dialect: CSharp, fileName: "build_no.cs"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.token, func(t *testing.T) {
			t.Parallel()

			spec, err := Select(tc.token)

			require.NoError(t, err)
			assert.Equal(t, tc.dialect, spec.Dialect)
			assert.Equal(t, tc.fileName, spec.FileName)
		})
	}
}

func TestSelect_RejectsUnknownTokens(t *testing.T) {
	t.Parallel()

	// Tokens are matched case-sensitively and without trimming, so near
	// misses must fail just like plainly unsupported languages.
	for _, token := range []string{"", "c", "c++", "C ++", " C", "Java", "C# "} {
		token := token
		t.Run("token="+token, func(t *testing.T) {
			t.Parallel()

			spec, err := Select(token)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "unsupported output type")
			assert.Equal(t, Invalid, spec.Dialect)
			assert.Empty(t, spec.FileName)
		})
	}
}

func TestDialect_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "C", C.String())
	assert.Equal(t, "C++", CPlusPlus.String())
	assert.Equal(t, "C#", CSharp.String())
	assert.Equal(t, "invalid", Invalid.String())
}
