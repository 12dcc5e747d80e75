package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailplan/traildb/pkg/schema"
)

func TestParseKind(t *testing.T) {
	for _, name := range []string{"hikes", "reports", "schedule"} {
		k, err := schema.ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
	}

	_, err := schema.ParseKind("trails")
	require.Error(t, err)
	_, err = schema.ParseKind("")
	require.Error(t, err)

	assert.Equal(t, "unknown", schema.KindUnknown.String())
}
