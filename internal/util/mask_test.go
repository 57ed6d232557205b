package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskEmail(t *testing.T) {
	require.Equal(t, "j…@e….com", MaskEmail("Jean.Dupont@Example.com"))
	require.Equal(t, "", MaskEmail(""))
	require.Equal(t, "***", MaskEmail("abc"))
	require.Equal(t, "a…e", MaskEmail("abcde"))
}

func TestMaskDSN(t *testing.T) {
	require.Equal(t, "postgres://app:***@db:5432/clients", MaskDSN("postgres://app:s3cret@db:5432/clients"))
	require.Equal(t, "postgres://db/clients", MaskDSN("postgres://db/clients"))
	require.Equal(t, "host=db user=app password=*** dbname=clients", MaskDSN("host=db user=app password=s3cret dbname=clients"))
	require.Equal(t, "file:clients.db?cache=shared", MaskDSN("file:clients.db?cache=shared"))
	require.Equal(t, "", MaskDSN(""))
}
