package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMentees(t *testing.T) {
	input := `user_id,full_name,email,cohort
auth0|1, Ana Souza, ana@clinica.com, neon
auth0|2,Bruno Lima,bruno@clinica.com,
auth0|3,Carla
`

	rows, err := readMentees(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, MenteeRow{UserID: "auth0|1", FullName: "Ana Souza", Email: "ana@clinica.com", Cohort: "neon"}, rows[0])
	assert.Equal(t, "neon", rows[1].Cohort)
}
