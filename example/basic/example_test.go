package example

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewritten(t *testing.T) {
	report := Rewritten()
	require.Len(t, report.Results, 2)

	byPath := map[string]string{}
	for _, r := range report.Results {
		require.NoError(t, r.Err)
		byPath[r.Path] = r.Rewritten
	}

	assert.Equal(t,
		"select u from User u where u.active = true order by u.createdAt desc",
		byPath["queries/find_active_users.jpql"])
	assert.Equal(t,
		"select o from User u join u.orders o where u.id = :userId order by u.createdAt desc",
		byPath["queries/find_orders_for_user.jpql"])
}
