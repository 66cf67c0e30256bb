package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixturebot/fixturebot/internal/pkg/models"
)

func TestStoreReplaceWholesale(t *testing.T) {
	s := NewStore()

	assert.Equal(t, State{}, s.Get(1), "unknown chat starts empty")

	s.Put(1, State{
		Sport:   models.SportSoccer,
		Matches: []models.Match{{ID: "a"}},
		Page:    2,
	})
	s.Put(1, State{Sport: models.SportTennis})

	got := s.Get(1)
	assert.Equal(t, models.SportTennis, got.Sport)
	assert.Empty(t, got.Matches, "replacement does not merge the old list")
	assert.Zero(t, got.Page)
}

func TestStoreSessionsAreIndependent(t *testing.T) {
	s := NewStore()
	s.Put(1, State{Sport: models.SportHockey})
	s.Put(2, State{Sport: models.SportBaseball})

	assert.Equal(t, models.SportHockey, s.Get(1).Sport)
	assert.Equal(t, models.SportBaseball, s.Get(2).Sport)

	s.Reset(1)
	assert.Equal(t, State{}, s.Get(1))
	assert.Equal(t, models.SportBaseball, s.Get(2).Sport)
}

func TestFindMatch(t *testing.T) {
	st := State{Matches: []models.Match{{ID: "a"}, {ID: "b"}}}

	m, err := st.FindMatch("b")
	require.NoError(t, err)
	assert.Equal(t, "b", m.ID)

	_, err = st.FindMatch("stale")
	var le *models.LookupError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "stale", le.ID)
}
