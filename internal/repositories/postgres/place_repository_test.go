package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodcart/restorank/internal/placecache"
)

// The coordinate cache resolver takes its store by interface; the
// postgres repository must keep satisfying it.
func TestPlaceRepositoryImplementsStore(t *testing.T) {
	assert.Implements(t, (*placecache.Store)(nil), new(PlaceRepository))
}
