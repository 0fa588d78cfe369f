package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ananya/intern-match/internal/types"
)

func profile(id, text string) types.RetrievedItem {
	return types.RetrievedItem{ID: id, Text: text}
}

func TestPrefilterByKeywords_KeepsAnyKeywordHit(t *testing.T) {
	target := "Backend Developer Golang"
	items := []types.RetrievedItem{
		profile("a", "three years of golang microservices work"),
		profile("b", "frontend react and css"),
		profile("c", "backend engineer, python and java"),
	}

	kept := PrefilterByKeywords(target, items)
	require.Len(t, kept, 2)
	assert.Equal(t, "a", kept[0].ID)
	assert.Equal(t, "c", kept[1].ID)
}

func TestPrefilterByKeywords_CaseInsensitive(t *testing.T) {
	kept := PrefilterByKeywords("DATA science", []types.RetrievedItem{
		profile("a", "Data pipelines and warehousing"),
	})
	assert.Len(t, kept, 1)
}

func TestPrefilterByKeywords_RemovesAll(t *testing.T) {
	kept := PrefilterByKeywords("quantum cryptography", []types.RetrievedItem{
		profile("a", "marketing and sales"),
		profile("b", "graphic design"),
	})
	assert.Empty(t, kept)
}

func TestPrefilterByKeywords_EmptyTarget(t *testing.T) {
	kept := PrefilterByKeywords("   ", []types.RetrievedItem{profile("a", "anything")})
	assert.Empty(t, kept)
}

func TestPrefilterByKeywords_PreservesOrder(t *testing.T) {
	items := []types.RetrievedItem{
		profile("1", "go"), profile("2", "go"), profile("3", "go"),
	}
	kept := PrefilterByKeywords("go", items)
	require.Len(t, kept, 3)
	for i, it := range kept {
		assert.Equal(t, items[i].ID, it.ID)
	}
}
